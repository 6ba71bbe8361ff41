package model

// Stock thresholds in meters
const (
	LowStockThreshold   = 50.0
	OutOfStockThreshold = 10.0
)

// InventoryItem is a stocked roll of fabric at a location
type InventoryItem struct {
	Base
	FabricType     string  `json:"fabric_type"`
	FabricColor    string  `json:"fabric_color"`
	QuantityMeters float64 `json:"quantity_meters"`
	RatePerMeter   float64 `json:"rate_per_meter"`
	Location       string  `json:"location"`
}

// Value returns quantity times rate.
func (i InventoryItem) Value() float64 {
	return i.QuantityMeters * i.RatePerMeter
}

// IsLowStock reports quantity strictly below the low-stock threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.QuantityMeters < LowStockThreshold
}

// IsOutOfStock reports quantity strictly below the out-of-stock threshold.
func (i InventoryItem) IsOutOfStock() bool {
	return i.QuantityMeters < OutOfStockThreshold
}
