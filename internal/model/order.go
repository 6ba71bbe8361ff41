package model

import "time"

// OrderStatus constants
const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// Order is a customer's request for a quantity of one fabric type.
// TotalAmount is fixed at creation and is not recomputed on update.
type Order struct {
	Base
	CustomerID     string    `json:"customer_id"`
	FabricType     string    `json:"fabric_type"`
	QuantityMeters float64   `json:"quantity_meters"`
	RatePerMeter   float64   `json:"rate_per_meter"`
	TotalAmount    float64   `json:"total_amount"`
	Status         string    `json:"status"`
	OrderDate      time.Time `json:"order_date"`
	Notes          string    `json:"notes"`
}
