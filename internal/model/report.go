package model

// DashboardSummary is the headline view of the business
type DashboardSummary struct {
	Customers    CustomerStats `json:"customers"`
	Orders       OrderStats    `json:"orders"`
	Revenue      RevenueStats  `json:"revenue"`
	Inventory    StockStats    `json:"inventory"`
	RecentOrders []RecentOrder `json:"recent_orders"`
}

type CustomerStats struct {
	Total int `json:"total"`
}

type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

type RevenueStats struct {
	Total           float64 `json:"total"`
	PendingPayments float64 `json:"pending_payments"`
}

type StockStats struct {
	TotalValue    float64 `json:"total_value"`
	LowStockItems int     `json:"low_stock_items"`
}

// RecentOrder is an order flattened with its customer's name and phone
type RecentOrder struct {
	Order
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

// SalesReport summarises orders within an optional date range
type SalesReport struct {
	Summary         SalesSummary      `json:"summary"`
	FabricBreakdown []FabricBreakdown `json:"fabric_breakdown"`
}

type SalesSummary struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}

type FabricBreakdown struct {
	FabricType     string  `json:"fabric_type"`
	Orders         int     `json:"orders"`
	QuantityMeters float64 `json:"quantity_meters"`
	Revenue        float64 `json:"revenue"`
}

// InventorySummary totals stock across all items
type InventorySummary struct {
	TotalItems  int     `json:"total_items"`
	TotalMeters float64 `json:"total_meters"`
	TotalValue  float64 `json:"total_value"`
}

type InventoryReport struct {
	Summary     InventorySummary `json:"summary"`
	StockLevels StockLevels      `json:"stock_levels"`
}

type StockLevels struct {
	InStock    int `json:"in_stock"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}

type CustomerReport struct {
	TotalCustomers int           `json:"total_customers"`
	TopCustomers   []TopCustomer `json:"top_customers"`
}

type TopCustomer struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	BusinessType string  `json:"business_type"`
	TotalOrders  int     `json:"total_orders"`
	TotalSpent   float64 `json:"total_spent"`
}

// MillPerformance aggregates shipments per mill
type MillPerformance struct {
	MillID                    string  `json:"mill_id"`
	MillName                  string  `json:"mill_name"`
	TotalRawMaterialKg        float64 `json:"total_raw_material_kg"`
	TotalFabricReceivedMeters float64 `json:"total_fabric_received_meters"`
	PendingProductionCount    int     `json:"pending_production_count"`
	CompletedCount            int     `json:"completed_count"`
}

// BillingSummary splits payable amounts into paid and pending
type BillingSummary struct {
	TotalBills    int     `json:"total_bills"`
	TotalAmount   float64 `json:"total_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	PendingAmount float64 `json:"pending_amount"`
}

// Availability is the result of a stock check for a fabric type
type Availability struct {
	Available         bool    `json:"available"`
	AvailableQuantity float64 `json:"available_quantity"`
	RequestedQuantity float64 `json:"requested_quantity"`
}
