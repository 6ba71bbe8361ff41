package model

// Business types used by the sample data. The field itself is free text.
const (
	BusinessTypeHotel      = "Hotel"
	BusinessTypeRetailer   = "Retailer"
	BusinessTypeWholesaler = "Wholesaler"
)

// Customer is a buyer of fabric, identified uniquely by phone number
type Customer struct {
	Base
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	BusinessType string `json:"business_type"`
	Address      string `json:"address"`
}

// CustomerRef is the short projection attached to orders and bills
type CustomerRef struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
