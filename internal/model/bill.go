package model

import (
	"fmt"
	"time"
)

// PaymentStatus constants
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

// DefaultTaxRate is applied when no explicit tax amount is given.
const DefaultTaxRate = 0.18

// GrandTotalFactor is 1 + DefaultTaxRate, kept as its own literal so
// grand totals match total*1.18 exactly.
const GrandTotalFactor = 1.18

// Bill is an invoice for an order or a manual charge
type Bill struct {
	Base
	BillNumber    string    `json:"bill_number"`
	CustomerID    string    `json:"customer_id"`
	OrderID       *string   `json:"order_id"`
	BillDate      time.Time `json:"bill_date"`
	TotalAmount   float64   `json:"total_amount"`
	TaxAmount     float64   `json:"tax_amount"`
	GrandTotal    float64   `json:"grand_total"`
	PaymentStatus string    `json:"payment_status"`
}

// Payable is the grand total, falling back to the pre-tax total when grand total is zero.
func (b Bill) Payable() float64 {
	if b.GrandTotal != 0 {
		return b.GrandTotal
	}
	return b.TotalAmount
}

// BillNumber formats the n-th bill number, e.g. BILL-007.
func BillNumber(n int) string {
	return fmt.Sprintf("BILL-%03d", n)
}
