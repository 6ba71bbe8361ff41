package database

import (
	"context"
	"fmt"
	"time"

	"github.com/DeepakJD1226/Consultancy/internal/model"
)

const day = 24 * time.Hour

// Seed loads the sample business data into an empty store in one transaction.
func Seed(ctx context.Context, db *DB) error {
	return db.Transaction(ctx, func(txCtx context.Context) error {
		now := db.Now()

		customers := make([]model.Customer, 0, 3)
		for _, c := range []model.Customer{
			{Name: "Hotel Grand Palace", Phone: "9876543210", BusinessType: model.BusinessTypeHotel, Address: "123 Main Road, Erode"},
			{Name: "Sri Textiles", Phone: "9876543211", BusinessType: model.BusinessTypeRetailer, Address: "45 Market Street, Salem"},
			{Name: "Krishna Wholesale", Phone: "9876543212", BusinessType: model.BusinessTypeWholesaler, Address: "78 Industrial Area, Coimbatore"},
		} {
			stored, err := db.Customers.Insert(txCtx, c)
			if err != nil {
				return fmt.Errorf("seed customer %q: %w", c.Name, err)
			}
			customers = append(customers, stored)
		}

		for _, item := range []model.InventoryItem{
			{FabricType: "Cotton Bedsheet", FabricColor: "White", QuantityMeters: 500, RatePerMeter: 120, Location: "Warehouse A"},
			{FabricType: "Polyester Blend", FabricColor: "Blue", QuantityMeters: 30, RatePerMeter: 85, Location: "Warehouse A"},
			{FabricType: "Silk Cotton", FabricColor: "Cream", QuantityMeters: 8, RatePerMeter: 250, Location: "Warehouse B"},
		} {
			if _, err := db.Inventory.Insert(txCtx, item); err != nil {
				return fmt.Errorf("seed inventory %q: %w", item.FabricType, err)
			}
		}

		orders := make([]model.Order, 0, 2)
		for _, o := range []model.Order{
			{
				CustomerID: customers[0].ID, FabricType: "Cotton Bedsheet",
				QuantityMeters: 100, RatePerMeter: 120, TotalAmount: 12000,
				Status: model.OrderStatusCompleted, OrderDate: now.Add(-5 * day), Notes: "Urgent delivery",
			},
			{
				CustomerID: customers[1].ID, FabricType: "Polyester Blend",
				QuantityMeters: 50, RatePerMeter: 85, TotalAmount: 4250,
				Status: model.OrderStatusPending, OrderDate: now.Add(-2 * day),
			},
		} {
			stored, err := db.Orders.Insert(txCtx, o)
			if err != nil {
				return fmt.Errorf("seed order: %w", err)
			}
			orders = append(orders, stored)
		}

		paid := []string{model.PaymentStatusPaid, model.PaymentStatusPending}
		for i, o := range orders {
			orderID := o.ID
			bill := model.Bill{
				BillNumber:    model.BillNumber(i + 1),
				CustomerID:    o.CustomerID,
				OrderID:       &orderID,
				BillDate:      o.OrderDate,
				TotalAmount:   o.TotalAmount,
				TaxAmount:     o.TotalAmount * model.DefaultTaxRate,
				GrandTotal:    o.TotalAmount * model.GrandTotalFactor,
				PaymentStatus: paid[i],
			}
			if _, err := db.Bills.Insert(txCtx, bill); err != nil {
				return fmt.Errorf("seed bill %s: %w", bill.BillNumber, err)
			}
		}

		mills := make([]model.Mill, 0, 2)
		for _, m := range []model.Mill{
			{MillName: "Lakshmi Weaving Mill", Location: "Erode", ContactPerson: "Rajesh Kumar", Phone: "9876500001"},
			{MillName: "Sakthi Textiles Mill", Location: "Salem", ContactPerson: "Ganesh Babu", Phone: "9876500002"},
		} {
			stored, err := db.Mills.Insert(txCtx, m)
			if err != nil {
				return fmt.Errorf("seed mill %q: %w", m.MillName, err)
			}
			mills = append(mills, stored)
		}

		received, receivedOn := 450.0, now.Add(-4*day)
		for _, rm := range []model.RawMaterial{
			{
				MillID: mills[0].ID, MaterialType: "Raw Cotton", QuantityKg: 500,
				SentDate: now.Add(-10 * day), Status: model.RawMaterialStatusCompleted,
				FabricReceivedMeters: &received, ReceivedDate: &receivedOn,
			},
			{
				MillID: mills[1].ID, MaterialType: "Polyester Yarn", QuantityKg: 200,
				SentDate: now.Add(-3 * day), Status: model.RawMaterialStatusInProduction,
			},
		} {
			if _, err := db.RawMaterials.Insert(txCtx, rm); err != nil {
				return fmt.Errorf("seed raw material %q: %w", rm.MaterialType, err)
			}
		}

		return nil
	})
}
