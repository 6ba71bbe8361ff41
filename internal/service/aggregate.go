package service

import (
	"sort"

	"github.com/DeepakJD1226/Consultancy/internal/model"
)

// Pure aggregations over snapshots of the collections. Arithmetic is plain
// float64 summation in collection order.

const recentOrdersLimit = 5

func summarizeInventory(items []model.InventoryItem) model.InventorySummary {
	summary := model.InventorySummary{TotalItems: len(items)}
	for _, item := range items {
		summary.TotalMeters += item.QuantityMeters
		summary.TotalValue += item.Value()
	}
	return summary
}

func classifyStock(items []model.InventoryItem) model.StockLevels {
	var levels model.StockLevels
	for _, item := range items {
		switch {
		case item.IsOutOfStock():
			levels.OutOfStock++
		case item.IsLowStock():
			levels.LowStock++
		default:
			levels.InStock++
		}
	}
	return levels
}

func summarizeBilling(bills []model.Bill) model.BillingSummary {
	summary := model.BillingSummary{TotalBills: len(bills)}
	for _, bill := range bills {
		summary.TotalAmount += bill.Payable()
		if bill.PaymentStatus == model.PaymentStatusPaid {
			summary.PaidAmount += bill.Payable()
		}
	}
	summary.PendingAmount = summary.TotalAmount - summary.PaidAmount
	return summary
}

func pendingPayments(bills []model.Bill) float64 {
	var total float64
	for _, bill := range bills {
		if bill.PaymentStatus == model.PaymentStatusPending {
			total += bill.Payable()
		}
	}
	return total
}

func summarizeSales(orders []model.Order) model.SalesReport {
	report := model.SalesReport{
		Summary:         model.SalesSummary{TotalOrders: len(orders)},
		FabricBreakdown: make([]model.FabricBreakdown, 0),
	}

	index := make(map[string]int)
	for _, order := range orders {
		report.Summary.TotalRevenue += order.TotalAmount

		i, ok := index[order.FabricType]
		if !ok {
			i = len(report.FabricBreakdown)
			index[order.FabricType] = i
			report.FabricBreakdown = append(report.FabricBreakdown, model.FabricBreakdown{FabricType: order.FabricType})
		}
		report.FabricBreakdown[i].Orders++
		report.FabricBreakdown[i].QuantityMeters += order.QuantityMeters
		report.FabricBreakdown[i].Revenue += order.TotalAmount
	}

	if len(orders) > 0 {
		report.Summary.AverageOrderValue = report.Summary.TotalRevenue / float64(len(orders))
	}
	return report
}

func rankCustomers(customers []model.Customer, orders []model.Order) []model.TopCustomer {
	ranked := make([]model.TopCustomer, 0, len(customers))
	for _, customer := range customers {
		entry := model.TopCustomer{
			Name:         customer.Name,
			Phone:        customer.Phone,
			BusinessType: customer.BusinessType,
		}
		for _, order := range orders {
			if order.CustomerID == customer.ID {
				entry.TotalOrders++
				entry.TotalSpent += order.TotalAmount
			}
		}
		ranked = append(ranked, entry)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})
	return ranked
}

func millPerformance(mills []model.Mill, shipments []model.RawMaterial) []model.MillPerformance {
	out := make([]model.MillPerformance, 0, len(mills))
	for _, mill := range mills {
		perf := model.MillPerformance{MillID: mill.ID, MillName: mill.MillName}
		for _, rm := range shipments {
			if rm.MillID != mill.ID {
				continue
			}
			perf.TotalRawMaterialKg += rm.QuantityKg
			if rm.FabricReceivedMeters != nil {
				perf.TotalFabricReceivedMeters += *rm.FabricReceivedMeters
			}
			if rm.Status == model.RawMaterialStatusCompleted {
				perf.CompletedCount++
			} else {
				perf.PendingProductionCount++
			}
		}
		out = append(out, perf)
	}
	return out
}

// latestOrders returns up to limit orders by order_date, newest first. The
// input slice is not reordered.
func latestOrders(orders []model.Order, limit int) []model.Order {
	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderDate.After(sorted[j].OrderDate)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
