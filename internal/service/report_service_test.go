package service

import (
	"context"
	"testing"
	"time"

	"github.com/DeepakJD1226/Consultancy/internal/model"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/pkg/errorbank"
)

func TestDashboardOnSeedData(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	d, err := f.reports.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.Customers.Total != 3 || d.Orders.Total != 2 || d.Orders.Pending != 1 || d.Orders.Completed != 1 {
		t.Fatalf("unexpected counts: %+v %+v", d.Customers, d.Orders)
	}
	if d.Revenue.Total != 16250 {
		t.Fatalf("expected revenue 16250, got %v", d.Revenue.Total)
	}
	if d.Revenue.PendingPayments != 4250.0*model.GrandTotalFactor {
		t.Fatalf("unexpected pending payments %v", d.Revenue.PendingPayments)
	}
	if d.Inventory.TotalValue != 500*120+30*85+8*250 || d.Inventory.LowStockItems != 2 {
		t.Fatalf("unexpected inventory stats: %+v", d.Inventory)
	}
	if len(d.RecentOrders) != 2 || d.RecentOrders[0].FabricType != "Polyester Blend" {
		t.Fatalf("expected newest order first, got %+v", d.RecentOrders)
	}
	if d.RecentOrders[0].CustomerName != "Sri Textiles" || d.RecentOrders[0].CustomerPhone != "9876543211" {
		t.Fatalf("unexpected flattened customer: %+v", d.RecentOrders[0])
	}

	stored, _ := f.orderRepo.List(ctx, repository.OrderFilter{})
	if stored[0].FabricType != "Cotton Bedsheet" {
		t.Fatalf("dashboard must not reorder the store")
	}
}

func TestDashboardRecentOrdersLimitAndUnknownCustomer(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		_, _ = f.orderRepo.Create(ctx, model.Order{CustomerID: "ghost", FabricType: "Cotton", OrderDate: base.AddDate(0, 0, i)})
	}

	d, err := f.reports.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(d.RecentOrders) != 5 {
		t.Fatalf("expected 5 recent orders, got %d", len(d.RecentOrders))
	}
	if !d.RecentOrders[0].OrderDate.Equal(base.AddDate(0, 0, 6)) {
		t.Fatalf("expected newest first, got %v", d.RecentOrders[0].OrderDate)
	}
	if d.RecentOrders[0].CustomerName != "Unknown" || d.RecentOrders[0].CustomerPhone != "N/A" {
		t.Fatalf("expected Unknown/N/A, got %+v", d.RecentOrders[0])
	}
}

func TestSalesReport(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	empty, err := f.reports.Sales(ctx, SalesQuery{})
	if err != nil {
		t.Fatalf("sales: %v", err)
	}
	if empty.Summary.AverageOrderValue != 0 || empty.Summary.TotalOrders != 0 || empty.FabricBreakdown == nil {
		t.Fatalf("unexpected empty report: %+v", empty)
	}

	day := func(d int) time.Time { return time.Date(2025, 3, d, 12, 0, 0, 0, time.UTC) }
	for _, o := range []model.Order{
		{FabricType: "Cotton", QuantityMeters: 10, TotalAmount: 1000, OrderDate: day(1)},
		{FabricType: "Silk", QuantityMeters: 2, TotalAmount: 500, OrderDate: day(2)},
		{FabricType: "Cotton", QuantityMeters: 5, TotalAmount: 600, OrderDate: day(3)},
	} {
		_, _ = f.orderRepo.Create(ctx, o)
	}

	report, err := f.reports.Sales(ctx, SalesQuery{})
	if err != nil {
		t.Fatalf("sales: %v", err)
	}
	if report.Summary.TotalOrders != 3 || report.Summary.TotalRevenue != 2100 || report.Summary.AverageOrderValue != 700 {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
	if len(report.FabricBreakdown) != 2 || report.FabricBreakdown[0].FabricType != "Cotton" {
		t.Fatalf("expected groups in first-appearance order, got %+v", report.FabricBreakdown)
	}
	cotton := report.FabricBreakdown[0]
	if cotton.Orders != 2 || cotton.Revenue != 1600 || cotton.QuantityMeters != 15 {
		t.Fatalf("unexpected cotton group: %+v", cotton)
	}

	ranged, err := f.reports.Sales(ctx, SalesQuery{FromDate: "2025-03-02", ToDate: "2025-03-03T12:00:00Z"})
	if err != nil {
		t.Fatalf("sales: %v", err)
	}
	if ranged.Summary.TotalOrders != 2 || ranged.FabricBreakdown[0].FabricType != "Silk" {
		t.Fatalf("unexpected ranged report: %+v", ranged)
	}

	_, err = f.reports.Sales(ctx, SalesQuery{FromDate: "last week"})
	assertKind(t, err, errorbank.KindBadRequest)
}

func TestInventoryReport(t *testing.T) {
	f := newFixture(t, true)
	report, err := f.reports.Inventory(context.Background())
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	want := model.StockLevels{InStock: 1, LowStock: 1, OutOfStock: 1}
	if report.StockLevels != want {
		t.Fatalf("expected %+v, got %+v", want, report.StockLevels)
	}
	if report.Summary.TotalItems != 3 || report.Summary.TotalMeters != 538 {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
}

func TestCustomerReportRanksBySpend(t *testing.T) {
	f := newFixture(t, true)
	report, err := f.reports.Customers(context.Background())
	if err != nil {
		t.Fatalf("customers: %v", err)
	}
	if report.TotalCustomers != 3 || len(report.TopCustomers) != 3 {
		t.Fatalf("unexpected report: %+v", report)
	}
	order := []string{"Hotel Grand Palace", "Sri Textiles", "Krishna Wholesale"}
	for i, name := range order {
		if report.TopCustomers[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, report.TopCustomers[i].Name)
		}
	}
	if report.TopCustomers[0].TotalSpent != 12000 || report.TopCustomers[0].TotalOrders != 1 {
		t.Fatalf("unexpected top customer: %+v", report.TopCustomers[0])
	}
	if report.TopCustomers[2].TotalOrders != 0 || report.TopCustomers[2].TotalSpent != 0 {
		t.Fatalf("customer without orders must report zeros")
	}
}

func TestBillingReportMatchesBillService(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	fromReport, _ := f.reports.Billing(ctx)
	fromBills, _ := f.bills.Summary(ctx)
	if fromReport != fromBills {
		t.Fatalf("expected identical summaries, got %+v and %+v", fromReport, fromBills)
	}
}
