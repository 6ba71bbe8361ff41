package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DeepakJD1226/Consultancy/internal/model"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/pkg/errorbank"
)

// SalesQuery bounds the sales report. Dates are YYYY-MM-DD (UTC midnight) or RFC3339.
type SalesQuery struct {
	FromDate string `form:"from_date"`
	ToDate   string `form:"to_date"`
}

const (
	unknownCustomerName  = "Unknown"
	unknownCustomerPhone = "N/A"
)

type ReportService interface {
	Dashboard(ctx context.Context) (model.DashboardSummary, error)
	Sales(ctx context.Context, query SalesQuery) (model.SalesReport, error)
	Inventory(ctx context.Context) (model.InventoryReport, error)
	Customers(ctx context.Context) (model.CustomerReport, error)
	MillPerformance(ctx context.Context) ([]model.MillPerformance, error)
	Billing(ctx context.Context) (model.BillingSummary, error)
}

type reportService struct {
	customerRepo  repository.CustomerRepository
	orderRepo     repository.OrderRepository
	inventoryRepo repository.InventoryRepository
	billRepo      repository.BillRepository
	millRepo      repository.MillRepository
}

func NewReportService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	billRepo repository.BillRepository,
	millRepo repository.MillRepository,
) ReportService {
	return &reportService{
		customerRepo:  customerRepo,
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		billRepo:      billRepo,
		millRepo:      millRepo,
	}
}

func (s *reportService) Dashboard(ctx context.Context) (model.DashboardSummary, error) {
	customers, err := s.customerRepo.List(ctx, repository.CustomerFilter{})
	if err != nil {
		return model.DashboardSummary{}, fmt.Errorf("failed to fetch customers: %w", err)
	}
	orders, err := s.orderRepo.List(ctx, repository.OrderFilter{})
	if err != nil {
		return model.DashboardSummary{}, fmt.Errorf("failed to fetch orders: %w", err)
	}
	items, err := s.inventoryRepo.List(ctx, repository.InventoryFilter{})
	if err != nil {
		return model.DashboardSummary{}, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	bills, err := s.billRepo.List(ctx, repository.BillFilter{})
	if err != nil {
		return model.DashboardSummary{}, fmt.Errorf("failed to fetch bills: %w", err)
	}

	summary := model.DashboardSummary{
		Customers: model.CustomerStats{Total: len(customers)},
		Orders:    model.OrderStats{Total: len(orders)},
	}
	for _, o := range orders {
		switch o.Status {
		case model.OrderStatusPending:
			summary.Orders.Pending++
		case model.OrderStatusCompleted:
			summary.Orders.Completed++
		}
		summary.Revenue.Total += o.TotalAmount
	}
	summary.Revenue.PendingPayments = pendingPayments(bills)

	for _, item := range items {
		summary.Inventory.TotalValue += item.Value()
		if item.IsLowStock() {
			summary.Inventory.LowStockItems++
		}
	}

	latest := latestOrders(orders, recentOrdersLimit)
	summary.RecentOrders = make([]model.RecentOrder, 0, len(latest))
	for _, o := range latest {
		recent := model.RecentOrder{Order: o, CustomerName: unknownCustomerName, CustomerPhone: unknownCustomerPhone}
		customer, err := lookupCustomer(ctx, s.customerRepo, o.CustomerID)
		if err != nil {
			return model.DashboardSummary{}, err
		}
		if customer != nil {
			recent.CustomerName = customer.Name
			recent.CustomerPhone = customer.Phone
		}
		summary.RecentOrders = append(summary.RecentOrders, recent)
	}

	return summary, nil
}

func (s *reportService) Sales(ctx context.Context, query SalesQuery) (model.SalesReport, error) {
	var filter repository.OrderFilter
	var err error
	if filter.From, err = parseReportDate("from_date", query.FromDate); err != nil {
		return model.SalesReport{}, err
	}
	if filter.To, err = parseReportDate("to_date", query.ToDate); err != nil {
		return model.SalesReport{}, err
	}

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return model.SalesReport{}, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return summarizeSales(orders), nil
}

func (s *reportService) Inventory(ctx context.Context) (model.InventoryReport, error) {
	items, err := s.inventoryRepo.List(ctx, repository.InventoryFilter{})
	if err != nil {
		return model.InventoryReport{}, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	return model.InventoryReport{
		Summary:     summarizeInventory(items),
		StockLevels: classifyStock(items),
	}, nil
}

func (s *reportService) Customers(ctx context.Context) (model.CustomerReport, error) {
	customers, err := s.customerRepo.List(ctx, repository.CustomerFilter{})
	if err != nil {
		return model.CustomerReport{}, fmt.Errorf("failed to fetch customers: %w", err)
	}
	orders, err := s.orderRepo.List(ctx, repository.OrderFilter{})
	if err != nil {
		return model.CustomerReport{}, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return model.CustomerReport{
		TotalCustomers: len(customers),
		TopCustomers:   rankCustomers(customers, orders),
	}, nil
}

func (s *reportService) MillPerformance(ctx context.Context) ([]model.MillPerformance, error) {
	return loadMillPerformance(ctx, s.millRepo)
}

func (s *reportService) Billing(ctx context.Context) (model.BillingSummary, error) {
	bills, err := s.billRepo.List(ctx, repository.BillFilter{})
	if err != nil {
		return model.BillingSummary{}, fmt.Errorf("failed to fetch bills: %w", err)
	}
	return summarizeBilling(bills), nil
}

var reportDateLayouts = []string{"2006-01-02", time.RFC3339Nano}

func parseReportDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range reportDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errorbank.BadRequest(fmt.Sprintf("invalid %s: expected YYYY-MM-DD or RFC3339", field))
}
