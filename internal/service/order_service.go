package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/DeepakJD1226/Consultancy/internal/model"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/pkg/errorbank"
)

// DTOs
type CreateOrderRequest struct {
	CustomerID     string  `json:"customer_id"`
	FabricType     string  `json:"fabric_type"`
	QuantityMeters float64 `json:"quantity_meters"`
	RatePerMeter   float64 `json:"rate_per_meter"`
	Notes          string  `json:"notes"`
}

type UpdateOrderRequest struct {
	CustomerID     *string  `json:"customer_id"`
	FabricType     *string  `json:"fabric_type"`
	QuantityMeters *float64 `json:"quantity_meters"`
	RatePerMeter   *float64 `json:"rate_per_meter"`
	Status         *string  `json:"status" binding:"omitempty,oneof=Pending Completed Cancelled"`
	Notes          *string  `json:"notes"`
}

type AvailabilityRequest struct {
	FabricType     string  `json:"fabric_type"`
	QuantityMeters float64 `json:"quantity_meters"`
}

// OrderResponse is an order with its customer's name and phone, or null
// when the customer no longer exists.
type OrderResponse struct {
	model.Order
	Customers *model.CustomerRef `json:"customers"`
}

// Websocket payload for a newly placed order
type OrderCreatedEvent struct {
	Order      model.Order `json:"order"`
	BillNumber string      `json:"bill_number"`
}

const (
	msgOrderNotFound        = "Order not found"
	msgOrderRequired        = "customer_id, fabric_type, quantity_meters, and rate_per_meter are required"
	msgAvailabilityRequired = "fabric_type and quantity_meters are required"
	msgOrderCancelled       = "Order cancelled"
	msgBillForOrderFailed   = "failed to create bill for order"
)

var validOrderStatuses = map[string]bool{
	model.OrderStatusPending:   true,
	model.OrderStatusCompleted: true,
	model.OrderStatusCancelled: true,
}

type OrderService interface {
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]OrderResponse, error)
	GetOrder(ctx context.Context, id string) (OrderResponse, error)
	CheckAvailability(ctx context.Context, req AvailabilityRequest) (model.Availability, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (model.Order, error)
	UpdateOrder(ctx context.Context, id string, req UpdateOrderRequest) (model.Order, error)
	CancelOrder(ctx context.Context, id string) (string, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	billRepo      repository.BillRepository
	customerRepo  repository.CustomerRepository
	inventoryRepo repository.InventoryRepository
	txManager     repository.TransactionManager
	events        EventPublisher
	logger        *zap.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
	inventoryRepo repository.InventoryRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
	logger *zap.Logger,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		billRepo:      billRepo,
		customerRepo:  customerRepo,
		inventoryRepo: inventoryRepo,
		txManager:     txManager,
		events:        publisherOrNoop(events),
		logger:        logger.Named("orders"),
	}
}

func (s *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]OrderResponse, error) {
	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		enriched, err := s.enrich(ctx, o)
		if err != nil {
			return nil, err
		}
		res = append(res, enriched)
	}
	return res, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return OrderResponse{}, notFound(err, msgOrderNotFound)
	}
	return s.enrich(ctx, order)
}

// CheckAvailability sums stock across every item of the fabric type. It never reserves stock.
func (s *orderService) CheckAvailability(ctx context.Context, req AvailabilityRequest) (model.Availability, error) {
	if req.FabricType == "" || req.QuantityMeters == 0 {
		return model.Availability{}, errorbank.BadRequest(msgAvailabilityRequired)
	}

	items, err := s.inventoryRepo.List(ctx, repository.InventoryFilter{FabricType: req.FabricType})
	if err != nil {
		return model.Availability{}, fmt.Errorf("failed to fetch inventory: %w", err)
	}

	var total float64
	for _, item := range items {
		total += item.QuantityMeters
	}
	return model.Availability{
		Available:         total >= req.QuantityMeters,
		AvailableQuantity: total,
		RequestedQuantity: req.QuantityMeters,
	}, nil
}

// CreateOrder stores a pending order and its bill in one transaction. If the
// bill cannot be written the order is rolled back.
func (s *orderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (model.Order, error) {
	if req.CustomerID == "" || req.FabricType == "" || req.QuantityMeters == 0 || req.RatePerMeter == 0 {
		return model.Order{}, errorbank.BadRequest(msgOrderRequired)
	}

	var (
		order model.Order
		bill  model.Bill
	)
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		total := req.QuantityMeters * req.RatePerMeter

		var err error
		order, err = s.orderRepo.Create(txCtx, model.Order{
			CustomerID:     req.CustomerID,
			FabricType:     req.FabricType,
			QuantityMeters: req.QuantityMeters,
			RatePerMeter:   req.RatePerMeter,
			TotalAmount:    total,
			Status:         model.OrderStatusPending,
			OrderDate:      s.txManager.Now(),
			Notes:          req.Notes,
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		bill, err = s.createBillForOrder(txCtx, order)
		if err != nil {
			s.logger.Warn("rolling back order after bill failure", zap.Error(err))
			return errorbank.Internal(msgBillForOrderFailed, errorbank.WithCause(err))
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("bill_number", bill.BillNumber),
		zap.Float64("total_amount", order.TotalAmount),
	)
	s.events.Publish(EventOrderCreated, OrderCreatedEvent{Order: order, BillNumber: bill.BillNumber})
	return order, nil
}

func (s *orderService) createBillForOrder(ctx context.Context, order model.Order) (model.Bill, error) {
	number, err := s.billRepo.NextBillNumber(ctx)
	if err != nil {
		return model.Bill{}, err
	}
	orderID := order.ID
	return s.billRepo.Create(ctx, model.Bill{
		BillNumber:    number,
		CustomerID:    order.CustomerID,
		OrderID:       &orderID,
		BillDate:      order.OrderDate,
		TotalAmount:   order.TotalAmount,
		TaxAmount:     order.TotalAmount * model.DefaultTaxRate,
		GrandTotal:    order.TotalAmount * model.GrandTotalFactor,
		PaymentStatus: model.PaymentStatusPending,
	})
}

// UpdateOrder merges the supplied fields. total_amount is left as computed at creation.
func (s *orderService) UpdateOrder(ctx context.Context, id string, req UpdateOrderRequest) (model.Order, error) {
	if req.Status != nil && !validOrderStatuses[*req.Status] {
		return model.Order{}, errorbank.BadRequest("status must be one of: Pending, Completed, Cancelled")
	}

	order, err := s.orderRepo.Update(ctx, id, func(o *model.Order) error {
		if req.CustomerID != nil {
			o.CustomerID = *req.CustomerID
		}
		if req.FabricType != nil {
			o.FabricType = *req.FabricType
		}
		if req.QuantityMeters != nil {
			o.QuantityMeters = *req.QuantityMeters
		}
		if req.RatePerMeter != nil {
			o.RatePerMeter = *req.RatePerMeter
		}
		if req.Status != nil {
			o.Status = *req.Status
		}
		if req.Notes != nil {
			o.Notes = *req.Notes
		}
		return nil
	})
	if err != nil {
		return model.Order{}, notFound(err, msgOrderNotFound)
	}

	s.events.Publish(EventOrderUpdated, order)
	return order, nil
}

// CancelOrder marks the order Cancelled. Orders are never removed.
func (s *orderService) CancelOrder(ctx context.Context, id string) (string, error) {
	order, err := s.orderRepo.Update(ctx, id, func(o *model.Order) error {
		o.Status = model.OrderStatusCancelled
		return nil
	})
	if err != nil {
		return "", notFound(err, msgOrderNotFound)
	}

	s.events.Publish(EventOrderCancelled, order)
	return msgOrderCancelled, nil
}

func (s *orderService) enrich(ctx context.Context, order model.Order) (OrderResponse, error) {
	ref, err := customerRef(ctx, s.customerRepo, order.CustomerID)
	if err != nil {
		return OrderResponse{}, err
	}
	return OrderResponse{Order: order, Customers: ref}, nil
}
