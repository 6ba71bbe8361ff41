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
type CreateBillRequest struct {
	CustomerID    string  `json:"customer_id"`
	OrderID       string  `json:"order_id"`
	TotalAmount   float64 `json:"total_amount"`
	TaxAmount     float64 `json:"tax_amount"`
	PaymentStatus string  `json:"payment_status" binding:"omitempty,oneof=Pending Paid"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// BillResponse is a bill with its customer's name and phone, or null.
type BillResponse struct {
	model.Bill
	Customers *model.CustomerRef `json:"customers"`
}

// BillDocument is the downloadable form of a bill with the full customer
// record and the order it was raised for. Either may be null.
type BillDocument struct {
	model.Bill
	Customer *model.Customer `json:"customer"`
	Order    *model.Order    `json:"order"`
}

const (
	msgBillNotFound          = "Bill not found"
	msgBillRequired          = "customer_id and total_amount are required"
	msgPaymentStatusRequired = "payment_status is required"
	msgPaymentStatusInvalid  = "payment_status must be one of: Pending, Paid"
)

var validPaymentStatuses = map[string]bool{
	model.PaymentStatusPending: true,
	model.PaymentStatusPaid:    true,
}

type BillService interface {
	ListBills(ctx context.Context, filter repository.BillFilter) ([]BillResponse, error)
	GetBill(ctx context.Context, id string) (BillResponse, error)
	GetBillDocument(ctx context.Context, id string) (BillDocument, error)
	CreateBill(ctx context.Context, req CreateBillRequest) (model.Bill, error)
	UpdatePayment(ctx context.Context, id string, req UpdatePaymentRequest) (model.Bill, error)
	Summary(ctx context.Context) (model.BillingSummary, error)
}

type billService struct {
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	txManager    repository.TransactionManager
	events       EventPublisher
	logger       *zap.Logger
}

func NewBillService(
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
	logger *zap.Logger,
) BillService {
	return &billService{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		txManager:    txManager,
		events:       publisherOrNoop(events),
		logger:       logger.Named("bills"),
	}
}

func (s *billService) ListBills(ctx context.Context, filter repository.BillFilter) ([]BillResponse, error) {
	bills, err := s.billRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bills: %w", err)
	}

	res := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		ref, err := customerRef(ctx, s.customerRepo, b.CustomerID)
		if err != nil {
			return nil, err
		}
		res = append(res, BillResponse{Bill: b, Customers: ref})
	}
	return res, nil
}

func (s *billService) GetBill(ctx context.Context, id string) (BillResponse, error) {
	bill, err := s.billRepo.FindByID(ctx, id)
	if err != nil {
		return BillResponse{}, notFound(err, msgBillNotFound)
	}
	ref, err := customerRef(ctx, s.customerRepo, bill.CustomerID)
	if err != nil {
		return BillResponse{}, err
	}
	return BillResponse{Bill: bill, Customers: ref}, nil
}

func (s *billService) GetBillDocument(ctx context.Context, id string) (BillDocument, error) {
	bill, err := s.billRepo.FindByID(ctx, id)
	if err != nil {
		return BillDocument{}, notFound(err, msgBillNotFound)
	}
	customer, err := lookupCustomer(ctx, s.customerRepo, bill.CustomerID)
	if err != nil {
		return BillDocument{}, err
	}
	var order *model.Order
	if bill.OrderID != nil {
		order, err = lookupOrder(ctx, s.orderRepo, *bill.OrderID)
		if err != nil {
			return BillDocument{}, err
		}
	}
	return BillDocument{Bill: bill, Customer: customer, Order: order}, nil
}

// CreateBill records a manual bill. A non-zero tax amount is taken as given;
// otherwise the default rate applies.
func (s *billService) CreateBill(ctx context.Context, req CreateBillRequest) (model.Bill, error) {
	if req.CustomerID == "" || req.TotalAmount == 0 {
		return model.Bill{}, errorbank.BadRequest(msgBillRequired)
	}
	status := req.PaymentStatus
	if status == "" {
		status = model.PaymentStatusPending
	}
	if !validPaymentStatuses[status] {
		return model.Bill{}, errorbank.BadRequest(msgPaymentStatusInvalid)
	}

	bill := model.Bill{
		CustomerID:    req.CustomerID,
		BillDate:      s.txManager.Now(),
		TotalAmount:   req.TotalAmount,
		PaymentStatus: status,
	}
	if req.OrderID != "" {
		orderID := req.OrderID
		bill.OrderID = &orderID
	}
	if req.TaxAmount != 0 {
		bill.TaxAmount = req.TaxAmount
		bill.GrandTotal = req.TotalAmount + req.TaxAmount
	} else {
		bill.TaxAmount = req.TotalAmount * model.DefaultTaxRate
		bill.GrandTotal = req.TotalAmount * model.GrandTotalFactor
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		number, err := s.billRepo.NextBillNumber(txCtx)
		if err != nil {
			return err
		}
		bill.BillNumber = number
		bill, err = s.billRepo.Create(txCtx, bill)
		return err
	})
	if err != nil {
		return model.Bill{}, fmt.Errorf("failed to create bill: %w", err)
	}

	s.logger.Info("bill created", zap.String("bill_number", bill.BillNumber), zap.Float64("grand_total", bill.GrandTotal))
	s.events.Publish(EventBillCreated, bill)
	return bill, nil
}

func (s *billService) UpdatePayment(ctx context.Context, id string, req UpdatePaymentRequest) (model.Bill, error) {
	if req.PaymentStatus == "" {
		return model.Bill{}, errorbank.BadRequest(msgPaymentStatusRequired)
	}
	if !validPaymentStatuses[req.PaymentStatus] {
		return model.Bill{}, errorbank.BadRequest(msgPaymentStatusInvalid)
	}

	bill, err := s.billRepo.Update(ctx, id, func(b *model.Bill) error {
		b.PaymentStatus = req.PaymentStatus
		return nil
	})
	if err != nil {
		return model.Bill{}, notFound(err, msgBillNotFound)
	}

	s.events.Publish(EventBillPaymentSet, bill)
	return bill, nil
}

func (s *billService) Summary(ctx context.Context) (model.BillingSummary, error) {
	bills, err := s.billRepo.List(ctx, repository.BillFilter{})
	if err != nil {
		return model.BillingSummary{}, fmt.Errorf("failed to fetch bills: %w", err)
	}
	return summarizeBilling(bills), nil
}
