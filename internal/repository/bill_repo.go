package repository

import (
	"context"

	"github.com/DeepakJD1226/Consultancy/internal/database"
	"github.com/DeepakJD1226/Consultancy/internal/model"
)

// BillFilter narrows a bill listing.
type BillFilter struct {
	PaymentStatus string
	CustomerID    string
}

func (f BillFilter) match(b model.Bill) bool {
	if f.PaymentStatus != "" && b.PaymentStatus != f.PaymentStatus {
		return false
	}
	if f.CustomerID != "" && b.CustomerID != f.CustomerID {
		return false
	}
	return true
}

type BillRepository interface {
	Create(ctx context.Context, bill model.Bill) (model.Bill, error)
	Update(ctx context.Context, id string, merge func(*model.Bill) error) (model.Bill, error)
	FindByID(ctx context.Context, id string) (model.Bill, error)
	List(ctx context.Context, filter BillFilter) ([]model.Bill, error)
	// NextBillNumber derives the next number from the current count. Call it
	// inside the same transaction as the insert that uses it.
	NextBillNumber(ctx context.Context) (string, error)
}

type billRepository struct {
	db *database.DB
}

func NewBillRepository(db *database.DB) BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill model.Bill) (model.Bill, error) {
	return r.db.Bills.Insert(ctx, bill)
}

func (r *billRepository) Update(ctx context.Context, id string, merge func(*model.Bill) error) (model.Bill, error) {
	return r.db.Bills.Update(ctx, id, merge)
}

func (r *billRepository) FindByID(ctx context.Context, id string) (model.Bill, error) {
	return r.db.Bills.FindByID(ctx, id)
}

func (r *billRepository) List(ctx context.Context, filter BillFilter) ([]model.Bill, error) {
	return r.db.Bills.Filter(ctx, filter.match)
}

func (r *billRepository) NextBillNumber(ctx context.Context) (string, error) {
	n, err := r.db.Bills.Count(ctx)
	if err != nil {
		return "", err
	}
	return model.BillNumber(n + 1), nil
}
