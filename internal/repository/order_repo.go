package repository

import (
	"context"
	"time"

	"github.com/DeepakJD1226/Consultancy/internal/database"
	"github.com/DeepakJD1226/Consultancy/internal/model"
)

// OrderFilter narrows an order listing. From and To bound order_date inclusively.
type OrderFilter struct {
	Status     string
	CustomerID string
	From       *time.Time
	To         *time.Time
}

func (f OrderFilter) match(o model.Order) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.CustomerID != "" && o.CustomerID != f.CustomerID {
		return false
	}
	if f.From != nil && o.OrderDate.Before(*f.From) {
		return false
	}
	if f.To != nil && o.OrderDate.After(*f.To) {
		return false
	}
	return true
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	Update(ctx context.Context, id string, merge func(*model.Order) error) (model.Order, error)
	FindByID(ctx context.Context, id string) (model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
}

type orderRepository struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	return r.db.Orders.Insert(ctx, order)
}

func (r *orderRepository) Update(ctx context.Context, id string, merge func(*model.Order) error) (model.Order, error) {
	return r.db.Orders.Update(ctx, id, merge)
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (model.Order, error) {
	return r.db.Orders.FindByID(ctx, id)
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]model.Order, error) {
	return r.db.Orders.Filter(ctx, filter.match)
}
