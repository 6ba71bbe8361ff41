package repository

import (
	"context"
	"strings"

	"github.com/DeepakJD1226/Consultancy/internal/database"
	"github.com/DeepakJD1226/Consultancy/internal/model"
)

// CustomerFilter narrows a customer listing. Empty fields do not filter.
type CustomerFilter struct {
	Search       string // case-insensitive name substring or phone substring
	BusinessType string
}

func (f CustomerFilter) match(c model.Customer) bool {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), search) && !strings.Contains(c.Phone, search) {
			return false
		}
	}
	if f.BusinessType != "" && c.BusinessType != f.BusinessType {
		return false
	}
	return true
}

type CustomerRepository interface {
	Create(ctx context.Context, customer model.Customer) (model.Customer, error)
	Update(ctx context.Context, id string, merge func(*model.Customer) error) (model.Customer, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (model.Customer, error)
	FindByPhone(ctx context.Context, phone string) (model.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]model.Customer, error)
}

type customerRepository struct {
	db *database.DB
}

func NewCustomerRepository(db *database.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer model.Customer) (model.Customer, error) {
	return r.db.Customers.Insert(ctx, customer)
}

func (r *customerRepository) Update(ctx context.Context, id string, merge func(*model.Customer) error) (model.Customer, error) {
	return r.db.Customers.Update(ctx, id, merge)
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	return r.db.Customers.Delete(ctx, id)
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (model.Customer, error) {
	return r.db.Customers.FindByID(ctx, id)
}

// FindByPhone returns the first customer whose phone matches exactly.
func (r *customerRepository) FindByPhone(ctx context.Context, phone string) (model.Customer, error) {
	return r.db.Customers.First(ctx, func(c model.Customer) bool {
		return c.Phone == phone
	})
}

func (r *customerRepository) List(ctx context.Context, filter CustomerFilter) ([]model.Customer, error) {
	return r.db.Customers.Filter(ctx, filter.match)
}
