package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DeepakJD1226/Consultancy/internal/model"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/pkg/errorbank"
)

// --- Customer DTOs ---

type CreateCustomerRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	BusinessType string `json:"business_type"`
	Address      string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	BusinessType *string `json:"business_type"`
	Address      *string `json:"address"`
}

// PhoneLookup is the result of an exact phone search
type PhoneLookup struct {
	Found    bool            `json:"found"`
	Customer *model.Customer `json:"customer"`
}

const (
	msgCustomerNotFound  = "Customer not found"
	msgCustomerRequired  = "Name and phone are required"
	msgDuplicatePhone    = "Customer with this phone already exists"
	msgPhoneRequired     = "Phone number is required"
	msgCustomerNameEmpty = "name cannot be empty"
	msgPhoneEmpty        = "phone cannot be empty"
)

// --- Interface ---

type CustomerService interface {
	ListCustomers(ctx context.Context, filter repository.CustomerFilter) ([]model.Customer, error)
	SearchByPhone(ctx context.Context, phone string) (PhoneLookup, error)
	GetCustomer(ctx context.Context, id string) (model.Customer, error)
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// --- Implementation ---

type customerService struct {
	customerRepo repository.CustomerRepository
	txManager    repository.TransactionManager
}

func NewCustomerService(customerRepo repository.CustomerRepository, txManager repository.TransactionManager) CustomerService {
	return &customerService{customerRepo: customerRepo, txManager: txManager}
}

func (s *customerService) ListCustomers(ctx context.Context, filter repository.CustomerFilter) ([]model.Customer, error) {
	customers, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) SearchByPhone(ctx context.Context, phone string) (PhoneLookup, error) {
	if phone == "" {
		return PhoneLookup{}, errorbank.BadRequest(msgPhoneRequired)
	}

	customer, err := s.customerRepo.FindByPhone(ctx, phone)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return PhoneLookup{Found: false}, nil
	}
	if err != nil {
		return PhoneLookup{}, err
	}
	return PhoneLookup{Found: true, Customer: &customer}, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return model.Customer{}, notFound(err, msgCustomerNotFound)
	}
	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (model.Customer, error) {
	if req.Name == "" || req.Phone == "" {
		return model.Customer{}, errorbank.BadRequest(msgCustomerRequired)
	}

	var created model.Customer
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensurePhoneFree(txCtx, req.Phone, ""); err != nil {
			return err
		}
		var err error
		created, err = s.customerRepo.Create(txCtx, model.Customer{
			Name:         req.Name,
			Phone:        req.Phone,
			BusinessType: req.BusinessType,
			Address:      req.Address,
		})
		return err
	})
	if err != nil {
		return model.Customer{}, err
	}
	return created, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (model.Customer, error) {
	if req.Name != nil && *req.Name == "" {
		return model.Customer{}, errorbank.BadRequest(msgCustomerNameEmpty)
	}
	if req.Phone != nil && *req.Phone == "" {
		return model.Customer{}, errorbank.BadRequest(msgPhoneEmpty)
	}

	var updated model.Customer
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if req.Phone != nil {
			if err := s.ensurePhoneFree(txCtx, *req.Phone, id); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.customerRepo.Update(txCtx, id, func(c *model.Customer) error {
			if req.Name != nil {
				c.Name = *req.Name
			}
			if req.Phone != nil {
				c.Phone = *req.Phone
			}
			if req.BusinessType != nil {
				c.BusinessType = *req.BusinessType
			}
			if req.Address != nil {
				c.Address = *req.Address
			}
			return nil
		})
		return notFound(err, msgCustomerNotFound)
	})
	if err != nil {
		return model.Customer{}, err
	}
	return updated, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	return notFound(s.customerRepo.Delete(ctx, id), msgCustomerNotFound)
}

// ensurePhoneFree fails when another customer than exceptID already holds phone.
func (s *customerService) ensurePhoneFree(ctx context.Context, phone, exceptID string) error {
	existing, err := s.customerRepo.FindByPhone(ctx, phone)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != exceptID {
		return errorbank.Conflict(msgDuplicatePhone)
	}
	return nil
}
