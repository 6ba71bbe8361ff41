package service

import (
	"context"
	"errors"

	"github.com/DeepakJD1226/Consultancy/internal/model"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/pkg/errorbank"
)

// Joins resolve a foreign key to an optional projection. A dangling key is
// not an error and yields nil.

func lookupCustomer(ctx context.Context, repo repository.CustomerRepository, id string) (*model.Customer, error) {
	customer, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func customerRef(ctx context.Context, repo repository.CustomerRepository, id string) (*model.CustomerRef, error) {
	customer, err := lookupCustomer(ctx, repo, id)
	if err != nil || customer == nil {
		return nil, err
	}
	return &model.CustomerRef{Name: customer.Name, Phone: customer.Phone}, nil
}

func lookupOrder(ctx context.Context, repo repository.OrderRepository, id string) (*model.Order, error) {
	order, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func millRef(ctx context.Context, repo repository.MillRepository, id string) (*model.MillRef, error) {
	mill, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.MillRef{MillName: mill.MillName}, nil
}

// notFound maps a missing-record error to a 404 with the given message.
func notFound(err error, message string) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return errorbank.NotFound(message)
	}
	return err
}
