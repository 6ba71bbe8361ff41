package repository

import (
	"context"

	"github.com/DeepakJD1226/Consultancy/internal/database"
	"github.com/DeepakJD1226/Consultancy/internal/model"
)

// RawMaterialFilter narrows a shipment listing.
type RawMaterialFilter struct {
	MillID string
	Status string
}

func (f RawMaterialFilter) match(rm model.RawMaterial) bool {
	if f.MillID != "" && rm.MillID != f.MillID {
		return false
	}
	if f.Status != "" && rm.Status != f.Status {
		return false
	}
	return true
}

type MillRepository interface {
	Create(ctx context.Context, mill model.Mill) (model.Mill, error)
	FindByID(ctx context.Context, id string) (model.Mill, error)
	List(ctx context.Context) ([]model.Mill, error)

	CreateRawMaterial(ctx context.Context, rm model.RawMaterial) (model.RawMaterial, error)
	UpdateRawMaterial(ctx context.Context, id string, merge func(*model.RawMaterial) error) (model.RawMaterial, error)
	FindRawMaterialByID(ctx context.Context, id string) (model.RawMaterial, error)
	ListRawMaterials(ctx context.Context, filter RawMaterialFilter) ([]model.RawMaterial, error)
}

type millRepository struct {
	db *database.DB
}

func NewMillRepository(db *database.DB) MillRepository {
	return &millRepository{db: db}
}

func (r *millRepository) Create(ctx context.Context, mill model.Mill) (model.Mill, error) {
	return r.db.Mills.Insert(ctx, mill)
}

func (r *millRepository) FindByID(ctx context.Context, id string) (model.Mill, error) {
	return r.db.Mills.FindByID(ctx, id)
}

func (r *millRepository) List(ctx context.Context) ([]model.Mill, error) {
	return r.db.Mills.All(ctx)
}

func (r *millRepository) CreateRawMaterial(ctx context.Context, rm model.RawMaterial) (model.RawMaterial, error) {
	return r.db.RawMaterials.Insert(ctx, rm)
}

func (r *millRepository) UpdateRawMaterial(ctx context.Context, id string, merge func(*model.RawMaterial) error) (model.RawMaterial, error) {
	return r.db.RawMaterials.Update(ctx, id, merge)
}

func (r *millRepository) FindRawMaterialByID(ctx context.Context, id string) (model.RawMaterial, error) {
	return r.db.RawMaterials.FindByID(ctx, id)
}

func (r *millRepository) ListRawMaterials(ctx context.Context, filter RawMaterialFilter) ([]model.RawMaterial, error) {
	return r.db.RawMaterials.Filter(ctx, filter.match)
}
