package repository

import (
	"context"

	"github.com/DeepakJD1226/Consultancy/internal/database"
	"github.com/DeepakJD1226/Consultancy/internal/model"
)

// InventoryFilter narrows an inventory listing.
type InventoryFilter struct {
	FabricType string
	LowStock   bool
}

func (f InventoryFilter) match(i model.InventoryItem) bool {
	if f.FabricType != "" && i.FabricType != f.FabricType {
		return false
	}
	if f.LowStock && !i.IsLowStock() {
		return false
	}
	return true
}

type InventoryRepository interface {
	Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error)
	Update(ctx context.Context, id string, merge func(*model.InventoryItem) error) (model.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (model.InventoryItem, error)
	List(ctx context.Context, filter InventoryFilter) ([]model.InventoryItem, error)
	LowStock(ctx context.Context) ([]model.InventoryItem, error)
	FindByFabric(ctx context.Context, fabricType, fabricColor string) (model.InventoryItem, error)
}

type inventoryRepository struct {
	db *database.DB
}

func NewInventoryRepository(db *database.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	return r.db.Inventory.Insert(ctx, item)
}

func (r *inventoryRepository) Update(ctx context.Context, id string, merge func(*model.InventoryItem) error) (model.InventoryItem, error) {
	return r.db.Inventory.Update(ctx, id, merge)
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.Inventory.Delete(ctx, id)
}

func (r *inventoryRepository) FindByID(ctx context.Context, id string) (model.InventoryItem, error) {
	return r.db.Inventory.FindByID(ctx, id)
}

func (r *inventoryRepository) List(ctx context.Context, filter InventoryFilter) ([]model.InventoryItem, error) {
	return r.db.Inventory.Filter(ctx, filter.match)
}

func (r *inventoryRepository) LowStock(ctx context.Context) ([]model.InventoryItem, error) {
	return r.List(ctx, InventoryFilter{LowStock: true})
}

// FindByFabric returns the first stock line with the exact type and color.
func (r *inventoryRepository) FindByFabric(ctx context.Context, fabricType, fabricColor string) (model.InventoryItem, error) {
	return r.db.Inventory.First(ctx, func(i model.InventoryItem) bool {
		return i.FabricType == fabricType && i.FabricColor == fabricColor
	})
}
