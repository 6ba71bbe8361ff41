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
type CreateInventoryRequest struct {
	FabricType     string  `json:"fabric_type"`
	FabricColor    string  `json:"fabric_color"`
	QuantityMeters float64 `json:"quantity_meters"`
	RatePerMeter   float64 `json:"rate_per_meter"`
	Location       string  `json:"location"`
}

type UpdateInventoryRequest struct {
	FabricType     *string  `json:"fabric_type"`
	FabricColor    *string  `json:"fabric_color"`
	QuantityMeters *float64 `json:"quantity_meters"`
	RatePerMeter   *float64 `json:"rate_per_meter"`
	Location       *string  `json:"location"`
}

// Websocket payload for stock movements
type StockEvent struct {
	ItemID         string  `json:"item_id"`
	FabricType     string  `json:"fabric_type"`
	QuantityMeters float64 `json:"quantity_meters"`
	Action         string  `json:"action"`
}

const (
	msgInventoryNotFound = "Inventory item not found"
	msgInventoryRequired = "fabric_type, fabric_color, quantity_meters, and rate_per_meter are required"
	msgNegativeQuantity  = "quantity_meters cannot be negative"
	msgNegativeRate      = "rate_per_meter cannot be negative"
)

type InventoryService interface {
	ListItems(ctx context.Context, filter repository.InventoryFilter) ([]model.InventoryItem, error)
	LowStock(ctx context.Context) ([]model.InventoryItem, error)
	Summary(ctx context.Context) (model.InventorySummary, error)
	GetItem(ctx context.Context, id string) (model.InventoryItem, error)
	CreateItem(ctx context.Context, req CreateInventoryRequest) (model.InventoryItem, error)
	UpdateItem(ctx context.Context, id string, req UpdateInventoryRequest) (model.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	events        EventPublisher
	logger        *zap.Logger
}

func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	events EventPublisher,
	logger *zap.Logger,
) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		events:        publisherOrNoop(events),
		logger:        logger.Named("inventory"),
	}
}

func (s *inventoryService) ListItems(ctx context.Context, filter repository.InventoryFilter) ([]model.InventoryItem, error) {
	items, err := s.inventoryRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	return items, nil
}

func (s *inventoryService) LowStock(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := s.inventoryRepo.LowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch low stock items: %w", err)
	}
	return items, nil
}

func (s *inventoryService) Summary(ctx context.Context) (model.InventorySummary, error) {
	items, err := s.inventoryRepo.List(ctx, repository.InventoryFilter{})
	if err != nil {
		return model.InventorySummary{}, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	return summarizeInventory(items), nil
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (model.InventoryItem, error) {
	item, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return model.InventoryItem{}, notFound(err, msgInventoryNotFound)
	}
	return item, nil
}

func (s *inventoryService) CreateItem(ctx context.Context, req CreateInventoryRequest) (model.InventoryItem, error) {
	if req.FabricType == "" || req.FabricColor == "" || req.QuantityMeters <= 0 || req.RatePerMeter <= 0 {
		return model.InventoryItem{}, errorbank.BadRequest(msgInventoryRequired)
	}

	item, err := s.inventoryRepo.Create(ctx, model.InventoryItem{
		FabricType:     req.FabricType,
		FabricColor:    req.FabricColor,
		QuantityMeters: req.QuantityMeters,
		RatePerMeter:   req.RatePerMeter,
		Location:       req.Location,
	})
	if err != nil {
		return model.InventoryItem{}, fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.publishStock(item, "created")
	return item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req UpdateInventoryRequest) (model.InventoryItem, error) {
	if req.QuantityMeters != nil && *req.QuantityMeters < 0 {
		return model.InventoryItem{}, errorbank.BadRequest(msgNegativeQuantity)
	}
	if req.RatePerMeter != nil && *req.RatePerMeter < 0 {
		return model.InventoryItem{}, errorbank.BadRequest(msgNegativeRate)
	}

	var wasLow bool
	item, err := s.inventoryRepo.Update(ctx, id, func(i *model.InventoryItem) error {
		wasLow = i.IsLowStock()
		if req.FabricType != nil {
			i.FabricType = *req.FabricType
		}
		if req.FabricColor != nil {
			i.FabricColor = *req.FabricColor
		}
		if req.QuantityMeters != nil {
			i.QuantityMeters = *req.QuantityMeters
		}
		if req.RatePerMeter != nil {
			i.RatePerMeter = *req.RatePerMeter
		}
		if req.Location != nil {
			i.Location = *req.Location
		}
		return nil
	})
	if err != nil {
		return model.InventoryItem{}, notFound(err, msgInventoryNotFound)
	}

	s.publishStock(item, "updated")
	if !wasLow && item.IsLowStock() {
		s.logger.Warn("inventory item dropped below low stock threshold",
			zap.String("item_id", item.ID),
			zap.String("fabric_type", item.FabricType),
			zap.Float64("quantity_meters", item.QuantityMeters),
		)
		s.events.Publish(EventLowStock, item)
	}
	return item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, msgInventoryNotFound)
	}
	if err := s.inventoryRepo.Delete(ctx, id); err != nil {
		return notFound(err, msgInventoryNotFound)
	}
	s.publishStock(item, "deleted")
	return nil
}

func (s *inventoryService) publishStock(item model.InventoryItem, action string) {
	s.events.Publish(EventInventoryChanged, StockEvent{
		ItemID:         item.ID,
		FabricType:     item.FabricType,
		QuantityMeters: item.QuantityMeters,
		Action:         action,
	})
}
