package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/DeepakJD1226/Consultancy/internal/model"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/pkg/errorbank"
)

// DTOs
type CreateMillRequest struct {
	MillName      string `json:"mill_name"`
	Location      string `json:"location"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
}

type CreateRawMaterialRequest struct {
	MillID       string  `json:"mill_id"`
	MaterialType string  `json:"material_type"`
	QuantityKg   float64 `json:"quantity_kg"`
}

// UpdateRawMaterialRequest patches a shipment. A numeric fabric_received_meters
// records a receipt: the shipment is completed and the meters are added to the
// stock line matching fabric_type and fabric_color. An explicit null clears it.
type UpdateRawMaterialRequest struct {
	MillID               *string       `json:"mill_id"`
	MaterialType         *string       `json:"material_type"`
	QuantityKg           *float64      `json:"quantity_kg"`
	Status               *string       `json:"status"`
	FabricReceivedMeters NullableFloat `json:"fabric_received_meters" swaggertype:"number"`
	FabricType           *string       `json:"fabric_type"`
	FabricColor          *string       `json:"fabric_color"`
	RatePerMeter         *float64      `json:"rate_per_meter"`
}

// NullableFloat tells an omitted JSON field apart from an explicit null.
type NullableFloat struct {
	Set   bool
	Value *float64
}

func (n *NullableFloat) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// RawMaterialResponse is a shipment with its mill's name, or null.
type RawMaterialResponse struct {
	model.RawMaterial
	Mills *model.MillRef `json:"mills"`
}

const (
	msgMillNotFound        = "Mill not found"
	msgMillNameRequired    = "mill_name is required"
	msgRawMaterialNotFound = "Raw material entry not found"
	msgRawMaterialRequired = "mill_id, material_type, and quantity_kg are required"
	msgReceivedNegative    = "fabric_received_meters cannot be negative"
)

// Stock line used for a fabric receipt when the request does not name one
const (
	receiptFabricType   = "Cotton Fabric"
	receiptFabricColor  = "White"
	receiptRatePerMeter = 100.0
	receiptLocation     = "Main Warehouse"
)

type MillService interface {
	ListMills(ctx context.Context) ([]model.Mill, error)
	GetMill(ctx context.Context, id string) (model.Mill, error)
	CreateMill(ctx context.Context, req CreateMillRequest) (model.Mill, error)
	ListRawMaterials(ctx context.Context, filter repository.RawMaterialFilter) ([]RawMaterialResponse, error)
	GetRawMaterial(ctx context.Context, id string) (RawMaterialResponse, error)
	CreateRawMaterial(ctx context.Context, req CreateRawMaterialRequest) (model.RawMaterial, error)
	UpdateRawMaterial(ctx context.Context, id string, req UpdateRawMaterialRequest) (model.RawMaterial, error)
	Performance(ctx context.Context) ([]model.MillPerformance, error)
}

type millService struct {
	millRepo      repository.MillRepository
	inventoryRepo repository.InventoryRepository
	txManager     repository.TransactionManager
	events        EventPublisher
	logger        *zap.Logger
}

func NewMillService(
	millRepo repository.MillRepository,
	inventoryRepo repository.InventoryRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
	logger *zap.Logger,
) MillService {
	return &millService{
		millRepo:      millRepo,
		inventoryRepo: inventoryRepo,
		txManager:     txManager,
		events:        publisherOrNoop(events),
		logger:        logger.Named("mills"),
	}
}

func (s *millService) ListMills(ctx context.Context) ([]model.Mill, error) {
	mills, err := s.millRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mills: %w", err)
	}
	return mills, nil
}

func (s *millService) GetMill(ctx context.Context, id string) (model.Mill, error) {
	mill, err := s.millRepo.FindByID(ctx, id)
	if err != nil {
		return model.Mill{}, notFound(err, msgMillNotFound)
	}
	return mill, nil
}

func (s *millService) CreateMill(ctx context.Context, req CreateMillRequest) (model.Mill, error) {
	if req.MillName == "" {
		return model.Mill{}, errorbank.BadRequest(msgMillNameRequired)
	}
	mill, err := s.millRepo.Create(ctx, model.Mill{
		MillName:      req.MillName,
		Location:      req.Location,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
	})
	if err != nil {
		return model.Mill{}, fmt.Errorf("failed to create mill: %w", err)
	}
	return mill, nil
}

func (s *millService) ListRawMaterials(ctx context.Context, filter repository.RawMaterialFilter) ([]RawMaterialResponse, error) {
	shipments, err := s.millRepo.ListRawMaterials(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch raw materials: %w", err)
	}

	res := make([]RawMaterialResponse, 0, len(shipments))
	for _, rm := range shipments {
		ref, err := millRef(ctx, s.millRepo, rm.MillID)
		if err != nil {
			return nil, err
		}
		res = append(res, RawMaterialResponse{RawMaterial: rm, Mills: ref})
	}
	return res, nil
}

func (s *millService) GetRawMaterial(ctx context.Context, id string) (RawMaterialResponse, error) {
	rm, err := s.millRepo.FindRawMaterialByID(ctx, id)
	if err != nil {
		return RawMaterialResponse{}, notFound(err, msgRawMaterialNotFound)
	}
	ref, err := millRef(ctx, s.millRepo, rm.MillID)
	if err != nil {
		return RawMaterialResponse{}, err
	}
	return RawMaterialResponse{RawMaterial: rm, Mills: ref}, nil
}

// CreateRawMaterial records a shipment as Sent with nothing received yet.
func (s *millService) CreateRawMaterial(ctx context.Context, req CreateRawMaterialRequest) (model.RawMaterial, error) {
	if req.MillID == "" || req.MaterialType == "" || req.QuantityKg == 0 {
		return model.RawMaterial{}, errorbank.BadRequest(msgRawMaterialRequired)
	}
	rm, err := s.millRepo.CreateRawMaterial(ctx, model.RawMaterial{
		MillID:       req.MillID,
		MaterialType: req.MaterialType,
		QuantityKg:   req.QuantityKg,
		SentDate:     s.txManager.Now(),
		Status:       model.RawMaterialStatusSent,
	})
	if err != nil {
		return model.RawMaterial{}, fmt.Errorf("failed to create raw material entry: %w", err)
	}
	return rm, nil
}

func (s *millService) UpdateRawMaterial(ctx context.Context, id string, req UpdateRawMaterialRequest) (model.RawMaterial, error) {
	received := req.FabricReceivedMeters.Value
	if received != nil && *received < 0 {
		return model.RawMaterial{}, errorbank.BadRequest(msgReceivedNegative)
	}

	var (
		rm    model.RawMaterial
		stock *model.InventoryItem
	)
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		receivedAt := s.txManager.Now()
		var err error
		rm, err = s.millRepo.UpdateRawMaterial(txCtx, id, func(r *model.RawMaterial) error {
			if req.MillID != nil {
				r.MillID = *req.MillID
			}
			if req.MaterialType != nil {
				r.MaterialType = *req.MaterialType
			}
			if req.QuantityKg != nil {
				r.QuantityKg = *req.QuantityKg
			}
			if req.Status != nil {
				r.Status = *req.Status
			}
			if req.FabricReceivedMeters.Set {
				if received == nil {
					r.FabricReceivedMeters = nil
					r.ReceivedDate = nil
				} else {
					meters := *received
					r.FabricReceivedMeters = &meters
					r.ReceivedDate = &receivedAt
					r.Status = model.RawMaterialStatusCompleted
				}
			}
			return nil
		})
		if err != nil {
			return notFound(err, msgRawMaterialNotFound)
		}
		if received == nil {
			return nil
		}

		item, err := s.receiveFabric(txCtx, req, *received)
		if err != nil {
			return fmt.Errorf("failed to add received fabric to inventory: %w", err)
		}
		stock = &item
		return nil
	})
	if err != nil {
		return model.RawMaterial{}, err
	}

	s.events.Publish(EventShipmentUpdated, rm)
	if stock != nil {
		s.logger.Info("fabric received into stock",
			zap.String("raw_material_id", rm.ID),
			zap.String("item_id", stock.ID),
			zap.Float64("received_meters", *received),
		)
		s.events.Publish(EventInventoryChanged, StockEvent{
			ItemID:         stock.ID,
			FabricType:     stock.FabricType,
			QuantityMeters: stock.QuantityMeters,
			Action:         "received",
		})
	}
	return rm, nil
}

// receiveFabric adds meters to the matching stock line, creating it if needed.
func (s *millService) receiveFabric(ctx context.Context, req UpdateRawMaterialRequest, meters float64) (model.InventoryItem, error) {
	fabricType := stringOr(req.FabricType, receiptFabricType)
	fabricColor := stringOr(req.FabricColor, receiptFabricColor)

	item, err := s.inventoryRepo.FindByFabric(ctx, fabricType, fabricColor)
	if err == nil {
		return s.inventoryRepo.Update(ctx, item.ID, func(i *model.InventoryItem) error {
			i.QuantityMeters += meters
			return nil
		})
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return model.InventoryItem{}, err
	}

	rate := receiptRatePerMeter
	if req.RatePerMeter != nil {
		rate = *req.RatePerMeter
	}
	return s.inventoryRepo.Create(ctx, model.InventoryItem{
		FabricType:     fabricType,
		FabricColor:    fabricColor,
		QuantityMeters: meters,
		RatePerMeter:   rate,
		Location:       receiptLocation,
	})
}

func (s *millService) Performance(ctx context.Context) ([]model.MillPerformance, error) {
	return loadMillPerformance(ctx, s.millRepo)
}

func loadMillPerformance(ctx context.Context, repo repository.MillRepository) ([]model.MillPerformance, error) {
	mills, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mills: %w", err)
	}
	shipments, err := repo.ListRawMaterials(ctx, repository.RawMaterialFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch raw materials: %w", err)
	}
	return millPerformance(mills, shipments), nil
}

func stringOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}
