package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/DeepakJD1226/Consultancy/internal/database"
	"github.com/DeepakJD1226/Consultancy/internal/model"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/pkg/errorbank"
)

type recordedEvent struct {
	name string
	data interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(event string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{name: event, data: data})
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.name)
	}
	return out
}

type fixture struct {
	db        *database.DB
	events    *recordingPublisher
	customers CustomerService
	inventory InventoryService
	orders    OrderService
	bills     BillService
	mills     MillService
	reports   ReportService

	customerRepo  repository.CustomerRepository
	orderRepo     repository.OrderRepository
	billRepo      repository.BillRepository
	inventoryRepo repository.InventoryRepository
}

func newFixture(t *testing.T, seed bool) *fixture {
	t.Helper()
	db := database.Open()
	if seed {
		if err := database.Seed(context.Background(), db); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return newFixtureOn(db)
}

func newFixtureOn(db *database.DB) *fixture {
	logger := zap.NewNop()
	events := &recordingPublisher{}
	tx := repository.NewTransactionManager(db)
	customerRepo := repository.NewCustomerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	billRepo := repository.NewBillRepository(db)
	millRepo := repository.NewMillRepository(db)

	return &fixture{
		db:           db,
		events:       events,
		customers:    NewCustomerService(customerRepo, tx),
		inventory:    NewInventoryService(inventoryRepo, events, logger),
		orders:       NewOrderService(orderRepo, billRepo, customerRepo, inventoryRepo, tx, events, logger),
		bills:        NewBillService(billRepo, customerRepo, orderRepo, tx, events, logger),
		mills:        NewMillService(millRepo, inventoryRepo, tx, events, logger),
		reports:      NewReportService(customerRepo, orderRepo, inventoryRepo, billRepo, millRepo),
		customerRepo:  customerRepo,
		orderRepo:     orderRepo,
		billRepo:      billRepo,
		inventoryRepo: inventoryRepo,
	}
}

func assertKind(t *testing.T, err error, kind errorbank.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if !errorbank.Is(err, kind) {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
}

func ptr[T any](v T) *T {
	return &v
}

var errBillWrite = errors.New("bill store unavailable")

// failingBillRepo fails every insert.
type failingBillRepo struct {
	repository.BillRepository
}

func (failingBillRepo) Create(context.Context, model.Bill) (model.Bill, error) {
	return model.Bill{}, errBillWrite
}
