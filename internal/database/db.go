package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DeepakJD1226/Consultancy/internal/model"
)

// ErrRecordNotFound is returned when no record has the requested id.
var ErrRecordNotFound = errors.New("record not found")

// Collection names
const (
	CollectionCustomers    = "customers"
	CollectionInventory    = "inventory"
	CollectionOrders       = "orders"
	CollectionBills        = "bills"
	CollectionMills        = "mills"
	CollectionRawMaterials = "raw_materials"
)

// DB is the in-memory record store. It lives for the lifetime of the process.
// Writers are serialised by a single lock shared by every table.
type DB struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string

	Customers    *Table[model.Customer, *model.Customer]
	Inventory    *Table[model.InventoryItem, *model.InventoryItem]
	Orders       *Table[model.Order, *model.Order]
	Bills        *Table[model.Bill, *model.Bill]
	Mills        *Table[model.Mill, *model.Mill]
	RawMaterials *Table[model.RawMaterial, *model.RawMaterial]
}

// Option customises a DB.
type Option func(*DB)

// WithClock overrides the time source used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(db *DB) {
		if now != nil {
			db.now = now
		}
	}
}

// WithIDGenerator overrides the record id generator.
func WithIDGenerator(gen func() string) Option {
	return func(db *DB) {
		if gen != nil {
			db.newID = gen
		}
	}
}

// Open creates an empty store.
func Open(opts ...Option) *DB {
	db := &DB{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(db)
	}

	db.Customers = newTable[model.Customer](db, CollectionCustomers)
	db.Inventory = newTable[model.InventoryItem](db, CollectionInventory)
	db.Orders = newTable[model.Order](db, CollectionOrders)
	db.Bills = newTable[model.Bill](db, CollectionBills)
	db.Mills = newTable[model.Mill](db, CollectionMills)
	db.RawMaterials = newTable[model.RawMaterial](db, CollectionRawMaterials)
	return db
}

// Now returns the store's current time.
func (db *DB) Now() time.Time {
	return db.now()
}

// Counts returns the number of records per collection.
func (db *DB) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, 6)
	err := db.read(ctx, func() {
		counts[CollectionCustomers] = len(db.Customers.rows)
		counts[CollectionInventory] = len(db.Inventory.rows)
		counts[CollectionOrders] = len(db.Orders.rows)
		counts[CollectionBills] = len(db.Bills.rows)
		counts[CollectionMills] = len(db.Mills.rows)
		counts[CollectionRawMaterials] = len(db.RawMaterials.rows)
	})
	return counts, err
}

type txKey struct{}

type txn struct {
	db     *DB
	active bool
	undo   []func()
}

func (db *DB) txFrom(ctx context.Context) *txn {
	tx, ok := ctx.Value(txKey{}).(*txn)
	if !ok || tx.db != db || !tx.active {
		return nil
	}
	return tx
}

// Transaction runs fn while holding the write lock. Store operations called
// with the context passed to fn join the transaction instead of locking. If fn
// returns an error or panics, every write made through that context is undone
// in reverse order. A transaction context must not be shared across goroutines.
func (db *DB) Transaction(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if db.txFrom(ctx) != nil {
		return fn(ctx)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	tx := &txn{db: db, active: true}
	defer func() {
		tx.active = false
		if r := recover(); r != nil {
			tx.rollback()
			panic(r)
		}
		if err != nil {
			tx.rollback()
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, tx))
}

func (tx *txn) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
}

func (db *DB) read(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if db.txFrom(ctx) != nil {
		fn()
		return nil
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn()
	return nil
}

func (db *DB) write(ctx context.Context, fn func(tx *txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tx := db.txFrom(ctx); tx != nil {
		return fn(tx)
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(nil)
}
