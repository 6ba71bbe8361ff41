package repository

import (
	"context"
	"time"

	"github.com/DeepakJD1226/Consultancy/internal/database"
)

// TransactionManager runs a unit of work against the store as a single writer.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
	// Now is the store clock, used for business dates like order_date.
	Now() time.Time
}

type transactionManager struct {
	db *database.DB
}

func NewTransactionManager(db *database.DB) TransactionManager {
	return &transactionManager{db: db}
}

// RunInTx holds the store's write lock for the duration of fn. Repository
// calls made with txCtx join the transaction and are undone if fn fails.
func (t *transactionManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return t.db.Transaction(ctx, fn)
}

func (t *transactionManager) Now() time.Time {
	return t.db.Now()
}
