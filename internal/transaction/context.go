package transaction

import (
	"context"
	"database/sql"
	"errors"
	"sync"
)

type tcKey struct{}

type tx interface {
	DBTX
	Commit() error
	Rollback() error
}

type Transaction interface {
	Commit() error
	Rollback() error
}

// Begin marks the context as transactional. Repositories using a handle
// wrapped with Enable will route their operations through a single database
// transaction until the returned Transaction is committed or rolled back.
// Nested calls join the outer transaction and their commit and rollback are
// no-ops.
func Begin(ctx context.Context) (context.Context, Transaction) {
	existingTC := ctx.Value(tcKey{})
	if existingTC != nil {
		return ctx, &noopTransactionContainer{}
	}

	tc := &transactionContainer{}
	return context.WithValue(ctx, tcKey{}, tc), tc
}

type transactionContainer struct {
	mu sync.Mutex
	tx tx
}

var _ Transaction = &transactionContainer{}

func (t *transactionContainer) Commit() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tx == nil {
		return nil
	}

	err := t.tx.Commit()
	t.tx = nil

	return err
}

func (t *transactionContainer) Rollback() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tx == nil {
		return nil
	}

	err := t.tx.Rollback()
	t.tx = nil
	if !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

type noopTransactionContainer struct{}

var _ Transaction = noopTransactionContainer{}

func (n noopTransactionContainer) Commit() error {
	return nil
}

func (n noopTransactionContainer) Rollback() error {
	return nil
}
