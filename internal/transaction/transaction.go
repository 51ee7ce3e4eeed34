package transaction

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database operations the repositories rely on. It is
// satisfied by *sql.DB, *sql.Tx and the transaction aware wrapper returned
// by Enable.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// TX is a DBTX that is guaranteed to be backed by a database transaction.
type TX interface {
	DBTX
}

type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type enabledDB struct {
	*sql.DB
}

// Enable wraps the database connection so that repositories using it take
// part in transactions started with Begin or Do on the request context.
func Enable(db *sql.DB) DBTX {
	return enabledDB{DB: db}
}

// GetDBTX returns the database handle to use for the given context. If a
// transaction has been started on the context, all operations are routed
// through it, the transaction being lazily opened on first use. Otherwise
// the fallback handle is returned unchanged.
func GetDBTX(ctx context.Context, fallback DBTX) DBTX {
	tc, ok := ctx.Value(tcKey{}).(*transactionContainer)
	if !ok {
		return fallback
	}

	return &lazyTX{
		tc:       tc,
		fallback: fallback,
	}
}

// ForceTx runs f inside a database transaction. If the context already
// carries one, it is reused and left for the owner to commit. Otherwise a
// transaction is opened and committed around f.
func ForceTx(ctx context.Context, db DBTX, f func(ctx context.Context, tx TX) error) error {
	switch d := db.(type) {
	case *lazyTX:
		tx, err := d.get(ctx)
		if err != nil {
			return err
		}

		return f(ctx, tx)
	case txBeginner:
		tx, err := d.BeginTx(ctx, nil)
		if err != nil {
			return err
		}

		err = f(ctx, tx)
		if err != nil {
			_ = tx.Rollback()
			return err
		}

		return tx.Commit()
	default:
		return f(ctx, db)
	}
}

// Do runs f inside a transaction scoped to the lifetime of the call. If the
// context already carries a transaction, f simply joins it.
func Do(ctx context.Context, f func(ctx context.Context) error) error {
	ctx, trans := Begin(ctx)
	defer func() { _ = trans.Rollback() }()

	err := f(ctx)
	if err != nil {
		return err
	}

	return trans.Commit()
}

// lazyTX routes operations through the transaction of its container, opening
// the transaction on first use.
type lazyTX struct {
	tc       *transactionContainer
	fallback DBTX
}

var _ TX = &lazyTX{}

func (l *lazyTX) get(ctx context.Context) (DBTX, error) {
	l.tc.mu.Lock()
	defer l.tc.mu.Unlock()

	if l.tc.tx != nil {
		return l.tc.tx, nil
	}

	beginner, ok := l.fallback.(txBeginner)
	if !ok {
		return l.fallback, nil
	}

	tx, err := beginner.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	l.tc.tx = tx

	return tx, nil
}

func (l *lazyTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	db, err := l.get(ctx)
	if err != nil {
		return nil, err
	}

	return db.ExecContext(ctx, query, args...)
}

func (l *lazyTX) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	db, err := l.get(ctx)
	if err != nil {
		return nil, err
	}

	return db.QueryContext(ctx, query, args...)
}
