package query

import (
	"context"
	"database/sql"
	"fmt"
)

// Transaction executes the given function within a database transaction. The
// transaction is committed if the function returns nil, otherwise it is
// rolled back.
func Transaction(ctx context.Context, db *sql.DB, f func(context.Context, *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	err = f(ctx, tx)
	if err != nil {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction after error (%v): %w", err, rollbackErr)
		}

		return err
	}

	err = tx.Commit()
	if err == sql.ErrTxDone {
		err = nil // Ignore duplicate commits/rollbacks.
	}

	return err
}
