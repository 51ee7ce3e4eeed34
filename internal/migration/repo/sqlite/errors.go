package sqlite

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/FuturFusion/workload-migrator/internal/migration"
)

// mapErr translates low level sqlite errors into the domain error taxonomy.
func mapErr(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("%w: %v", migration.ErrConstraintViolation, err)
		}
	}

	return err
}
