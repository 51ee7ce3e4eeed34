package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FuturFusion/workload-migrator/internal/migration"
	"github.com/FuturFusion/workload-migrator/internal/migration/repo"
	"github.com/FuturFusion/workload-migrator/internal/transaction"
	"github.com/FuturFusion/workload-migrator/shared/api"
)

type migrationRepo struct {
	db repo.DBTX
}

var _ migration.MigrationRepo = &migrationRepo{}

func NewMigration(db repo.DBTX) *migrationRepo {
	return &migrationRepo{
		db: db,
	}
}

func (m migrationRepo) Create(ctx context.Context, in *migration.Migration) error {
	mig := in.ToAPI()

	selectedMountPoints, source, target, err := marshalMigration(mig)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO migrations (id, state, created_at, selected_mount_points, source, migration_target)
VALUES (?, ?, ?, ?, ?, ?)`

	_, err = transaction.GetDBTX(ctx, m.db).ExecContext(ctx, q, mig.ID, string(mig.State), mig.CreatedAt, selectedMountPoints, source, target)
	if err != nil {
		return mapErr(err)
	}

	return nil
}

func (m migrationRepo) GetAll(ctx context.Context) (migration.Migrations, error) {
	// UUIDv7 IDs are time ordered, sorting by ID sorts by creation.
	const q = `SELECT id, state, created_at, selected_mount_points, source, migration_target FROM migrations ORDER BY id`

	rows, err := transaction.GetDBTX(ctx, m.db).QueryContext(ctx, q)
	if err != nil {
		return nil, mapErr(err)
	}

	defer func() { _ = rows.Close() }()

	var migrations migration.Migrations
	for rows.Next() {
		mig, err := scanMigration(rows.Scan)
		if err != nil {
			return nil, err
		}

		migrations = append(migrations, mig)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return migrations, nil
}

func (m migrationRepo) GetAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	const q = `SELECT id FROM migrations ORDER BY id`

	rows, err := transaction.GetDBTX(ctx, m.db).QueryContext(ctx, q)
	if err != nil {
		return nil, mapErr(err)
	}

	defer func() { _ = rows.Close() }()

	ids := []uuid.UUID{}
	for rows.Next() {
		var raw string
		err := rows.Scan(&raw)
		if err != nil {
			return nil, err
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return ids, nil
}

func (m migrationRepo) GetByID(ctx context.Context, id uuid.UUID) (*migration.Migration, error) {
	const q = `SELECT id, state, created_at, selected_mount_points, source, migration_target FROM migrations WHERE id = ?`

	rows, err := transaction.GetDBTX(ctx, m.db).QueryContext(ctx, q, id.String())
	if err != nil {
		return nil, mapErr(err)
	}

	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if rows.Err() != nil {
			return nil, rows.Err()
		}

		return nil, fmt.Errorf("Migration %q: %w", id.String(), migration.ErrNotFound)
	}

	return scanMigration(rows.Scan)
}

func (m migrationRepo) Update(ctx context.Context, id uuid.UUID, in *migration.Migration) error {
	mig := in.ToAPI()

	selectedMountPoints, source, target, err := marshalMigration(mig)
	if err != nil {
		return err
	}

	const q = `
UPDATE migrations SET state = ?, selected_mount_points = ?, source = ?, migration_target = ?
WHERE id = ?`

	result, err := transaction.GetDBTX(ctx, m.db).ExecContext(ctx, q, string(mig.State), selectedMountPoints, source, target, id.String())
	if err != nil {
		return mapErr(err)
	}

	affectedRows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return fmt.Errorf("Migration %q: %w", id.String(), migration.ErrNotFound)
	}

	return nil
}

func (m migrationRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM migrations WHERE id = ?`

	result, err := transaction.GetDBTX(ctx, m.db).ExecContext(ctx, q, id.String())
	if err != nil {
		return mapErr(err)
	}

	affectedRows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return fmt.Errorf("Migration %q: %w", id.String(), migration.ErrNotFound)
	}

	return nil
}

func marshalMigration(mig api.Migration) (selectedMountPoints string, source string, target string, err error) {
	rawSelected, err := json.Marshal(mig.SelectedMountPoints)
	if err != nil {
		return "", "", "", err
	}

	rawSource, err := json.Marshal(mig.Source)
	if err != nil {
		return "", "", "", err
	}

	rawTarget, err := json.Marshal(mig.MigrationTarget)
	if err != nil {
		return "", "", "", err
	}

	return string(rawSelected), string(rawSource), string(rawTarget), nil
}

// scanMigration reads one migrations row and rebuilds the domain migration
// from the JSON columns.
func scanMigration(scan func(dest ...any) error) (*migration.Migration, error) {
	var id, state, selectedMountPoints, source, target string
	var createdAt time.Time

	err := scan(&id, &state, &createdAt, &selectedMountPoints, &source, &target)
	if err != nil {
		return nil, err
	}

	mig := api.Migration{
		ID:        id,
		State:     api.MigrationStatusType(state),
		CreatedAt: createdAt,
	}

	err = json.Unmarshal([]byte(selectedMountPoints), &mig.SelectedMountPoints)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal([]byte(source), &mig.Source)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal([]byte(target), &mig.MigrationTarget)
	if err != nil {
		return nil, err
	}

	return migration.MigrationFromAPI(mig)
}
