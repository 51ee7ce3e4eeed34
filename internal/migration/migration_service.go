package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FuturFusion/workload-migrator/internal/transaction"
	"github.com/FuturFusion/workload-migrator/internal/util"
	"github.com/FuturFusion/workload-migrator/shared/api"
)

type migrationService struct {
	repo MigrationRepo

	runLock util.IDLock[uuid.UUID]
}

var _ MigrationService = &migrationService{}

func NewMigrationService(repo MigrationRepo) *migrationService {
	return &migrationService{
		repo:    repo,
		runLock: util.NewIDLock[uuid.UUID](),
	}
}

func (s *migrationService) Create(ctx context.Context, source Workload, target api.MigrationTarget, selectedMountPoints []string) (*Migration, error) {
	migration, err := NewMigration(source, target, selectedMountPoints)
	if err != nil {
		return nil, err
	}

	err = s.repo.Create(ctx, migration)
	if err != nil {
		return nil, err
	}

	return migration, nil
}

func (s *migrationService) GetAll(ctx context.Context) (Migrations, error) {
	return s.repo.GetAll(ctx)
}

func (s *migrationService) GetAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	return s.repo.GetAllIDs(ctx)
}

func (s *migrationService) GetByID(ctx context.Context, id uuid.UUID) (*Migration, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *migrationService) UpdateByID(ctx context.Context, id uuid.UUID, selectedMountPoints []string) (*Migration, error) {
	var migration *Migration
	err := transaction.Do(ctx, func(ctx context.Context) error {
		var err error
		migration, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		status := migration.Status()
		if status == api.MIGRATIONSTATUS_RUNNING || status == api.MIGRATIONSTATUS_SUCCESS {
			return fmt.Errorf("Cannot update migration %q in state %q: %w", id.String(), status, ErrOperationNotPermitted)
		}

		err = migration.UpdateSelectedMountPoints(selectedMountPoints)
		if err != nil {
			return err
		}

		return s.repo.Update(ctx, id, migration)
	})
	if err != nil {
		return nil, err
	}

	return migration, nil
}

func (s *migrationService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteByID(ctx, id)
}

// Run executes the migration with the given ID. The check and set of the
// running state happens under a per-ID lock, so no two runs for the same
// migration can pass the guard even though each loads its own copy from the
// repository. The running state is persisted before the transfer delay
// starts, so concurrent status polls observe it.
func (s *migrationService) Run(ctx context.Context, id uuid.UUID, delay time.Duration) (*Migration, error) {
	s.runLock.Lock(id)

	migration, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.runLock.Unlock(id)
		return nil, err
	}

	err = migration.startRun()
	if err != nil {
		s.runLock.Unlock(id)
		return nil, err
	}

	err = s.repo.Update(ctx, id, migration)
	if err != nil {
		s.runLock.Unlock(id)
		return nil, fmt.Errorf("Failed to persist migration %q start: %w", id.String(), err)
	}

	s.runLock.Unlock(id)

	runErr := migration.finishRun(ctx, delay)

	err = s.repo.Update(ctx, id, migration)
	if err != nil {
		return nil, fmt.Errorf("Failed to persist migration %q result: %w", id.String(), err)
	}

	if runErr != nil {
		return nil, runErr
	}

	return migration, nil
}

func (s *migrationService) StatusByID(ctx context.Context, id uuid.UUID) (api.MigrationStatus, error) {
	migration, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return api.MigrationStatus{}, err
	}

	status := migration.Status()

	return api.MigrationStatus{
		MigrationID: migration.ID.String(),
		State:       status,
		Finished:    status.IsFinished(),
	}, nil
}
