package migration

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/FuturFusion/workload-migrator/shared/api"
)

type MigrationService interface {
	Create(ctx context.Context, source Workload, target api.MigrationTarget, selectedMountPoints []string) (*Migration, error)
	GetAll(ctx context.Context) (Migrations, error)
	GetAllIDs(ctx context.Context) ([]uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Migration, error)
	UpdateByID(ctx context.Context, id uuid.UUID, selectedMountPoints []string) (*Migration, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	Run(ctx context.Context, id uuid.UUID, delay time.Duration) (*Migration, error)
	StatusByID(ctx context.Context, id uuid.UUID) (api.MigrationStatus, error)
}

//go:generate go run github.com/matryer/moq -fmt goimports -pkg mock -out repo/mock/migration_repo_mock_gen.go -rm . MigrationRepo

type MigrationRepo interface {
	Create(ctx context.Context, migration *Migration) error
	GetAll(ctx context.Context) (Migrations, error)
	GetAllIDs(ctx context.Context) ([]uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Migration, error)
	Update(ctx context.Context, id uuid.UUID, migration *Migration) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
