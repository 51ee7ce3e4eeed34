package migration_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/FuturFusion/workload-migrator/internal/migration"
	"github.com/FuturFusion/workload-migrator/internal/migration/repo/mock"
	"github.com/FuturFusion/workload-migrator/internal/testing/boom"
	"github.com/FuturFusion/workload-migrator/shared/api"
)

func newTestMigration(t *testing.T, selectedMountPoints ...string) *migration.Migration {
	t.Helper()

	source := newSourceWorkload(t,
		api.MountPoint{Name: `c:\`, TotalSize: 10 << 30},
		api.MountPoint{Name: `d:\`, TotalSize: 20 << 30},
	)

	mig, err := migration.NewMigration(source, awsTarget(), selectedMountPoints)
	require.NoError(t, err)

	return mig
}

func inState(t *testing.T, mig *migration.Migration, state api.MigrationStatusType) *migration.Migration {
	t.Helper()

	in := mig.ToAPI()
	in.State = state

	got, err := migration.MigrationFromAPI(in)
	require.NoError(t, err)

	return got
}

func TestMigrationService_Create(t *testing.T) {
	tests := []struct {
		name                string
		selectedMountPoints []string
		repoCreateErr       error
		wantCreateCalled    bool

		assertErr require.ErrorAssertionFunc
	}{
		{
			name:                "success",
			selectedMountPoints: []string{`c:\`},
			wantCreateCalled:    true,

			assertErr: require.NoError,
		},
		{
			name:                "error - boot volume not selected",
			selectedMountPoints: []string{`d:\`},

			assertErr: func(tt require.TestingT, err error, a ...any) {
				var verr migration.ErrValidation
				require.ErrorAs(tt, err, &verr, a...)
			},
		},
		{
			name:                "error - repo",
			selectedMountPoints: []string{`c:\`},
			repoCreateErr:       boom.Error,
			wantCreateCalled:    true,

			assertErr: boom.ErrorIs,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mock.MigrationRepoMock{
				CreateFunc: func(ctx context.Context, migrationMoqParam *migration.Migration) error {
					return tc.repoCreateErr
				},
			}

			migrationSvc := migration.NewMigrationService(repo)

			source := newSourceWorkload(t,
				api.MountPoint{Name: `c:\`, TotalSize: 10 << 30},
				api.MountPoint{Name: `d:\`, TotalSize: 20 << 30},
			)

			mig, err := migrationSvc.Create(context.Background(), source, awsTarget(), tc.selectedMountPoints)
			tc.assertErr(t, err)

			if err == nil {
				require.Equal(t, api.MIGRATIONSTATUS_NOT_STARTED, mig.Status())
			}

			if tc.wantCreateCalled {
				require.Len(t, repo.CreateCalls(), 1)
			} else {
				require.Empty(t, repo.CreateCalls())
			}
		})
	}
}

func TestMigrationService_UpdateByID(t *testing.T) {
	tests := []struct {
		name                string
		state               api.MigrationStatusType
		repoGetByIDErr      error
		selectedMountPoints []string
		repoUpdateErr       error
		wantUpdateCalled    bool

		assertErr require.ErrorAssertionFunc
	}{
		{
			name:                "success",
			state:               api.MIGRATIONSTATUS_NOT_STARTED,
			selectedMountPoints: []string{`c:\`, `d:\`},
			wantUpdateCalled:    true,

			assertErr: require.NoError,
		},
		{
			name:                "success - errored migration",
			state:               api.MIGRATIONSTATUS_ERROR,
			selectedMountPoints: []string{`c:\`},
			wantUpdateCalled:    true,

			assertErr: require.NoError,
		},
		{
			name:           "error - not found",
			repoGetByIDErr: migration.ErrNotFound,

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, migration.ErrNotFound, a...)
			},
		},
		{
			name:                "error - running",
			state:               api.MIGRATIONSTATUS_RUNNING,
			selectedMountPoints: []string{`c:\`},

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, migration.ErrOperationNotPermitted, a...)
			},
		},
		{
			name:                "error - succeeded",
			state:               api.MIGRATIONSTATUS_SUCCESS,
			selectedMountPoints: []string{`c:\`},

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, migration.ErrOperationNotPermitted, a...)
			},
		},
		{
			name:                "error - boot volume not selected",
			state:               api.MIGRATIONSTATUS_NOT_STARTED,
			selectedMountPoints: []string{`d:\`},

			assertErr: func(tt require.TestingT, err error, a ...any) {
				var verr migration.ErrValidation
				require.ErrorAs(tt, err, &verr, a...)
			},
		},
		{
			name:                "error - repo.Update",
			state:               api.MIGRATIONSTATUS_NOT_STARTED,
			selectedMountPoints: []string{`c:\`},
			repoUpdateErr:       boom.Error,
			wantUpdateCalled:    true,

			assertErr: boom.ErrorIs,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mig := newTestMigration(t, `c:\`)

			repo := &mock.MigrationRepoMock{
				GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*migration.Migration, error) {
					if tc.repoGetByIDErr != nil {
						return nil, tc.repoGetByIDErr
					}

					return inState(t, mig, tc.state), nil
				},
				UpdateFunc: func(ctx context.Context, id uuid.UUID, migrationMoqParam *migration.Migration) error {
					return tc.repoUpdateErr
				},
			}

			migrationSvc := migration.NewMigrationService(repo)

			got, err := migrationSvc.UpdateByID(context.Background(), mig.ID, tc.selectedMountPoints)
			tc.assertErr(t, err)

			if err == nil {
				require.Equal(t, tc.selectedMountPoints, got.SelectedMountPoints)
			}

			if tc.wantUpdateCalled {
				require.Len(t, repo.UpdateCalls(), 1)
			} else {
				require.Empty(t, repo.UpdateCalls())
			}
		})
	}
}

func TestMigrationService_Run(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mig := newTestMigration(t, `c:\`)

		repo := &mock.MigrationRepoMock{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*migration.Migration, error) {
				return inState(t, mig, api.MIGRATIONSTATUS_NOT_STARTED), nil
			},
			UpdateFunc: func(ctx context.Context, id uuid.UUID, migrationMoqParam *migration.Migration) error {
				return nil
			},
		}

		migrationSvc := migration.NewMigrationService(repo)

		got, err := migrationSvc.Run(context.Background(), mig.ID, 0)
		require.NoError(t, err)
		require.Equal(t, api.MIGRATIONSTATUS_SUCCESS, got.Status())

		// The running state is persisted before the transfer, the terminal
		// state afterwards.
		updateCalls := repo.UpdateCalls()
		require.Len(t, updateCalls, 2)
		require.Equal(t, api.MIGRATIONSTATUS_RUNNING, updateCalls[0].MigrationMoqParam.Status())
		require.Equal(t, api.MIGRATIONSTATUS_SUCCESS, updateCalls[1].MigrationMoqParam.Status())
	})

	t.Run("error - not found", func(t *testing.T) {
		repo := &mock.MigrationRepoMock{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*migration.Migration, error) {
				return nil, migration.ErrNotFound
			},
		}

		migrationSvc := migration.NewMigrationService(repo)

		randomUUID, err := uuid.NewRandom()
		require.NoError(t, err)

		_, err = migrationSvc.Run(context.Background(), randomUUID, 0)
		require.ErrorIs(t, err, migration.ErrNotFound)
	})

	t.Run("error - already running", func(t *testing.T) {
		mig := newTestMigration(t, `c:\`)

		repo := &mock.MigrationRepoMock{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*migration.Migration, error) {
				return inState(t, mig, api.MIGRATIONSTATUS_RUNNING), nil
			},
		}

		migrationSvc := migration.NewMigrationService(repo)

		_, err := migrationSvc.Run(context.Background(), mig.ID, 0)
		require.ErrorIs(t, err, migration.ErrOperationNotPermitted)
		require.Empty(t, repo.UpdateCalls())
	})

	t.Run("error - persisting the running state", func(t *testing.T) {
		mig := newTestMigration(t, `c:\`)

		repo := &mock.MigrationRepoMock{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*migration.Migration, error) {
				return inState(t, mig, api.MIGRATIONSTATUS_NOT_STARTED), nil
			},
			UpdateFunc: func(ctx context.Context, id uuid.UUID, migrationMoqParam *migration.Migration) error {
				return boom.Error
			},
		}

		migrationSvc := migration.NewMigrationService(repo)

		_, err := migrationSvc.Run(context.Background(), mig.ID, 0)
		boom.ErrorIs(t, err)
		require.Len(t, repo.UpdateCalls(), 1)
	})

	t.Run("concurrent runs, exactly one proceeds", func(t *testing.T) {
		mig := newTestMigration(t, `c:\`)

		// The repo serves a shared persisted state the way the sqlite repo
		// would, guarded by a mutex.
		var mu sync.Mutex
		state := api.MIGRATIONSTATUS_NOT_STARTED

		repo := &mock.MigrationRepoMock{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*migration.Migration, error) {
				mu.Lock()
				defer mu.Unlock()

				return inState(t, mig, state), nil
			},
			UpdateFunc: func(ctx context.Context, id uuid.UUID, migrationMoqParam *migration.Migration) error {
				mu.Lock()
				defer mu.Unlock()

				state = migrationMoqParam.Status()
				return nil
			},
		}

		migrationSvc := migration.NewMigrationService(repo)

		errs := make(chan error, 2)
		for range 2 {
			go func() {
				_, err := migrationSvc.Run(context.Background(), mig.ID, 100*time.Millisecond)
				errs <- err
			}()
		}

		first := <-errs
		second := <-errs

		if first == nil {
			require.ErrorIs(t, second, migration.ErrOperationNotPermitted)
		} else {
			require.ErrorIs(t, first, migration.ErrOperationNotPermitted)
			require.NoError(t, second)
		}

		mu.Lock()
		defer mu.Unlock()
		require.Equal(t, api.MIGRATIONSTATUS_SUCCESS, state)
	})
}

func TestMigrationService_StatusByID(t *testing.T) {
	tests := []struct {
		name           string
		state          api.MigrationStatusType
		repoGetByIDErr error
		wantFinished   bool

		assertErr require.ErrorAssertionFunc
	}{
		{
			name:  "success - not started",
			state: api.MIGRATIONSTATUS_NOT_STARTED,

			assertErr: require.NoError,
		},
		{
			name:  "success - running",
			state: api.MIGRATIONSTATUS_RUNNING,

			assertErr: require.NoError,
		},
		{
			name:         "success - error is terminal",
			state:        api.MIGRATIONSTATUS_ERROR,
			wantFinished: true,

			assertErr: require.NoError,
		},
		{
			name:         "success - success is terminal",
			state:        api.MIGRATIONSTATUS_SUCCESS,
			wantFinished: true,

			assertErr: require.NoError,
		},
		{
			name:           "error - not found",
			repoGetByIDErr: migration.ErrNotFound,

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, migration.ErrNotFound, a...)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mig := newTestMigration(t, `c:\`)

			repo := &mock.MigrationRepoMock{
				GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*migration.Migration, error) {
					if tc.repoGetByIDErr != nil {
						return nil, tc.repoGetByIDErr
					}

					return inState(t, mig, tc.state), nil
				},
			}

			migrationSvc := migration.NewMigrationService(repo)

			status, err := migrationSvc.StatusByID(context.Background(), mig.ID)
			tc.assertErr(t, err)

			if err == nil {
				require.Equal(t, mig.ID.String(), status.MigrationID)
				require.Equal(t, tc.state, status.State)
				require.Equal(t, tc.wantFinished, status.Finished)
			}
		})
	}
}

func TestMigrationService_GetAll(t *testing.T) {
	repo := &mock.MigrationRepoMock{
		GetAllFunc: func(ctx context.Context) (migration.Migrations, error) {
			return migration.Migrations{newTestMigration(t, `c:\`)}, nil
		},
	}

	migrationSvc := migration.NewMigrationService(repo)

	migrations, err := migrationSvc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, migrations, 1)
}

func TestMigrationService_DeleteByID(t *testing.T) {
	repo := &mock.MigrationRepoMock{
		DeleteByIDFunc: func(ctx context.Context, id uuid.UUID) error {
			return boom.Error
		},
	}

	migrationSvc := migration.NewMigrationService(repo)

	randomUUID, err := uuid.NewRandom()
	require.NoError(t, err)

	err = migrationSvc.DeleteByID(context.Background(), randomUUID)
	boom.ErrorIs(t, err)
}
