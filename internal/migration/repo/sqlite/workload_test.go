package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	dbschema "github.com/FuturFusion/workload-migrator/internal/db"
	dbdriver "github.com/FuturFusion/workload-migrator/internal/db/sqlite"
	"github.com/FuturFusion/workload-migrator/internal/migration"
	"github.com/FuturFusion/workload-migrator/internal/migration/repo/sqlite"
	"github.com/FuturFusion/workload-migrator/internal/transaction"
	"github.com/FuturFusion/workload-migrator/shared/api"
)

func TestWorkloadDatabaseActions(t *testing.T) {
	workloadA := newWorkload(t, "10.10.10.1", "admin", `c:\`, `d:\`)
	workloadB := newWorkload(t, "10.10.10.2", "root", "/")
	workloadC := newWorkload(t, "10.10.10.3", "admin", `c:\`)

	ctx := context.Background()

	tmpDir := t.TempDir()

	db, err := dbdriver.Open(tmpDir)
	require.NoError(t, err)

	t.Cleanup(func() {
		err = db.Close()
		require.NoError(t, err)
	})

	_, err = dbschema.EnsureSchema(db, tmpDir)
	require.NoError(t, err)

	tx := transaction.Enable(db)

	workload := sqlite.NewWorkload(tx)

	// Add workloadA.
	err = workload.Create(ctx, workloadA)
	require.NoError(t, err)

	// Add workloadB.
	err = workload.Create(ctx, workloadB)
	require.NoError(t, err)

	// Quick mid-addition state check.
	workloads, err := workload.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, workloads, 2)

	// Should get back workloadA unchanged.
	dbWorkloadA, err := workload.GetByIP(ctx, workloadA.IP())
	require.NoError(t, err)
	require.Equal(t, workloadA, *dbWorkloadA)

	// Should get back workloadB unchanged.
	dbWorkloadB, err := workload.GetByIP(ctx, workloadB.IP())
	require.NoError(t, err)
	require.Equal(t, workloadB, *dbWorkloadB)

	// Add workloadC.
	err = workload.Create(ctx, workloadC)
	require.NoError(t, err)

	// Ensure we have three entries.
	workloads, err = workload.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, workloads, 3)

	ips, err := workload.GetAllIPs(ctx)
	require.NoError(t, err)
	require.Len(t, ips, 3)
	require.ElementsMatch(t, []string{"10.10.10.1", "10.10.10.2", "10.10.10.3"}, ips)

	// Test updating a workload.
	workloadB.Credentials.Password = "n3w-s3cr3t"
	workloadB.Storage.MountPoints = append(workloadB.Storage.MountPoints, api.MountPoint{Name: "/home", TotalSize: 1 << 30})
	err = workload.Update(ctx, workloadB.IP(), workloadB)
	require.NoError(t, err)
	dbWorkloadB, err = workload.GetByIP(ctx, workloadB.IP())
	require.NoError(t, err)
	require.Equal(t, workloadB, *dbWorkloadB)

	// Delete a workload.
	err = workload.DeleteByIP(ctx, workloadA.IP())
	require.NoError(t, err)
	_, err = workload.GetByIP(ctx, workloadA.IP())
	require.ErrorIs(t, err, migration.ErrNotFound)

	// Should have two workloads remaining.
	workloads, err = workload.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, workloads, 2)

	// Can't delete a workload that doesn't exist.
	err = workload.DeleteByIP(ctx, "10.99.99.99")
	require.ErrorIs(t, err, migration.ErrNotFound)

	// Can't update a workload that doesn't exist.
	err = workload.Update(ctx, workloadA.IP(), workloadA)
	require.ErrorIs(t, err, migration.ErrNotFound)

	// Can't add a duplicate workload.
	err = workload.Create(ctx, workloadC)
	require.ErrorIs(t, err, migration.ErrConstraintViolation)
}

func newWorkload(t *testing.T, ip string, username string, mountPoints ...string) migration.Workload {
	t.Helper()

	storage := api.Storage{}
	for _, name := range mountPoints {
		storage.MountPoints = append(storage.MountPoints, api.MountPoint{
			Name:      name,
			TotalSize: 10 << 30,
		})
	}

	workload, err := migration.NewWorkload(ip, api.Credentials{
		Username: username,
		Password: "s3cr3t",
	}, storage)
	require.NoError(t, err)

	return workload
}
