package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/FuturFusion/workload-migrator/internal/migration"
	"github.com/FuturFusion/workload-migrator/shared/api"
)

func TestMigrationsGet(t *testing.T) {
	tests := []struct {
		name string

		query string

		wantHTTPStatus     int
		wantMigrationCount int64
	}{
		{
			name: "success - URLs",

			wantHTTPStatus:     http.StatusOK,
			wantMigrationCount: 1,
		},
		{
			name: "success - recursion",

			query: "?recursion=1",

			wantHTTPStatus:     http.StatusOK,
			wantMigrationCount: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			daemon, client, srvURL := daemonSetup(t, []APIEndpoint{migrationsCmd})
			mig := seedDBWithSingleMigration(t, daemon)

			// Execute test
			statusCode, body := probeAPI(t, client, http.MethodGet, srvURL+"/1.0/migrations"+tc.query, http.NoBody, nil)

			// Assert results
			require.Equal(t, tc.wantHTTPStatus, statusCode)
			require.Equal(t, tc.wantMigrationCount, gjson.Get(body, "metadata.#").Int())

			if tc.query == "" {
				require.Equal(t, "/1.0/migrations/"+mig.ID.String(), gjson.Get(body, "metadata.0").String())
			} else {
				require.Equal(t, mig.ID.String(), gjson.Get(body, "metadata.0.id").String())
				require.Equal(t, string(api.MIGRATIONSTATUS_NOT_STARTED), gjson.Get(body, "metadata.0.state").String())
			}
		})
	}
}

func TestMigrationsPost(t *testing.T) {
	sourceJSON := `{"ip": "10.0.0.1", "credentials": {"username": "admin", "password": "s3cr3t"}, "storage": {"mount_points": [{"name": "C:\\", "total_size": 1024}, {"name": "D:\\", "total_size": 2048}]}}`

	tests := []struct {
		name string

		migrationJSON string

		wantHTTPStatus int
	}{
		{
			name: "success",

			migrationJSON: `{"selected_mount_points": ["C:\\", "D:\\"], "source": ` + sourceJSON + `, "migration_target": {"cloud_type": "aws", "cloud_credentials": {"username": "cloudadmin", "password": "cloudpass"}, "target_vm": {"ip": "192.168.1.10", "credentials": {"username": "vmadmin", "password": "vmpass"}}}}`,

			wantHTTPStatus: http.StatusCreated,
		},
		{
			name: "error - boot volume not selected",

			migrationJSON: `{"selected_mount_points": ["D:\\"], "source": ` + sourceJSON + `, "migration_target": {"cloud_type": "aws", "cloud_credentials": {"username": "cloudadmin", "password": "cloudpass"}, "target_vm": {"ip": "192.168.1.10", "credentials": {"username": "vmadmin", "password": "vmpass"}}}}`,

			wantHTTPStatus: http.StatusBadRequest,
		},
		{
			name: "error - invalid cloud type",

			migrationJSON: `{"selected_mount_points": ["C:\\"], "source": ` + sourceJSON + `, "migration_target": {"cloud_type": "gcp", "cloud_credentials": {"username": "cloudadmin", "password": "cloudpass"}, "target_vm": {"ip": "192.168.1.10", "credentials": {"username": "vmadmin", "password": "vmpass"}}}}`,

			wantHTTPStatus: http.StatusBadRequest,
		},
		{
			name: "error - missing cloud credentials",

			migrationJSON: `{"selected_mount_points": ["C:\\"], "source": ` + sourceJSON + `, "migration_target": {"cloud_type": "aws", "target_vm": {"ip": "192.168.1.10", "credentials": {"username": "vmadmin", "password": "vmpass"}}}}`,

			wantHTTPStatus: http.StatusBadRequest,
		},
		{
			name: "error - target VM without IP",

			migrationJSON: `{"selected_mount_points": ["C:\\"], "source": ` + sourceJSON + `, "migration_target": {"cloud_type": "aws", "cloud_credentials": {"username": "cloudadmin", "password": "cloudpass"}, "target_vm": {"credentials": {"username": "vmadmin", "password": "vmpass"}}}}`,

			wantHTTPStatus: http.StatusBadRequest,
		},
		{
			name: "error - invalid source",

			migrationJSON: `{"selected_mount_points": ["C:\\"], "source": {"ip": ""}, "migration_target": {"cloud_type": "aws", "cloud_credentials": {"username": "cloudadmin", "password": "cloudpass"}, "target_vm": {"ip": "192.168.1.10", "credentials": {"username": "vmadmin", "password": "vmpass"}}}}`,

			wantHTTPStatus: http.StatusBadRequest,
		},
		{
			name: "error - invalid JSON",

			migrationJSON: `{`,

			wantHTTPStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			_, client, srvURL := daemonSetup(t, []APIEndpoint{migrationsCmd})

			// Execute test
			statusCode, body := probeAPI(t, client, http.MethodPost, srvURL+"/1.0/migrations", bytes.NewBufferString(tc.migrationJSON), nil)

			// Assert results
			require.Equal(t, tc.wantHTTPStatus, statusCode)

			if tc.wantHTTPStatus == http.StatusCreated {
				require.Equal(t, string(api.MIGRATIONSTATUS_NOT_STARTED), gjson.Get(body, "metadata.state").String())
				require.NotEmpty(t, gjson.Get(body, "metadata.id").String())
			}
		})
	}
}

func TestMigrationGet(t *testing.T) {
	tests := []struct {
		name string

		migrationID func(mig *migration.Migration) string

		wantHTTPStatus int
	}{
		{
			name: "success",

			migrationID: func(mig *migration.Migration) string { return mig.ID.String() },

			wantHTTPStatus: http.StatusOK,
		},
		{
			name: "error - not found",

			migrationID: func(*migration.Migration) string { return "0192c7d4-4a5b-7c3a-8f50-2a1be3a49a5c" },

			wantHTTPStatus: http.StatusNotFound,
		},
		{
			name: "error - invalid ID",

			migrationID: func(*migration.Migration) string { return "not-a-uuid" },

			wantHTTPStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			daemon, client, srvURL := daemonSetup(t, []APIEndpoint{migrationCmd})
			mig := seedDBWithSingleMigration(t, daemon)

			// Execute test
			statusCode, body := probeAPI(t, client, http.MethodGet, srvURL+fmt.Sprintf("/1.0/migrations/%s", tc.migrationID(mig)), http.NoBody, nil)

			// Assert results
			require.Equal(t, tc.wantHTTPStatus, statusCode)

			if tc.wantHTTPStatus == http.StatusOK {
				require.Equal(t, mig.ID.String(), gjson.Get(body, "metadata.id").String())
				require.Equal(t, "10.0.0.1", gjson.Get(body, "metadata.source.ip").String())
			}
		})
	}
}

func TestMigrationPut(t *testing.T) {
	tests := []struct {
		name string

		migrationJSON string

		wantHTTPStatus int
	}{
		{
			name: "success",

			migrationJSON: `{"selected_mount_points": ["C:\\"]}`,

			wantHTTPStatus: http.StatusOK,
		},
		{
			name: "error - boot volume removed from selection",

			migrationJSON: `{"selected_mount_points": ["D:\\"]}`,

			wantHTTPStatus: http.StatusBadRequest,
		},
		{
			name: "error - invalid JSON",

			migrationJSON: `{`,

			wantHTTPStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			daemon, client, srvURL := daemonSetup(t, []APIEndpoint{migrationCmd})
			mig := seedDBWithSingleMigration(t, daemon)

			// Execute test
			statusCode, body := probeAPI(t, client, http.MethodPut, srvURL+fmt.Sprintf("/1.0/migrations/%s", mig.ID.String()), bytes.NewBufferString(tc.migrationJSON), nil)

			// Assert results
			require.Equal(t, tc.wantHTTPStatus, statusCode)

			if tc.wantHTTPStatus == http.StatusOK {
				require.Equal(t, int64(1), gjson.Get(body, "metadata.selected_mount_points.#").Int())
			}
		})
	}
}

func TestMigrationDelete(t *testing.T) {
	tests := []struct {
		name string

		migrationID func(mig *migration.Migration) string

		wantHTTPStatus int
	}{
		{
			name: "success",

			migrationID: func(mig *migration.Migration) string { return mig.ID.String() },

			wantHTTPStatus: http.StatusNoContent,
		},
		{
			name: "error - not found",

			migrationID: func(*migration.Migration) string { return "0192c7d4-4a5b-7c3a-8f50-2a1be3a49a5c" },

			wantHTTPStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			daemon, client, srvURL := daemonSetup(t, []APIEndpoint{migrationCmd})
			mig := seedDBWithSingleMigration(t, daemon)

			// Execute test
			statusCode, _ := probeAPI(t, client, http.MethodDelete, srvURL+fmt.Sprintf("/1.0/migrations/%s", tc.migrationID(mig)), http.NoBody, nil)

			// Assert results
			require.Equal(t, tc.wantHTTPStatus, statusCode)
		})
	}
}

func TestMigrationStartAndStatus(t *testing.T) {
	// Setup
	daemon, client, srvURL := daemonSetup(t, []APIEndpoint{migrationStartCmd, migrationStatusCmd})
	mig := seedDBWithSingleMigration(t, daemon)

	statusURL := srvURL + fmt.Sprintf("/1.0/migrations/%s/status", mig.ID.String())
	startURL := srvURL + fmt.Sprintf("/1.0/migrations/%s/start", mig.ID.String())

	// Freshly defined migration has not started yet.
	statusCode, body := probeAPI(t, client, http.MethodGet, statusURL, http.NoBody, nil)
	require.Equal(t, http.StatusOK, statusCode)
	require.Equal(t, string(api.MIGRATIONSTATUS_NOT_STARTED), gjson.Get(body, "metadata.state").String())
	require.False(t, gjson.Get(body, "metadata.finished").Bool())

	// Run the migration with a short simulated transfer time.
	statusCode, body = probeAPI(t, client, http.MethodPost, startURL, bytes.NewBufferString(`{"delay_minutes": 0.0001}`), nil)
	require.Equal(t, http.StatusOK, statusCode)
	require.Equal(t, string(api.MIGRATIONSTATUS_SUCCESS), gjson.Get(body, "metadata.state").String())

	// Only the selected mount points with a source match made it to the target.
	require.Equal(t, int64(2), gjson.Get(body, "metadata.migration_target.target_vm.storage.mount_points.#").Int())

	statusCode, body = probeAPI(t, client, http.MethodGet, statusURL, http.NoBody, nil)
	require.Equal(t, http.StatusOK, statusCode)
	require.Equal(t, string(api.MIGRATIONSTATUS_SUCCESS), gjson.Get(body, "metadata.state").String())
	require.True(t, gjson.Get(body, "metadata.finished").Bool())

	// A terminal migration may be run again.
	statusCode, body = probeAPI(t, client, http.MethodPost, startURL, bytes.NewBufferString(`{"delay_minutes": 0.0001}`), nil)
	require.Equal(t, http.StatusOK, statusCode)
	require.Equal(t, string(api.MIGRATIONSTATUS_SUCCESS), gjson.Get(body, "metadata.state").String())
}

func TestMigrationStartNotFound(t *testing.T) {
	// Setup
	_, client, srvURL := daemonSetup(t, []APIEndpoint{migrationStartCmd})

	statusCode, _ := probeAPI(t, client, http.MethodPost, srvURL+"/1.0/migrations/0192c7d4-4a5b-7c3a-8f50-2a1be3a49a5c/start", bytes.NewBufferString(`{"delay_minutes": 0.0001}`), nil)
	require.Equal(t, http.StatusNotFound, statusCode)
}

func seedDBWithSingleMigration(t *testing.T, daemon *Daemon) *migration.Migration {
	t.Helper()

	source, err := migration.NewWorkload("10.0.0.1",
		api.Credentials{Username: "admin", Password: "s3cr3t"},
		api.Storage{MountPoints: []api.MountPoint{
			{Name: `C:\`, TotalSize: 100 << 30},
			{Name: `D:\`, TotalSize: 500 << 30},
		}},
	)
	require.NoError(t, err)

	target := api.MigrationTarget{
		CloudType:        api.CLOUDTYPE_AWS,
		CloudCredentials: api.Credentials{Username: "cloudadmin", Password: "cloudpass"},
		TargetVM: api.Workload{
			IP:          "192.168.1.10",
			Credentials: api.Credentials{Username: "vmadmin", Password: "vmpass"},
		},
	}

	mig, err := daemon.migration.Create(context.TODO(), source, target, []string{`C:\`, `D:\`})
	require.NoError(t, err)

	return mig
}
