package api

import (
	"fmt"
	"strings"
	"time"
)

// CloudType represents the kind of cloud a migration can target.
type CloudType string

const (
	CLOUDTYPE_AWS     CloudType = "aws"
	CLOUDTYPE_AZURE   CloudType = "azure"
	CLOUDTYPE_VSPHERE CloudType = "vsphere"
	CLOUDTYPE_VCLOUD  CloudType = "vcloud"
)

// ParseCloudType converts a user supplied string into a CloudType. The match
// is case-insensitive.
func ParseCloudType(s string) (CloudType, error) {
	switch CloudType(strings.ToLower(s)) {
	case CLOUDTYPE_AWS:
		return CLOUDTYPE_AWS, nil
	case CLOUDTYPE_AZURE:
		return CLOUDTYPE_AZURE, nil
	case CLOUDTYPE_VSPHERE:
		return CLOUDTYPE_VSPHERE, nil
	case CLOUDTYPE_VCLOUD:
		return CLOUDTYPE_VCLOUD, nil
	default:
		return "", fmt.Errorf("%q is not a valid cloud type", s)
	}
}

// Validate ensures the CloudType is one of the supported values.
func (c CloudType) Validate() error {
	switch c {
	case CLOUDTYPE_AWS, CLOUDTYPE_AZURE, CLOUDTYPE_VSPHERE, CLOUDTYPE_VCLOUD:
		return nil
	default:
		return fmt.Errorf("%q is not a valid cloud type", string(c))
	}
}

// MigrationStatusType represents the lifecycle state of a migration.
type MigrationStatusType string

const (
	MIGRATIONSTATUS_NOT_STARTED MigrationStatusType = "not_started"
	MIGRATIONSTATUS_RUNNING     MigrationStatusType = "running"
	MIGRATIONSTATUS_ERROR       MigrationStatusType = "error"
	MIGRATIONSTATUS_SUCCESS     MigrationStatusType = "success"
)

// Validate ensures the MigrationStatusType is one of the supported values.
func (m MigrationStatusType) Validate() error {
	switch m {
	case MIGRATIONSTATUS_NOT_STARTED, MIGRATIONSTATUS_RUNNING, MIGRATIONSTATUS_ERROR, MIGRATIONSTATUS_SUCCESS:
		return nil
	default:
		return fmt.Errorf("%q is not a valid migration status", string(m))
	}
}

// IsFinished returns true if the status is terminal.
func (m MigrationStatusType) IsFinished() bool {
	return m == MIGRATIONSTATUS_SUCCESS || m == MIGRATIONSTATUS_ERROR
}

// MigrationTarget defines where a migration delivers its workload.
//
// swagger:model
type MigrationTarget struct {
	// The kind of cloud hosting the target VM
	// Example: aws
	CloudType CloudType `json:"cloud_type" yaml:"cloud_type"`

	// Credentials used to access the cloud
	CloudCredentials Credentials `json:"cloud_credentials" yaml:"cloud_credentials"`

	// Descriptor of the target VM. Its storage is populated by a successful
	// migration run.
	TargetVM Workload `json:"target_vm" yaml:"target_vm"`
}

// Migration defines a single planned or executed move of a workload into a
// cloud target.
//
// swagger:model
type Migration struct {
	// Unique, time-ordered identifier of the migration
	// Example: 0192c7d4-4a5b-7c3a-8f50-2a1be3a49a5c
	ID string `json:"id" yaml:"id"`

	// Names of the source mount points to carry over
	// Example: ["c:\\", "d:\\"]
	SelectedMountPoints []string `json:"selected_mount_points" yaml:"selected_mount_points"`

	// Snapshot of the source workload taken when the migration was defined
	Source Workload `json:"source" yaml:"source"`

	// The migration target
	MigrationTarget MigrationTarget `json:"migration_target" yaml:"migration_target"`

	// Current state of the migration
	// Example: not_started
	State MigrationStatusType `json:"state" yaml:"state"`

	// Time the migration was defined
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// MigrationStatus is the condensed state returned by the status endpoint.
//
// swagger:model
type MigrationStatus struct {
	// Unique identifier of the migration
	MigrationID string `json:"migration_id" yaml:"migration_id"`

	// Current state of the migration
	// Example: running
	State MigrationStatusType `json:"state" yaml:"state"`

	// Whether the migration reached a terminal state
	// Example: false
	Finished bool `json:"finished" yaml:"finished"`
}

// MigrationStart holds the parameters accepted when starting a migration.
//
// swagger:model
type MigrationStart struct {
	// Simulated transfer time in minutes
	// Example: 0.1
	DelayMinutes float64 `json:"delay_minutes" yaml:"delay_minutes"`
}
