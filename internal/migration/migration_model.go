package migration

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FuturFusion/workload-migrator/shared/api"
)

// bootVolumeNames are the mount point names, compared lowercased, that mark
// the boot volume of a workload.
var bootVolumeNames = []string{`c:\`, `c:/`, `c:`}

func isBootVolume(name string) bool {
	return slices.Contains(bootVolumeNames, strings.ToLower(name))
}

// Migration represents a single planned or executed move of a workload into
// a cloud target. The source workload is a snapshot taken when the migration
// was defined, it does not track later changes to the registered workload.
//
// The status is guarded by a mutex so that concurrent Run attempts on the
// same instance observe a consistent state. Migration must not be copied.
type Migration struct {
	statusMu sync.Mutex
	status   api.MigrationStatusType

	ID                  uuid.UUID
	SelectedMountPoints []string
	Source              Workload
	Target              api.MigrationTarget
	CreatedAt           time.Time
}

// NewMigration defines a migration of the given source workload. The source
// and the selection are deep copied. The generated ID is a UUIDv7, so IDs
// created later sort after IDs created earlier.
func NewMigration(source Workload, target api.MigrationTarget, selectedMountPoints []string) (*Migration, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	m := &Migration{
		status:              api.MIGRATIONSTATUS_NOT_STARTED,
		ID:                  id,
		SelectedMountPoints: slices.Clone(selectedMountPoints),
		Source:              source.Clone(),
		Target:              cloneTarget(target),
		CreatedAt:           time.Now().UTC(),
	}

	err = m.Validate()
	if err != nil {
		return nil, err
	}

	return m, nil
}

// MigrationFromAPI converts the wire representation into a migration.
func MigrationFromAPI(in api.Migration) (*Migration, error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return nil, NewValidationErrf("Invalid migration, %q is not a valid ID: %v", in.ID, err)
	}

	source, err := WorkloadFromAPI(in.Source)
	if err != nil {
		return nil, err
	}

	err = in.State.Validate()
	if err != nil {
		return nil, NewValidationErrf("Invalid migration: %v", err)
	}

	m := &Migration{
		status:              in.State,
		ID:                  id,
		SelectedMountPoints: slices.Clone(in.SelectedMountPoints),
		Source:              source,
		Target:              cloneTarget(in.MigrationTarget),
		CreatedAt:           in.CreatedAt,
	}

	err = m.Validate()
	if err != nil {
		return nil, err
	}

	return m, nil
}

func cloneTarget(target api.MigrationTarget) api.MigrationTarget {
	clone := target
	clone.TargetVM.Storage = target.TargetVM.Storage.Clone()

	return clone
}

func (m *Migration) Validate() error {
	if m.ID == uuid.Nil {
		return NewValidationErrf("Invalid migration, ID can not be empty")
	}

	err := m.Target.CloudType.Validate()
	if err != nil {
		return NewValidationErrf("Invalid migration: %v", err)
	}

	if m.Target.CloudCredentials.Username == "" {
		return NewValidationErrf("Invalid migration, cloud credentials username can not be empty")
	}

	if m.Target.CloudCredentials.Password == "" {
		return NewValidationErrf("Invalid migration, cloud credentials password can not be empty")
	}

	if m.Target.TargetVM.IP == "" {
		return NewValidationErrf("Invalid migration, target VM IP can not be empty")
	}

	if m.Target.TargetVM.Credentials.Username == "" {
		return NewValidationErrf("Invalid migration, target VM username can not be empty")
	}

	if m.Target.TargetVM.Credentials.Password == "" {
		return NewValidationErrf("Invalid migration, target VM password can not be empty")
	}

	err = m.Source.Validate()
	if err != nil {
		return err
	}

	return checkBootVolume(m.SelectedMountPoints, m.Source.Storage)
}

// checkBootVolume enforces the boot volume rule. If the source storage
// contains a boot volume, the selection must include one as well.
func checkBootVolume(selectedMountPoints []string, storage api.Storage) error {
	var bootVolume string
	for _, mp := range storage.MountPoints {
		if isBootVolume(mp.Name) {
			bootVolume = mp.Name
			break
		}
	}

	if bootVolume == "" {
		return nil
	}

	for _, name := range selectedMountPoints {
		if isBootVolume(name) {
			return nil
		}
	}

	return NewValidationErrf("Invalid migration, boot volume %q must be included in the selected mount points", bootVolume)
}

// Status returns the current state of the migration.
func (m *Migration) Status() api.MigrationStatusType {
	m.statusMu.Lock()
	defer m.statusMu.Unlock()

	return m.status
}

func (m *Migration) setStatus(status api.MigrationStatusType) {
	m.statusMu.Lock()
	defer m.statusMu.Unlock()

	m.status = status
}

// UpdateSelectedMountPoints replaces the selection, re-checking the boot
// volume rule against the source storage. State restrictions are enforced by
// the service, not here.
func (m *Migration) UpdateSelectedMountPoints(selectedMountPoints []string) error {
	err := checkBootVolume(selectedMountPoints, m.Source.Storage)
	if err != nil {
		return err
	}

	m.SelectedMountPoints = slices.Clone(selectedMountPoints)

	return nil
}

// Run executes the migration synchronously. The only precondition is that
// the migration is not already running, terminal states may be re-run.
// When two goroutines race on the same instance, exactly one proceeds.
func (m *Migration) Run(ctx context.Context, delay time.Duration) error {
	err := m.startRun()
	if err != nil {
		return err
	}

	return m.finishRun(ctx, delay)
}

// startRun atomically checks that the migration is not running and moves it
// to the running state.
func (m *Migration) startRun() error {
	m.statusMu.Lock()
	defer m.statusMu.Unlock()

	if m.status == api.MIGRATIONSTATUS_RUNNING {
		return fmt.Errorf("Migration %q is already running: %w", m.ID.String(), ErrOperationNotPermitted)
	}

	m.status = api.MIGRATIONSTATUS_RUNNING

	return nil
}

// finishRun waits for the simulated transfer delay and then copies the
// selected mount points to the target. It always leaves the migration in a
// terminal state.
func (m *Migration) finishRun(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		m.setStatus(api.MIGRATIONSTATUS_ERROR)
		return fmt.Errorf("Migration %q aborted: %w", m.ID.String(), ctx.Err())
	case <-timer.C:
	}

	m.copySelectedMountPoints()
	m.setStatus(api.MIGRATIONSTATUS_SUCCESS)

	return nil
}

// copySelectedMountPoints replaces the target VM storage with copies of the
// selected source mount points. Lookup is by first match, selected names
// without a matching source mount point are skipped.
func (m *Migration) copySelectedMountPoints() {
	storage := api.Storage{MountPoints: make([]api.MountPoint, 0, len(m.SelectedMountPoints))}
	for _, name := range m.SelectedMountPoints {
		mp, ok := m.Source.Storage.GetMountPoint(name)
		if !ok {
			continue
		}

		storage.MountPoints = append(storage.MountPoints, mp)
	}

	m.Target.TargetVM.Storage = storage
}

func (m *Migration) ToAPI() api.Migration {
	return api.Migration{
		ID:                  m.ID.String(),
		SelectedMountPoints: slices.Clone(m.SelectedMountPoints),
		Source:              m.Source.ToAPI(),
		MigrationTarget:     cloneTarget(m.Target),
		State:               m.Status(),
		CreatedAt:           m.CreatedAt,
	}
}

type Migrations []*Migration
