package migration

import (
	"fmt"

	"github.com/FuturFusion/workload-migrator/shared/api"
)

// Workload represents a machine registered with the migrator. The IP address
// is the natural identifier of the workload and is immutable once set, both
// for freshly constructed and for deserialized workloads.
type Workload struct {
	ip    string
	ipSet bool

	Credentials api.Credentials
	Storage     api.Storage
}

// NewWorkload constructs a workload and marks its IP address as assigned.
// The storage is deep copied, the workload does not share mount points with
// the caller.
func NewWorkload(ip string, credentials api.Credentials, storage api.Storage) (Workload, error) {
	w := Workload{
		ip:          ip,
		Credentials: credentials,
		Storage:     storage.Clone(),
	}

	err := w.Validate()
	if err != nil {
		return Workload{}, err
	}

	w.ipSet = true

	return w, nil
}

// WorkloadFromAPI converts the wire representation into a workload. The
// resulting workload counts as having its IP assigned.
func WorkloadFromAPI(in api.Workload) (Workload, error) {
	return NewWorkload(in.IP, in.Credentials, in.Storage)
}

func (w Workload) Validate() error {
	if w.ip == "" {
		return NewValidationErrf("Invalid workload, IP can not be empty")
	}

	if w.Credentials.Username == "" {
		return NewValidationErrf("Invalid workload, username can not be empty")
	}

	if w.Credentials.Password == "" {
		return NewValidationErrf("Invalid workload, password can not be empty")
	}

	for _, mp := range w.Storage.MountPoints {
		if mp.Name == "" {
			return NewValidationErrf("Invalid workload, mount point name can not be empty")
		}

		if mp.TotalSize < 0 {
			return NewValidationErrf("Invalid workload, mount point %q has negative size", mp.Name)
		}
	}

	return nil
}

// IP returns the IP address of the workload.
func (w Workload) IP() string {
	return w.ip
}

// SetIP assigns the IP address of a workload that does not have one yet.
// Reassignment is rejected with ErrOperationNotPermitted.
func (w *Workload) SetIP(ip string) error {
	if w.ipSet {
		return fmt.Errorf("Cannot reassign IP address of workload %q: %w", w.ip, ErrOperationNotPermitted)
	}

	if ip == "" {
		return NewValidationErrf("Invalid workload, IP can not be empty")
	}

	w.ip = ip
	w.ipSet = true

	return nil
}

// Clone returns a deep copy of the workload.
func (w Workload) Clone() Workload {
	clone := w
	clone.Storage = w.Storage.Clone()

	return clone
}

func (w Workload) ToAPI() api.Workload {
	return api.Workload{
		IP:          w.ip,
		Credentials: w.Credentials,
		Storage:     w.Storage.Clone(),
	}
}

type Workloads []Workload
