package api

// Credentials holds the login information used to access a workload.
//
// swagger:model
type Credentials struct {
	// User name used to log into the workload
	// Example: administrator
	Username string `json:"username" yaml:"username"`

	// Password used to log into the workload
	Password string `json:"password" yaml:"password"`

	// Optional authentication domain or realm
	// Example: CORP
	Domain string `json:"domain" yaml:"domain"`
}

// MountPoint describes a single volume attached to a workload.
//
// swagger:model
type MountPoint struct {
	// Name of the mount point
	// Example: c:\
	Name string `json:"name" yaml:"name"`

	// Total size of the volume in bytes
	// Example: 42949672960
	TotalSize int64 `json:"total_size" yaml:"total_size"`
}

// Storage describes the set of volumes attached to a workload. The order of
// the mount points is preserved and duplicate names are allowed.
//
// swagger:model
type Storage struct {
	MountPoints []MountPoint `json:"mount_points" yaml:"mount_points"`
}

// GetMountPoint returns the first mount point with the given name.
func (s Storage) GetMountPoint(name string) (MountPoint, bool) {
	for _, mp := range s.MountPoints {
		if mp.Name == name {
			return mp, true
		}
	}

	return MountPoint{}, false
}

// Clone returns a deep copy of the storage.
func (s Storage) Clone() Storage {
	clone := Storage{}
	if s.MountPoints != nil {
		clone.MountPoints = make([]MountPoint, len(s.MountPoints))
		copy(clone.MountPoints, s.MountPoints)
	}

	return clone
}

// Workload defines a machine that can serve as the source or the target of a
// migration.
//
// swagger:model
type Workload struct {
	// IP address of the workload, also its unique identifier
	// Example: 10.10.10.5
	IP string `json:"ip" yaml:"ip"`

	// Credentials used to access the workload
	Credentials Credentials `json:"credentials" yaml:"credentials"`

	// Storage attached to the workload
	Storage Storage `json:"storage" yaml:"storage"`
}
