package api

// APIVersion contains the API base version. Only bumped for backward incompatible changes.
const APIVersion = "1.0"

// APIStatus contains the API implementation status.
const APIStatus = "devel"

// Server represents the server environment returned on the API root.
//
// swagger:model
type Server struct {
	// Support status of the current API
	// Example: devel
	APIStatus string `json:"api_status" yaml:"api_status"`

	// API version number
	// Example: 1.0
	APIVersion string `json:"api_version" yaml:"api_version"`

	// Version of the daemon
	// Example: 0.1.0
	DaemonVersion string `json:"daemon_version" yaml:"daemon_version"`
}
