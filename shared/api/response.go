package api

// ResponseRaw represents the REST response envelope in its original form.
type ResponseRaw struct {
	Type ResponseType `json:"type" yaml:"type"`

	// Valid only for Sync responses
	Status     string `json:"status" yaml:"status"`
	StatusCode int    `json:"status_code" yaml:"status_code"`

	// Valid only for Error responses
	Code  int    `json:"error_code" yaml:"error_code"`
	Error string `json:"error" yaml:"error"`

	Metadata any `json:"metadata" yaml:"metadata"`
}

// ResponseType represents a valid response type.
type ResponseType string

// Response types.
const (
	SyncResponse  ResponseType = "sync"
	ErrorResponse ResponseType = "error"
)

// StatusCode represents a valid REST operation status code.
type StatusCode int

// Status codes.
const (
	Success StatusCode = 200
	Failure StatusCode = 400
)

// String returns a suitable string representation for the status code.
func (o StatusCode) String() string {
	switch o {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	}

	return "Unknown"
}
