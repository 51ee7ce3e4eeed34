package migration

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("Not found")

	// ErrConstraintViolation is returned when a write conflicts with a
	// uniqueness guarantee, e.g. registering a second workload with the
	// same IP.
	ErrConstraintViolation = errors.New("Constraint violation")

	// ErrOperationNotPermitted is returned when the operation is valid in
	// general but not in the current state of the entity.
	ErrOperationNotPermitted = errors.New("Operation not permitted")
)

// ErrValidation represents a failed validation of user provided data.
type ErrValidation struct {
	msg string
}

func NewValidationErrf(format string, args ...any) ErrValidation {
	return ErrValidation{
		msg: fmt.Sprintf(format, args...),
	}
}

func (e ErrValidation) Error() string {
	return e.msg
}
