// Package boom provides a sentinel error and matching assertion helpers for
// tests that only care about an error being passed through unchanged.
package boom

import (
	"errors"

	"github.com/stretchr/testify/require"
)

var Error = errors.New("boom!")

// ErrorIs asserts that err wraps boom.Error. The signature matches
// require.ErrorAssertionFunc.
func ErrorIs(t require.TestingT, err error, a ...any) {
	require.ErrorIs(t, err, Error, a...)
}
