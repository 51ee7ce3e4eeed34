package migration_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FuturFusion/workload-migrator/internal/migration"
)

func TestValidationErr_Error(t *testing.T) {
	err := migration.NewValidationErrf("boom!")

	require.Equal(t, "boom!", err.Error())
}
