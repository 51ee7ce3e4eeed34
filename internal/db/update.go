//go:build linux && cgo

package db

import (
	"context"
	"database/sql"

	"github.com/FuturFusion/workload-migrator/internal/db/schema"
)

const freshSchema = `
CREATE TABLE workloads (
    ip          TEXT PRIMARY KEY NOT NULL,
    credentials TEXT NOT NULL,
    storage     TEXT NOT NULL
);

CREATE TABLE migrations (
    id                    TEXT PRIMARY KEY NOT NULL,
    state                 TEXT NOT NULL,
    created_at            DATETIME NOT NULL,
    selected_mount_points TEXT NOT NULL,
    source                TEXT NOT NULL,
    migration_target      TEXT NOT NULL
);

INSERT INTO schema (version, updated_at) VALUES (1, strftime("%s"))
`

// Schema for the local database.
func Schema() *schema.Schema {
	schema := schema.NewFromMap(updates)
	schema.Fresh(freshSchema)
	return schema
}

/* Database updates are one-time actions that are needed to move an
   existing database from one version of the schema to the next.

   Those updates are applied at startup time before anything else
   is initialized. This means that they should be entirely
   self-contained and not touch anything but the database.

   Only append to the updates list, never remove entries and never re-order them.
*/

var updates = map[int]schema.Update{
	1: updateFromV0,
}

func updateFromV0(ctx context.Context, tx *sql.Tx) error {
	stmt := `
CREATE TABLE workloads (
    ip          TEXT PRIMARY KEY NOT NULL,
    credentials TEXT NOT NULL,
    storage     TEXT NOT NULL
);

CREATE TABLE migrations (
    id                    TEXT PRIMARY KEY NOT NULL,
    state                 TEXT NOT NULL,
    created_at            DATETIME NOT NULL,
    selected_mount_points TEXT NOT NULL,
    source                TEXT NOT NULL,
    migration_target      TEXT NOT NULL
);
`
	_, err := tx.ExecContext(ctx, stmt)
	return err
}
