// Package sqlite holds the schema of the reference-data store.
package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/cockroachdb/errors"
	"github.com/diegoclair/sqlmigrator"
)

const migrationsDir = "sql"

//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate creates or upgrades the reference tables.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, migrationsDir); err != nil {
		return errors.Wrap(err, "failed to migrate reference tables")
	}

	return nil
}
