package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Schema migrations embedded into the binary and applied at startup, before
// any repository touches the database.
//
//go:embed *.sql
var migrationFiles embed.FS

// Migrate brings the connected database up to the newest schema version.
// The dialect matches the pgx stdlib driver the store opens its pool with.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrationFiles)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
