// Package localdb opens the client's local sqlite database and keeps its
// schema current. The database holds only durable client state; today that
// is the persisted session token.
package localdb

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pressly/goose/v3"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/migrations"

	_ "modernc.org/sqlite"
)

// DefaultPath returns the per-user location of the client database,
// creating the parent directory if needed.
func DefaultPath() (string, error) {
	dir := filepath.Join(xdg.DataHome, "activities")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "client.db"), nil
}

// RunMigrations applies any pending schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (and if necessary creates) the database at dsn and brings the
// schema up to date.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
