package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/dbx"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/migrations"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/activities"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/sessions"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/teachers"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Activities(db dbx.DBTX) activities.Repository {
	return activities.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Teachers(db dbx.DBTX) teachers.Repository {
	return teachers.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
