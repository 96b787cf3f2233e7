// Package repomanager vends repository implementations for a storage
// backend and exposes a schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/dbx"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/activities"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/sessions"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/teachers"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Activities(db dbx.DBTX) activities.Repository
	Teachers(db dbx.DBTX) teachers.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
