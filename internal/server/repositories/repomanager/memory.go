package repomanager

import (
	"context"
	"database/sql"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/dbx"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/activities"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/sessions"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/teachers"
)

// MemoryRepositoryManager vends shared in-memory repositories, seeded with
// the default activity catalog. It is the default backend when no database
// DSN is configured. The db argument is ignored.
type MemoryRepositoryManager struct {
	activities *activities.MemoryRepository
	teachers   *teachers.MemoryRepository
	sessions   *sessions.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		activities: activities.NewMemoryRepository(activities.Seed()),
		teachers:   teachers.NewMemoryRepository(),
		sessions:   sessions.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Activities(db dbx.DBTX) activities.Repository {
	return m.activities
}

func (m *MemoryRepositoryManager) Teachers(db dbx.DBTX) teachers.Repository {
	return m.teachers
}

func (m *MemoryRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return m.sessions
}

// RunMigrations is a no-op: the in-memory store has no schema.
func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
