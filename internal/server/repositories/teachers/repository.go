// Package teachers stores administrator accounts.
package teachers

import (
	"context"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/models"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*models.Teacher, error)
	Upsert(ctx context.Context, teacher *models.Teacher) error
}
