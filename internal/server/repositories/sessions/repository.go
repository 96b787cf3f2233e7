// Package sessions stores live logins keyed by token, so a signed token
// can be revoked by logout before its expiry.
package sessions

import (
	"context"
	"time"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, token, username string, validityDuration time.Duration) error
	Find(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}
