// Package activities stores the activity catalog and its rosters.
package activities

import (
	"context"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/models"
)

// Repository persists activities. List must return activities in their
// catalog order, and each activity's participants in signup order.
type Repository interface {
	List(ctx context.Context) ([]models.Activity, error)
	Get(ctx context.Context, name string) (*models.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}
