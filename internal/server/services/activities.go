package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/common"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/dbx"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/models"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/activities"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/repomanager"
)

type ActivityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewActivityService(db *sql.DB, m repomanager.RepositoryManager) *ActivityService {
	return &ActivityService{db: db, repomanager: m}
}

func (s *ActivityService) List(ctx context.Context) ([]models.Activity, error) {
	list, err := s.repomanager.Activities(s.db).List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return list, nil
}

// withRepo runs fn against the activities repository. With a database
// backend the check-then-mutate sequence runs inside a transaction; the
// in-memory backend serializes internally.
func (s *ActivityService) withRepo(ctx context.Context, fn func(ctx context.Context, repo activities.Repository) error) error {
	if s.db == nil {
		return fn(ctx, s.repomanager.Activities(nil))
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, s.repomanager.Activities(tx))
	})
}

// Signup enrolls a student. Duplicates, full rosters and unknown
// activities are reported as domain errors.
func (s *ActivityService) Signup(ctx context.Context, activityName, email string) error {
	return s.withRepo(ctx, func(ctx context.Context, repo activities.Repository) error {
		activity, err := repo.Get(ctx, activityName)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorActivityNotFound
			}
			return common.ErrorInternal
		}

		if activity.HasParticipant(email) {
			return common.ErrorAlreadySignedUp
		}
		if activity.IsFull() {
			return common.ErrorActivityFull
		}

		if err := repo.AddParticipant(ctx, activityName, email); err != nil {
			return common.ErrorInternal
		}
		return nil
	})
}

// Unregister removes a student from an activity roster.
func (s *ActivityService) Unregister(ctx context.Context, activityName, email string) error {
	return s.withRepo(ctx, func(ctx context.Context, repo activities.Repository) error {
		activity, err := repo.Get(ctx, activityName)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorActivityNotFound
			}
			return common.ErrorInternal
		}

		if !activity.HasParticipant(email) {
			return common.ErrorNotSignedUp
		}

		if err := repo.RemoveParticipant(ctx, activityName, email); err != nil {
			return common.ErrorInternal
		}
		return nil
	})
}
