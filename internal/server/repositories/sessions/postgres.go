package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/common"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/dbx"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, token, username string, validityDuration time.Duration) error {
	query :=
		`INSERT INTO sessions (token, username, expires_at)
		 VALUES ($1, $2, $3)
		 `

	expires := time.Now().Add(validityDuration)
	if _, err := r.db.ExecContext(ctx, query, token, username, expires); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.Session, error) {
	query :=
		`SELECT token, username, expires_at FROM sessions
		 WHERE token = $1 AND expires_at > now()
		 `

	s := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(&s.Token, &s.Username, &s.Expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, token string) error {
	query :=
		`DELETE FROM sessions
		 WHERE token = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
