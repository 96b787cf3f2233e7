package teachers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	query :=
		`SELECT username, password_hash FROM teachers
		 WHERE username = $1
		 `

	teacher := &models.Teacher{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&teacher.Username, &teacher.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return teacher, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, teacher *models.Teacher) error {
	query :=
		`INSERT INTO teachers (username, password_hash)
		 VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		 `

	if _, err := r.db.ExecContext(ctx, query, teacher.Username, teacher.PasswordHash); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
