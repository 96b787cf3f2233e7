package activities

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.Activity, error) {
	query :=
		`SELECT name, description, schedule, max_participants FROM activities
		 ORDER BY position
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Activity
	index := make(map[string]int)
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		a.Participants = []string{}
		index[a.Name] = len(result)
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := r.loadParticipants(ctx, result, index); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostgresRepository) loadParticipants(ctx context.Context, activities []models.Activity, index map[string]int) error {
	query :=
		`SELECT activity_name, email FROM activity_participants
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, email string
		if err := rows.Scan(&name, &email); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if i, ok := index[name]; ok {
			activities[i].Participants = append(activities[i].Participants, email)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, name string) (*models.Activity, error) {
	query :=
		`SELECT name, description, schedule, max_participants FROM activities
		 WHERE name = $1
		 `

	a := &models.Activity{Participants: []string{}}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT email FROM activity_participants WHERE activity_name = $1 ORDER BY id`, name)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		a.Participants = append(a.Participants, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) AddParticipant(ctx context.Context, name, email string) error {
	query :=
		`INSERT INTO activity_participants (activity_name, email)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, name, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	query :=
		`DELETE FROM activity_participants
		 WHERE activity_name = $1 AND email = $2
		 `

	res, err := r.db.ExecContext(ctx, query, name, email)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
