package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/dbx"
)

// slotKey is the fixed key of the one and only token slot.
const slotKey = "admin_auth_token"

type SQLiteStore struct {
	db dbx.DBTX
}

func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (r *SQLiteStore) Get(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM tokens WHERE key = ?`, slotKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token slot: %w", err)
	}
	return value, nil
}

func (r *SQLiteStore) Set(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tokens (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, slotKey, token)
	if err != nil {
		return fmt.Errorf("failed to write token slot: %w", err)
	}
	return nil
}

func (r *SQLiteStore) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE key = ?`, slotKey)
	if err != nil {
		return fmt.Errorf("failed to clear token slot: %w", err)
	}
	return nil
}
