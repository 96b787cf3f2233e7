// Package services implements the server's business logic on top of the
// repository layer.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/common"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/auth"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/config"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/models"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/repomanager"
)

// AuthResult is a successful login: a signed session token and the
// canonical username it was issued for.
type AuthResult struct {
	Token    string
	Username string
}

type AuthService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	jwtSecret               []byte
	sessionValidityDuration time.Duration
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                      db,
		repomanager:             m,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// SeedTeachers upserts the provided accounts. It runs at startup so the
// credentials file stays authoritative across restarts.
func (s *AuthService) SeedTeachers(ctx context.Context, list []models.Teacher) error {
	repo := s.repomanager.Teachers(s.db)
	for i := range list {
		if err := repo.Upsert(ctx, &list[i]); err != nil {
			return fmt.Errorf("seeding teacher %s: %w", list[i].Username, err)
		}
	}
	return nil
}

// Login verifies the credentials, mints a signed token and records the
// session. Unknown usernames and wrong passwords are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	repo := s.repomanager.Teachers(s.db)

	teacher, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(teacher.PasswordHash, []byte(password)) != nil {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(teacher.Username, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.repomanager.Sessions(s.db).Create(ctx, token, teacher.Username, s.sessionValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, Username: teacher.Username}, nil
}

// Authenticate resolves a bearer token to a teacher username. The token
// must carry a valid signature AND a live session row: logout revokes the
// row, so a structurally valid token alone is not enough.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	if _, err := auth.GetUsernameFromToken(token, s.jwtSecret); err != nil {
		return "", common.ErrorSessionExpired
	}

	session, err := s.repomanager.Sessions(s.db).Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorSessionExpired
		}
		return "", common.ErrorInternal
	}

	return session.Username, nil
}

// Logout revokes the session row. Revoking an already-revoked token is
// not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.repomanager.Sessions(s.db).Delete(ctx, token); err != nil {
		return common.ErrorInternal
	}
	return nil
}
