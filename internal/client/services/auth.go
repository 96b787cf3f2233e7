// Package services contains the application services behind the CLI: the
// authentication state machine and the roster operations it gates.
package services

import (
	"context"
	"fmt"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/api"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/models"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/repositories/tokens"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/logging"
)

// AuthService owns the client's authentication state. It is the only
// writer of the persisted token slot, which keeps the token free of write
// races by convention.
//
// Contract:
//   - Restore: turn a persisted token into a live session, exactly once at
//     startup. Fail-closed: any doubt resolves to unauthenticated and
//     clears the slot. Never surfaces an error to the user.
//   - Login: exchange credentials for a token, persist it, transition to
//     authenticated. Failures leave the state untouched.
//   - Logout: best-effort server call; the local transition to
//     unauthenticated always happens. Idempotent.
type AuthService interface {
	Session() models.AuthSession
	Restore(ctx context.Context) models.AuthSession
	Login(ctx context.Context, username, password string) (models.AuthSession, error)
	Logout(ctx context.Context) models.AuthSession
}

type authService struct {
	client  api.Client
	store   tokens.Store
	logger  logging.Logger
	session models.AuthSession
}

// NewAuthService constructs an AuthService bound to the given API client
// and token store. The session starts unauthenticated.
func NewAuthService(client api.Client, store tokens.Store, logger logging.Logger) AuthService {
	return &authService{client: client, store: store, logger: logger}
}

func (a *authService) Session() models.AuthSession {
	return a.session
}

func (a *authService) Restore(ctx context.Context) models.AuthSession {
	token, err := a.store.Get(ctx)
	if err != nil {
		a.logger.Warn(ctx, "reading token slot failed", "error", err)
		a.session = models.Unauthenticated()
		return a.session
	}
	if token == "" {
		a.session = models.Unauthenticated()
		return a.session
	}

	info, err := a.client.GetSession(ctx, token)
	if err != nil || !info.Authenticated {
		// An invalid or expired token during silent restore is expected,
		// not exceptional: drop it and continue as a student.
		if err != nil {
			a.logger.Warn(ctx, "session restore failed", "error", err)
		}
		if clearErr := a.store.Clear(ctx); clearErr != nil {
			a.logger.Warn(ctx, "clearing stale token failed", "error", clearErr)
		}
		a.session = models.Unauthenticated()
		return a.session
	}

	a.session = models.Authenticated(info.Username, token)
	return a.session
}

func (a *authService) Login(ctx context.Context, username, password string) (models.AuthSession, error) {
	res, err := a.client.Login(ctx, username, password)
	if err != nil {
		return a.session, fmt.Errorf("login: %w", err)
	}

	if err := a.store.Set(ctx, res.Token); err != nil {
		// The in-memory session is still valid for this run.
		a.logger.Warn(ctx, "persisting token failed", "error", err)
	}

	a.session = models.Authenticated(res.Username, res.Token)
	return a.session, nil
}

func (a *authService) Logout(ctx context.Context) models.AuthSession {
	if a.session.Token != "" {
		if err := a.client.Logout(ctx, a.session.Token); err != nil {
			// The user's intent is to appear logged out; the server call
			// failing must not block that.
			a.logger.Warn(ctx, "server logout failed", "error", err)
		}
	}

	if err := a.store.Clear(ctx); err != nil {
		a.logger.Warn(ctx, "clearing token failed", "error", err)
	}

	a.session = models.Unauthenticated()
	return a.session
}
