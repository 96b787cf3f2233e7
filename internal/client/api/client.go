// Package api defines the remote service contract consumed by the client
// and its HTTP implementation.
package api

import (
	"context"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/models"
)

// SessionInfo is the server's answer to a session probe.
type SessionInfo struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Client is the remote roster service boundary. Implementations are pure
// request/response: no persistence, no refetching, no local state beyond
// the connection itself.
type Client interface {
	// GetSession resolves whether the token still represents a valid
	// identity. An empty token resolves to unauthenticated without a
	// network call.
	GetSession(ctx context.Context, token string) (SessionInfo, error)

	// Login exchanges credentials for a session token. Credentials travel
	// in the request body, never in the URL.
	Login(ctx context.Context, username, password string) (LoginResult, error)

	// Logout invalidates the token server-side. Failures are reported but
	// callers treat them as non-fatal.
	Logout(ctx context.Context, token string) error

	// FetchActivities returns a fresh roster snapshot.
	FetchActivities(ctx context.Context) (*models.RosterSnapshot, error)

	// Signup enrolls email in the activity and returns the server message.
	Signup(ctx context.Context, activity, email, token string) (string, error)

	// Unregister removes email from the activity and returns the server message.
	Unregister(ctx context.Context, activity, email, token string) (string, error)
}
