package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/api"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/models"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/notify"
)

func discardSlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminSession() models.AuthSession {
	return models.Authenticated("prof", "tok")
}

func TestRefetchRuleTable(t *testing.T) {
	for _, a := range []Action{ActionSignup, ActionUnregister, ActionLogin, ActionLogout} {
		assert.True(t, RefetchAfter(a), "action %s must refetch the roster", a)
	}
}

func TestSignup_GateBlocksWithoutSession(t *testing.T) {
	c := &fakeClient{}
	r := NewRosterService(c)

	out := r.Signup(context.Background(), models.Unauthenticated(), "Chess Club", "a@b.com")

	assert.Equal(t, GateMessage, out.Message)
	assert.Equal(t, notify.KindError, out.Kind)
	assert.False(t, out.Refetch)
	assert.Equal(t, 0, c.signupCalls, "the gate must reject before any request is issued")
}

func TestSignup_Success(t *testing.T) {
	c := &fakeClient{signupMsg: "prof signed up a@b.com for Chess Club"}
	r := NewRosterService(c)

	out := r.Signup(context.Background(), adminSession(), "Chess Club", "a@b.com")

	assert.Equal(t, "prof signed up a@b.com for Chess Club", out.Message)
	assert.Equal(t, notify.KindSuccess, out.Kind)
	assert.True(t, out.Refetch)
	assert.Equal(t, "Chess Club", c.lastActivity)
	assert.Equal(t, "a@b.com", c.lastEmail)
	assert.Equal(t, "tok", c.lastToken)
}

func TestSignup_ApplicationFailure_UsesDetail(t *testing.T) {
	c := &fakeClient{signupErr: &api.StatusError{Code: 400, Detail: "Already registered"}}
	r := NewRosterService(c)

	out := r.Signup(context.Background(), adminSession(), "Chess Club", "a@b.com")

	assert.Equal(t, "Already registered", out.Message)
	assert.Equal(t, notify.KindError, out.Kind)
	assert.False(t, out.Refetch, "a failed mutation leaves the roster unchanged")
}

func TestSignup_ApplicationFailure_NoDetail(t *testing.T) {
	c := &fakeClient{signupErr: &api.StatusError{Code: 500}}
	r := NewRosterService(c)

	out := r.Signup(context.Background(), adminSession(), "Chess Club", "a@b.com")

	assert.Equal(t, "An error occurred", out.Message)
	assert.Equal(t, notify.KindError, out.Kind)
}

func TestSignup_TransportFailure(t *testing.T) {
	c := &fakeClient{signupErr: fmt.Errorf("%w: refused", api.ErrUnavailable)}
	r := NewRosterService(c)

	out := r.Signup(context.Background(), adminSession(), "Chess Club", "a@b.com")

	assert.Equal(t, "Failed to sign up. Please try again.", out.Message)
	assert.Equal(t, notify.KindError, out.Kind)
}

func TestUnregister_GateBlocksWithoutSession(t *testing.T) {
	c := &fakeClient{}
	r := NewRosterService(c)

	out := r.Unregister(context.Background(), models.Unauthenticated(), "Chess Club", "a@b.com")

	assert.Equal(t, GateMessage, out.Message)
	assert.Equal(t, 0, c.unregisterCalls)
}

func TestUnregister_Success(t *testing.T) {
	c := &fakeClient{unregisterMsg: "Removed"}
	r := NewRosterService(c)

	out := r.Unregister(context.Background(), adminSession(), "Chess Club", "a@b.com")

	assert.Equal(t, "Removed", out.Message)
	assert.Equal(t, notify.KindSuccess, out.Kind)
	assert.True(t, out.Refetch)
}

func TestUnregister_TransportFailure(t *testing.T) {
	c := &fakeClient{unregisterErr: fmt.Errorf("%w: refused", api.ErrUnavailable)}
	r := NewRosterService(c)

	out := r.Unregister(context.Background(), adminSession(), "Chess Club", "a@b.com")

	assert.Equal(t, "Failed to unregister. Please try again.", out.Message)
}

func TestFetch_PassesThrough(t *testing.T) {
	snap := &models.RosterSnapshot{Activities: []models.Activity{{Name: "Chess Club"}}}
	c := &fakeClient{fetchSnap: snap}
	r := NewRosterService(c)

	got, err := r.Fetch(context.Background())
	require.NoError(t, err)
	assert.Same(t, snap, got)
	assert.Equal(t, 1, c.fetchCalls)
}
