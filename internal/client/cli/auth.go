package cli

import (
	"context"
	"errors"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/api"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/notify"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/services"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/view"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for teacher credentials and attempts to authenticate.
//
// On success the session token is persisted, a success message is shown,
// and the roster is fetched again under the new identity. On failure the
// server's detail (or a generic transport message) is shown and the state
// stays as it was. The password buffer is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.authService.Login(ctx, username, string(password))
	if err != nil {
		if se, ok := api.AsStatusError(err); ok && se.Detail != "" {
			a.notifications.Show(se.Detail, notify.KindError)
		} else if errors.Is(err, api.ErrUnavailable) {
			a.notifications.Show("Failed to login. Please try again.", notify.KindError)
		} else {
			a.notifications.Show("Login failed", notify.KindError)
		}
		return err
	}

	a.notifications.Show("Logged in successfully", notify.KindSuccess)
	a.refreshAfter(ctx, services.ActionLogin)
	return nil
}

// Logout drops the session. The server call is best-effort: the local
// transition happens regardless, and running logout twice is harmless.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.notifications.Show("Logged out", notify.KindSuccess)
	a.refreshAfter(ctx, services.ActionLogout)
	return nil
}

// Whoami prints the current session banner.
func (a *App) Whoami(ctx context.Context) error {
	_, err := printlnFn(view.Banner(a.authService.Session()))
	return err
}

// refreshAfter consults the refetch rule table and re-renders the roster
// when the completed action demands it.
func (a *App) refreshAfter(ctx context.Context, action services.Action) {
	if !services.RefetchAfter(action) {
		return
	}
	a.refresh(ctx)
}

func (a *App) refresh(ctx context.Context) {
	if err := a.List(ctx); err != nil {
		a.logger.Warn(ctx, "roster refresh failed", "error", err)
	}
}
