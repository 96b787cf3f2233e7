package cli

import (
	"context"
	"fmt"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/notify"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/services"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/view"
)

// List fetches a fresh snapshot and renders it for the current role.
// The previous rendering is never patched: what is shown is always exactly
// what the server last returned.
func (a *App) List(ctx context.Context) error {
	snap, err := a.rosterService.Fetch(ctx)
	if err != nil {
		a.notifications.Show(services.FetchFailureMessage, notify.KindError)
		return err
	}

	fmt.Fprintln(a.out, view.Banner(a.authService.Session()))
	fmt.Fprint(a.out, view.Render(snap, a.isAdmin()))
	return nil
}

// Signup prompts for an activity and a student email and attempts the
// enrollment. The authorization gate inside the roster service rejects the
// attempt locally when no teacher is logged in.
func (a *App) Signup(ctx context.Context) error {
	activity, err := getSimpleText(a.reader, "Activity name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Student email", a.out)
	if err != nil {
		return err
	}

	out := a.rosterService.Signup(ctx, a.authService.Session(), activity, email)
	a.notifications.Show(out.Message, out.Kind)
	if out.Refetch {
		a.refresh(ctx)
	}
	return nil
}

// Unregister prompts for an activity and a participant email and attempts
// the removal, behind the same gate as Signup.
func (a *App) Unregister(ctx context.Context) error {
	activity, err := getSimpleText(a.reader, "Activity name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Participant email", a.out)
	if err != nil {
		return err
	}

	out := a.rosterService.Unregister(ctx, a.authService.Session(), activity, email)
	a.notifications.Show(out.Message, out.Kind)
	if out.Refetch {
		a.refresh(ctx)
	}
	return nil
}
