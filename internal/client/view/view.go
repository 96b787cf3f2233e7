// Package view renders roster snapshots for the terminal. Rendering is a
// pure function of the snapshot and the viewer's role: it is re-derived in
// full on every call, so the displayed roster can never drift from the last
// snapshot the server returned.
package view

import (
	"fmt"
	"strings"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/models"
)

// RemoveMarker tags each participant line with a removal affordance when
// the viewer is an administrator.
const RemoveMarker = "[remove]"

// Banner returns the status line for the current session.
func Banner(session models.AuthSession) string {
	if session.Authenticated {
		return fmt.Sprintf("Logged in as %s", session.Username)
	}
	return "Viewing as student"
}

// Render formats the snapshot. Removal affordances appear once per
// participant, and only when isAdmin is true.
func Render(snap *models.RosterSnapshot, isAdmin bool) string {
	if snap == nil || len(snap.Activities) == 0 {
		return "No activities available.\n"
	}

	var b strings.Builder
	for i, a := range snap.Activities {
		if i > 0 {
			b.WriteString("\n")
		}
		renderActivity(&b, a, isAdmin)
	}
	return b.String()
}

func renderActivity(b *strings.Builder, a models.Activity, isAdmin bool) {
	fmt.Fprintf(b, "%s\n", a.Name)
	fmt.Fprintf(b, "  %s\n", a.Description)
	fmt.Fprintf(b, "  Schedule: %s\n", a.Schedule)
	fmt.Fprintf(b, "  Availability: %d spots left\n", a.SpotsLeft())

	if len(a.Participants) == 0 {
		fmt.Fprintf(b, "  No participants yet\n")
		return
	}

	fmt.Fprintf(b, "  Participants:\n")
	for _, email := range a.Participants {
		if isAdmin {
			fmt.Fprintf(b, "    - %s %s\n", email, RemoveMarker)
		} else {
			fmt.Fprintf(b, "    - %s\n", email)
		}
	}
}
