package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/models"
)

func sampleSnapshot() *models.RosterSnapshot {
	return &models.RosterSnapshot{Activities: []models.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore your creativity",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
		},
	}}
}

func TestRender_StudentSeesNoRemovalAffordances(t *testing.T) {
	out := Render(sampleSnapshot(), false)
	assert.Zero(t, strings.Count(out, RemoveMarker))
	assert.Contains(t, out, "michael@mergington.edu")
}

func TestRender_AdminSeesOneAffordancePerParticipant(t *testing.T) {
	out := Render(sampleSnapshot(), true)
	assert.Equal(t, 2, strings.Count(out, RemoveMarker))
}

func TestRender_SpotsLeft(t *testing.T) {
	snap := &models.RosterSnapshot{Activities: []models.Activity{
		{Name: "Programming Class", MaxParticipants: 20, Participants: make([]string, 18)},
	}}
	out := Render(snap, false)
	assert.Contains(t, out, "Availability: 2 spots left")
}

func TestRender_EmptyParticipants(t *testing.T) {
	out := Render(sampleSnapshot(), true)
	assert.Contains(t, out, "No participants yet")
}

func TestRender_NilSnapshot(t *testing.T) {
	assert.Contains(t, Render(nil, false), "No activities available")
}

func TestBanner(t *testing.T) {
	assert.Equal(t, "Logged in as prof", Banner(models.Authenticated("prof", "t")))
	assert.Equal(t, "Viewing as student", Banner(models.Unauthenticated()))
}
