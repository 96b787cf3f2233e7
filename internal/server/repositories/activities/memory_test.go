package activities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/common"
)

func TestMemoryRepository_ListPreservesSeedOrder(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(Seed())

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 9)

	assert.Equal(t, "Chess Club", list[0].Name)
	assert.Equal(t, "Programming Class", list[1].Name)
	assert.Equal(t, "Debate Team", list[8].Name)
}

func TestMemoryRepository_AddAndRemoveParticipant(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(Seed())

	require.NoError(t, r.AddParticipant(ctx, "Chess Club", "new@mergington.edu"))

	a, err := r.Get(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "new@mergington.edu"}, a.Participants)

	require.NoError(t, r.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu"))

	a, err = r.Get(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"daniel@mergington.edu", "new@mergington.edu"}, a.Participants)
}

func TestMemoryRepository_UnknownActivity(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(Seed())

	_, err := r.Get(ctx, "Knitting Circle")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = r.AddParticipant(ctx, "Knitting Circle", "x@mergington.edu")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_RemoveAbsentParticipant(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(Seed())

	err := r.RemoveParticipant(ctx, "Chess Club", "stranger@mergington.edu")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_SnapshotsDoNotAlias(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(Seed())

	a, err := r.Get(ctx, "Chess Club")
	require.NoError(t, err)
	a.Participants[0] = "mutated@mergington.edu"

	again, err := r.Get(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "michael@mergington.edu", again.Participants[0])
}
