package activities

import (
	"context"
	"sync"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/common"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/models"
)

// MemoryRepository keeps the catalog in process memory, preserving the
// order the activities were seeded in.
type MemoryRepository struct {
	mu         sync.Mutex
	order      []string
	activities map[string]*models.Activity
}

func NewMemoryRepository(seed []models.Activity) *MemoryRepository {
	r := &MemoryRepository{activities: make(map[string]*models.Activity)}
	for i := range seed {
		a := seed[i]
		participants := make([]string, len(a.Participants))
		copy(participants, a.Participants)
		a.Participants = participants
		r.order = append(r.order, a.Name)
		r.activities[a.Name] = &a
	}
	return r
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]models.Activity, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.snapshot(name))
	}
	return result, nil
}

func (r *MemoryRepository) Get(ctx context.Context, name string) (*models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.activities[name]; !ok {
		return nil, common.ErrorNotFound
	}
	a := r.snapshot(name)
	return &a, nil
}

func (r *MemoryRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return common.ErrorNotFound
	}
	a.Participants = append(a.Participants, email)
	return nil
}

func (r *MemoryRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return common.ErrorNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

// snapshot copies an activity so callers never share the internal slice.
// Callers must hold r.mu.
func (r *MemoryRepository) snapshot(name string) models.Activity {
	a := *r.activities[name]
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}
