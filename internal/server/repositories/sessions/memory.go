package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/common"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/models"
)

type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]models.Session)}
}

func (r *MemoryRepository) Create(ctx context.Context, token, username string, validityDuration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = models.Session{
		Token:    token,
		Username: username,
		Expires:  time.Now().Add(validityDuration),
	}
	return nil
}

func (r *MemoryRepository) Find(ctx context.Context, token string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if s.Expires.Before(time.Now()) {
		delete(r.sessions, token)
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}
