package teachers

import (
	"context"
	"sync"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/common"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/models"
)

type MemoryRepository struct {
	mu       sync.Mutex
	teachers map[string]models.Teacher
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{teachers: make(map[string]models.Teacher)}
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.teachers[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, teacher *models.Teacher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teachers[teacher.Username] = *teacher
	return nil
}
