package storage

import (
	"context"
	"sync"

	"github.com/yourusername/belle-tracker/internal/domain/entity"
	"github.com/yourusername/belle-tracker/internal/domain/repository"
)

type memoryActionRepository struct {
	mu      sync.RWMutex
	actions []entity.Action
}

// NewMemoryActionRepository in-memory harakatlar jurnali
func NewMemoryActionRepository() repository.ActionRepository {
	return &memoryActionRepository{
		actions: []entity.Action{},
	}
}

// LogAction harakatni yozish
func (m *memoryActionRepository) LogAction(ctx context.Context, action entity.Action) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = append(m.actions, action)
	return nil
}

// GetActions oxirgi harakatlarni olish
func (m *memoryActionRepository) GetActions(ctx context.Context, limit int) ([]entity.Action, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.actions)
	if limit > 0 && limit < n {
		n = limit
	}

	result := make([]entity.Action, 0, n)
	for i := len(m.actions) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, m.actions[i])
	}
	return result, nil
}
