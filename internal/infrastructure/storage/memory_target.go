package storage

import (
	"context"
	"sync"

	"github.com/yourusername/belle-tracker/internal/domain/entity"
	"github.com/yourusername/belle-tracker/internal/domain/repository"
)

type memoryTargetRepository struct {
	mu      sync.RWMutex
	targets []entity.Target
}

// NewMemoryTargetRepository in-memory target ro'yxati yaratish
func NewMemoryTargetRepository() repository.TargetRepository {
	return &memoryTargetRepository{
		targets: []entity.Target{},
	}
}

// Replace butun ro'yxatni almashtirish
func (m *memoryTargetRepository) Replace(ctx context.Context, targets []entity.Target) error {
	list := make([]entity.Target, len(targets))
	copy(list, targets)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.targets = list
	return nil
}

// Remove ID bo'yicha barcha mos yozuvlarni o'chirish
func (m *memoryTargetRepository) Remove(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filtered := make([]entity.Target, 0, len(m.targets))
	for _, target := range m.targets {
		if target.ID != id {
			filtered = append(filtered, target)
		}
	}
	m.targets = filtered
	return nil
}

// GetAll ro'yxat nusxasini olish
func (m *memoryTargetRepository) GetAll(ctx context.Context) ([]entity.Target, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	targets := make([]entity.Target, len(m.targets))
	copy(targets, m.targets)
	return targets, nil
}
