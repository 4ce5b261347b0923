package repository

import (
	"context"

	"github.com/yourusername/belle-tracker/internal/domain/entity"
)

// TargetSheet targetlarni Excel ga eksport/import qilish
type TargetSheet interface {
	// Export targetlar ro'yxatini xlsx ga yozish
	Export(ctx context.Context, targets []entity.Target) ([]byte, error)

	// Import xlsx dan yangi target so'rovlarini o'qish
	Import(ctx context.Context, data []byte) ([]entity.TargetRequest, error)
}
