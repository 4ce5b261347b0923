package repository

import (
	"context"

	"github.com/yourusername/belle-tracker/internal/domain/entity"
)

// TargetAPI backenddagi target endpointlari
type TargetAPI interface {
	// ListTargets barcha targetlarni olish
	ListTargets(ctx context.Context) ([]entity.Target, error)

	// AddTarget yangi target yaratish
	AddTarget(ctx context.Context, req entity.TargetRequest) error

	// DeleteTarget targetni o'chirish
	DeleteTarget(ctx context.Context, id uint) error
}

// TargetRepository targetlar ro'yxatining lokal nusxasi
type TargetRepository interface {
	// Replace butun ro'yxatni almashtirish
	Replace(ctx context.Context, targets []entity.Target) error

	// Remove ID bo'yicha o'chirish (yo'q bo'lsa hech narsa qilmaydi)
	Remove(ctx context.Context, id uint) error

	// GetAll ro'yxat nusxasini olish
	GetAll(ctx context.Context) ([]entity.Target, error)
}
