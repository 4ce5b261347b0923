package repository

import (
	"context"

	"github.com/yourusername/belle-tracker/internal/domain/entity"
)

// ActionRepository harakatlar jurnali
type ActionRepository interface {
	// LogAction harakatni yozish
	LogAction(ctx context.Context, action entity.Action) error

	// GetActions oxirgi harakatlar (yangidan eskiga), limit <= 0 bo'lsa hammasi
	GetActions(ctx context.Context, limit int) ([]entity.Action, error)
}
