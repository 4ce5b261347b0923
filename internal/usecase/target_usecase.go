package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/belle-tracker/internal/domain/entity"
	"github.com/yourusername/belle-tracker/internal/domain/repository"
)

// TargetUseCase kuzatilayotgan mahsulotlar ro'yxati.
// Parallel chaqiruvlar tartiblanmaydi va birlashtirilmaydi: oxirgi yozuv yutadi.
type TargetUseCase interface {
	// Refresh backenddan ro'yxatni qayta olish
	Refresh(ctx context.Context) error

	// Add yangi target qo'shib, keyin ro'yxatni yangilash
	Add(ctx context.Context, productCode, colour, size string, price uint) error

	// Delete targetni o'chirish
	Delete(ctx context.Context, id uint) error

	// List lokal ro'yxat
	List(ctx context.Context) ([]entity.Target, error)

	// Export lokal ro'yxatni Excel ga
	Export(ctx context.Context) ([]byte, error)

	// Import Excel fayldan targetlar qo'shish
	Import(ctx context.Context, data []byte) (int, error)

	// History oxirgi harakatlar
	History(ctx context.Context, limit int) ([]entity.Action, error)
}

type targetUseCase struct {
	api        repository.TargetAPI
	targetRepo repository.TargetRepository
	actionRepo repository.ActionRepository
	sheet      repository.TargetSheet
}

// NewTargetUseCase yangi TargetUseCase yaratish
func NewTargetUseCase(
	api repository.TargetAPI,
	targetRepo repository.TargetRepository,
	actionRepo repository.ActionRepository,
	sheet repository.TargetSheet,
) TargetUseCase {
	return &targetUseCase{
		api:        api,
		targetRepo: targetRepo,
		actionRepo: actionRepo,
		sheet:      sheet,
	}
}

// Refresh ro'yxatni to'liq almashtirish. Xatolikda ro'yxat o'zgarmaydi.
func (u *targetUseCase) Refresh(ctx context.Context) error {
	n, err := u.reload(ctx)
	if err != nil {
		return err
	}

	u.logAction(ctx, entity.ActionRefresh, fmt.Sprintf("%d targets", n))
	return nil
}

// reload jurnalga yozmaydi; Add va Import o'z harakatini yozadi
func (u *targetUseCase) reload(ctx context.Context) (int, error) {
	targets, err := u.api.ListTargets(ctx)
	if err != nil {
		return 0, err
	}

	if err := u.targetRepo.Replace(ctx, targets); err != nil {
		return 0, fmt.Errorf("failed to store targets: %w", err)
	}
	return len(targets), nil
}

// Add backend ID beradi, shuning uchun lokal qo'shish o'rniga Refresh chaqiriladi
func (u *targetUseCase) Add(ctx context.Context, productCode, colour, size string, price uint) error {
	req := entity.TargetRequest{
		ProductCode: productCode,
		Colour:      colour,
		Size:        size,
		Price:       price,
	}
	if err := u.api.AddTarget(ctx, req); err != nil {
		return err
	}

	u.logAction(ctx, entity.ActionAdd, fmt.Sprintf("%s %s/%s <= %d", productCode, colour, size, price))

	if _, err := u.reload(ctx); err != nil {
		return fmt.Errorf("target added but refresh failed: %w", err)
	}
	return nil
}

// Delete muvaffaqiyatli bo'lsa lokal ro'yxatdan ham o'chiradi
func (u *targetUseCase) Delete(ctx context.Context, id uint) error {
	if err := u.api.DeleteTarget(ctx, id); err != nil {
		return err
	}

	if err := u.targetRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to remove target locally: %w", err)
	}

	u.logAction(ctx, entity.ActionDelete, fmt.Sprintf("id=%d", id))
	return nil
}

// List lokal ro'yxat nusxasi
func (u *targetUseCase) List(ctx context.Context) ([]entity.Target, error) {
	return u.targetRepo.GetAll(ctx)
}

// Export lokal ro'yxatni xlsx ga
func (u *targetUseCase) Export(ctx context.Context) ([]byte, error) {
	targets, err := u.targetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.sheet.Export(ctx, targets)
}

// Import har bir qatorni tartib bilan qo'shadi, birinchi xatolikda to'xtaydi.
// Oxirida bitta Refresh bajariladi.
func (u *targetUseCase) Import(ctx context.Context, data []byte) (int, error) {
	requests, err := u.sheet.Import(ctx, data)
	if err != nil {
		return 0, fmt.Errorf("failed to read sheet: %w", err)
	}

	added := 0
	var addErr error
	for _, req := range requests {
		if err := u.api.AddTarget(ctx, req); err != nil {
			addErr = fmt.Errorf("failed to add %s %s/%s: %w", req.ProductCode, req.Colour, req.Size, err)
			break
		}
		added++
	}

	if added > 0 {
		u.logAction(ctx, entity.ActionImport, fmt.Sprintf("%d of %d rows", added, len(requests)))
		if _, err := u.reload(ctx); err != nil && addErr == nil {
			addErr = fmt.Errorf("targets added but refresh failed: %w", err)
		}
	}

	return added, addErr
}

// History oxirgi harakatlar
func (u *targetUseCase) History(ctx context.Context, limit int) ([]entity.Action, error) {
	return u.actionRepo.GetActions(ctx, limit)
}

// logAction jurnal xatoligi operatsiya natijasini o'zgartirmaydi
func (u *targetUseCase) logAction(ctx context.Context, kind entity.ActionKind, details string) {
	action := entity.Action{
		ID:        uuid.New().String(),
		Kind:      kind,
		ChatID:    ChatIDFrom(ctx),
		Details:   details,
		Timestamp: time.Now(),
	}
	if err := u.actionRepo.LogAction(ctx, action); err != nil {
		log.Printf("Failed to log %s action: %v", kind, err)
	}
}
