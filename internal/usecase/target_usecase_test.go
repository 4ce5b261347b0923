package usecase

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/yourusername/belle-tracker/internal/domain/entity"
	"github.com/yourusername/belle-tracker/internal/infrastructure/storage"
)

// fakeBackend targetlarni xotirada saqlaydigan soxta backend
type fakeBackend struct {
	mu        sync.Mutex
	targets   []entity.Target
	nextID    uint
	added     []entity.TargetRequest
	deleted   []uint
	listErr   error
	addErr    error
	deleteErr error
	failAddAt int // 1 dan boshlab; 0 bo'lsa hech qachon
}

func (b *fakeBackend) ListTargets(ctx context.Context) ([]entity.Target, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.listErr != nil {
		return nil, b.listErr
	}
	out := make([]entity.Target, len(b.targets))
	copy(out, b.targets)
	return out, nil
}

func (b *fakeBackend) AddTarget(ctx context.Context, req entity.TargetRequest) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.addErr != nil {
		return b.addErr
	}
	if b.failAddAt > 0 && len(b.added)+1 == b.failAddAt {
		return errors.New("backend rejected row")
	}
	b.nextID++
	b.added = append(b.added, req)
	b.targets = append([]entity.Target{{
		ID:          b.nextID,
		ProductCode: req.ProductCode,
		Colour:      req.Colour,
		Size:        req.Size,
		TargetPrice: req.Price,
	}}, b.targets...)
	return nil
}

func (b *fakeBackend) DeleteTarget(ctx context.Context, id uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.deleteErr != nil {
		return b.deleteErr
	}
	b.deleted = append(b.deleted, id)
	return nil
}

type fakeSheet struct {
	requests []entity.TargetRequest
	err      error
	exported []entity.Target
}

func (s *fakeSheet) Export(ctx context.Context, targets []entity.Target) ([]byte, error) {
	s.exported = targets
	return []byte("xlsx"), nil
}

func (s *fakeSheet) Import(ctx context.Context, data []byte) ([]entity.TargetRequest, error) {
	return s.requests, s.err
}

func newTestTargetUseCase(backend *fakeBackend, sheet *fakeSheet) TargetUseCase {
	if sheet == nil {
		sheet = &fakeSheet{}
	}
	return NewTargetUseCase(backend, storage.NewMemoryTargetRepository(), storage.NewMemoryActionRepository(), sheet)
}

func ids(targets []entity.Target) []uint {
	out := []uint{}
	for _, t := range targets {
		out = append(out, t.ID)
	}
	return out
}

func TestRefresh_ReplacesList(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{targets: []entity.Target{{ID: 1}, {ID: 2}}}
	u := newTestTargetUseCase(backend, nil)

	list, _ := u.List(ctx)
	if len(list) != 0 {
		t.Fatalf("list should start empty, got %+v", list)
	}

	if err := u.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	list, _ = u.List(ctx)
	if !reflect.DeepEqual(ids(list), []uint{1, 2}) {
		t.Errorf("got %v, wanted [1 2]", ids(list))
	}

	backend.targets = []entity.Target{{ID: 3}}
	u.Refresh(ctx)
	list, _ = u.List(ctx)
	if !reflect.DeepEqual(ids(list), []uint{3}) {
		t.Errorf("got %v, wanted [3]", ids(list))
	}
}

func TestRefresh_FailureLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{targets: []entity.Target{{ID: 1}}}
	u := newTestTargetUseCase(backend, nil)
	u.Refresh(ctx)

	listErr := errors.New("network down")
	backend.listErr = listErr
	if err := u.Refresh(ctx); err != listErr {
		t.Errorf("got %v, wanted %v", err, listErr)
	}
	list, _ := u.List(ctx)
	if !reflect.DeepEqual(ids(list), []uint{1}) {
		t.Errorf("list changed after failed refresh: %v", ids(list))
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{targets: []entity.Target{{ID: 1}, {ID: 2}}}
	u := newTestTargetUseCase(backend, nil)
	u.Refresh(ctx)

	if err := u.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	list, _ := u.List(ctx)
	if !reflect.DeepEqual(ids(list), []uint{2}) {
		t.Errorf("got %v, wanted [2]", ids(list))
	}

	if err := u.Delete(ctx, 99); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}
	list, _ = u.List(ctx)
	if !reflect.DeepEqual(ids(list), []uint{2}) {
		t.Errorf("deleting absent id changed list: %v", ids(list))
	}
	if !reflect.DeepEqual(backend.deleted, []uint{1, 99}) {
		t.Errorf("backend saw deletes %v", backend.deleted)
	}
}

func TestDelete_FailureIsNotOptimistic(t *testing.T) {
	ctx := context.Background()
	deleteErr := errors.New("boom")
	backend := &fakeBackend{targets: []entity.Target{{ID: 1}, {ID: 2}}}
	u := newTestTargetUseCase(backend, nil)
	u.Refresh(ctx)

	backend.deleteErr = deleteErr
	if err := u.Delete(ctx, 1); err != deleteErr {
		t.Errorf("got %v, wanted %v", err, deleteErr)
	}
	list, _ := u.List(ctx)
	if !reflect.DeepEqual(ids(list), []uint{1, 2}) {
		t.Errorf("list changed after failed delete: %v", ids(list))
	}
}

func TestAdd_RefreshesFromBackend(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{targets: []entity.Target{{ID: 10}}, nextID: 10}
	u := newTestTargetUseCase(backend, nil)

	if err := u.Add(ctx, "1234567", "Red", "M", 1500); err != nil {
		t.Fatalf("Add: %v", err)
	}

	want := entity.TargetRequest{ProductCode: "1234567", Colour: "Red", Size: "M", Price: 1500}
	if len(backend.added) != 1 || backend.added[0] != want {
		t.Errorf("backend got %+v, wanted %+v", backend.added, want)
	}

	list, _ := u.List(ctx)
	if !reflect.DeepEqual(ids(list), []uint{11, 10}) {
		t.Errorf("got %v, wanted backend state [11 10]", ids(list))
	}
}

func TestAdd_LogsSingleAction(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{nextID: 1}
	u := newTestTargetUseCase(backend, nil)

	if err := u.Add(ctx, "1234567", "Red", "M", 1500); err != nil {
		t.Fatalf("Add: %v", err)
	}

	history, _ := u.History(ctx, 0)
	if len(history) != 1 || history[0].Kind != entity.ActionAdd {
		t.Errorf("got %+v, wanted a single add action", history)
	}
}

func TestAdd_Failure(t *testing.T) {
	ctx := context.Background()
	addErr := errors.New("invalid parameters")
	backend := &fakeBackend{addErr: addErr}
	u := newTestTargetUseCase(backend, nil)

	if err := u.Add(ctx, "1234567", "Red", "M", 1500); err != addErr {
		t.Errorf("got %v, wanted %v", err, addErr)
	}
	history, _ := u.History(ctx, 0)
	if len(history) != 0 {
		t.Errorf("failed add should not be logged: %+v", history)
	}
}

func TestAdd_RefreshFailure(t *testing.T) {
	ctx := context.Background()
	listErr := errors.New("list failed")
	backend := &fakeBackend{listErr: listErr}
	u := newTestTargetUseCase(backend, nil)

	err := u.Add(ctx, "1234567", "Red", "M", 1500)
	if !errors.Is(err, listErr) {
		t.Errorf("got %v, wanted wrapped %v", err, listErr)
	}
}

func TestHistory_RecordsChatID(t *testing.T) {
	ctx := WithChatID(context.Background(), 42)
	backend := &fakeBackend{targets: []entity.Target{{ID: 1}}}
	u := newTestTargetUseCase(backend, nil)

	u.Refresh(ctx)
	u.Delete(ctx, 1)

	history, err := u.History(ctx, 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("got %d actions, wanted 2", len(history))
	}
	if history[0].Kind != entity.ActionDelete || history[1].Kind != entity.ActionRefresh {
		t.Errorf("unexpected order: %+v", history)
	}
	if history[0].ChatID != 42 || history[0].ID == "" {
		t.Errorf("unexpected action: %+v", history[0])
	}
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	sheet := &fakeSheet{requests: []entity.TargetRequest{
		{ProductCode: "1111111", Colour: "Red", Size: "S", Price: 100},
		{ProductCode: "2222222", Colour: "Blue", Size: "M", Price: 200},
	}}
	backend := &fakeBackend{}
	u := newTestTargetUseCase(backend, sheet)

	n, err := u.Import(ctx, []byte("xlsx"))
	if err != nil || n != 2 {
		t.Fatalf("got %d, %v; wanted 2, nil", n, err)
	}
	list, _ := u.List(ctx)
	if !reflect.DeepEqual(ids(list), []uint{2, 1}) {
		t.Errorf("got %v, wanted [2 1]", ids(list))
	}
}

func TestImport_StopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	sheet := &fakeSheet{requests: []entity.TargetRequest{
		{ProductCode: "1111111"}, {ProductCode: "2222222"}, {ProductCode: "3333333"},
	}}
	backend := &fakeBackend{failAddAt: 2}
	u := newTestTargetUseCase(backend, sheet)

	n, err := u.Import(ctx, nil)
	if err == nil || n != 1 {
		t.Fatalf("got %d, %v; wanted 1 and an error", n, err)
	}
	list, _ := u.List(ctx)
	if len(list) != 1 {
		t.Errorf("list should reflect the one added row, got %+v", list)
	}
}

func TestImport_SheetError(t *testing.T) {
	sheetErr := errors.New("excel file is empty")
	u := newTestTargetUseCase(&fakeBackend{}, &fakeSheet{err: sheetErr})

	if _, err := u.Import(context.Background(), nil); !errors.Is(err, sheetErr) {
		t.Errorf("got %v, wanted wrapped %v", err, sheetErr)
	}
}

func TestExport_UsesLocalList(t *testing.T) {
	ctx := context.Background()
	sheet := &fakeSheet{}
	u := newTestTargetUseCase(&fakeBackend{targets: []entity.Target{{ID: 5}}}, sheet)
	u.Refresh(ctx)

	data, err := u.Export(ctx)
	if err != nil || string(data) != "xlsx" {
		t.Fatalf("got %q, %v", data, err)
	}
	if !reflect.DeepEqual(ids(sheet.exported), []uint{5}) {
		t.Errorf("exported %v, wanted [5]", ids(sheet.exported))
	}
}

func TestConcurrentOperations(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{targets: []entity.Target{{ID: 1}, {ID: 2}, {ID: 3}}}
	u := newTestTargetUseCase(backend, nil)
	u.Refresh(ctx)

	wg := sync.WaitGroup{}
	for i := 1; i <= 3; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			u.Delete(ctx, id)
		}(uint(i))
	}
	wg.Wait()

	list, _ := u.List(ctx)
	if len(list) != 0 {
		t.Errorf("got %v, wanted all deleted", ids(list))
	}
}
