package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yourusername/belle-tracker/config"
	"github.com/yourusername/belle-tracker/internal/delivery/telegram"
	"github.com/yourusername/belle-tracker/internal/domain/repository"
	"github.com/yourusername/belle-tracker/internal/infrastructure/api"
	"github.com/yourusername/belle-tracker/internal/infrastructure/excel"
	"github.com/yourusername/belle-tracker/internal/infrastructure/storage"
	"github.com/yourusername/belle-tracker/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Transport standart sozlamalari bilan (timeout qo'shilmaydi)
	client := api.NewClient(cfg.APIBaseURL, nil)
	log.Printf("Backend targets endpoint: %s", client.Paths().GetTargets)

	actionRepo, err := newActionRepository(cfg.ActionDBPath)
	if err != nil {
		log.Fatalf("Failed to open action log: %v", err)
	}
	if closer, ok := actionRepo.(io.Closer); ok {
		defer closer.Close()
	}

	targetUseCase := usecase.NewTargetUseCase(
		client,
		storage.NewMemoryTargetRepository(),
		actionRepo,
		excel.NewTargetSheet(),
	)
	productUseCase := usecase.NewProductUseCase(client)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := targetUseCase.Refresh(ctx); err != nil {
		log.Printf("Initial refresh failed: %v", err)
	}

	handler, err := telegram.NewBotHandler(
		cfg.TelegramToken,
		cfg.AllowedChatID,
		cfg.HistoryLimit,
		client.Paths().Logout,
		targetUseCase,
		productUseCase,
	)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := handler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Bot stopped with error: %v", err)
	}
}

func newActionRepository(path string) (repository.ActionRepository, error) {
	if path == config.MemoryActionLog {
		log.Println("Using in-memory action log")
		return storage.NewMemoryActionRepository(), nil
	}
	return storage.NewSQLiteActionRepository(path)
}
