package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/belle-tracker/internal/infrastructure/api"
	"github.com/yourusername/belle-tracker/internal/usecase"
)

const maxUploadSize = 5 * 1024 * 1024

// BotHandler Telegram bot handler
type BotHandler struct {
	bot            *tgbotapi.BotAPI
	allowedChatID  int64
	historyLimit   int
	logoutURL      string
	targetUseCase  usecase.TargetUseCase
	productUseCase usecase.ProductUseCase
	httpClient     *http.Client
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	allowedChatID int64,
	historyLimit int,
	logoutURL string,
	targetUseCase usecase.TargetUseCase,
	productUseCase usecase.ProductUseCase,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &BotHandler{
		bot:            bot,
		allowedChatID:  allowedChatID,
		historyLimit:   historyLimit,
		logoutURL:      logoutURL,
		targetUseCase:  targetUseCase,
		productUseCase: productUseCase,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Start botni ishga tushirish.
// Har bir xabar alohida goroutine da ishlanadi, tartib kafolatlanmaydi.
func (h *BotHandler) Start(ctx context.Context) error {
	log.Printf("Bot @%s started", h.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			log.Println("Bot stopping...")
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.isAllowed(chatID) {
		h.sendMessage(chatID, "⛔ This bot is private.")
		return
	}

	ctx = usecase.WithChatID(ctx, chatID)

	if message.Document != nil {
		h.handleDocumentMessage(ctx, message)
		return
	}

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	// Oddiy matn: URL yoki kod bo'lsa mahsulotni ko'rsatamiz
	if _, err := h.productUseCase.ResolveCode(message.Text); err == nil {
		h.handleProductLookup(ctx, chatID, message.Text)
		return
	}

	h.sendMessage(chatID, "Unknown input. /help for usage.")
}

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	switch message.Command() {
	case "start", "help":
		h.sendMessageMarkdown(chatID, helpMessage)
	case "targets":
		h.handleTargetsCommand(ctx, chatID)
	case "product":
		if args == "" {
			h.sendMessage(chatID, "Usage: /product <url|code>")
			return
		}
		h.handleProductLookup(ctx, chatID, args)
	case "track":
		h.handleTrackCommand(ctx, chatID, args)
	case "delete":
		h.handleDeleteCommand(ctx, chatID, args)
	case "export":
		h.handleExportCommand(ctx, chatID)
	case "history":
		h.handleHistoryCommand(ctx, chatID)
	case "logout":
		h.sendMessage(chatID, "🚪 Logout: "+h.logoutURL)
	default:
		h.sendMessage(chatID, "Unknown command. /help for usage.")
	}
}

// /targets - ro'yxatni yangilab ko'rsatish
func (h *BotHandler) handleTargetsCommand(ctx context.Context, chatID int64) {
	if err := h.targetUseCase.Refresh(ctx); err != nil {
		log.Printf("Refresh error: %v", err)
		h.sendMessage(chatID, "❌ Failed to load targets: "+err.Error())
		return
	}

	targets, err := h.targetUseCase.List(ctx)
	if err != nil {
		log.Printf("List error: %v", err)
		h.sendMessage(chatID, "❌ Failed to read targets.")
		return
	}

	h.sendMessage(chatID, formatTargets(targets))
}

// handleProductLookup mahsulot va variantlarini ko'rsatish
func (h *BotHandler) handleProductLookup(ctx context.Context, chatID int64, input string) {
	view, err := h.productUseCase.Lookup(ctx, input)
	if err != nil {
		if !errors.Is(err, usecase.ErrUnrecognizedProduct) {
			log.Printf("Product lookup error: %v", err)
		}
		h.sendMessage(chatID, describeError(err))
		return
	}

	h.sendMessage(chatID, formatProduct(view))
}

// /track <url|code> <colour> <size> <price>
func (h *BotHandler) handleTrackCommand(ctx context.Context, chatID int64, args string) {
	input, colour, size, price, err := parseTrackArgs(args)
	if err != nil {
		h.sendMessage(chatID, "❌ "+err.Error()+"\nUsage: /track <url|code> <colour> <size> <price>\nUse | to separate values with spaces.")
		return
	}

	code, err := h.productUseCase.ResolveCode(input)
	if err != nil {
		h.sendMessage(chatID, describeError(err))
		return
	}

	if err := h.targetUseCase.Add(ctx, code, colour, size, price); err != nil {
		log.Printf("Add target error: %v", err)
		h.sendMessage(chatID, describeError(err))
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("✅ Tracking %s %s/%s at ¥%d", code, colour, size, price))
}

// /delete <id>
func (h *BotHandler) handleDeleteCommand(ctx context.Context, chatID int64, args string) {
	id, err := parseTargetID(args)
	if err != nil {
		h.sendMessage(chatID, "❌ "+err.Error()+"\nUsage: /delete <id>")
		return
	}

	if err := h.targetUseCase.Delete(ctx, id); err != nil {
		log.Printf("Delete target error: %v", err)
		h.sendMessage(chatID, describeError(err))
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("🗑 Target #%d deleted", id))
}

// /export - lokal ro'yxatni xlsx qilib yuborish
func (h *BotHandler) handleExportCommand(ctx context.Context, chatID int64) {
	data, err := h.targetUseCase.Export(ctx)
	if err != nil {
		log.Printf("Export error: %v", err)
		h.sendMessage(chatID, "❌ Export failed.")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("targets-%s.xlsx", time.Now().Format("20060102-150405")),
		Bytes: data,
	})
	if _, err := h.bot.Send(doc); err != nil {
		log.Printf("Failed to send export: %v", err)
	}
}

// /history
func (h *BotHandler) handleHistoryCommand(ctx context.Context, chatID int64) {
	actions, err := h.targetUseCase.History(ctx, h.historyLimit)
	if err != nil {
		log.Printf("History error: %v", err)
		h.sendMessage(chatID, "❌ Failed to read history.")
		return
	}
	h.sendMessage(chatID, formatHistory(actions))
}

// handleDocumentMessage Excel fayl yuborilganda targetlarni import qilish
func (h *BotHandler) handleDocumentMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	doc := message.Document

	// Fayl hajmini tekshirish (5MB)
	if doc.FileSize > maxUploadSize {
		h.sendMessage(chatID, "❌ File must not exceed 5MB.")
		return
	}

	if !strings.HasSuffix(strings.ToLower(doc.FileName), ".xlsx") {
		h.sendMessage(chatID, "❌ Only .xlsx files are accepted.")
		return
	}

	h.sendMessage(chatID, "⏳ Importing targets...")

	data, err := h.downloadFile(ctx, doc.FileID)
	if err != nil {
		log.Printf("File download error: %v", err)
		h.sendMessage(chatID, "❌ Failed to download the file.")
		return
	}

	count, err := h.targetUseCase.Import(ctx, data)
	if err != nil {
		log.Printf("Import error: %v", err)
		h.sendMessage(chatID, fmt.Sprintf("⚠️ Imported %d targets, then stopped: %v", count, err))
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("✅ Imported %d targets from %s\n/targets to see the list", count, doc.FileName))
}

// downloadFile Telegram dan faylni yuklash
func (h *BotHandler) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := h.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(h.bot.Token), nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram file download returned %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxUploadSize+1))
}

func (h *BotHandler) isAllowed(chatID int64) bool {
	return h.allowedChatID == 0 || h.allowedChatID == chatID
}

func (h *BotHandler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *BotHandler) sendMessageMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

// describeError foydalanuvchiga ko'rsatiladigan xatolik matni
func describeError(err error) string {
	var pe *api.ProductError
	switch {
	case errors.Is(err, usecase.ErrUnrecognizedProduct):
		return "❌ Not a bellemaison product URL or 7-character code."
	case errors.As(err, &pe):
		return "❌ " + pe.Message
	case api.IsNotFound(err):
		return "❌ Not found."
	default:
		return "❌ Request failed: " + err.Error()
	}
}

const helpMessage = `🛍 *Price tracker commands:*

/targets - Refresh and list tracked products
/product <url|code> - Show product colours and sizes
/track <url|code> <colour> <size> <price> - Track a variant
/delete <id> - Stop tracking a target
/export - Download targets as Excel
/history - Recent actions
/logout - Dashboard logout link

Send an .xlsx file (product, colour, size, price) to import targets.
Sending a product URL shows its variants.`
