package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// MemoryActionLog ACTION_DB_PATH shu qiymatda bo'lsa jurnal xotirada saqlanadi
const MemoryActionLog = "memory"

// Config ilovaning konfiguratsiyasi
type Config struct {
	APIBaseURL    string
	TelegramToken string
	AllowedChatID int64
	ActionDBPath  string
	HistoryLimit  int
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ActionDBPath:  "data/actions.db",
		HistoryLimit:  20, // Default qiymat
	}

	if dbPath := os.Getenv("ACTION_DB_PATH"); dbPath != "" {
		config.ActionDBPath = dbPath
	}

	if rawChatID := os.Getenv("ALLOWED_CHAT_ID"); rawChatID != "" {
		parsed, err := strconv.ParseInt(rawChatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ALLOWED_CHAT_ID has invalid format: %v", err)
		}
		config.AllowedChatID = parsed
	}

	if rawLimit := os.Getenv("HISTORY_LIMIT"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("HISTORY_LIMIT must be a positive integer, got %q", rawLimit)
		}
		config.HistoryLimit = parsed
	}

	// Validatsiya
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is empty")
	}

	return config, nil
}
