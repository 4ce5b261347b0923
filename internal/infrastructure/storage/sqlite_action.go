package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/yourusername/belle-tracker/internal/domain/entity"
	"github.com/yourusername/belle-tracker/internal/domain/repository"
)

type sqliteActionRepository struct {
	db *sql.DB
}

// NewSQLiteActionRepository SQLite asosidagi harakatlar jurnali
func NewSQLiteActionRepository(dbPath string) (repository.ActionRepository, error) {
	if dbPath == "" {
		return nil, errors.New("db path must not be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	if err := createActionSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteActionRepository{db: db}, nil
}

func createActionSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS actions (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	chat_id INTEGER NOT NULL,
	details TEXT,
	ts TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_actions_ts ON actions (ts);
`
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// LogAction harakatni saqlash
func (s *sqliteActionRepository) LogAction(ctx context.Context, action entity.Action) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO actions (id, kind, chat_id, details, ts) VALUES (?, ?, ?, ?, ?)`,
		action.ID, string(action.Kind), action.ChatID, action.Details, action.Timestamp)
	return err
}

// GetActions oxirgi harakatlarni olish (yangidan eskiga)
func (s *sqliteActionRepository) GetActions(ctx context.Context, limit int) ([]entity.Action, error) {
	query := `SELECT id, kind, chat_id, details, ts FROM actions ORDER BY ts DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []entity.Action
	for rows.Next() {
		var action entity.Action
		var kind string
		var details sql.NullString
		var ts time.Time
		if err := rows.Scan(&action.ID, &kind, &action.ChatID, &details, &ts); err != nil {
			return nil, err
		}
		action.Kind = entity.ActionKind(kind)
		action.Details = details.String
		action.Timestamp = ts
		actions = append(actions, action)
	}
	return actions, rows.Err()
}

// Close ulanishni yopish
func (s *sqliteActionRepository) Close() error {
	return s.db.Close()
}
