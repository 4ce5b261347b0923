package entity

import "time"

// ActionKind foydalanuvchi harakati turi
type ActionKind string

const (
	ActionRefresh ActionKind = "refresh"
	ActionAdd     ActionKind = "add"
	ActionDelete  ActionKind = "delete"
	ActionImport  ActionKind = "import"
)

// Action target ro'yxati ustida bajarilgan harakat
type Action struct {
	ID        string
	Kind      ActionKind
	ChatID    int64 // 0 bo'lsa bot orqali emas
	Details   string
	Timestamp time.Time
}
