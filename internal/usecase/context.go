package usecase

import "context"

type chatIDKey struct{}

// WithChatID harakatni boshlagan chat ID sini kontekstga qo'shish
func WithChatID(ctx context.Context, chatID int64) context.Context {
	return context.WithValue(ctx, chatIDKey{}, chatID)
}

// ChatIDFrom kontekstdagi chat ID (yo'q bo'lsa 0)
func ChatIDFrom(ctx context.Context) int64 {
	id, _ := ctx.Value(chatIDKey{}).(int64)
	return id
}
