package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ProductError backend 404/500 javobidagi {error} xabari
type ProductError struct {
	StatusCode int
	Message    string
}

// Error backend xabarini o'zgarishsiz qaytaradi
func (e *ProductError) Error() string {
	return e.Message
}

const maxErrorBody = 200

// StatusError kutilmagan HTTP status
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if runes := []rune(body); len(runes) > maxErrorBody {
		body = string(runes[:maxErrorBody]) + "..."
	}
	if body == "" {
		return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("unexpected status %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), body)
}

// IsNotFound xatolik 404 ekanligini tekshirish
func IsNotFound(err error) bool {
	var pe *ProductError
	if errors.As(err, &pe) {
		return pe.StatusCode == http.StatusNotFound
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusNotFound
	}
	return false
}
