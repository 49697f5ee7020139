package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	TodoTextMinLen = 3
	TodoTextMaxLen = 100
)

// Todo is a single owned item on a user's list. The owning username is fixed
// at creation time; only the owner may edit or delete the item afterwards.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateTodoText checks the text payload bounds before any store access.
func ValidateTodoText(text string) error {
	if text == "" {
		return fmt.Errorf("%w: todo text is required", ErrValidation)
	}
	if n := utf8.RuneCountInString(text); n < TodoTextMinLen || n > TodoTextMaxLen {
		return fmt.Errorf("%w: todo text length should be %d to %d", ErrValidation, TodoTextMinLen, TodoTextMaxLen)
	}
	return nil
}
