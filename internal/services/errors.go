package services

import (
	"errors"
	"fmt"
)

// Error kinds the HTTP layer maps to status codes.
var (
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrNoContent    = errors.New("no content")
)

// ValidationError rejects a single input field.
type ValidationError struct {
	Field   string
	Message string
}

func (err *ValidationError) Error() string {
	if err.Field == "" {
		return err.Message
	}
	return fmt.Sprintf("%s: %s", err.Field, err.Message)
}

func newValidationError(field string, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// kindError carries a client-facing message and unwraps to its kind sentinel.
type kindError struct {
	kind    error
	message string
}

func (err *kindError) Error() string {
	return err.message
}

func (err *kindError) Unwrap() error {
	return err.kind
}

func newKindError(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

var (
	ErrUserExists              = newKindError(ErrConflict, "user already exists")
	ErrInvalidCredentials      = newKindError(ErrUnauthorized, "invalid credentials")
	ErrUserNotFound            = newKindError(ErrUnauthorized, "user not found")
	ErrEntryExists             = newKindError(ErrConflict, "entry already exists for this date")
	ErrEntryNotFound           = newKindError(ErrNotFound, "entry not found")
	ErrMoodExists              = newKindError(ErrConflict, "mood entry already exists for this date")
	ErrMoodNotFound            = newKindError(ErrNotFound, "mood entry not found")
	ErrNoAffirmations          = newKindError(ErrNoContent, "no affirmations available")
	ErrDailyAffirmationMissing = newKindError(ErrNotFound, "no affirmation found for today")
	ErrAffirmationCompleted    = newKindError(ErrConflict, "affirmation already completed today")
)
