package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Sentinel errors handlers map onto the HTTP taxonomy.
var (
	// ErrNotFound: unknown id on update/delete/lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate: a record for the same normalized email already exists.
	ErrDuplicate = errors.New("duplicate")
)

// ValidationError carries a user-facing message for a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// emailPattern accepts the plain local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail lowercases and trims an email for storage and dedup checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(NormalizeEmail(email))
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newItemID generates a content item id. The millisecond prefix keeps ids
// roughly time-ordered; the nanoid suffix keeps two creates in the same
// millisecond from colliding.
func newItemID() string {
	suffix, err := gonanoid.Generate(idAlphabet, 4)
	if err != nil {
		suffix = "0000"
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
