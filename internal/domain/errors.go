package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds the data services surface. Callers decide what to do with
// them; nothing is retried internally.
var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate id")
)

// ValidationError reports which fields of a create/update payload were
// missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

// Invalid builds a ValidationError, or nil when every field passed.
func Invalid(fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
