package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrTodoNotFound = errors.New("todo not found")

// FieldViolation describes one failing field. MessageID is a translation key.
type FieldViolation struct {
	Field     string
	MessageID string
	Value     any
}

type ValidationError struct {
	Violations []FieldViolation
}

func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.MessageID))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
