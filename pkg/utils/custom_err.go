package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPlaceNotFound      = errors.New("place not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrEmptySearchTerm    = errors.New("search term cannot be empty")
	ErrNoEmbedding        = errors.New("place not found or has no embedding")
	ErrDatabaseError      = errors.New("database error")
)

// FieldError is a single validation violation on a named request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the ordered list of violations a validator produced.
// It satisfies error so controllers can route it through the same error
// handling path as service failures.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
