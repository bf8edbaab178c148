package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// ValidationError maps field names to the reason they were rejected.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(e.Details(), "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Details returns "field: reason" entries sorted by field name.
func (e *ValidationError) Details() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	details := make([]string, 0, len(names))
	for _, name := range names {
		details = append(details, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return details
}
