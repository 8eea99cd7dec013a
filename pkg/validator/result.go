package validator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Errors maps a field key to the rendered message of its last failing rule.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := e.Fields()
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (e Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Get(field string) string {
	return e[field]
}

// Fields returns the failing field keys in sorted order.
func (e Errors) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// ExtractErrors extracts Errors from an error chain.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verrs Errors
	return errors.As(err, &verrs)
}
