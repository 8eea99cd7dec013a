package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a data set field key under the key "field".
func Field(key string) slog.Attr {
	return slog.String("field", key)
}

// Rule records a rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// FieldErrors records a field-to-message mapping as a group under the key "validation_errors".
// An empty mapping yields an empty Attr.
func FieldErrors(errs map[string]string) slog.Attr {
	if len(errs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(errs))
	for field, msg := range errs {
		as = append(as, slog.String(field, msg))
	}
	return slog.Attr{Key: "validation_errors", Value: slog.GroupValue(as...)}
}
