package constraints

import (
	"strings"
	"time"
)

// Date passes for time values and date strings. options[0] may hold a Go
// time layout that string values must follow.
func Date(value any, options ...any) bool {
	layout, ok := toString(option(options, 0))
	if !ok || layout == "" {
		_, ok := toTime(value)
		return ok
	}

	if _, isTime := value.(time.Time); isTime {
		_, ok := toTime(value)
		return ok
	}

	s, ok := value.(string)
	if !ok {
		return false
	}
	_, err := time.Parse(layout, strings.TrimSpace(s))
	return err == nil
}

// DateAfter: value is strictly after the date in options[0].
func DateAfter(value any, options ...any) bool {
	t, ok := toTime(value)
	after, aok := toTime(option(options, 0))
	return ok && aok && t.After(after)
}

// DateBefore: value is strictly before the date in options[0].
func DateBefore(value any, options ...any) bool {
	t, ok := toTime(value)
	before, bok := toTime(option(options, 0))
	return ok && bok && t.Before(before)
}
