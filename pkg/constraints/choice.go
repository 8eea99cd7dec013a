package constraints

import "slices"

// In passes when the value, as a string, equals one of the options.
// Slice options are expanded.
func In(value any, options ...any) bool {
	s, ok := toString(value)
	return ok && slices.Contains(flatten(options), s)
}

// NotIn passes when the value equals none of the options.
func NotIn(value any, options ...any) bool {
	s, ok := toString(value)
	return ok && !slices.Contains(flatten(options), s)
}
