package constraints

import (
	"reflect"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Required fails for nil, blank strings, nil pointers and empty slices,
// arrays and maps.
func Required(value any, _ ...any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// MinLength: length >= options[0].
func MinLength(value any, options ...any) bool {
	n, ok := lengthOf(value)
	limit, lok := toInt(option(options, 0))
	return ok && lok && n >= limit
}

// MaxLength: length <= options[0].
func MaxLength(value any, options ...any) bool {
	n, ok := lengthOf(value)
	limit, lok := toInt(option(options, 0))
	return ok && lok && n <= limit
}

// Length: length == options[0].
func Length(value any, options ...any) bool {
	n, ok := lengthOf(value)
	exact, lok := toInt(option(options, 0))
	return ok && lok && n == exact
}

// BetweenLength: options[0] <= length <= options[1].
func BetweenLength(value any, options ...any) bool {
	n, ok := lengthOf(value)
	lo, lok := toInt(option(options, 0))
	hi, hok := toInt(option(options, 1))
	return ok && lok && hok && n >= lo && n <= hi
}

var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
)

// Lowercase passes for non-empty strings that are unchanged by Unicode lower-casing.
func Lowercase(value any, _ ...any) bool {
	s, ok := value.(string)
	return ok && s != "" && lowerCaser.String(s) == s
}

// Uppercase passes for non-empty strings that are unchanged by Unicode upper-casing.
func Uppercase(value any, _ ...any) bool {
	s, ok := value.(string)
	return ok && s != "" && upperCaser.String(s) == s
}
