package constraints

import (
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// toString converts scalar values to a string. Nil, slices, maps and other
// composite values are rejected.
func toString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// toFloat converts numbers and numeric strings to float64.
func toFloat(v any) (float64, bool) {
	switch v.(type) {
	case nil, bool:
		return 0, false
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
		if v == "" {
			return 0, false
		}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// lengthOf returns the rune count of strings and the element count of
// slices, arrays and maps.
func lengthOf(v any) (int, bool) {
	switch v.(type) {
	case nil, bool:
		return 0, false
	}
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// flatten expands slice options into their elements as strings.
func flatten(options []any) []string {
	out := make([]string, 0, len(options))
	for _, opt := range options {
		switch o := opt.(type) {
		case []string:
			out = append(out, o...)
			continue
		case string:
			out = append(out, o)
			continue
		}

		rv := reflect.ValueOf(opt)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				if s, ok := toString(rv.Index(i).Interface()); ok {
					out = append(out, s)
				}
			}
			continue
		}

		if s, ok := toString(opt); ok {
			out = append(out, s)
		}
	}
	return out
}

var dateLayouts = []string{time.DateOnly, time.RFC3339, time.DateTime}

// toTime accepts time.Time values and strings in any of dateLayouts.
func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	}

	s, ok := toString(v)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// option returns options[i] or nil.
func option(options []any, i int) any {
	if i < len(options) {
		return options[i]
	}
	return nil
}
