package constraints

import "math"

// Numeric passes for numbers and numeric strings.
func Numeric(value any, _ ...any) bool {
	f, ok := toFloat(value)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Integer passes for whole numbers and strings holding whole numbers.
func Integer(value any, _ ...any) bool {
	_, ok := toInt(value)
	return ok
}

// Min: value >= options[0].
func Min(value any, options ...any) bool {
	v, ok := toFloat(value)
	limit, lok := toFloat(option(options, 0))
	return ok && lok && v >= limit
}

// Max: value <= options[0].
func Max(value any, options ...any) bool {
	v, ok := toFloat(value)
	limit, lok := toFloat(option(options, 0))
	return ok && lok && v <= limit
}

// Between: options[0] <= value <= options[1].
func Between(value any, options ...any) bool {
	v, ok := toFloat(value)
	lo, lok := toFloat(option(options, 0))
	hi, hok := toFloat(option(options, 1))
	return ok && lok && hok && v >= lo && v <= hi
}
