// Package constraints provides a ready-made set of named validation
// constraints together with their default English message templates.
//
// Provider satisfies validator.ConstraintProvider and
// validator.MessageProvider, so a single option wires both:
//
//	v := validator.New(nil, validator.WithConstraints(constraints.New()))
//	v.AddField("age", "Age", validator.Use("min", 18))
//
// Every constraint has the signature func(value any, options ...any) bool.
// Options usually arrive as strings parsed from shorthand ("min:18"), so
// numeric options and values are coerced with github.com/spf13/cast. Values
// or options that cannot be coerced make the constraint fail; constraints
// never panic.
//
// # Available constraints
//
// Presence and length: required, minLength, maxLength, length, betweenLength.
// Length counts runes for strings and elements for slices, arrays and maps.
//
// Numbers: numeric, integer, min, max, between.
//
// Formats: email, url, phone, alpha, alphaNumeric, uuid, lowercase, uppercase.
//
// Choices and patterns: in, notIn, regex, notRegex.
//
// Dates: date, dateAfter, dateBefore. Dates are time.Time values or strings
// in "2006-01-02" or RFC 3339 form; date accepts an optional Go layout option.
//
// The default messages live in messages.yaml and use {title} and positional
// tokens, e.g. "{title} must be between {0} and {1}".
package constraints
