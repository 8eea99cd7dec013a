// Package validator implements a schema-driven validation engine: callers
// register named fields, attach named rules to each field, supply a data set
// and receive one human-readable error message per failing field.
//
// The engine is made of four parts that build on each other:
//
//   - Validator is the schema registry. It holds fields, rules, constraint
//     callbacks, default message templates, the current data set and errors.
//   - SplitShorthand parses compact rule strings such as
//     "between:1,10:Value out of range" into Rule values. Compile drives a
//     Validator from a declarative Schema.
//   - FormatMessage renders {field}, {title} and positional {0} tokens into
//     the rule's message template.
//   - Validate runs every rule of every field present in the data set.
//
// # Usage
//
//	v := validator.New(nil,
//	    validator.WithConstraints(constraints.New()),
//	    validator.WithMessages(map[string]string{
//	        "min": "{title} must be at least {0}",
//	    }),
//	)
//	v.AddField("age", "Age", validator.Use("min", 18))
//
//	ok, err := v.Validate(validator.NewDataSet("age", 15))
//	// ok == false, err == nil
//	// v.Errors() == validator.Errors{"age": "Age must be at least 18"}
//
// The same schema expressed in shorthand:
//
//	v, err := validator.Compile(nil, validator.Schema{
//	    "age":   "required|min:18",
//	    "email": validator.FieldSpec{Title: "E-mail", Rules: "required|email"},
//	}, validator.WithConstraints(constraints.New()))
//
// # Error Handling
//
// Failed rules are the expected outcome of validating real data and are only
// reported through Errors. Configuration mistakes abort the call and are
// returned as errors that wrap ErrUnknownField, ErrUnknownConstraint or
// ErrMissingMessage, so they can be detected with errors.Is.
//
// Validate reports false without touching Errors when there is nothing to
// validate. Check turns that case into ErrNoData, so callers can tell
// "nothing to check" apart from "checked and failed".
//
// Only the last failing rule of a field is kept, and fields that are absent
// from the data set are never checked, even when they carry a "required"
// rule. Presence must be expressed by supplying the key with a nil value.
//
// # Logging
//
// WithLogger sets the logger. Failed rules are logged at debug level, or info
// with Config.LogFailures. ValidateContext and CheckContext log with the
// caller's context, so attributes stored with logger.ContextWithAttrs show up
// on every record:
//
//	ctx = logger.ContextWithAttrs(ctx, slog.String("request_id", id))
//	err := v.CheckContext(ctx, validator.DataSetFromMap(form))
//
// # Concurrency
//
// A Validator is not safe for concurrent use. Guard it with a mutex or build
// one per goroutine; Reset lets one compiled schema validate a stream of data
// sets sequentially.
package validator
