package validator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/validate/pkg/logger"
)

// Validate checks the data set against the registered rules and reports
// whether no errors were collected.
//
// A non-empty data replaces the current data set; otherwise the current data
// set is used. If both are empty, Validate returns false without checking any
// rule and without recording errors.
//
// Fields are checked in data set order and rules in registration order.
// Fields without rules are skipped, and fields absent from the data set are
// never checked. A failing rule records its formatted message under the field
// key, overwriting earlier messages for that field. Errors from earlier calls
// are kept until Reset.
//
// The returned error is non-nil only for configuration mistakes: a rule whose
// constraint is not registered (ErrUnknownConstraint) or a failed rule without
// any message (ErrMissingMessage). Either aborts the call.
func (v *Validator) Validate(data *DataSet) (bool, error) {
	return v.ValidateContext(context.Background(), data)
}

// ValidateContext works like Validate and logs with ctx, so attributes stored
// with logger.ContextWithAttrs (a request ID, a form name) appear on every
// record of the call.
func (v *Validator) ValidateContext(ctx context.Context, data *DataSet) (bool, error) {
	if data.Len() > 0 {
		v.SetData(data)
	} else if v.data.Len() == 0 {
		v.logger.DebugContext(ctx, "nothing to validate")
		return false, nil
	}

	for field, value := range v.data.All() {
		set, ok := v.rules[field]
		if !ok {
			continue
		}

		for _, name := range set.order {
			rule := set.defs[name]

			constraint := v.constraints[name]
			if constraint == nil {
				v.logger.WarnContext(ctx, "missing validation constraint", logger.Field(field), logger.Rule(name))
				return false, fmt.Errorf("%w: %s", ErrUnknownConstraint, name)
			}

			// the value is always the first argument
			if constraint(value, rule.Options...) {
				continue
			}

			message, err := v.formatMessage(ctx, field, rule)
			if err != nil {
				return false, err
			}

			v.logFailure(ctx, field, name)
			v.AddError(field, message)
		}
	}

	return len(v.errors) == 0, nil
}

// Check runs Validate and folds its outcome into a single error: nil when the
// data passed, Errors when rules failed, ErrNoData when there was nothing to
// validate, or the configuration error.
func (v *Validator) Check(data *DataSet) error {
	return v.CheckContext(context.Background(), data)
}

// CheckContext works like Check and logs with ctx.
func (v *Validator) CheckContext(ctx context.Context, data *DataSet) error {
	if data.Len() == 0 && v.data.Len() == 0 {
		return ErrNoData
	}

	ok, err := v.ValidateContext(ctx, data)
	if err != nil {
		v.logger.ErrorContext(ctx, "validation aborted", logger.Error(err))
		return err
	}
	if !ok {
		v.logger.DebugContext(ctx, "validation failed", logger.FieldErrors(v.errors))
		return v.Errors()
	}

	return nil
}

func (v *Validator) logFailure(ctx context.Context, field, rule string) {
	level := slog.LevelDebug
	if v.cfg.LogFailures {
		level = slog.LevelInfo
	}
	v.logger.Log(ctx, level, "validation rule failed", logger.Field(field), logger.Rule(rule))
}
