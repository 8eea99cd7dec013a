package validator

import "errors"

var (
	// ErrValidationFailed is matched by Errors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownField is returned when a rule references a field that has not been added.
	ErrUnknownField = errors.New("field does not exist")

	// ErrUnknownConstraint is returned by Validate when a rule has no registered constraint.
	ErrUnknownConstraint = errors.New("validation constraint does not exist")

	// ErrMissingMessage is returned when neither the rule nor the defaults provide a message.
	ErrMissingMessage = errors.New("error message for rule does not exist")

	// ErrNoData is returned by Check when neither the call nor the validator carries data.
	ErrNoData = errors.New("no data to validate")
)
