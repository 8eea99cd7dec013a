package validator

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/validate/pkg/interpolate"
	"github.com/dmitrymomot/validate/pkg/logger"
)

// Validator is the schema registry and executor. It is owned by a single
// goroutine; see the package documentation.
type Validator struct {
	constraints map[string]Constraint
	data        *DataSet
	errors      Errors
	fields      map[string]string
	messages    map[string]string
	rules       map[string]*ruleSet

	cfg    Config
	render Renderer
	logger *slog.Logger
}

// New creates a Validator holding a copy of data, which may be nil.
func New(data *DataSet, opts ...Option) *Validator {
	v := &Validator{
		constraints: make(map[string]Constraint),
		errors:      make(Errors),
		fields:      make(map[string]string),
		messages:    make(map[string]string),
		rules:       make(map[string]*ruleSet),
		cfg:         DefaultConfig(),
		render:      interpolate.Render,
		logger:      logger.Discard(),
	}
	v.SetData(data)

	for _, opt := range opts {
		opt(v)
	}

	v.logger = v.logger.With(logger.Component("validator"))
	return v
}

// AddConstraint registers fn under name, replacing any previous constraint.
func (v *Validator) AddConstraint(name string, fn Constraint) *Validator {
	v.constraints[name] = fn
	return v
}

// AddConstraintsFrom merges the provider's constraints into the registry.
// A nil provider is ignored.
func (v *Validator) AddConstraintsFrom(p ConstraintProvider) *Validator {
	if p == nil {
		return v
	}
	provided := p.Constraints()
	for _, name := range slices.Sorted(maps.Keys(provided)) {
		v.constraints[name] = provided[name]
	}
	return v
}

// AddError records message for field, replacing any earlier message.
func (v *Validator) AddError(field, message string) *Validator {
	v.errors[field] = message
	return v
}

// AddField registers a field with its title and attaches rules in order.
// Messages set on rules are ignored; rules added this way use the default
// message of their rule name.
func (v *Validator) AddField(key, title string, rules ...Rule) *Validator {
	v.fields[key] = title

	for _, r := range rules {
		// cannot fail: the field was registered above
		_ = v.AddRule(key, r.Name, "", r.Options...)
	}

	return v
}

// AddMessages merges default message templates keyed by rule name.
func (v *Validator) AddMessages(messages map[string]string) *Validator {
	maps.Copy(v.messages, messages)
	return v
}

// AddRule attaches a rule to a registered field, replacing a rule of the same
// name on that field in place.
//
// The first rule registered for a name establishes that name's default
// message, even when message is empty. Later rules without a message inherit
// the default; rules with a message keep it and leave the default alone.
func (v *Validator) AddRule(field, name, message string, options ...any) error {
	if _, ok := v.fields[field]; !ok {
		v.logger.Warn("rule attached to unknown field", logger.Field(field), logger.Rule(name))
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	if def, ok := v.messages[name]; ok {
		if message == "" {
			message = def
		}
	} else {
		v.messages[name] = message
	}

	set, ok := v.rules[field]
	if !ok {
		set = newRuleSet()
		v.rules[field] = set
	}

	set.put(Rule{
		Name:    name,
		Message: message,
		Options: slices.Clone(options),
	})

	return nil
}

// Constraints returns a copy of the constraint table.
func (v *Validator) Constraints() map[string]Constraint {
	return maps.Clone(v.constraints)
}

// Data returns a copy of the current data set.
func (v *Validator) Data() *DataSet {
	return v.data.Clone()
}

// Errors returns a copy of the collected errors.
func (v *Validator) Errors() Errors {
	return maps.Clone(v.errors)
}

// Fields returns field titles keyed by field.
func (v *Validator) Fields() map[string]string {
	return maps.Clone(v.fields)
}

// Title returns the title of field.
func (v *Validator) Title(field string) (string, bool) {
	title, ok := v.fields[field]
	return title, ok
}

// Messages returns the default message templates keyed by rule name.
func (v *Validator) Messages() map[string]string {
	return maps.Clone(v.messages)
}

// Rules returns every field's rules in registration order.
func (v *Validator) Rules() map[string][]Rule {
	out := make(map[string][]Rule, len(v.rules))
	for field, set := range v.rules {
		out[field] = set.list()
	}
	return out
}

// FieldRules returns the rules of field in registration order.
func (v *Validator) FieldRules(field string) []Rule {
	set, ok := v.rules[field]
	if !ok {
		return nil
	}
	return set.list()
}

// Reset clears the data set and the errors. The schema is kept.
func (v *Validator) Reset() *Validator {
	v.data = &DataSet{}
	clear(v.errors)
	return v
}

// SetData replaces the data set with a copy of data.
func (v *Validator) SetData(data *DataSet) *Validator {
	v.data = data.Clone()
	return v
}
