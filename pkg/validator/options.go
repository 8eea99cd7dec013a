package validator

import (
	"log/slog"
	"maps"
)

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger. If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithConfig sets shorthand separators and logging behaviour.
func WithConfig(cfg Config) Option {
	return func(v *Validator) {
		v.cfg = cfg.withDefaults()
	}
}

// WithRenderer replaces the template renderer used by FormatMessage.
func WithRenderer(r Renderer) Option {
	return func(v *Validator) {
		if r != nil {
			v.render = r
		}
	}
}

// WithConstraints registers the provider's constraints. Providers that also
// implement MessageProvider contribute their default messages.
func WithConstraints(p ConstraintProvider) Option {
	return func(v *Validator) {
		if p == nil {
			return
		}
		v.AddConstraintsFrom(p)
		if mp, ok := p.(MessageProvider); ok {
			maps.Copy(v.messages, mp.Messages())
		}
	}
}

// WithMessages registers default message templates.
func WithMessages(messages map[string]string) Option {
	return func(v *Validator) {
		v.AddMessages(messages)
	}
}
