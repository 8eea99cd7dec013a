package constraints

import (
	"context"
	_ "embed"
	"maps"
	"sync"

	"github.com/dmitrymomot/validate/pkg/messages"
	"github.com/dmitrymomot/validate/pkg/validator"
)

//go:embed messages.yaml
var defaultCatalogue string

var (
	defaultMessages     map[string]string
	defaultMessagesOnce sync.Once
)

// DefaultMessages returns the built-in English message templates.
func DefaultMessages() map[string]string {
	defaultMessagesOnce.Do(func() {
		msgs, err := messages.NewYAMLParser().Parse(context.Background(), defaultCatalogue)
		if err != nil {
			panic("constraints: invalid embedded message catalogue: " + err.Error())
		}
		defaultMessages = msgs
	})
	return maps.Clone(defaultMessages)
}

// Provider exposes the package constraints under their rule names.
type Provider struct {
	constraints map[string]validator.Constraint
	messages    map[string]string
}

// New returns a Provider with every built-in constraint and default message.
func New() *Provider {
	return &Provider{
		constraints: map[string]validator.Constraint{
			"required":      Required,
			"minLength":     MinLength,
			"maxLength":     MaxLength,
			"length":        Length,
			"betweenLength": BetweenLength,
			"lowercase":     Lowercase,
			"uppercase":     Uppercase,
			"numeric":       Numeric,
			"integer":       Integer,
			"min":           Min,
			"max":           Max,
			"between":       Between,
			"email":         Email,
			"url":           URL,
			"phone":         Phone,
			"alpha":         Alpha,
			"alphaNumeric":  AlphaNumeric,
			"uuid":          UUID,
			"in":            In,
			"notIn":         NotIn,
			"regex":         Regex,
			"notRegex":      NotRegex,
			"date":          Date,
			"dateAfter":     DateAfter,
			"dateBefore":    DateBefore,
		},
		messages: DefaultMessages(),
	}
}

// With registers an additional constraint, or replaces a built-in one, along
// with its default message. An empty message keeps the current one.
func (p *Provider) With(name string, fn validator.Constraint, message string) *Provider {
	p.constraints[name] = fn
	if message != "" {
		p.messages[name] = message
	}
	return p
}

// WithMessages overrides default messages, e.g. with a translated catalogue.
func (p *Provider) WithMessages(msgs map[string]string) *Provider {
	maps.Copy(p.messages, msgs)
	return p
}

// Constraints returns a copy of the constraint table.
func (p *Provider) Constraints() map[string]validator.Constraint {
	return maps.Clone(p.constraints)
}

// Messages returns a copy of the default message templates.
func (p *Provider) Messages() map[string]string {
	return maps.Clone(p.messages)
}
