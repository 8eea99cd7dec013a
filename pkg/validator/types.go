package validator

import "slices"

// Constraint reports whether value satisfies a rule. Options are the rule's
// options in order, as given to AddRule or parsed from shorthand (strings).
type Constraint func(value any, options ...any) bool

// ConstraintProvider exposes a set of named constraints for bulk registration.
type ConstraintProvider interface {
	Constraints() map[string]Constraint
}

// MessageProvider exposes default message templates keyed by rule name.
// Passing a value that implements both interfaces to WithConstraints also
// registers its messages.
type MessageProvider interface {
	Messages() map[string]string
}

// Rule is a single rule definition attached to a field.
type Rule struct {
	Name    string
	Message string
	Options []any
}

// Use builds a message-less rule for AddField.
func Use(name string, options ...any) Rule {
	return Rule{Name: name, Options: options}
}

func (r Rule) clone() Rule {
	r.Options = slices.Clone(r.Options)
	return r
}

// Renderer substitutes tokens into a message template.
type Renderer func(tmpl string, tokens map[string]string) string

// ruleSet keeps a field's rules in registration order.
type ruleSet struct {
	order []string
	defs  map[string]Rule
}

func newRuleSet() *ruleSet {
	return &ruleSet{defs: make(map[string]Rule)}
}

// put stores r, replacing a rule of the same name in place.
func (s *ruleSet) put(r Rule) {
	if _, ok := s.defs[r.Name]; !ok {
		s.order = append(s.order, r.Name)
	}
	s.defs[r.Name] = r
}

func (s *ruleSet) list() []Rule {
	out := make([]Rule, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.defs[name].clone())
	}
	return out
}
