package validator

import (
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// Schema maps field keys to field descriptors. A descriptor is one of:
//
//   - a rules string ("required|min:3") or Rules
//   - a list of rule strings ([]string, RuleList or []any of strings)
//   - a FieldSpec, or a map[string]any or map[string]string with optional
//     "title" and "rules" keys
//
// Descriptors of any other shape are skipped.
type Schema map[string]any

// Rules is a rule-separated list of shorthand rules, e.g. "required|email".
type Rules string

// RuleList is an ordered list of shorthand rules.
type RuleList []string

// FieldSpec is the canonical field descriptor. An empty Title defaults to the
// field key. Rules holds a rules string or a list of rule strings; any other
// value registers the field without rules.
type FieldSpec struct {
	Title string
	Rules any
}

// Normalize lowers a descriptor to a FieldSpec. It reports false for shapes
// that do not describe a field.
func Normalize(descriptor any) (FieldSpec, bool) {
	switch d := descriptor.(type) {
	case string, Rules, []string, RuleList, []any:
		return FieldSpec{Rules: d}, true
	case FieldSpec:
		return d, true
	case *FieldSpec:
		if d == nil {
			return FieldSpec{}, false
		}
		return *d, true
	case map[string]any:
		spec := FieldSpec{Rules: d["rules"]}
		if title, ok := d["title"]; ok {
			spec.Title = cast.ToString(title)
		}
		return spec, true
	case map[string]string:
		spec := FieldSpec{Title: d["title"]}
		if rules, ok := d["rules"]; ok {
			spec.Rules = rules
		}
		return spec, true
	}
	return FieldSpec{}, false
}

var defaultCompiler = NewCompiler(DefaultConfig())

// SplitShorthand parses a shorthand rule using the default separators:
//
//	required                        -> {required, "", []}
//	minLength:5                     -> {minLength, "", [5]}
//	between:1,10:Value out of range -> {between, "Value out of range", [1 10]}
//
// Only the first two colons split, so the message may contain colons.
// Options are returned as strings.
func SplitShorthand(text string) Rule {
	return defaultCompiler.Split(text)
}

// Compile creates a Validator with New(data, opts...) and populates it from schema.
func Compile(data *DataSet, schema Schema, opts ...Option) (*Validator, error) {
	v := New(data, opts...)
	if err := CompileInto(v, schema); err != nil {
		return nil, err
	}
	return v, nil
}

// CompileInto populates an existing Validator from schema using the
// validator's configured separators.
func CompileInto(v *Validator, schema Schema) error {
	return NewCompiler(v.cfg).Compile(v, schema)
}

// Compiler parses shorthand rules with configurable separators.
type Compiler struct {
	cfg Config
}

// NewCompiler returns a Compiler. Empty separators in cfg fall back to the defaults.
func NewCompiler(cfg Config) *Compiler {
	return &Compiler{cfg: cfg.withDefaults()}
}

// Split parses one shorthand rule. See SplitShorthand.
func (c *Compiler) Split(text string) Rule {
	var rule Rule

	if !strings.Contains(text, c.cfg.PartSeparator) {
		rule.Name = text
		return rule
	}

	for i, part := range strings.SplitN(text, c.cfg.PartSeparator, 3) {
		switch i {
		case 0:
			rule.Name = part
		case 1:
			if strings.Contains(part, c.cfg.OptionSeparator) {
				for _, opt := range strings.Split(part, c.cfg.OptionSeparator) {
					rule.Options = append(rule.Options, opt)
				}
			} else if part != "" {
				rule.Options = []any{part}
			}
		case 2:
			rule.Message = part
		}
	}

	return rule
}

// Compile registers every field of schema on v, in sorted key order, and
// attaches its parsed rules in the order they are written.
func (c *Compiler) Compile(v *Validator, schema Schema) error {
	for _, key := range slices.Sorted(maps.Keys(schema)) {
		spec, ok := Normalize(schema[key])
		if !ok {
			continue
		}

		title := spec.Title
		if title == "" {
			title = key
		}

		v.AddField(key, title)

		for _, text := range c.ruleStrings(spec.Rules) {
			rule := c.Split(text)
			if err := v.AddRule(key, rule.Name, rule.Message, rule.Options...); err != nil {
				return err
			}
		}
	}

	return nil
}

// ruleStrings lowers the rules of a FieldSpec to a list of rule strings.
// Empty entries are kept and register a rule named "", which fails with
// ErrUnknownConstraint on Validate.
func (c *Compiler) ruleStrings(rules any) []string {
	var list []string

	switch r := rules.(type) {
	case string:
		list = strings.Split(r, c.cfg.RuleSeparator)
	case Rules:
		list = strings.Split(string(r), c.cfg.RuleSeparator)
	case []string:
		list = r
	case RuleList:
		list = r
	case []any:
		for _, item := range r {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
	default:
		return nil
	}

	return slices.Clone(list)
}
