package validator

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/validate/pkg/logger"
)

// FormatMessage renders the error message of a failed rule.
//
// The template is the rule's own message or, when empty, the default message
// of the rule name. Tokens available to the template are {field}, {title} and
// one positional token per option ({0}, {1}, ...). Options that are slices or
// arrays are joined with ", ".
func (v *Validator) FormatMessage(field string, rule Rule) (string, error) {
	return v.formatMessage(context.Background(), field, rule)
}

func (v *Validator) formatMessage(ctx context.Context, field string, rule Rule) (string, error) {
	message := rule.Message
	if message == "" {
		message = v.messages[rule.Name]
	}

	if message == "" {
		v.logger.WarnContext(ctx, "missing error message", logger.Field(field), logger.Rule(rule.Name))
		return "", fmt.Errorf("%w: %s", ErrMissingMessage, rule.Name)
	}

	tokens := make(map[string]string, len(rule.Options)+2)
	tokens["field"] = field
	tokens["title"] = v.fields[field]
	for i, opt := range rule.Options {
		tokens[strconv.Itoa(i)] = formatOption(opt)
	}

	return v.render(message, tokens), nil
}

func formatOption(opt any) string {
	switch o := opt.(type) {
	case string:
		return o
	case []string:
		return strings.Join(o, ", ")
	case []byte:
		return string(o)
	}

	rv := reflect.ValueOf(opt)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = formatOption(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	}

	if s, err := cast.ToStringE(opt); err == nil {
		return s
	}
	return fmt.Sprint(opt)
}
