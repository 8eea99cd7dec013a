package messages

import (
	"context"
	"fmt"
	"strings"
)

// Parser turns catalogue content into rule-name to template mappings.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]string, error)

	// SupportsFileExtension reports whether the parser handles ext, with or
	// without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(getFileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// ParseFile parses content using the parser selected by filename.
func ParseFile(ctx context.Context, filename, content string) (map[string]string, error) {
	p := NewParserForFile(filename)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	return p.Parse(ctx, content)
}

func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}

// toCatalogue converts decoded content to a catalogue. Every value must be a string.
func toCatalogue(data map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(data))
	for rule, val := range data {
		msg, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%w: rule %q has %T", ErrInvalidMessage, rule, val)
		}
		out[rule] = msg
	}
	return out, nil
}
