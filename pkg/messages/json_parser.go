package messages

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser implements Parser for JSON catalogues.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	return toCatalogue(data)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
