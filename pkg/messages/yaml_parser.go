package messages

import (
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements Parser for YAML catalogues.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	return toCatalogue(data)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
