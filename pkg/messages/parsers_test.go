package messages_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate/pkg/messages"
)

func TestYAMLParser_Parse(t *testing.T) {
	p := messages.NewYAMLParser()

	t.Run("parses flat catalogue", func(t *testing.T) {
		got, err := p.Parse(context.Background(), `
required: "{title} is required"
min: "{title} must be at least {0}"
`)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"required": "{title} is required",
			"min":      "{title} must be at least {0}",
		}, got)
	})

	t.Run("empty content yields empty catalogue", func(t *testing.T) {
		got, err := p.Parse(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rejects non-string templates", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "min:\n  nested: value\n")
		assert.ErrorIs(t, err, messages.ErrInvalidMessage)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "min: [unclosed")
		assert.ErrorIs(t, err, messages.ErrFailedToParseYAML)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, "min: x")
		assert.ErrorIs(t, err, messages.ErrYAMLParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestJSONParser_Parse(t *testing.T) {
	p := messages.NewJSONParser()

	t.Run("parses flat catalogue", func(t *testing.T) {
		got, err := p.Parse(context.Background(), `{"email": "{title} must be a valid email address"}`)
		require.NoError(t, err)
		assert.Equal(t, "{title} must be a valid email address", got["email"])
	})

	t.Run("rejects non-string templates", func(t *testing.T) {
		_, err := p.Parse(context.Background(), `{"min": 5}`)
		assert.ErrorIs(t, err, messages.ErrInvalidMessage)
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		_, err := p.Parse(context.Background(), `{"min":`)
		assert.ErrorIs(t, err, messages.ErrFailedToParseJSON)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, `{}`)
		assert.ErrorIs(t, err, messages.ErrJSONParsingCancelled)
	})
}

func TestNewParserForFile(t *testing.T) {
	assert.IsType(t, &messages.YAMLParser{}, messages.NewParserForFile("messages.yaml"))
	assert.IsType(t, &messages.YAMLParser{}, messages.NewParserForFile("messages.YML"))
	assert.IsType(t, &messages.JSONParser{}, messages.NewParserForFile("messages.json"))
	assert.Nil(t, messages.NewParserForFile("messages.toml"))
	assert.Nil(t, messages.NewParserForFile("messages"))
}

func TestParseFile(t *testing.T) {
	got, err := messages.ParseFile(context.Background(), "en.json", `{"required": "{title} is required"}`)
	require.NoError(t, err)
	assert.Equal(t, "{title} is required", got["required"])

	_, err = messages.ParseFile(context.Background(), "en.ini", "required = x")
	assert.ErrorIs(t, err, messages.ErrUnsupportedFormat)
}

func TestSupportsFileExtension(t *testing.T) {
	assert.True(t, messages.NewYAMLParser().SupportsFileExtension(".yml"))
	assert.True(t, messages.NewYAMLParser().SupportsFileExtension("YAML"))
	assert.False(t, messages.NewYAMLParser().SupportsFileExtension("json"))
	assert.True(t, messages.NewJSONParser().SupportsFileExtension(".json"))
	assert.False(t, messages.NewJSONParser().SupportsFileExtension("yaml"))
}
