package interpolate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validate/pkg/interpolate"
)

func TestRender(t *testing.T) {
	t.Run("replaces named tokens", func(t *testing.T) {
		got := interpolate.Render("{title} ({field}) is invalid", map[string]string{
			"field": "email",
			"title": "Email",
		})
		assert.Equal(t, "Email (email) is invalid", got)
	})

	t.Run("replaces positional tokens", func(t *testing.T) {
		got := interpolate.Render("must be between {0} and {1}", map[string]string{
			"0": "1",
			"1": "10",
		})
		assert.Equal(t, "must be between 1 and 10", got)
	})

	t.Run("keeps unknown tokens", func(t *testing.T) {
		got := interpolate.Render("{title} must be at least {0}", map[string]string{"title": "Age"})
		assert.Equal(t, "Age must be at least {0}", got)
	})

	t.Run("replaces repeated tokens", func(t *testing.T) {
		got := interpolate.Render("{0}-{0}", map[string]string{"0": "x"})
		assert.Equal(t, "x-x", got)
	})

	t.Run("returns template unchanged without tokens", func(t *testing.T) {
		assert.Equal(t, "plain text", interpolate.Render("plain text", map[string]string{"a": "b"}))
		assert.Equal(t, "{a}", interpolate.Render("{a}", nil))
	})

	t.Run("ignores empty braces", func(t *testing.T) {
		assert.Equal(t, "{} stays", interpolate.Render("{} stays", map[string]string{"": "x"}))
	})

	t.Run("does not re-expand substituted values", func(t *testing.T) {
		got := interpolate.Render("{a}", map[string]string{"a": "{b}", "b": "nope"})
		assert.Equal(t, "{b}", got)
	})
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"title", "0", "1"}, interpolate.Tokens("{title} {0} {1} {0}"))
	assert.Nil(t, interpolate.Tokens("no tokens here"))
}
