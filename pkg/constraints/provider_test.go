package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate/pkg/constraints"
	"github.com/dmitrymomot/validate/pkg/validator"
)

func TestProvider(t *testing.T) {
	t.Run("every constraint has a default message", func(t *testing.T) {
		p := constraints.New()
		msgs := p.Messages()
		for name := range p.Constraints() {
			assert.NotEmpty(t, msgs[name], "missing message for %s", name)
		}
	})

	t.Run("returns copies", func(t *testing.T) {
		p := constraints.New()
		delete(p.Constraints(), "required")
		p.Messages()["required"] = "changed"

		assert.Contains(t, p.Constraints(), "required")
		assert.Equal(t, "{title} is required", p.Messages()["required"])
	})

	t.Run("registers custom constraints", func(t *testing.T) {
		even := func(v any, _ ...any) bool {
			n, ok := v.(int)
			return ok && n%2 == 0
		}
		p := constraints.New().
			With("even", even, "{title} must be even").
			WithMessages(map[string]string{"required": "{title} cannot be blank"})

		require.Contains(t, p.Constraints(), "even")
		assert.Equal(t, "{title} must be even", p.Messages()["even"])
		assert.Equal(t, "{title} cannot be blank", p.Messages()["required"])
	})

	t.Run("default messages are independent copies", func(t *testing.T) {
		msgs := constraints.DefaultMessages()
		msgs["min"] = "changed"
		assert.Equal(t, "{title} must be at least {0}", constraints.DefaultMessages()["min"])
	})
}

func TestProvider_WithValidator(t *testing.T) {
	v, err := validator.Compile(nil, validator.Schema{
		"username": validator.FieldSpec{Title: "Username", Rules: "required|alphaNumeric|betweenLength:3,16"},
		"email":    "required|email",
		"age":      validator.FieldSpec{Title: "Age", Rules: "integer|min:18"},
		"role":     validator.FieldSpec{Title: "Role", Rules: "in:admin,editor,viewer"},
	}, validator.WithConstraints(constraints.New()))
	require.NoError(t, err)

	t.Run("accepts valid data", func(t *testing.T) {
		v.Reset()
		ok, err := v.Validate(validator.NewDataSet(
			"username", "john42",
			"email", "john@example.com",
			"age", 30,
			"role", "editor",
		))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, v.Errors())
	})

	t.Run("renders default messages", func(t *testing.T) {
		v.Reset()
		ok, err := v.Validate(validator.NewDataSet(
			"username", "jo",
			"email", "not-an-email",
			"age", "17",
			"role", "owner",
		))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, validator.Errors{
			"username": "Username must be between 3 and 16 characters long",
			"email":    "email must be a valid email address",
			"age":      "Age must be at least 18",
			"role":     "Role must be one of: admin",
		}, v.Errors())
	})
}
