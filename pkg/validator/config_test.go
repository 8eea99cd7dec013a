package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate/pkg/config"
	"github.com/dmitrymomot/validate/pkg/validator"
)

func TestDefaultConfig(t *testing.T) {
	cfg := validator.DefaultConfig()
	assert.Equal(t, "|", cfg.RuleSeparator)
	assert.Equal(t, ":", cfg.PartSeparator)
	assert.Equal(t, ",", cfg.OptionSeparator)
	assert.False(t, cfg.LogFailures)
}

func TestLoadConfig(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		cfg, err := validator.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, validator.DefaultConfig(), cfg)
	})

	t.Run("reads environment", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("VALIDATOR_RULE_SEPARATOR", ";")
		t.Setenv("VALIDATOR_OPTION_SEPARATOR", "/")
		t.Setenv("VALIDATOR_LOG_FAILURES", "true")

		cfg, err := validator.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, ";", cfg.RuleSeparator)
		assert.Equal(t, ":", cfg.PartSeparator)
		assert.Equal(t, "/", cfg.OptionSeparator)
		assert.True(t, cfg.LogFailures)

		c := validator.NewCompiler(cfg)
		assert.Equal(t, validator.Rule{Name: "between", Options: []any{"1", "5"}}, c.Split("between:1/5"))
	})

	t.Run("loads env files", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		// registers restore of the variables the files overwrite
		t.Setenv("VALIDATOR_RULE_SEPARATOR", "|")
		t.Setenv("VALIDATOR_PART_SEPARATOR", ":")
		t.Setenv("VALIDATOR_LOG_FAILURES", "false")

		cfg, err := validator.LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "|", cfg.RuleSeparator)

		cfg, err = validator.LoadConfig("testdata/validator.env", "testdata/override.env")
		require.NoError(t, err)
		assert.Equal(t, "/", cfg.RuleSeparator, "later files win and the cached value is replaced")
		assert.Equal(t, "=", cfg.PartSeparator)
		assert.True(t, cfg.LogFailures)
	})

	t.Run("fails on missing env file", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		_, err := validator.LoadConfig("testdata/missing.env")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("VALIDATOR_LOG_FAILURES", "sometimes")

		_, err := validator.LoadConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestWithConfig_FillsEmptySeparators(t *testing.T) {
	v, err := validator.Compile(
		validator.NewDataSet("tags", "a"),
		validator.Schema{"tags": "in:a/b"},
		validator.WithConfig(validator.Config{OptionSeparator: "/"}),
		validator.WithConstraints(stubProvider{"in": alwaysTrue}),
	)
	require.NoError(t, err)
	assert.Equal(t, []validator.Rule{{Name: "in", Options: []any{"a", "b"}}}, v.FieldRules("tags"))
}
