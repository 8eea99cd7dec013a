package validator

import "github.com/dmitrymomot/validate/pkg/config"

// Default shorthand separators.
const (
	DefaultRuleSeparator   = "|"
	DefaultPartSeparator   = ":"
	DefaultOptionSeparator = ","
)

// Config tunes shorthand parsing and failure logging.
type Config struct {
	// RuleSeparator splits a rules string into rule strings: "required|email".
	RuleSeparator string `env:"VALIDATOR_RULE_SEPARATOR" envDefault:"|"`
	// PartSeparator splits a rule string into name, options and message: "min:3:Too short".
	PartSeparator string `env:"VALIDATOR_PART_SEPARATOR" envDefault:":"`
	// OptionSeparator splits the options part: "between:1,10".
	OptionSeparator string `env:"VALIDATOR_OPTION_SEPARATOR" envDefault:","`
	// LogFailures logs failed rules at info level instead of debug.
	LogFailures bool `env:"VALIDATOR_LOG_FAILURES" envDefault:"false"`
}

func DefaultConfig() Config {
	return Config{
		RuleSeparator:   DefaultRuleSeparator,
		PartSeparator:   DefaultPartSeparator,
		OptionSeparator: DefaultOptionSeparator,
	}
}

// LoadConfig reads Config from the environment (and a .env file, if present).
// Extra env files are loaded first, later files overriding earlier ones, and
// the config is parsed again so their values take effect.
func LoadConfig(envFiles ...string) (Config, error) {
	var cfg Config
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return Config{}, err
		}
		if err := config.ForceReload(&cfg); err != nil {
			return Config{}, err
		}
		return cfg.withDefaults(), nil
	}

	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

// withDefaults replaces empty separators with the defaults.
func (c Config) withDefaults() Config {
	if c.RuleSeparator == "" {
		c.RuleSeparator = DefaultRuleSeparator
	}
	if c.PartSeparator == "" {
		c.PartSeparator = DefaultPartSeparator
	}
	if c.OptionSeparator == "" {
		c.OptionSeparator = DefaultOptionSeparator
	}
	return c
}
