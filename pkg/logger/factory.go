package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs.
	FormatText Format = "text"
)

// Config describes a logger in environment terms.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format Format `env:"LOG_FORMAT" envDefault:"json"`
}

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format. It panics on unknown formats.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) {
		c.format = FormatText
	}
}

func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = FormatJSON
	}
}

// WithConfig applies level and format from cfg. An unparsable level keeps the
// current one; an empty format keeps the current one.
func WithConfig(cfg Config) Option {
	return func(c *config) {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err == nil {
			c.level = lvl
		}
		if cfg.Format != "" {
			WithFormat(cfg.Format)(c)
		}
	}
}

// WithOutput sets the output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithHandlerOptions overrides the slog handler options, including the level.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithContextExtractors registers functions that add attributes taken from context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithDebug switches to human-readable debug output, handy in tests and
// while writing a schema.
func WithDebug() Option {
	return func(c *config) {
		c.level = slog.LevelDebug
		c.format = FormatText
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

// defaultConfig: JSON at info level on stdout.
func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New creates a slog.Logger from the options.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := cfg.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: cfg.level}
	}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(newContextHandler(handler, cfg.extractors))
}
