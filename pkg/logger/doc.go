// Package logger builds *slog.Logger values for the validation engine and
// provides attribute helpers that keep attribute keys consistent.
//
// New creates a logger from functional options: output format (text or
// json), level, output writer, static attributes and context extractors. Every
// record also carries the attributes stored in its context with
// ContextWithAttrs, which is how request-scoped values reach
// validator.ValidateContext logs. WithConfig
// applies a Config that can be read from the environment with pkg/config.
//
// # Usage
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.New(logger.WithConfig(cfg))
//	v := validator.New(nil, validator.WithLogger(log))
//
// Attribute helpers:
//
//	log.Debug("validation rule failed", logger.Field("age"), logger.Rule("min"))
//	log.Warn("schema error", logger.Error(err))
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check.
package logger
