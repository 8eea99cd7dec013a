package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate/pkg/logger"
)

func TestContextWithAttrs(t *testing.T) {
	t.Run("accumulates attributes", func(t *testing.T) {
		ctx := logger.ContextWithAttrs(context.Background(), slog.String("request_id", "r-1"))
		ctx = logger.ContextWithAttrs(ctx, slog.String("schema", "signup"))

		assert.Equal(t, []slog.Attr{
			slog.String("request_id", "r-1"),
			slog.String("schema", "signup"),
		}, logger.AttrsFromContext(ctx))
	})

	t.Run("does not leak into parent context", func(t *testing.T) {
		parent := logger.ContextWithAttrs(context.Background(), slog.String("a", "1"))
		_ = logger.ContextWithAttrs(parent, slog.String("b", "2"))
		sibling := logger.ContextWithAttrs(parent, slog.String("c", "3"))

		assert.Len(t, logger.AttrsFromContext(parent), 1)
		assert.Equal(t, []slog.Attr{slog.String("a", "1"), slog.String("c", "3")}, logger.AttrsFromContext(sibling))
	})

	t.Run("no attributes returns the same context", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, logger.ContextWithAttrs(ctx))
		assert.Nil(t, logger.AttrsFromContext(ctx))
	})
}

func TestContextHandler(t *testing.T) {
	t.Run("adds context attributes to records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf)).With(logger.Component("validator"))

		ctx := logger.ContextWithAttrs(context.Background(), slog.String("request_id", "r-1"))
		log.InfoContext(ctx, "validated")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "r-1", entry["request_id"])
		assert.Equal(t, "validator", entry["component"])
	})

	t.Run("records without context attributes are unchanged", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("plain")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.NotContains(t, entry, "request_id")
	})

	t.Run("keeps attributes inside groups", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf)).WithGroup("validation")

		ctx := logger.ContextWithAttrs(context.Background(), slog.String("request_id", "r-2"))
		log.InfoContext(ctx, "grouped", slog.String("field", "age"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		group, ok := entry["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "r-2", group["request_id"])
		assert.Equal(t, "age", group["field"])
	})
}
