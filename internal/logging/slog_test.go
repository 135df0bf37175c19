package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_WritesLevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "debug msg", "k", "v1")
	log.Info(ctx, "info msg", "k", "v2")
	log.Warn(ctx, "warn msg", "k", "v3")
	log.Error(ctx, "error msg", "k", "v4")

	out := buf.String()
	assert.Contains(t, out, "debug msg")
	assert.Contains(t, out, "info msg")
	assert.Contains(t, out, "warn msg")
	assert.Contains(t, out, "error msg")
	assert.Contains(t, out, "k=v4")
}

func TestSlogLogger_WithAddsPersistentAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, slog.LevelInfo)

	child := log.With("page", "cart")
	require.NotNil(t, child)
	child.Info(context.Background(), "rendered")

	assert.Contains(t, buf.String(), "page=cart")
	assert.Contains(t, buf.String(), "rendered")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, slog.LevelInfo)

	log.Debug(context.Background(), "too quiet")
	assert.NotContains(t, buf.String(), "too quiet")
}
