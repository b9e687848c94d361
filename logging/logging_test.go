package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dasdy/layerlens/logging"
	"github.com/stretchr/testify/assert"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)})

	ctx := logging.ComponentCtx(context.Background(), "feed")
	ctx = logging.AppendCtx(ctx, slog.Int("layer", 3))

	logger.With("static", "yes").InfoContext(ctx, "hello")

	out := buf.String()
	assert.Contains(t, out, "component=feed")
	assert.Contains(t, out, "layer=3")
	assert.Contains(t, out, "static=yes")
}

func TestAppendCtxDoesNotLeakBetweenBranches(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)})

	base := logging.AppendCtx(context.Background(), slog.String("a", "1"))
	left := logging.AppendCtx(base, slog.String("b", "2"))
	_ = logging.AppendCtx(base, slog.String("c", "3"))

	logger.InfoContext(left, "left")

	assert.NotContains(t, buf.String(), "c=3")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewLogger(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
