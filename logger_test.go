package rowkit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func TestNewLogger(t *testing.T) {
	t.Run("NilHandlerFallsBack", func(t *testing.T) {
		l := NewLogger(nil)
		require.NotNil(t, l)
		require.NotNil(t, l.Logger)
	})

	t.Run("Pretty", func(t *testing.T) {
		l := NewPrettyLogger(slog.LevelError)
		require.NotNil(t, l)
		assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
	})
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := NoopLogger()
	l.LogFilter(context.Background(), 3, 1, nil)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestLoggerHelpers(t *testing.T) {
	ctx := context.Background()

	t.Run("Filter", func(t *testing.T) {
		var buf bytes.Buffer
		debugLogger(&buf).LogFilter(ctx, 4, 2, nil)
		assert.Contains(t, buf.String(), "filter completed")
		assert.Contains(t, buf.String(), "matched=2")
	})

	t.Run("TableReadError", func(t *testing.T) {
		var buf bytes.Buffer
		debugLogger(&buf).LogTableRead(ctx, "inventory.csv", 0, errors.New("boom"))
		assert.Contains(t, buf.String(), "table read failed")
		assert.Contains(t, buf.String(), "inventory.csv")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("TableWrite", func(t *testing.T) {
		var buf bytes.Buffer
		debugLogger(&buf).LogTableWrite(ctx, "out.csv", 5, nil)
		assert.Contains(t, buf.String(), "table written")
		assert.Contains(t, buf.String(), "records=5")
	})

	t.Run("ValueWrite", func(t *testing.T) {
		var buf bytes.Buffer
		debugLogger(&buf).LogValueWrite(ctx, "config.json", nil)
		assert.Contains(t, buf.String(), "value written")
	})
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := debugLogger(&buf).WithField("price").WithCount(3)
	l.Debug("check")
	assert.Contains(t, buf.String(), "field=price")
	assert.Contains(t, buf.String(), "count=3")
}
