package report

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlog_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewSlog(logger)
	ctx := context.Background()

	r.Notice(ctx, "stored", "file", "Crypto.csv")
	r.Warning(ctx, "no data to store", "sink", "csv")
	r.Error(ctx, "fetch failed", "err", "boom")

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=stored file=Crypto.csv")
	assert.Contains(t, out, "level=WARN msg=\"no data to store\" sink=csv")
	assert.Contains(t, out, "level=ERROR msg=\"fetch failed\" err=boom")
}

func TestSlog_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	r := NewSlog(logger)

	r.Notice(context.Background(), "stored")
	assert.Empty(t, buf.String())

	r.Warning(context.Background(), "empty")
	assert.NotEmpty(t, buf.String())
}

func TestNewSlog_NilUsesDefault(t *testing.T) {
	r := NewSlog(nil)
	assert.Same(t, slog.Default(), r.logger)
}
