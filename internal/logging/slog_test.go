package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	l := slog.New(h)
	return NewSlogLogger(l), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "outbound request", "op", "search")
	log.Info(ctx, "user logged in", "user_id", "user-1")
	log.Warn(ctx, "autocomplete degraded", "status", 503)
	log.Error(ctx, "deck list unreadable", "key", "mtg_app_decks")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	want := []struct {
		level string
		attrs []string
	}{
		{"DEBUG", []string{`msg="outbound request"`, "op=search"}},
		{"INFO", []string{`msg="user logged in"`, "user_id=user-1"}},
		{"WARN", []string{`msg="autocomplete degraded"`, "status=503"}},
		{"ERROR", []string{`msg="deck list unreadable"`, "key=mtg_app_decks"}},
	}
	for i, w := range want {
		assert.Contains(t, lines[i], "level="+w.level)
		for _, a := range w.attrs {
			assert.Contains(t, lines[i], a)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log2 := log.With("component", "decks", "user_id", "user-1")
	log2.Info(ctx, "deck created", "deck_id", "deck-1")

	out := buf.String()
	wantSubs := []string{
		"level=INFO",
		`msg="deck created"`,
		"component=decks",
		"user_id=user-1",
		"deck_id=deck-1",
	}
	for _, s := range wantSubs {
		assert.Contains(t, out, s)
	}
}
