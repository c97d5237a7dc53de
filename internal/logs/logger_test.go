package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"econflow/internal/sim"
)

func TestLoggerTagsRun(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(Options{Writer: buf, Level: slog.LevelDebug})

	id := NewRunID()
	ctx := WithRun(context.Background(), id)
	logger.InfoContext(ctx, "stage", "to", "unrest")
	logger.With("component", "sim").DebugContext(ctx, "tick")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, "run="+string(id)) {
			t.Fatalf("expected run id in %q", line)
		}
	}
	if !strings.Contains(lines[1], "component=sim") {
		t.Fatalf("got %v", lines[1])
	}
}

func TestLoggerLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(Options{Writer: buf, Level: slog.LevelWarn})
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("run.id-x"); got != "RUN_ID_X" {
		t.Fatalf("got %v", got)
	}
}

func TestAttachBus(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(Options{Writer: buf, Level: slog.LevelInfo})
	bus := sim.NewEventBus()
	AttachBus(context.Background(), bus, logger)

	s := sim.NewSimulation(1, bus)
	s.RequestAdvance()
	s.Step()

	out := buf.String()
	if !strings.Contains(out, "stage_advanced") || !strings.Contains(out, "to=ai_transition") {
		t.Fatalf("got %q", out)
	}
	if strings.Contains(out, "rich_attack") {
		t.Fatalf("attacks should log at debug, got %q", out)
	}
}
