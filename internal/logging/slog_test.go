package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "resolving", "ref", "icloud-123")
	log.Info(ctx, "created", "user", "u1")
	log.Warn(ctx, "discovery failed", "ref", "u2")
	log.Error(ctx, "store failed", "op", "save")

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=resolving", "ref=icloud-123",
		"level=INFO", "msg=created", "user=u1",
		"level=WARN", `msg="discovery failed"`,
		"level=ERROR", `msg="store failed"`, "op=save",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("module", "invites").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, want := range []string{"module=invites", "msg=hello", "k=v"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestNewTextLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, slog.LevelWarn)

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestSlogLogger_ContextFields(t *testing.T) {
	log, buf := newTestLogger(t)

	ctx := ContextWith(context.Background(), "identity", "rec-1")
	ctx = ContextWith(ctx, "method", "SendInvite")
	log.Info(ctx, "invite sent", "to", "rec-2")
	log.Info(context.Background(), "no fields")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.Contains(lines[0], "identity=rec-1 method=SendInvite to=rec-2") {
		t.Fatalf("context fields missing or out of order: %s", lines[0])
	}
	if strings.Contains(lines[1], "identity=") {
		t.Fatalf("fields leaked into unrelated context: %s", lines[1])
	}
}
