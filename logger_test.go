package vox

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

type recordingSink struct {
	logger *slog.Logger
	calls  int
}

func (s *recordingSink) SetLogger(l *slog.Logger) {
	s.logger = l
	s.calls++
}

func resetSinks(t *testing.T) {
	t.Helper()
	sinksMu.Lock()
	saved := sinks
	sinks = nil
	sinksMu.Unlock()
	t.Cleanup(func() {
		sinksMu.Lock()
		sinks = saved
		sinksMu.Unlock()
	})
}

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestNopHandler_WithAttrsAndGroup(t *testing.T) {
	h := nopHandler{}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() did not return nopHandler")
	}
	if _, ok := h.WithGroup("group").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() did not return nopHandler")
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Fatal("Logger() did not return the custom logger set via SetLogger")
	}
	Logger().Info("surface configured", "width", 800)
	if !strings.Contains(buf.String(), "surface configured") {
		t.Errorf("expected log output to contain 'surface configured', got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestAttachLoggerReceivesCurrentAndFutureLoggers(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	resetSinks(t)

	first := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(first)

	sink := &recordingSink{}
	AttachLogger(sink)
	if sink.logger != first {
		t.Error("AttachLogger did not pass the current logger")
	}

	second := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(second)
	if sink.logger != second {
		t.Error("SetLogger did not propagate to attached sink")
	}
	if sink.calls != 2 {
		t.Errorf("sink calls = %d, want 2", sink.calls)
	}
}

func TestAttachLoggerNil(t *testing.T) {
	resetSinks(t)
	AttachLogger(nil)
	sinksMu.Lock()
	n := len(sinks)
	sinksMu.Unlock()
	if n != 0 {
		t.Errorf("len(sinks) = %d, want 0", n)
	}
}
