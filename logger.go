package vox

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

var (
	sinksMu sync.Mutex
	sinks   []LoggerSetter
)

func init() {
	loggerPtr.Store(newNopLogger())
}

// LoggerSetter is implemented by components outside this module's packages
// (GPU backends, platform hosts) that keep their own logger.
type LoggerSetter interface {
	SetLogger(*slog.Logger)
}

// SetLogger configures the logger for vox and all its sub-packages.
// By default, vox produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically
// and forwards it to every sink registered with AttachLogger.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by vox:
//   - [slog.LevelDebug]: per-frame diagnostics (dt, frame counters, configure calls)
//   - [slog.LevelInfo]: lifecycle events (state transitions, adapter selected)
//   - [slog.LevelWarn]: ignored surface errors (timeout, unclassified failures)
//   - [slog.LevelError]: fatal conditions (out of memory, startup failure)
//
// Example:
//
//	vox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	sinksMu.Lock()
	defer sinksMu.Unlock()
	for _, s := range sinks {
		s.SetLogger(l)
	}
}

// Logger returns the current logger used by vox.
// Sub-packages (render, app, platform/desktop) call this to share the same
// logger configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// AttachLogger registers s to receive the logger on every SetLogger call.
// The current logger is passed to s immediately.
func AttachLogger(s LoggerSetter) {
	if s == nil {
		return
	}
	sinksMu.Lock()
	sinks = append(sinks, s)
	sinksMu.Unlock()
	s.SetLogger(Logger())
}
