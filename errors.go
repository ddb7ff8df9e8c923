// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vox

import (
	"errors"
	"fmt"
)

// Class groups failures by how the runtime reacts to them.
type Class int

const (
	// ClassNone means no failure.
	ClassNone Class = iota

	// ClassRecoverable covers surface states fixed by reconfiguring the
	// surface with the stored drawable size (lost, outdated).
	ClassRecoverable

	// ClassFatal covers resource exhaustion. The application exits.
	ClassFatal

	// ClassIgnorable covers transient failures that are logged and skipped
	// (timeout, unclassified surface errors).
	ClassIgnorable

	// ClassStartup covers window, cursor and GPU context construction
	// failures. There is no degraded-mode startup.
	ClassStartup
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassNone:
		return "None"
	case ClassRecoverable:
		return "RecoverableSurfaceState"
	case ClassFatal:
		return "FatalResourceExhaustion"
	case ClassIgnorable:
		return "IgnorableTransient"
	case ClassStartup:
		return "StartupFailure"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// ErrStartup matches every StartupError with errors.Is.
var ErrStartup = errors.New("vox: startup failure")

// StartupError reports a failure that aborts the process before the event
// loop runs.
type StartupError struct {
	// Stage names the step that failed ("window", "cursor", "gpu context").
	Stage string

	// Err is the underlying cause.
	Err error
}

// NewStartupError wraps err as a StartupError for stage.
// It returns nil when err is nil.
func NewStartupError(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StartupError{Stage: stage, Err: err}
}

// Error implements the error interface.
func (e *StartupError) Error() string {
	return fmt.Sprintf("vox: startup failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StartupError) Unwrap() error { return e.Err }

// Is reports whether target is ErrStartup.
func (e *StartupError) Is(target error) bool { return target == ErrStartup }

// Class returns ClassStartup.
func (e *StartupError) Class() Class { return ClassStartup }
