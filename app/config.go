// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"maps"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/vox/camera"
)

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("app: invalid config")

// Config holds the knobs of an Application and of the window that hosts it.
type Config struct {
	// Title is the window title.
	Title string

	// Width and Height are the requested window size in logical pixels.
	Width, Height int

	// CancelKey requests termination when pressed. Default: Escape.
	CancelKey gpucontext.Key

	// Cursor is applied to the window before the GPU context is built.
	// A failure is a startup error. Default: CursorModeLocked.
	// CursorModeConfined is rejected by Validate: the desktop host cannot
	// confine a visible cursor.
	Cursor gpucontext.CursorMode

	// Continuous requests a redraw after every frame.
	Continuous bool

	// Deferred builds the GPU context off the event loop and delivers it
	// later through the host's Post function.
	Deferred bool

	// Backend names the render backend. Empty selects the best available.
	Backend string

	// MoveKeys maps held keys to camera movement.
	MoveKeys map[gpucontext.Key]camera.Direction
}

// DefaultMoveKeys returns the WASD + Space/LeftShift layout.
func DefaultMoveKeys() map[gpucontext.Key]camera.Direction {
	return map[gpucontext.Key]camera.Direction{
		gpucontext.KeyW:         camera.Forward,
		gpucontext.KeyS:         camera.Backward,
		gpucontext.KeyA:         camera.Left,
		gpucontext.KeyD:         camera.Right,
		gpucontext.KeySpace:     camera.Up,
		gpucontext.KeyLeftShift: camera.Down,
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Title:      "vox",
		Width:      1280,
		Height:     720,
		CancelKey:  gpucontext.KeyEscape,
		Cursor:     gpucontext.CursorModeLocked,
		Continuous: true,
		MoveKeys:   DefaultMoveKeys(),
	}
}

// WithTitle returns a copy of c with the title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the window size set.
func (c Config) WithSize(width, height int) Config {
	c.Width, c.Height = width, height
	return c
}

// WithCancelKey returns a copy of c with the cancel key set.
func (c Config) WithCancelKey(k gpucontext.Key) Config {
	c.CancelKey = k
	return c
}

// WithCursor returns a copy of c with the cursor mode set.
func (c Config) WithCursor(m gpucontext.CursorMode) Config {
	c.Cursor = m
	return c
}

// WithContinuous returns a copy of c with continuous redraw toggled.
func (c Config) WithContinuous(on bool) Config {
	c.Continuous = on
	return c
}

// WithDeferred returns a copy of c with deferred context creation toggled.
func (c Config) WithDeferred(on bool) Config {
	c.Deferred = on
	return c
}

// WithBackend returns a copy of c with the render backend name set.
func (c Config) WithBackend(name string) Config {
	c.Backend = name
	return c
}

// WithMoveKeys returns a copy of c with its own copy of keys.
func (c Config) WithMoveKeys(keys map[gpucontext.Key]camera.Direction) Config {
	c.MoveKeys = maps.Clone(keys)
	return c
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.CancelKey == gpucontext.KeyUnknown {
		return fmt.Errorf("%w: cancel key not set", ErrInvalidConfig)
	}
	switch c.Cursor {
	case gpucontext.CursorModeNormal, gpucontext.CursorModeLocked:
	default:
		return fmt.Errorf("%w: cursor mode %v", ErrInvalidConfig, c.Cursor)
	}
	if _, ok := c.MoveKeys[c.CancelKey]; ok {
		return fmt.Errorf("%w: cancel key %s is also a movement key", ErrInvalidConfig, KeyName(c.CancelKey))
	}
	return nil
}
