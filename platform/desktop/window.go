// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/vox"
	"github.com/gogpu/vox/app"
	"github.com/gogpu/vox/render"
)

func init() {
	runtime.LockOSThread()
}

var (
	// ErrUnsupportedPlatform is returned by Target where no native surface
	// handle can be obtained.
	ErrUnsupportedPlatform = errors.New("desktop: unsupported platform")

	// ErrCursorMode is returned for cursor modes GLFW 3.3 cannot express.
	ErrCursorMode = errors.New("desktop: cursor mode not supported")
)

// Options configures Open.
type Options struct {
	Title         string
	Width, Height int

	// Fixed disables user resizing.
	Fixed bool
}

// Window is a GLFW window without a client API, ready for a GPU surface.
// It implements app.Window.
type Window struct {
	win *glfw.Window

	mu     sync.Mutex
	posted []func()

	redraw atomic.Bool

	lastX, lastY float64
	haveCursor   bool
}

var _ app.Window = (*Window)(nil)

// Open initializes GLFW and creates a window. Failures are startup errors
// at stage "window".
func Open(opts Options) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, vox.NewStartupError("window", fmt.Errorf("desktop: invalid size %dx%d", opts.Width, opts.Height))
	}
	if err := glfw.Init(); err != nil {
		return nil, vox.NewStartupError("window", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	if opts.Fixed {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, vox.NewStartupError("window", err)
	}
	vox.Logger().Info("desktop: window created", "title", opts.Title, "width", opts.Width, "height", opts.Height)
	return &Window{win: win}, nil
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (int, int) {
	return w.win.GetSize()
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// ScaleFactor returns the horizontal content scale.
func (w *Window) ScaleFactor() float64 {
	x, _ := w.win.GetContentScale()
	if x <= 0 {
		return 1
	}
	return float64(x)
}

// RequestRedraw schedules one OnRedrawRequested. Safe from any goroutine.
func (w *Window) RequestRedraw() {
	w.redraw.Store(true)
	glfw.PostEmptyEvent()
}

// Post runs f on the event loop thread. Safe from any goroutine.
func (w *Window) Post(f func()) {
	w.mu.Lock()
	w.posted = append(w.posted, f)
	w.mu.Unlock()
	glfw.PostEmptyEvent()
}

// Close asks Run to return. Safe from any goroutine.
func (w *Window) Close() {
	w.win.SetShouldClose(true)
	glfw.PostEmptyEvent()
}

// SetCursorMode applies m. CursorModeLocked hides the cursor, confines it
// and enables raw motion where supported.
//
// GLFW reports platform errors by panicking; they are returned as errors.
func (w *Window) SetCursorMode(m gpucontext.CursorMode) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("desktop: set cursor mode %v: %w", m, e)
				return
			}
			err = fmt.Errorf("desktop: set cursor mode %v: %v", m, r)
		}
	}()

	switch m {
	case gpucontext.CursorModeNormal:
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	case gpucontext.CursorModeLocked:
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			w.win.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	default:
		return fmt.Errorf("%w: %v", ErrCursorMode, m)
	}
	w.haveCursor = false
	vox.Logger().Debug("desktop: cursor mode", "mode", m.String())
	return nil
}

// Target returns the native handles and drawable size for render.Open.
func (w *Window) Target() (render.Target, error) {
	display, window, err := w.handles()
	if err != nil {
		return render.Target{}, err
	}
	fw, fh := w.FramebufferSize()
	return render.Target{
		Display: display,
		Window:  window,
		Width:   uint32(max(fw, 0)),
		Height:  uint32(max(fh, 0)),
	}, nil
}

// Destroy destroys the window and terminates GLFW.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
