// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/vox"
	"github.com/gogpu/vox/camera"
	"github.com/gogpu/vox/render"
	"github.com/gogpu/vox/world"
)

var (
	// ErrNilRenderer is returned when a Builder yields neither a Renderer
	// nor an error.
	ErrNilRenderer = errors.New("app: builder returned nil renderer")

	// ErrContextLost is reported by Err after OnContextLost.
	ErrContextLost = errors.New("app: gpu context lost")

	// ErrSurfaceOutOfMemory is reported by Err when a frame fails with
	// SurfaceOutOfMemory.
	ErrSurfaceOutOfMemory = errors.New("app: surface out of memory")
)

// Window is the part of the host window an Application drives.
type Window interface {
	gpucontext.WindowProvider

	// FramebufferSize returns the drawable size in physical pixels.
	FramebufferSize() (width, height int)

	// SetCursorMode applies a cursor mode.
	SetCursorMode(mode gpucontext.CursorMode) error

	// Close asks the host loop to stop.
	Close()
}

// Option configures an Application.
type Option func(*Application)

// WithClock replaces time.Now as the frame clock.
func WithClock(now func() time.Time) Option {
	return func(a *Application) {
		if now != nil {
			a.now = now
		}
	}
}

// WithController sets the camera input accumulator.
func WithController(c *camera.Controller) Option {
	return func(a *Application) {
		if c != nil {
			a.input = c
		}
	}
}

// Application routes window events to the Renderer and owns the lifecycle
// state machine:
//
//	Uninitialized -> Active -> Exiting
//
// Every method except Done and Err must be called on the event loop thread.
type Application struct {
	cfg      Config
	win      Window
	world    *world.World
	input    *camera.Controller
	provider ContextProvider
	build    Builder
	now      func() time.Time

	state      State
	pending    bool
	renderer   *render.Renderer
	lastRender time.Time

	err  error
	done chan struct{}
}

// New creates an Application in the Uninitialized state. Nothing is built
// until OnReady.
func New(cfg Config, w *world.World, win Window, provider ContextProvider, build Builder, opts ...Option) *Application {
	if w == nil {
		w = world.New()
	}
	if provider == nil {
		provider = Synchronous{}
	}
	a := &Application{
		cfg:      cfg,
		win:      win,
		world:    w,
		input:    camera.NewController(),
		provider: provider,
		build:    build,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.lastRender = a.now()
	return a
}

// OnReady applies the cursor policy and starts building the GPU context.
// Calls after the first are no-ops.
func (a *Application) OnReady() error {
	if a.state != StateUninitialized || a.pending {
		return nil
	}
	if err := a.win.SetCursorMode(a.cfg.Cursor); err != nil {
		return a.fail("cursor", err)
	}
	r, ready, err := a.provider.Provide(a.build, a.deliver)
	if err != nil {
		return a.fail("gpu context", err)
	}
	if !ready {
		a.pending = true
		vox.Logger().Debug("app: gpu context pending")
		return nil
	}
	return a.OnRendererReady(r, nil)
}

func (a *Application) deliver(r *render.Renderer, err error) {
	_ = a.OnRendererReady(r, err)
}

// OnRendererReady installs r. An installed Renderer is replaced and
// released. A Renderer arriving after exit is released unused.
func (a *Application) OnRendererReady(r *render.Renderer, err error) error {
	a.pending = false
	if a.state == StateExiting {
		if r != nil {
			r.Release()
		}
		return nil
	}
	if err == nil && r == nil {
		err = ErrNilRenderer
	}
	if err != nil {
		return a.fail("gpu context", err)
	}
	a.install(r)
	return nil
}

func (a *Application) install(r *render.Renderer) {
	if a.renderer != nil && a.renderer != r {
		a.renderer.Release()
		vox.Logger().Info("app: renderer replaced")
	}
	a.renderer = r
	r.Attach(a.input, a.world)

	fw, fh := a.win.FramebufferSize()
	w, h := clampSize(fw, fh)
	if cw, ch := r.Size(); cw != w || ch != h {
		r.Resize(w, h)
	}

	a.state = StateActive
	a.lastRender = a.now()
	vox.Logger().Info("app: active", "width", w, "height", h)
	a.win.RequestRedraw()
}

// OnCloseRequested moves to Exiting from any state.
func (a *Application) OnCloseRequested() {
	a.exit("close requested", nil)
}

// OnResized reconfigures the surface for the new drawable size and asks
// for a frame when the size is non-zero.
func (a *Application) OnResized(width, height int) {
	if a.state != StateActive {
		return
	}
	w, h := clampSize(width, height)
	a.renderer.Resize(w, h)
	if drawable(w, h) {
		a.win.RequestRedraw()
	}
}

// OnScaleFactorChanged handles a DPI change, which arrives with a new
// drawable size.
func (a *Application) OnScaleFactorChanged(scale float64, width, height int) {
	if a.state != StateActive {
		return
	}
	vox.Logger().Debug("app: scale factor changed", "scale", scale)
	a.OnResized(width, height)
}

// OnRedrawRequested updates and renders one frame and applies the surface
// failure policy:
//
//   - Lost, Outdated: resize with the stored size
//   - OutOfMemory: exit
//   - Timeout: warn
//   - anything else: warn
func (a *Application) OnRedrawRequested() {
	if a.state != StateActive {
		return
	}
	now := a.now()
	dt := now.Sub(a.lastRender)
	a.lastRender = now

	r := a.renderer
	r.Update(dt)

	switch res := r.Render(); res {
	case render.SurfaceOK:
	case render.SurfaceLost, render.SurfaceOutdated:
		w, h := r.Size()
		vox.Logger().Debug("app: surface reconfigure", "reason", res.String(), "width", w, "height", h)
		r.Resize(w, h)
	case render.SurfaceOutOfMemory:
		a.exit("surface out of memory", fmt.Errorf("%w: %w", ErrSurfaceOutOfMemory, r.Err()))
	case render.SurfaceTimeout:
		vox.Logger().Warn("app: surface timeout")
	default:
		vox.Logger().Warn("app: surface error", "kind", res.String(), "error", r.Err())
	}

	// A minimized window waits for the next non-zero OnResized.
	if a.state == StateActive && a.cfg.Continuous && drawable(r.Size()) {
		a.win.RequestRedraw()
	}
}

// OnPointerMotion accumulates a raw pointer delta for the camera.
func (a *Application) OnPointerMotion(dx, dy float64) {
	if a.state != StateActive {
		return
	}
	a.input.ProcessMotion(dx, dy)
}

// OnKey handles a key press or release. The cancel key exits on press;
// movement keys update the held directions.
func (a *Application) OnKey(key gpucontext.Key, pressed bool) {
	if a.state != StateActive {
		return
	}
	if key == a.cfg.CancelKey {
		if pressed {
			a.exit("cancel key", nil)
		}
		return
	}
	if d, ok := a.cfg.MoveKeys[key]; ok {
		a.input.SetMove(d, pressed)
	}
}

// OnContextLost releases the Renderer and exits.
func (a *Application) OnContextLost() {
	if a.state == StateExiting {
		return
	}
	if a.renderer != nil {
		a.renderer.Release()
		a.renderer = nil
	}
	a.exit("gpu context lost", ErrContextLost)
}

// Close releases the Renderer. Safe to call more than once.
func (a *Application) Close() {
	a.exit("closed", nil)
	if a.renderer != nil {
		a.renderer.Release()
		a.renderer = nil
	}
}

// State returns the lifecycle state.
func (a *Application) State() State { return a.state }

// Pending reports whether a deferred build has not been delivered yet.
func (a *Application) Pending() bool { return a.pending }

// Renderer returns the installed Renderer, or nil.
func (a *Application) Renderer() *render.Renderer { return a.renderer }

// Controller returns the camera input accumulator.
func (a *Application) Controller() *camera.Controller { return a.input }

// World returns the entity store.
func (a *Application) World() *world.World { return a.world }

// Config returns the configuration.
func (a *Application) Config() Config { return a.cfg }

// Done is closed on entering Exiting.
func (a *Application) Done() <-chan struct{} { return a.done }

// Err returns the error that caused the exit, or nil for a clean exit or
// while still running. Other goroutines must wait for Done first.
func (a *Application) Err() error { return a.err }

func (a *Application) fail(stage string, err error) error {
	se := vox.NewStartupError(stage, err)
	a.exit("startup failed", se)
	return se
}

func (a *Application) exit(reason string, err error) {
	if a.state == StateExiting {
		return
	}
	a.state = StateExiting
	a.err = err
	if err != nil {
		vox.Logger().Error("app: exiting", "reason", reason, "error", err)
	} else {
		vox.Logger().Info("app: exiting", "reason", reason)
	}
	close(a.done)
	a.win.Close()
}

func drawable(w, h uint32) bool { return w > 0 && h > 0 }

func clampSize(w, h int) (uint32, uint32) {
	return uint32(max(w, 0)), uint32(max(h, 0))
}
