// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/vox"
	"github.com/gogpu/vox/app"
)

// Run routes window events to a until it exits, then releases its
// Renderer. It returns a.Err(): nil for a clean exit, a *vox.StartupError
// when the application never became active.
//
// The loop blocks in WaitEvents while no redraw is pending. After it ends,
// Run keeps draining posted functions until a deferred build has been
// delivered, so no GPU context outlives the window.
func (w *Window) Run(a *app.Application) error {
	w.bind(a)
	defer a.Close()
	defer w.settle(a, glfw.WaitEvents)

	if err := a.OnReady(); err != nil {
		return err
	}
	for !w.win.ShouldClose() {
		if w.redraw.Load() {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}
		w.drain()
		if w.redraw.Swap(false) {
			a.OnRedrawRequested()
		}
	}
	vox.Logger().Debug("desktop: loop done", "state", a.State().String())
	return a.Err()
}

// settle runs posted functions until a has no pending delivery. wait blocks
// until new work may have been posted.
func (w *Window) settle(a *app.Application, wait func()) {
	w.drain()
	for a.Pending() {
		vox.Logger().Debug("desktop: waiting for deferred gpu context")
		wait()
		w.drain()
	}
}

func (w *Window) drain() {
	w.mu.Lock()
	fs := w.posted
	w.posted = nil
	w.mu.Unlock()
	for _, f := range fs {
		f()
	}
}

func (w *Window) bind(a *app.Application) {
	w.win.SetCloseCallback(func(*glfw.Window) {
		a.OnCloseRequested()
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.OnResized(width, height)
	})
	w.win.SetContentScaleCallback(func(gw *glfw.Window, x, _ float32) {
		fw, fh := gw.GetFramebufferSize()
		a.OnScaleFactorChanged(float64(x), fw, fh)
	})
	w.win.SetRefreshCallback(func(*glfw.Window) {
		w.redraw.Store(true)
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.haveCursor {
			a.OnPointerMotion(x-w.lastX, y-w.lastY)
		}
		w.lastX, w.lastY, w.haveCursor = x, y, true
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		if k := translateKey(key); k != gpucontext.KeyUnknown {
			a.OnKey(k, action == glfw.Press)
		}
	})
}
