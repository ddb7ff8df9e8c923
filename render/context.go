// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

// Context is the GPU device, queue and presentation surface bound to one
// window. A Renderer owns its Context exclusively.
//
// Implementations are not safe for concurrent use.
type Context interface {
	// Configure sizes the presentation surface. Width and height are
	// never zero.
	Configure(width, height uint32) error

	// Draw acquires the next surface frame, records the frame's GPU work
	// and presents it. Surface failures are reported with the sentinels
	// of this package (ErrSurfaceLost, ErrTimeout, ...) so that Classify
	// can map them.
	Draw(f *Frame) error

	// Release frees every GPU resource. The Context is unusable afterwards.
	Release()
}

// Frame is the per-frame input to Context.Draw.
type Frame struct {
	// ViewProjection transforms world space to clip space.
	ViewProjection mgl32.Mat4

	// Clear is the background colour.
	Clear gputypes.Color

	// Instances is the number of voxel instances to draw.
	Instances uint32

	// Columns is the width of the instance grid on the ground plane.
	Columns uint32

	// Spacing is the distance between neighbouring instances.
	Spacing float32

	// Width and Height are the drawable size the surface is configured for.
	Width, Height uint32
}

// Aspect returns Width/Height, or 1 when either is zero.
func (f *Frame) Aspect() float32 {
	if f.Width == 0 || f.Height == 0 {
		return 1
	}
	return float32(f.Width) / float32(f.Height)
}

// Target identifies the native window a backend presents to.
type Target struct {
	// Display is the platform display connection (X11 Display*, HINSTANCE).
	// Zero where the platform has none.
	Display uintptr

	// Window is the native window handle (X11 Window, HWND, CAMetalLayer*).
	Window uintptr

	// Width and Height are the initial drawable size in physical pixels.
	Width, Height uint32
}
