// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vox"
	"github.com/gogpu/vox/camera"
	"github.com/gogpu/vox/world"
)

// DefaultClearColor is the sky colour behind the voxels.
var DefaultClearColor = gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

const (
	defaultColumns = 16
	defaultSpacing = 1.5
)

// Renderer drives one Context: it keeps the surface configured for the
// drawable size, turns camera input into a view each update and submits one
// frame per Render call.
//
// Renderer is single-owner and must be used from the event loop thread.
type Renderer struct {
	ctx Context

	width, height uint32
	configured    bool

	cam   camera.Camera
	input *camera.Controller
	world *world.World

	frame   Frame
	frames  uint64
	skipped uint64
	err     error
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCamera sets the initial camera.
func WithCamera(c camera.Camera) Option {
	return func(r *Renderer) { r.cam = c }
}

// WithClearColor sets the background colour.
func WithClearColor(c gputypes.Color) Option {
	return func(r *Renderer) { r.frame.Clear = c }
}

// WithGrid sets how instances are laid out on the ground plane.
func WithGrid(columns uint32, spacing float32) Option {
	return func(r *Renderer) {
		if columns > 0 {
			r.frame.Columns = columns
		}
		if spacing > 0 {
			r.frame.Spacing = spacing
		}
	}
}

// New creates a Renderer over ctx and configures the surface for
// width x height. A zero dimension defers configuration to the first
// non-zero Resize.
func New(ctx Context, width, height uint32, opts ...Option) *Renderer {
	r := &Renderer{
		ctx: ctx,
		cam: camera.Default(),
		frame: Frame{
			Clear:   DefaultClearColor,
			Columns: defaultColumns,
			Spacing: defaultSpacing,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Resize(width, height)
	return r
}

// Attach connects the camera input and the world drawn by the Renderer.
// Either may be nil.
func (r *Renderer) Attach(input *camera.Controller, w *world.World) {
	r.input = input
	r.world = w
}

// Resize stores the drawable size and reconfigures the surface for it.
//
// A zero width or height (a minimized window) stores the size and skips
// configuration; it is not an error. A configuration failure is logged and
// reported by Err.
func (r *Renderer) Resize(width, height uint32) {
	r.width, r.height = width, height
	if r.ctx == nil {
		return
	}
	if width == 0 || height == 0 {
		r.configured = false
		vox.Logger().Debug("render: resize deferred", "width", width, "height", height)
		return
	}
	if err := r.ctx.Configure(width, height); err != nil {
		r.configured = false
		r.err = err
		vox.Logger().Warn("render: surface configure failed", "width", width, "height", height, "error", err)
		return
	}
	r.configured = true
	r.err = nil
	vox.Logger().Debug("render: surface configured", "width", width, "height", height)
}

// Size returns the last stored drawable size.
func (r *Renderer) Size() (width, height uint32) {
	return r.width, r.height
}

// Update consumes the pending camera motion and advances the camera by dt.
func (r *Renderer) Update(dt time.Duration) {
	if r.input != nil {
		dx, dy := r.input.Consume()
		r.cam.Update(dx, dy, r.input.Movement(), dt)
	}
	r.frame.Width, r.frame.Height = r.width, r.height
	r.frame.ViewProjection = r.cam.ViewProjection(r.frame.Aspect())
	if r.world != nil {
		r.frame.Instances = uint32(r.world.VoxelCount())
	}
}

// Render submits one frame and classifies the outcome.
//
// While the stored size has a zero dimension the frame is skipped and
// SurfaceOK is returned. If the size is non-zero but the last Configure
// failed, the frame is skipped and SurfaceOutdated is returned so the
// caller reconfigures with Resize.
func (r *Renderer) Render() SurfaceError {
	if !r.configured {
		r.skipped++
		if r.ctx == nil || r.width == 0 || r.height == 0 {
			return SurfaceOK
		}
		return SurfaceOutdated
	}
	err := r.ctx.Draw(&r.frame)
	res := Classify(err)
	if res != SurfaceOK {
		r.err = err
		return res
	}
	r.frames++
	return SurfaceOK
}

// Camera returns the camera state.
func (r *Renderer) Camera() *camera.Camera { return &r.cam }

// Context returns the underlying GPU context.
func (r *Renderer) Context() Context { return r.ctx }

// Frames returns the number of frames submitted successfully.
func (r *Renderer) Frames() uint64 { return r.frames }

// Skipped returns the number of frames skipped because the surface had a
// zero dimension.
func (r *Renderer) Skipped() uint64 { return r.skipped }

// Err returns the last configure or draw error, or nil.
func (r *Renderer) Err() error { return r.err }

// Release frees the Context. Calling Release more than once is a no-op.
func (r *Renderer) Release() {
	if r.ctx == nil {
		return
	}
	r.ctx.Release()
	r.ctx = nil
	r.configured = false
}
