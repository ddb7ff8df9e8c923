// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render owns the presentation surface lifecycle of one window.
//
// # Key Principle
//
// The Renderer never talks to a GPU API directly. It drives a Context, the
// narrow device + queue + surface interface implemented by backends such as
// backend/wgpu, and reports every frame as a SurfaceError.
//
// # Core Types
//
//   - Context: GPU device, queue and surface bound to one window
//   - Renderer: keeps the surface sized, updates the camera, submits frames
//   - SurfaceError: closed classification of a render result
//   - Registry: render backends by name and priority
//
// # Surface Lifecycle
//
// Resize stores the drawable size and reconfigures the surface. A zero
// dimension (minimized window) stores the size without configuring, and
// Render skips frames until a non-zero Resize arrives. After a failed
// Configure at a non-zero size Render answers SurfaceOutdated, so the
// caller's reconfigure policy retries.
//
// Render returns exactly one of:
//
//	SurfaceOK, SurfaceLost, SurfaceOutdated, SurfaceOutOfMemory, SurfaceTimeout, SurfaceOther
//
// The reaction to each is the caller's policy; see package app.
//
// # Backends
//
// The "null" backend is always registered and draws nothing. GPU backends
// register from init, so importing them is enough:
//
//	import _ "github.com/gogpu/vox/backend/wgpu"
//
//	ctx, err := render.Open("", render.Target{Display: d, Window: w, Width: 1280, Height: 720})
//	r := render.New(ctx, 1280, 720)
package render
