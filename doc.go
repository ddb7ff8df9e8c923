// Package vox is the runtime core of an interactive voxel renderer.
//
// # Overview
//
// vox coordinates three lifecycles that must stay consistent while the
// GPU context is created synchronously or in the background and while the
// window is resized:
//
//   - the OS window and its event stream (platform/desktop)
//   - the GPU device and presentation surface (render, backend/wgpu)
//   - the update/render timestep (app)
//
// The entity model lives in world: a tagged Entity that is either a single
// Voxel or a non-empty Chunk of voxels. Camera input is accumulated by
// camera.Controller and consumed once per frame by the renderer.
//
// # Quick Start
//
//	w := world.New()
//	w.SpawnVoxel(7)
//	w.SpawnChunk([]world.Voxel{1, 2, 3})
//
//	cfg := app.DefaultConfig()
//	win, err := desktop.Open(desktop.Options{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer win.Destroy()
//
//	t, _ := win.Target()
//	build := func() (*render.Renderer, error) {
//	    ctx, err := render.Open("", t)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return render.New(ctx, t.Width, t.Height), nil
//	}
//	a := app.New(cfg, w, win, app.NewProvider(cfg, win.Post), build)
//	if err := win.Run(a); err != nil {
//	    log.Fatal(err)
//	}
//
// # Failure Policy
//
// Surface failures are classified into a closed set (see render.SurfaceError)
// and handled by the application:
//
//   - Lost, Outdated: reconfigure the surface with the stored size
//   - OutOfMemory: exit
//   - Timeout and anything else: log a warning and keep going
//
// Startup failures (window, cursor confinement, GPU context) are reported as
// *StartupError and abort the process before the loop runs.
//
// # Logging
//
// vox is silent by default. Call SetLogger to route diagnostics to a
// [log/slog] logger. Backends that keep their own logger attach themselves
// with AttachLogger so they follow the same configuration.
package vox
