// Command voxview opens a window and renders a small voxel world with a
// first-person camera.
//
// Usage:
//
//	voxview [-width 1280] [-height 720] [-cancel-key escape] [-deferred]
//
// Mouse looks around, WASD moves, Space and Left Shift move up and down.
// The cancel key (Escape by default) exits.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/vox"
	"github.com/gogpu/vox/app"
	_ "github.com/gogpu/vox/backend/wgpu"
	"github.com/gogpu/vox/platform/desktop"
	"github.com/gogpu/vox/render"
	"github.com/gogpu/vox/world"
)

func main() {
	var (
		width      = flag.Int("width", 1280, "window width")
		height     = flag.Int("height", 720, "window height")
		title      = flag.String("title", "vox", "window title")
		cancelKey  = flag.String("cancel-key", "escape", "key that exits")
		deferred   = flag.Bool("deferred", false, "create the GPU context in the background")
		continuous = flag.Bool("continuous", true, "redraw continuously")
		backend    = flag.String("backend", "", "render backend (empty selects the best available)")
		grid       = flag.Int("grid", 8, "voxels per side of the demo grid")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("invalid -log-level: %v", err)
	}
	vox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	key, err := app.ParseKey(*cancelKey)
	if err != nil {
		log.Fatalf("invalid -cancel-key: %v", err)
	}
	cfg := app.DefaultConfig().
		WithTitle(*title).
		WithSize(*width, *height).
		WithCancelKey(key).
		WithDeferred(*deferred).
		WithContinuous(*continuous).
		WithBackend(*backend)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if err := run(cfg, seed(*grid)); err != nil {
		var se *vox.StartupError
		if errors.As(err, &se) {
			log.Printf("startup failed (%s): %v", se.Stage, se.Err)
		} else {
			log.Print(err)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config, w *world.World) error {
	win, err := desktop.Open(desktop.Options{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height})
	if err != nil {
		return err
	}
	defer win.Destroy()

	// Native handles must be read on the main thread; build may not run there.
	t, terr := win.Target()
	build := func() (*render.Renderer, error) {
		if terr != nil {
			return nil, terr
		}
		ctx, err := render.Open(cfg.Backend, t)
		if err != nil {
			return nil, err
		}
		return render.New(ctx, t.Width, t.Height), nil
	}

	a := app.New(cfg, w, win, app.NewProvider(cfg, win.Post), build)
	return win.Run(a)
}

// seed fills a world with one voxel, one chunk and an n*n grid of voxels.
func seed(n int) *world.World {
	w := world.New()
	w.SpawnVoxel(7)
	if _, err := w.SpawnChunk([]world.Voxel{1, 2, 3}); err != nil {
		log.Fatal(err)
	}
	for i := range n * n {
		w.SpawnVoxel(world.Voxel(100 + i))
	}
	return w
}
