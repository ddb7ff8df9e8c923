// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/vox/render"
	"github.com/gogpu/vox/world"
)

// ExampleNew drives a Renderer over the null backend, which needs no GPU.
func ExampleNew() {
	ctx, err := render.Open("null", render.Target{Width: 320, Height: 240})
	if err != nil {
		fmt.Println("open failed:", err)
		return
	}

	w := world.New()
	w.SpawnVoxel(7)
	_, _ = w.SpawnChunk([]world.Voxel{1, 2, 3})

	r := render.New(ctx, 320, 240)
	defer r.Release()
	r.Attach(nil, w)

	r.Update(16 * time.Millisecond)
	fmt.Println(r.Render(), r.Frames())

	// Output:
	// Ok 1
}

// ExampleClassify shows how backend errors map onto the closed set of
// surface outcomes.
func ExampleClassify() {
	for _, err := range []error{
		nil,
		render.ErrSurfaceLost,
		fmt.Errorf("acquire: %w", render.ErrSurfaceOutdated),
		render.ErrOutOfMemory,
		render.ErrTimeout,
		errors.New("driver reset"),
	} {
		fmt.Println(render.Classify(err))
	}

	// Output:
	// Ok
	// Lost
	// Outdated
	// OutOfMemory
	// Timeout
	// Other
}
