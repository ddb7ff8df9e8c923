// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/wgpu"

	"github.com/gogpu/vox"
)

// Surface failure sentinels. Backends return these (or errors wrapping
// them) from Context.Draw; they are the gogpu/wgpu values so that wgpu
// errors classify without translation.
var (
	ErrSurfaceLost     = wgpu.ErrSurfaceLost
	ErrSurfaceOutdated = wgpu.ErrSurfaceOutdated
	ErrOutOfMemory     = wgpu.ErrOutOfMemory
	ErrTimeout         = wgpu.ErrTimeout
)

// SurfaceError is the closed classification of a render result.
type SurfaceError uint8

const (
	// SurfaceOK means the frame was presented (or skipped on purpose).
	SurfaceOK SurfaceError = iota

	// SurfaceLost means the surface must be reconfigured.
	SurfaceLost

	// SurfaceOutdated means the surface no longer matches the window.
	SurfaceOutdated

	// SurfaceOutOfMemory means the device ran out of memory.
	SurfaceOutOfMemory

	// SurfaceTimeout means acquiring the next frame timed out.
	SurfaceTimeout

	// SurfaceOther is any failure not covered above.
	SurfaceOther
)

// Classify maps an error returned by Context.Draw onto a SurfaceError.
func Classify(err error) SurfaceError {
	switch {
	case err == nil:
		return SurfaceOK
	case errors.Is(err, ErrSurfaceLost):
		return SurfaceLost
	case errors.Is(err, ErrSurfaceOutdated):
		return SurfaceOutdated
	case errors.Is(err, ErrOutOfMemory):
		return SurfaceOutOfMemory
	case errors.Is(err, ErrTimeout):
		return SurfaceTimeout
	default:
		return SurfaceOther
	}
}

// Class returns the taxonomy class of s.
func (s SurfaceError) Class() vox.Class {
	switch s {
	case SurfaceOK:
		return vox.ClassNone
	case SurfaceLost, SurfaceOutdated:
		return vox.ClassRecoverable
	case SurfaceOutOfMemory:
		return vox.ClassFatal
	default:
		return vox.ClassIgnorable
	}
}

// String returns the classification name.
func (s SurfaceError) String() string {
	switch s {
	case SurfaceOK:
		return "Ok"
	case SurfaceLost:
		return "Lost"
	case SurfaceOutdated:
		return "Outdated"
	case SurfaceOutOfMemory:
		return "OutOfMemory"
	case SurfaceTimeout:
		return "Timeout"
	case SurfaceOther:
		return "Other"
	default:
		return fmt.Sprintf("SurfaceError(%d)", uint8(s))
	}
}
