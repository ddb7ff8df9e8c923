// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shader holds the WGSL sources used by GPU backends.
package shader

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/naga"

	"github.com/gogpu/vox/internal/cache"
)

// Voxel draws instanced cubes. Entry points: vs_main, fs_main.
// Binding 0 of group 0 is a uniform of UniformSize bytes: a column-major
// mat4x4 view-projection followed by a vec4 (columns, spacing, 0, 0).
//
//go:embed voxel.wgsl
var Voxel string

// Entry point names of Voxel.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// UniformSize is the size in bytes of the Voxel uniform block.
const UniformSize = 16*4 + 4*4

// VerticesPerInstance is the number of vertices drawn per cube.
const VerticesPerInstance = 36

// ErrCompile is returned when WGSL fails to compile.
var ErrCompile = errors.New("shader: compile failed")

// compiled holds SPIR-V by WGSL source, so a rebuilt GPU context does not
// recompile.
var compiled = cache.New[string, []uint32](16)

// Compile translates WGSL to SPIR-V words. Results are cached by source;
// the returned slice is the caller's.
func Compile(label, wgsl string) ([]uint32, error) {
	words, err := compiled.GetOrCreate(wgsl, func() ([]uint32, error) {
		return compile(label, wgsl)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(words), nil
}

// CacheStats returns statistics of the compile cache.
func CacheStats() cache.Stats {
	return compiled.Stats()
}

func compile(label, wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCompile, label, err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %s: SPIR-V size %d is not a multiple of 4", ErrCompile, label, len(spirvBytes))
	}

	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
