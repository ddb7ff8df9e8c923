// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package world holds the voxel entity model.
//
// An Entity is a tagged value with exactly two shapes: a single Voxel, or a
// Chunk holding a non-empty ordered sequence of voxels. Chunks hold voxels
// only, so nesting depth is always one.
//
// World stores entities in insertion order and hands out stable handles:
//
//	w := world.New()
//	w.SpawnVoxel(7)
//	h, err := w.SpawnChunk([]world.Voxel{1, 2, 3})
//	for e := range w.Entities() {
//	    fmt.Println(e) // Voxel(7), then Chunk([Voxel(1) Voxel(2) Voxel(3)])
//	}
//
// World is single-owner: it must not be mutated concurrently, including
// from inside a range loop over its iterators.
package world
