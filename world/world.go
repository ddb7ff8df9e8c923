// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package world

import (
	"fmt"
	"iter"
)

// Handle is a stable reference to a spawned entity.
// Handles are never reused within one World.
type Handle uint32

// InvalidHandle is never returned by a spawn call.
const InvalidHandle Handle = 0

// slot is one entry of the append-only store.
type slot struct {
	entity Entity
	alive  bool
}

// World owns an ordered collection of entities.
//
// Entities are appended by SpawnVoxel and SpawnChunk and removed only by
// Despawn, which leaves a tombstone so that other handles keep resolving.
type World struct {
	slots  []slot
	live   int
	voxels int
}

// New creates an empty world.
func New() *World {
	return &World{}
}

// SpawnVoxel appends a single voxel and returns its handle.
func (w *World) SpawnVoxel(id Voxel) Handle {
	return w.spawn(NewVoxel(id))
}

// SpawnChunk appends a chunk of voxels in the given order and returns its
// handle. An empty sequence is rejected with ErrEmptyChunk and nothing is
// appended.
func (w *World) SpawnChunk(voxels []Voxel) (Handle, error) {
	e, err := NewChunk(voxels...)
	if err != nil {
		return InvalidHandle, fmt.Errorf("%w: spawn at index %d", err, len(w.slots))
	}
	return w.spawn(e), nil
}

// Spawn appends an already-built entity.
func (w *World) Spawn(e Entity) Handle {
	return w.spawn(e)
}

func (w *World) spawn(e Entity) Handle {
	w.slots = append(w.slots, slot{entity: e, alive: true})
	w.live++
	w.voxels += e.Len()
	return Handle(len(w.slots))
}

// Get returns the entity for h.
// The second result is false for unknown or despawned handles.
func (w *World) Get(h Handle) (Entity, bool) {
	s, ok := w.slot(h)
	if !ok || !s.alive {
		return Entity{}, false
	}
	return s.entity, true
}

// Despawn removes the entity for h. It reports whether an entity was removed.
func (w *World) Despawn(h Handle) bool {
	s, ok := w.slot(h)
	if !ok || !s.alive {
		return false
	}
	s.alive = false
	w.live--
	w.voxels -= s.entity.Len()
	s.entity = Entity{}
	return true
}

func (w *World) slot(h Handle) (*slot, bool) {
	if h == InvalidHandle || int(h) > len(w.slots) {
		return nil, false
	}
	return &w.slots[h-1], true
}

// Len returns the number of live entities.
func (w *World) Len() int { return w.live }

// VoxelCount returns the number of voxels across all live entities.
func (w *World) VoxelCount() int { return w.voxels }

// All returns the live entities with their handles in insertion order.
//
// The sequence is lazy and restartable: each range over it starts again
// from the first entity. Entities spawned while ranging are not visited.
func (w *World) All() iter.Seq2[Handle, Entity] {
	return func(yield func(Handle, Entity) bool) {
		n := len(w.slots)
		for i := 0; i < n; i++ {
			s := w.slots[i]
			if !s.alive {
				continue
			}
			if !yield(Handle(i+1), s.entity) {
				return
			}
		}
	}
}

// Entities returns the live entities in insertion order.
func (w *World) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range w.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// Voxels returns every voxel of every live entity, flattened in insertion
// order. The renderer uses it to lay out instances.
func (w *World) Voxels() iter.Seq[Voxel] {
	return func(yield func(Voxel) bool) {
		for _, e := range w.All() {
			if e.kind == KindVoxel {
				if !yield(e.voxel) {
					return
				}
				continue
			}
			for _, v := range e.voxels {
				if !yield(v) {
					return
				}
			}
		}
	}
}
