// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyChunk is returned when a chunk is built from zero voxels.
var ErrEmptyChunk = errors.New("world: chunk must contain at least one voxel")

// Voxel is an opaque 64-bit voxel identifier. Position and material
// encoding are left to the caller.
type Voxel uint64

// String returns "Voxel(id)".
func (v Voxel) String() string {
	return fmt.Sprintf("Voxel(%d)", uint64(v))
}

// Kind is the shape of an Entity.
type Kind uint8

const (
	// KindVoxel is a single voxel.
	KindVoxel Kind = iota

	// KindChunk is a non-empty ordered group of voxels.
	KindChunk
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindVoxel:
		return "Voxel"
	case KindChunk:
		return "Chunk"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Entity is either a single Voxel or a Chunk of voxels.
// The zero value is Voxel(0).
type Entity struct {
	kind   Kind
	voxel  Voxel
	voxels []Voxel
}

// NewVoxel returns a single-voxel entity.
func NewVoxel(id Voxel) Entity {
	return Entity{kind: KindVoxel, voxel: id}
}

// NewChunk returns a chunk entity holding a copy of voxels in order.
func NewChunk(voxels ...Voxel) (Entity, error) {
	if len(voxels) == 0 {
		return Entity{}, ErrEmptyChunk
	}
	return Entity{kind: KindChunk, voxels: append([]Voxel(nil), voxels...)}, nil
}

// Kind returns the entity shape.
func (e Entity) Kind() Kind { return e.kind }

// Voxel returns the identifier of a single-voxel entity.
// The second result is false for chunks.
func (e Entity) Voxel() (Voxel, bool) {
	if e.kind != KindVoxel {
		return 0, false
	}
	return e.voxel, true
}

// Voxels returns the voxels of the entity in order: a one-element slice for
// a voxel, a copy of the members for a chunk.
func (e Entity) Voxels() []Voxel {
	if e.kind == KindVoxel {
		return []Voxel{e.voxel}
	}
	return append([]Voxel(nil), e.voxels...)
}

// Len returns the number of voxels the entity covers.
func (e Entity) Len() int {
	if e.kind == KindVoxel {
		return 1
	}
	return len(e.voxels)
}

// Equal reports whether e and o have the same shape and voxels in the
// same order.
func (e Entity) Equal(o Entity) bool {
	if e.kind != o.kind {
		return false
	}
	if e.kind == KindVoxel {
		return e.voxel == o.voxel
	}
	if len(e.voxels) != len(o.voxels) {
		return false
	}
	for i := range e.voxels {
		if e.voxels[i] != o.voxels[i] {
			return false
		}
	}
	return true
}

// String formats the entity as Voxel(7) or Chunk([Voxel(1) Voxel(2)]).
func (e Entity) String() string {
	if e.kind == KindVoxel {
		return e.voxel.String()
	}
	var b strings.Builder
	b.WriteString("Chunk([")
	for i, v := range e.voxels {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteString("])")
	return b.String()
}
