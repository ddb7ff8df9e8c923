// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestProcessMotionAdditive(t *testing.T) {
	split := NewController()
	split.ProcessMotion(1, 2)
	split.ProcessMotion(3, -1)

	single := NewController()
	single.ProcessMotion(4, 1)

	sx, sy := split.Consume()
	ox, oy := single.Consume()
	if sx != ox || sy != oy {
		t.Errorf("split Consume() = (%v, %v), single Consume() = (%v, %v)", sx, sy, ox, oy)
	}
	if sx != 4 || sy != 1 {
		t.Errorf("Consume() = (%v, %v), want (4, 1)", sx, sy)
	}
}

func TestProcessMotionOrderIndependent(t *testing.T) {
	a := NewController()
	a.ProcessMotion(0.5, -2)
	a.ProcessMotion(-1.25, 3)

	b := NewController()
	b.ProcessMotion(-1.25, 3)
	b.ProcessMotion(0.5, -2)

	ax, ay := a.Consume()
	bx, by := b.Consume()
	if ax != bx || ay != by {
		t.Errorf("order changed result: (%v, %v) vs (%v, %v)", ax, ay, bx, by)
	}
}

func TestConsumeZeroes(t *testing.T) {
	c := NewController()
	c.ProcessMotion(5, 6)

	if dx, dy := c.Pending(); dx != 5 || dy != 6 {
		t.Errorf("Pending() = (%v, %v), want (5, 6)", dx, dy)
	}
	c.Consume()
	if dx, dy := c.Pending(); dx != 0 || dy != 0 {
		t.Errorf("Pending() after Consume = (%v, %v), want (0, 0)", dx, dy)
	}
	if dx, dy := c.Consume(); dx != 0 || dy != 0 {
		t.Errorf("second Consume() = (%v, %v), want (0, 0)", dx, dy)
	}
}

func TestConsumeDoesNotLoseConcurrentMotion(t *testing.T) {
	c := NewController()
	const n = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range n {
			c.ProcessMotion(1, 1)
		}
	}()

	var total float64
	for range 100 {
		dx, _ := c.Consume()
		total += dx
	}
	wg.Wait()
	dx, _ := c.Consume()
	total += dx

	if total != n {
		t.Errorf("total consumed = %v, want %d", total, n)
	}
}

func TestMovement(t *testing.T) {
	tests := []struct {
		name string
		held []Direction
		want mgl32.Vec3
	}{
		{"none", nil, mgl32.Vec3{}},
		{"forward", []Direction{Forward}, mgl32.Vec3{0, 0, 1}},
		{"forward+backward cancel", []Direction{Forward, Backward}, mgl32.Vec3{}},
		{"strafe right up", []Direction{Right, Up}, mgl32.Vec3{1, 1, 0}},
		{"left down back", []Direction{Left, Down, Backward}, mgl32.Vec3{-1, -1, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			for _, d := range tt.held {
				c.SetMove(d, true)
			}
			if got := c.Movement(); got != tt.want {
				t.Errorf("Movement() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetMoveRelease(t *testing.T) {
	c := NewController()
	c.SetMove(Forward, true)
	c.SetMove(Forward, false)
	c.SetMove(Direction(200), true)
	if got := c.Movement(); got != (mgl32.Vec3{}) {
		t.Errorf("Movement() = %v, want zero", got)
	}
}

func TestDirectionString(t *testing.T) {
	if Forward.String() != "Forward" || Down.String() != "Down" || Direction(99).String() != "Unknown" {
		t.Errorf("Direction strings = %q, %q, %q", Forward, Down, Direction(99))
	}
}
