// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a movement intent driven by keys.
type Direction uint8

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down

	directionCount
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// Controller accumulates pointer motion between frames.
//
// ProcessMotion must be fed from the device-level (raw) motion channel:
// raw deltas are not subject to OS pointer acceleration or clamping at the
// screen edges. Consume returns and clears the accumulated deltas in one
// step, so motion arriving later lands in the next frame.
type Controller struct {
	mu     sync.Mutex
	dx, dy float64
	moving [directionCount]bool
}

// NewController creates a controller with no pending motion.
func NewController() *Controller {
	return &Controller{}
}

// ProcessMotion adds a raw pointer delta to the pending state.
func (c *Controller) ProcessMotion(dx, dy float64) {
	c.mu.Lock()
	c.dx += dx
	c.dy += dy
	c.mu.Unlock()
}

// Pending returns the accumulated deltas without clearing them.
func (c *Controller) Pending() (dx, dy float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dx, c.dy
}

// Consume returns the accumulated deltas and zeroes both accumulators.
func (c *Controller) Consume() (dx, dy float64) {
	c.mu.Lock()
	dx, dy = c.dx, c.dy
	c.dx, c.dy = 0, 0
	c.mu.Unlock()
	return dx, dy
}

// SetMove records whether movement in direction d is held.
func (c *Controller) SetMove(d Direction, active bool) {
	if d >= directionCount {
		return
	}
	c.mu.Lock()
	c.moving[d] = active
	c.mu.Unlock()
}

// Movement returns the held movement as a camera-local vector:
// X is right, Y is up, Z is forward. Opposite keys cancel out.
func (c *Controller) Movement() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var v mgl32.Vec3
	if c.moving[Forward] {
		v[2]++
	}
	if c.moving[Backward] {
		v[2]--
	}
	if c.moving[Right] {
		v[0]++
	}
	if c.moving[Left] {
		v[0]--
	}
	if c.moving[Up] {
		v[1]++
	}
	if c.moving[Down] {
		v[1]--
	}
	return v
}
