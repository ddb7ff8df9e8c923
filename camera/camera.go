// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package camera turns raw pointer motion into a first-person view.
//
// Controller is the per-frame accumulator written by input handlers.
// Camera owns the persistent orientation and position and derives the
// view and projection matrices (github.com/go-gl/mathgl) once per update.
package camera

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// maxPitch keeps the view direction away from the world up axis.
const maxPitch = 89.0 * math.Pi / 180.0

// Camera is a yaw/pitch first-person camera.
type Camera struct {
	// Position is the eye position in world units.
	Position mgl32.Vec3

	// Yaw is the rotation around the world Y axis, in radians.
	// Zero looks down negative Z.
	Yaw float32

	// Pitch is the rotation above the horizon, in radians, clamped to ±89°.
	Pitch float32

	// Sensitivity converts raw pointer units to radians.
	Sensitivity float32

	// Speed is the translation speed in world units per second.
	Speed float32

	// FovY is the vertical field of view in radians.
	FovY float32

	// Near and Far are the clip plane distances.
	Near, Far float32
}

// Default returns a camera placed above and behind the origin.
func Default() Camera {
	return Camera{
		Position:    mgl32.Vec3{0, 4, 12},
		Pitch:       -0.3,
		Sensitivity: 0.002,
		Speed:       6,
		FovY:        mgl32.DegToRad(60),
		Near:        0.1,
		Far:         500,
	}
}

// Update applies a consumed pointer delta and the held movement over dt.
// Positive dx turns right, positive dy looks down (screen coordinates).
func (c *Camera) Update(dx, dy float64, move mgl32.Vec3, dt time.Duration) {
	c.Yaw += float32(dx) * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch-float32(dy)*c.Sensitivity, -maxPitch, maxPitch)

	if move.LenSqr() == 0 || dt <= 0 {
		return
	}
	forward := c.flatForward()
	right := forward.Cross(mgl32.Vec3{0, 1, 0})
	dir := right.Mul(move.X()).Add(mgl32.Vec3{0, move.Y(), 0}).Add(forward.Mul(move.Z()))
	if dir.LenSqr() == 0 {
		return
	}
	step := c.Speed * float32(dt.Seconds())
	c.Position = c.Position.Add(dir.Normalize().Mul(step))
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(c.Yaw))
	sp, cp := math.Sincos(float64(c.Pitch))
	return mgl32.Vec3{float32(sy * cp), float32(sp), float32(-cy * cp)}
}

// flatForward is Forward projected onto the ground plane.
func (c *Camera) flatForward() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(c.Yaw))
	return mgl32.Vec3{float32(sy), 0, float32(-cy)}
}

// View returns the world-to-view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
}

// Projection returns a perspective projection for the aspect ratio
// width/height. A non-positive aspect is treated as 1.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns Projection(aspect) * View().
func (c *Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}
