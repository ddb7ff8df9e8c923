// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraPitchClamped(t *testing.T) {
	c := Default()
	c.Update(0, -1e9, mgl32.Vec3{}, 0)
	if c.Pitch > maxPitch+1e-6 {
		t.Errorf("Pitch = %v, want <= %v", c.Pitch, maxPitch)
	}
	c.Update(0, 1e9, mgl32.Vec3{}, 0)
	if c.Pitch < -maxPitch-1e-6 {
		t.Errorf("Pitch = %v, want >= %v", c.Pitch, -maxPitch)
	}
}

func TestCameraYawFromMotion(t *testing.T) {
	c := Default()
	c.Yaw = 0
	c.Sensitivity = 0.01
	c.Update(100, 0, mgl32.Vec3{}, 0)
	if !mgl32.FloatEqual(c.Yaw, 1) {
		t.Errorf("Yaw = %v, want 1", c.Yaw)
	}
}

func TestCameraForwardAtRest(t *testing.T) {
	c := Camera{}
	f := c.Forward()
	if !f.ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Forward() = %v, want (0, 0, -1)", f)
	}
}

func TestCameraMovesForward(t *testing.T) {
	c := Camera{Speed: 2}
	c.Update(0, 0, mgl32.Vec3{0, 0, 1}, time.Second)
	if !c.Position.ApproxEqual(mgl32.Vec3{0, 0, -2}) {
		t.Errorf("Position = %v, want (0, 0, -2)", c.Position)
	}
}

func TestCameraStrafeRight(t *testing.T) {
	c := Camera{Speed: 1}
	c.Update(0, 0, mgl32.Vec3{1, 0, 0}, 500*time.Millisecond)
	if !c.Position.ApproxEqual(mgl32.Vec3{0.5, 0, 0}) {
		t.Errorf("Position = %v, want (0.5, 0, 0)", c.Position)
	}
}

func TestCameraDiagonalNormalized(t *testing.T) {
	c := Camera{Speed: 1}
	c.Update(0, 0, mgl32.Vec3{1, 0, 1}, time.Second)
	if l := c.Position.Len(); math.Abs(float64(l)-1) > 1e-5 {
		t.Errorf("|Position| = %v, want 1", l)
	}
}

func TestCameraNoMoveWithoutTime(t *testing.T) {
	c := Camera{Speed: 10}
	c.Update(0, 0, mgl32.Vec3{0, 0, 1}, 0)
	if c.Position != (mgl32.Vec3{}) {
		t.Errorf("Position = %v, want origin", c.Position)
	}
}

func TestViewProjectionIdentityChecks(t *testing.T) {
	c := Default()
	vp := c.ViewProjection(16.0 / 9.0)
	want := c.Projection(16.0 / 9.0).Mul4(c.View())
	if !vp.ApproxEqual(want) {
		t.Error("ViewProjection() != Projection() * View()")
	}
	if !c.Projection(0).ApproxEqual(c.Projection(1)) {
		t.Error("Projection(0) should fall back to aspect 1")
	}
}
