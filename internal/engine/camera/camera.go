// Package camera provides the view state a free-fly rig drives.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/flycam/pkg/math"
)

// FreeCamera is a first-person camera record.
//
// The host owns it; controllers hold a pointer and mutate it in place.
type FreeCamera struct {
	Pos   math.Vec3
	Front math.Vec3 // unit forward direction
	Up    math.Vec3 // unit up direction

	// Orientation in degrees, accumulated from mouse input.
	Yaw   float32
	Pitch float32

	// Projection
	FOV  float32 // vertical field of view, degrees
	Near float32
	Far  float32
}

// NewFreeCamera creates a camera at the origin looking down -Z.
func NewFreeCamera() *FreeCamera {
	c := &FreeCamera{
		Up:    math.Vec3{X: 0, Y: 1, Z: 0},
		Yaw:   -90,
		Pitch: 0,
		FOV:   45,
		Near:  0.1,
		Far:   1000,
	}
	c.UpdateVectors()
	return c
}

// UpdateVectors rebuilds Front from Yaw and Pitch.
// Pitch is not clamped; past ±90 degrees the view flips over the pole.
func (c *FreeCamera) UpdateVectors() {
	yaw := math.DegToRad(c.Yaw)
	pitch := math.DegToRad(c.Pitch)

	direction := math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = direction.Normalize()
}

// Target returns the point one unit in front of the camera.
func (c *FreeCamera) Target() math.Vec3 {
	return c.Pos.Add(c.Front)
}

// ViewMatrix returns the view matrix for this camera.
func (c *FreeCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Pos, c.Target(), c.Up)
}

// Projection returns the perspective projection for the given aspect ratio.
func (c *FreeCamera) Projection(aspect float32) math.Mat4 {
	return math.Perspective(math.DegToRad(c.FOV), aspect, c.Near, c.Far)
}
