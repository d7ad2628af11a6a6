package camera

import (
	"testing"

	"github.com/Faultbox/flycam/pkg/math"
)

const eps = 1e-5

func TestUpdateVectorsZeroAngles(t *testing.T) {
	c := &FreeCamera{Up: math.Vec3{Y: 1}}
	c.UpdateVectors()

	want := math.Vec3{X: 1, Y: 0, Z: 0}
	if !c.Front.ApproxEqual(want, eps) {
		t.Errorf("Front = %v, want %v", c.Front, want)
	}
}

func TestNewFreeCameraLooksDownNegativeZ(t *testing.T) {
	c := NewFreeCamera()

	want := math.Vec3{X: 0, Y: 0, Z: -1}
	if !c.Front.ApproxEqual(want, eps) {
		t.Errorf("Front = %v, want %v", c.Front, want)
	}
	if c.Up != (math.Vec3{Y: 1}) {
		t.Errorf("Up = %v, want (0, 1, 0)", c.Up)
	}
}

func TestUpdateVectorsPitchUp(t *testing.T) {
	c := &FreeCamera{Yaw: 0, Pitch: 90}
	c.UpdateVectors()

	if !c.Front.ApproxEqual(math.Vec3{Y: 1}, eps) {
		t.Errorf("Front = %v, want straight up", c.Front)
	}
}

func TestUpdateVectorsPastPoleFlips(t *testing.T) {
	// No clamping: pitch 120 points backwards over the top.
	c := &FreeCamera{Yaw: 0, Pitch: 120}
	c.UpdateVectors()

	if c.Front.X >= 0 {
		t.Errorf("Front.X = %v, want negative after passing the pole", c.Front.X)
	}
	if l := c.Front.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Front length = %v, want ~1", l)
	}
}

func TestViewMatrixMovesCameraToOrigin(t *testing.T) {
	c := NewFreeCamera()
	c.Pos = math.Vec3{X: 3, Y: 4, Z: 5}

	m := c.ViewMatrix()
	p := c.Pos
	got := math.Vec3{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
	if !got.ApproxEqual(math.Vec3{}, 1e-4) {
		t.Errorf("view(Pos) = %v, want origin", got)
	}
}

func TestProjection(t *testing.T) {
	c := NewFreeCamera()
	m := c.Projection(16.0 / 9.0)
	if m[11] != -1 {
		t.Errorf("Projection [11] = %v, want -1", m[11])
	}
}
