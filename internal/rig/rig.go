// Package rig binds a free-fly camera to keyboard and mouse input and mirrors
// the camera's position into a scene graph node.
package rig

import (
	"go.uber.org/zap"

	"github.com/Faultbox/flycam/internal/engine/camera"
	"github.com/Faultbox/flycam/internal/scene"
	"github.com/Faultbox/flycam/pkg/math"
)

// Defaults for a new FlyCamera. Speeds are world units per frame.
const (
	DefaultMoveSpeed    = 0.05
	DefaultAscendSpeed  = 0.05
	DefaultDescendSpeed = 0.05
	DefaultSensitivity  = 0.1
)

// FlyCamera is a first-person free-fly controller. It is a scene node whose
// position is re-set to the camera's every frame; children are shifted by that
// position each time, as scene.Node.SetPosition does.
type FlyCamera struct {
	*scene.Node

	// Camera is driven by the rig but owned elsewhere; it must outlive the rig.
	Camera *camera.FreeCamera

	MoveSpeed    float32
	AscendSpeed  float32
	DescendSpeed float32

	// Sensitivity scales cursor offsets (pixels) into degrees.
	Sensitivity float32

	// MaxPitch clamps |Pitch| when positive. Zero leaves pitch unbounded.
	MaxPitch float32

	log *zap.Logger
}

// Option configures a FlyCamera.
type Option func(*FlyCamera)

// WithSpeeds sets the horizontal, ascend and descend speeds.
func WithSpeeds(move, ascend, descend float32) Option {
	return func(f *FlyCamera) {
		f.MoveSpeed = move
		f.AscendSpeed = ascend
		f.DescendSpeed = descend
	}
}

// WithSensitivity sets the mouse sensitivity.
func WithSensitivity(s float32) Option {
	return func(f *FlyCamera) {
		f.Sensitivity = s
	}
}

// WithPitchLimit clamps pitch to [-limit, limit] degrees.
func WithPitchLimit(limit float32) Option {
	return func(f *FlyCamera) {
		f.MaxPitch = limit
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *zap.Logger) Option {
	return func(f *FlyCamera) {
		if log != nil {
			f.log = log
		}
	}
}

// New creates a rig bound to cam for its whole lifetime.
func New(cam *camera.FreeCamera, opts ...Option) *FlyCamera {
	f := &FlyCamera{
		Node:         scene.NewNode("camera"),
		Camera:       cam,
		MoveSpeed:    DefaultMoveSpeed,
		AscendSpeed:  DefaultAscendSpeed,
		DescendSpeed: DefaultDescendSpeed,
		Sensitivity:  DefaultSensitivity,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Update samples input once and advances the camera. Call it once per frame.
func (f *FlyCamera) Update(in InputSource) {
	f.keyboardInput(in)
	f.mouseInput(in)
}

// keyboardInput moves the camera from held keys, then pushes the new position
// through the scene graph.
func (f *FlyCamera) keyboardInput(in InputSource) {
	cam := f.Camera

	// Horizontal movement ignores pitch.
	forward := cam.Front.Flatten()
	right := forward.Cross(cam.Up).Normalize()

	if in.IsKeyDown(ActionForward) {
		cam.Pos = cam.Pos.Add(forward.Scale(f.MoveSpeed))
	}
	if in.IsKeyDown(ActionBack) {
		cam.Pos = cam.Pos.Sub(forward.Scale(f.MoveSpeed))
	}
	if in.IsKeyDown(ActionStrafeLeft) {
		cam.Pos = cam.Pos.Sub(right.Scale(f.MoveSpeed))
	}
	if in.IsKeyDown(ActionStrafeRight) {
		cam.Pos = cam.Pos.Add(right.Scale(f.MoveSpeed))
	}
	if in.IsKeyDown(ActionAscend) {
		cam.Pos = cam.Pos.Add(cam.Up.Scale(f.AscendSpeed))
	}
	if in.IsKeyDown(ActionDescend) {
		cam.Pos = cam.Pos.Sub(cam.Up.Scale(f.DescendSpeed))
	}

	f.SetPosition(cam.Pos)
}

// mouseInput turns the cursor's distance from the viewport center into yaw and
// pitch, then warps the cursor back to the center. A cursor outside the
// viewport leaves orientation and cursor untouched.
func (f *FlyCamera) mouseInput(in InputSource) {
	x, y := in.CursorPos()
	w, h := in.ViewportSize()
	width, height := float64(w), float64(h)

	if x < 0 || x > width || y < 0 || y > height {
		f.log.Debug("cursor outside viewport",
			zap.Float64("x", x),
			zap.Float64("y", y),
		)
		return
	}

	// Whole-pixel center: backends warp to integer positions, and a half-pixel
	// center would read as motion on every frame of an odd-sized window.
	cx, cy := float64(w/2), float64(h/2)
	in.SetCursorPos(cx, cy)

	// Screen Y grows downward; moving the mouse down lowers pitch.
	offset := math.Vec2{
		X: float32(x - cx),
		Y: float32(cy - y),
	}.Scale(f.Sensitivity)

	cam := f.Camera
	cam.Yaw += offset.X
	cam.Pitch += offset.Y
	if f.MaxPitch > 0 {
		cam.Pitch = math.Clamp(cam.Pitch, -f.MaxPitch, f.MaxPitch)
	}
	cam.UpdateVectors()

	if offset != (math.Vec2{}) {
		f.log.Debug("camera turned",
			zap.Float32("yaw", cam.Yaw),
			zap.Float32("pitch", cam.Pitch),
		)
	}
}
