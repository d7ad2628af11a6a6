// Package world assembles the demo scene: a marker grid, the camera and the
// rig that flies it.
package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/flycam/internal/config"
	"github.com/Faultbox/flycam/internal/engine/camera"
	"github.com/Faultbox/flycam/internal/rig"
	"github.com/Faultbox/flycam/internal/scene"
	"github.com/Faultbox/flycam/pkg/math"
)

// World owns the scene tree and the camera the rig drives.
type World struct {
	Root   *scene.Node
	Camera *camera.FreeCamera
	Rig    *rig.FlyCamera
}

// New builds the world from the camera settings. gridHalf is the number of
// markers on each side of the origin along X and Z.
func New(cfg config.CameraConfig, gridHalf int, log *zap.Logger) *World {
	cam := camera.NewFreeCamera()
	cam.Pos = math.Vec3{X: cfg.StartPosition[0], Y: cfg.StartPosition[1], Z: cfg.StartPosition[2]}
	cam.Yaw = cfg.StartYaw
	cam.Pitch = cfg.StartPitch
	if cfg.FOV > 0 {
		cam.FOV = cfg.FOV
	}
	cam.UpdateVectors()

	root := scene.NewNode("world")

	grid := scene.NewNode("grid")
	root.AddChild(grid)
	for x := -gridHalf; x <= gridHalf; x++ {
		for z := -gridHalf; z <= gridHalf; z++ {
			marker := scene.NewNode(fmt.Sprintf("marker[%d,%d]", x, z))
			marker.SetPosition(math.Vec3{X: float32(x), Z: float32(z)})
			grid.AddChild(marker)
		}
	}

	r := rig.New(cam,
		rig.WithSpeeds(cfg.MoveSpeed, cfg.AscendSpeed, cfg.DescendSpeed),
		rig.WithSensitivity(cfg.Sensitivity),
		rig.WithPitchLimit(cfg.MaxPitch),
		rig.WithLogger(log),
	)
	r.SetPosition(cam.Pos)
	root.AddChild(r.Node)

	return &World{
		Root:   root,
		Camera: cam,
		Rig:    r,
	}
}

// Update advances the world by one frame.
func (w *World) Update(in rig.InputSource) {
	w.Rig.Update(in)
}

// Close destroys the scene tree.
func (w *World) Close() {
	w.Root.Destroy()
}
