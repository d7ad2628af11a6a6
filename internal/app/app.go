// Package app runs the flycam demo: window, input, world and renderer.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/flycam/internal/config"
	"github.com/Faultbox/flycam/internal/engine/input"
	"github.com/Faultbox/flycam/internal/engine/renderer"
	"github.com/Faultbox/flycam/internal/engine/window"
	"github.com/Faultbox/flycam/internal/logger"
	"github.com/Faultbox/flycam/internal/world"
)

// gridHalf markers on each side of the origin.
const gridHalf = 10

// App is the running application.
type App struct {
	cfg      *config.Config
	running  bool
	log      *zap.Logger
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	world    *world.World
}

// New opens the window and builds the world.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	bindings, err := input.BindingsFromConfig(cfg.Controls)
	if err != nil {
		return nil, fmt.Errorf("controls: %w", err)
	}

	a.window, err = window.New(window.Config{
		Title:      "flycam",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created.
	fbWidth, fbHeight := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:  fbWidth,
		Height: fbHeight,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// Park the cursor so the first Update reads no motion.
	w, h := a.window.GetSize()
	a.window.WarpMouse(w/2, h/2)

	a.input = input.New(a.window, bindings)
	a.world = world.New(cfg.Camera, gridHalf, logger.Named("rig"))

	a.log.Debug("scene built", zap.Int("nodes", len(a.world.Root.ChildrenRecursive())+1))
	logger.Sugar.Debugf("scene hierarchy:\n%s", a.world.Root.HierarchyString())
	return a, nil
}

// Run drives one rig update and one draw per frame until quit or Escape.
func (a *App) Run() error {
	a.running = true

	frames := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		if a.input.Update() {
			break
		}

		for _, event := range a.input.Events() {
			if event.Type == input.EventWindowResize {
				a.renderer.Resize(a.window.DrawableSize())
			}
		}
		if a.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			a.running = false
		}

		a.world.Update(a.input)

		a.renderer.Begin()
		a.renderer.DrawScene(a.world.Camera, a.world.Root)
		a.renderer.End()

		a.window.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("frames", frames),
				zap.Float32("yaw", a.world.Camera.Yaw),
				zap.Float32("pitch", a.world.Camera.Pitch),
			)
			frames = 0
			fpsTimer = time.Now()
		}
	}

	a.running = false
	return nil
}

// Close releases the world, renderer and window.
func (a *App) Close() {
	a.log.Info("shutting down")

	if a.world != nil {
		a.world.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
