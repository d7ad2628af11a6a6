// Package config handles flycam configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds the free-fly camera tunables. Speeds are units per frame.
type CameraConfig struct {
	MoveSpeed     float32    `yaml:"move_speed"`
	AscendSpeed   float32    `yaml:"ascend_speed"`
	DescendSpeed  float32    `yaml:"descend_speed"`
	Sensitivity   float32    `yaml:"sensitivity"`
	MaxPitch      float32    `yaml:"max_pitch"` // 0 = unbounded
	FOV           float32    `yaml:"fov"`
	StartPosition [3]float32 `yaml:"start_position,flow"`
	StartYaw      float32    `yaml:"start_yaw"`
	StartPitch    float32    `yaml:"start_pitch"`
}

// ControlsConfig maps each movement action to an SDL key name.
type ControlsConfig struct {
	Forward     string `yaml:"forward"`
	Back        string `yaml:"back"`
	StrafeLeft  string `yaml:"strafe_left"`
	StrafeRight string `yaml:"strafe_right"`
	Ascend      string `yaml:"ascend"`
	Descend     string `yaml:"descend"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			MoveSpeed:     0.05,
			AscendSpeed:   0.05,
			DescendSpeed:  0.05,
			Sensitivity:   0.1,
			MaxPitch:      0,
			FOV:           45,
			StartPosition: [3]float32{0, 1, 5},
			StartYaw:      -90,
			StartPitch:    0,
		},
		Controls: ControlsConfig{
			Forward:     "W",
			Back:        "S",
			StrafeLeft:  "A",
			StrafeRight: "D",
			Ascend:      "Space",
			Descend:     "Left Shift",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the application cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Camera.MoveSpeed < 0 || c.Camera.AscendSpeed < 0 || c.Camera.DescendSpeed < 0 {
		errs = append(errs, errors.New("camera: speeds must not be negative"))
	}
	if c.Camera.MaxPitch < 0 {
		errs = append(errs, errors.New("camera: max_pitch must not be negative"))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov %v out of range (0, 180)", c.Camera.FOV))
	}
	for name, key := range map[string]string{
		"forward":      c.Controls.Forward,
		"back":         c.Controls.Back,
		"strafe_left":  c.Controls.StrafeLeft,
		"strafe_right": c.Controls.StrafeRight,
		"ascend":       c.Controls.Ascend,
		"descend":      c.Controls.Descend,
	} {
		if key == "" {
			errs = append(errs, fmt.Errorf("controls: %s is unbound", name))
		}
	}
	return errors.Join(errs...)
}
