package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names a config file when -config is not given.
const EnvConfigPath = "FLYCAM_CONFIG"

// Load builds the effective config: defaults, then the first config file
// found by resolvePath, then CLI flags. The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	path, explicit := resolvePath()
	if path != "" {
		err := loadFromFile(cfg, path)
		switch {
		case err == nil:
		case !explicit && errors.Is(err, os.ErrNotExist):
			// Raced with a delete between Stat and Open; run on defaults.
		default:
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolvePath picks the config file: -config, then $FLYCAM_CONFIG, then the
// first existing file in the search list. explicit is false for the search
// list; a missing explicit file is an error.
func resolvePath() (path string, explicit bool) {
	if p := *flagConfig; p != "" {
		return p, true
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, true
	}
	return findConfigFile(), false
}

func findConfigFile() string {
	candidates := []string{
		"flycam.yaml",
		UserConfigPath(),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Flycam")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Flycam")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "flycam")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "flycam")
	}
}

// loadFromFile merges a YAML file over the values already in cfg. Keys the
// file omits keep their current value; unknown keys are rejected so a typo
// like "sensitivty" does not silently fall back to the default.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
