// Package config loads the showroom camera's public configuration surface
// from a YAML file: perspective parameters, input toggles, and the tuning
// values for focus and zoom behavior.
package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings is the externally tunable configuration of a showroom camera and
// its host.
type Settings struct {
	// TickRate is the host frame rate in frames per second.
	TickRate float64 `yaml:"tickRate"`

	// Profiling toggles per-second tick-rate and memory logging on the host.
	Profiling bool `yaml:"profiling"`

	// Fov is the vertical field of view in radians.
	Fov float32 `yaml:"fov"`

	// MinZ is the near clipping plane distance.
	MinZ float32 `yaml:"minZ"`

	// MaxZ is the far clipping plane distance.
	MaxZ float32 `yaml:"maxZ"`

	// EnableMouseWheel toggles wheel-zoom input while arc-rotate is active.
	EnableMouseWheel bool `yaml:"enableMouseWheel"`

	// FocusDepth is the default distance ahead of a matchmove camera used to
	// synthesize its focus point.
	FocusDepth float32 `yaml:"focusDepth"`

	// WheelSensitivity is the default wheel-zoom multiplier.
	WheelSensitivity float32 `yaml:"wheelSensitivity"`

	// ZoomConvergenceRate is the per-tick exponential approach rate for
	// driven zoom.
	ZoomConvergenceRate float32 `yaml:"zoomConvergenceRate"`
}

// Default returns the settings used when no configuration file is supplied.
func Default() Settings {
	return Settings{
		TickRate:            60,
		Fov:                 45.0 * (math.Pi / 180.0),
		MinZ:                0.1,
		MaxZ:                100.0,
		EnableMouseWheel:    true,
		FocusDepth:          1,
		WheelSensitivity:    0.01,
		ZoomConvergenceRate: 0.05,
	}
}

// Load reads settings from a YAML file. Omitted fields keep their defaults.
//
// Parameters:
//   - path: path to the YAML settings file
//
// Returns:
//   - Settings: the loaded settings
//   - error: if the file cannot be read, parsed, or validated
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, errors.Wrapf(err, "cannot read settings file %q", path)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, errors.Wrapf(err, "cannot parse settings file %q", path)
	}
	if err := settings.Validate(); err != nil {
		return settings, errors.Wrapf(err, "invalid settings in %q", path)
	}
	return settings, nil
}

// Validate checks the settings for values the camera cannot operate with.
//
// Returns:
//   - error: describing the first invalid field found, or nil
func (s Settings) Validate() error {
	if s.TickRate <= 0 {
		return errors.Errorf("tickRate %v must be positive", s.TickRate)
	}
	if s.Fov <= 0 || s.Fov >= math.Pi {
		return errors.Errorf("fov %v must be in (0, pi)", s.Fov)
	}
	if s.MinZ <= 0 {
		return errors.Errorf("minZ %v must be positive", s.MinZ)
	}
	if s.MaxZ <= s.MinZ {
		return errors.Errorf("maxZ %v must exceed minZ %v", s.MaxZ, s.MinZ)
	}
	if s.FocusDepth <= 0 {
		return errors.Errorf("focusDepth %v must be positive", s.FocusDepth)
	}
	if s.WheelSensitivity <= 0 {
		return errors.Errorf("wheelSensitivity %v must be positive", s.WheelSensitivity)
	}
	if s.ZoomConvergenceRate <= 0 || s.ZoomConvergenceRate > 1 {
		return errors.Errorf("zoomConvergenceRate %v must be in (0, 1]", s.ZoomConvergenceRate)
	}
	return nil
}
