package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the gameplay numbers that are worth tweaking without a
// rebuild. Units are pixels and physics ticks (the space steps with dt=1,
// so velocities are px/tick and gravity is px/tick^2).
type Tuning struct {
	// MoveSpeed is the horizontal velocity assigned while a direction is
	// held. There is no acceleration ramp.
	MoveSpeed float64 `yaml:"move_speed"`
	// JumpImpulse is the vertical velocity assigned on jump. Negative is
	// up in screen coordinates.
	JumpImpulse float64 `yaml:"jump_impulse"`
	Gravity     float64 `yaml:"gravity"`
	// PlayerRadius is the player's circle body radius.
	PlayerRadius float64 `yaml:"player_radius"`
	// SensorRadius is the overlap radius used for spike and goal volumes.
	SensorRadius float64 `yaml:"sensor_radius"`

	CameraZoom   float64 `yaml:"camera_zoom"`
	CameraSmooth float64 `yaml:"camera_smooth"`
}

// Default returns the tuning used when no config file is provided.
func Default() Tuning {
	return Tuning{
		MoveSpeed:    5,
		JumpImpulse:  -12,
		Gravity:      0.5,
		PlayerRadius: 16,
		SensorRadius: 10,
		CameraZoom:   1,
		CameraSmooth: 0.15,
	}
}

// Load reads a YAML tuning file. Missing fields keep their defaults; a
// missing file is not an error so the game can run with no config at all.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return t, nil
		}
		return t, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

func (t Tuning) validate() error {
	if t.MoveSpeed <= 0 {
		return fmt.Errorf("move_speed must be positive, got %g", t.MoveSpeed)
	}
	if t.JumpImpulse >= 0 {
		return fmt.Errorf("jump_impulse must be negative (up), got %g", t.JumpImpulse)
	}
	if t.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive (down), got %g", t.Gravity)
	}
	if t.PlayerRadius <= 0 || t.SensorRadius <= 0 {
		return fmt.Errorf("radii must be positive, got player=%g sensor=%g", t.PlayerRadius, t.SensorRadius)
	}
	if t.CameraZoom <= 0 {
		return fmt.Errorf("camera_zoom must be positive, got %g", t.CameraZoom)
	}
	return nil
}
