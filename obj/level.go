package obj

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/milk9111/platformer/common"
)

// Load-time validation failures. Everything that can go wrong with a level
// is caught here; once a world is built no core operation fails.
var (
	// ErrMissingPlayerSpawn means the level has no player entry. The
	// episode cannot start without a spawn point.
	ErrMissingPlayerSpawn = errors.New("level has no player spawn")
	// ErrInvalidGeometry means a shape has a non-positive or non-finite
	// extent and would produce a degenerate collision body.
	ErrInvalidGeometry = errors.New("invalid shape geometry")
)

// Point is a world-space position in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RectShape is an axis-aligned platform: center position plus full extents.
type RectShape struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TriShape is a right-triangle terrain piece. Orientation picks which way
// the apex points; unrecognized values fall back to "right" rather than
// failing, so hand-edited levels stay loadable.
type TriShape struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Orientation string  `json:"orientation,omitempty"`
}

// Level is the declarative description of one playable level. It is
// immutable once loaded; the World builds all collision bodies from it and
// rebuilds from the same Level on every episode restart.
type Level struct {
	Player    *Point      `json:"player"`
	Platforms []RectShape `json:"platforms,omitempty"`
	Triangles []TriShape  `json:"triangles,omitempty"`
	Spikes    []Point     `json:"spikes,omitempty"`
	Goal      *Point      `json:"goal,omitempty"`
}

// LoadLevel loads a level from a JSON file at path.
func LoadLevel(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return loadLevelFromBytes(b)
}

// LoadLevelFromFS loads a level JSON from an fs.FS (e.g. embedded levels).
func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return loadLevelFromBytes(b)
}

func loadLevelFromBytes(b []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks the invariants the world builder relies on: a spawn
// point exists, every number is finite, and every extent is positive.
func (l *Level) Validate() error {
	if l == nil || l.Player == nil {
		return ErrMissingPlayerSpawn
	}
	if !finite(l.Player.X, l.Player.Y) {
		return fmt.Errorf("player spawn: %w", ErrInvalidGeometry)
	}
	for i, p := range l.Platforms {
		if !finite(p.X, p.Y, p.Width, p.Height) || p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("platform %d (%gx%g): %w", i, p.Width, p.Height, ErrInvalidGeometry)
		}
	}
	for i, t := range l.Triangles {
		if !finite(t.X, t.Y, t.Width, t.Height) || t.Width <= 0 || t.Height <= 0 {
			return fmt.Errorf("triangle %d (%gx%g): %w", i, t.Width, t.Height, ErrInvalidGeometry)
		}
	}
	for i, s := range l.Spikes {
		if !finite(s.X, s.Y) {
			return fmt.Errorf("spike %d: %w", i, ErrInvalidGeometry)
		}
	}
	if l.Goal != nil && !finite(l.Goal.X, l.Goal.Y) {
		return fmt.Errorf("goal: %w", ErrInvalidGeometry)
	}
	return nil
}

// Bounds returns the world size in pixels. Levels only extend
// horizontally: the width grows to cover the rightmost platform edge plus
// a margin, the height stays at the configured minimum.
func (l *Level) Bounds() (float64, float64) {
	width := float64(common.MinWorldWidth)
	if l != nil {
		for _, p := range l.Platforms {
			if edge := p.X + p.Width/2 + common.MarginRight; edge > width {
				width = edge
			}
		}
	}
	return width, float64(common.MinWorldHeight)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
