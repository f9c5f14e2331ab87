package obj

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"

	"github.com/milk9111/platformer/common"
)

func loadFromString(t *testing.T, data string) (*Level, error) {
	t.Helper()
	fsys := fstest.MapFS{"level.json": &fstest.MapFile{Data: []byte(data)}}
	return LoadLevelFromFS(fsys, "level.json")
}

func TestLoadLevel(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name: "full_level",
			data: `{
				"player": {"x": 100, "y": 400},
				"platforms": [{"x": 100, "y": 500, "width": 200, "height": 20}],
				"triangles": [{"x": 300, "y": 480, "width": 64, "height": 32, "orientation": "up"}],
				"spikes": [{"x": 250, "y": 490}],
				"goal": {"x": 400, "y": 450}
			}`,
		},
		{
			name: "optional_lists_absent",
			data: `{"player": {"x": 10, "y": 10}}`,
		},
		{
			name:    "missing_player",
			data:    `{"platforms": [{"x": 0, "y": 0, "width": 10, "height": 10}]}`,
			wantErr: ErrMissingPlayerSpawn,
		},
		{
			name:    "zero_width_platform",
			data:    `{"player": {"x": 0, "y": 0}, "platforms": [{"x": 0, "y": 0, "width": 0, "height": 10}]}`,
			wantErr: ErrInvalidGeometry,
		},
		{
			name:    "negative_height_triangle",
			data:    `{"player": {"x": 0, "y": 0}, "triangles": [{"x": 0, "y": 0, "width": 10, "height": -5}]}`,
			wantErr: ErrInvalidGeometry,
		},
		{
			name: "unknown_orientation_is_not_an_error",
			data: `{"player": {"x": 0, "y": 0}, "triangles": [{"x": 0, "y": 0, "width": 10, "height": 5, "orientation": "diagonal"}]}`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl, err := loadFromString(t, c.data)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("err = %v, want %v", err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lvl.Player == nil {
				t.Fatalf("loaded level has no player")
			}
		})
	}
}

func TestLevelBounds(t *testing.T) {
	cases := []struct {
		name      string
		level     *Level
		wantWidth float64
	}{
		{
			name:      "small_level_uses_minimum",
			level:     &Level{Player: &Point{X: 10, Y: 10}},
			wantWidth: common.MinWorldWidth,
		},
		{
			name: "wide_level_extends",
			level: &Level{
				Player:    &Point{X: 10, Y: 10},
				Platforms: []RectShape{{X: 2000, Y: 500, Width: 200, Height: 20}},
			},
			wantWidth: 2000 + 100 + common.MarginRight,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, h := c.level.Bounds()
			if w != c.wantWidth {
				t.Fatalf("width = %g, want %g", w, c.wantWidth)
			}
			if h != common.MinWorldHeight {
				t.Fatalf("height = %g, want %g", h, float64(common.MinWorldHeight))
			}
		})
	}
}

func TestValidateNonFinite(t *testing.T) {
	lvl := &Level{Player: &Point{X: 0, Y: 0}, Spikes: []Point{{X: math.Inf(1), Y: 0}}}
	if err := lvl.Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("err = %v, want %v", err, ErrInvalidGeometry)
	}
}
