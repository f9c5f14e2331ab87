package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestTriangleVerticesBounds(t *testing.T) {
	cases := []struct {
		name   string
		orient Orientation
		w, h   float64
	}{
		{"up", OrientationUp, 80, 40},
		{"down", OrientationDown, 80, 40},
		{"left", OrientationLeft, 64, 128},
		{"right", OrientationRight, 64, 128},
		{"right_square", OrientationRight, 32, 32},
	}

	const eps = 1e-9
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			verts := TriangleVertices(c.orient, c.w, c.h)
			if len(verts) != 3 {
				t.Fatalf("expected 3 vertices, got %d", len(verts))
			}

			minX, minY := math.Inf(1), math.Inf(1)
			maxX, maxY := math.Inf(-1), math.Inf(-1)
			for _, v := range verts {
				minX = math.Min(minX, v.X)
				minY = math.Min(minY, v.Y)
				maxX = math.Max(maxX, v.X)
				maxY = math.Max(maxY, v.Y)
			}

			// bounding box spans the declared extents, centered on the
			// local origin
			if math.Abs((maxX-minX)-c.w) > eps || math.Abs((maxY-minY)-c.h) > eps {
				t.Fatalf("bounding box %gx%g, want %gx%g", maxX-minX, maxY-minY, c.w, c.h)
			}
			if math.Abs(minX+maxX) > eps || math.Abs(minY+maxY) > eps {
				t.Fatalf("bounding box not centered: x [%g,%g], y [%g,%g]", minX, maxX, minY, maxY)
			}

			// centroid stays inside the declared extents around the center
			var cx, cy float64
			for _, v := range verts {
				cx += v.X / 3
				cy += v.Y / 3
			}
			if math.Abs(cx) > c.w/2 || math.Abs(cy) > c.h/2 {
				t.Fatalf("centroid (%g, %g) outside shape extents %gx%g", cx, cy, c.w, c.h)
			}
		})
	}
}

func TestParseOrientation(t *testing.T) {
	cases := []struct {
		in   string
		want Orientation
	}{
		{"up", OrientationUp},
		{"down", OrientationDown},
		{"left", OrientationLeft},
		{"right", OrientationRight},
		{"", OrientationRight},
		{"diagonal", OrientationRight},
		{"UP", OrientationRight},
	}
	for _, c := range cases {
		if got := ParseOrientation(c.in); got != c.want {
			t.Fatalf("ParseOrientation(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestUnknownOrientationMatchesRight(t *testing.T) {
	want := TriangleVertices(OrientationRight, 48, 24)
	got := TriangleVertices(ParseOrientation("diagonal"), 48, 24)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTextureRotation(t *testing.T) {
	cases := []struct {
		orient Orientation
		want   float64
	}{
		{OrientationUp, 0},
		{OrientationDown, math.Pi},
		{OrientationLeft, -math.Pi / 2},
		{OrientationRight, math.Pi / 2},
	}
	for _, c := range cases {
		if got := c.orient.TextureRotation(); got != c.want {
			t.Fatalf("%v.TextureRotation() = %g, want %g", c.orient, got, c.want)
		}
	}
}

func TestSensorShapeIsSensor(t *testing.T) {
	space := cp.NewSpace()
	shape := newSensorShape(space, Point{X: 10, Y: 20}, 8)
	if !shape.Sensor() {
		t.Fatalf("sensor shape should report Sensor() == true")
	}
}
