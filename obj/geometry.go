package obj

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Orientation selects which way a triangle's apex points.
type Orientation int

const (
	// OrientationRight is the default: base on the left, apex pointing
	// right. Unrecognized orientation strings resolve to it.
	OrientationRight Orientation = iota
	OrientationUp
	OrientationDown
	OrientationLeft
)

// ParseOrientation maps a level-file orientation string to an
// Orientation. Anything unrecognized degrades to OrientationRight; sloppy
// level data shouldn't fail the load over a typo here.
func ParseOrientation(s string) Orientation {
	switch s {
	case "up":
		return OrientationUp
	case "down":
		return OrientationDown
	case "left":
		return OrientationLeft
	case "right":
		return OrientationRight
	default:
		return OrientationRight
	}
}

func (o Orientation) String() string {
	switch o {
	case OrientationUp:
		return "up"
	case OrientationDown:
		return "down"
	case OrientationLeft:
		return "left"
	default:
		return "right"
	}
}

// TriangleVertices returns the right triangle for the given orientation in
// a local frame centered at the shape's center. The collision polygon is
// built directly from these vertices, so the physical slope always matches
// the rendered one no matter what the texture rotation does.
func TriangleVertices(o Orientation, w, h float64) []cp.Vector {
	hw, hh := w/2, h/2
	switch o {
	case OrientationUp:
		// base at bottom, apex up
		return []cp.Vector{{X: -hw, Y: hh}, {X: hw, Y: hh}, {X: 0, Y: -hh}}
	case OrientationDown:
		// base at top, apex down
		return []cp.Vector{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: 0, Y: hh}}
	case OrientationLeft:
		// base on right, apex left
		return []cp.Vector{{X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: 0}}
	default:
		// base on left, apex right
		return []cp.Vector{{X: -hw, Y: -hh}, {X: -hw, Y: hh}, {X: hw, Y: 0}}
	}
}

// TextureRotation returns the rotation in radians a renderer applies to an
// up-pointing triangle texture for this orientation. Only the renderer
// cares; the collision shape comes from TriangleVertices.
func (o Orientation) TextureRotation() float64 {
	switch o {
	case OrientationUp:
		return 0
	case OrientationDown:
		return math.Pi
	case OrientationLeft:
		return -math.Pi / 2
	default:
		return math.Pi / 2
	}
}

// newPlatformShape builds a static axis-aligned box matching the
// descriptor's extents, centered at its position.
func newPlatformShape(space *cp.Space, r RectShape) *cp.Shape {
	bb := cp.BB{
		L: r.X - r.Width/2,
		B: r.Y - r.Height/2,
		R: r.X + r.Width/2,
		T: r.Y + r.Height/2,
	}
	shape := cp.NewBox2(space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	return shape
}

// newTriangleShape builds a static polygon from the orientation's vertex
// set on a body positioned at the triangle's world center.
func newTriangleShape(space *cp.Space, t TriShape) (*cp.Body, *cp.Shape) {
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	verts := TriangleVertices(ParseOrientation(t.Orientation), t.Width, t.Height)
	shape := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
	shape.SetFriction(0.8)
	return body, shape
}

// newSensorShape builds a point-anchored sensor volume. It reports
// overlaps but applies no physical response.
func newSensorShape(space *cp.Space, p Point, radius float64) *cp.Shape {
	shape := cp.NewCircle(space.StaticBody, radius, cp.Vector{X: p.X, Y: p.Y})
	shape.SetSensor(true)
	return shape
}
