package obj

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const triangleTexSize = 64

// LevelRenderer draws a level's shapes with flat runtime-generated
// visuals. Platforms and triangles are drawn at their collision extents so
// what the player sees is exactly what the body collides with.
type LevelRenderer struct {
	level *Level

	// built on first Draw; constructing images needs a running game
	triangleImg *ebiten.Image
	spikeImg    *ebiten.Image
}

func NewLevelRenderer(level *Level) *LevelRenderer {
	return &LevelRenderer{level: level}
}

func (r *LevelRenderer) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if r == nil || r.level == nil {
		return
	}
	if zoom <= 0 {
		zoom = 1
	}
	r.ensureImages()

	for _, p := range r.level.Platforms {
		x := (p.X - p.Width/2 - camX) * zoom
		y := (p.Y - p.Height/2 - camY) * zoom
		vector.FillRect(screen, float32(x), float32(y), float32(p.Width*zoom), float32(p.Height*zoom), color.RGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}, false)
	}

	for _, t := range r.level.Triangles {
		r.drawTriangle(screen, t, camX, camY, zoom)
	}

	for _, s := range r.level.Spikes {
		op := &ebiten.DrawImageOptions{}
		size := 24.0
		op.GeoM.Translate(-triangleTexSize/2, -triangleTexSize/2)
		op.GeoM.Scale(size/triangleTexSize*zoom, size/triangleTexSize*zoom)
		op.GeoM.Translate((s.X-camX)*zoom, (s.Y-camY)*zoom)
		screen.DrawImage(r.spikeImg, op)
	}

	if g := r.level.Goal; g != nil {
		cx := (g.X - camX) * zoom
		cy := (g.Y - camY) * zoom
		vector.FillCircle(screen, float32(cx), float32(cy), float32(14*zoom), colornames.Gold, false)
	}
}

// drawTriangle renders the up-pointing triangle texture rotated for the
// shape's orientation and stretched to its extents. The texture footprint
// stays square under rotation, so the post-rotate scale maps it onto the
// width x height bounding box the collision vertices span.
func (r *LevelRenderer) drawTriangle(screen *ebiten.Image, t TriShape, camX, camY, zoom float64) {
	o := ParseOrientation(t.Orientation)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-triangleTexSize/2, -triangleTexSize/2)
	op.GeoM.Rotate(o.TextureRotation())
	op.GeoM.Scale(t.Width/triangleTexSize*zoom, t.Height/triangleTexSize*zoom)
	op.GeoM.Translate((t.X-camX)*zoom, (t.Y-camY)*zoom)
	screen.DrawImage(r.triangleImg, op)
}

func (r *LevelRenderer) ensureImages() {
	if r.triangleImg == nil {
		r.triangleImg = triangleImage(triangleTexSize, color.RGBA{R: 0x2e, G: 0xa0, B: 0x4f, A: 0xff})
	}
	if r.spikeImg == nil {
		r.spikeImg = triangleImage(triangleTexSize, color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff})
	}
}

// triangleImage builds an RGBA image with a filled upward-pointing triangle of the given color.
func triangleImage(size int, col color.RGBA) *ebiten.Image {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	cx := float64(size) / 2
	for y := 0; y < size; y++ {
		// row progress from top (0) to bottom (size-1)
		progress := float64(y) / float64(size-1)
		rowWidth := progress * float64(size)
		left := cx - rowWidth/2
		right := cx + rowWidth/2
		for x := 0; x < size; x++ {
			fx := float64(x) + 0.5
			if fx >= left && fx <= right {
				rgba.Set(x, y, col)
			} else {
				rgba.Set(x, y, color.RGBA{0, 0, 0, 0})
			}
		}
	}
	return ebiten.NewImageFromImage(rgba)
}
