package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/config"
	"golang.org/x/image/colornames"
)

// Player maps input and the grounded predicate into velocity commands for
// the dynamic body. It runs once per simulation tick; gravity integration
// stays with the physics space.
type Player struct {
	world  *World
	input  *Input
	body   *cp.Body
	tuning config.Tuning

	facingRight bool
}

func NewPlayer(world *World, input *Input, tuning config.Tuning) *Player {
	return &Player{
		world:       world,
		input:       input,
		body:        world.PlayerBody(),
		tuning:      tuning,
		facingRight: true,
	}
}

// Update issues this tick's velocity command. Horizontal velocity is
// assigned instantly (arcade feel, no acceleration ramp); a jump rewrites
// vertical velocity only while grounded. No double jump, no coyote time,
// no jump buffering. Idempotent for repeated identical input.
func (p *Player) Update() {
	vel := p.body.Velocity()

	vx := p.tuning.MoveSpeed * p.input.MoveX
	vy := vel.Y
	if p.input.Jump && p.world.Grounded() {
		vy = p.tuning.JumpImpulse
	}
	p.body.SetVelocity(vx, vy)

	if p.input.MoveX < 0 {
		p.facingRight = false
	} else if p.input.MoveX > 0 {
		p.facingRight = true
	}
}

// SetTuning applies live-reloaded tuning values.
func (p *Player) SetTuning(t config.Tuning) {
	p.tuning = t
}

func (p *Player) Position() cp.Vector {
	return p.body.Position()
}

func (p *Player) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	pos := p.body.Position()
	cx := (pos.X - camX) * zoom
	cy := (pos.Y - camY) * zoom
	r := p.tuning.PlayerRadius * zoom
	vector.FillCircle(screen, float32(cx), float32(cy), float32(r), colornames.Crimson, false)

	// a dot on the facing side so direction reads at a glance
	eye := r * 0.4
	if !p.facingRight {
		eye = -eye
	}
	vector.FillCircle(screen, float32(cx+eye), float32(cy-r*0.3), float32(r*0.18), colornames.White, false)
}
