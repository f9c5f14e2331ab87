package obj

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/config"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeGround
	collisionTypeSpike
	collisionTypeGoal
)

// EpisodeState tracks one playthrough attempt. The world stays in
// EpisodePlaying until the player touches the goal; the surrounding
// application decides what a completed episode means (here: show the
// completion menu and rebuild the world on demand).
type EpisodeState int

const (
	EpisodePlaying EpisodeState = iota
	EpisodeComplete
)

// World owns the physics space and every body synthesized from one Level.
// It is rebuilt from the same Level on episode restart, which atomically
// replaces all bodies and resets the ground-contact count.
type World struct {
	level  *Level
	tuning config.Tuning
	space  *cp.Space

	playerBody  *cp.Body
	playerShape *cp.Shape
	spawn       cp.Vector

	ground     groundCounter
	classifier classifier

	// pending contact flags, set by contact callbacks during a step and
	// drained before the input phase of the same tick
	hazardPending bool
	goalPending   bool

	state  EpisodeState
	width  float64
	height float64

	bodyCount int
}

// NewWorld builds the physics world for a level: one tagged body per
// descriptor entry, world bounds, the dynamic player body, and the contact
// handlers. The camera, when given, is pointed at the new world.
func NewWorld(level *Level, tuning config.Tuning, camera *Camera) (*World, error) {
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: tuning.Gravity})

	w := &World{
		level:  level,
		tuning: tuning,
		space:  space,
		spawn:  cp.Vector{X: level.Player.X, Y: level.Player.Y},
	}
	w.width, w.height = level.Bounds()
	w.classifier = classifier{
		ground:   &w.ground,
		onHazard: func() { w.hazardPending = true },
		onGoal:   func() { w.goalPending = true },
	}

	w.buildStaticShapes()
	w.attachPlayer()
	w.setupHandlers()

	if camera != nil {
		camera.SetWorldBounds(int(w.width), int(w.height))
		camera.SnapTo(w.spawn.X, w.spawn.Y)
	}
	return w, nil
}

func (w *World) buildStaticShapes() {
	for _, p := range w.level.Platforms {
		shape := newPlatformShape(w.space, p)
		shape.SetCollisionType(collisionTypeGround)
		tagShape(shape, TagGround)
		w.space.AddShape(shape)
		w.bodyCount++
	}

	for _, t := range w.level.Triangles {
		body, shape := newTriangleShape(w.space, t)
		shape.SetCollisionType(collisionTypeGround)
		tagShape(shape, TagGround)
		w.space.AddBody(body)
		w.space.AddShape(shape)
		w.bodyCount++
	}

	for _, s := range w.level.Spikes {
		shape := newSensorShape(w.space, s, w.tuning.SensorRadius)
		shape.SetCollisionType(collisionTypeSpike)
		tagShape(shape, TagSpike)
		w.space.AddShape(shape)
		w.bodyCount++
	}

	if w.level.Goal != nil {
		shape := newSensorShape(w.space, *w.level.Goal, w.tuning.SensorRadius)
		shape.SetCollisionType(collisionTypeGoal)
		tagShape(shape, TagGoal)
		w.space.AddShape(shape)
		w.bodyCount++
	}

	// side walls keep the player inside the level horizontally. They stay
	// untagged: touching a wall is not a ground contact.
	walls := []struct{ a, b cp.Vector }{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: w.height}},
		{a: cp.Vector{X: w.width, Y: 0}, b: cp.Vector{X: w.width, Y: w.height}},
	}
	for _, seg := range walls {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 1.0)
		shape.SetFriction(0)
		w.space.AddShape(shape)
	}
}

func (w *World) attachPlayer() {
	// infinite moment keeps the circle from spinning; the controller
	// rewrites linear velocity every tick anyway
	body := cp.NewBody(1.0, math.Inf(1))
	body.SetPosition(w.spawn)

	shape := cp.NewCircle(body, w.tuning.PlayerRadius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypePlayer)
	tagShape(shape, TagPlayer)

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.playerBody = body
	w.playerShape = shape
	w.bodyCount++
}

func (w *World) setupHandlers() {
	begin := func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Shapes()
		w.classifier.begin(tagOf(a), tagOf(b))
		return true
	}
	separate := func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		a, b := arb.Shapes()
		w.classifier.end(tagOf(a), tagOf(b))
	}

	ground := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeGround)
	ground.BeginFunc = begin
	ground.SeparateFunc = separate

	spike := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeSpike)
	spike.BeginFunc = begin

	goal := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeGoal)
	goal.BeginFunc = begin
}

// Step advances the simulation one tick and drains the contact events it
// produced, so the grounded predicate and episode state are settled before
// the input phase reads them.
func (w *World) Step() {
	if w == nil || w.space == nil {
		return
	}
	w.space.Step(1.0)

	// falling out of the world counts as a hazard touch
	if w.playerBody.Position().Y > w.height+4*w.tuning.PlayerRadius {
		w.hazardPending = true
	}

	if w.hazardPending {
		w.hazardPending = false
		w.Respawn()
	}
	if w.goalPending {
		w.goalPending = false
		if w.state == EpisodePlaying {
			w.state = EpisodeComplete
		}
	}
}

// Respawn teleports the player back to the spawn point and zeroes its
// velocity. No penalty state; control returns on the next tick.
func (w *World) Respawn() {
	w.playerBody.SetPosition(w.spawn)
	w.playerBody.SetVelocityVector(cp.Vector{})
	w.playerBody.SetAngularVelocity(0)
}

// Grounded reports whether at least one ground contact is active. This is
// the only terrain input the player controller needs.
func (w *World) Grounded() bool {
	return w.ground.grounded()
}

// GroundContacts returns the current overlapping ground-contact count.
func (w *World) GroundContacts() int {
	return w.ground.count
}

// ApplyTuning applies live-reloaded tuning values. Gravity takes effect
// immediately; body radii only apply on the next world build.
func (w *World) ApplyTuning(t config.Tuning) {
	w.tuning = t
	w.space.SetGravity(cp.Vector{X: 0, Y: t.Gravity})
}

func (w *World) State() EpisodeState {
	return w.state
}

// Bounds returns the world size in pixels.
func (w *World) Bounds() (float64, float64) {
	return w.width, w.height
}

func (w *World) Level() *Level {
	return w.level
}

// PlayerBody exposes the dynamic body for the player controller and the
// camera target.
func (w *World) PlayerBody() *cp.Body {
	return w.playerBody
}

func (w *World) Spawn() cp.Vector {
	return w.spawn
}

func (w *World) BodyCount() int {
	return w.bodyCount
}
