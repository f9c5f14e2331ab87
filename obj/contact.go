package obj

import "github.com/jakecoffman/cp"

// BodyTag is the semantic category attached to every synthesized body.
// It is assigned at build time and never changes for the body's lifetime;
// it is all the classifier needs to interpret a raw contact pair.
type BodyTag int

const (
	TagNone BodyTag = iota
	TagPlayer
	TagGround
	TagSpike
	TagGoal
)

func (t BodyTag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagGround:
		return "ground"
	case TagSpike:
		return "spike"
	case TagGoal:
		return "goal"
	default:
		return "none"
	}
}

// tagShape stores the tag on the shape so contact callbacks can recover it.
func tagShape(s *cp.Shape, t BodyTag) {
	s.UserData = t
}

// tagOf recovers a shape's tag. Untagged shapes (world borders, bodies
// mid-teardown) report TagNone and are ignored by the classifier.
func tagOf(s *cp.Shape) BodyTag {
	if s == nil {
		return TagNone
	}
	if t, ok := s.UserData.(BodyTag); ok {
		return t
	}
	return TagNone
}

// groundCounter tracks how many ground contacts currently overlap the
// player. A boolean is not enough: the player can rest across two
// platforms, or stand on a platform while brushing a triangle edge, and
// losing one of those contacts must not read as leaving the ground.
type groundCounter struct {
	count int
}

func (g *groundCounter) gain() {
	g.count++
}

// drop floors at zero so a separate event with no matching begin can never
// corrupt the grounded predicate.
func (g *groundCounter) drop() {
	if g.count > 0 {
		g.count--
	}
}

func (g *groundCounter) grounded() bool {
	return g.count > 0
}

// classifier turns raw contact pairs into semantic events. A pair is
// "player vs X" iff exactly one side is tagged player; which side is A or
// B does not matter. Pairs with an untagged side are dropped.
type classifier struct {
	ground   *groundCounter
	onHazard func()
	onGoal   func()
}

// pairOther returns the non-player tag of the pair, or false when the pair
// is not a player-vs-tagged pair.
func pairOther(a, b BodyTag) (BodyTag, bool) {
	if (a == TagPlayer) == (b == TagPlayer) {
		return TagNone, false
	}
	other := a
	if a == TagPlayer {
		other = b
	}
	if other == TagNone {
		return TagNone, false
	}
	return other, true
}

func (c *classifier) begin(a, b BodyTag) {
	other, ok := pairOther(a, b)
	if !ok {
		return
	}
	switch other {
	case TagGround:
		c.ground.gain()
	case TagSpike:
		if c.onHazard != nil {
			c.onHazard()
		}
	case TagGoal:
		if c.onGoal != nil {
			c.onGoal()
		}
	}
}

func (c *classifier) end(a, b BodyTag) {
	other, ok := pairOther(a, b)
	if !ok {
		return
	}
	if other == TagGround {
		c.ground.drop()
	}
}
