package obj

import (
	"errors"
	"testing"

	"github.com/milk9111/platformer/config"
)

// settleLevel is the canonical one-platform scenario: the player spawns in
// the air above a platform and falls onto it.
func settleLevel() *Level {
	return &Level{
		Player:    &Point{X: 100, Y: 400},
		Platforms: []RectShape{{X: 100, Y: 500, Width: 200, Height: 20}},
	}
}

func stepN(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step()
	}
}

func TestWorldRequiresSpawn(t *testing.T) {
	_, err := NewWorld(&Level{}, config.Default(), nil)
	if !errors.Is(err, ErrMissingPlayerSpawn) {
		t.Fatalf("err = %v, want %v", err, ErrMissingPlayerSpawn)
	}
}

func TestWorldBodyCount(t *testing.T) {
	lvl := &Level{
		Player:    &Point{X: 100, Y: 100},
		Platforms: []RectShape{{X: 100, Y: 500, Width: 200, Height: 20}, {X: 400, Y: 500, Width: 100, Height: 20}},
		Triangles: []TriShape{{X: 250, Y: 480, Width: 64, Height: 32}},
		Spikes:    []Point{{X: 300, Y: 490}},
		Goal:      &Point{X: 450, Y: 450},
	}
	w, err := NewWorld(lvl, config.Default(), nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	// 2 platforms + 1 triangle + 1 spike + 1 goal + player
	if got := w.BodyCount(); got != 6 {
		t.Fatalf("BodyCount() = %d, want 6", got)
	}
}

func TestPlayerSettlesOnPlatform(t *testing.T) {
	w, err := NewWorld(settleLevel(), config.Default(), nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if w.Grounded() {
		t.Fatalf("player should start airborne")
	}

	stepN(w, 300)
	if !w.Grounded() {
		t.Fatalf("player should be grounded after settling")
	}
	if got := w.GroundContacts(); got != 1 {
		t.Fatalf("GroundContacts() = %d, want 1", got)
	}

	// resting contact must not flicker
	for i := 0; i < 60; i++ {
		w.Step()
		if got := w.GroundContacts(); got != 1 {
			t.Fatalf("GroundContacts() = %d on rest step %d, want 1", got, i)
		}
	}
}

func TestPlayerLandsOnTriangle(t *testing.T) {
	lvl := &Level{
		Player:    &Point{X: 300, Y: 400},
		Triangles: []TriShape{{X: 300, Y: 480, Width: 200, Height: 40, Orientation: "up"}},
	}
	w, err := NewWorld(lvl, config.Default(), nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	for i := 0; i < 200; i++ {
		w.Step()
		if w.Grounded() {
			return
		}
	}
	t.Fatalf("player never gained a ground contact on the triangle")
}

func TestSpikeRespawnsPlayer(t *testing.T) {
	lvl := settleLevel()
	// overlaps the spawn point, so the hazard fires on the first step
	lvl.Spikes = []Point{{X: 100, Y: 420}}
	w, err := NewWorld(lvl, config.Default(), nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	w.Step()
	pos := w.PlayerBody().Position()
	if pos != w.Spawn() {
		t.Fatalf("position after hazard = %v, want spawn %v", pos, w.Spawn())
	}
	vel := w.PlayerBody().Velocity()
	if vel.X != 0 || vel.Y != 0 {
		t.Fatalf("velocity after hazard = %v, want (0,0)", vel)
	}
}

func TestGoalCompletesEpisode(t *testing.T) {
	lvl := settleLevel()
	lvl.Goal = &Point{X: 100, Y: 420}
	w, err := NewWorld(lvl, config.Default(), nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if w.State() != EpisodePlaying {
		t.Fatalf("State() = %v before any step, want EpisodePlaying", w.State())
	}

	w.Step()
	if w.State() != EpisodeComplete {
		t.Fatalf("State() = %v after goal overlap, want EpisodeComplete", w.State())
	}

	// completion is a one-way latch while the overlap persists
	stepN(w, 30)
	if w.State() != EpisodeComplete {
		t.Fatalf("State() = %v after further steps, want EpisodeComplete", w.State())
	}
}

func TestFallingOutOfWorldRespawns(t *testing.T) {
	lvl := &Level{Player: &Point{X: 100, Y: 400}}
	w, err := NewWorld(lvl, config.Default(), nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	for i := 0; i < 500; i++ {
		w.Step()
		if i > 0 && w.PlayerBody().Position() == w.Spawn() {
			return
		}
	}
	t.Fatalf("player was never respawned after falling out of the world")
}

func TestEpisodeRestartResetsContacts(t *testing.T) {
	lvl := settleLevel()
	w, err := NewWorld(lvl, config.Default(), nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	stepN(w, 300)
	if w.GroundContacts() != 1 {
		t.Fatalf("precondition: GroundContacts() = %d, want 1", w.GroundContacts())
	}

	// a restart is a fresh world built from the same descriptor
	w2, err := NewWorld(lvl, config.Default(), nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if w2.GroundContacts() != 0 {
		t.Fatalf("fresh world GroundContacts() = %d, want 0", w2.GroundContacts())
	}
	if w2.State() != EpisodePlaying {
		t.Fatalf("fresh world State() = %v, want EpisodePlaying", w2.State())
	}
	if got := w2.PlayerBody().Position(); got != w2.Spawn() {
		t.Fatalf("fresh world player at %v, want spawn %v", got, w2.Spawn())
	}
}
