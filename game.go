package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
)

type Game struct {
	frames int
	debug  bool

	tuning     config.Tuning
	tuningPath string
	watcher    *config.Watcher

	level    *obj.Level
	world    *obj.World
	player   *obj.Player
	input    *obj.Input
	camera   *obj.Camera
	renderer *obj.LevelRenderer

	paused     bool
	pauseUI    *ebitenui.UI
	completeUI *ebitenui.UI
}

func NewGame(levelName, configPath string, debug bool) (*Game, error) {
	tuning, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	lvl, err := loadLevelByName(levelName)
	if err != nil {
		return nil, err
	}

	camera := obj.NewCamera(common.BaseWidth, common.BaseHeight, tuning.CameraZoom)
	camera.SetSmooth(tuning.CameraSmooth)

	g := &Game{
		debug:      debug,
		tuning:     tuning,
		tuningPath: configPath,
		level:      lvl,
		input:      obj.NewInput(),
		camera:     camera,
	}
	if err := g.buildWorld(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)
	g.completeUI = NewCompleteUI(g)

	if debug && configPath != "" {
		w, err := config.NewWatcher(configPath)
		if err != nil {
			log.Printf("config watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// loadLevelByName resolves a level by embedded name ("level1"), by path, or
// falls back to the first embedded level.
func loadLevelByName(name string) (*obj.Level, error) {
	if name == "" {
		name = "level1"
	}
	if filepath.Ext(name) == ".json" || filepath.Dir(name) != "." {
		if _, err := os.Stat(name); err == nil {
			return obj.LoadLevel(name)
		}
	}
	return obj.LoadLevelFromFS(levels.LevelsFS, name+".json")
}

// buildWorld (re)builds the episode from the level descriptor: all bodies
// replaced, ground-contact count back to zero, camera snapped to spawn.
func (g *Game) buildWorld() error {
	world, err := obj.NewWorld(g.level, g.tuning, g.camera)
	if err != nil {
		return err
	}
	g.world = world
	g.player = obj.NewPlayer(world, g.input, g.tuning)
	g.renderer = obj.NewLevelRenderer(g.level)
	return nil
}

func (g *Game) restart() {
	if err := g.buildWorld(); err != nil {
		// the descriptor already built once; this cannot happen outside
		// of programmer error
		log.Printf("restart failed: %v", err)
	}
}

func (g *Game) Update() error {
	g.frames++
	g.drainTuningEvents()

	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.world.State() == obj.EpisodeComplete {
		g.completeUI.Update()
		if g.input.RestartPressed {
			g.restart()
		}
		return nil
	}

	if g.input.RestartPressed {
		g.restart()
		return nil
	}

	// step first so contact events are drained before this tick's
	// velocity command; the command takes effect next step
	g.world.Step()
	g.player.Update()

	pos := g.player.Position()
	g.camera.Update(pos.X, pos.Y)
	return nil
}

func (g *Game) drainTuningEvents() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			t, err := config.Load(path)
			if err != nil {
				log.Printf("tuning reload: %v", err)
				continue
			}
			g.tuning = t
			g.world.ApplyTuning(t)
			g.player.SetTuning(t)
			g.camera.SetZoom(t.CameraZoom)
			g.camera.SetSmooth(t.CameraSmooth)
			log.Printf("tuning reloaded from %s", path)
		case err := <-g.watcher.Errors:
			log.Printf("config watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	camX, camY := g.camera.ViewTopLeft()
	zoom := g.camera.Zoom()

	g.renderer.Draw(screen, camX, camY, zoom)
	g.player.Draw(screen, camX, camY, zoom)

	if g.debug {
		g.world.DebugDraw(screen, camX, camY, zoom)
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  grounded: %t  contacts: %d  bodies: %d",
			ebiten.ActualFPS(), g.world.Grounded(), g.world.GroundContacts(), g.world.BodyCount()))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	} else if g.world.State() == obj.EpisodeComplete {
		g.completeUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
