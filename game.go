package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/stomper/prefabs"
	"github.com/milk9111/stomper/sfx"
	"github.com/milk9111/stomper/sim"
)

const (
	baseWidth  = 960
	baseHeight = 540
)

type Game struct {
	frames int
	debug  bool

	world    *sim.World
	renderer *renderer
	sounds   *sfx.Manager

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	watcher *prefabs.Watcher
	logger  *log.Logger
}

func NewGame(logger *log.Logger, debug bool) (*Game, error) {
	cfg, err := loadTuning()
	if err != nil {
		return nil, fmt.Errorf("game: load tuning: %w", err)
	}

	g := &Game{
		debug:  debug,
		world:  sim.NewWorld(cfg, sim.BuildLevel(baseWidth, baseHeight, cfg)),
		sounds: sfx.NewManager(),
		logger: logger,
	}
	g.renderer = newRenderer(g.world)
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// loadTuning maps the prefab specs onto the simulation config.
func loadTuning() (sim.Config, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return sim.Config{}, err
	}
	enemy, err := prefabs.LoadEnemySpec()
	if err != nil {
		return sim.Config{}, err
	}
	world, err := prefabs.LoadWorldSpec()
	if err != nil {
		return sim.Config{}, err
	}

	return sim.Config{
		MoveSpeed:    player.MoveSpeed,
		JumpForce:    -player.JumpSpeed,
		Gravity:      world.Gravity,
		PlayerWidth:  player.Collider.Width,
		PlayerHeight: player.Collider.Height,
		EnemyWidth:   enemy.Collider.Width,
		EnemyHeight:  enemy.Collider.Height,
		EnemyPace:    enemy.MoveSpeed,
	}, nil
}

// WatchTuning reloads the motion tuning whenever a spec file under prefabs/
// changes on disk. Collider sizes only apply to new worlds; live entities
// keep their boxes.
func (g *Game) WatchTuning() error {
	w, err := prefabs.NewWatcher("prefabs")
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.Input = sim.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace),
	}

	events := g.world.Step()

	if events.Jumped {
		g.sounds.PlayJump()
	}
	if events.Stomped > 0 {
		g.sounds.PlayStomp()
	}
	if events.Reset {
		g.sounds.PlayReset()
	}

	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			cfg, err := loadTuning()
			if err != nil {
				g.logger.Warn("tuning reload failed", "file", name, "err", err)
				continue
			}
			g.world.Config.MoveSpeed = cfg.MoveSpeed
			g.world.Config.JumpForce = cfg.JumpForce
			g.world.Config.Gravity = cfg.Gravity
			g.logger.Info("tuning reloaded", "file", name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("prefab watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world, g.debug)

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Frames: %d    FPS: %.2f    TPS: %.2f\nPlayer: (%.1f, %.1f) vy=%.2f jumping=%t\nEnemies left: %d",
			g.frames, ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.world.Player.X, g.world.Player.Y, g.world.Player.VelocityY, g.world.Player.Jumping,
			len(g.world.Enemies)))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
