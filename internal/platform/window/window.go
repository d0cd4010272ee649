// Package window runs the game in a desktop window using ebiten.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// debugGlyphHeight is the line height of ebitenutil's debug font.
const debugGlyphHeight = 16

// bindings maps keys to actions.
var bindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionLift},
	{ebiten.KeyArrowUp, core.ActionLift},
	{ebiten.KeyW, core.ActionLift},
	{ebiten.KeyEnter, core.ActionRestart},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyQ, core.ActionQuit},
}

// banner is the windowed game-over screen.
type banner struct {
	visible bool
	score   int
	logger  *log.Logger
}

func (b *banner) Show(score int) {
	b.visible = true
	b.score = score
	b.logger.Info("game over", "score", score)
}

func (b *banner) Hide() {
	b.visible = false
	b.logger.Info("game restarted")
}

// Game implements ebiten.Game.
type Game struct {
	ctrl   *flappy.Controller
	sched  *frameScheduler
	frame  *displayList
	banner *banner
	world  config.World
}

// NewGame builds a windowed game. It fails if the configuration is invalid.
func NewGame(cfg config.FlappyConfig, seed int64, logger *log.Logger) (*Game, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		sched:  &frameScheduler{},
		frame:  &displayList{},
		banner: &banner{logger: logger},
		world:  cfg.World,
	}

	ctrl, err := flappy.NewController(cfg, seed, g.sched, g.frame, g.banner)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	g.ctrl = ctrl
	g.ctrl.Start()

	logger.Debug("window game created", "seed", seed)
	return g, nil
}

// Update polls input and runs at most one simulation tick.
func (g *Game) Update() error {
	for _, b := range bindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if b.action == core.ActionQuit {
			return ebiten.Termination
		}
		g.ctrl.Input(b.action)
	}

	g.sched.fire()
	return nil
}

// Draw replays the last recorded frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	for _, r := range g.frame.rects {
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), rgba(r.color), false)
	}
	for _, t := range g.frame.texts {
		ebitenutil.DebugPrintAt(screen, t.text, int(t.x), int(t.y)-debugGlyphHeight)
	}

	switch {
	case g.banner.visible:
		g.drawCentered(screen, "GAME OVER", fmt.Sprintf("Score: %d - Enter to restart", g.banner.score))
	case g.ctrl.State().Paused:
		g.drawCentered(screen, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawCentered(screen *ebiten.Image, title, subtitle string) {
	cy := int(g.world.Height / 2)
	// The debug font is 6 pixels wide per glyph.
	ebitenutil.DebugPrintAt(screen, title, int(g.world.Width/2)-len(title)*3, cy-debugGlyphHeight)
	ebitenutil.DebugPrintAt(screen, subtitle, int(g.world.Width/2)-len(subtitle)*3, cy+4)
}

// Layout keeps world units as the logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.world.Width), int(g.world.Height)
}

// Run opens a window and plays until it is closed or Q is pressed.
func Run(cfg config.FlappyConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	g, err := NewGame(cfg, rt.Seed, logger)
	if err != nil {
		return err
	}

	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = cfg.Loop.TickRate
	}

	ebiten.SetWindowSize(int(cfg.World.Width), int(cfg.World.Height))
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetTPS(tickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
