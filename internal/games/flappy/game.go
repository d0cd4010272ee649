// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual constants
const (
	BirdColor  = core.ColorYellow
	PipeColor  = core.ColorGreen
	ScoreTextX = 10
	ScoreTextY = 20
)

// State is the game lifecycle state.
type State int

const (
	StateRunning State = iota
	StateOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Controller owns the bird, the obstacle field and the score, and runs one
// simulation step per scheduled tick while the game is running.
//
// Input arrives at any time through Input; lift and pause are buffered in an
// InputFrame and consumed by the next Tick. Tick and Input are serialized.
type Controller struct {
	mu sync.Mutex

	cfg   config.FlappyConfig
	body  *Body
	field *Field
	score *ScoreTracker

	state   State
	paused  bool
	started bool
	ticks   int
	pending core.InputFrame

	sched    Scheduler
	renderer Renderer
	ui       GameOverUI
}

// NewController validates cfg and builds a game wired to its collaborators.
// A nil renderer or ui is replaced by a no-op.
func NewController(cfg config.FlappyConfig, seed int64, sched Scheduler, r Renderer, ui GameOverUI) (*Controller, error) {
	if sched == nil {
		return nil, errors.New("flappy: scheduler is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	field, err := NewField(cfg.World, cfg.Pipes, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	if r == nil {
		r = nopRenderer{}
	}
	if ui == nil {
		ui = nopUI{}
	}

	return &Controller{
		cfg:      cfg,
		body:     NewBody(cfg.Bird),
		field:    field,
		score:    NewScoreTracker(cfg.Score.Initial),
		pending:  core.NewInputFrame(),
		sched:    sched,
		renderer: r,
		ui:       ui,
	}, nil
}

// Start seeds the first obstacle and arms the first tick. Later calls do nothing.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return
	}
	c.started = true
	c.field.Spawn()
	c.sched.ScheduleNextTick(c.Tick)
}

// Input records a player action. Actions that do not apply to the current state
// are ignored. Lift and Pause are queued and take effect at the start of the
// next Tick, before integration; Restart is applied immediately.
func (c *Controller) Input(a core.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch a {
	case core.ActionLift:
		if c.state == StateRunning && !c.paused {
			c.pending.Set(core.ActionLift)
		}
	case core.ActionPause:
		if c.state == StateRunning {
			c.pending.Set(core.ActionPause)
		}
	case core.ActionRestart:
		if c.state == StateOver {
			c.restart()
		}
	}
}

// Tick advances the game by one step and re-arms the scheduler while running.
// The order is: integrate body, advance field, maybe spawn, check collision,
// count passes, draw. A collision ends the tick early and stops scheduling.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateOver {
		return
	}

	var lift bool
	if !c.pending.Empty() {
		lift = c.pending.Has(core.ActionLift)
		if c.pending.Has(core.ActionPause) {
			c.paused = !c.paused
		}
		c.pending.Clear()
	}

	if c.paused {
		c.draw()
		c.sched.ScheduleNextTick(c.Tick)
		return
	}

	if lift {
		c.body.ApplyLift()
	}

	c.ticks++
	c.body.Integrate(c.cfg.World.Height)
	c.field.Advance(c.cfg.Pipes.Speed)
	c.field.MaybeSpawn(c.ticks, c.cfg.Pipes.SpawnInterval)

	if Collides(c.body, c.field) {
		c.state = StateOver
		c.sched.Stop()
		c.ui.Show(c.score.Value())
		return
	}

	c.field.UpdatePassed(c.body.X, func(Obstacle) {
		c.score.Increment()
	})

	c.draw()
	c.sched.ScheduleNextTick(c.Tick)
}

// restart performs the full reset and resumes scheduling. Caller holds c.mu.
func (c *Controller) restart() {
	c.state = StateRunning
	c.paused = false
	c.ticks = 0
	c.pending.Clear()

	c.body.Reset()
	c.field.Clear()
	c.score.Reset()
	c.field.Spawn()

	c.ui.Hide()
	c.sched.ScheduleNextTick(c.Tick)
}

// Redraw repaints the current frame without advancing the simulation.
func (c *Controller) Redraw() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draw()
}

// State returns the current game state.
func (c *Controller) State() core.GameState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return core.GameState{
		Score:    c.score.Value(),
		GameOver: c.state == StateOver,
		Paused:   c.paused,
		Ticks:    c.ticks,
	}
}

// Status returns the lifecycle state.
func (c *Controller) Status() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
