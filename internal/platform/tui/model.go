package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game.
type Model struct {
	ctrl     *flappy.Controller
	sched    *teaScheduler
	screen   *core.Screen
	overlay  *GameOverOverlay
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel builds a game for the given configuration and terminal.
// It fails if the configuration is invalid.
func NewModel(cfg config.FlappyConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Loop.TickRate
	}

	screen := core.NewScreen(rt.ScreenW, core.Max(rt.ScreenH-helpHeight, 1))
	sched := newTeaScheduler(rt.TickRate)
	overlay := NewGameOverOverlay(logger)

	ctrl, err := flappy.NewController(cfg, rt.Seed, sched, NewCellRenderer(screen, cfg.World), overlay)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	logger.Debug("game created", "seed", rt.Seed, "tick_rate", rt.TickRate,
		"screen", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH))

	return Model{
		ctrl:    ctrl,
		sched:   sched,
		screen:  screen,
		overlay: overlay,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}, nil
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.ctrl.Start()
	return m.sched.arm()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.sched.fire()
		return m, m.sched.arm()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	m.ctrl.Input(action)

	// Restart re-arms the scheduler outside of a tick
	return m, m.sched.arm()
}

// handleResize rescales the playfield. World units are independent of the
// terminal size, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	m.ctrl.Redraw()
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.overlay.Draw(m.screen)
	if m.ctrl.State().Paused {
		drawCenteredMessage(m.screen, "PAUSED", "Press P to resume")
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the current game state.
func (m Model) State() core.GameState {
	return m.ctrl.State()
}

// Run starts the Bubble Tea program for one game.
func Run(cfg config.FlappyConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
