package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}
	m, err := NewModel(config.DefaultFlappyConfig(), rt, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

// tick delivers one TickMsg and returns the updated model.
func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg{})
	return next.(Model), cmd
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.Gap = cfg.World.Height

	_, err := NewModel(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 25}, log.New(io.Discard))
	if err == nil {
		t.Fatal("expected error for degenerate gap")
	}
}

func TestModelInitArmsTick(t *testing.T) {
	m := newTestModel(t)

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should return a tick command")
	}
	// A second arm while the first tick is in flight must not double the chain.
	if cmd := m.sched.arm(); cmd != nil {
		t.Error("scheduler issued a second tick while one is in flight")
	}
}

func TestModelTickAdvancesGame(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	m, cmd := tick(t, m)
	if cmd == nil {
		t.Error("running game should re-arm after a tick")
	}
	if got := m.State().Ticks; got != 1 {
		t.Errorf("Ticks = %d, want 1", got)
	}
	if !strings.Contains(m.View(), "Score: 5") {
		t.Error("view should show the score")
	}
}

func TestModelGameOverAndRestart(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	// Without lift the bird rests on the floor and meets the first pipe.
	var cmd tea.Cmd
	for i := 0; i < 1000 && !m.State().GameOver; i++ {
		m, cmd = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("game should be over")
	}
	if cmd != nil {
		t.Error("tick chain should stop on game over")
	}
	if !m.overlay.Visible() {
		t.Error("overlay should be visible")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view should show the game over box")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if cmd == nil {
		t.Error("restart should re-arm the tick chain")
	}
	if m.State().GameOver || m.overlay.Visible() {
		t.Error("restart should hide the overlay and resume")
	}
	if got := m.State().Score; got != 5 {
		t.Errorf("Score after restart = %d, want 5", got)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = next.(Model)
	m, _ = tick(t, m)

	if !m.State().Paused {
		t.Fatal("game should be paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show the pause box")
	}

	ticks := m.State().Ticks
	m, _ = tick(t, m)
	if m.State().Ticks != ticks {
		t.Error("paused game should not advance")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)
	m.Init()
	m, _ = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if m.screen.Width() != 120 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d, want 120x%d", m.screen.Width(), m.screen.Height(), 40-helpHeight)
	}
	if got := m.State().Ticks; got != 1 {
		t.Errorf("resize reset the game: Ticks = %d", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}
