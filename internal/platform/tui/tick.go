// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and frame scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// teaScheduler adapts the controller's self-rescheduling tick to Bubble Tea
// commands. At most one tick command is in flight; when the controller stops
// re-arming, no further command is issued and the chain ends.
type teaScheduler struct {
	rate     int
	next     func()
	inFlight bool
}

func newTeaScheduler(rate int) *teaScheduler {
	return &teaScheduler{rate: rate}
}

// ScheduleNextTick arms tick for the next TickMsg.
func (s *teaScheduler) ScheduleNextTick(tick func()) {
	s.next = tick
}

// Stop disarms the pending tick.
func (s *teaScheduler) Stop() {
	s.next = nil
}

// arm returns a tick command if a tick is armed and none is in flight.
func (s *teaScheduler) arm() tea.Cmd {
	if s.next == nil || s.inFlight {
		return nil
	}
	s.inFlight = true
	return tickCmd(s.rate)
}

// fire runs the armed tick, if any, in response to a TickMsg.
func (s *teaScheduler) fire() {
	s.inFlight = false
	tick := s.next
	s.next = nil
	if tick != nil {
		tick()
	}
}
