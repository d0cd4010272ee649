package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Scheduler arms the next simulation tick. Frontends implement it on top of their
// frame source (a Bubble Tea tick command, ebiten's Update, a test stepper).
// Implementations must not invoke the callback synchronously from ScheduleNextTick.
type Scheduler interface {
	// ScheduleNextTick arranges for tick to run on the next frame.
	ScheduleNextTick(tick func())
	// Stop cancels any armed tick.
	Stop()
}

// Renderer receives the draw calls for one frame, in world units.
// The controller calls Clear once, then one rect for the body, two per obstacle
// and one text for the score.
type Renderer interface {
	Clear()
	DrawRect(x, y, w, h float64, c core.Color)
	DrawText(text string, x, y float64)
}

// GameOverUI is shown when the bird crashes and hidden on restart.
type GameOverUI interface {
	Show(score int)
	Hide()
}

type nopRenderer struct{}

func (nopRenderer) Clear()                                    {}
func (nopRenderer) DrawRect(_, _, _, _ float64, _ core.Color) {}
func (nopRenderer) DrawText(_ string, _, _ float64)           {}

type nopUI struct{}

func (nopUI) Show(int) {}
func (nopUI) Hide()    {}
