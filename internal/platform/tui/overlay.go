package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GameOverOverlay is the terminal game-over screen. The controller toggles it;
// the model paints it over the last frame.
type GameOverOverlay struct {
	visible bool
	score   int
	logger  *log.Logger
}

// NewGameOverOverlay creates a hidden overlay.
func NewGameOverOverlay(logger *log.Logger) *GameOverOverlay {
	return &GameOverOverlay{logger: logger}
}

// Show displays the final score.
func (o *GameOverOverlay) Show(score int) {
	o.visible = true
	o.score = score
	o.logger.Info("game over", "score", score)
}

// Hide removes the overlay.
func (o *GameOverOverlay) Hide() {
	o.visible = false
	o.logger.Info("game restarted")
}

// Visible reports whether the overlay is shown.
func (o *GameOverOverlay) Visible() bool {
	return o.visible
}

// Draw paints the overlay if it is visible.
func (o *GameOverOverlay) Draw(dst *core.Screen) {
	if !o.visible {
		return
	}
	drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Enter to restart", o.score))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawColoredText(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
