package flappy

import "fmt"

// draw emits one frame to the renderer. Caller holds c.mu.
func (c *Controller) draw() {
	r := c.renderer
	r.Clear()

	b := c.body.Box()
	r.DrawRect(b.X, b.Y, b.W, b.H, BirdColor)

	w := c.field.Width()
	h := c.cfg.World.Height
	for _, o := range c.field.obstacles {
		top := o.TopBox(w)
		r.DrawRect(top.X, top.Y, top.W, top.H, PipeColor)

		bottom := o.BottomBox(w, h)
		r.DrawRect(bottom.X, bottom.Y, bottom.W, bottom.H, PipeColor)
	}

	r.DrawText(fmt.Sprintf("Score: %d", c.score.Value()), ScoreTextX, ScoreTextY)
}
