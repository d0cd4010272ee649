package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Body is the player-controlled bird. Only the vertical axis moves.
type Body struct {
	X, Y          float64 // Top-left corner in world units
	Width, Height float64
	Velocity      float64 // Vertical velocity, positive = down
	Gravity       float64 // Added to Velocity every tick
	Lift          float64 // Velocity set by a flap

	startY float64
}

// NewBody creates a body at its configured starting position, at rest.
func NewBody(cfg config.Bird) *Body {
	return &Body{
		X:       cfg.X,
		Y:       cfg.Y,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Gravity: cfg.Gravity,
		Lift:    cfg.Lift,
		startY:  cfg.Y,
	}
}

// ApplyLift sets the velocity to the lift impulse.
// Repeated flaps reset the velocity rather than accumulate it.
func (b *Body) ApplyLift() {
	b.Velocity = b.Lift
}

// Integrate advances the body by one tick and keeps it inside [0, worldHeight-Height].
// Hitting the floor or ceiling stops the body dead.
func (b *Body) Integrate(worldHeight float64) {
	b.Velocity += b.Gravity
	b.Y += b.Velocity

	if y := core.ClampF(b.Y, 0, worldHeight-b.Height); y != b.Y {
		b.Y = y
		b.Velocity = 0
	}
}

// Reset puts the body back at its starting position, at rest.
func (b *Body) Reset() {
	b.Y = b.startY
	b.Velocity = 0
}

// Box returns the body's bounding box.
func (b *Body) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}
