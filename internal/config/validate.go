package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks that the configuration describes a playable world.
// It reports the first problem found.
func (c FlappyConfig) Validate() error {
	w, b, p := c.World, c.Bird, c.Pipes

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"world.width", w.Width}, {"world.height", w.Height},
		{"bird.x", b.X}, {"bird.y", b.Y}, {"bird.width", b.Width}, {"bird.height", b.Height},
		{"bird.gravity", b.Gravity}, {"bird.lift", b.Lift},
		{"pipes.width", p.Width}, {"pipes.gap", p.Gap}, {"pipes.speed", p.Speed},
		{"pipes.min_margin", p.MinMargin},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid("%s must be a finite number, got %g", f.name, f.v)
		}
	}

	if w.Width <= 0 || w.Height <= 0 {
		return invalid("world must have positive extent, got %gx%g", w.Width, w.Height)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return invalid("bird must have positive extent, got %gx%g", b.Width, b.Height)
	}
	if b.Height > w.Height {
		return invalid("bird height %g exceeds world height %g", b.Height, w.Height)
	}
	if b.X < 0 || b.X+b.Width > w.Width {
		return invalid("bird x %g places it outside the world", b.X)
	}
	if b.Y < 0 || b.Y+b.Height > w.Height {
		return invalid("bird y %g places it outside the world", b.Y)
	}
	if b.Gravity <= 0 {
		return invalid("gravity must be positive, got %g", b.Gravity)
	}
	if b.Lift >= 0 {
		return invalid("lift must be negative (upward), got %g", b.Lift)
	}
	if p.Width <= 0 {
		return invalid("pipe width must be positive, got %g", p.Width)
	}
	if p.Gap <= 0 {
		return invalid("pipe gap must be positive, got %g", p.Gap)
	}
	if p.Speed <= 0 {
		return invalid("pipe speed must be positive, got %g", p.Speed)
	}
	if p.SpawnInterval <= 0 {
		return invalid("spawn interval must be positive, got %d", p.SpawnInterval)
	}
	if p.MinMargin < 0 {
		return invalid("min margin must not be negative, got %g", p.MinMargin)
	}
	if w.Height <= p.Gap+2*p.MinMargin {
		return invalid("world height %g leaves no spawn range for gap %g with margin %g",
			w.Height, p.Gap, p.MinMargin)
	}
	if c.Score.Initial < 0 {
		return invalid("initial score must not be negative, got %d", c.Score.Initial)
	}
	if c.Loop.TickRate <= 0 {
		return invalid("tick rate must be positive, got %d", c.Loop.TickRate)
	}
	return nil
}
