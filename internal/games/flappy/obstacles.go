package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pipe pair: an arm hanging from the ceiling and one standing on the
// floor, with a gap between them. TopHeight + gap + BottomHeight equals the world height.
type Obstacle struct {
	X            float64 // Horizontal position (left edge)
	TopHeight    float64 // Length of the upper arm
	BottomHeight float64 // Length of the lower arm
	Passed       bool    // Whether the bird has cleared this obstacle (for scoring)
}

// TopBox returns the upper arm.
func (o Obstacle) TopBox(width float64) core.Box {
	return core.Box{X: o.X, Y: 0, W: width, H: o.TopHeight}
}

// BottomBox returns the lower arm.
func (o Obstacle) BottomBox(width, worldHeight float64) core.Box {
	return core.Box{X: o.X, Y: worldHeight - o.BottomHeight, W: width, H: o.BottomHeight}
}

// Field handles spawning, movement, pass detection and removal of obstacles.
// Obstacles are ordered oldest (leftmost) first.
type Field struct {
	obstacles []Obstacle
	rng       *rand.Rand

	worldW    float64
	worldH    float64
	width     float64
	gap       float64
	minMargin float64
}

// NewField creates an empty field. It fails if the world is too short to fit the gap
// between two minimum-length arms.
func NewField(world config.World, pipes config.Pipes, rng *rand.Rand) (*Field, error) {
	if world.Height <= pipes.Gap+2*pipes.MinMargin {
		return nil, fmt.Errorf("flappy: world height %g cannot fit gap %g with margin %g: %w",
			world.Height, pipes.Gap, pipes.MinMargin, config.ErrInvalidConfig)
	}
	return &Field{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		worldW:    world.Width,
		worldH:    world.Height,
		width:     pipes.Width,
		gap:       pipes.Gap,
		minMargin: pipes.MinMargin,
	}, nil
}

// Spawn appends a new obstacle at the right edge of the world. The top arm length is
// drawn uniformly from [minMargin, worldHeight-gap-minMargin).
func (f *Field) Spawn() {
	span := f.worldH - f.gap - 2*f.minMargin
	top := f.minMargin + f.rng.Float64()*span

	f.obstacles = append(f.obstacles, Obstacle{
		X:            f.worldW,
		TopHeight:    top,
		BottomHeight: f.worldH - top - f.gap,
	})
}

// MaybeSpawn spawns an obstacle when tick is a multiple of interval.
// The cadence counts ticks, so the spawn rate follows the frontend's frame rate.
func (f *Field) MaybeSpawn(tick, interval int) bool {
	if interval <= 0 || tick%interval != 0 {
		return false
	}
	f.Spawn()
	return true
}

// Advance moves every obstacle left by speed and drops those whose right edge
// has left the world.
func (f *Field) Advance(speed float64) {
	for i := range f.obstacles {
		f.obstacles[i].X -= speed
	}

	live := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X+f.width >= 0 {
			live = append(live, o)
		}
	}
	f.obstacles = live
}

// UpdatePassed marks obstacles whose right edge is left of leadingX as passed and
// calls onPass once for each newly passed obstacle. It returns how many were passed.
func (f *Field) UpdatePassed(leadingX float64, onPass func(Obstacle)) int {
	passed := 0
	for i := range f.obstacles {
		o := &f.obstacles[i]
		if o.Passed || o.X+f.width >= leadingX {
			continue
		}
		o.Passed = true
		passed++
		if onPass != nil {
			onPass(*o)
		}
	}
	return passed
}

// Clear removes all obstacles.
func (f *Field) Clear() {
	f.obstacles = f.obstacles[:0]
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Obstacles returns a copy of the live obstacles, oldest first.
func (f *Field) Obstacles() []Obstacle {
	out := make([]Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

// Width returns the obstacle width.
func (f *Field) Width() float64 {
	return f.width
}
