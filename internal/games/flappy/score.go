package flappy

// ScoreTracker counts obstacles passed on top of a configurable starting value.
// An int is ample for any realistic session length.
type ScoreTracker struct {
	value   int
	initial int
}

// NewScoreTracker creates a tracker starting at initial.
func NewScoreTracker(initial int) *ScoreTracker {
	return &ScoreTracker{value: initial, initial: initial}
}

// Increment adds one point.
func (s *ScoreTracker) Increment() {
	s.value++
}

// Reset restores the starting value.
func (s *ScoreTracker) Reset() {
	s.value = s.initial
}

// Value returns the current score.
func (s *ScoreTracker) Value() int {
	return s.value
}
