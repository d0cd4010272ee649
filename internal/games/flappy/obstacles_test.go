package flappy

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newTestField(t *testing.T, worldH, gap, margin float64, seed int64) *Field {
	t.Helper()
	f, err := NewField(
		config.World{Width: 400, Height: worldH},
		config.Pipes{Width: 50, Gap: gap, Speed: 1, SpawnInterval: 230, MinMargin: margin},
		rand.New(rand.NewSource(seed)),
	)
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}
	return f
}

func TestSpawnRangeAndHeights(t *testing.T) {
	f := newTestField(t, 400, 200, 20, 7)

	for i := 0; i < 1000; i++ {
		f.Spawn()
	}

	if f.Len() != 1000 {
		t.Fatalf("Len() = %d, expected 1000", f.Len())
	}

	for i, o := range f.Obstacles() {
		if o.TopHeight < 20 || o.TopHeight > 180 {
			t.Errorf("obstacle %d: TopHeight %f outside [20, 180]", i, o.TopHeight)
		}
		if sum := o.TopHeight + o.BottomHeight + 200; math.Abs(sum-400) > epsilon {
			t.Errorf("obstacle %d: top+bottom+gap = %f, expected 400", i, sum)
		}
		if o.X != 400 {
			t.Errorf("obstacle %d: X = %f, expected spawn at world width", i, o.X)
		}
		if o.Passed {
			t.Errorf("obstacle %d: new obstacle should not be passed", i)
		}
	}
}

func TestNewFieldRejectsDegenerateRange(t *testing.T) {
	_, err := NewField(
		config.World{Width: 400, Height: 230},
		config.Pipes{Width: 50, Gap: 200, Speed: 1, SpawnInterval: 230, MinMargin: 20},
		rand.New(rand.NewSource(1)),
	)
	if err == nil {
		t.Fatal("NewField should reject a world shorter than gap + 2*margin")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestAdvanceRemovesExpiredObstacle(t *testing.T) {
	f := newTestField(t, 400, 200, 20, 1)
	f.obstacles = append(f.obstacles, Obstacle{X: -51 + 1, TopHeight: 100, BottomHeight: 100})

	// x=-50: right edge exactly 0, still live
	f.Advance(0)
	if f.Len() != 1 {
		t.Fatalf("obstacle with right edge at 0 should stay, Len() = %d", f.Len())
	}

	f.Advance(1)
	if f.Len() != 0 {
		t.Errorf("obstacle at x=-51 should be removed, Len() = %d", f.Len())
	}
}

func TestAdvanceRemovesSeveralExpired(t *testing.T) {
	f := newTestField(t, 400, 200, 20, 1)
	f.obstacles = append(f.obstacles,
		Obstacle{X: -60},
		Obstacle{X: -55},
		Obstacle{X: 10},
		Obstacle{X: 200},
	)

	f.Advance(2)

	got := f.Obstacles()
	if len(got) != 2 {
		t.Fatalf("Len() = %d, expected 2", len(got))
	}
	if got[0].X != 8 || got[1].X != 198 {
		t.Errorf("remaining obstacles at %f, %f; expected 8, 198", got[0].X, got[1].X)
	}
}

func TestMaybeSpawnCadence(t *testing.T) {
	f := newTestField(t, 400, 200, 20, 1)

	spawned := 0
	for tick := 1; tick <= 690; tick++ {
		if f.MaybeSpawn(tick, 230) {
			spawned++
		}
	}

	if spawned != 3 {
		t.Errorf("spawned %d obstacles in 690 ticks, expected 3", spawned)
	}
	if f.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", f.Len())
	}
}

func TestUpdatePassedIsIdempotent(t *testing.T) {
	f := newTestField(t, 400, 200, 20, 1)
	f.obstacles = append(f.obstacles,
		Obstacle{X: -10}, // right edge 40 < 50
		Obstacle{X: 0},   // right edge 50, not yet passed
		Obstacle{X: 100},
	)

	events := 0
	onPass := func(Obstacle) { events++ }

	if n := f.UpdatePassed(50, onPass); n != 1 {
		t.Errorf("first UpdatePassed = %d, expected 1", n)
	}
	if n := f.UpdatePassed(50, onPass); n != 0 {
		t.Errorf("second UpdatePassed = %d, expected 0", n)
	}

	f.Advance(1)
	if n := f.UpdatePassed(50, onPass); n != 1 {
		t.Errorf("after advance UpdatePassed = %d, expected 1", n)
	}

	if events != 2 {
		t.Errorf("pass events = %d, expected 2", events)
	}
}

func TestObstaclesReturnsCopy(t *testing.T) {
	f := newTestField(t, 400, 200, 20, 1)
	f.Spawn()

	got := f.Obstacles()
	got[0].X = -1000

	if f.Obstacles()[0].X != 400 {
		t.Error("Obstacles() should not alias field storage")
	}
}

func TestSpawnDeterminism(t *testing.T) {
	a := newTestField(t, 600, 200, 20, 99)
	b := newTestField(t, 600, 200, 20, 99)

	for i := 0; i < 20; i++ {
		a.Spawn()
		b.Spawn()
	}

	oa, ob := a.Obstacles(), b.Obstacles()
	for i := range oa {
		if oa[i] != ob[i] {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, oa[i], ob[i])
		}
	}
}
