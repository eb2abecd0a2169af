package snow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spawningSeed returns a seed whose first roll admits a spawn.
func spawningSeed(t *testing.T) uint64 {
	t.Helper()
	for seed := uint64(1); seed < 10000; seed++ {
		if NewRand(seed).Float64() > SpawnThreshold {
			return seed
		}
	}
	t.Fatal("no spawning seed found")
	return 0
}

func TestFrameDrawsBeforeSpawning(t *testing.T) {
	sc := NewScene(DefaultAttrs(), 1.0, spawningSeed(t))
	s := &fakeSurface{w: 800, h: 600}

	sc.Frame(s, 1000)
	assert.Empty(t, s.points, "the first frame draws the pre-spawn state")
	assert.Empty(t, s.lines)
	require.Len(t, sc.Active, 1, "the seed admits a spawn on the first roll")

	// The newborn's alpha is computed from age 0, so the second frame still
	// draws nothing; it becomes visible on the third.
	s.reset()
	sc.Frame(s, 1016)
	assert.Empty(t, s.points)
	assert.Empty(t, s.lines)

	s.reset()
	sc.Frame(s, 1032)
	assert.Equal(t, 1, len(s.points)+len(s.lines)/18, "the first flake is now visible")
}

func TestFrameClampsFirstStep(t *testing.T) {
	sc := NewScene(DefaultAttrs(), 1.0, spawningSeed(t))
	s := &fakeSurface{w: 800, h: 600}

	// lastFrame starts at zero, so even a huge wall-clock value clamps to 17.
	sc.Frame(s, 5e6)
	require.Len(t, sc.Active, 1)
	assert.Equal(t, FrameClampMs, sc.Active[0].Age)
}

func TestFrameClampsStalls(t *testing.T) {
	sc := NewScene(DefaultAttrs(), 1.0, spawningSeed(t))
	s := &fakeSurface{w: 800, h: 600}

	sc.Frame(s, 1000)
	age := sc.Active[0].Age

	// A 10 second stall still advances by at most one 60 fps frame.
	sc.Frame(s, 11000)
	require.NotEmpty(t, sc.Active)
	assert.LessOrEqual(t, sc.Active[0].Age-age, FrameClampMs)
}

func TestFrameBackwardsClock(t *testing.T) {
	sc := NewScene(DefaultAttrs(), 1.0, spawningSeed(t))
	s := &fakeSurface{w: 800, h: 600}

	sc.Frame(s, 1000)
	age := sc.Active[0].Age

	// The clock stepping backwards freezes rather than reverses the motion.
	sc.Frame(s, 500)
	assert.Equal(t, age, sc.Active[0].Age)
}

func TestScenesAreIndependent(t *testing.T) {
	a := NewScene(DefaultAttrs(), 1.0, 42)
	b := NewScene(DefaultAttrs(), 1.0, 42)
	c := NewScene(DefaultAttrs(), 1.0, 43)
	s := &fakeSurface{w: 800, h: 600}

	now := 0.0
	for i := 0; i < 500; i++ {
		now += 16
		a.Frame(s, now)
		b.Frame(s, now)
	}
	require.Equal(t, len(a.Active), len(b.Active), "same seed, same history")
	for i := range a.Active {
		assert.Equal(t, *a.Active[i], *b.Active[i])
	}

	for i := 0; i < 500; i++ {
		c.Frame(s, float64(i+1)*16)
	}
	assert.NotEmpty(t, c.Active, "a different seed still snows")
}

func TestSceneSoak(t *testing.T) {
	sc := NewScene(DefaultAttrs(), 2.0, 1234)
	s := &fakeSurface{w: 1920, h: 1080}

	now := 0.0
	peak := 0
	for frame := 0; frame < 10000; frame++ {
		now += 16
		s.reset()
		sc.Frame(s, now)

		require.LessOrEqual(t, len(sc.Active), MaxFlakes)
		require.LessOrEqual(t, sc.Pool.Len(), PoolRetain)
		if len(sc.Active) > peak {
			peak = len(sc.Active)
		}

		for _, f := range sc.Active {
			require.GreaterOrEqual(t, f.Alpha, 0.0)
			require.LessOrEqual(t, f.Alpha, 1.0)
			require.GreaterOrEqual(t, f.Age, 0.0)
			require.Less(t, f.Age, f.Lifetime)
		}
	}

	// With a 0.3 admission chance and ~2 second lifetimes the population
	// settles around 40, comfortably below the cap.
	assert.Greater(t, peak, 10, "the scene actually snows")
	assert.Less(t, peak, MaxFlakes, "population stabilizes below the cap")
	assert.Positive(t, sc.Pool.Len(), "recycling is in effect")
}

func TestNewSceneDefaults(t *testing.T) {
	sc := NewScene(Attrs{}, -1, 0)
	assert.Equal(t, 1.0, sc.density, "non-positive density falls back to 1")
	assert.Equal(t, DefaultScaleMax, sc.attrs.ScaleMax)
	assert.NotNil(t, sc.rand)
	assert.NotNil(t, sc.Pool)
}
