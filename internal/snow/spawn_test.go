package snow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnFieldRanges(t *testing.T) {
	const density = 2.0
	sc := NewScene(DefaultAttrs(), density, 99)
	w, h := 800.0, 600.0

	spawned := 0
	for i := 0; i < 5000 && spawned < 500; i++ {
		before := len(sc.Active)
		sc.MaybeSpawn(w, h)
		if len(sc.Active) == before {
			continue
		}
		spawned++

		f := sc.Active[len(sc.Active)-1]
		assert.GreaterOrEqual(t, f.X, 0.0)
		assert.Less(t, f.X, w)
		assert.GreaterOrEqual(t, f.Y, 0.0)
		assert.LessOrEqual(t, f.Y, h-SpawnMarginUnits*density, "bottom margin stays clear")

		assert.InDelta(t, 1.0, math.Hypot(f.DirX, f.DirY), 1e-9, "direction is a unit vector")
		assert.GreaterOrEqual(t, f.DirY, math.Sin(70*math.Pi/180)-1e-9, "heading is mostly downward")
		assert.LessOrEqual(t, math.Abs(f.DirX), math.Cos(70*math.Pi/180)+1e-9)

		assert.GreaterOrEqual(t, f.Speed, SpeedMin)
		assert.Less(t, f.Speed, SpeedMax)
		assert.GreaterOrEqual(t, f.Lifetime, LifetimeMinMs)
		assert.Less(t, f.Lifetime, LifetimeMaxMs)
		assert.GreaterOrEqual(t, f.Scale, 0.0)
		assert.Less(t, f.Scale, DefaultScaleMax)

		assert.True(t, f.Kind == FlakeDot || f.Kind == FlakeCrystal,
			"the reserved crystal variant is never spawned")
		assert.Equal(t, 0.0, f.Age)
		assert.Equal(t, 0.0, f.Alpha)

		// Drain so the population cap never interferes with this test.
		sc.Active = sc.Active[:0]
	}
	require.GreaterOrEqual(t, spawned, 500, "expected roughly a third of rolls to spawn")
}

func TestSpawnBothKindsOccur(t *testing.T) {
	sc := NewScene(DefaultAttrs(), 1.0, 3)
	var dots, crystals int
	for i := 0; i < 2000; i++ {
		before := len(sc.Active)
		sc.MaybeSpawn(800, 600)
		if len(sc.Active) > before {
			switch sc.Active[len(sc.Active)-1].Kind {
			case FlakeDot:
				dots++
			case FlakeCrystal:
				crystals++
			}
			sc.Active = sc.Active[:0]
		}
	}
	assert.Positive(t, dots)
	assert.Positive(t, crystals)
}

func TestSpawnPopulationCap(t *testing.T) {
	sc := NewScene(DefaultAttrs(), 1.0, 17)
	for i := 0; i < 10000; i++ {
		sc.MaybeSpawn(800, 600)
		require.LessOrEqual(t, len(sc.Active), MaxFlakes)
	}
	assert.Equal(t, MaxFlakes, len(sc.Active), "without expiry the set fills to the cap")
}

func TestSpawnReassignsRecycledRecord(t *testing.T) {
	sc := NewScene(DefaultAttrs(), 1.0, 5)

	// Plant a dirty record in the pool.
	dirty := &Flake{X: -999, Y: -999, Age: 12345, Alpha: 9, Speed: -1, Kind: FlakeCrystalAlt}
	sc.Pool.Release(dirty)

	for len(sc.Active) == 0 {
		sc.MaybeSpawn(800, 600)
	}
	f := sc.Active[0]
	require.Same(t, dirty, f, "the spawn pulls the pooled record")

	assert.Equal(t, 0.0, f.Age)
	assert.Equal(t, 0.0, f.Alpha)
	assert.GreaterOrEqual(t, f.X, 0.0)
	assert.GreaterOrEqual(t, f.Y, 0.0)
	assert.GreaterOrEqual(t, f.Speed, SpeedMin)
	assert.NotEqual(t, FlakeCrystalAlt, f.Kind)
}

func TestSpawnRollConsumedWhenFull(t *testing.T) {
	sc := NewScene(DefaultAttrs(), 1.0, 21)
	for i := 0; i < MaxFlakes; i++ {
		sc.Active = append(sc.Active, &Flake{Lifetime: 1e12})
	}

	shadow := *sc.rand
	sc.MaybeSpawn(800, 600)
	shadow.Float64()

	assert.Equal(t, MaxFlakes, len(sc.Active), "no spawn past the cap")
	assert.Equal(t, shadow.s, sc.rand.s,
		"a full active set still consumes exactly one roll per frame")
}

func TestSpawnTinySurface(t *testing.T) {
	sc := NewScene(DefaultAttrs(), 1.0, 9)
	for len(sc.Active) == 0 {
		sc.MaybeSpawn(100, 10) // height below the margin
	}
	f := sc.Active[0]
	assert.Equal(t, 0.0, f.Y, "y collapses to 0 when the margin exceeds the height")
}
