package snow

import "math"

// MaybeSpawn rolls the per-frame admission chance and spawns at most one
// flake. The roll is always consumed, even when the active set is full, so a
// full screen doesn't shift the random sequence.
func (sc *Scene) MaybeSpawn(w, h float64) {
	roll := sc.rand.Float64()
	if roll <= SpawnThreshold || len(sc.Active) >= MaxFlakes {
		return
	}

	f := sc.Pool.Acquire()
	sc.resetFlake(f, w, h)
	sc.Active = append(sc.Active, f)
}

// resetFlake reassigns every field; records coming out of the pool still
// carry their previous life's values.
func (sc *Scene) resetFlake(f *Flake, w, h float64) {
	r := sc.rand

	f.X = r.RangeF(0, w)
	maxY := h - SpawnMarginUnits*sc.density
	if maxY < 0 {
		maxY = 0
	}
	f.Y = r.RangeF(0, maxY)

	angle := r.RangeF(HeadingMinDeg, HeadingMaxDeg) * math.Pi / 180
	f.DirX = math.Cos(angle)
	f.DirY = math.Sin(angle)
	f.Speed = r.RangeF(SpeedMin, SpeedMax)

	if r.Intn(2) == 0 {
		f.Kind = FlakeDot
	} else {
		f.Kind = FlakeCrystal
	}

	f.Lifetime = r.RangeF(LifetimeMinMs, LifetimeMaxMs)
	f.Scale = r.RangeF(0, sc.attrs.ScaleMax)
	f.Age = 0
	f.Alpha = 0
}
