package snow

// Advance steps every active flake by dt milliseconds and releases expired
// ones to the pool. Survivors are compacted in place so each flake is stepped
// exactly once and render order stays insertion order.
func (sc *Scene) Advance(dt float64) {
	if dt <= 0 {
		return
	}

	alive := 0
	for _, f := range sc.Active {
		// Fade envelope: accelerated rise for the first FadeRiseMs, then a
		// decelerated fall across the rest of the lifetime.
		if f.Age < FadeRiseMs {
			f.Alpha = easeAccelerate(f.Age / FadeRiseMs)
		} else {
			f.Alpha = 1 - easeDecelerate((f.Age-FadeRiseMs)/(f.Lifetime-FadeRiseMs))
		}
		f.Alpha = clampF(f.Alpha, 0, 1)

		f.X += f.DirX * f.Speed * dt / SpeedDivisor
		f.Y += f.DirY * f.Speed * dt / SpeedDivisor

		f.Age += dt
		if f.Age >= f.Lifetime {
			sc.Pool.Release(f)
			continue
		}

		sc.Active[alive] = f
		alive++
	}

	// Clear the tail so the pool is the only owner of released records.
	for i := alive; i < len(sc.Active); i++ {
		sc.Active[i] = nil
	}
	sc.Active = sc.Active[:alive]
}
