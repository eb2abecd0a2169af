package snow

// Scene is one self-contained snowfall instance: the active flakes, the
// recycle pool, a private random source, and frame timing. Scenes share no
// state, so several can run side by side.
type Scene struct {
	Active []*Flake
	Pool   *FlakePool

	attrs   Attrs
	density float64
	rand    *Rand

	// Wall-clock ms of the last processed frame. Zero until the first frame
	// has run, which clamps the first step to FrameClampMs.
	lastFrame float64
}

// NewScene builds an independent scene. density is the device-pixels-per-
// logical-unit factor supplied by the host; seed makes every random draw
// reproducible.
func NewScene(attrs Attrs, density float64, seed uint64) *Scene {
	if density <= 0 {
		density = 1
	}
	if attrs.ScaleMax <= 0 {
		attrs.ScaleMax = DefaultScaleMax
	}
	return &Scene{
		Active:  make([]*Flake, 0, MaxFlakes),
		Pool:    NewFlakePool(),
		attrs:   attrs,
		density: density,
		rand:    NewRand(seed),
	}
}

// Frame runs one full cycle: draw the current flakes, roll the spawn chance,
// then advance by the clamped elapsed time. now is wall-clock milliseconds;
// the host re-invokes Frame every display refresh.
func (sc *Scene) Frame(s Surface, now float64) {
	sc.Draw(s)

	w, h := s.Size()
	sc.MaybeSpawn(w, h)

	dt := clampF(now-sc.lastFrame, 0, FrameClampMs)
	sc.Advance(dt)
	sc.lastFrame = now
}
