package snow

// Population caps.
const (
	MaxFlakes  = 100 // active flakes on screen
	PoolRetain = 40  // expired records kept for reuse
)

// Per-frame spawn admission: one flake is spawned when a uniform roll
// exceeds the threshold and the active set is below MaxFlakes.
const SpawnThreshold = 0.7

// Spawn ranges.
const (
	SpeedMin = 20.0
	SpeedMax = 24.0

	// Heading in degrees: mostly downward with slight horizontal drift.
	HeadingMinDeg = 70.0
	HeadingMaxDeg = 110.0

	LifetimeMinMs = 2000.0
	LifetimeMaxMs = 2100.0

	// Bottom band (logical units) kept clear of fresh flakes.
	SpawnMarginUnits = 20.0
)

// Timing.
const (
	// Max simulated step per frame, ~one 60 fps frame. Caps the jump after a stall.
	FrameClampMs = 17.0

	// Converts speed*dt into device pixels.
	SpeedDivisor = 500.0

	// Fade-in duration; after this the flake fades back out until expiry.
	FadeRiseMs = 200.0
)

// Visual constants (logical units, multiplied by the density factor).
const (
	DefaultScaleMax = 3.2

	DotSizeUnits     = 1.5
	StrokeWidthUnits = 0.5

	// Crystal geometry: main rib length plus the two branch offsets,
	// each further doubled and scaled by the flake's own scale.
	RibLenUnits     = 2.0
	BranchSideUnits = 0.57
	BranchUpUnits   = 1.55
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
)
