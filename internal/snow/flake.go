package snow

// FlakeKind selects a flake's visual form.
type FlakeKind uint8

const (
	FlakeDot FlakeKind = iota
	FlakeCrystal
	// FlakeCrystalAlt is a reserved second crystal variant. The spawner never
	// picks it and it currently renders identically to FlakeCrystal.
	FlakeCrystalAlt
)

// Flake is one falling snowflake. Records cycle through FlakePool, so every
// field is reassigned at spawn time.
type Flake struct {
	X, Y float64 // device pixels

	DirX, DirY float64 // unit direction, fixed at spawn
	Speed      float64 // constant for the flake's life

	Alpha    float64 // [0,1], recomputed every frame from Age
	Lifetime float64 // total ms this flake exists
	Age      float64 // ms since spawn

	Scale float64
	Kind  FlakeKind
}
