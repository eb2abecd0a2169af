package snow

import "math"

// Draw renders every active flake onto s in insertion order.
func (sc *Scene) Draw(s Surface) {
	for _, f := range sc.Active {
		sc.drawFlake(s, f)
	}
}

func (sc *Scene) drawFlake(s Surface, f *Flake) {
	// Quantize to 8-bit opacity like a paint alpha channel.
	a := math.Round(255*clampF(f.Alpha, 0, 1)) / 255
	if a <= 0 {
		return
	}

	switch f.Kind {
	case FlakeDot:
		s.DrawPoint(f.X, f.Y, DotSizeUnits*sc.density, sc.attrs.Color, a)
	case FlakeCrystal, FlakeCrystalAlt:
		sc.drawCrystal(s, f, a)
	}
}

// drawCrystal draws a 6-fold symmetric crystal: spokes at 60 degree steps
// starting straight up, each a main rib plus two short branches rotated into
// the spoke's frame. 18 segments total, all starting at the flake center.
func (sc *Scene) drawCrystal(s Surface, f *Flake, a float64) {
	col := sc.attrs.Color
	width := StrokeWidthUnits * sc.density

	rib := RibLenUnits * sc.density * 2 * f.Scale
	side := BranchSideUnits * sc.density * 2 * f.Scale
	up := BranchUpUnits * sc.density * 2 * f.Scale

	angle := -math.Pi / 2
	const step = math.Pi / 180 * 60
	for i := 0; i < 6; i++ {
		sin, cos := math.Sincos(angle)
		s.DrawLine(f.X, f.Y, f.X+cos*rib, f.Y+sin*rib, width, col, a)

		// Branch offsets (±side, up) rotated a quarter turn behind the rib.
		psin, pcos := math.Sincos(angle - math.Pi/2)
		s.DrawLine(f.X, f.Y, f.X-pcos*side-psin*up, f.Y-psin*side+pcos*up, width, col, a)
		s.DrawLine(f.X, f.Y, f.X+pcos*side-psin*up, f.Y+psin*side+pcos*up, width, col, a)

		angle += step
	}
}
