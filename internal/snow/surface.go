package snow

// RGB is an 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Surface is the host drawing target for one frame. Coordinates are device
// pixels with the origin at the top-left. Implementations are free to batch;
// line ends get round caps.
type Surface interface {
	// Size reports the drawable area in device pixels.
	Size() (w, h float64)

	// DrawPoint draws a round point of the given diameter.
	DrawPoint(x, y, size float64, col RGB, alpha float64)

	// DrawLine draws a stroked segment of the given width.
	DrawLine(x1, y1, x2, y2, width float64, col RGB, alpha float64)
}
