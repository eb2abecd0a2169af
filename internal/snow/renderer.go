package snow

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex layouts, in float32s.
const (
	pointStride = 7  // x, y, size, r, g, b, a
	lineStride  = 11 // x, y, x1, y1, x2, y2, halfW, r, g, b, a
)

// Streaming VBO capacities. Worst case is every flake a crystal: 18 segments,
// 6 quad vertices each.
const (
	maxPointVerts = MaxFlakes
	maxLineVerts  = MaxFlakes * 18 * 6
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer implements Surface on top of OpenGL. Primitives are batched into
// streaming VBOs between BeginFrame and EndFrame; reusable buffers keep
// steady-state frames allocation-free.
type Renderer struct {
	pointProg uint32
	pointVAO  uint32
	pointVBO  uint32
	pURes     int32

	lineProg uint32
	lineVAO  uint32
	lineVBO  uint32
	lURes    int32

	width, height float64

	pointBuf []float32
	lineBuf  []float32
}

func NewRenderer() (*Renderer, error) {
	pointProg, err := linkProgram(pointVertSrc, pointFragSrc)
	if err != nil {
		return nil, fmt.Errorf("point program: %w", err)
	}
	lineProg, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		gl.DeleteProgram(pointProg)
		return nil, fmt.Errorf("line program: %w", err)
	}

	r := &Renderer{
		pointProg: pointProg,
		lineProg:  lineProg,
		pointBuf:  make([]float32, 0, maxPointVerts*pointStride),
		lineBuf:   make([]float32, 0, maxLineVerts*lineStride),
	}

	// Point VAO/VBO.
	var pVAO, pVBO uint32
	gl.GenVertexArrays(1, &pVAO)
	gl.GenBuffers(1, &pVBO)
	gl.BindVertexArray(pVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, pVBO)

	pStride := int32(pointStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxPointVerts*int(pStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, pStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, pStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, pStride, glOffset(3*4))
	r.pointVAO = pVAO
	r.pointVBO = pVBO

	gl.UseProgram(pointProg)
	r.pURes = gl.GetUniformLocation(pointProg, gl.Str("uResolution\x00"))

	// Line VAO/VBO.
	var lVAO, lVBO uint32
	gl.GenVertexArrays(1, &lVAO)
	gl.GenBuffers(1, &lVBO)
	gl.BindVertexArray(lVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, lVBO)

	lStride := int32(lineStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxLineVerts*int(lStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, lStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, lStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, lStride, glOffset(6*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, lStride, glOffset(7*4))
	r.lineVAO = lVAO
	r.lineVBO = lVBO

	gl.UseProgram(lineProg)
	r.lURes = gl.GetUniformLocation(lineProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.pointVBO, r.lineVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.pointVAO, r.lineVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.pointProg, r.lineProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame clears the screen and resets the primitive batches.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	r.width = float64(fbW)
	r.height = float64(fbH)
	r.pointBuf = r.pointBuf[:0]
	r.lineBuf = r.lineBuf[:0]

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// EndFrame uploads and draws the batched primitives.
func (r *Renderer) EndFrame() {
	res := [2]float32{float32(r.width), float32(r.height)}

	if len(r.lineBuf) > 0 {
		gl.UseProgram(r.lineProg)
		gl.Uniform2f(r.lURes, res[0], res[1])
		gl.BindVertexArray(r.lineVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.lineBuf)*4, gl.Ptr(&r.lineBuf[0]))
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.lineBuf)/lineStride))
	}

	if len(r.pointBuf) > 0 {
		gl.UseProgram(r.pointProg)
		gl.Uniform2f(r.pURes, res[0], res[1])
		gl.BindVertexArray(r.pointVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.pointBuf)*4, gl.Ptr(&r.pointBuf[0]))
		gl.DrawArrays(gl.POINTS, 0, int32(len(r.pointBuf)/pointStride))
	}

	gl.BindVertexArray(0)
}

func (r *Renderer) Size() (float64, float64) {
	return r.width, r.height
}

func (r *Renderer) DrawPoint(x, y, size float64, col RGB, alpha float64) {
	if len(r.pointBuf) >= maxPointVerts*pointStride {
		return
	}
	r.pointBuf = append(r.pointBuf,
		float32(x), float32(y), float32(size),
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(alpha),
	)
}

// DrawLine expands the segment into a quad that covers the capsule (width
// plus round caps); the fragment shader carves out the exact shape.
func (r *Renderer) DrawLine(x1, y1, x2, y2, width float64, col RGB, alpha float64) {
	if len(r.lineBuf)+6*lineStride > maxLineVerts*lineStride {
		return
	}

	hw := width / 2
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		dx, dy = 1, 0
	} else {
		dx /= length
		dy /= length
	}
	// Extend past the endpoints by the half-width so the caps fit.
	ex, ey := dx*hw, dy*hw
	nx, ny := -dy*hw, dx*hw

	ax, ay := x1-ex+nx, y1-ey+ny
	bx, by := x1-ex-nx, y1-ey-ny
	cx, cy := x2+ex-nx, y2+ey-ny
	ddx, ddy := x2+ex+nx, y2+ey+ny

	seg := [4]float32{float32(x1), float32(y1), float32(x2), float32(y2)}
	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255
	ca := float32(alpha)
	fhw := float32(hw)

	push := func(px, py float64) {
		r.lineBuf = append(r.lineBuf,
			float32(px), float32(py),
			seg[0], seg[1], seg[2], seg[3],
			fhw, cr, cg, cb, ca,
		)
	}
	push(ax, ay)
	push(bx, by)
	push(cx, cy)
	push(ax, ay)
	push(cx, cy)
	push(ddx, ddy)
}
