package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"econflow/internal/sim"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Floats per vertex in each stream.
const (
	circleStride = 7 // x, y, diameter, r, g, b, a
	quadStride   = 6 // x, y, r, g, b, a
	textStride   = 8 // x, y, u, v, r, g, b, a
)

type Renderer struct {
	// Circle program: point sprites.
	circleProg uint32
	circleVAO  uint32
	circleVBO  uint32

	ciUCamera     int32
	ciUZoom       int32
	ciUResolution int32

	// Quad program: coloured triangles.
	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32

	qUCamera     int32
	qUZoom       int32
	qUResolution int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	// Reusable per-frame buffers.
	circleBuf []float32
	quadBuf   []float32
}

func NewRenderer() (*Renderer, error) {
	circleProg, err := linkProgram(circleVertSrc, circleFragSrc)
	if err != nil {
		return nil, fmt.Errorf("circle program: %w", err)
	}
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		gl.DeleteProgram(circleProg)
		return nil, fmt.Errorf("quad program: %w", err)
	}

	r := &Renderer{
		circleProg: circleProg,
		quadProg:   quadProg,
	}

	// Circle VAO/VBO: streaming buffer for point sprites.
	var cVAO, cVBO uint32
	gl.GenVertexArrays(1, &cVAO)
	gl.GenBuffers(1, &cVBO)
	gl.BindVertexArray(cVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, cVBO)

	stride := int32(circleStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	r.circleVAO = cVAO
	r.circleVBO = cVBO

	gl.UseProgram(circleProg)
	r.ciUCamera = gl.GetUniformLocation(circleProg, gl.Str("uCamera\x00"))
	r.ciUZoom = gl.GetUniformLocation(circleProg, gl.Str("uZoom\x00"))
	r.ciUResolution = gl.GetUniformLocation(circleProg, gl.Str("uResolution\x00"))

	// Quad VAO/VBO: streaming triangles.
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	stride = int32(quadStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 64*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	gl.UseProgram(quadProg)
	r.qUCamera = gl.GetUniformLocation(quadProg, gl.Str("uCamera\x00"))
	r.qUZoom = gl.GetUniformLocation(quadProg, gl.Str("uZoom\x00"))
	r.qUResolution = gl.GetUniformLocation(quadProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.circleVBO, r.quadVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.circleVAO, r.quadVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.circleProg, r.quadProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the whole framebuffer to the letterbox colour.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func rgba(c sim.RGB, alpha uint8) (float32, float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, float32(alpha) / 255.0
}

// QueueCircle adds a filled circle to the circle stream.
func (r *Renderer) QueueCircle(c sim.Circle) {
	cr, cg, cb, ca := rgba(c.Col, c.Alpha)
	r.circleBuf = append(r.circleBuf,
		float32(c.Pos.X), float32(c.Pos.Y), float32(2*c.Radius), cr, cg, cb, ca)
}

// QueueRect adds an axis-aligned rectangle to the quad stream.
func (r *Renderer) QueueRect(x, y, w, h float32, col sim.RGB, alpha uint8) {
	cr, cg, cb, ca := rgba(col, alpha)
	r.quadBuf = append(r.quadBuf,
		x, y, cr, cg, cb, ca,
		x+w, y, cr, cg, cb, ca,
		x, y+h, cr, cg, cb, ca,
		x+w, y, cr, cg, cb, ca,
		x+w, y+h, cr, cg, cb, ca,
		x, y+h, cr, cg, cb, ca,
	)
}

// QueueLine adds a stroked segment as a quad of the given width.
func (r *Renderer) QueueLine(l sim.Line) {
	dx := l.To.X - l.From.X
	dy := l.To.Y - l.From.Y
	length := hypot(dx, dy)
	if length == 0 {
		return
	}
	nx := float32(-dy / length * l.Width * 0.5)
	ny := float32(dx / length * l.Width * 0.5)
	ax, ay := float32(l.From.X), float32(l.From.Y)
	bx, by := float32(l.To.X), float32(l.To.Y)
	cr, cg, cb, ca := rgba(l.Col, 255)
	r.quadBuf = append(r.quadBuf,
		ax+nx, ay+ny, cr, cg, cb, ca,
		bx+nx, by+ny, cr, cg, cb, ca,
		ax-nx, ay-ny, cr, cg, cb, ca,
		bx+nx, by+ny, cr, cg, cb, ca,
		bx-nx, by-ny, cr, cg, cb, ca,
		ax-nx, ay-ny, cr, cg, cb, ca,
	)
}
