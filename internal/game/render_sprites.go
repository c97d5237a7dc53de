package game

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func hypot(x, y float64) float64 { return math.Hypot(x, y) }

// FlushCircles draws all queued circles with alpha blending and clears the queue.
func (r *Renderer) FlushCircles(cam Camera, fbW, fbH int) {
	if len(r.circleBuf) == 0 {
		return
	}

	count := min(len(r.circleBuf)/circleStride, MaxSpriteRender)

	gl.UseProgram(r.circleProg)
	gl.BindVertexArray(r.circleVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.circleVBO)

	gl.Uniform2f(r.ciUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.ciUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.ciUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*circleStride*4, gl.Ptr(r.circleBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
	r.circleBuf = r.circleBuf[:0]
}

// FlushQuads draws all queued triangles with alpha blending and clears the queue.
func (r *Renderer) FlushQuads(cam Camera, fbW, fbH int) {
	if len(r.quadBuf) == 0 {
		return
	}

	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)

	gl.Uniform2f(r.qUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.qUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.qUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.quadBuf) / quadStride
	gl.BufferData(gl.ARRAY_BUFFER, len(r.quadBuf)*4, gl.Ptr(r.quadBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	r.quadBuf = r.quadBuf[:0]
}
