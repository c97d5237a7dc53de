package game

import "econflow/internal/sim"

// DrawScene renders one frame's display list: canvas background, circles,
// strokes, the warning overlay, then text.
func DrawScene(r *Renderer, sc *sim.Scene, cam Camera, fbW, fbH int) {
	r.QueueRect(0, 0, sim.Width, sim.Height, sc.Background, 255)
	r.FlushQuads(cam, fbW, fbH)

	for _, c := range sc.Circles {
		r.QueueCircle(c)
	}
	r.FlushCircles(cam, fbW, fbH)

	for _, l := range sc.Lines {
		r.QueueLine(l)
	}
	if o := sc.Overlay; o != nil {
		r.QueueRect(0, 0, sim.Width, sim.Height, o.Col, o.Alpha)
	}
	r.FlushQuads(cam, fbW, fbH)

	for _, t := range sc.Texts {
		drawText(r, t, cam, fbW, fbH)
	}
	r.FlushText(fbW, fbH)
}

func drawText(r *Renderer, t sim.Text, cam Camera, fbW, fbH int) {
	if t.Alpha == 0 {
		return
	}
	scale := fontScale(t.Size) * float32(cam.Zoom)
	sx, sy := cam.ToScreen(t.Pos, fbW, fbH)
	if t.Anchor == sim.AnchorCenter {
		sx -= TextWidth(t.Str, scale) / 2
		sy -= float32(FontCellH) * scale / 2
	}
	r.DrawString(t.Str, sx, sy, scale, t.Col, t.Alpha)
}
