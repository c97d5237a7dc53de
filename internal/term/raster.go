// Package term renders the simulation in a terminal with tcell.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"econflow/internal/sim"
)

// Raster is the scene sampled onto a grid of terminal cells. Each cell has
// a background colour; text cells also carry a rune and foreground colour.
type Raster struct {
	Cols, Rows int
	Bg         []sim.RGB
	Glyph      []rune
	Fg         []sim.RGB
}

func NewRaster(cols, rows int) *Raster {
	r := &Raster{}
	r.Resize(cols, rows)
	return r
}

func (r *Raster) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	n := cols * rows
	r.Cols, r.Rows = cols, rows
	if cap(r.Bg) < n {
		r.Bg = make([]sim.RGB, n)
		r.Glyph = make([]rune, n)
		r.Fg = make([]sim.RGB, n)
	}
	r.Bg = r.Bg[:n]
	r.Glyph = r.Glyph[:n]
	r.Fg = r.Fg[:n]
}

func (r *Raster) cellW() float64 { return sim.Width / float64(r.Cols) }
func (r *Raster) cellH() float64 { return sim.Height / float64(r.Rows) }

// Cell maps a canvas point to a cell, clamped to the grid.
func (r *Raster) Cell(p sim.Point) (int, int) {
	x := int(p.X / r.cellW())
	y := int(p.Y / r.cellH())
	return min(max(x, 0), r.Cols-1), min(max(y, 0), r.Rows-1)
}

// center is the canvas point at the middle of cell (x, y).
func (r *Raster) center(x, y int) sim.Point {
	return sim.Point{X: (float64(x) + 0.5) * r.cellW(), Y: (float64(y) + 0.5) * r.cellH()}
}

func (r *Raster) At(x, y int) int { return y*r.Cols + x }

// Draw samples the scene in the same layer order as the window renderer.
func (r *Raster) Draw(sc *sim.Scene) {
	for i := range r.Bg {
		r.Bg[i] = sc.Background
		r.Glyph[i] = ' '
		r.Fg[i] = sim.Palette.Black
	}
	for _, c := range sc.Circles {
		r.circle(c)
	}
	for _, l := range sc.Lines {
		r.line(l)
	}
	if o := sc.Overlay; o != nil {
		for i := range r.Bg {
			r.Bg[i] = o.Col.Blend(r.Bg[i], o.Alpha)
		}
	}
	for _, t := range sc.Texts {
		r.text(t)
	}
}

// circle fills every cell whose centre lies inside the disc. A disc smaller
// than a cell still marks the cell under its centre.
func (r *Raster) circle(c sim.Circle) {
	cx, cy := r.Cell(c.Pos)
	r.Bg[r.At(cx, cy)] = c.Col.Blend(r.Bg[r.At(cx, cy)], c.Alpha)

	x0, y0 := r.Cell(sim.Point{X: c.Pos.X - c.Radius, Y: c.Pos.Y - c.Radius})
	x1, y1 := r.Cell(sim.Point{X: c.Pos.X + c.Radius, Y: c.Pos.Y + c.Radius})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x == cx && y == cy {
				continue
			}
			p := r.center(x, y)
			if math.Hypot(p.X-c.Pos.X, p.Y-c.Pos.Y) <= c.Radius {
				i := r.At(x, y)
				r.Bg[i] = c.Col.Blend(r.Bg[i], c.Alpha)
			}
		}
	}
}

// line marks the cells along the segment.
func (r *Raster) line(l sim.Line) {
	steps := int(math.Ceil(math.Hypot(l.To.X-l.From.X, l.To.Y-l.From.Y) / (r.cellW() / 2)))
	steps = max(steps, 1)
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x, y := r.Cell(sim.Point{
			X: l.From.X + (l.To.X-l.From.X)*t,
			Y: l.From.Y + (l.To.Y-l.From.Y)*t,
		})
		r.Bg[r.At(x, y)] = l.Col
	}
}

func (r *Raster) text(t sim.Text) {
	if t.Alpha == 0 {
		return
	}
	runes := []rune(t.Str)
	x, y := r.Cell(t.Pos)
	if t.Anchor == sim.AnchorCenter {
		x -= len(runes) / 2
	}
	for i, ch := range runes {
		cx := x + i
		if cx < 0 || cx >= r.Cols {
			continue
		}
		j := r.At(cx, y)
		r.Glyph[j] = ch
		r.Fg[j] = t.Col.Blend(r.Bg[j], t.Alpha)
	}
}

func color(c sim.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blit copies the raster to the screen.
func (r *Raster) Blit(screen tcell.Screen) {
	for y := range r.Rows {
		for x := range r.Cols {
			i := r.At(x, y)
			style := tcell.StyleDefault.Background(color(r.Bg[i])).Foreground(color(r.Fg[i]))
			screen.SetContent(x, y, r.Glyph[i], nil, style)
		}
	}
}
