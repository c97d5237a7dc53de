package game

import "econflow/internal/sim"

// Window defaults. The logical canvas is sim.Width x sim.Height and is
// letterboxed into whatever framebuffer the window ends up with.
const (
	WindowWidth  = sim.Width
	WindowHeight = sim.Height
	WindowTitle  = "Economic Flow Simulation"
)

// FrameTime is the fixed simulation step.
const FrameTime = 1.0 / sim.FPS

// MaxFrameDelta caps the time fed to the accumulator after a stall.
const MaxFrameDelta = 0.1

const MaxSpriteRender = sim.MaxParticles*3 + 1200

// Font atlas layout: printable ASCII (32-127) rasterised from basicfont.Face7x13.
const (
	FontCellW  = 7
	FontCellH  = 13
	FontAscent = 11
	FontCols   = 16
	FontRows   = 6
	FontFirst  = 32
	FontAtlasW = FontCellW * FontCols // 112
	FontAtlasH = FontCellH * FontRows // 78
)

// Screen shake on a collapse.
const (
	ShakeIntensity = 6.0
	ShakeDuration  = 0.5
)

// fontScale maps a scene font size to an atlas scale in canvas pixels.
func fontScale(s sim.FontSize) float32 {
	switch s {
	case sim.FontTiny:
		return 1.0
	case sim.FontSmall:
		return 1.4
	case sim.FontRegular:
		return 2.0
	case sim.FontBig:
		return 3.0
	}
	return 2.0
}
