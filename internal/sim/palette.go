package sim

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Blend mixes c over bg with alpha in 0..255.
func (c RGB) Blend(bg RGB, alpha uint8) RGB {
	t := float64(alpha) / 255.0
	return RGB{
		R: lerpU8(bg.R, c.R, t),
		G: lerpU8(bg.G, c.G, t),
		B: lerpU8(bg.B, c.B, t),
	}
}

var Palette = struct {
	White   RGB
	Black   RGB
	Gold    RGB
	Blue    RGB
	Green   RGB
	Red     RGB
	Orange  RGB
	DarkRed RGB
	Purple  RGB
}{
	White:   RGB{R: 255, G: 255, B: 255},
	Black:   RGB{R: 0, G: 0, B: 0},
	Gold:    RGB{R: 255, G: 215, B: 0},
	Blue:    RGB{R: 0, G: 100, B: 255},
	Green:   RGB{R: 0, G: 255, B: 0},
	Red:     RGB{R: 255, G: 0, B: 0},
	Orange:  RGB{R: 255, G: 165, B: 0},
	DarkRed: RGB{R: 139, G: 0, B: 0},
	Purple:  RGB{R: 128, G: 0, B: 128},
}
