package game

import (
	"math"

	"econflow/internal/sim"
)

type Camera struct {
	X, Y float64 // canvas space, camera centre
	Zoom float64 // screen pixels per canvas pixel

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in canvas pixels
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// Fit centres the canvas and scales it to fill the framebuffer while
// keeping it square.
func (c *Camera) Fit(fbW, fbH int) {
	c.Zoom = math.Min(float64(fbW)/sim.Width, float64(fbH)/sim.Height)
	c.X = sim.Width / 2
	c.Y = sim.Height / 2
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	c.ShakeIntensity = max(c.ShakeIntensity, intensity)
	c.ShakeTimer = max(c.ShakeTimer, duration)
}

// UpdateShake decays shake and picks a new random offset.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer = max(0, c.ShakeTimer-dt)
	t := c.ShakeTimer
	rr := sim.NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// Shaken returns a copy of the camera with the shake offset applied.
func (c Camera) Shaken() Camera {
	c.X += c.ShakeX
	c.Y += c.ShakeY
	return c
}

// ToScreen maps a canvas point to framebuffer pixels.
func (c Camera) ToScreen(p sim.Point, fbW, fbH int) (float32, float32) {
	sx := (p.X-c.X)*c.Zoom + float64(fbW)*0.5
	sy := (p.Y-c.Y)*c.Zoom + float64(fbH)*0.5
	return float32(sx), float32(sy)
}
