package sim

// Canvas dimensions (logical pixels). Front-ends scale this square to fit.
const (
	Width  = 800
	Height = 800
	FPS    = 60
)

// Circle sizes.
const (
	BaseRadius  = 30
	SmallRadius = 10
)

// Attack threshold: hits needed before a target disappears.
const AttacksNeeded = 50

// Warning pulse bounds.
const (
	WarningMin  = 30
	WarningMax  = 100
	WarningStep = 2
)

// Spawn cadence in frames.
const (
	FlowSpawnEvery    = 30
	UnrestSpawnEvery  = 10
	MachineSpawnEvery = 5
)

// End sequence timing (frames at 60 FPS).
const (
	SurvivalTextDelay  = 180
	AlignmentTextDelay = 240
	FinalTextDelay     = 220
	ReplicationHold    = 180 // frames to hold full coverage before alignment
	ReplicationEvery   = 8
	MaxMachines        = 600
	MachineDensitySlop = 5
)

// Alignment fade timing.
const (
	FadeStart      = 120
	FadeFrames     = 60
	FadePerFrame   = 4.25
	SubtitleOffset = 180
	SubtitleSpan   = 360
	ClosingOffset  = 240
)

// Machine layout.
const (
	LayoutMargin = 20
	LayoutRows   = 30
	LayoutCols   = 30
	LayoutJitter = 5
	LayoutExtra  = 100
)

// Particles.
const MaxParticles = 4000

// Actor positions on the canvas.
var (
	RichPos     = Point{X: 150, Y: 150}
	WorkersPos  = Point{X: 650, Y: 150}
	GovtPos     = Point{X: 400, Y: 450}
	BusinessPos = Point{X: 400, Y: 150}
	HumansPos   = Point{X: 650, Y: 450}
)

// Point is a canvas position.
type Point struct {
	X, Y float64
}
