package sim

// EndSequence drives the four terminal stages with frame counters. It never
// changes the stage itself; the Simulation consults CheckPhaseComplete.
type EndSequence struct {
	Timer            int
	SurvivalTimer    int
	ReplicationTimer int

	ActiveMachines int
	MaxMachines    int

	// Positions is the machine layout, fixed for the duration of a playthrough
	// of the end sequence.
	Positions []Point

	rng *Rand
}

func NewEndSequence(rng *Rand) *EndSequence {
	if rng == nil {
		rng = NewRand(1)
	}
	e := &EndSequence{
		MaxMachines: MaxMachines,
		rng:         rng,
	}
	e.GenerateLayout()
	return e
}

// ResetTimer zeroes every counter and the replication population.
func (e *EndSequence) ResetTimer() {
	e.Timer = 0
	e.SurvivalTimer = 0
	e.ReplicationTimer = 0
	e.ActiveMachines = 0
}

// Enter prepares the driver for a newly entered stage. Entering
// MachineSurvival also draws a fresh machine layout.
func (e *EndSequence) Enter(s Stage) {
	e.ResetTimer()
	if s == MachineSurvival {
		e.GenerateLayout()
	}
}

// GenerateLayout builds a jittered grid covering the canvas plus a scatter of
// uniform points, then shuffles the order machines appear in.
func (e *EndSequence) GenerateLayout() {
	n := LayoutRows*LayoutCols + LayoutExtra
	if cap(e.Positions) < n {
		e.Positions = make([]Point, 0, n)
	}
	e.Positions = e.Positions[:0]

	spacingX := float64(Width-2*LayoutMargin) / LayoutCols
	spacingY := float64(Height-2*LayoutMargin) / LayoutRows
	for i := range LayoutRows * LayoutCols {
		row := i / LayoutCols
		col := i % LayoutCols
		x := float64(LayoutMargin) + float64(col)*spacingX + float64(e.rng.Range(-LayoutJitter, LayoutJitter))
		y := float64(LayoutMargin) + float64(row)*spacingY + float64(e.rng.Range(-LayoutJitter, LayoutJitter))
		e.Positions = append(e.Positions, Point{X: float64(int(x)), Y: float64(int(y))})
	}
	for range LayoutExtra {
		x := e.rng.Range(LayoutMargin, Width-LayoutMargin)
		y := e.rng.Range(LayoutMargin, Height-LayoutMargin)
		e.Positions = append(e.Positions, Point{X: float64(x), Y: float64(y)})
	}
	e.rng.Shuffle(len(e.Positions), func(i, j int) {
		e.Positions[i], e.Positions[j] = e.Positions[j], e.Positions[i]
	})
}

// Tick advances the counters of the given stage by one frame. It returns true
// when the replication population grew this frame.
func (e *EndSequence) Tick(s Stage) bool {
	switch s {
	case MachineSurvival:
		e.SurvivalTimer++
	case MachineReplication:
		e.Timer++
		grew := false
		if e.Timer%ReplicationEvery == 0 {
			grew = e.replicate()
		}
		if e.Dense() {
			e.ReplicationTimer++
		}
		return grew
	case AiAlignment:
		e.Timer++
		e.ReplicationTimer++
	case EndState:
	case Traditional, AiTransition, AiMature, Inequality, Unrest, PostUnrest, MachineTakeover:
	default:
		panic(unknownStage(s))
	}
	return false
}

func (e *EndSequence) replicate() bool {
	prev := e.ActiveMachines
	if e.ActiveMachines == 0 {
		e.ActiveMachines = 10
	} else {
		e.ActiveMachines = min(e.ActiveMachines*14/10+2, e.MaxMachines)
	}
	return e.ActiveMachines != prev
}

// Dense reports whether replication has reached near-full coverage.
func (e *EndSequence) Dense() bool {
	return e.ActiveMachines >= e.MaxMachines-MachineDensitySlop
}

// CheckPhaseComplete reports whether the stage has finished and the
// Simulation should advance. EndState never completes on its own.
func (e *EndSequence) CheckPhaseComplete(s Stage) bool {
	switch s {
	case MachineSurvival:
		return e.SurvivalTimer >= SurvivalTextDelay
	case MachineReplication:
		return e.Dense() && e.ReplicationTimer >= ReplicationHold
	case AiAlignment:
		return e.Timer >= AlignmentTextDelay+FinalTextDelay+SubtitleSpan
	case EndState, Traditional, AiTransition, AiMature, Inequality, Unrest, PostUnrest, MachineTakeover:
		return false
	}
	panic(unknownStage(s))
}

// VisibleMachines is the number of layout positions currently populated,
// never more than the layout holds.
func (e *EndSequence) VisibleMachines() int {
	return clamp(e.ActiveMachines, 0, len(e.Positions))
}

// MachineAlpha is the staggered fade-in of machine i during replication.
func (e *EndSequence) MachineAlpha(i int) int {
	return clamp((e.Timer-i*2)*15, 0, 255)
}

// AlignmentFade returns the machine and text opacity during AiAlignment. The
// machines fade out over FadeFrames once ReplicationTimer passes FadeStart;
// the text fades in over the same window.
func (e *EndSequence) AlignmentFade() (machineAlpha, textAlpha int) {
	if e.ReplicationTimer < FadeStart {
		return 255, 0
	}
	p := float64(min(FadeFrames, e.ReplicationTimer-FadeStart))
	machineAlpha = int(clampF(255-p*FadePerFrame, 0, 255))
	textAlpha = int(clampF(p*FadePerFrame, 0, 255))
	return machineAlpha, textAlpha
}

// Caption is which alignment text block is on screen.
type Caption int

const (
	CaptionNone Caption = iota
	CaptionWinningMove
	CaptionClosing
)

// AlignmentCaption selects the subtitle block and its opacity from the
// subtitle clock (ReplicationTimer - SubtitleOffset).
func (e *EndSequence) AlignmentCaption() (Caption, int) {
	_, textAlpha := e.AlignmentFade()
	if textAlpha <= 0 {
		return CaptionNone, 0
	}
	st := e.ReplicationTimer - SubtitleOffset
	switch {
	case st > 0 && st <= SubtitleSpan:
		return CaptionWinningMove, min(255, st*8)
	case st > SubtitleSpan:
		return CaptionClosing, clamp((st-ClosingOffset)*4, 0, 255)
	}
	return CaptionNone, 0
}
