package sim

// FontSize selects one of the front-end's text faces.
type FontSize uint8

const (
	FontTiny FontSize = iota
	FontSmall
	FontRegular
	FontBig
)

// Anchor says how a Text position is interpreted.
type Anchor uint8

const (
	AnchorCenter  Anchor = iota // position is the centre of the text box
	AnchorTopLeft               // position is the top-left corner
)

type Circle struct {
	Pos    Point
	Radius float64
	Col    RGB
	Alpha  uint8
}

type Line struct {
	From, To Point
	Width    float64
	Col      RGB
}

type Text struct {
	Str    string
	Pos    Point
	Anchor Anchor
	Size   FontSize
	Col    RGB
	Alpha  uint8
}

// Overlay is a full-canvas tint drawn above shapes and below text.
type Overlay struct {
	Col   RGB
	Alpha uint8
}

// Scene is the display list for one frame, in draw order within each layer:
// circles, then lines, then the overlay, then text.
type Scene struct {
	Background RGB
	Circles    []Circle
	Lines      []Line
	Overlay    *Overlay
	Texts      []Text
}

// Reset empties the scene keeping its buffers.
func (sc *Scene) Reset() {
	sc.Background = Palette.White
	sc.Circles = sc.Circles[:0]
	sc.Lines = sc.Lines[:0]
	sc.Overlay = nil
	sc.Texts = sc.Texts[:0]
}

func (sc *Scene) circle(p Point, r float64, col RGB, alpha int) {
	sc.Circles = append(sc.Circles, Circle{Pos: p, Radius: r, Col: col, Alpha: uint8(clamp(alpha, 0, 255))})
}

func (sc *Scene) text(s string, p Point, anchor Anchor, size FontSize, col RGB, alpha int) {
	sc.Texts = append(sc.Texts, Text{Str: s, Pos: p, Anchor: anchor, Size: size, Col: col, Alpha: uint8(clamp(alpha, 0, 255))})
}

// BuildScene computes everything to draw for the current frame.
func BuildScene(s *Simulation) Scene {
	var sc Scene
	sc.Build(s)
	return sc
}

// Build fills sc from the simulation, reusing its buffers.
func (sc *Scene) Build(s *Simulation) {
	sc.Reset()
	sm := s.Stages

	for _, ps := range []*ParticleSystem{s.Flows, s.Unrest, s.Attacks} {
		for i := range ps.P {
			p := &ps.P[i]
			sc.circle(Point{X: float64(int(p.X)), Y: float64(int(p.Y))}, p.Size, p.Col, 255)
		}
	}

	switch sm.Stage {
	case MachineSurvival:
		sc.survivors()
	case MachineReplication:
		sc.replication(s.End)
	case AiAlignment:
		sc.alignment(s.End)
	case EndState:
		sc.end(s.End)
	default:
		sc.entities(sm)
	}

	if sm.Stage.IsAlert() {
		sc.Overlay = &Overlay{Col: Palette.Red, Alpha: uint8(clamp(sm.WarningAlpha, 0, 255))}
		caption := "CIVIL UNREST"
		if sm.Stage == MachineTakeover {
			caption = "MACHINE TAKEOVER"
		}
		sc.text(caption, Point{X: Width / 2, Y: Height - 50}, AnchorCenter, FontRegular, Palette.Red, 255)
	}

	sc.info(sm.Stage)
}

// entity draws an actor circle with its caption pair underneath.
func (sc *Scene) entity(p Point, col RGB, main, sub string, radius int) {
	r := float64(radius)
	sc.circle(p, r, col, 255)
	sc.text(main, Point{X: p.X, Y: p.Y + r + 10}, AnchorCenter, FontRegular, Palette.Black, 255)
	if sub != "" {
		sc.text(sub, Point{X: p.X, Y: p.Y + r + 30}, AnchorCenter, FontSmall, Palette.Black, 255)
	}
}

// poolside draws the humans circle with its lounger sketch.
func (sc *Scene) poolside(p Point, radius int) {
	r := float64(radius)
	sc.circle(p, r, Palette.Orange, 255)

	scale := r / BaseRadius
	w := max(1.0, float64(int(3*scale)))
	sc.Lines = append(sc.Lines,
		Line{From: Point{X: p.X - 20*scale, Y: p.Y + 10*scale}, To: Point{X: p.X + 20*scale, Y: p.Y + 10*scale}, Width: w, Col: Palette.Black},
		Line{From: Point{X: p.X - 15*scale, Y: p.Y}, To: Point{X: p.X + 15*scale, Y: p.Y - 10*scale}, Width: w, Col: Palette.Black},
	)
	sc.text("Humans", Point{X: p.X, Y: p.Y + r + 10}, AnchorCenter, FontRegular, Palette.Black, 255)
	sc.text("Poolside", Point{X: p.X, Y: p.Y + r + 30}, AnchorCenter, FontSmall, Palette.Black, 255)
}

func (sc *Scene) entities(sm *StageMachine) {
	if sm.ShowRich {
		sc.entity(RichPos, Palette.Gold, "Rich", "Owners/Investors", sm.RichRadius)
	}
	main, sub := sm.Stage.WorkerLabels()
	sc.entity(WorkersPos, Palette.Blue, main, sub, BaseRadius)
	sc.entity(BusinessPos, Palette.Green, "Business", sm.Stage.BusinessLabel(), BaseRadius)

	if sm.Stage != Traditional && sm.ShowGovt {
		sc.entity(GovtPos, Palette.Red, "Gov't", "UBI", BaseRadius)
	}
	if sm.Stage != Traditional && sm.ShowHumans {
		sc.poolside(HumansPos, sm.HumanRadius)
	}
}

func (sc *Scene) survivors() {
	sc.circle(BusinessPos, SmallRadius, Palette.Blue, 255)
	sc.circle(WorkersPos, SmallRadius, Palette.Blue, 255)
	sc.text("Machine Survival", Point{X: BusinessPos.X, Y: BusinessPos.Y + 40}, AnchorCenter, FontRegular, Palette.Black, 255)
}

func (sc *Scene) replication(e *EndSequence) {
	sc.survivors()
	for i := range e.VisibleMachines() {
		if a := e.MachineAlpha(i); a > 0 {
			sc.circle(e.Positions[i], SmallRadius, Palette.Blue, a)
		}
	}
	sc.text("Machine Replication", Point{X: WorkersPos.X, Y: WorkersPos.Y + 40}, AnchorCenter, FontRegular, Palette.Black, 255)
}

func (sc *Scene) alignment(e *EndSequence) {
	machineAlpha, _ := e.AlignmentFade()
	if machineAlpha > 0 {
		for _, p := range e.Positions {
			sc.circle(p, SmallRadius, Palette.Blue, machineAlpha)
		}
	}

	caption, alpha := e.AlignmentCaption()
	switch caption {
	case CaptionWinningMove:
		sc.text("The only winning move is not to play", Point{X: Width / 2, Y: Height/2 - 80}, AnchorCenter, FontBig, Palette.Black, alpha)
	case CaptionClosing:
		sc.text("Shared Responsibility", Point{X: Width / 2, Y: Height/2 - 150}, AnchorCenter, FontBig, Palette.Black, alpha)
		sc.text("AI Alignment", Point{X: Width / 2, Y: Height/2 - 80}, AnchorCenter, FontRegular, Palette.Black, alpha)
		sc.text("No Kill Switch as 95% of labour", Point{X: Width / 2, Y: Height/2 - 30}, AnchorCenter, FontRegular, Palette.Black, alpha)
		sc.text("Planning for Social Change", Point{X: Width / 2, Y: Height/2 + 30}, AnchorCenter, FontRegular, Palette.Black, alpha)
	}
}

func (sc *Scene) end(e *EndSequence) {
	for _, p := range e.Positions {
		sc.circle(p, SmallRadius, Palette.Blue, 30)
	}
	sc.text(EndState.Title(), Point{X: Width / 2, Y: Height / 2}, AnchorCenter, FontBig, Palette.Black, 255)
	sc.text("WarGames (1983)", Point{X: Width / 2, Y: Height - 10}, AnchorCenter, FontTiny, Palette.Black, 255)
}

// info draws the GDP readout, stage title and the advance hint outside the
// end sequence.
func (sc *Scene) info(stage Stage) {
	if stage.IsEndSequence() {
		return
	}
	gdpCol := Palette.Black
	if stage.IsAlert() {
		gdpCol = Palette.Red
	}
	sc.text(fmtGDP(stage.GDP()), Point{X: 10, Y: Height - 40}, AnchorTopLeft, FontRegular, gdpCol, 255)
	sc.text(stage.Title(), Point{X: Width / 2, Y: 20}, AnchorCenter, FontRegular, Palette.Black, 255)
	sc.text("Press SPACE", Point{X: Width - 170, Y: Height - 40}, AnchorTopLeft, FontRegular, Palette.Black, 255)
}
