package sim

import "testing"

func newTestEnd() *EndSequence {
	return NewEndSequence(NewRand(7))
}

func TestReplicationRamp(t *testing.T) {
	e := newTestEnd()
	e.Enter(MachineReplication)

	for range ReplicationEvery - 1 {
		e.Tick(MachineReplication)
	}
	if e.ActiveMachines != 0 {
		t.Fatalf("expected no machines before the first ramp, got %d", e.ActiveMachines)
	}
	if !e.Tick(MachineReplication) || e.ActiveMachines != 10 {
		t.Fatalf("expected 10 machines after first ramp, got %d", e.ActiveMachines)
	}
	for range ReplicationEvery {
		e.Tick(MachineReplication)
	}
	if e.ActiveMachines != 16 {
		t.Fatalf("expected 16 machines after second ramp, got %d", e.ActiveMachines)
	}

	for range 2000 {
		e.Tick(MachineReplication)
		if e.ActiveMachines > MaxMachines {
			t.Fatalf("ramp exceeded %d: %d", MaxMachines, e.ActiveMachines)
		}
	}
	if e.ActiveMachines != MaxMachines {
		t.Fatalf("expected ramp to settle at %d, got %d", MaxMachines, e.ActiveMachines)
	}
}

func TestReplicationHoldsAfterDensity(t *testing.T) {
	e := newTestEnd()
	e.Enter(MachineReplication)

	for !e.Dense() {
		if e.CheckPhaseComplete(MachineReplication) {
			t.Fatal("completed before reaching density")
		}
		if e.ReplicationTimer != 0 {
			t.Fatalf("hold timer started early: %d", e.ReplicationTimer)
		}
		e.Tick(MachineReplication)
	}

	ticks := 0
	for !e.CheckPhaseComplete(MachineReplication) {
		e.Tick(MachineReplication)
		ticks++
		if ticks > 10*ReplicationHold {
			t.Fatal("replication never completed")
		}
	}
	if e.ReplicationTimer != ReplicationHold {
		t.Fatalf("expected completion at hold %d, got %d", ReplicationHold, e.ReplicationTimer)
	}
	// The tick that reached density already counted one frame of hold.
	if ticks != ReplicationHold-1 {
		t.Fatalf("expected %d frames after density, got %d", ReplicationHold-1, ticks)
	}
}

func TestSurvivalCompletesAfterDelay(t *testing.T) {
	e := newTestEnd()
	e.Enter(MachineSurvival)
	for i := range SurvivalTextDelay {
		if e.CheckPhaseComplete(MachineSurvival) {
			t.Fatalf("completed early at frame %d", i)
		}
		e.Tick(MachineSurvival)
	}
	if !e.CheckPhaseComplete(MachineSurvival) {
		t.Fatal("expected survival to complete after 180 frames")
	}
}

func TestAlignmentCompletes(t *testing.T) {
	e := newTestEnd()
	e.Enter(AiAlignment)
	total := AlignmentTextDelay + FinalTextDelay + SubtitleSpan
	for range total - 1 {
		e.Tick(AiAlignment)
	}
	if e.CheckPhaseComplete(AiAlignment) {
		t.Fatal("alignment completed one frame early")
	}
	e.Tick(AiAlignment)
	if !e.CheckPhaseComplete(AiAlignment) {
		t.Fatalf("expected alignment complete at timer %d", e.Timer)
	}
}

func TestEndStateNeverCompletes(t *testing.T) {
	e := newTestEnd()
	e.Enter(EndState)
	for range 5000 {
		e.Tick(EndState)
		if e.CheckPhaseComplete(EndState) {
			t.Fatal("end state must wait for an explicit reset")
		}
	}
}

func TestLayoutShape(t *testing.T) {
	e := newTestEnd()
	if len(e.Positions) != LayoutRows*LayoutCols+LayoutExtra {
		t.Fatalf("expected %d positions, got %d", LayoutRows*LayoutCols+LayoutExtra, len(e.Positions))
	}
	for _, p := range e.Positions {
		if p.X < LayoutMargin-LayoutJitter || p.X > Width-LayoutMargin+LayoutJitter ||
			p.Y < LayoutMargin-LayoutJitter || p.Y > Height-LayoutMargin+LayoutJitter {
			t.Fatalf("position %+v outside the canvas", p)
		}
	}
}

func TestLayoutRegeneratedOnlyOnSurvival(t *testing.T) {
	e := newTestEnd()
	before := append([]Point(nil), e.Positions...)

	e.Enter(AiAlignment)
	for i := range before {
		if e.Positions[i] != before[i] {
			t.Fatal("layout changed on alignment entry")
		}
	}

	e.Enter(MachineSurvival)
	same := true
	for i := range before {
		if e.Positions[i] != before[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected a new layout on survival entry")
	}
}

func TestMachineAlphaStagger(t *testing.T) {
	e := newTestEnd()
	e.Timer = 10
	if got := e.MachineAlpha(0); got != 150 {
		t.Fatalf("expected 150, got %d", got)
	}
	if got := e.MachineAlpha(5); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := e.MachineAlpha(100); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	e.Timer = 20
	if got := e.MachineAlpha(0); got != 255 {
		t.Fatalf("expected clamp to 255, got %d", got)
	}
}

func TestVisibleMachinesClamped(t *testing.T) {
	e := newTestEnd()
	e.ActiveMachines = 5000
	if got := e.VisibleMachines(); got != len(e.Positions) {
		t.Fatalf("expected %d, got %d", len(e.Positions), got)
	}
}

func TestAlignmentFade(t *testing.T) {
	cases := []struct {
		timer         int
		machine, text int
	}{
		{0, 255, 0},
		{FadeStart, 255, 0},
		{FadeStart + 30, 127, 127},
		{FadeStart + FadeFrames, 0, 255},
		{1000, 0, 255},
	}
	for _, c := range cases {
		e := newTestEnd()
		e.ReplicationTimer = c.timer
		m, tx := e.AlignmentFade()
		if m != c.machine || tx != c.text {
			t.Errorf("timer %d: expected %d/%d, got %d/%d", c.timer, c.machine, c.text, m, tx)
		}
	}
}

func TestAlignmentCaption(t *testing.T) {
	cases := []struct {
		timer   int
		caption Caption
		alpha   int
	}{
		{FadeStart + 30, CaptionNone, 0},
		{SubtitleOffset, CaptionNone, 0},
		{SubtitleOffset + 20, CaptionWinningMove, 160},
		{SubtitleOffset + SubtitleSpan, CaptionWinningMove, 255},
		{SubtitleOffset + SubtitleSpan + 1, CaptionClosing, 255},
	}
	for _, c := range cases {
		e := newTestEnd()
		e.ReplicationTimer = c.timer
		caption, alpha := e.AlignmentCaption()
		if caption != c.caption || alpha != c.alpha {
			t.Errorf("timer %d: expected %d/%d, got %d/%d", c.timer, c.caption, c.alpha, caption, alpha)
		}
	}
}
