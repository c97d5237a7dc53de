package sim

import "testing"

func TestStageNextFollowsNarrative(t *testing.T) {
	want := map[Stage]Stage{
		Traditional:        AiTransition,
		AiTransition:       AiMature,
		AiMature:           Inequality,
		Inequality:         Unrest,
		Unrest:             PostUnrest,
		PostUnrest:         MachineTakeover,
		MachineTakeover:    MachineSurvival,
		MachineSurvival:    MachineReplication,
		MachineReplication: AiAlignment,
		AiAlignment:        EndState,
		EndState:           Traditional,
	}
	if len(want) != len(Stages) {
		t.Fatalf("expected %d stages in table, got %d", len(Stages), len(want))
	}
	for _, s := range Stages {
		if got := s.Next(); got != want[s] {
			t.Fatalf("%s: expected next %s, got %s", s, want[s], got)
		}
	}
}

func TestStageGDP(t *testing.T) {
	cases := []struct {
		stage Stage
		gdp   int
	}{
		{Traditional, 100},
		{AiTransition, 150},
		{AiMature, 300},
		{Inequality, 300},
		{Unrest, 250},
		{PostUnrest, 200},
		{MachineTakeover, 400},
		{MachineSurvival, 500},
		{MachineReplication, 600},
		{AiAlignment, 0},
		{EndState, 0},
	}
	for _, c := range cases {
		if got := c.stage.GDP(); got != c.gdp {
			t.Errorf("%s: expected GDP %d, got %d", c.stage, c.gdp, got)
		}
	}
}

func TestStageEndSequenceMembership(t *testing.T) {
	for _, s := range Stages {
		want := s == MachineSurvival || s == MachineReplication || s == AiAlignment || s == EndState
		if got := s.IsEndSequence(); got != want {
			t.Errorf("%s: expected IsEndSequence=%v, got %v", s, want, got)
		}
	}
}

func TestUnknownStagePanics(t *testing.T) {
	bad := Stage(42)
	for name, fn := range map[string]func(){
		"Next":  func() { bad.Next() },
		"Title": func() { _ = bad.Title() },
		"GDP":   func() { _ = bad.GDP() },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic for unknown stage")
				}
			}()
			fn()
		})
	}
	if got := bad.String(); got != "Stage(42)" {
		t.Fatalf("expected Stage(42), got %s", got)
	}
}

func TestStageLabels(t *testing.T) {
	if main, sub := Traditional.WorkerLabels(); main != "People" || sub != "Workers/Consumers" {
		t.Fatalf("unexpected traditional labels %q %q", main, sub)
	}
	if _, sub := MachineTakeover.WorkerLabels(); sub != "Reproduction" {
		t.Fatalf("expected Reproduction, got %q", sub)
	}
	if got := MachineTakeover.BusinessLabel(); got != "Machine Reproduction" {
		t.Fatalf("expected Machine Reproduction, got %q", got)
	}
	if got := Inequality.BusinessLabel(); got != "Goods & Services" {
		t.Fatalf("expected Goods & Services, got %q", got)
	}
}
