package sim

import "testing"

func TestAdvanceStageCyclesBackAfterEleven(t *testing.T) {
	m := NewStageMachine()
	for i, want := range Stages[1:] {
		m.AdvanceStage()
		if m.Stage != want {
			t.Fatalf("step %d: expected %s, got %s", i+1, want, m.Stage)
		}
	}
	m.AdvanceStage()
	if m.Stage != Traditional {
		t.Fatalf("expected wrap to traditional, got %s", m.Stage)
	}
}

func TestAdvanceFromEndStateResets(t *testing.T) {
	m := NewStageMachine()
	m.Stage = EndState
	m.ShowRich, m.ShowGovt, m.ShowHumans = false, false, false
	m.RichAttacks.Count = 70
	m.MachineAttacks.Count = 55
	m.EndSequenceTimer = 99

	m.AdvanceStage()

	if m.Stage != Traditional || !m.ShowRich || !m.ShowGovt || !m.ShowHumans {
		t.Fatalf("expected full reset, got %+v", m)
	}
	if m.RichAttacks.Count != 0 || m.MachineAttacks.Count != 0 || m.EndSequenceTimer != 0 {
		t.Fatalf("expected counters cleared, got %+v", m)
	}
}

func TestRichAttackLatch(t *testing.T) {
	m := NewStageMachine()
	for i := 1; i < AttacksNeeded; i++ {
		if m.HandleRichAttack() {
			t.Fatalf("hit %d: latch reported early", i)
		}
	}
	if !m.ShowRich {
		t.Fatal("rich should still be visible after 49 hits")
	}
	if !m.HandleRichAttack() {
		t.Fatal("50th hit should report the latch")
	}
	if m.ShowRich {
		t.Fatal("rich should be hidden after 50 hits")
	}
	if m.HandleRichAttack() {
		t.Fatal("51st hit should not report the latch again")
	}
	if m.ShowRich || m.RichAttacks.Count != 51 {
		t.Fatalf("expected hidden rich and count 51, got show=%v count=%d", m.ShowRich, m.RichAttacks.Count)
	}
	if !m.ShowGovt || !m.ShowHumans {
		t.Fatal("rich attacks must not touch govt or humans")
	}
}

func TestMachineAttackLatch(t *testing.T) {
	m := NewStageMachine()
	for range AttacksNeeded - 1 {
		m.HandleMachineAttack()
	}
	if !m.ShowGovt || !m.ShowHumans {
		t.Fatal("govt and humans should survive 49 strikes")
	}
	m.HandleMachineAttack()
	if m.ShowGovt || m.ShowHumans {
		t.Fatal("govt and humans should fall on the 50th strike")
	}
	if !m.ShowRich {
		t.Fatal("machine strikes must not touch the rich")
	}
}

func TestUpdateCircleSizes(t *testing.T) {
	cases := []struct {
		stage       Stage
		rich, human int
	}{
		{AiMature, 39, 36},
		{Inequality, 45, 24},
		{Traditional, 30, 30},
		{Unrest, 30, 30},
		{EndState, 30, 30},
	}
	for _, c := range cases {
		m := NewStageMachine()
		m.Stage = c.stage
		m.UpdateCircleSizes()
		m.UpdateCircleSizes()
		if m.RichRadius != c.rich || m.HumanRadius != c.human {
			t.Errorf("%s: expected %d/%d, got %d/%d", c.stage, c.rich, c.human, m.RichRadius, m.HumanRadius)
		}
	}
}

func TestResetRecomputesRadii(t *testing.T) {
	m := NewStageMachine()
	m.Stage = Inequality
	m.UpdateCircleSizes()
	m.Reset()
	if m.RichRadius != BaseRadius || m.HumanRadius != BaseRadius {
		t.Fatalf("expected base radii after reset, got %d/%d", m.RichRadius, m.HumanRadius)
	}
}

func TestWarningOscillatesWithinBounds(t *testing.T) {
	m := NewStageMachine()
	flips := 0
	for i := range 1000 {
		before := m.WarningIncreasing
		m.UpdateWarning()
		if m.WarningAlpha < WarningMin || m.WarningAlpha > WarningMax {
			t.Fatalf("frame %d: alpha %d out of bounds", i, m.WarningAlpha)
		}
		if m.WarningIncreasing != before {
			flips++
			if m.WarningAlpha != WarningMin && m.WarningAlpha != WarningMax {
				t.Fatalf("frame %d: direction flipped at %d", i, m.WarningAlpha)
			}
		}
	}
	if flips == 0 {
		t.Fatal("expected the pulse to change direction")
	}
}

func TestWarningTurnsAtTop(t *testing.T) {
	m := NewStageMachine()
	m.WarningAlpha = 98
	m.WarningIncreasing = true
	m.UpdateWarning()
	if m.WarningAlpha != 100 || m.WarningIncreasing {
		t.Fatalf("expected 100 and falling, got %d increasing=%v", m.WarningAlpha, m.WarningIncreasing)
	}
	m.UpdateWarning()
	if m.WarningAlpha != 98 {
		t.Fatalf("expected 98, got %d", m.WarningAlpha)
	}
}

func TestAdvanceBlocked(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(m *StageMachine)
		blocked bool
	}{
		{"traditional", func(m *StageMachine) {}, false},
		{"unrest with rich", func(m *StageMachine) { m.Stage = Unrest }, true},
		{"unrest rich gone", func(m *StageMachine) { m.Stage = Unrest; m.ShowRich = false }, false},
		{"takeover govt standing", func(m *StageMachine) { m.Stage = MachineTakeover; m.ShowHumans = false }, true},
		{"takeover humans standing", func(m *StageMachine) { m.Stage = MachineTakeover; m.ShowGovt = false }, true},
		{"takeover done", func(m *StageMachine) { m.Stage = MachineTakeover; m.ShowGovt = false; m.ShowHumans = false }, false},
		{"survival", func(m *StageMachine) { m.Stage = MachineSurvival }, true},
		{"replication", func(m *StageMachine) { m.Stage = MachineReplication }, true},
		{"alignment", func(m *StageMachine) { m.Stage = AiAlignment }, true},
		{"end", func(m *StageMachine) { m.Stage = EndState }, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewStageMachine()
			c.setup(m)
			if got := m.AdvanceBlocked(); got != c.blocked {
				t.Fatalf("expected blocked=%v, got %v", c.blocked, got)
			}
		})
	}
}
