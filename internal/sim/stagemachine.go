package sim

// StageMachine owns the narrative stage and everything derived from it:
// circle sizes, visibility latches, attack counters and the warning pulse.
type StageMachine struct {
	Stage Stage

	BaseRichRadius  int
	BaseHumanRadius int
	RichRadius      int
	HumanRadius     int

	ShowRich   bool
	ShowGovt   bool
	ShowHumans bool

	RichAttacks    AttackCounter
	MachineAttacks AttackCounter

	WarningAlpha      int
	WarningIncreasing bool

	// EndSequenceTimer counts frames spent in the current terminal stage.
	EndSequenceTimer int
}

func NewStageMachine() *StageMachine {
	m := &StageMachine{
		BaseRichRadius:    BaseRadius,
		BaseHumanRadius:   BaseRadius,
		RichAttacks:       NewAttackCounter(AttacksNeeded),
		MachineAttacks:    NewAttackCounter(AttacksNeeded),
		WarningAlpha:      WarningMin,
		WarningIncreasing: true,
	}
	m.Reset()
	return m
}

// AdvanceStage moves to the successor stage. Leaving EndState resets the
// whole machine. Callers gate this with AdvanceBlocked.
func (m *StageMachine) AdvanceStage() {
	if m.Stage == EndState {
		m.Reset()
	} else {
		m.Stage = m.Stage.Next()
	}
	m.EndSequenceTimer = 0
	m.UpdateCircleSizes()
}

// UpdateCircleSizes derives the rich and human radii from the stage.
func (m *StageMachine) UpdateCircleSizes() {
	switch m.Stage {
	case AiMature:
		m.RichRadius = m.BaseRichRadius * 130 / 100
		m.HumanRadius = m.BaseHumanRadius * 120 / 100
	case Inequality:
		m.RichRadius = m.BaseRichRadius * 150 / 100
		m.HumanRadius = m.BaseHumanRadius * 80 / 100
	default:
		m.RichRadius = m.BaseRichRadius
		m.HumanRadius = m.BaseHumanRadius
	}
}

// HandleRichAttack records one unrest hit. Returns true on the hit that
// removes the rich.
func (m *StageMachine) HandleRichAttack() bool {
	crossed := m.RichAttacks.Hit()
	if m.RichAttacks.Tripped() {
		m.ShowRich = false
	}
	return crossed
}

// HandleMachineAttack records one machine strike. Returns true on the hit that
// removes government and humans.
func (m *StageMachine) HandleMachineAttack() bool {
	crossed := m.MachineAttacks.Hit()
	if m.MachineAttacks.Tripped() {
		m.ShowGovt = false
		m.ShowHumans = false
	}
	return crossed
}

// UpdateWarning steps the overlay pulse, bouncing between WarningMin and WarningMax.
func (m *StageMachine) UpdateWarning() {
	if m.WarningIncreasing {
		m.WarningAlpha = min(m.WarningAlpha+WarningStep, WarningMax)
	} else {
		m.WarningAlpha = max(m.WarningAlpha-WarningStep, WarningMin)
	}

	if m.WarningAlpha == WarningMax {
		m.WarningIncreasing = false
	} else if m.WarningAlpha == WarningMin {
		m.WarningIncreasing = true
	}
}

// Reset restores the opening stage. Radii are recomputed so nothing stale survives.
func (m *StageMachine) Reset() {
	m.Stage = Traditional
	m.ShowRich = true
	m.ShowGovt = true
	m.ShowHumans = true
	m.RichAttacks.Reset()
	m.MachineAttacks.Reset()
	m.EndSequenceTimer = 0
	m.UpdateCircleSizes()
}

// AdvanceBlocked reports whether a user advance must be ignored: an attack is
// still running, or the end sequence is playing on its own.
func (m *StageMachine) AdvanceBlocked() bool {
	if m.Stage == Unrest && m.ShowRich {
		return true
	}
	if m.Stage == MachineTakeover && (m.ShowGovt || m.ShowHumans) {
		return true
	}
	return m.Stage.IsEndSequence()
}

// Tick counts frames while the end sequence runs.
func (m *StageMachine) Tick() {
	if m.Stage.IsEndSequence() {
		m.EndSequenceTimer++
	}
}
