package sim

// Simulation is one running session: the stage machine, the end-sequence
// driver and the three particle collections, stepped once per frame.
type Simulation struct {
	Stages *StageMachine
	End    *EndSequence

	Flows   *ParticleSystem
	Unrest  *ParticleSystem
	Attacks *ParticleSystem

	Bus   *EventBus
	Frame int

	rng *Rand
}

func NewSimulation(seed uint64, bus *EventBus) *Simulation {
	if bus == nil {
		bus = NewEventBus()
	}
	rng := NewRand(seed)
	return &Simulation{
		Stages:  NewStageMachine(),
		End:     NewEndSequence(NewRand(seed ^ 0xE4D5EED)),
		Flows:   NewParticleSystem(MaxParticles),
		Unrest:  NewParticleSystem(MaxParticles),
		Attacks: NewParticleSystem(MaxParticles),
		Bus:     bus,
		rng:     rng,
	}
}

// Stage is a shortcut for the current stage.
func (s *Simulation) Stage() Stage { return s.Stages.Stage }

// RequestAdvance handles the user's advance command. It returns false when
// the command is ignored because an attack or the end sequence is running.
func (s *Simulation) RequestAdvance() bool {
	if s.Stages.AdvanceBlocked() {
		return false
	}
	s.advance(EventStageAdvanced)
	return true
}

func (s *Simulation) advance(kind EventType) {
	from := s.Stages.Stage
	s.Stages.AdvanceStage()
	s.End.Enter(s.Stages.Stage)
	s.clearParticles()
	s.Bus.Emit(Event{Type: kind, From: from, Stage: s.Stages.Stage, Frame: s.Frame})
}

// Reset discards the whole session state in one step: stage, latches,
// counters, end-sequence timers and every particle.
func (s *Simulation) Reset() {
	from := s.Stages.Stage
	s.Stages.Reset()
	s.End.ResetTimer()
	s.clearParticles()
	s.Bus.Emit(Event{Type: EventReset, From: from, Stage: s.Stages.Stage, Frame: s.Frame})
}

func (s *Simulation) clearParticles() {
	s.Flows.Clear()
	s.Unrest.Clear()
	s.Attacks.Clear()
}

// Step runs one frame: auto-advance in the end sequence, particle update,
// stage spawns, warning pulse and end-sequence counters, in that order.
func (s *Simulation) Step() {
	stage := s.Stages.Stage
	if stage.IsEndSequence() && s.End.CheckPhaseComplete(stage) {
		s.advance(EventPhaseComplete)
	}

	s.Flows.Update()
	s.Unrest.Update()
	s.Attacks.Update()

	s.spawn()

	stage = s.Stages.Stage
	if stage.IsAlert() {
		s.Stages.UpdateWarning()
	}
	if s.End.Tick(stage) {
		s.Bus.Emit(Event{Type: EventReplication, Stage: stage, Frame: s.Frame, Data: s.End.ActiveMachines})
	}
	s.Stages.Tick()
	s.Frame++
}

func (s *Simulation) spawn() {
	sm := s.Stages
	if s.Frame%FlowSpawnEvery == 0 && !sm.Stage.IsEndSequence() {
		s.spawnFlows()
	}
	if sm.Stage == Unrest && s.Frame%UnrestSpawnEvery == 0 {
		s.spawnUnrest()
	}
	if sm.Stage == MachineTakeover && s.Frame%MachineSpawnEvery == 0 {
		s.spawnMachineAttack()
	}
}

func (s *Simulation) flow(from, to Point, col RGB) {
	s.Flows.Add(NewParticle(from, to, col))
}

// spawnFlows emits the value flows between actors for the current stage.
func (s *Simulation) spawnFlows() {
	sm := s.Stages
	switch sm.Stage {
	case Traditional:
		s.flow(RichPos, WorkersPos, Palette.Gold)
		s.flow(WorkersPos, BusinessPos, Palette.Blue)
		s.flow(BusinessPos, RichPos, Palette.Green)

	case AiTransition, AiMature, Inequality:
		if sm.ShowRich {
			s.flow(RichPos, WorkersPos, Palette.Gold)
			s.flow(WorkersPos, BusinessPos, Palette.Blue)
			s.flow(BusinessPos, RichPos, Palette.Green)
			s.flow(RichPos, GovtPos, Palette.Gold)
		}
		if sm.ShowGovt && sm.ShowHumans {
			s.flow(GovtPos, HumansPos, Palette.Red)
			s.flow(HumansPos, BusinessPos, Palette.Orange)
			s.flow(BusinessPos, HumansPos, Palette.Green)
		}

	case PostUnrest:
		if sm.ShowGovt && sm.ShowHumans {
			s.flow(WorkersPos, BusinessPos, Palette.Blue)
			s.flow(BusinessPos, GovtPos, Palette.Green)
			s.flow(GovtPos, HumansPos, Palette.Red)
			s.flow(WorkersPos, GovtPos, Palette.Blue)
			s.flow(GovtPos, WorkersPos, Palette.Red)
			s.flow(HumansPos, BusinessPos, Palette.Orange)
			s.flow(BusinessPos, HumansPos, Palette.Green)
		}

	case MachineTakeover:
		if !sm.ShowGovt && !sm.ShowHumans {
			s.flow(WorkersPos, BusinessPos, Palette.Blue)
			s.flow(BusinessPos, WorkersPos, Palette.Green)
		}
	}
}

func (s *Simulation) jitter(p Point, d int) Point {
	return Point{
		X: p.X + float64(s.rng.Range(-d, d)),
		Y: p.Y + float64(s.rng.Range(-d, d)),
	}
}

// spawnUnrest sends one protester from the humans toward the rich.
func (s *Simulation) spawnUnrest() {
	sm := s.Stages
	if !sm.ShowRich {
		return
	}
	offset := float64(s.rng.Range(-20, 20))
	start := s.jitter(HumansPos, 30)
	target := Point{X: RichPos.X + offset, Y: RichPos.Y + offset}
	s.Unrest.Add(NewUnrestParticle(start, target))

	crossed := sm.HandleRichAttack()
	s.Bus.Emit(Event{Type: EventRichAttack, Stage: sm.Stage, Frame: s.Frame, Data: sm.RichAttacks.Count})
	if crossed {
		s.Bus.Emit(Event{Type: EventRichFallen, Stage: sm.Stage, Frame: s.Frame, Data: sm.RichAttacks.Count})
	}
}

// spawnMachineAttack fires at each still-visible target and counts one strike.
func (s *Simulation) spawnMachineAttack() {
	sm := s.Stages
	if !sm.ShowGovt && !sm.ShowHumans {
		return
	}
	targets := [...]struct {
		pos     Point
		visible bool
	}{
		{GovtPos, sm.ShowGovt},
		{HumansPos, sm.ShowHumans},
	}
	for _, t := range targets {
		if !t.visible {
			continue
		}
		target := s.jitter(t.pos, 30)
		start := s.jitter(WorkersPos, 20)
		s.Attacks.Add(NewMachineAttackParticle(start, target))
	}

	crossed := sm.HandleMachineAttack()
	s.Bus.Emit(Event{Type: EventMachineAttack, Stage: sm.Stage, Frame: s.Frame, Data: sm.MachineAttacks.Count})
	if crossed {
		s.Bus.Emit(Event{Type: EventGovtFallen, Stage: sm.Stage, Frame: s.Frame, Data: sm.MachineAttacks.Count})
	}
}

// ParticleCount is the total of live particles across all collections.
func (s *Simulation) ParticleCount() int {
	return s.Flows.Len() + s.Unrest.Len() + s.Attacks.Len()
}
