package sim

import "fmt"

// Stage is one step of the narrative. Order is defined by Next, not by value.
type Stage int

const (
	Traditional Stage = iota
	AiTransition
	AiMature
	Inequality
	Unrest
	PostUnrest
	MachineTakeover
	MachineSurvival
	MachineReplication
	AiAlignment
	EndState
)

// Stages lists every stage in advance order.
var Stages = []Stage{
	Traditional,
	AiTransition,
	AiMature,
	Inequality,
	Unrest,
	PostUnrest,
	MachineTakeover,
	MachineSurvival,
	MachineReplication,
	AiAlignment,
	EndState,
}

func unknownStage(s Stage) string {
	return fmt.Sprintf("sim: unknown stage %d", int(s))
}

// Next returns the successor stage. EndState wraps to Traditional.
func (s Stage) Next() Stage {
	switch s {
	case Traditional:
		return AiTransition
	case AiTransition:
		return AiMature
	case AiMature:
		return Inequality
	case Inequality:
		return Unrest
	case Unrest:
		return PostUnrest
	case PostUnrest:
		return MachineTakeover
	case MachineTakeover:
		return MachineSurvival
	case MachineSurvival:
		return MachineReplication
	case MachineReplication:
		return AiAlignment
	case AiAlignment:
		return EndState
	case EndState:
		return Traditional
	}
	panic(unknownStage(s))
}

// String returns a short identifier used in logs and traces.
func (s Stage) String() string {
	switch s {
	case Traditional:
		return "traditional"
	case AiTransition:
		return "ai_transition"
	case AiMature:
		return "ai_mature"
	case Inequality:
		return "inequality"
	case Unrest:
		return "unrest"
	case PostUnrest:
		return "post_unrest"
	case MachineTakeover:
		return "machine_takeover"
	case MachineSurvival:
		return "machine_survival"
	case MachineReplication:
		return "machine_replication"
	case AiAlignment:
		return "ai_alignment"
	case EndState:
		return "end_state"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Title is the on-screen stage name.
func (s Stage) Title() string {
	switch s {
	case Traditional:
		return "Traditional Economy"
	case AiTransition:
		return "AI Transition (Balanced)"
	case AiMature:
		return "Mature AI Economy"
	case Inequality:
		return "Growing Inequality"
	case Unrest:
		return "Civil Unrest"
	case PostUnrest:
		return "Post-Unrest Reorganization"
	case MachineTakeover:
		return "Machine Dominance"
	case MachineSurvival:
		return "Machine Survival"
	case MachineReplication:
		return "Machine Replication"
	case AiAlignment:
		return "AI Alignment"
	case EndState:
		return "THE END"
	}
	panic(unknownStage(s))
}

// GDP is the headline figure shown for a stage.
func (s Stage) GDP() int {
	switch s {
	case Traditional:
		return 100
	case AiTransition:
		return 150
	case AiMature, Inequality:
		return 300
	case Unrest:
		return 250
	case PostUnrest:
		return 200
	case MachineTakeover:
		return 400
	case MachineSurvival:
		return 500
	case MachineReplication:
		return 600
	case AiAlignment, EndState:
		return 0
	}
	panic(unknownStage(s))
}

// IsEndSequence reports whether the stage is driven by the end-sequence timers
// rather than by user input.
func (s Stage) IsEndSequence() bool {
	switch s {
	case MachineSurvival, MachineReplication, AiAlignment, EndState:
		return true
	case Traditional, AiTransition, AiMature, Inequality, Unrest, PostUnrest, MachineTakeover:
		return false
	}
	panic(unknownStage(s))
}

// IsAlert reports whether the warning overlay pulses in this stage.
func (s Stage) IsAlert() bool {
	return s == Unrest || s == MachineTakeover
}

// WorkerLabels returns the caption pair for the workers/machines circle.
func (s Stage) WorkerLabels() (string, string) {
	switch s {
	case Traditional:
		return "People", "Workers/Consumers"
	case MachineTakeover:
		return "Machines", "Reproduction"
	}
	return "Machines", "Workers"
}

// BusinessLabel returns the caption under the business circle.
func (s Stage) BusinessLabel() string {
	if s == MachineTakeover {
		return "Machine Reproduction"
	}
	return "Goods & Services"
}

func fmtGDP(v int) string {
	return fmt.Sprintf("GDP: %d", v)
}
