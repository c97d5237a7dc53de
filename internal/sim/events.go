package sim

type EventType int

const (
	EventStageAdvanced EventType = iota
	EventRichAttack
	EventMachineAttack
	EventRichFallen
	EventGovtFallen
	EventPhaseComplete
	EventReplication
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventStageAdvanced:
		return "stage_advanced"
	case EventRichAttack:
		return "rich_attack"
	case EventMachineAttack:
		return "machine_attack"
	case EventRichFallen:
		return "rich_fallen"
	case EventGovtFallen:
		return "govt_fallen"
	case EventPhaseComplete:
		return "phase_complete"
	case EventReplication:
		return "replication"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

type Event struct {
	Type  EventType
	Stage Stage // stage after the event took effect
	From  Stage // previous stage, for transitions
	Frame int
	Data  int // Generic payload (attack count, active machines).
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
	all      []EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	eb.all = append(eb.all, fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
	for _, fn := range eb.all {
		fn(e)
	}
}
