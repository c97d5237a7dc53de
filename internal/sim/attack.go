package sim

// AttackCounter counts hits against one target class and latches once the
// threshold is reached. Count keeps growing past the threshold.
type AttackCounter struct {
	Count  int
	Needed int
}

func NewAttackCounter(needed int) AttackCounter {
	return AttackCounter{Needed: needed}
}

// Hit records one attack and reports whether this hit crossed the threshold.
func (a *AttackCounter) Hit() bool {
	a.Count++
	return a.Count == a.Needed
}

func (a *AttackCounter) Tripped() bool {
	return a.Count >= a.Needed
}

func (a *AttackCounter) Reset() {
	a.Count = 0
}
