package sim

import "math"

type ParticleKind uint8

const (
	ParticleFlow ParticleKind = iota
	ParticleUnrest
	ParticleMachineAttack
)

// Particle travels in a straight line toward a fixed target at constant speed.
type Particle struct {
	X, Y             float64
	TargetX, TargetY float64

	Speed float64
	Size  float64
	Col   RGB
	Kind  ParticleKind
	Alive bool
}

// NewParticle returns a value-flow particle.
func NewParticle(from, to Point, col RGB) Particle {
	return Particle{
		X: from.X, Y: from.Y,
		TargetX: to.X, TargetY: to.Y,
		Speed: 3, Size: 5,
		Col: col, Kind: ParticleFlow,
		Alive: true,
	}
}

// NewUnrestParticle returns a protester particle aimed at the rich.
func NewUnrestParticle(from, to Point) Particle {
	p := NewParticle(from, to, Palette.DarkRed)
	p.Speed = 4
	p.Size = 7
	p.Kind = ParticleUnrest
	return p
}

// NewMachineAttackParticle returns a machine strike aimed at government or humans.
func NewMachineAttackParticle(from, to Point) Particle {
	p := NewParticle(from, to, Palette.Purple)
	p.Speed = 5
	p.Size = 8
	p.Kind = ParticleMachineAttack
	return p
}

// Update steps the particle toward its target. A particle closer than one step
// dies in place instead of overshooting.
func (p *Particle) Update() {
	if !p.Alive {
		return
	}
	dx := p.TargetX - p.X
	dy := p.TargetY - p.Y
	dist := math.Hypot(dx, dy)
	if dist < p.Speed || dist == 0 {
		p.Alive = false
		return
	}
	p.X += dx / dist * p.Speed
	p.Y += dy / dist * p.Speed
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, 64),
	}
}

func (ps *ParticleSystem) Len() int { return len(ps.P) }

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update advances every particle and removes the ones that arrived.
func (ps *ParticleSystem) Update() {
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Update()
		if !p.Alive {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		i++
	}
}
