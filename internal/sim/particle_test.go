package sim

import (
	"math"
	"testing"
)

func TestParticleArrivesAfterFourUpdates(t *testing.T) {
	p := NewParticle(Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, Palette.Gold)
	wantX := []float64{3, 6, 9}
	for i, x := range wantX {
		p.Update()
		if !p.Alive {
			t.Fatalf("update %d: died early", i+1)
		}
		if math.Abs(p.X-x) > 1e-9 || p.Y != 0 {
			t.Fatalf("update %d: expected (%v,0), got (%v,%v)", i+1, x, p.X, p.Y)
		}
	}
	p.Update()
	if p.Alive {
		t.Fatal("expected particle to arrive on the 4th update")
	}
	if math.Abs(p.X-9) > 1e-9 {
		t.Fatalf("arrived particle must not move, got x=%v", p.X)
	}
}

func TestParticleZeroDistance(t *testing.T) {
	p := NewParticle(Point{X: 5, Y: 5}, Point{X: 5, Y: 5}, Palette.Blue)
	p.Update()
	if p.Alive {
		t.Fatal("particle on its target should be dead")
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Fatal("position became NaN")
	}
}

func TestParticleVariants(t *testing.T) {
	from, to := Point{}, Point{X: 100}
	u := NewUnrestParticle(from, to)
	if u.Speed != 4 || u.Size != 7 || u.Col != Palette.DarkRed || u.Kind != ParticleUnrest {
		t.Fatalf("unexpected unrest particle %+v", u)
	}
	m := NewMachineAttackParticle(from, to)
	if m.Speed != 5 || m.Size != 8 || m.Col != Palette.Purple || m.Kind != ParticleMachineAttack {
		t.Fatalf("unexpected machine attack particle %+v", m)
	}
	f := NewParticle(from, to, Palette.Green)
	if f.Speed != 3 || f.Size != 5 {
		t.Fatalf("unexpected flow particle %+v", f)
	}
}

func TestParticleSystemReapsArrivals(t *testing.T) {
	ps := NewParticleSystem(10)
	ps.Add(NewParticle(Point{}, Point{X: 2}, Palette.Gold))
	ps.Add(NewParticle(Point{}, Point{X: 100}, Palette.Gold))
	ps.Update()
	if ps.Len() != 1 {
		t.Fatalf("expected 1 live particle, got %d", ps.Len())
	}
	if ps.P[0].TargetX != 100 {
		t.Fatalf("wrong particle survived: %+v", ps.P[0])
	}
	ps.Clear()
	if ps.Len() != 0 {
		t.Fatalf("expected empty after Clear, got %d", ps.Len())
	}
}

func TestParticleSystemOverwritesWhenFull(t *testing.T) {
	ps := NewParticleSystem(2)
	for i := range 5 {
		ps.Add(NewParticle(Point{}, Point{X: float64(100 + i)}, Palette.Gold))
	}
	if ps.Len() != 2 {
		t.Fatalf("expected cap of 2, got %d", ps.Len())
	}
}
