package lava

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/lava-escape/internal/core"
)

func newParticles(limit int) *ParticleSystem {
	return NewParticleSystem(rand.New(rand.NewSource(1)), 0.3, limit)
}

func TestParticleUpdate(t *testing.T) {
	ps := newParticles(0)
	ps.add(Particle{X: 10, Y: 20, VelX: 1, VelY: -2, Life: 3})

	ps.Update()

	p := ps.Particles()[0]
	if p.X != 11 || p.Y != 18 {
		t.Errorf("position = (%v, %v), expected (11, 18)", p.X, p.Y)
	}
	if math.Abs(p.VelY-(-1.7)) > 1e-9 {
		t.Errorf("VelY = %v, expected -1.7", p.VelY)
	}
	if p.Life != 2 {
		t.Errorf("Life = %d, expected 2", p.Life)
	}
}

func TestParticlesExpire(t *testing.T) {
	ps := newParticles(0)
	for life := 1; life <= 5; life++ {
		ps.add(Particle{Life: life})
	}

	for tick := 1; tick <= 5; tick++ {
		ps.Update()
		if want := 5 - tick; ps.Len() != want {
			t.Fatalf("after %d ticks: %d particles, expected %d", tick, ps.Len(), want)
		}
		for _, p := range ps.Particles() {
			if p.Life <= 0 {
				t.Fatalf("expired particle survived: %+v", p)
			}
		}
	}
}

func TestCrumbleBurst(t *testing.T) {
	ps := newParticles(0)
	pl := NewPlatform(100, 300, 150, PlatformCrumbling, 1, rules())

	ps.CrumbleBurst(pl)

	if ps.Len() != CrumbleParticles {
		t.Fatalf("burst made %d particles, expected %d", ps.Len(), CrumbleParticles)
	}
	for _, p := range ps.Particles() {
		if p.X < 100 || p.X >= 250 {
			t.Fatalf("particle x %v outside the platform", p.X)
		}
		if p.Y != 300 {
			t.Fatalf("particle y %v, expected platform top", p.Y)
		}
		if p.VelX < -4 || p.VelX >= 4 {
			t.Fatalf("VelX %v out of [-4, 4)", p.VelX)
		}
		if p.VelY > 0 || p.VelY <= -5 {
			t.Fatalf("VelY %v out of (-5, 0]", p.VelY)
		}
		if p.Life != CrumbleLife || p.Color != core.ColorDarkBrown {
			t.Fatalf("unexpected debris particle %+v", p)
		}
	}
}

func TestTrapHitAndLavaDeath(t *testing.T) {
	ps := newParticles(0)
	ps.TrapHit(50, 60)
	if ps.Len() != TrapParticles {
		t.Errorf("TrapHit made %d particles, expected %d", ps.Len(), TrapParticles)
	}
	for _, p := range ps.Particles() {
		if p.X != 50 || p.Y != 60 || p.Color != core.ColorRed || p.Life != TrapLife {
			t.Fatalf("unexpected trap particle %+v", p)
		}
	}

	ps.Reset()
	ps.LavaDeath(5, 5)
	if ps.Len() != DeathParticles {
		t.Errorf("LavaDeath made %d particles, expected %d", ps.Len(), DeathParticles)
	}
	for _, p := range ps.Particles() {
		if p.Color != core.ColorRed && p.Color != core.ColorOrange {
			t.Fatalf("unexpected death color %v", p.Color)
		}
		if p.VelX < -7.5 || p.VelX >= 7.5 {
			t.Fatalf("VelX %v out of range", p.VelX)
		}
	}
}

func TestParticleCapDropsOldest(t *testing.T) {
	ps := newParticles(10)
	for i := 1; i <= 25; i++ {
		ps.add(Particle{Life: i})
	}

	if ps.Len() != 10 {
		t.Fatalf("Len() = %d, expected 10", ps.Len())
	}
	if first := ps.Particles()[0].Life; first != 16 {
		t.Errorf("oldest survivor has life %d, expected 16", first)
	}
}

func TestParticleAlpha(t *testing.T) {
	tests := []struct {
		life int
		want float64
	}{
		{100, 1},
		{60, 1},
		{30, 0.5},
		{0, 0},
	}
	for _, tc := range tests {
		if got := (Particle{Life: tc.life}).Alpha(); got != tc.want {
			t.Errorf("Alpha(life=%d) = %v, expected %v", tc.life, got, tc.want)
		}
	}
}
