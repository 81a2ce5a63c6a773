package lava

import (
	"math/rand"

	"github.com/vovakirdan/lava-escape/internal/core"
)

// Emitter sizes and lifetimes.
const (
	CrumbleParticles = 500
	CrumbleLife      = 100
	TrapParticles    = 20
	TrapLife         = 45
	DeathParticles   = 30
	DeathLife        = 60

	// alphaLife is the life at which a particle is fully opaque.
	alphaLife = 60
)

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y       float64
	VelX, VelY float64
	Life       int
	Color      core.Color
}

// Alpha returns the particle's opacity in [0, 1].
func (p Particle) Alpha() float64 {
	a := float64(p.Life) / alphaLife
	return core.ClampF(a, 0, 1)
}

// ParticleSystem owns every live particle of a session.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
	gravity   float64
	limit     int // 0 means unlimited
}

// NewParticleSystem creates an empty system drawing randomness from rng.
func NewParticleSystem(rng *rand.Rand, gravity float64, limit int) *ParticleSystem {
	return &ParticleSystem{rng: rng, gravity: gravity, limit: limit}
}

// Update integrates every particle by one frame and drops the expired ones.
func (ps *ParticleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.VelX
		p.Y += p.VelY
		p.VelY += ps.gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	// Zero the tail so dropped particles don't linger in the backing array.
	clear(ps.particles[len(alive):])
	ps.particles = alive
}

// Particles returns the live particles. The slice is owned by the system.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Reset removes every particle.
func (ps *ParticleSystem) Reset() {
	ps.particles = nil
}

// CrumbleBurst emits debris across the top edge of a collapsing platform.
func (ps *ParticleSystem) CrumbleBurst(pl *Platform) {
	for range CrumbleParticles {
		ps.add(Particle{
			X:     pl.X + ps.rng.Float64()*pl.Width,
			Y:     pl.Y,
			VelX:  (ps.rng.Float64() - 0.5) * 8,
			VelY:  ps.rng.Float64() * -5,
			Life:  CrumbleLife,
			Color: core.ColorDarkBrown,
		})
	}
}

// TrapHit emits a red spray at (x, y).
func (ps *ParticleSystem) TrapHit(x, y float64) {
	for range TrapParticles {
		ps.add(Particle{
			X:     x,
			Y:     y,
			VelX:  (ps.rng.Float64() - 0.5) * 12,
			VelY:  (ps.rng.Float64() - 0.5) * 12,
			Life:  TrapLife,
			Color: core.ColorRed,
		})
	}
}

// LavaDeath emits a red and orange splash at (x, y).
func (ps *ParticleSystem) LavaDeath(x, y float64) {
	for range DeathParticles {
		c := core.ColorOrange
		if ps.rng.Float64() > 0.5 {
			c = core.ColorRed
		}
		ps.add(Particle{
			X:     x,
			Y:     y,
			VelX:  (ps.rng.Float64() - 0.5) * 15,
			VelY:  (ps.rng.Float64() - 0.5) * 15,
			Life:  DeathLife,
			Color: c,
		})
	}
}

// add appends a particle, dropping the oldest ones past the cap.
func (ps *ParticleSystem) add(p Particle) {
	ps.particles = append(ps.particles, p)
	if ps.limit > 0 && len(ps.particles) > ps.limit {
		drop := len(ps.particles) - ps.limit
		ps.particles = append(ps.particles[:0], ps.particles[drop:]...)
	}
}
