package lava

import (
	"math"

	"github.com/vovakirdan/lava-escape/internal/config"
	"github.com/vovakirdan/lava-escape/internal/core"
)

// PlatformType is the behavior a platform follows each frame.
type PlatformType int

const (
	PlatformNormal PlatformType = iota
	PlatformCrumbling
	PlatformMoving
	PlatformTrap
)

// String returns the type name.
func (t PlatformType) String() string {
	switch t {
	case PlatformNormal:
		return "normal"
	case PlatformCrumbling:
		return "crumbling"
	case PlatformMoving:
		return "moving"
	case PlatformTrap:
		return "trap"
	default:
		return "unknown"
	}
}

// Platform is a ledge the player can land on.
type Platform struct {
	X, Y          float64
	Width, Height float64
	Type          PlatformType
	Health        int

	// Moving
	MoveDirection float64 // +1 or -1
	MoveSpeed     float64

	// Trap
	TrapActive bool
	TrapTimer  int

	crumbled bool // burst already emitted

	rules config.PlatformConfig
}

// NewPlatform creates a platform of the given type.
// dir is the initial direction for moving platforms and is ignored otherwise.
func NewPlatform(x, y, width float64, typ PlatformType, dir float64, rules config.PlatformConfig) *Platform {
	p := &Platform{
		X:             x,
		Y:             y,
		Width:         width,
		Height:        rules.Height,
		Type:          typ,
		Health:        rules.SolidHealth,
		MoveDirection: 1,
		MoveSpeed:     rules.MoveSpeed,
		rules:         rules,
	}
	if typ == PlatformCrumbling {
		p.Health = rules.CrumblingHealth
	}
	if dir < 0 {
		p.MoveDirection = -1
	}
	return p
}

// Box returns the platform's bounds in world units.
func (p *Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Alive reports whether the platform can still be landed on.
func (p *Platform) Alive() bool {
	return p.Health > 0
}

// Update advances the platform's behavior by one frame.
// It returns true on the single frame a crumbling platform collapses.
func (p *Platform) Update(worldW float64) bool {
	switch p.Type {
	case PlatformMoving:
		p.X += p.MoveDirection * p.MoveSpeed
		if p.X <= 0 || p.X+p.Width >= worldW {
			p.MoveDirection = -p.MoveDirection
		}
		p.X = core.ClampF(p.X, 0, math.Max(0, worldW-p.Width))

	case PlatformCrumbling:
		if p.crumbled {
			return false
		}
		if p.Health < p.rules.CrumbleThreshold {
			p.Health -= p.rules.CrumbleDecay
		}
		if p.Health <= 0 {
			p.crumbled = true
			return true
		}

	case PlatformTrap:
		p.TrapTimer++
		if p.TrapTimer >= p.rules.TrapPeriod {
			p.TrapActive = !p.TrapActive
			p.TrapTimer = 0
		}
	}
	return false
}

// Step applies the damage of the player standing on the platform.
func (p *Platform) Step() {
	if p.Type == PlatformCrumbling {
		p.Health -= p.rules.CrumbleStepDamage
	}
}

// Cracking reports whether a crumbling platform has started to decay.
func (p *Platform) Cracking() bool {
	return p.Type == PlatformCrumbling && p.Health < p.rules.CrumbleThreshold
}

// Deadly reports whether landing on the platform ends the run.
func (p *Platform) Deadly() bool {
	return p.Type == PlatformTrap && p.TrapActive
}

// Color returns the platform's current display color.
func (p *Platform) Color() core.Color {
	switch p.Type {
	case PlatformCrumbling:
		switch {
		case p.Health > 100:
			return core.ColorSaddle
		case p.Health > 50:
			return core.ColorSienna
		default:
			return core.ColorPeru
		}
	case PlatformMoving:
		return core.ColorRoyalBlue
	case PlatformTrap:
		if p.TrapActive {
			return core.ColorRed
		}
		return core.ColorLimeGreen
	default:
		return core.ColorGray
	}
}
