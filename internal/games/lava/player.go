package lava

import (
	"math"

	"github.com/vovakirdan/lava-escape/internal/config"
	"github.com/vovakirdan/lava-escape/internal/core"
)

// Player is the climber.
type Player struct {
	X, Y          float64
	VelX, VelY    float64
	Width, Height float64
	Speed         float64
	JumpPower     float64
	OnGround      bool
}

// NewPlayer creates a player at rest with its top-left corner at (x, y).
func NewPlayer(x, y float64, cfg config.PlayerConfig) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Speed:     cfg.Speed,
		JumpPower: cfg.JumpPower,
	}
}

// Box returns the player's bounds in world units.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Bottom returns the y of the player's feet.
func (p *Player) Bottom() float64 {
	return p.Y + p.Height
}

// Center returns the middle of the player's body.
func (p *Player) Center() (float64, float64) {
	return p.Box().Center()
}

// Steer sets horizontal velocity from held directions.
// Left wins when both are held; with neither, velocity decays by friction.
func (p *Player) Steer(left, right bool, friction float64) {
	switch {
	case left:
		p.VelX = -p.Speed
	case right:
		p.VelX = p.Speed
	default:
		p.VelX *= friction
	}
}

// Integrate applies gravity, moves the player and keeps it inside the world horizontally.
func (p *Player) Integrate(gravity, worldW float64) {
	p.VelY += gravity
	p.X += p.VelX
	p.Y += p.VelY
	p.X = core.ClampF(p.X, 0, math.Max(0, worldW-p.Width))
}

// Jump launches the player if it is standing on a platform.
func (p *Player) Jump() bool {
	if !p.OnGround {
		return false
	}
	p.VelY = -p.JumpPower
	p.OnGround = false
	return true
}
