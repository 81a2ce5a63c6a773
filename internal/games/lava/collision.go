package lava

import (
	"math"

	"github.com/vovakirdan/lava-escape/internal/core"
)

// CollisionResult describes what the player hit this frame.
type CollisionResult struct {
	Landed      *Platform // nil when airborne
	LandedIndex int       // index into the returned platforms, -1 when airborne
	TrapDeath   bool
}

// ResolveCollisions drops dead platforms, then lands the player on the first
// platform it is falling onto. The surviving platforms are returned in
// storage order.
//
// A landing needs overlap, downward velocity, and the player's top above the
// platform's top. The first landing wins; an active trap ends the scan.
// A moving platform's carry never pushes the player outside [0, worldW].
func ResolveCollisions(p *Player, platforms []*Platform, worldW float64) ([]*Platform, CollisionResult) {
	live := make([]*Platform, 0, len(platforms))
	for _, pl := range platforms {
		if pl.Alive() {
			live = append(live, pl)
		}
	}

	res := CollisionResult{LandedIndex: -1}
	p.OnGround = false

	for i, pl := range live {
		if !p.Box().Intersects(pl.Box()) {
			continue
		}
		if p.VelY <= 0 || p.Y >= pl.Y {
			continue
		}

		p.Y = pl.Y - p.Height
		p.VelY = 0
		p.OnGround = true
		res.Landed = pl
		res.LandedIndex = i

		switch pl.Type {
		case PlatformCrumbling:
			pl.Step()
		case PlatformTrap:
			if pl.Deadly() {
				res.TrapDeath = true
			}
		case PlatformMoving:
			p.X += pl.MoveDirection * pl.MoveSpeed
			p.X = core.ClampF(p.X, 0, math.Max(0, worldW-p.Width))
		}
		break
	}

	return live, res
}
