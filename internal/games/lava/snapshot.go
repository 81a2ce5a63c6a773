package lava

import (
	"math"
	"slices"

	"github.com/vovakirdan/lava-escape/internal/core"
)

// PlatformView is the render-facing state of one platform.
type PlatformView struct {
	X, Y          float64
	Width, Height float64
	Type          PlatformType
	Health        int
	TrapActive    bool
	Cracking      bool
	Color         core.Color
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick uint64

	Player    Player
	Platforms []PlatformView
	Particles []Particle

	CameraY   float64
	LavaY     float64
	LavaSpeed float64
	WorldW    float64
	ViewH     float64

	Background int
	Score      int
	Time       int
	GameOver   bool
	Paused     bool
}

// Snapshot returns the current render state. It shares nothing with the game.
func (g *Game) Snapshot() Snapshot {
	platforms := make([]PlatformView, len(g.platforms))
	for i, pl := range g.platforms {
		platforms[i] = PlatformView{
			X:          pl.X,
			Y:          pl.Y,
			Width:      pl.Width,
			Height:     pl.Height,
			Type:       pl.Type,
			Health:     pl.Health,
			TrapActive: pl.TrapActive,
			Cracking:   pl.Cracking(),
			Color:      pl.Color(),
		}
	}

	return Snapshot{
		Tick:       g.tick,
		Player:     *g.player,
		Platforms:  platforms,
		Particles:  slices.Clone(g.particles.Particles()),
		CameraY:    g.cameraY,
		LavaY:      g.lavaY,
		LavaSpeed:  g.lavaSpeed,
		WorldW:     g.worldW,
		ViewH:      g.viewH,
		Background: g.Background(),
		Score:      g.score,
		Time:       g.Elapsed(),
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}
	mixInt := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mix(snap.Player.X)
	mix(snap.Player.Y)
	mix(snap.Player.VelX)
	mix(snap.Player.VelY)
	mix(snap.CameraY)
	mix(snap.LavaY)
	mixInt(snap.Score)

	mixInt(len(snap.Platforms))
	for _, p := range snap.Platforms {
		mix(p.X)
		mix(p.Y)
		mix(p.Width)
		mixInt(int(p.Type))
		mixInt(p.Health)
	}

	mixInt(len(snap.Particles))
	for _, p := range snap.Particles {
		mix(p.X)
		mix(p.Y)
		mixInt(p.Life)
	}

	return h
}
