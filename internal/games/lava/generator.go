package lava

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lava-escape/internal/config"
)

// TypeWeight pairs a platform type with the cumulative threshold below which it is picked.
type TypeWeight struct {
	Type      PlatformType
	Threshold float64
}

// WeightTable picks a platform type from a single uniform draw.
// Entries are consulted in order; a draw above every threshold is a normal platform.
type WeightTable []TypeWeight

// NewWeightTable builds a table from configured cumulative thresholds.
func NewWeightTable(w config.TypeWeights) WeightTable {
	return WeightTable{
		{Type: PlatformCrumbling, Threshold: w.Crumbling},
		{Type: PlatformMoving, Threshold: w.Moving},
		{Type: PlatformTrap, Threshold: w.Trap},
	}
}

// Pick returns the type for draw r in [0, 1).
func (t WeightTable) Pick(r float64) PlatformType {
	for _, w := range t {
		if r < w.Threshold {
			return w.Type
		}
	}
	return PlatformNormal
}

// Generator lays out the initial platforms and streams new ones above the player.
type Generator struct {
	rng     *rand.Rand
	cfg     config.GeneratorConfig
	rules   config.PlatformConfig
	initial WeightTable
	stream  WeightTable
}

// NewGenerator creates a generator drawing randomness from rng.
func NewGenerator(rng *rand.Rand, cfg config.GeneratorConfig, rules config.PlatformConfig) *Generator {
	return &Generator{
		rng:     rng,
		cfg:     cfg,
		rules:   rules,
		initial: NewWeightTable(cfg.InitialWeights),
		stream:  NewWeightTable(cfg.StreamWeights),
	}
}

// Initial returns the starting layout for a world of the given size.
// The first platform is a wide normal ledge centered under the spawn point.
func (g *Generator) Initial(worldW, viewH float64) []*Platform {
	baseY := viewH - g.cfg.BaseOffset
	platforms := make([]*Platform, 0, g.cfg.InitialCount)
	platforms = append(platforms, NewPlatform(
		worldW/2-g.cfg.SpawnWidth/2, baseY, g.cfg.SpawnWidth, PlatformNormal, 1, g.rules))

	for i := 1; i < g.cfg.InitialCount; i++ {
		y := baseY - float64(i)*g.cfg.Spacing
		platforms = append(platforms, g.random(y, worldW, g.initial))
	}
	return platforms
}

// Stream appends at most one platform above the highest one when it is
// within the lookahead distance of playerY.
func (g *Generator) Stream(platforms []*Platform, playerY, worldW float64) []*Platform {
	highest := math.Inf(1)
	for _, p := range platforms {
		highest = math.Min(highest, p.Y)
	}
	if math.IsInf(highest, 1) {
		// Everything crumbled away; restart the column just above the player.
		highest = playerY
	}
	if highest <= playerY-g.cfg.Lookahead {
		return platforms
	}
	return append(platforms, g.random(highest-g.cfg.Spacing, worldW, g.stream))
}

// Prune drops platforms whose top is below belowY.
func (g *Generator) Prune(platforms []*Platform, belowY float64) []*Platform {
	kept := make([]*Platform, 0, len(platforms))
	for _, p := range platforms {
		if p.Y <= belowY {
			kept = append(kept, p)
		}
	}
	return kept
}

// random creates a platform at y with random x, width and type.
// The draw order is fixed so a seed reproduces the same layout.
func (g *Generator) random(y, worldW float64, table WeightTable) *Platform {
	x := g.rng.Float64() * math.Max(0, worldW-g.cfg.XMargin)
	width := g.cfg.MinWidth + g.rng.Float64()*g.cfg.WidthJitter
	typ := table.Pick(g.rng.Float64())

	dir := 1.0
	if g.rng.Float64() < 0.5 {
		dir = -1
	}
	return NewPlatform(x, y, width, typ, dir, g.rules)
}
