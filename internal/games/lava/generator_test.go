package lava

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/lava-escape/internal/config"
)

func newGenerator(seed int64) *Generator {
	cfg := config.DefaultLavaConfig()
	return NewGenerator(rand.New(rand.NewSource(seed)), cfg.Generator, cfg.Platforms)
}

func TestWeightTablePick(t *testing.T) {
	initial := NewWeightTable(config.DefaultLavaConfig().Generator.InitialWeights)
	stream := NewWeightTable(config.DefaultLavaConfig().Generator.StreamWeights)

	tests := []struct {
		name  string
		table WeightTable
		draw  float64
		want  PlatformType
	}{
		{"initial low", initial, 0.0, PlatformCrumbling},
		{"initial crumbling edge", initial, 0.19, PlatformCrumbling},
		{"initial moving", initial, 0.20, PlatformMoving},
		{"initial moving edge", initial, 0.34, PlatformMoving},
		{"initial trap", initial, 0.35, PlatformTrap},
		{"initial normal", initial, 0.45, PlatformNormal},
		{"initial high", initial, 0.99, PlatformNormal},
		{"stream crumbling", stream, 0.24, PlatformCrumbling},
		{"stream moving", stream, 0.25, PlatformMoving},
		{"stream trap", stream, 0.45, PlatformTrap},
		{"stream normal", stream, 0.50, PlatformNormal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.table.Pick(tc.draw); got != tc.want {
				t.Errorf("Pick(%v) = %v, expected %v", tc.draw, got, tc.want)
			}
		})
	}
}

func TestInitialLayout(t *testing.T) {
	const worldW, viewH = 800.0, 600.0
	platforms := newGenerator(3).Initial(worldW, viewH)

	if len(platforms) != 50 {
		t.Fatalf("Initial() made %d platforms, expected 50", len(platforms))
	}

	spawn := platforms[0]
	if spawn.Type != PlatformNormal || spawn.X != 300 || spawn.Y != 500 || spawn.Width != 200 {
		t.Errorf("spawn platform = %+v, expected normal 200 wide at (300, 500)", spawn)
	}

	for i, p := range platforms[1:] {
		wantY := 500 - float64(i+1)*80
		if p.Y != wantY {
			t.Errorf("platform %d at y=%v, expected %v", i+1, p.Y, wantY)
		}
		if p.X < 0 || p.X >= worldW-150 {
			t.Errorf("platform %d x=%v outside [0, %v)", i+1, p.X, worldW-150)
		}
		if p.Width < 100 || p.Width >= 200 {
			t.Errorf("platform %d width=%v outside [100, 200)", i+1, p.Width)
		}
		if p.MoveDirection != 1 && p.MoveDirection != -1 {
			t.Errorf("platform %d direction %v", i+1, p.MoveDirection)
		}
	}
}

func TestInitialLayoutIsSeeded(t *testing.T) {
	a := newGenerator(11).Initial(800, 600)
	b := newGenerator(11).Initial(800, 600)
	c := newGenerator(12).Initial(800, 600)

	same, differs := true, false
	for i := range a {
		if *a[i] != *b[i] {
			same = false
		}
		if *a[i] != *c[i] {
			differs = true
		}
	}
	if !same {
		t.Error("same seed should produce the same layout")
	}
	if !differs {
		t.Error("different seeds should produce different layouts")
	}
}

func TestStreamAddsOneWithinLookahead(t *testing.T) {
	g := newGenerator(5)
	platforms := []*Platform{NewPlatform(0, 100, 100, PlatformNormal, 1, rules())}

	// Highest platform at 100, player at 500: 400 above, within 1000.
	platforms = g.Stream(platforms, 500, 800)
	if len(platforms) != 2 {
		t.Fatalf("Stream() should add one platform, got %d", len(platforms))
	}
	if platforms[1].Y != 20 {
		t.Errorf("new platform at y=%v, expected 20", platforms[1].Y)
	}

	// Only one per call, even when the player is far above the highest platform.
	platforms = g.Stream(platforms, -5000, 800)
	if len(platforms) != 3 {
		t.Fatalf("Stream() should add at most one platform per call, got %d", len(platforms))
	}
	if platforms[2].Y != -60 {
		t.Errorf("new platform at y=%v, expected -60", platforms[2].Y)
	}
}

func TestStreamStopsBeyondLookahead(t *testing.T) {
	g := newGenerator(5)
	platforms := []*Platform{NewPlatform(0, -600, 100, PlatformNormal, 1, rules())}

	// Highest is exactly 1000 above the player.
	platforms = g.Stream(platforms, 400, 800)
	if len(platforms) != 1 {
		t.Errorf("Stream() should not generate beyond the lookahead, got %d platforms", len(platforms))
	}
}

func TestStreamKeepsWorldBounded(t *testing.T) {
	g := newGenerator(9)
	platforms := []*Platform{NewPlatform(0, 0, 100, PlatformNormal, 1, rules())}

	for range 1000 {
		platforms = g.Stream(platforms, 0, 800)
	}

	// 0, -80, ... -960 are all within reach; -1040 is the last one added.
	if len(platforms) != 14 {
		t.Errorf("streaming made %d platforms, expected 14", len(platforms))
	}
	highest := platforms[len(platforms)-1].Y
	if highest != -1040 {
		t.Errorf("highest platform at y=%v, expected -1040", highest)
	}
}

func TestPrune(t *testing.T) {
	g := newGenerator(1)
	platforms := []*Platform{
		NewPlatform(0, 100, 100, PlatformNormal, 1, rules()),
		NewPlatform(0, 2000, 100, PlatformNormal, 1, rules()),
		NewPlatform(0, 500, 100, PlatformTrap, 1, rules()),
	}

	kept := g.Prune(platforms, 1000)
	if len(kept) != 2 || kept[0].Y != 100 || kept[1].Y != 500 {
		t.Errorf("Prune() kept %d platforms, expected the two above y=1000 in order", len(kept))
	}
}
