// Package lava implements Lava Escape, a vertical platformer.
// The player climbs procedurally streamed platforms while lava rises from below;
// the score is the highest altitude reached.
//
// All state lives in a Game value. Frontends drive it with Step and read it
// back with Snapshot or Render.
package lava

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lava-escape/internal/config"
	"github.com/vovakirdan/lava-escape/internal/core"
	"github.com/vovakirdan/lava-escape/internal/leaderboard"
)

// Game is one Lava Escape session.
type Game struct {
	cfg     config.LavaConfig
	runtime core.RuntimeConfig
	board   *leaderboard.Board
	logger  *log.Logger

	rng       *rand.Rand
	gen       *Generator
	particles *ParticleSystem
	player    *Player
	platforms []*Platform

	worldW, viewH float64
	baselineH     float64 // view height when the run started

	cameraY   float64
	lavaY     float64
	lavaSpeed float64
	score     int
	tick      uint64 // ticks of the current run, frozen at game over
	runs      int

	gameOver bool
	paused   bool
}

// Option configures a Game.
type Option func(*Game)

// WithBoard records finished runs on b.
func WithBoard(b *leaderboard.Board) Option {
	return func(g *Game) { g.board = b }
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game. Call Reset before the first Step.
func New(cfg config.LavaConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg, runtime: core.RuntimeConfig{TickRate: 60}}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lava"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lava Escape"
}

// Reset seeds the session from runtime and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.worldW, g.viewH = runtime.WorldSize()

	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	g.gen = NewGenerator(g.rng, g.cfg.Generator, g.cfg.Platforms)
	g.particles = NewParticleSystem(g.rng, g.cfg.Particles.Gravity, g.cfg.Particles.Max)
	g.runs = 0

	g.newRun()
}

// Restart begins a new run in the same world size.
// The random stream continues, so the new layout differs from the last one.
func (g *Game) Restart() {
	g.newRun()
}

func (g *Game) newRun() {
	g.baselineH = g.viewH
	g.player = NewPlayer(g.worldW/2, g.viewH-g.cfg.Player.SpawnOffset, g.cfg.Player)
	g.platforms = g.gen.Initial(g.worldW, g.viewH)
	g.particles.Reset()

	g.cameraY = 0
	g.lavaY = g.viewH
	g.lavaSpeed = g.cfg.Lava.StartSpeed
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.runs++

	g.logger.Debug("run started", "run", g.runs, "world_w", g.worldW, "view_h", g.viewH,
		"platforms", len(g.platforms))
}

// Resize changes the viewport without restarting the run.
// The score baseline keeps the height the run started with.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.worldW, g.viewH = g.runtime.WorldSize()
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Restart()
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		// Frozen, but death bursts still play out.
		g.particles.Update()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Player physics
	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
	g.player.Steer(in.Has(core.ActionLeft), in.Has(core.ActionRight), g.cfg.Physics.Friction)
	g.player.Integrate(g.cfg.Physics.Gravity, g.worldW)

	// Collisions
	var hit CollisionResult
	g.platforms, hit = ResolveCollisions(g.player, g.platforms, g.worldW)
	if hit.TrapDeath {
		cx, cy := g.player.Center()
		g.particles.TrapHit(cx, cy)
		return g.endRun("trap")
	}

	// Platform behaviors
	for _, pl := range g.platforms {
		if pl.Update(g.worldW) {
			g.particles.CrumbleBurst(pl)
		}
	}

	// World streaming
	g.platforms = g.gen.Stream(g.platforms, g.player.Y, g.worldW)
	g.platforms = g.gen.Prune(g.platforms, g.cameraY+g.viewH+g.cfg.Generator.PruneBelow)

	g.particles.Update()

	// Camera eases toward keeping the player mid-screen.
	target := g.player.Y - g.viewH/2
	g.cameraY += (target - g.cameraY) * g.cfg.Camera.Easing

	// Lava rises and accelerates.
	g.lavaY -= g.lavaSpeed
	g.lavaSpeed += g.cfg.Lava.Acceleration

	if g.player.Bottom() >= g.lavaY {
		cx, cy := g.player.Center()
		g.particles.LavaDeath(cx, cy)
		return g.endRun("lava")
	}

	g.updateScore()

	return core.StepResult{State: g.State()}
}

// updateScore raises the score to the current altitude if it is a new peak.
func (g *Game) updateScore() {
	climbed := (g.baselineH - g.cfg.Scoring.BaselineOffset - g.player.Y) / g.cfg.Scoring.UnitsPerMeter
	height := max(0, int(math.Floor(climbed)))
	if height > g.score {
		g.score = height
	}
}

// endRun freezes the session and records the result.
func (g *Game) endRun(cause string) core.StepResult {
	g.gameOver = true
	entry := leaderboard.Entry{Score: g.score, Time: g.Elapsed()}

	g.logger.Info("run ended", "cause", cause, "score", entry.Score, "time", entry.Time)

	if g.board != nil {
		if err := g.board.Record(entry); err != nil {
			g.logger.Error("could not record run", "error", err)
		}
	}

	return core.StepResult{State: g.State(), Ended: true}
}

// Elapsed returns the run's survival time in whole seconds.
func (g *Game) Elapsed() int {
	if g.runtime.TickRate <= 0 {
		return 0
	}
	return int(g.tick / uint64(g.runtime.TickRate)) //#nosec G115 -- TickRate is positive
}

// Background returns the cosmetic background index for the current score.
func (g *Game) Background() int {
	return (g.score / g.cfg.Scoring.BackgroundEvery) % g.cfg.Scoring.Backgrounds
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Time:     g.Elapsed(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Config returns the tunables the game was built with.
func (g *Game) Config() config.LavaConfig {
	return g.cfg
}

// Board returns the leaderboard the game records to, or nil.
func (g *Game) Board() *leaderboard.Board {
	return g.board
}
