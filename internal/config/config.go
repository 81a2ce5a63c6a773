// Package config provides YAML-based game configuration loading and
// difficulty presets for Lava Escape.
package config

import (
	"errors"
	"fmt"
)

// LavaConfig contains all tunables for the simulation.
type LavaConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Platforms PlatformConfig  `yaml:"platforms"`
	Generator GeneratorConfig `yaml:"generator"`
	Lava      LavaRiseConfig  `yaml:"lava"`
	Camera    CameraConfig    `yaml:"camera"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Particles ParticleConfig  `yaml:"particles"`
	Controls  ControlsConfig  `yaml:"controls"`
}

// PlayerConfig defines the player's body and movement constants.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	JumpPower   float64 `yaml:"jump_power"`
	SpawnOffset float64 `yaml:"spawn_offset"` // spawn y = view height - offset
}

// PhysicsConfig defines per-frame accelerations.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"` // horizontal velocity factor when no input is held
}

// PlatformConfig defines platform behavior constants.
type PlatformConfig struct {
	Height            float64 `yaml:"height"`
	CrumblingHealth   int     `yaml:"crumbling_health"`
	SolidHealth       int     `yaml:"solid_health"`
	CrumbleThreshold  int     `yaml:"crumble_threshold"`
	CrumbleDecay      int     `yaml:"crumble_decay"`
	CrumbleStepDamage int     `yaml:"crumble_step_damage"`
	MoveSpeed         float64 `yaml:"move_speed"`
	TrapPeriod        int     `yaml:"trap_period"`
}

// TypeWeights holds cumulative thresholds for a single uniform draw.
// A draw below Crumbling picks crumbling, below Moving picks moving,
// below Trap picks trap, anything else is a normal platform.
type TypeWeights struct {
	Crumbling float64 `yaml:"crumbling"`
	Moving    float64 `yaml:"moving"`
	Trap      float64 `yaml:"trap"`
}

// GeneratorConfig defines the initial layout and streaming policy.
type GeneratorConfig struct {
	InitialCount   int         `yaml:"initial_count"`
	Spacing        float64     `yaml:"spacing"`
	BaseOffset     float64     `yaml:"base_offset"` // first platform y = view height - offset
	SpawnWidth     float64     `yaml:"spawn_width"`
	MinWidth       float64     `yaml:"min_width"`
	WidthJitter    float64     `yaml:"width_jitter"`
	XMargin        float64     `yaml:"x_margin"`
	Lookahead      float64     `yaml:"lookahead"`
	PruneBelow     float64     `yaml:"prune_below"`
	InitialWeights TypeWeights `yaml:"initial_weights"`
	StreamWeights  TypeWeights `yaml:"stream_weights"`
}

// LavaRiseConfig defines how the lava climbs.
type LavaRiseConfig struct {
	StartSpeed   float64 `yaml:"start_speed"`
	Acceleration float64 `yaml:"acceleration"`
}

// CameraConfig defines camera easing.
type CameraConfig struct {
	Easing float64 `yaml:"easing"`
}

// ScoringConfig defines how altitude maps to score and cosmetics.
type ScoringConfig struct {
	BaselineOffset  float64 `yaml:"baseline_offset"`
	UnitsPerMeter   float64 `yaml:"units_per_meter"`
	BackgroundEvery int     `yaml:"background_every"`
	Backgrounds     int     `yaml:"backgrounds"`
}

// ParticleConfig defines particle physics and the soft cap.
type ParticleConfig struct {
	Gravity float64 `yaml:"gravity"`
	Max     int     `yaml:"max"` // 0 disables the cap
}

// ControlsConfig defines frontend input handling.
type ControlsConfig struct {
	// HoldTicks is how long a terminal key press counts as held.
	// Terminals report repeats, not releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate checks that the config describes a playable game.
func (c LavaConfig) Validate() error {
	var errs []error

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.JumpPower <= 0 {
		errs = append(errs, errors.New("player jump_power must be positive"))
	}
	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		errs = append(errs, fmt.Errorf("physics friction %v out of [0, 1]", c.Physics.Friction))
	}
	if c.Platforms.Height <= 0 {
		errs = append(errs, errors.New("platform height must be positive"))
	}
	if c.Platforms.SolidHealth <= 0 || c.Platforms.CrumblingHealth <= 0 {
		errs = append(errs, errors.New("platform solid_health and crumbling_health must be positive"))
	}
	if c.Platforms.CrumbleDecay <= 0 {
		errs = append(errs, errors.New("platform crumble_decay must be positive"))
	}
	if c.Platforms.TrapPeriod <= 0 {
		errs = append(errs, errors.New("platform trap_period must be positive"))
	}
	if c.Generator.InitialCount < 1 {
		errs = append(errs, errors.New("generator initial_count must be at least 1"))
	}
	if c.Generator.Spacing <= 0 {
		errs = append(errs, errors.New("generator spacing must be positive"))
	}
	if c.Generator.PruneBelow <= 0 {
		errs = append(errs, errors.New("generator prune_below must be positive"))
	}
	if err := c.Generator.InitialWeights.validate(); err != nil {
		errs = append(errs, fmt.Errorf("initial_weights: %w", err))
	}
	if err := c.Generator.StreamWeights.validate(); err != nil {
		errs = append(errs, fmt.Errorf("stream_weights: %w", err))
	}
	if c.Camera.Easing <= 0 || c.Camera.Easing > 1 {
		errs = append(errs, fmt.Errorf("camera easing %v out of (0, 1]", c.Camera.Easing))
	}
	if c.Scoring.UnitsPerMeter <= 0 {
		errs = append(errs, errors.New("scoring units_per_meter must be positive"))
	}
	if c.Scoring.BackgroundEvery <= 0 || c.Scoring.Backgrounds <= 0 {
		errs = append(errs, errors.New("scoring background_every and backgrounds must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func (w TypeWeights) validate() error {
	if w.Crumbling < 0 || w.Crumbling > w.Moving || w.Moving > w.Trap || w.Trap > 1 {
		return fmt.Errorf("thresholds must be cumulative in [0, 1], got %v/%v/%v",
			w.Crumbling, w.Moving, w.Trap)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty means "use config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
