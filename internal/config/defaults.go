package config

import (
	_ "embed"
)

//go:embed defaults/lava.yaml
var defaultLavaYAML []byte

// DefaultLavaConfig returns the default Lava Escape configuration.
// It mirrors defaults/lava.yaml and is used if the embedded file fails to parse.
func DefaultLavaConfig() LavaConfig {
	return LavaConfig{
		Player: PlayerConfig{
			Width:       20,
			Height:      40,
			Speed:       5,
			JumpPower:   25,
			SpawnOffset: 200,
		},
		Physics: PhysicsConfig{
			Gravity:  0.8,
			Friction: 0.8,
		},
		Platforms: PlatformConfig{
			Height:            15,
			CrumblingHealth:   200,
			SolidHealth:       2000,
			CrumbleThreshold:  100,
			CrumbleDecay:      2,
			CrumbleStepDamage: 5,
			MoveSpeed:         5,
			TrapPeriod:        260,
		},
		Generator: GeneratorConfig{
			InitialCount: 50,
			Spacing:      80,
			BaseOffset:   100,
			SpawnWidth:   200,
			MinWidth:     100,
			WidthJitter:  100,
			XMargin:      150,
			Lookahead:    1000,
			PruneBelow:   1200,
			InitialWeights: TypeWeights{
				Crumbling: 0.20,
				Moving:    0.35,
				Trap:      0.45,
			},
			StreamWeights: TypeWeights{
				Crumbling: 0.25,
				Moving:    0.40,
				Trap:      0.50,
			},
		},
		Lava: LavaRiseConfig{
			StartSpeed:   0.1,
			Acceleration: 0.001,
		},
		Camera: CameraConfig{
			Easing: 0.1,
		},
		Scoring: ScoringConfig{
			BaselineOffset:  150,
			UnitsPerMeter:   10,
			BackgroundEvery: 150,
			Backgrounds:     3,
		},
		Particles: ParticleConfig{
			Gravity: 0.3,
			Max:     2000,
		},
		Controls: ControlsConfig{
			HoldTicks: 18,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `config` dumps.
func DefaultYAML() []byte {
	return defaultLavaYAML
}
