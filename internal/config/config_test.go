package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML LavaConfig
	if err := yaml.Unmarshal(defaultLavaYAML, &fromYAML); err != nil {
		t.Fatalf("embedded lava.yaml does not parse: %v", err)
	}

	if fromYAML != DefaultLavaConfig() {
		t.Errorf("embedded YAML and DefaultLavaConfig diverged:\nyaml: %+v\ngo:   %+v", fromYAML, DefaultLavaConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultLavaConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lava.yaml")
	data := []byte("lava:\n  start_speed: 0.5\nplayer:\n  jump_power: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Lava.StartSpeed != 0.5 {
		t.Errorf("StartSpeed = %v, expected 0.5", cfg.Lava.StartSpeed)
	}
	if cfg.Player.JumpPower != 30 {
		t.Errorf("JumpPower = %v, expected 30", cfg.Player.JumpPower)
	}
	// Untouched fields keep defaults
	if cfg.Platforms.TrapPeriod != 260 {
		t.Errorf("TrapPeriod = %d, expected default 260", cfg.Platforms.TrapPeriod)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidateRejectsNonCumulativeWeights(t *testing.T) {
	cfg := DefaultLavaConfig()
	cfg.Generator.StreamWeights = TypeWeights{Crumbling: 0.5, Moving: 0.4, Trap: 0.6}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should reject decreasing thresholds")
	}
	if !strings.Contains(err.Error(), "stream_weights") {
		t.Errorf("error should name the offending table, got %v", err)
	}
}

func TestValidateRejectsNonPositivePlatformRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlatformConfig)
		want   string
	}{
		{"solid health", func(p *PlatformConfig) { p.SolidHealth = 0 }, "solid_health"},
		{"crumbling health", func(p *PlatformConfig) { p.CrumblingHealth = -5 }, "crumbling_health"},
		{"crumble decay", func(p *PlatformConfig) { p.CrumbleDecay = 0 }, "crumble_decay"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLavaConfig()
			tc.mutate(&cfg.Platforms)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should reject the config")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error should mention %s, got %v", tc.want, err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantSpeed float64
		wantAccel float64
	}{
		{DifficultyEasy, 0.05, 0.0005},
		{DifficultyNormal, 0.1, 0.001},
		{DifficultyHard, 0.3, 0.002},
		{DifficultyFixed, 0.1, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultLavaConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Lava.StartSpeed != tc.wantSpeed || cfg.Lava.Acceleration != tc.wantAccel {
				t.Errorf("lava = %+v, expected speed %v accel %v", cfg.Lava, tc.wantSpeed, tc.wantAccel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}
