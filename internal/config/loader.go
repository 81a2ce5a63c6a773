package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the Lava Escape configuration.
// Search order: customPath -> ~/.lavaescape/configs/lava.yaml -> ./configs/lava.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other locations are best-effort.
func Load(customPath string) (LavaConfig, error) {
	// Files are decoded on top of the defaults so partial overrides work.
	cfg := DefaultLavaConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("lava.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultLavaConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "lava.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultLavaConfig()
	}

	if err := yaml.Unmarshal(defaultLavaYAML, &cfg); err != nil {
		return DefaultLavaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lavaescape", "configs", filename)
}

// ApplyPreset adjusts how fast the lava rises.
// Fixed keeps the starting speed but removes the acceleration.
func ApplyPreset(cfg *LavaConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lava.StartSpeed = 0.05
		cfg.Lava.Acceleration = 0.0005
	case DifficultyNormal:
		cfg.Lava.StartSpeed = 0.1
		cfg.Lava.Acceleration = 0.001
	case DifficultyHard:
		cfg.Lava.StartSpeed = 0.3
		cfg.Lava.Acceleration = 0.002
	case DifficultyFixed:
		cfg.Lava.Acceleration = 0
	}
}
