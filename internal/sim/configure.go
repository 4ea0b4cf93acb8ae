package sim

import "github.com/vovakirdan/orbit-rush/internal/config"

// Package-level creation options, set by the CLI before the registry
// factory runs. They affect only games created afterwards.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom YAML config path for subsequently created
// games. Empty restores the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal",
// "hard", "fixed") for subsequently created games. Unknown values
// leave the config untouched.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// loadConfig resolves the effective game config from the configured
// path and preset. Load errors fall back to the embedded defaults.
func loadConfig() config.OrbitConfig {
	cfg, err := config.LoadOrbit(configPath)
	if err != nil {
		cfg = config.DefaultOrbitConfig()
	}
	if difficultyPreset != "" {
		config.ApplyOrbitPreset(&cfg, difficultyPreset)
	}
	return cfg
}
