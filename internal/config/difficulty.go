package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// SpeedScaleForPreset returns the hazard speed multiplier for a preset.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.4
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables hazard acceleration.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// Only the hazard changes: speeds are scaled for every level and the
// fixed preset removes acceleration. Rules such as the mistake penalty
// are the same for every preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	scale := SpeedScaleForPreset(preset)
	cfg.Hazard.Speed *= scale
	for i := range cfg.Levels {
		cfg.Levels[i].HazardSpeed *= scale
	}

	if IsFixedPreset(preset) {
		cfg.Hazard.Acceleration = 0
		for i := range cfg.Levels {
			cfg.Levels[i] = cfg.Levels[i].WithHazardAcceleration(0)
		}
	}
}
