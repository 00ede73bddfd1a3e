package config

import (
	_ "embed"
)

//go:embed defaults/skymemory.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/skymemory.yaml.
func Default() Config {
	return Config{
		Layout: Layout{
			WidthFraction:  0.9,
			HeightFraction: 0.8,
		},
		Timing: Timing{
			Reveal: 2.0,
			Fade:   0.5,
			Leg:    4.0,
		},
		Rules: Rules{
			Lives:              3,
			Penalty:            50,
			MistakeSpeedFactor: 1.5,
			MistakeJump:        0.5,
			CatchMargin:        0.25,
		},
		Hazard: Hazard{
			StartBelow:   2.5,
			Speed:        0.1,
			Acceleration: 0,
		},
		Levels: []Level{
			{Name: "First Flight", Columns: 5, Rows: 4, Stake: 150},
			Level{Name: "Crosswind", Columns: 6, Rows: 5, Stake: 150}.WithHazardSpeed(0.12),
			Level{Name: "Cloud Line", Columns: 7, Rows: 6, Stake: 200}.WithHazardSpeed(0.14),
			Level{Name: "Storm Front", Columns: 10, Rows: 7, Stake: 150}.WithHazardSpeed(0.15).WithHazardAcceleration(0.005),
			Level{Name: "Thin Air", Columns: 10, Rows: 8, Stake: 250}.WithHazardSpeed(0.18).WithHazardAcceleration(0.01),
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
