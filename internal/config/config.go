// Package config provides YAML-based game configuration loading and
// difficulty presets for Sky Memory.
package config

import "gopkg.in/yaml.v3"

// Config contains all configuration for a Sky Memory run.
type Config struct {
	Layout Layout  `yaml:"layout"`
	Timing Timing  `yaml:"timing"`
	Rules  Rules   `yaml:"rules"`
	Hazard Hazard  `yaml:"hazard"`
	Levels []Level `yaml:"levels"`
}

// Layout defines how much of the viewport the grid may occupy.
type Layout struct {
	WidthFraction  float64 `yaml:"width_fraction"`
	HeightFraction float64 `yaml:"height_fraction"`
}

// Timing defines the durations of the timed phases, in seconds.
type Timing struct {
	Reveal float64 `yaml:"reveal"` // Hold of the path hint
	Fade   float64 `yaml:"fade"`   // Fade-out of the path hint
	Leg    float64 `yaml:"leg"`    // One leg of a row oscillation
}

// Rules defines scoring and mistake penalties.
type Rules struct {
	Lives              int     `yaml:"lives"`
	Penalty            int     `yaml:"penalty"`              // Coins lost per mistake
	MistakeSpeedFactor float64 `yaml:"mistake_speed_factor"` // Hazard speed multiplier per mistake
	MistakeJump        float64 `yaml:"mistake_jump"`         // Hazard jump per mistake, in tiles
	CatchMargin        float64 `yaml:"catch_margin"`         // Catch line below the token, in token heights
}

// Hazard defines the default climbing obstacle parameters.
// Distances are in tiles so they scale with the grid.
type Hazard struct {
	StartBelow   float64 `yaml:"start_below"`  // Start position below the grid bottom
	Speed        float64 `yaml:"speed"`        // Tiles per second
	Acceleration float64 `yaml:"acceleration"` // Tiles per second squared
}

// Level describes one campaign level.
// Hazard fields the level does not set fall back to the Hazard section;
// an explicit zero is kept.
type Level struct {
	Name               string  `yaml:"name"`
	Columns            int     `yaml:"columns"`
	Rows               int     `yaml:"rows"`
	Stake              int     `yaml:"stake"`
	HazardSpeed        float64 `yaml:"hazard_speed,omitempty"`
	HazardAcceleration float64 `yaml:"hazard_acceleration,omitempty"`

	speedSet bool
	accelSet bool
}

// UnmarshalYAML decodes a level and records which hazard keys it names.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	type plain Level
	if err := node.Decode((*plain)(l)); err != nil {
		return err
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch node.Content[i].Value {
		case "hazard_speed":
			l.speedSet = true
		case "hazard_acceleration":
			l.accelSet = true
		}
	}
	return nil
}

// WithHazardSpeed returns a copy of l with an explicit hazard speed.
func (l Level) WithHazardSpeed(v float64) Level {
	l.HazardSpeed, l.speedSet = v, true
	return l
}

// WithHazardAcceleration returns a copy of l with an explicit hazard
// acceleration.
func (l Level) WithHazardAcceleration(v float64) Level {
	l.HazardAcceleration, l.accelSet = v, true
	return l
}

// LevelCount returns the number of campaign levels.
func (c *Config) LevelCount() int {
	return len(c.Levels)
}

// Level returns the level at the given index (0-based) with hazard
// defaults applied. Returns false if index is out of range.
func (c *Config) Level(index int) (Level, bool) {
	if index < 0 || index >= len(c.Levels) {
		return Level{}, false
	}
	lvl := c.Levels[index]
	if !lvl.speedSet && lvl.HazardSpeed == 0 {
		lvl.HazardSpeed = c.Hazard.Speed
	}
	if !lvl.accelSet && lvl.HazardAcceleration == 0 {
		lvl.HazardAcceleration = c.Hazard.Acceleration
	}
	return lvl, true
}

// LevelNames returns the names of all levels.
func (c *Config) LevelNames() []string {
	names := make([]string, len(c.Levels))
	for i, lvl := range c.Levels {
		names[i] = lvl.Name
	}
	return names
}
