package session

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/sky-memory/internal/config"
	"github.com/vovakirdan/sky-memory/internal/core"
)

// ErrInvalidConfig is returned by New when the session cannot be built.
var ErrInvalidConfig = errors.New("invalid session config")

// Config is everything a session needs to set itself up.
type Config struct {
	ViewW  float64 // Scene viewport width
	ViewH  float64 // Scene viewport height
	Layout config.Layout
	Timing config.Timing
	Rules  config.Rules
	Hazard config.Hazard // StartBelow only; speed comes from Level
	Level  config.Level
	Seed   int64
}

// ConfigFor builds a session config for the given campaign level.
func ConfigFor(cfg config.Config, level int, viewW, viewH float64, seed int64) (Config, error) {
	lvl, ok := cfg.Level(level)
	if !ok {
		return Config{}, fmt.Errorf("%w: level %d out of range (have %d)", ErrInvalidConfig, level+1, cfg.LevelCount())
	}
	return Config{
		ViewW:  viewW,
		ViewH:  viewH,
		Layout: cfg.Layout,
		Timing: cfg.Timing,
		Rules:  cfg.Rules,
		Hazard: cfg.Hazard,
		Level:  lvl,
		Seed:   seed,
	}, nil
}

// Validate checks the invariants a session relies on.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Level.Columns <= 0:
		return invalid("columns must be positive, got %d", c.Level.Columns)
	case c.Level.Rows <= 0:
		return invalid("rows must be positive, got %d", c.Level.Rows)
	case c.Rules.Lives < 1 || c.Rules.Lives > 3:
		return invalid("lives must be in 1..3, got %d", c.Rules.Lives)
	case c.Level.Stake < 0:
		return invalid("stake must not be negative, got %d", c.Level.Stake)
	case c.Rules.Penalty < 0:
		return invalid("penalty must not be negative, got %d", c.Rules.Penalty)
	case c.Timing.Reveal <= 0:
		return invalid("reveal time must be positive, got %v", c.Timing.Reveal)
	case c.Timing.Leg <= 0:
		return invalid("leg time must be positive, got %v", c.Timing.Leg)
	case c.Timing.Fade < 0:
		return invalid("fade time must not be negative, got %v", c.Timing.Fade)
	case !(c.Rules.MistakeSpeedFactor > 1):
		return invalid("mistake speed factor must be greater than 1, got %v", c.Rules.MistakeSpeedFactor)
	case !core.Finite(c.ViewW) || !core.Finite(c.ViewH) || c.ViewW < 0 || c.ViewH < 0:
		return invalid("viewport must be finite and non-negative, got %vx%v", c.ViewW, c.ViewH)
	case c.Layout.WidthFraction <= 0 || c.Layout.WidthFraction > 1 ||
		c.Layout.HeightFraction <= 0 || c.Layout.HeightFraction > 1:
		return invalid("layout fractions must be in (0, 1]")
	}
	return nil
}
