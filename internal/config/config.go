// Package config provides YAML-based configuration loading for the viewer.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-life/internal/life"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LifeConfig contains all configuration for the viewer.
type LifeConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
}

// SimulationConfig defines simulation parameters.
type SimulationConfig struct {
	RandomMode   bool   `yaml:"random_mode"`
	InitialSpeed string `yaml:"initial_speed"` // "slow", "normal" or "fast"
	SpawnChance  int    `yaml:"spawn_chance"`  // 1-in-N per step
	SpawnMargin  int    `yaml:"spawn_margin"`
}

// DisplayConfig defines rendering parameters.
type DisplayConfig struct {
	FrameRate int    `yaml:"frame_rate"`
	LiveGlyph string `yaml:"live_glyph"`
	DeadGlyph string `yaml:"dead_glyph"`
}

// Validate checks that every field holds a usable value.
func (c LifeConfig) Validate() error {
	if _, err := life.ParseTickRate(c.Simulation.InitialSpeed); err != nil {
		return fmt.Errorf("%w: initial_speed %q", ErrInvalid, c.Simulation.InitialSpeed)
	}
	if c.Simulation.SpawnChance <= 0 {
		return fmt.Errorf("%w: spawn_chance must be positive, got %d", ErrInvalid, c.Simulation.SpawnChance)
	}
	if c.Simulation.SpawnMargin < 0 {
		return fmt.Errorf("%w: spawn_margin must not be negative, got %d", ErrInvalid, c.Simulation.SpawnMargin)
	}
	if c.Display.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalid, c.Display.FrameRate)
	}
	if utf8.RuneCountInString(c.Display.LiveGlyph) != 1 {
		return fmt.Errorf("%w: live_glyph must be a single character", ErrInvalid)
	}
	if utf8.RuneCountInString(c.Display.DeadGlyph) != 1 {
		return fmt.Errorf("%w: dead_glyph must be a single character", ErrInvalid)
	}
	return nil
}

// Options converts the simulation section into life.Options.
// The config must be valid.
func (c LifeConfig) Options(seed int64) life.Options {
	rate, _ := life.ParseTickRate(c.Simulation.InitialSpeed)
	return life.Options{
		RandomMode:  c.Simulation.RandomMode,
		TickRate:    rate,
		SpawnChance: c.Simulation.SpawnChance,
		SpawnMargin: c.Simulation.SpawnMargin,
		Seed:        seed,
	}
}

// LiveRune returns the glyph for live cells.
func (c LifeConfig) LiveRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Display.LiveGlyph)
	return r
}

// DeadRune returns the glyph for dead cells.
func (c LifeConfig) DeadRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Display.DeadGlyph)
	return r
}
