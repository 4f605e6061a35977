package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the default configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Simulation: SimulationConfig{
			RandomMode:   false,
			InitialSpeed: "normal",
			SpawnChance:  10,
			SpawnMargin:  15,
		},
		Display: DisplayConfig{
			FrameRate: 60,
			LiveGlyph: "●",
			DeadGlyph: "·",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
