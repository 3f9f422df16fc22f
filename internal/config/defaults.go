package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the hardcoded catch configuration.
// It mirrors defaults/catch.yaml and is used when the embedded file cannot be parsed.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Surface: CatchSurface{
			UnitsPerCol: 10,
			UnitsPerRow: 20,
			HeightRatio: 0.75,
		},
		Player: CatchPlayer{
			Width:        60,
			Height:       60,
			Speed:        7,
			BottomOffset: 80,
		},
		Items: CatchItems{
			Size:            30,
			SpeedJitter:     2,
			SpawnIntervalMS: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			BaseItemSpeed: 4,
			IncreaseEvery: 20,
			Increment:     1,
		},
		Render: RenderConfig{
			Mode: RenderVariant,
		},
		Input: InputConfig{
			RepeatDelayMS: 600,
			HoldTimeoutMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
