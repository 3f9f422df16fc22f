// Package config provides YAML-based game configuration loading and
// difficulty management for the catch game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// CatchConfig contains all configuration for the catch game.
type CatchConfig struct {
	Surface    CatchSurface     `yaml:"surface"`
	Player     CatchPlayer      `yaml:"player"`
	Items      CatchItems       `yaml:"items"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Render     RenderConfig     `yaml:"render"`
	Input      InputConfig      `yaml:"input"`
}

// CatchSurface defines how the drawing surface maps onto the terminal.
type CatchSurface struct {
	UnitsPerCol float64 `yaml:"units_per_col"` // Simulation units per terminal column
	UnitsPerRow float64 `yaml:"units_per_row"` // Simulation units per terminal row
	HeightRatio float64 `yaml:"height_ratio"`  // Fraction of the terminal height used by the surface
}

// CatchPlayer defines player parameters.
type CatchPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per frame
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the player's top edge to the surface bottom
}

// CatchItems defines falling item parameters.
type CatchItems struct {
	Size            float64 `yaml:"size"`
	SpeedJitter     float64 `yaml:"speed_jitter"`      // Random extra fall speed in [0, jitter)
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"` // Wall-clock spawn period
}

// SpawnInterval returns the spawn period as a duration.
func (c CatchItems) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMS) * time.Millisecond
}

// DifficultyConfig defines the stepped speed ramp.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	BaseItemSpeed float64 `yaml:"base_item_speed"` // Item fall speed at session start
	IncreaseEvery int     `yaml:"increase_every"`  // Score interval between speed-ups
	Increment     float64 `yaml:"increment"`       // Speed added per speed-up
}

// RenderMode selects how the player and items are drawn.
type RenderMode string

const (
	RenderVariant RenderMode = ""       // The variant picks the policy
	RenderFlat    RenderMode = "flat"   // Solid colored blocks
	RenderSprite  RenderMode = "sprite" // Glyph art loaded from sprite files
)

// Valid reports whether m is a known policy or empty.
func (m RenderMode) Valid() bool {
	switch m {
	case RenderVariant, RenderFlat, RenderSprite:
		return true
	}
	return false
}

// RenderConfig selects the render policy and sprite sources.
type RenderConfig struct {
	Mode         RenderMode `yaml:"mode"`          // Empty keeps the variant's policy
	PlayerSprite string     `yaml:"player_sprite"` // Sprite file path, empty for the built-in sprite
	ItemSprite   string     `yaml:"item_sprite"`
}

// InputConfig tunes how terminal key events become held directions.
type InputConfig struct {
	RepeatDelayMS int `yaml:"repeat_delay_ms"` // Release timeout after the first press, above the terminal's auto-repeat delay
	HoldTimeoutMS int `yaml:"hold_timeout_ms"` // Release timeout once the key auto-repeats
}

// RepeatDelay returns the first-press release timeout as a duration.
func (c InputConfig) RepeatDelay() time.Duration {
	return time.Duration(c.RepeatDelayMS) * time.Millisecond
}

// HoldTimeout returns the key hold timeout as a duration.
func (c InputConfig) HoldTimeout() time.Duration {
	return time.Duration(c.HoldTimeoutMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c CatchConfig) Validate() error {
	switch {
	case c.Surface.UnitsPerCol <= 0 || c.Surface.UnitsPerRow <= 0:
		return fmt.Errorf("%w: surface units per cell must be positive", ErrInvalidConfig)
	case c.Surface.HeightRatio <= 0 || c.Surface.HeightRatio > 1:
		return fmt.Errorf("%w: surface height_ratio must be in (0, 1], got %v", ErrInvalidConfig, c.Surface.HeightRatio)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive", ErrInvalidConfig)
	case c.Items.Size <= 0:
		return fmt.Errorf("%w: item size must be positive", ErrInvalidConfig)
	case c.Items.SpeedJitter < 0:
		return fmt.Errorf("%w: item speed_jitter must not be negative", ErrInvalidConfig)
	case c.Items.SpawnIntervalMS <= 0:
		return fmt.Errorf("%w: spawn_interval_ms must be positive", ErrInvalidConfig)
	case c.Difficulty.BaseItemSpeed <= 0:
		return fmt.Errorf("%w: base_item_speed must be positive", ErrInvalidConfig)
	case c.Difficulty.Enabled && c.Difficulty.IncreaseEvery <= 0:
		return fmt.Errorf("%w: increase_every must be positive when difficulty is enabled", ErrInvalidConfig)
	case c.Difficulty.Enabled && c.Difficulty.Increment < 0:
		return fmt.Errorf("%w: increment must not be negative when difficulty is enabled", ErrInvalidConfig)
	case !c.Render.Mode.Valid():
		return fmt.Errorf("%w: unknown render mode %q", ErrInvalidConfig, c.Render.Mode)
	case c.Input.HoldTimeoutMS <= 0:
		return fmt.Errorf("%w: hold_timeout_ms must be positive", ErrInvalidConfig)
	case c.Input.RepeatDelayMS < c.Input.HoldTimeoutMS:
		return fmt.Errorf("%w: repeat_delay_ms must be at least hold_timeout_ms", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
}

// ApplyCatchPreset modifies the config based on a difficulty preset.
func ApplyCatchPreset(cfg *CatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseItemSpeed = 3
		cfg.Player.Speed = 8
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseItemSpeed = 4
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseItemSpeed = 6
		cfg.Difficulty.IncreaseEvery = 10
	}
}
