package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if got, want := embeddedCatchConfig(), DefaultCatchConfig(); got != want {
		t.Errorf("embedded defaults differ from hardcoded:\n got %+v\nwant %+v", got, want)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultCatchConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CatchConfig)
	}{
		{"zero player width", func(c *CatchConfig) { c.Player.Width = 0 }},
		{"negative jitter", func(c *CatchConfig) { c.Items.SpeedJitter = -1 }},
		{"zero spawn interval", func(c *CatchConfig) { c.Items.SpawnIntervalMS = 0 }},
		{"height ratio above one", func(c *CatchConfig) { c.Surface.HeightRatio = 1.5 }},
		{"unknown render mode", func(c *CatchConfig) { c.Render.Mode = "ascii" }},
		{"ramp without interval", func(c *CatchConfig) { c.Difficulty.IncreaseEvery = 0 }},
		{"negative ramp increment", func(c *CatchConfig) { c.Difficulty.Increment = -1 }},
		{"repeat delay below hold timeout", func(c *CatchConfig) { c.Input.RepeatDelayMS = 100 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCatchConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCatchCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catch.yaml")
	data := []byte("player:\n  speed: 12\ndifficulty:\n  enabled: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatch(path)
	if err != nil {
		t.Fatalf("LoadCatch: %v", err)
	}
	if cfg.Player.Speed != 12 {
		t.Errorf("Player.Speed = %v, expected 12", cfg.Player.Speed)
	}
	if cfg.Difficulty.Enabled {
		t.Error("difficulty should be disabled by the override")
	}
	if cfg.Player.Width != 60 || cfg.Items.Size != 30 {
		t.Errorf("unset fields should keep defaults, got player %+v items %+v", cfg.Player, cfg.Items)
	}
}

func TestLoadCatchMissingCustomPath(t *testing.T) {
	_, err := LoadCatch(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(insane) = %v, expected ErrInvalidConfig", err)
	}
}

func TestApplyCatchPreset(t *testing.T) {
	cfg := DefaultCatchConfig()
	ApplyCatchPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable the ramp")
	}

	cfg = DefaultCatchConfig()
	ApplyCatchPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.BaseItemSpeed != 6 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}
}

func TestValidateAcceptsDisabledRampWithNegativeIncrement(t *testing.T) {
	cfg := DefaultCatchConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.Increment = -1
	if err := cfg.Validate(); err != nil {
		t.Errorf("an unused increment should not fail validation: %v", err)
	}
}

func TestLoadCatchRenderMode(t *testing.T) {
	cfg, err := LoadCatch(writeConfig(t, "render:\n  mode: flat\n"))
	if err != nil {
		t.Fatalf("LoadCatch: %v", err)
	}
	if cfg.Render.Mode != RenderFlat {
		t.Errorf("Render.Mode = %q, expected flat", cfg.Render.Mode)
	}

	cfg, err = LoadCatch(writeConfig(t, "player:\n  speed: 9\n"))
	if err != nil {
		t.Fatalf("LoadCatch: %v", err)
	}
	if cfg.Render.Mode != RenderVariant {
		t.Errorf("Render.Mode = %q, expected empty when unset", cfg.Render.Mode)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catch.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
