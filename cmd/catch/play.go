package main

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRender     string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. The variant defaults to "catch".

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  P/Esc        - Pause
  Mouse        - Hold the ◀ / ▶ zones to move, click ⏸ to pause
  Enter/R      - Play again (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower items and a faster paddle
  normal - Default tuning
  hard   - Faster items, speed-up every 10 catches
  fixed  - No speed-up

Examples:
  catch play
  catch play catch_classic
  catch play --difficulty hard
  catch play --render flat
  catch play --config ./my-catch.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagRender, "render", "", "Render policy override: sprite, flat")
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant := catch.VariantSprite.ID
	if len(args) == 1 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'catch list' to see available variants", variant)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadCatch(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyCatchPreset(&cfg, preset)
	}
	switch mode := config.RenderMode(flagRender); mode {
	case "":
	case config.RenderFlat, config.RenderSprite:
		catch.SetRenderMode(mode)
	default:
		return fmt.Errorf("%w: unknown render mode %q", config.ErrInvalidConfig, flagRender)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// Sprite files load in the background once the game runs; a bad path
	// fails here instead of silently drawing placeholders.
	if err := catch.CheckSprites(cfg.Render); err != nil {
		return err
	}
	catch.SetConfig(cfg)
	logger.Debug("config loaded", "source", configSource(), "render", cmp.Or(string(cfg.Render.Mode), "variant"), "ramp", cfg.Difficulty.Enabled)

	// The surface takes the full width and a fraction of the height
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  tui.SurfaceRows(height, cfg.Surface.HeightRatio),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting", "variant", variant, "surface", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH), "fps", runtime.TickRate)

	return tui.Run(tui.Options{
		Variant:       variant,
		Runtime:       runtime,
		SpawnInterval: cfg.Items.SpawnInterval(),
		RepeatDelay:   cfg.Input.RepeatDelay(),
		HoldTimeout:   cfg.Input.HoldTimeout(),
		Logger:        logger,
	})
}

func configSource() string {
	if flagConfig != "" {
		return flagConfig
	}
	return "default search path"
}
