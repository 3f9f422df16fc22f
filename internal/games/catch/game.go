package catch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/registry"
)

// ErrSurfaceTooSmall is returned by Reset when the player does not fit.
var ErrSurfaceTooSmall = errors.New("surface too small")

// Variant describes one registered flavor of the game.
type Variant struct {
	ID     string
	Title  string
	Render config.RenderMode
	Ramp   bool // Whether the difficulty ramp may run
}

// Built-in variants.
var (
	VariantSprite = Variant{ID: "catch", Title: "Catch", Render: config.RenderSprite, Ramp: true}
	VariantFlat   = Variant{ID: "catch_classic", Title: "Catch Classic", Render: config.RenderFlat, Ramp: false}
)

// Variants returns the built-in variants.
func Variants() []Variant {
	return []Variant{VariantSprite, VariantFlat}
}

// LookupVariant returns the built-in variant registered under id.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants() {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

var (
	settingsMu   sync.RWMutex
	baseConfig   *config.CatchConfig
	renderForced config.RenderMode
)

// SetConfig sets the configuration used by games created afterwards.
// Without it, Reset loads the configuration from the default search path.
func SetConfig(cfg config.CatchConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	baseConfig = &cfg
}

// SetRenderMode forces a render policy over the variant's own. Empty clears it.
func SetRenderMode(mode config.RenderMode) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	renderForced = mode
}

// Game implements registry.Game on top of State, Step, Spawner and Renderer.
type Game struct {
	variant    Variant
	cfg        config.CatchConfig
	runtime    core.RuntimeConfig
	state      *State
	spawner    *Spawner
	renderer   *Renderer
	difficulty *config.DifficultyManager
	sprites    *SpriteSet
	hud        core.HUD
}

// New creates a game of the given variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{variant: v, hud: core.NopHUD{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// AttachHUD sets the collaborator that mirrors score, lives and pause.
func (g *Game) AttachHUD(h core.HUD) {
	if h == nil {
		h = core.NopHUD{}
	}
	g.hud = h
	if g.state != nil {
		g.pushHUD()
	}
}

// Reset starts a fresh session: empty item list, zero score, full lives,
// centered player and the base difficulty.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	cfg = g.applyVariant(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	surface := Surface{
		Width:  float64(runtime.ScreenW) * cfg.Surface.UnitsPerCol,
		Height: float64(runtime.ScreenH) * cfg.Surface.UnitsPerRow,
	}
	if surface.Width < cfg.Player.Width || surface.Width < cfg.Items.Size || surface.Height < cfg.Player.BottomOffset {
		return fmt.Errorf("%w: %dx%d cells", ErrSurfaceTooSmall, runtime.ScreenW, runtime.ScreenH)
	}

	g.cfg = cfg
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.difficulty.SetEnabled(cfg.Difficulty.Enabled && g.variant.Ramp)
	g.state = NewState(surface, cfg.Player, g.difficulty.BaseSpeed())
	g.spawner = NewSpawner(runtime.Seed, cfg.Items)

	if cfg.Render.Mode == config.RenderSprite && g.sprites == nil {
		g.sprites = LoadSpritesAsync(context.Background(), cfg.Render.PlayerSprite, cfg.Render.ItemSprite)
	}
	g.renderer = NewRenderer(cfg.Render.Mode, g.sprites, cfg.Surface)

	g.pushHUD()
	return nil
}

// resolveConfig returns the configuration set with SetConfig or loads one.
func resolveConfig() (config.CatchConfig, error) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()

	if baseConfig != nil {
		return *baseConfig, nil
	}
	return config.LoadCatch("")
}

// applyVariant resolves the render policy: SetRenderMode wins, then the
// config's render.mode, then the variant's own policy.
func (g *Game) applyVariant(cfg config.CatchConfig) config.CatchConfig {
	settingsMu.RLock()
	forced := renderForced
	settingsMu.RUnlock()

	switch {
	case forced != config.RenderVariant:
		cfg.Render.Mode = forced
	case cfg.Render.Mode == config.RenderVariant:
		cfg.Render.Mode = g.variant.Render
	}
	return cfg
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	prevScore, prevLives := g.state.Score, g.state.Lives

	events := Step(g.state, in, g.difficulty)

	if g.state.Score != prevScore {
		g.hud.SetScore(g.state.Score)
	}
	if g.state.Lives != prevLives {
		g.hud.SetLives(g.state.Lives)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Spawn creates one item if the game is running.
func (g *Game) Spawn() bool {
	return g.spawner.Spawn(g.state)
}

// TogglePause flips between running and paused.
func (g *Game) TogglePause() {
	if g.state.TogglePause() {
		g.hud.SetPaused(g.state.Phase == PhasePaused)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Render(dst, g.state)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Lives:    g.state.Lives,
		GameOver: g.state.Phase == PhaseGameOver,
		Paused:   g.state.Phase == PhasePaused,
	}
}

// Config returns the effective configuration of the current session.
func (g *Game) Config() config.CatchConfig {
	return g.cfg
}

// Sprites returns the sprite set, or nil for the flat policy.
func (g *Game) Sprites() *SpriteSet {
	return g.sprites
}

// RampEnabled reports whether the difficulty ramp runs in this session.
func (g *Game) RampEnabled() bool {
	return g.difficulty.IsEnabled()
}

// WaitAssets blocks until the sprites finish loading and returns the load
// error. It returns nil at once for the flat policy.
func (g *Game) WaitAssets(ctx context.Context) error {
	if g.sprites == nil {
		return nil
	}
	return g.sprites.Wait(ctx)
}

func (g *Game) pushHUD() {
	g.hud.SetScore(g.state.Score)
	g.hud.SetLives(g.state.Lives)
	g.hud.SetPaused(g.state.Phase == PhasePaused)
}

// Register the variants with the registry
func init() {
	registry.Register(VariantSprite.ID, func() registry.Game {
		return New(VariantSprite)
	})
	registry.Register(VariantFlat.ID, func() registry.Game {
		return New(VariantFlat)
	})
}
