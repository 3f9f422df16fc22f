// Package registry maps variant ids to game factories.
// Variants register themselves in init() functions, so the platform can
// create them by id without importing the game packages.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Game is the interface the platform drives once per frame.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "catch").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state for a fresh session.
	// The RuntimeConfig provides surface dimensions and RNG seed.
	// Returns an error if the game cannot run on the given surface.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one frame using the held input.
	Step(in core.InputFrame) core.StepResult

	// Spawn is called by the platform's spawn timer. Returns true if an
	// item was created.
	Spawn() bool

	// TogglePause flips between running and paused.
	TogglePause()

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// AttachHUD sets the collaborator notified of score, lives and pause changes.
	AttachHUD(h core.HUD)
}

// ErrUnknownVariant is returned by Create for an id nobody registered.
var ErrUnknownVariant = errors.New("unknown variant")

// VariantInfo describes a registered variant.
type VariantInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, not yet reset game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory. Called from init().
// Panics if the id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	g := f()
	titles[id] = g.Title()
}

// List returns all registered variants sorted by id.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(factories))
	for id := range factories {
		result = append(result, VariantInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the variant registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, id)
	}

	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
