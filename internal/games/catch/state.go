// Package catch implements a falling-item catching game.
// The player slides a paddle along the bottom of the surface to catch items
// dropping from the top; every missed item costs a life.
package catch

import (
	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// StartingLives is the number of lives a session starts with.
const StartingLives = 3

// Phase is the simulation state machine position.
type Phase int

const (
	PhaseRunning  Phase = iota // Simulation and spawner active
	PhasePaused                // Frozen; rendering continues with an overlay
	PhaseGameOver              // Terminal for the session
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Surface is the playfield size in simulation units.
type Surface struct {
	Width  float64
	Height float64
}

// Player is the paddle controlled by the user.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Horizontal units per frame
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Item is a falling collectible.
type Item struct {
	X, Y  float64
	Size  float64
	Speed float64 // Fall units per frame
}

// Rect returns the item's bounding box.
func (it Item) Rect() core.RectF {
	return core.NewRectF(it.X, it.Y, it.Size, it.Size)
}

// State is everything a session owns. Only Step, Spawner.Spawn and
// TogglePause mutate it.
type State struct {
	Surface       Surface
	Player        Player
	Items         []Item
	Score         int
	Lives         int
	Phase         Phase
	BaseItemSpeed float64
	Tick          uint64 // Frames stepped while running
}

// NewState builds the opening state of a session: player centered near
// the bottom, no items, full lives.
func NewState(surface Surface, player config.CatchPlayer, baseItemSpeed float64) *State {
	return &State{
		Surface: surface,
		Player: Player{
			X:      surface.Width/2 - player.Width/2,
			Y:      surface.Height - player.BottomOffset,
			Width:  player.Width,
			Height: player.Height,
			Speed:  player.Speed,
		},
		Items:         make([]Item, 0, 16),
		Lives:         StartingLives,
		Phase:         PhaseRunning,
		BaseItemSpeed: baseItemSpeed,
	}
}

// TogglePause flips Running and Paused. It returns false in GameOver,
// where the state is frozen.
func (s *State) TogglePause() bool {
	switch s.Phase {
	case PhaseRunning:
		s.Phase = PhasePaused
	case PhasePaused:
		s.Phase = PhaseRunning
	default:
		return false
	}
	return true
}
