package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in characters
	ScreenH  int   // Surface height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  18,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventType identifies something notable that happened during a step.
type EventType int

const (
	EventCatch    EventType = iota // Item caught by the player
	EventMiss                      // Item fell past the bottom edge
	EventSpeedUp                   // Difficulty ramp raised the item speed
	EventGameOver                  // Lives reached zero
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventCatch:
		return "catch"
	case EventMiss:
		return "miss"
	case EventSpeedUp:
		return "speed_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a step. Score and Lives are the values right after the event.
type Event struct {
	Type  EventType
	Score int
	Lives int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given type occurred during the step.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// HUD receives score, lives and pause changes from a game.
// Implemented by the platform; games only push values into it.
type HUD interface {
	SetScore(score int)
	SetLives(lives int)
	SetPaused(paused bool)
}

// NopHUD discards all updates.
type NopHUD struct{}

func (NopHUD) SetScore(int)   {}
func (NopHUD) SetLives(int)   {}
func (NopHUD) SetPaused(bool) {}
