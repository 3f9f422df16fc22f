package catch

import (
	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// Step advances s by one frame and returns what happened. It does nothing
// unless the state is running.
//
// Items are advanced and resolved in a single retain pass: an item that
// overlaps the player is caught, otherwise an item below the surface is
// missed; either way it is dropped from the pass and never looked at again.
func Step(s *State, in core.InputFrame, difficulty *config.DifficultyManager) []core.Event {
	if s.Phase != PhaseRunning {
		return nil
	}
	s.Tick++

	movePlayer(s, in)

	var events []core.Event
	player := s.Player.Rect()

	kept := s.Items[:0]
	for _, it := range s.Items {
		it.Y += it.Speed

		if player.Intersects(it.Rect()) {
			s.Score++
			events = append(events, core.Event{Type: core.EventCatch, Score: s.Score, Lives: s.Lives})
			if difficulty != nil {
				if speed, raised := difficulty.OnCatch(s.BaseItemSpeed, s.Score); raised {
					s.BaseItemSpeed = speed
					events = append(events, core.Event{Type: core.EventSpeedUp, Score: s.Score, Lives: s.Lives})
				}
			}
			continue
		}

		if it.Y > s.Surface.Height {
			if s.Lives > 0 {
				s.Lives--
			}
			events = append(events, core.Event{Type: core.EventMiss, Score: s.Score, Lives: s.Lives})
			continue
		}

		kept = append(kept, it)
	}
	s.Items = kept

	if s.Lives <= 0 {
		s.Phase = PhaseGameOver
		events = append(events, core.Event{Type: core.EventGameOver, Score: s.Score, Lives: s.Lives})
	}

	return events
}

// movePlayer applies the held direction and keeps the player on the surface.
func movePlayer(s *State, in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		s.Player.X -= s.Player.Speed
	}
	if in.Has(core.ActionRight) {
		s.Player.X += s.Player.Speed
	}
	s.Player.X = core.ClampF(s.Player.X, 0, s.Surface.Width-s.Player.Width)
}
