package tui

import (
	"time"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/registry"
)

// Session is one playthrough from reset to game over. Timer messages carry
// the session id and are dropped once the session is stopped.
type Session struct {
	id      uint64
	game    registry.Game
	input   core.InputState
	started time.Time
	stopped bool

	holdSeq  map[core.Key]uint64 // Latest key-down per direction
	touching core.Zone           // Zone under the pressed mouse button
}

// newSession resets game and wraps it in a session with the given id.
func newSession(id uint64, game registry.Game, cfg core.RuntimeConfig) (*Session, error) {
	if err := game.Reset(cfg); err != nil {
		return nil, err
	}
	return &Session{
		id:      id,
		game:    game,
		started: time.Now(),
		holdSeq: make(map[core.Key]uint64),
	}, nil
}

// ID returns the session generation.
func (s *Session) ID() uint64 {
	return s.id
}

// Owns reports whether a timer message of generation gen belongs to this live session.
func (s *Session) Owns(gen uint64) bool {
	return !s.stopped && s.id == gen
}

// Stop tears the session down. Pending frame, spawn and release messages
// become stale and are not rescheduled.
func (s *Session) Stop() {
	s.stopped = true
	s.input.Release()
	s.touching = core.ZoneNone
}

// Stopped reports whether Stop was called.
func (s *Session) Stopped() bool {
	return s.stopped
}

// Elapsed returns how long the session has been running.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.started)
}

// hold marks k as pressed and returns the sequence number for its release timer.
func (s *Session) hold(k core.Key) uint64 {
	s.holdSeq[k]++
	return s.holdSeq[k]
}

// expire releases k if no newer key-down arrived since seq.
func (s *Session) expire(k core.Key, seq uint64) bool {
	if s.holdSeq[k] != seq {
		return false
	}
	s.input.KeyUp(k)
	return true
}
