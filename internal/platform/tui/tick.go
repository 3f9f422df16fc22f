// Package tui runs a catch session in the terminal with Bubble Tea.
// It owns the frame loop, the spawn timer, input mapping and the HUD.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// frameMsg advances one display frame of session gen.
type frameMsg struct {
	gen  uint64
	time time.Time
}

// spawnMsg asks session gen for one new item.
type spawnMsg struct {
	gen uint64
}

// releaseMsg ends a held direction unless the key repeated since seq was issued.
type releaseMsg struct {
	gen uint64
	key core.Key
	seq uint64
}

// assetsMsg reports the end of asset loading for session gen.
type assetsMsg struct {
	gen uint64
	err error
}

// frameCmd returns a command that sends the next frame message at the given rate.
func frameCmd(gen uint64, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, time: t}
	})
}

// spawnCmd returns a command that fires the spawn timer once.
func spawnCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return spawnMsg{gen: gen}
	})
}

func releaseCmd(gen uint64, k core.Key, seq uint64, timeout time.Duration) tea.Cmd {
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return releaseMsg{gen: gen, key: k, seq: seq}
	})
}
