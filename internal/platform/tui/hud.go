package tui

// HUD mirrors the values a game pushes through core.HUD.
type HUD struct {
	Score  int
	Lives  int
	Paused bool
}

// SetScore implements core.HUD.
func (h *HUD) SetScore(v int) { h.Score = v }

// SetLives implements core.HUD.
func (h *HUD) SetLives(v int) { h.Lives = v }

// SetPaused implements core.HUD.
func (h *HUD) SetPaused(v bool) { h.Paused = v }
