package config

// DifficultyManager applies the stepped speed ramp: every IncreaseEvery
// points the base item speed grows by Increment.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.IncreaseEvery > 0
}

// BaseSpeed returns the item speed a fresh session starts with.
func (d *DifficultyManager) BaseSpeed() float64 {
	return d.cfg.BaseItemSpeed
}

// OnCatch returns the base item speed after a catch that brought the
// score to score. Called once per catch; since a catch raises the score
// by exactly one, each multiple is seen once.
func (d *DifficultyManager) OnCatch(current float64, score int) (speed float64, raised bool) {
	if !d.IsEnabled() || score <= 0 || score%d.cfg.IncreaseEvery != 0 {
		return current, false
	}
	return current + d.cfg.Increment, true
}
