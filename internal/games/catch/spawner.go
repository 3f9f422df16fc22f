package catch

import (
	"math/rand"

	"github.com/vovakirdan/tui-catch/internal/config"
)

// Spawner creates items on request from the platform's spawn timer.
type Spawner struct {
	rng    *rand.Rand
	size   float64
	jitter float64
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(seed int64, items config.CatchItems) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		size:   items.Size,
		jitter: items.SpeedJitter,
	}
}

// Spawn adds one item just above the visible area at a random column.
// Nothing is created unless the state is running.
func (sp *Spawner) Spawn(s *State) bool {
	if s.Phase != PhaseRunning {
		return false
	}

	maxX := s.Surface.Width - sp.size
	if maxX < 0 {
		maxX = 0
	}

	s.Items = append(s.Items, Item{
		X:     sp.rng.Float64() * maxX,
		Y:     -sp.size,
		Size:  sp.size,
		Speed: s.BaseItemSpeed + sp.rng.Float64()*sp.jitter,
	})
	return true
}
