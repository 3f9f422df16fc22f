package catch

import "math"

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick          uint64
	PlayerX       float64
	Score         int
	Lives         int
	Phase         Phase
	BaseItemSpeed float64

	// Each item is 4 floats: X, Y, Size, Speed
	ItemCount int
	ItemData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Snapshot returns the state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	data := make([]float64, 0, len(s.Items)*4)
	for _, it := range s.Items {
		data = append(data, it.X, it.Y, it.Size, it.Speed)
	}

	return Snapshot{
		Tick:          s.Tick,
		PlayerX:       s.Player.X,
		Score:         s.Score,
		Lives:         s.Lives,
		Phase:         s.Phase,
		BaseItemSpeed: s.BaseItemSpeed,
		ItemCount:     len(s.Items),
		ItemData:      data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BaseItemSpeed)
	h = h*31 + uint64(snap.ItemCount) //#nosec G115 -- hash computation

	for _, v := range snap.ItemData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
