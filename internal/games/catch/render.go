package catch

import (
	"math"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// Visual characters for the flat render policy
const (
	PlayerChar      = '█'
	ItemChar        = '▓'
	PlaceholderChar = '·'
	PausedText      = "PAUSA"
)

// Renderer draws a State onto a Screen. It never mutates the state.
type Renderer struct {
	mode        config.RenderMode
	sprites     *SpriteSet
	unitsPerCol float64
	unitsPerRow float64
}

// NewRenderer creates a renderer for the given policy. sprites may be nil
// for the flat policy.
func NewRenderer(mode config.RenderMode, sprites *SpriteSet, surface config.CatchSurface) *Renderer {
	return &Renderer{
		mode:        mode,
		sprites:     sprites,
		unitsPerCol: surface.UnitsPerCol,
		unitsPerRow: surface.UnitsPerRow,
	}
}

// Render clears dst and draws the player, the items and, when paused, a
// translucent overlay with the pause caption on top of the frame.
func (r *Renderer) Render(dst *core.Screen, s *State) {
	dst.Clear()

	r.drawEntity(dst, s.Player.Rect(), r.playerSprite(), PlayerChar, core.ColorCyan)
	for _, it := range s.Items {
		r.drawEntity(dst, it.Rect(), r.itemSprite(), ItemChar, core.ColorYellow)
	}

	if s.Phase == PhasePaused {
		dst.Shade()
		dst.DrawTextCentered(dst.Height()/2, PausedText, core.ColorBrightWhite)
	}
}

func (r *Renderer) playerSprite() *Sprite {
	if r.sprites == nil {
		return nil
	}
	return r.sprites.Player()
}

func (r *Renderer) itemSprite() *Sprite {
	if r.sprites == nil {
		return nil
	}
	return r.sprites.Item()
}

// drawEntity draws one box with the active policy. In sprite mode a sprite
// that has not finished loading is drawn as a dotted placeholder.
func (r *Renderer) drawEntity(dst *core.Screen, box core.RectF, sprite *Sprite, flat rune, color core.Color) {
	cells := r.CellRect(box)

	if r.mode != config.RenderSprite {
		dst.DrawRect(cells, flat, color)
		return
	}

	if sprite == nil {
		dst.DrawRect(cells, PlaceholderChar, core.ColorGray)
		return
	}

	for cy := 0; cy < cells.H; cy++ {
		for cx := 0; cx < cells.W; cx++ {
			glyph := sprite.At(float64(cx)/float64(cells.W), float64(cy)/float64(cells.H))
			if glyph == ' ' {
				continue
			}
			dst.SetColored(cells.X+cx, cells.Y+cy, glyph, sprite.Color)
		}
	}
}

// CellRect converts a box in simulation units to the cells it covers.
// Every box covers at least one cell.
func (r *Renderer) CellRect(box core.RectF) core.Rect {
	x0 := int(math.Floor(box.X / r.unitsPerCol))
	y0 := int(math.Floor(box.Y / r.unitsPerRow))
	x1 := int(math.Ceil(box.Right() / r.unitsPerCol))
	y1 := int(math.Ceil(box.Bottom() / r.unitsPerRow))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}
