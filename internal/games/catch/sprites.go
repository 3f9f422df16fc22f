package catch

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

//go:embed sprites/*.yaml
var builtinSprites embed.FS

// ErrEmptySprite is returned for sprite files without any rows.
var ErrEmptySprite = errors.New("sprite has no rows")

// Sprite is a block of glyph art stretched over an entity's cells.
// Spaces are transparent.
type Sprite struct {
	Name  string
	Color core.Color
	Rows  [][]rune
	W, H  int
}

// At returns the glyph covering the relative position (fx, fy) in [0, 1).
func (s *Sprite) At(fx, fy float64) rune {
	col := core.Clamp(int(fx*float64(s.W)), 0, s.W-1)
	row := core.Clamp(int(fy*float64(s.H)), 0, s.H-1)
	line := s.Rows[row]
	if col >= len(line) {
		return ' '
	}
	return line[col]
}

// spriteFile is the YAML layout of a sprite.
type spriteFile struct {
	Name  string   `yaml:"name"`
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// ParseSprite decodes a YAML sprite.
func ParseSprite(data []byte) (*Sprite, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(f.Rows) == 0 {
		return nil, ErrEmptySprite
	}

	color, err := core.ParseColor(f.Color)
	if err != nil {
		return nil, fmt.Errorf("sprite %q: %w", f.Name, err)
	}

	s := &Sprite{Name: f.Name, Color: color, H: len(f.Rows)}
	for _, line := range f.Rows {
		runes := []rune(line)
		s.Rows = append(s.Rows, runes)
		s.W = core.Max(s.W, len(runes))
	}
	if s.W == 0 {
		return nil, ErrEmptySprite
	}
	return s, nil
}

// SpriteSet holds the player and item sprites. They load in the background;
// until a sprite is ready its getter returns nil.
type SpriteSet struct {
	player atomic.Pointer[Sprite]
	item   atomic.Pointer[Sprite]
	done   chan struct{}
	err    error
}

// LoadSpritesAsync starts loading both sprites and returns immediately.
// Empty paths select the built-in sprites.
func LoadSpritesAsync(ctx context.Context, playerPath, itemPath string) *SpriteSet {
	set := &SpriteSet{done: make(chan struct{})}

	go func() {
		defer close(set.done)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			s, err := loadSprite(gctx, playerPath, "sprites/player.yaml")
			if err != nil {
				return fmt.Errorf("player sprite: %w", err)
			}
			set.player.Store(s)
			return nil
		})
		g.Go(func() error {
			s, err := loadSprite(gctx, itemPath, "sprites/item.yaml")
			if err != nil {
				return fmt.Errorf("item sprite: %w", err)
			}
			set.item.Store(s)
			return nil
		})
		set.err = g.Wait()
	}()

	return set
}

// CheckSprites loads every custom sprite path in render synchronously so a
// bad path fails at startup. Built-in sprites are not checked.
func CheckSprites(render config.RenderConfig) error {
	for _, f := range []struct{ name, path string }{
		{"player", render.PlayerSprite},
		{"item", render.ItemSprite},
	} {
		if f.path == "" {
			continue
		}
		if _, err := loadSprite(context.Background(), f.path, ""); err != nil {
			return fmt.Errorf("%s sprite %s: %w", f.name, f.path, err)
		}
	}
	return nil
}

// loadSprite reads a sprite from path, or from the embedded fallback when path is empty.
func loadSprite(ctx context.Context, path, builtin string) (*Sprite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = builtinSprites.ReadFile(builtin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return ParseSprite(data)
}

// Player returns the player sprite, or nil if it is not loaded.
func (s *SpriteSet) Player() *Sprite {
	return s.player.Load()
}

// Item returns the item sprite, or nil if it is not loaded.
func (s *SpriteSet) Item() *Sprite {
	return s.item.Load()
}

// Wait blocks until loading finishes or ctx is done and returns the load error.
func (s *SpriteSet) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
