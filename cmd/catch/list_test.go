package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/registry"
)

func TestVariantTableShowsPolicy(t *testing.T) {
	out := variantTable(registry.List()).Render()

	lines := strings.Split(out, "\n")
	row := func(id string) string {
		for _, l := range lines {
			if strings.Contains(l, " "+id+" ") {
				return l
			}
		}
		t.Fatalf("no row for %s in\n%s", id, out)
		return ""
	}

	sprite := row(catch.VariantSprite.ID)
	if !strings.Contains(sprite, "sprite") || !strings.Contains(sprite, "on") {
		t.Errorf("sprite variant row = %q", sprite)
	}
	flat := row(catch.VariantFlat.ID)
	if !strings.Contains(flat, "flat") || !strings.Contains(flat, "off") {
		t.Errorf("flat variant row = %q", flat)
	}
	if !strings.Contains(out, "RENDER") || !strings.Contains(out, "RAMP") {
		t.Errorf("missing policy headers:\n%s", out)
	}
}

func TestVariantTableUnknownVariant(t *testing.T) {
	out := variantTable([]registry.VariantInfo{{ID: "mystery", Title: "Mystery"}}).Render()
	if !strings.Contains(out, "mystery") || !strings.Contains(out, "?") {
		t.Errorf("unknown variant row:\n%s", out)
	}
}
