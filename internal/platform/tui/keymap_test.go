package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/core"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"a", keyMsg("a"), core.KeyLeft},
		{"h", keyMsg("h"), core.KeyLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"d", keyMsg("d"), core.KeyRight},
		{"l", keyMsg("l"), core.KeyRight},
		{"p", keyMsg("p"), core.KeyPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyPause},
		{"x", keyMsg("x"), core.KeyNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestOpposite(t *testing.T) {
	if opposite(core.KeyLeft) != core.KeyRight || opposite(core.KeyRight) != core.KeyLeft {
		t.Error("left and right should be opposites")
	}
	if opposite(core.KeyPause) != core.KeyNone {
		t.Error("pause has no opposite")
	}
}

func TestHelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 6 {
		t.Errorf("full help lists %d bindings, want 6", n)
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("short help should not be empty")
	}
}
