package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/yuzu-spa/internal/core"
)

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionStart, false},
		{"r", runes("r"), core.ActionRestart, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores, false},
		{"q", runes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"x", runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestKeyMapperMoveKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, "left"},
		{tea.KeyMsg{Type: tea.KeyRight}, "right"},
		{runes("a"), "a"},
		{runes("D"), "D"},
		{runes("w"), ""},
		{tea.KeyMsg{Type: tea.KeyUp}, ""},
	}

	for _, tt := range tests {
		if got := km.MoveKey(tt.msg); got != tt.want {
			t.Errorf("MoveKey(%q) = %q, expected %q", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyHold(t *testing.T) {
	h := NewKeyHold(100 * time.Millisecond)
	base := time.Unix(0, 0)

	h.Press("a", base)
	h.Press("d", base.Add(80*time.Millisecond))

	if got := h.Expired(base.Add(50 * time.Millisecond)); len(got) != 0 {
		t.Errorf("nothing should expire yet, got %v", got)
	}

	got := h.Expired(base.Add(120 * time.Millisecond))
	if len(got) != 1 || got[0] != "a" {
		t.Errorf("Expired() = %v, expected [a]", got)
	}

	// Repeats keep a key alive.
	h.Press("d", base.Add(150*time.Millisecond))
	if got := h.Expired(base.Add(200 * time.Millisecond)); len(got) != 0 {
		t.Errorf("repeated key expired: %v", got)
	}

	h.Reset()
	if got := h.Expired(base.Add(time.Hour)); len(got) != 0 {
		t.Errorf("Reset() left keys: %v", got)
	}
}

func TestKeyHoldDefaultWindow(t *testing.T) {
	h := NewKeyHold(0)
	if h.window != DefaultHoldWindow {
		t.Errorf("window = %v, expected %v", h.window, DefaultHoldWindow)
	}
}
