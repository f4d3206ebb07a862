package tui

import "time"

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals only report presses, so holding a key is seen as a stream of
// repeats; the window has to outlast the gap between them.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyHold tracks when movement keys were last pressed.
type KeyHold struct {
	window  time.Duration
	pressed map[string]time.Time
}

// NewKeyHold creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewKeyHold(window time.Duration) *KeyHold {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyHold{window: window, pressed: make(map[string]time.Time)}
}

// Press records a press of key at now.
func (h *KeyHold) Press(key string, now time.Time) {
	h.pressed[key] = now
}

// Expired removes and returns keys not pressed within the window.
func (h *KeyHold) Expired(now time.Time) []string {
	var out []string
	for k, t := range h.pressed {
		if now.Sub(t) >= h.window {
			out = append(out, k)
			delete(h.pressed, k)
		}
	}
	return out
}

// Reset forgets all keys.
func (h *KeyHold) Reset() {
	clear(h.pressed)
}
