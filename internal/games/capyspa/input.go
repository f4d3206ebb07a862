package capyspa

import (
	"github.com/vovakirdan/yuzu-spa/internal/config"
	"github.com/vovakirdan/yuzu-spa/internal/core"
)

// Key identifiers recognized for movement. Frontends pass raw key names;
// unknown keys are ignored.
var (
	leftKeys  = map[string]bool{"left": true, "ArrowLeft": true, "a": true, "A": true}
	rightKeys = map[string]bool{"right": true, "ArrowRight": true, "d": true, "D": true}
)

// IsMoveKey reports whether key moves the player.
func IsMoveKey(key string) bool {
	return leftKeys[key] || rightKeys[key]
}

// InputTracker turns held keys and pointer positions into the player x.
// Pointer moves write x immediately; held keys are integrated once per Step.
// Whichever wrote last wins.
type InputTracker struct {
	cfg  *config.GameConfig
	held map[string]bool
	x    float64
}

// NewInputTracker creates a tracker with the player centered.
func NewInputTracker(cfg *config.GameConfig) *InputTracker {
	t := &InputTracker{cfg: cfg, held: make(map[string]bool)}
	t.Center()
	return t
}

// Center moves the player to the middle of the pool. Held keys stay held.
func (t *InputTracker) Center() {
	t.x = t.cfg.MaxPlayerX() / 2
}

// ReleaseAll forgets every held key.
func (t *InputTracker) ReleaseAll() {
	clear(t.held)
}

// X returns the current player x.
func (t *InputTracker) X() float64 {
	return t.x
}

// KeyDown marks key as held.
func (t *InputTracker) KeyDown(key string) {
	if IsMoveKey(key) {
		t.held[key] = true
	}
}

// KeyUp releases key.
func (t *InputTracker) KeyUp(key string) {
	delete(t.held, key)
}

// Direction returns -1, 0 or +1 for the held keys. Opposite keys cancel.
func (t *InputTracker) Direction() int {
	dir := 0
	left, right := false, false
	for k := range t.held {
		if leftKeys[k] {
			left = true
		}
		if rightKeys[k] {
			right = true
		}
	}
	if left {
		dir--
	}
	if right {
		dir++
	}
	return dir
}

// Step applies one tick of held-key movement.
func (t *InputTracker) Step() {
	dir := t.Direction()
	if dir == 0 {
		return
	}
	t.x = core.ClampF(t.x+float64(dir)*t.cfg.Player.Speed, 0, t.cfg.MaxPlayerX())
}

// PointerMove centers the player under a pointer at displayX on a surface
// displayWidth wide. Non-positive widths are ignored.
func (t *InputTracker) PointerMove(displayX, displayWidth float64) {
	if displayWidth <= 0 {
		return
	}
	scale := t.cfg.World.Width / displayWidth
	t.x = core.ClampF(displayX*scale-t.cfg.Player.Width/2, 0, t.cfg.MaxPlayerX())
}
