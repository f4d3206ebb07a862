// Package capyspa implements Capy's Yuzu Spa, a falling-items catching game.
// The capybara slides along the bottom of the pool catching yuzu and cats
// while dodging rain clouds.
//
// All positions are in a fixed logical space (600x800 by default) and are
// projected onto the display by the frontends.
package capyspa

import "github.com/vovakirdan/yuzu-spa/internal/core"

// Category is the kind of a falling item.
type Category int

const (
	CategoryYuzu Category = iota // common reward
	CategoryCat                  // rare reward
	CategoryRain                 // hazard
)

// String returns the lowercase category name used on the wire.
func (c Category) String() string {
	switch c {
	case CategoryYuzu:
		return "yuzu"
	case CategoryCat:
		return "cat"
	case CategoryRain:
		return "rain"
	default:
		return "unknown"
	}
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// IsHazard reports whether catching the item costs a life.
func (c Category) IsHazard() bool {
	return c == CategoryRain
}

// Entity is a single falling item.
type Entity struct {
	ID            int64    `json:"id"`
	X             float64  `json:"x"`
	Y             float64  `json:"y"`
	Category      Category `json:"type"`
	Speed         float64  `json:"speed"`
	Rotation      float64  `json:"rotation"`
	RotationSpeed float64  `json:"-"`
}

// Rect returns the item's hitbox for a square of the given size.
func (e Entity) Rect(size float64) core.RectF {
	return core.NewRectF(e.X, e.Y, size, size)
}
