package capyspa

import "github.com/vovakirdan/yuzu-spa/internal/core"

// Hit records an item consumed by the player this tick.
type Hit struct {
	Entity Entity
	Points int
	Lives  int
}

// Collide removes every item overlapping the player and returns the
// remaining items plus what was caught. Touching edges do not count.
func Collide(player core.RectF, items []Entity, itemSize float64, scoring Scoring) ([]Entity, []Hit) {
	var hits []Hit
	kept := items[:0]
	for _, e := range items {
		if !player.Intersects(e.Rect(itemSize)) {
			kept = append(kept, e)
			continue
		}
		hits = append(hits, scoring.effect(e))
	}
	return kept, hits
}

// Scoring holds the per-category effects.
type Scoring struct {
	Yuzu int
	Cat  int
}

func (s Scoring) effect(e Entity) Hit {
	if e.Category.IsHazard() {
		return Hit{Entity: e, Lives: -1}
	}
	switch e.Category {
	case CategoryYuzu:
		return Hit{Entity: e, Points: s.Yuzu}
	case CategoryCat:
		return Hit{Entity: e, Points: s.Cat}
	}
	return Hit{Entity: e}
}
