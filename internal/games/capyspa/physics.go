package capyspa

// Advance moves every item down by its speed and spins it, then drops the
// ones that reached the bottom of the world. The slice is filtered in place.
func Advance(items []Entity, height float64) []Entity {
	kept := items[:0]
	for _, e := range items {
		e.Y += e.Speed
		e.Rotation += e.RotationSpeed
		if e.Y >= height {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
