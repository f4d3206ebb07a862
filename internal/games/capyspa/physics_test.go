package capyspa

import "testing"

func TestAdvanceFallsAndSpins(t *testing.T) {
	items := []Entity{
		{ID: 1, Y: -48, Speed: 4, Rotation: 359, RotationSpeed: 2},
		{ID: 2, Y: 100, Speed: 3.5, RotationSpeed: -1},
	}

	got := Advance(items, 800)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].Y != -44 || got[1].Y != 103.5 {
		t.Errorf("Y = %v, %v", got[0].Y, got[1].Y)
	}
	// Rotation is not wrapped
	if got[0].Rotation != 361 || got[1].Rotation != -1 {
		t.Errorf("Rotation = %v, %v", got[0].Rotation, got[1].Rotation)
	}
}

func TestAdvancePrunesAtBottom(t *testing.T) {
	items := []Entity{
		{ID: 1, Y: 796, Speed: 4},  // lands exactly on 800
		{ID: 2, Y: 795, Speed: 4},  // 799 stays
		{ID: 3, Y: 900, Speed: 1},  // already gone
		{ID: 4, Y: 0, Speed: 1000}, // fast
	}

	got := Advance(items, 800)
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected only item 2, got %+v", got)
	}
}

func TestAdvanceMonotonic(t *testing.T) {
	items := []Entity{{ID: 1, Y: -48, Speed: 3}}
	prev := items[0].Y
	for len(items) > 0 {
		items = Advance(items, 800)
		if len(items) == 0 {
			break
		}
		if items[0].Y <= prev {
			t.Fatalf("item did not fall: %v -> %v", prev, items[0].Y)
		}
		prev = items[0].Y
	}
	if prev >= 800 {
		t.Errorf("last visible y = %v, expected < 800", prev)
	}
}
