package leaderboard

import (
	"errors"
	"testing"
	"time"
)

type memKV struct {
	values  map[string]string
	failSet bool
}

func newMemKV(seed map[string]string) *memKV {
	kv := &memKV{values: map[string]string{}}
	for k, v := range seed {
		kv.values[k] = v
	}
	return kv
}

func (m *memKV) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.values[key] = value
	return nil
}

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRecordOnEmptyBoard(t *testing.T) {
	kv := newMemKV(nil)
	m := NewManager(kv, 5, nil)
	if err := m.Load(t0); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	board, err := m.Record(120, t0)
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if len(board) != 1 || board[0].Score != 120 || !board[0].Date.Equal(t0) {
		t.Fatalf("board = %+v, expected single 120 entry", board)
	}
	if m.Best() != 120 {
		t.Errorf("Best() = %d, expected 120", m.Best())
	}

	stored, err := Decode(kv.values[Key])
	if err != nil {
		t.Fatalf("stored board not decodable: %v", err)
	}
	if len(stored) != 1 || stored[0].Score != 120 {
		t.Errorf("stored = %+v", stored)
	}
}

func TestLegacyMigration(t *testing.T) {
	kv := newMemKV(map[string]string{LegacyKey: "80"})
	m := NewManager(kv, 5, nil)
	if err := m.Load(t0); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	entries := m.Entries()
	if len(entries) != 1 || entries[0].Score != 80 || !entries[0].Date.Equal(t0) {
		t.Fatalf("entries = %+v, expected migrated 80", entries)
	}
	if m.Best() != 80 {
		t.Errorf("Best() = %d, expected 80", m.Best())
	}
	if _, ok := kv.values[Key]; !ok {
		t.Error("migration should persist the leaderboard key")
	}
	if kv.values[LegacyKey] != "80" {
		t.Error("legacy key must be left untouched")
	}

	// A second load reads the migrated board, not the legacy key.
	kv.values[LegacyKey] = "999"
	m2 := NewManager(kv, 5, nil)
	m2.Load(t0.Add(time.Hour))
	if m2.Best() != 80 {
		t.Errorf("second load Best() = %d, expected 80", m2.Best())
	}
}

func TestMalformedBoardTreatedAsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "not json"},
		{"object", `{"score": 10}`},
		{"truncated", `[{"score": 10`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemKV(map[string]string{Key: tt.raw, LegacyKey: "50"})
			m := NewManager(kv, 5, nil)
			if err := m.Load(t0); err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if len(m.Entries()) != 0 {
				t.Errorf("expected empty board, got %+v", m.Entries())
			}

			m.Record(30, t0)
			stored, err := Decode(kv.values[Key])
			if err != nil || len(stored) != 1 || stored[0].Score != 30 {
				t.Errorf("board not rewritten: %q", kv.values[Key])
			}
		})
	}
}

func TestBoardInvariant(t *testing.T) {
	m := NewManager(newMemKV(nil), 5, nil)
	m.Load(t0)

	scores := []int{40, 200, 10, 90, 90, 500, 0, 75, 300}
	for i, s := range scores {
		board, err := m.Record(s, t0.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatalf("Record(%d) failed: %v", s, err)
		}
		if len(board) > 5 {
			t.Fatalf("board exceeds capacity: %d", len(board))
		}
		for j := 1; j < len(board); j++ {
			if board[j-1].Score < board[j].Score {
				t.Fatalf("board not descending after %d: %+v", s, board)
			}
		}
	}

	want := []int{500, 300, 200, 90, 90}
	got := m.Entries()
	for i, w := range want {
		if got[i].Score != w {
			t.Errorf("entry %d = %d, expected %d", i, got[i].Score, w)
		}
	}
}

func TestTieRanksBelowOlderEntry(t *testing.T) {
	m := NewManager(newMemKV(nil), 2, nil)
	m.Load(t0)
	m.Record(100, t0)
	m.Record(50, t0.Add(time.Minute))
	board, _ := m.Record(50, t0.Add(2*time.Minute))

	if len(board) != 2 {
		t.Fatalf("len = %d, expected 2", len(board))
	}
	if !board[1].Date.Equal(t0.Add(time.Minute)) {
		t.Errorf("older equal entry should be kept, got %+v", board[1])
	}
}

func TestRecordWriteFailureKeepsMemory(t *testing.T) {
	kv := newMemKV(nil)
	kv.failSet = true
	m := NewManager(kv, 5, nil)
	m.Load(t0)

	board, err := m.Record(70, t0)
	if err == nil {
		t.Error("expected persist error")
	}
	if len(board) != 1 || m.Best() != 70 {
		t.Errorf("in-memory board should still update, got %+v", board)
	}
}

func TestDecodeSkipsBadElements(t *testing.T) {
	entries, err := Decode(`[{"score":10,"date":"2026-01-01T00:00:00Z"},{"date":"x"},{"score":"7"},{"score":5,"date":"nope"}]`)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	if entries[1].Score != 5 || !entries[1].Date.IsZero() {
		t.Errorf("entry with bad date = %+v", entries[1])
	}
}

func TestEncodeDecodeOrder(t *testing.T) {
	in := []Entry{{Score: 30, Date: t0}, {Score: 20, Date: t0.Add(time.Second)}}
	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if len(out) != 2 || out[0].Score != 30 || !out[1].Date.Equal(in[1].Date) {
		t.Errorf("Decode(Encode()) = %+v", out)
	}

	empty, _ := Encode(nil)
	if empty != "[]" {
		t.Errorf("Encode(nil) = %q, expected []", empty)
	}
}
