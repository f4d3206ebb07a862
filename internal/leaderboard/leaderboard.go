// Package leaderboard keeps the persisted top scores.
//
// The board lives under a single key of a key-value store as a JSON array.
// Boards written by older versions only stored a single best score under
// "highScore"; Load migrates that value once.
package leaderboard

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Storage keys.
const (
	Key       = "leaderboard"
	LegacyKey = "highScore"
)

// DefaultCapacity is the number of entries kept.
const DefaultCapacity = 5

// Entry is one leaderboard row.
type Entry struct {
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// KV is the persistence surface the board needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Manager serializes leaderboard reads and writes.
// One Manager may be shared by every session of a server process.
type Manager struct {
	mu       sync.Mutex
	kv       KV
	capacity int
	logger   *log.Logger
	entries  []Entry
	loaded   bool
}

// NewManager creates a manager over kv. A non-positive capacity uses
// DefaultCapacity; a nil logger discards.
func NewManager(kv KV, capacity int, logger *log.Logger) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{kv: kv, capacity: capacity, logger: logger}
}

// Load reads the board from storage, migrating the legacy key if needed.
// Malformed data is treated as an empty board. Read failures are logged and
// also leave the board empty; Load itself only fails on migration writes.
func (m *Manager) Load(now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked(now)
}

func (m *Manager) loadLocked(now time.Time) error {
	m.loaded = true
	m.entries = nil

	raw, ok, err := m.kv.Get(Key)
	if err != nil {
		m.logger.Warn("could not read leaderboard", "error", err)
		return nil
	}
	if ok {
		entries, err := Decode(raw)
		if err != nil {
			m.logger.Warn("ignoring malformed leaderboard", "error", err)
			return nil
		}
		m.entries = normalize(entries, m.capacity)
		return nil
	}

	legacy, ok, err := m.kv.Get(LegacyKey)
	if err != nil {
		m.logger.Warn("could not read legacy high score", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	score, err := strconv.Atoi(strings.TrimSpace(legacy))
	if err != nil {
		m.logger.Warn("ignoring malformed legacy high score", "value", legacy)
		return nil
	}

	m.entries = []Entry{{Score: score, Date: now}}
	if err := m.persistLocked(); err != nil {
		return fmt.Errorf("leaderboard: migrate legacy score: %w", err)
	}
	m.logger.Info("migrated legacy high score", "score", score)
	return nil
}

// Record appends a finished run, re-sorts, truncates and persists.
// The returned slice is the updated board. On a write failure the in-memory
// board is still updated.
func (m *Manager) Record(score int, at time.Time) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		_ = m.loadLocked(at)
	}

	m.entries = normalize(append(m.entries, Entry{Score: score, Date: at}), m.capacity)
	out := m.snapshotLocked()
	if err := m.persistLocked(); err != nil {
		return out, fmt.Errorf("leaderboard: persist: %w", err)
	}
	return out, nil
}

// Entries returns a copy of the current board.
func (m *Manager) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Best returns the top score, or 0 for an empty board.
func (m *Manager) Best() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return 0
	}
	return m.entries[0].Score
}

func (m *Manager) snapshotLocked() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Manager) persistLocked() error {
	data, err := Encode(m.entries)
	if err != nil {
		return err
	}
	return m.kv.Set(Key, data)
}

// normalize sorts descending by score and truncates. Equal scores keep their
// insertion order, so a new entry ranks below older equal ones.
func normalize(entries []Entry, capacity int) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > capacity {
		entries = entries[:capacity]
	}
	return entries
}
