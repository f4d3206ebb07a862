package storage

import (
	"sync"
	"time"
)

// Memory is an in-process key-value store.
// It backs the leaderboard when the database cannot be opened, so the game
// keeps working for the lifetime of the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	runs   []RunEntry
}

// NewMemory creates an empty in-memory store, optionally seeded with values.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{values: make(map[string]string, len(seed))}
	for k, v := range seed {
		m.values[k] = v
	}
	return m
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// SaveRun records a completed session in memory.
func (m *Memory) SaveRun(score int, elapsed time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := int64(len(m.runs) + 1)
	m.runs = append(m.runs, RunEntry{ID: id, Score: score, Elapsed: elapsed, CreatedAt: time.Now()})
	return id, nil
}
