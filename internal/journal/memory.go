package journal

import (
	"fmt"
	"log"
	"sync"
)

// MemoryStore is the in-memory Store used by tests (not persistent)
type MemoryStore struct {
	runs map[string][]byte
	mu   sync.RWMutex
}

// NewMemoryStore creates a new in-memory journal
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[string][]byte),
	}
}

// Record stores an encoded copy so later changes to run are not visible
func (m *MemoryStore) Record(run Run) error {
	if err := run.validate(); err != nil {
		return err
	}
	data, err := encodeRun(run)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[run.ID] = data

	return nil
}

// Get retrieves a run by ID
func (m *MemoryStore) Get(id string) (Run, error) {
	m.mu.RLock()
	data, exists := m.runs[id]
	m.mu.RUnlock()

	if !exists {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return decodeRun(data)
}

// List returns every run, oldest first
func (m *MemoryStore) List() ([]Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]Run, 0, len(m.runs))
	for id, data := range m.runs {
		run, err := decodeRun(data)
		if err != nil {
			log.Printf("[JOURNAL] Warning: Failed to decode run %s: %v", id, err)
			continue
		}
		runs = append(runs, run)
	}
	sortRuns(runs)

	return runs, nil
}

// Close is a no-op for the memory store
func (m *MemoryStore) Close() error {
	return nil
}
