// Package journal records test-data generation runs so they can be listed
// and replayed byte-for-byte from their seed.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for journal lookups
var (
	ErrRunNotFound = errors.New("run not found")
	ErrInvalidRun  = errors.New("invalid run")
)

// Run is everything needed to regenerate a data set.
type Run struct {
	ID        string    `json:"id"`
	Generator string    `json:"generator"`
	Seed      string    `json:"seed"`
	Count     int64     `json:"count"`
	UserCount int       `json:"user_count,omitempty"`
	KeyCount  int       `json:"key_count,omitempty"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRun returns a Run with a fresh ID and creation time.
func NewRun(generator, seed string, count int64) Run {
	return Run{
		ID:        uuid.NewString(),
		Generator: generator,
		Seed:      seed,
		Count:     count,
		CreatedAt: time.Now().UTC(),
	}
}

func (r Run) validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRun)
	}
	if r.Generator == "" {
		return fmt.Errorf("%w: missing generator", ErrInvalidRun)
	}
	if r.Seed == "" {
		return fmt.Errorf("%w: missing seed", ErrInvalidRun)
	}
	return nil
}

// Store persists runs.
type Store interface {
	// Record inserts or replaces a run by ID
	Record(run Run) error
	// Get returns the run with the given ID or ErrRunNotFound
	Get(id string) (Run, error)
	// List returns all runs, oldest first
	List() ([]Run, error)
	Close() error
}

func encodeRun(run Run) ([]byte, error) {
	data, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("failed to encode run: %w", err)
	}
	return data, nil
}

func decodeRun(data []byte) (Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, fmt.Errorf("failed to decode run: %w", err)
	}
	return run, nil
}

func sortRuns(runs []Run) {
	slices.SortStableFunc(runs, func(a, b Run) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}
