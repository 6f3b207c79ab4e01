package journal

import (
	"fmt"
	"log"

	bolt "go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// BoltStore implements Store using bbolt (formerly bolt)
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates a bbolt-backed journal at dbPath
func OpenBolt(dbPath string) (*BoltStore, error) {
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}

	log.Printf("[JOURNAL] Bbolt journal opened at %s", dbPath)
	return &BoltStore{db: db}, nil
}

// Record stores a run keyed by its ID
func (b *BoltStore) Record(run Run) error {
	if err := run.validate(); err != nil {
		return err
	}
	data, err := encodeRun(run)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(run.ID), data)
	})
}

// Get retrieves a run by ID
func (b *BoltStore) Get(id string) (Run, error) {
	var run Run
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		// Decoding copies out of v, which is only valid during the transaction
		var err error
		run, err = decodeRun(v)
		return err
	})
	return run, err
}

// List returns every run, oldest first
func (b *BoltStore) List() ([]Run, error) {
	var runs []Run
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			run, err := decodeRun(v)
			if err != nil {
				log.Printf("[JOURNAL] Warning: Failed to decode run %s: %v", k, err)
				return nil
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortRuns(runs)

	return runs, nil
}

// Close closes the database
func (b *BoltStore) Close() error {
	return b.db.Close()
}
