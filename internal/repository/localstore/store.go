package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	bolt "go.etcd.io/bbolt"
)

// Store persists the four entity collections as JSON-serialized arrays
// under separate keys in a single bbolt file. Every mutation rewrites
// the whole affected collection; insertion order is preserved across
// load/save round trips.
//
// Access is single-writer: repositories take the store mutex around
// load-modify-write sequences. There is no cross-process coordination;
// one store file belongs to one running instance.
type Store struct {
	db *bolt.DB
	mu sync.Mutex
}

const bucketCollections = "collections"

// Collection keys. One key per entity collection.
const (
	KeyEmployees        = "employees"
	KeyShifts           = "shifts"
	KeyShiftAssignments = "shift_assignments"
	KeyAttendance       = "attendance"
)

// Open opens (creating if needed) the store file and installs the seed
// collections on first run.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open store file: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCollections))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create collections bucket: %w", err)
	}

	s := &Store{db: db}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed store: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Lock takes the single-writer mutex. Repositories hold it for the full
// load-modify-write of a mutation so denormalized state never observes
// a partial update.
func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

// Load decodes a collection into v. A missing key leaves v untouched,
// so callers see an empty collection.
func (s *Store) Load(key string, v any) error {
	return s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucketCollections)).Get([]byte(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("decode collection %s: %w", key, err)
		}
		return nil
	})
}

// Save serializes v and writes it through as the new content of the
// collection.
func (s *Store) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCollections)).Put([]byte(key), raw)
	})
}

// exists reports whether the collection key has ever been written.
// Distinct from emptiness: an explicitly saved empty collection exists.
func (s *Store) exists(key string) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket([]byte(bucketCollections)).Get([]byte(key)) != nil
		return nil
	})
	return found, err
}
