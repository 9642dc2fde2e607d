// Package store implements the record store: five independently keyed
// collections, each persisted as one whole JSON blob in a single bbolt file.
//
// Every mutation is a read-modify-write of the full collection. [Store.Update]
// runs that cycle inside one bbolt transaction, so concurrent goroutines
// cannot clobber each other's writes and bbolt's file lock excludes a second
// process. This is stricter than the storage contract the app's earlier
// builds relied on, which allowed two writers to race.
//
// A blob that fails to deserialize surfaces as [ErrCorrupt]; it is never
// silently treated as an empty collection.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Vexa12/climexa/internal/observability"
)

// Collection keys. Fixed names, one JSON blob each; the session key holds a
// single object, the rest hold arrays.
const (
	KeyCurrentUser        = "climexa_current_user"
	KeyUsers              = "climexa_users"
	KeyEvents             = "climexa_events"
	KeyReviews            = "climexa_reviews"
	KeyAstronomicalEvents = "climexa_astronomical_events"
)

const collectionsBucket = "collections"

var (
	// ErrNotFound indicates the collection key has never been written.
	ErrNotFound = errors.New("collection not found")

	// ErrCorrupt indicates a stored blob failed to deserialize.
	ErrCorrupt = errors.New("corrupt collection data")
)

// Store is a bbolt-backed record store for the fixed set of collections.
type Store struct {
	db      *bbolt.DB
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Open opens (or creates) the store file at the given path.
func Open(path string, logger *slog.Logger, metrics *observability.Metrics) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(collectionsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create collections bucket: %w", err)
	}

	return &Store{db: db, logger: logger, metrics: metrics}, nil
}

// Close closes the underlying database file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Read deserializes the collection stored under key into v. Returns
// ErrNotFound when the key has never been written (v is left untouched) and
// ErrCorrupt when the stored blob cannot be deserialized.
func (s *Store) Read(key string, v any) error {
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(collectionsBucket)).Get([]byte(key))
		if data == nil {
			return ErrNotFound
		}
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
		}
		return nil
	})
	s.count("read", key, err)
	return err
}

// Write serializes v and overwrites the entire collection under key.
func (s *Store) Write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		s.count("write", key, err)
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(collectionsBucket)).Put([]byte(key), data)
	})
	s.count("write", key, err)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Clear removes the key entirely. Clearing an absent key is a no-op.
func (s *Store) Clear(key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(collectionsBucket)).Delete([]byte(key))
	})
	s.count("clear", key, err)
	if err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}
	return nil
}

// Update runs a read-modify-write cycle on one collection inside a single
// transaction. fn receives the raw stored blob (nil when never written) and
// returns the replacement blob.
func (s *Store) Update(key string, fn func(data []byte) ([]byte, error)) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collectionsBucket))
		next, err := fn(bucket.Get([]byte(key)))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), next)
	})
	s.count("update", key, err)
	if err != nil {
		return fmt.Errorf("update %s: %w", key, err)
	}
	return nil
}

// Ping verifies the store file is readable. Used by the readiness probe.
func (s *Store) Ping() error {
	return s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(collectionsBucket)) == nil {
			return errors.New("collections bucket is missing")
		}
		return nil
	})
}

func (s *Store) count(op, key string, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "success"
	switch {
	case errors.Is(err, ErrNotFound):
		outcome = "absent"
	case err != nil:
		outcome = "error"
	}
	s.metrics.StoreOps.WithLabelValues(op, key, outcome).Inc()
}
