// Package repository provides typed access to the record store's
// collections. Repositories hold no state of their own; every call reads or
// rewrites the backing collection, and mutations run as a single
// read-modify-write transaction via [store.Store.Update].
package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Vexa12/climexa/internal/store"
)

// readAll loads a whole collection, treating a never-written key as empty.
// Corrupt blobs still surface as errors.
func readAll[T any](s *store.Store, key string) ([]T, error) {
	var items []T
	if err := s.Read(key, &items); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}

// mutate applies fn to the decoded collection and persists the result, all
// inside one store transaction.
func mutate[T any](s *store.Store, key string, fn func(items []T) []T) error {
	return s.Update(key, func(data []byte) ([]byte, error) {
		var items []T
		if data != nil {
			if err := json.Unmarshal(data, &items); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", store.ErrCorrupt, key, err)
			}
		}
		return json.Marshal(fn(items))
	})
}
