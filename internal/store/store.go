// Package store holds the in-memory collections that stand in for the
// backend database. One Store per entity type; records keep insertion order.
package store

import (
	"fmt"
	"sync"

	"shopdesk/internal/domain"
)

// Entity is anything a Store can hold: it knows its own key and can produce
// a detached copy so callers never alias store internals.
type Entity[ID comparable, T any] interface {
	EntityID() ID
	Clone() T
}

// Store is an ordered mutable collection of one entity type. All methods are
// safe for concurrent use; reads hand out clones (copy-on-read).
type Store[ID comparable, T Entity[ID, T]] struct {
	mu      sync.RWMutex
	records []T
}

func New[ID comparable, T Entity[ID, T]]() *Store[ID, T] {
	return &Store[ID, T]{}
}

// Insert appends rec, rejecting an id that is already present.
func (s *Store[ID, T]) Insert(rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := rec.EntityID()
	if s.index(id) >= 0 {
		return fmt.Errorf("insert %v: %w", id, domain.ErrDuplicateID)
	}
	s.records = append(s.records, rec.Clone())
	return nil
}

// FindByID returns a copy of the record, or ok=false when absent. Absence is
// not an error.
func (s *Store[ID, T]) FindByID(id ID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 {
		return s.records[i].Clone(), true
	}
	var zero T
	return zero, false
}

// FindAll returns a point-in-time copy of every record in insertion order.
// Later mutations do not affect the returned slice.
func (s *Store[ID, T]) FindAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// Replace swaps the record stored under id, keeping its position.
func (s *Store[ID, T]) Replace(id ID, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("replace %v: %w", id, domain.ErrNotFound)
	}
	s.records[i] = rec.Clone()
	return nil
}

// Remove deletes the record under id, preserving the relative order of the
// rest.
func (s *Store[ID, T]) Remove(id ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("remove %v: %w", id, domain.ErrNotFound)
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

func (s *Store[ID, T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// index returns the position of id, or -1. Callers hold the lock.
func (s *Store[ID, T]) index(id ID) int {
	for i, r := range s.records {
		if r.EntityID() == id {
			return i
		}
	}
	return -1
}
