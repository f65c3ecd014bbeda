// Package services is the data service layer: one CRUD service per entity
// over its in-memory store, plus the dashboard aggregation. Every operation
// simulates a remote call by pausing before it reads or mutates anything.
package services

import (
	"context"
	"math"
	"strings"

	"shopdesk/internal/store"
)

// crud carries the operations shared by every entity service. Create and
// Update stay on the concrete services since ids, required fields and
// derived values differ per entity.
type crud[ID comparable, T store.Entity[ID, T]] struct {
	store  *store.Store[ID, T]
	pause  Delay
	fields func(T) []string
}

// GetAll returns a point-in-time snapshot of every record.
func (c *crud[ID, T]) GetAll(ctx context.Context) ([]T, error) {
	if err := c.pause(ctx); err != nil {
		return nil, err
	}
	return c.store.FindAll(), nil
}

// GetByID reports absence with ok=false; a missing id is not an error.
func (c *crud[ID, T]) GetByID(ctx context.Context, id ID) (T, bool, error) {
	var zero T
	if err := c.pause(ctx); err != nil {
		return zero, false, err
	}
	rec, ok := c.store.FindByID(id)
	return rec, ok, nil
}

// Delete removes the record, failing with ErrNotFound when id is absent.
func (c *crud[ID, T]) Delete(ctx context.Context, id ID) error {
	if err := c.pause(ctx); err != nil {
		return err
	}
	return c.store.Remove(id)
}

// Search matches query case-insensitively against every declared search
// field of each record. An empty query matches everything. Store order is
// preserved.
func (c *crud[ID, T]) Search(ctx context.Context, query string) ([]T, error) {
	if err := c.pause(ctx); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	all := c.store.FindAll()
	if q == "" {
		return all, nil
	}
	out := make([]T, 0, len(all))
	for _, rec := range all {
		for _, f := range c.fields(rec) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, rec)
				break
			}
		}
	}
	return out, nil
}

// round2 keeps derived money amounts exact at cent granularity.
func round2(v float64) float64 { return math.Round(v*100) / 100 }
