// Package memory holds in-process repository implementations.
package memory

import (
	"context"
	"sync"

	"showcase/domain/activity"
	"showcase/internal/errors"
	"showcase/ports"
)

// ActivityRepository keeps the most recent entries in a fixed-size ring
type ActivityRepository struct {
	mu      sync.RWMutex
	entries []activity.Entry
	next    int
	full    bool
}

// NewActivityRepository creates a ring holding at most capacity entries
func NewActivityRepository(capacity int) (ports.ActivityRepository, error) {
	if capacity <= 0 {
		return nil, errors.InvalidInput("activity capacity must be positive")
	}
	return &ActivityRepository{entries: make([]activity.Entry, capacity)}, nil
}

// Record stores an entry, overwriting the oldest once the ring is full
func (r *ActivityRepository) Record(ctx context.Context, entry activity.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = entry
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

// ListRecent returns up to limit entries, newest first. A non-positive
// limit returns everything held.
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]activity.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	size := r.next
	if r.full {
		size = len(r.entries)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	result := make([]activity.Entry, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (r.next - i + len(r.entries)) % len(r.entries)
		result = append(result, r.entries[idx])
	}
	return result, nil
}
