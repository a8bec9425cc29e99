package memory

import (
	"context"
	"slices"

	"fund_sync/internal/domain"
)

// ConflictLog keeps entries newest-last and evicts from the head.
type ConflictLog struct {
	s *Store
}

func (cl *ConflictLog) Append(_ context.Context, entry domain.ConflictEntry, maxEntries int) error {
	cl.s.mu.Lock()
	defer cl.s.mu.Unlock()

	cl.s.conflicts = append(cl.s.conflicts, entry)
	if maxEntries > 0 && len(cl.s.conflicts) > maxEntries {
		cl.s.conflicts = slices.Clone(cl.s.conflicts[len(cl.s.conflicts)-maxEntries:])
	}
	return nil
}

func (cl *ConflictLog) Recent(_ context.Context, limit int) ([]domain.ConflictEntry, error) {
	cl.s.mu.Lock()
	defer cl.s.mu.Unlock()

	entries := cl.s.conflicts
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return slices.Clone(entries), nil
}
