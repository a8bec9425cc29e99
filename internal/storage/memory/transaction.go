package memory

import (
	"context"
	"maps"

	"fund_sync/internal/domain"
)

// TransactionManager restores funds and sync states when fn fails. Writes
// made by other goroutines during fn are lost on rollback.
type TransactionManager struct {
	s *Store
}

func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tm.s.mu.Lock()
	funds := maps.Clone(tm.s.funds)
	states := make(map[int64]domain.SyncState, len(tm.s.states))
	for id, state := range tm.s.states {
		states[id] = cloneState(state)
	}
	tm.s.mu.Unlock()

	if err := fn(ctx); err != nil {
		tm.s.mu.Lock()
		tm.s.funds = funds
		tm.s.states = states
		tm.s.mu.Unlock()
		return err
	}
	return nil
}
