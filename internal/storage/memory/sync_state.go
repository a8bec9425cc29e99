package memory

import (
	"context"
	"time"

	"fund_sync/internal/domain"
)

type SyncStateStore struct {
	s *Store
}

func (ss *SyncStateStore) Get(_ context.Context, fundID int64) (*domain.SyncState, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	state := ss.s.stateLocked(fundID)
	return &state, nil
}

func (ss *SyncStateStore) Save(_ context.Context, state *domain.SyncState) error {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	ss.s.states[state.FundID] = cloneState(*state)
	return nil
}

func (ss *SyncStateStore) Delete(_ context.Context, fundID int64) error {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	delete(ss.s.states, fundID)
	return nil
}

func (ss *SyncStateStore) ListErrored(_ context.Context) ([]domain.SyncState, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	var out []domain.SyncState
	for _, id := range sortedKeys(ss.s.states) {
		if state := ss.s.states[id]; state.HasError() {
			out = append(out, cloneState(state))
		}
	}
	return out, nil
}

func (ss *SyncStateStore) GetGlobal(_ context.Context) (*domain.GlobalState, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	global := ss.s.global
	if global.LastPollAt != nil {
		t := *global.LastPollAt
		global.LastPollAt = &t
	}
	return &global, nil
}

func (ss *SyncStateStore) SetLastPollAt(_ context.Context, at time.Time) error {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	ss.s.global.LastPollAt = &at
	return nil
}

func (ss *SyncStateStore) SetTemplateStatus(_ context.Context, name string, status domain.TemplateStatus) error {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	ss.s.global.TemplateName = name
	ss.s.global.TemplateStatus = status
	return nil
}
