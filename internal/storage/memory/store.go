// Package memory keeps funds and their sync state in process. It plays the
// content system in service tests: saves, trashes and deletes fire fund
// lifecycle events inline, the way a CMS runs its save hooks.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"fund_sync/internal/domain"
)

type EventHook func(ctx context.Context, ev domain.FundEvent)

type lease struct {
	owner     string
	expiresAt time.Time
}

type Store struct {
	mu        sync.Mutex
	funds     map[int64]domain.Fund
	states    map[int64]domain.SyncState
	global    domain.GlobalState
	conflicts []domain.ConflictEntry
	leases    map[string]lease
	hooks     []EventHook
	nextID    int64
	now       func() time.Time
}

func New() *Store {
	return &Store{
		funds:  make(map[int64]domain.Fund),
		states: make(map[int64]domain.SyncState),
		leases: make(map[string]lease),
		nextID: 1,
		now:    time.Now,
	}
}

// SetClock replaces the clock used for modification times and lease expiry.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// OnEvent registers a hook run synchronously after every fund mutation.
func (s *Store) OnEvent(hook EventHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

func (s *Store) Funds() *FundStore {
	return &FundStore{s: s}
}

func (s *Store) States() *SyncStateStore {
	return &SyncStateStore{s: s}
}

func (s *Store) Conflicts() *ConflictLog {
	return &ConflictLog{s: s}
}

func (s *Store) Leases() *LeaseStore {
	return &LeaseStore{s: s}
}

func (s *Store) TransactionManager() *TransactionManager {
	return &TransactionManager{s: s}
}

func (s *Store) emit(ctx context.Context, events ...domain.FundEvent) {
	s.mu.Lock()
	hooks := slices.Clone(s.hooks)
	s.mu.Unlock()

	for _, ev := range events {
		for _, hook := range hooks {
			hook(ctx, ev)
		}
	}
}

// SaveFund inserts or updates a fund as the content system would, stamping
// its modification time and firing status change and save events. A zero
// ID assigns the next free id.
func (s *Store) SaveFund(ctx context.Context, f domain.Fund) int64 {
	s.mu.Lock()
	if f.ID == 0 {
		f.ID = s.nextID
	}
	if f.ID >= s.nextID {
		s.nextID = f.ID + 1
	}
	if f.Status == "" {
		f.Status = domain.StatusDraft
	}

	prev, existed := s.funds[f.ID]
	now := s.now()
	f.ModifiedAt = now
	if f.Status == domain.StatusPublished && f.PublishedAt.IsZero() {
		f.PublishedAt = now
	}
	f.Fields = maps.Clone(f.Fields)
	f.Sync = domain.SyncState{}
	s.funds[f.ID] = f
	s.mu.Unlock()

	var events []domain.FundEvent
	if existed && prev.Status != f.Status {
		events = append(events, domain.FundEvent{
			Type: domain.EventStatusChanged, FundID: f.ID, OldStatus: prev.Status, NewStatus: f.Status,
		})
	}
	events = append(events, domain.FundEvent{Type: domain.EventSaved, FundID: f.ID})
	s.emit(ctx, events...)

	return f.ID
}

func (s *Store) TrashFund(ctx context.Context, id int64) bool {
	if !s.setStatus(id, domain.StatusTrashed) {
		return false
	}
	s.emit(ctx, domain.FundEvent{Type: domain.EventTrashed, FundID: id})
	return true
}

// RestoreFund brings a trashed fund back as a draft.
func (s *Store) RestoreFund(ctx context.Context, id int64) bool {
	if !s.setStatus(id, domain.StatusDraft) {
		return false
	}
	s.emit(ctx, domain.FundEvent{Type: domain.EventRestored, FundID: id})
	return true
}

// DeleteFund fires the delete event before removing the fund, so handlers
// still see it.
func (s *Store) DeleteFund(ctx context.Context, id int64) bool {
	s.mu.Lock()
	_, ok := s.funds[id]
	s.mu.Unlock()
	if !ok {
		return false
	}

	s.emit(ctx, domain.FundEvent{Type: domain.EventDeleted, FundID: id})

	s.mu.Lock()
	delete(s.funds, id)
	s.mu.Unlock()
	return true
}

func (s *Store) setStatus(id int64, status domain.FundStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.funds[id]
	if !ok {
		return false
	}
	f.Status = status
	f.ModifiedAt = s.now()
	s.funds[id] = f
	return true
}

// fundLocked returns a copy of the fund joined with its sync state.
func (s *Store) fundLocked(id int64) (domain.Fund, bool) {
	f, ok := s.funds[id]
	if !ok {
		return domain.Fund{}, false
	}
	f.Fields = maps.Clone(f.Fields)
	if f.Fields == nil {
		f.Fields = map[string]string{}
	}
	f.Sync = s.stateLocked(id)
	return f, true
}

func (s *Store) stateLocked(fundID int64) domain.SyncState {
	state, ok := s.states[fundID]
	if !ok {
		return domain.SyncState{FundID: fundID}
	}
	return cloneState(state)
}

func cloneState(state domain.SyncState) domain.SyncState {
	if state.LastSyncAt != nil {
		t := *state.LastSyncAt
		state.LastSyncAt = &t
	}
	if state.LastAttemptAt != nil {
		t := *state.LastAttemptAt
		state.LastAttemptAt = &t
	}
	return state
}

func (s *Store) sortedFundIDs() []int64 {
	return sortedKeys(s.funds)
}

func sortedKeys[V any](m map[int64]V) []int64 {
	return slices.Sorted(maps.Keys(m))
}
