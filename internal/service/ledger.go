package service

import (
	"time"

	"fund_sync/internal/domain"
	"fund_sync/internal/remote"
)

// RetryLedger schedules reconciliation retries for funds holding a sync error.
// The wait after the n-th consecutive failure is baseBackoff * 3^(n-1).
type RetryLedger struct {
	maxAttempts int
	baseBackoff time.Duration
	now         func() time.Time
}

func NewRetryLedger(maxAttempts int, baseBackoff time.Duration) *RetryLedger {
	return &RetryLedger{
		maxAttempts: maxAttempts,
		baseBackoff: baseBackoff,
		now:         time.Now,
	}
}

// ShouldRetry reports whether a pass may process the fund now.
func (l *RetryLedger) ShouldRetry(state domain.SyncState) bool {
	if !state.HasError() {
		return true
	}
	if l.Exhausted(state) {
		return false
	}
	if state.LastAttemptAt == nil {
		return true
	}
	return !l.now().Before(state.LastAttemptAt.Add(l.Backoff(state.SyncAttempts)))
}

// Exhausted reports a fund that needs manual intervention.
func (l *RetryLedger) Exhausted(state domain.SyncState) bool {
	return state.HasError() && state.SyncAttempts >= l.maxAttempts
}

func (l *RetryLedger) Backoff(attempts int) time.Duration {
	backoff := l.baseBackoff
	for i := 1; i < attempts; i++ {
		backoff *= 3
	}
	return backoff
}

// RecordFailure counts a failed attempt. Semantic failures cannot succeed
// on retry and exhaust the ledger at once.
func (l *RetryLedger) RecordFailure(state *domain.SyncState, err error) {
	now := l.now()
	state.SyncError = err.Error()
	state.SyncAttempts++
	state.LastAttemptAt = &now

	if !remote.IsRetryable(err) && state.SyncAttempts < l.maxAttempts {
		state.SyncAttempts = l.maxAttempts
	}
}

func (l *RetryLedger) Clear(state *domain.SyncState) {
	state.SyncError = ""
	state.SyncAttempts = 0
	state.LastAttemptAt = nil
}
