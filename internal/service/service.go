package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fund_sync/internal/config"
	"fund_sync/internal/domain"
)

var (
	ErrPassInProgress        = errors.New("reconciliation pass already in progress")
	ErrNotLinked             = errors.New("fund is not linked to a designation")
	ErrTemplateNotConfigured = errors.New("template campaign id not configured")
)

// SyncService runs reconciliation passes between remote designations and
// local funds.
type SyncService struct {
	funds     FundStore
	states    SyncStateStore
	conflicts ConflictLog
	leases    LeaseStore
	remote    RemoteClient
	txManager TransactionManager
	notifier  Notifier
	logger    *slog.Logger
	config    config.SyncConfig

	matcher *MatchResolver
	ledger  *RetryLedger

	// passMu keeps passes single-flight inside the process; the pass lease
	// does the same across processes.
	passMu sync.Mutex
	now    func() time.Time
}

// NewSyncService wires the engine. notifier may be nil.
func NewSyncService(
	funds FundStore,
	states SyncStateStore,
	conflicts ConflictLog,
	leases LeaseStore,
	remote RemoteClient,
	txManager TransactionManager,
	notifier Notifier,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	s := &SyncService{
		funds:     funds,
		states:    states,
		conflicts: conflicts,
		leases:    leases,
		remote:    remote,
		txManager: txManager,
		notifier:  notifier,
		logger:    logger.With("component", "reconciler"),
		config:    cfg,
		now:       time.Now,
	}
	s.matcher = NewMatchResolver(funds, s.logger)
	s.ledger = NewRetryLedger(cfg.MaxAttempts, cfg.BaseBackoff)
	s.ledger.now = func() time.Time { return s.now() }
	return s
}

func (s *SyncService) Ledger() *RetryLedger {
	return s.ledger
}

func (s *SyncService) notify(ctx context.Context, fund *domain.Fund, source domain.SyncSource) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, fund, source); err != nil {
		s.logger.Warn("failed to publish sync notification",
			"fund_id", fund.ID,
			"error", err,
		)
	}
}

// stateOf copies the sync state of a fund, keyed to it even when no state
// was stored yet.
func stateOf(f *domain.Fund) domain.SyncState {
	state := f.Sync
	state.FundID = f.ID
	return state
}
