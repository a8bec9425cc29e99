package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"fund_sync/internal/domain"
	"fund_sync/internal/fingerprint"
)

type PassOptions struct {
	DryRun bool
}

// RunPass reconciles every remote designation against its fund, in the
// order the platform returns them. Only a failed fetch aborts the pass;
// per-fund failures are recorded in the retry ledger.
func (s *SyncService) RunPass(ctx context.Context, opts PassOptions) (*domain.PassStats, error) {
	release, err := s.beginPass(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	start := s.now()
	s.logger.Info("starting reconciliation pass", "dry_run", opts.DryRun)

	designations, err := s.remote.ListDesignations(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch designations: %w", err)
	}

	s.logger.Info("fetched designations", "count", len(designations))

	stats := &domain.PassStats{DryRun: opts.DryRun}
	for _, d := range designations {
		s.reconcileDesignation(ctx, d, opts, stats)
	}
	stats.Skipped = stats.Unchanged + stats.Conflicts + stats.Deferred

	if !opts.DryRun {
		if err := s.states.SetLastPollAt(ctx, s.now()); err != nil {
			s.logger.Error("failed to record pass time", "error", err)
		}
	}

	stats.Duration = s.now().Sub(start)

	s.logger.Info("reconciliation pass completed",
		"processed", stats.Processed,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"unchanged", stats.Unchanged,
		"conflicts", stats.Conflicts,
		"deferred", stats.Deferred,
		"orphaned", stats.Orphaned,
		"ambiguous", stats.Ambiguous,
		"errors", stats.Errors,
		"retried", stats.Retried,
		"dry_run", stats.DryRun,
		"duration", stats.Duration,
	)

	return stats, nil
}

// ReconcileFund fetches the designation linked to one fund and reconciles
// it. force bypasses the retry ledger.
func (s *SyncService) ReconcileFund(ctx context.Context, fundID int64, force bool) (*domain.PassStats, error) {
	release, err := s.beginPass(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.reconcileOne(ctx, fundID, force)
}

func (s *SyncService) beginPass(ctx context.Context) (func(), error) {
	if !s.passMu.TryLock() {
		return nil, ErrPassInProgress
	}

	release, ok, err := acquireLease(ctx, s.leases, passLeaseKey, s.config.PassLockTTL)
	if err != nil {
		s.passMu.Unlock()
		return nil, err
	}
	if !ok {
		s.passMu.Unlock()
		return nil, ErrPassInProgress
	}

	return func() {
		release()
		s.passMu.Unlock()
	}, nil
}

func (s *SyncService) reconcileOne(ctx context.Context, fundID int64, force bool) (*domain.PassStats, error) {
	fund, err := s.funds.Get(ctx, fundID)
	if err != nil {
		return nil, fmt.Errorf("get fund %d: %w", fundID, err)
	}

	id, ok := designationID(fund)
	if !ok {
		return nil, ErrNotLinked
	}

	logger := s.logger.With("fund_id", fund.ID, "designation_id", id)
	stats := &domain.PassStats{Processed: 1}

	d, err := s.remote.GetDesignation(ctx, id)
	if err != nil {
		state := stateOf(fund)
		s.recordFailure(ctx, &state, fmt.Errorf("fetch designation: %w", err), logger)
		stats.Errors++
		return stats, nil
	}

	s.reconcileFund(ctx, fund, *d, PassOptions{}, force, stats)
	stats.Skipped = stats.Unchanged + stats.Conflicts + stats.Deferred
	return stats, nil
}

func (s *SyncService) reconcileDesignation(ctx context.Context, d domain.Designation, opts PassOptions, stats *domain.PassStats) {
	stats.Processed++
	logger := s.logger.With("designation_id", d.ID)

	match, err := s.matcher.Resolve(ctx, d)
	if err != nil {
		stats.Errors++
		logger.Error("failed to resolve designation", "error", err)
		return
	}

	if !match.Found() {
		stats.Orphaned++
		logger.Warn("orphaned designation",
			"name", d.Name,
			"external_reference_id", d.ExternalReferenceID,
		)
		return
	}

	if match.Ambiguous {
		stats.Ambiguous++
	}

	s.reconcileFund(ctx, match.Fund, d, opts, false, stats)
}

func (s *SyncService) reconcileFund(ctx context.Context, fund *domain.Fund, d domain.Designation, opts PassOptions, force bool, stats *domain.PassStats) {
	logger := s.logger.With("fund_id", fund.ID, "designation_id", d.ID)
	state := stateOf(fund)

	if state.HasError() {
		if !force && !s.ledger.ShouldRetry(state) {
			stats.Deferred++
			logger.Debug("retry not due",
				"attempts", state.SyncAttempts,
				"exhausted", s.ledger.Exhausted(state),
			)
			return
		}
		stats.Retried++
	}

	digest := fingerprint.Designation(d)
	if digest == state.LastPollFingerprint {
		stats.Unchanged++
		if state.HasError() && !opts.DryRun {
			s.ledger.Clear(&state)
			if err := s.states.Save(ctx, &state); err != nil {
				logger.Error("failed to clear sync error", "error", err)
			}
		}
		return
	}

	verdict := Arbitrate(fund)
	if !verdict.Accept {
		s.resolveConflict(ctx, fund, d, verdict.Reason, opts, stats, logger)
		return
	}

	s.applyRemote(ctx, fund, d, digest, opts, stats, logger)
}

// resolveConflict keeps the local version: it logs the conflict and pushes
// the fund over the remote designation.
func (s *SyncService) resolveConflict(ctx context.Context, fund *domain.Fund, d domain.Designation, reason string, opts PassOptions, stats *domain.PassStats, logger *slog.Logger) {
	logger.Info("conflict detected, keeping local version",
		"reason", reason,
		"local_title", fund.Title,
		"remote_title", d.Name,
	)

	if opts.DryRun {
		stats.Conflicts++
		return
	}

	entry := domain.ConflictEntry{
		ID:            uuid.NewString(),
		Timestamp:     s.now(),
		FundID:        fund.ID,
		DesignationID: d.ID,
		Reason:        reason,
		LocalTitle:    fund.Title,
		RemoteTitle:   d.Name,
	}
	if err := s.conflicts.Append(ctx, entry, s.config.ConflictLogSize); err != nil {
		logger.Error("failed to append conflict log", "error", err)
	}

	in := designationInput(fund)
	state := stateOf(fund)

	updated, err := s.remote.UpdateDesignation(ctx, d.ID, in)
	if err != nil {
		s.recordFailure(ctx, &state, fmt.Errorf("push local version: %w", err), logger)
		stats.Errors++
		return
	}

	after := applyInput(d, in)
	if updated != nil {
		after = *updated
	}

	state.DesignationID = d.ID
	state.LastPollFingerprint = fingerprint.Designation(after)
	state.MarkSynced(s.now(), domain.SourceLocal)

	if err := s.states.Save(ctx, &state); err != nil {
		logger.Error("failed to save sync state", "error", err)
		stats.Errors++
		return
	}

	stats.Conflicts++
	fund.Sync = state
	s.notify(ctx, fund, domain.SourceLocal)
}

// applyRemote writes the designation onto the fund while the inbound flag
// is held, so the save does not echo back through the outbound trigger.
func (s *SyncService) applyRemote(ctx context.Context, fund *domain.Fund, d domain.Designation, digest string, opts PassOptions, stats *domain.PassStats, logger *slog.Logger) {
	change := remoteChange(fund, d)

	// A designation carrying nothing the fund would not push itself, such as
	// the echo of our own outbound write, only refreshes the fingerprint.
	counter := &stats.Updated
	if change.IsEmpty() {
		counter = &stats.Unchanged
	}

	if opts.DryRun {
		*counter++
		logger.Info("would apply remote designation",
			"title", change.Title != nil,
			"status", change.Status != nil,
			"excerpt", change.Excerpt != nil,
		)
		return
	}

	state := stateOf(fund)

	release, _, err := acquireLease(ctx, s.leases, inboundLeaseKey, s.config.InboundFlagTTL)
	if err != nil {
		s.recordFailure(ctx, &state, err, logger)
		stats.Errors++
		return
	}
	defer release()

	at := s.now()
	next := stateOf(fund)
	next.DesignationID = d.ID
	next.LastPollFingerprint = digest
	next.MarkSynced(at, domain.SourceRemote)

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if !change.IsEmpty() {
			if err := s.funds.ApplyRemote(txCtx, fund.ID, change, at); err != nil {
				return fmt.Errorf("apply remote fields: %w", err)
			}
		}
		if err := s.states.Save(txCtx, &next); err != nil {
			return fmt.Errorf("save sync state: %w", err)
		}
		return nil
	})
	if err != nil {
		s.recordFailure(ctx, &state, err, logger)
		stats.Errors++
		return
	}

	*counter++
	logger.Info("applied remote designation",
		"title", change.Title != nil,
		"status", change.Status != nil,
		"excerpt", change.Excerpt != nil,
	)

	fund.Sync = next
	s.notify(ctx, fund, domain.SourceRemote)
}

func (s *SyncService) recordFailure(ctx context.Context, state *domain.SyncState, err error, logger *slog.Logger) {
	s.ledger.RecordFailure(state, err)

	logger.Error("failed to reconcile fund",
		"attempts", state.SyncAttempts,
		"exhausted", s.ledger.Exhausted(*state),
		"error", err,
	)

	if saveErr := s.states.Save(ctx, state); saveErr != nil {
		logger.Error("failed to record sync error", "error", saveErr)
	}
}

// remoteChange lists the designation fields that differ from what the fund
// would push itself, so a designation the fund produced applies as a no-op.
func remoteChange(f *domain.Fund, d domain.Designation) domain.FundChange {
	var change domain.FundChange
	local := designationInput(f)

	if d.Name != "" && d.Name != *local.Name {
		name := d.Name
		change.Title = &name
	}

	if d.IsActive != nil {
		var target domain.FundStatus
		switch {
		case *d.IsActive && f.Status == domain.StatusDraft:
			target = domain.StatusPublished
		case !*d.IsActive && f.Status == domain.StatusPublished:
			target = domain.StatusDraft
		}
		if target != "" {
			change.Status = &target
		}
	}

	if d.Description != nil && *d.Description != "" {
		if local.Description == nil || *local.Description != *d.Description {
			desc := *d.Description
			change.Excerpt = &desc
		}
	}

	return change
}
