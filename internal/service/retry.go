package service

import (
	"context"
	"fmt"

	"fund_sync/internal/domain"
)

type RetryOptions struct {
	// Force retries funds the ledger would defer, including exhausted ones.
	Force bool
	// Clear resets error state without retrying.
	Clear bool
}

// RetryErrored re-attempts or clears every fund holding a sync error.
func (s *SyncService) RetryErrored(ctx context.Context, opts RetryOptions) (*domain.RetryStats, error) {
	release, err := s.beginPass(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	states, err := s.states.ListErrored(ctx)
	if err != nil {
		return nil, fmt.Errorf("list errored funds: %w", err)
	}

	stats := &domain.RetryStats{Errored: len(states)}

	for i := range states {
		state := states[i]
		logger := s.logger.With("fund_id", state.FundID)

		if opts.Clear {
			s.ledger.Clear(&state)
			if err := s.states.Save(ctx, &state); err != nil {
				return stats, fmt.Errorf("clear fund %d: %w", state.FundID, err)
			}
			stats.Cleared++
			logger.Info("cleared sync error")
			continue
		}

		if !opts.Force && !s.ledger.ShouldRetry(state) {
			stats.Skipped++
			continue
		}

		stats.Retried++
		pass, err := s.reconcileOne(ctx, state.FundID, true)
		if err != nil || pass.Errors > 0 {
			stats.Failed++
			logger.Warn("retry failed", "error", err)
			continue
		}
		stats.Succeeded++
	}

	s.logger.Info("retry completed",
		"errored", stats.Errored,
		"cleared", stats.Cleared,
		"retried", stats.Retried,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"skipped", stats.Skipped,
	)

	return stats, nil
}
