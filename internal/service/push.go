package service

import (
	"context"
	"fmt"

	"fund_sync/internal/domain"
)

type PushOptions struct {
	DryRun bool
	// Update also pushes funds that already have a designation.
	Update  bool
	Limit   int
	FundIDs []int64
}

// Push propagates funds outbound in bulk. Without explicit ids only
// published funds are considered.
func (t *Trigger) Push(ctx context.Context, opts PushOptions) (*domain.PushStats, error) {
	filter := domain.FundFilter{IDs: opts.FundIDs, Limit: opts.Limit}
	if len(opts.FundIDs) == 0 {
		filter.Statuses = []domain.FundStatus{domain.StatusPublished}
	}

	funds, err := t.funds.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list funds: %w", err)
	}

	stats := &domain.PushStats{DryRun: opts.DryRun}

	for i := range funds {
		fund := &funds[i]
		stats.Considered++

		_, linked := designationID(fund)
		switch {
		case fund.Status == domain.StatusTrashed,
			linked && !opts.Update,
			!linked && fund.Status != domain.StatusPublished:
			stats.Skipped++
			continue
		}

		if opts.DryRun {
			if linked {
				stats.Updated++
			} else {
				stats.Created++
			}
			t.logger.Info("would push fund", "fund_id", fund.ID, "linked", linked)
			continue
		}

		action, err := t.syncDesignation(ctx, fund)
		if err != nil {
			stats.Errors++
			t.remoteFailed(fund, "push designation", err)
			continue
		}

		switch action {
		case designationCreated:
			stats.Created++
		case designationUpdated:
			stats.Updated++
		default:
			stats.Skipped++
		}

		if campaignSyncEnabled(fund) {
			if err := t.syncCampaign(ctx, fund); err != nil {
				t.remoteFailed(fund, "push campaign", err)
			}
		}
	}

	t.logger.Info("push completed",
		"considered", stats.Considered,
		"created", stats.Created,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"dry_run", stats.DryRun,
	)

	return stats, nil
}
