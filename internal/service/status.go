package service

import (
	"context"
	"fmt"

	"fund_sync/internal/domain"
)

// Status reports the sync indicator of every live fund.
func (s *SyncService) Status(ctx context.Context) (*domain.StatusReport, error) {
	funds, err := s.funds.List(ctx, domain.FundFilter{
		Statuses: []domain.FundStatus{domain.StatusPublished, domain.StatusDraft},
	})
	if err != nil {
		return nil, fmt.Errorf("list funds: %w", err)
	}

	global, err := s.states.GetGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("get global state: %w", err)
	}

	report := &domain.StatusReport{
		Rows:           make([]domain.FundStatusRow, 0, len(funds)),
		LastPollAt:     global.LastPollAt,
		TemplateName:   global.TemplateName,
		TemplateStatus: global.TemplateStatus,
	}

	for i := range funds {
		indicator := s.indicator(&funds[i])
		switch indicator {
		case domain.IndicatorManual:
			report.Manual++
			report.Errors++
		case domain.IndicatorError:
			report.Errors++
		}
		report.Rows = append(report.Rows, domain.FundStatusRow{Fund: funds[i], Indicator: indicator})
	}

	return report, nil
}

func (s *SyncService) indicator(f *domain.Fund) domain.Indicator {
	if _, ok := designationID(f); !ok {
		return domain.IndicatorNotLinked
	}
	if f.Sync.HasError() {
		if s.ledger.Exhausted(f.Sync) {
			return domain.IndicatorManual
		}
		return domain.IndicatorError
	}
	if f.Sync.LastSyncAt != nil && s.now().Sub(*f.Sync.LastSyncAt) < s.config.SyncedWindow {
		return domain.IndicatorSynced
	}
	return domain.IndicatorPending
}

// Conflicts returns up to limit conflict log entries, oldest first.
func (s *SyncService) Conflicts(ctx context.Context, limit int) ([]domain.ConflictEntry, error) {
	entries, err := s.conflicts.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read conflict log: %w", err)
	}
	return entries, nil
}
