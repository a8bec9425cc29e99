package service

import "fund_sync/internal/domain"

const reasonLocalModified = "local modified after last sync"

type Verdict struct {
	Accept bool
	Reason string
}

// Arbitrate decides whether a remote designation may overwrite the fund.
// A fund edited after its last confirmed sync always wins.
func Arbitrate(f *domain.Fund) Verdict {
	if f.Sync.LastSyncAt == nil {
		return Verdict{Accept: true}
	}
	if f.ModifiedAt.After(*f.Sync.LastSyncAt) {
		return Verdict{Reason: reasonLocalModified}
	}
	return Verdict{Accept: true}
}
