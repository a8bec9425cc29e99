package memory

import (
	"context"
	"slices"
	"time"

	"fund_sync/internal/domain"
)

type FundStore struct {
	s *Store
}

func (fs *FundStore) Get(_ context.Context, id int64) (*domain.Fund, error) {
	fs.s.mu.Lock()
	defer fs.s.mu.Unlock()

	f, ok := fs.s.fundLocked(id)
	if !ok {
		return nil, domain.ErrFundNotFound
	}
	return &f, nil
}

func (fs *FundStore) FindByDesignationID(_ context.Context, designationID string) ([]int64, error) {
	fs.s.mu.Lock()
	defer fs.s.mu.Unlock()

	var ids []int64
	for _, id := range fs.s.sortedFundIDs() {
		stored := fs.s.states[id].DesignationID
		manual := fs.s.funds[id].Fields["gofundme_designation_id"]
		if stored == designationID || (stored == "" && manual != "" && manual == designationID) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (fs *FundStore) List(_ context.Context, filter domain.FundFilter) ([]domain.Fund, error) {
	fs.s.mu.Lock()
	defer fs.s.mu.Unlock()

	var out []domain.Fund
	for _, id := range fs.s.sortedFundIDs() {
		if len(filter.IDs) > 0 && !slices.Contains(filter.IDs, id) {
			continue
		}
		f, _ := fs.s.fundLocked(id)
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, f.Status) {
			continue
		}
		out = append(out, f)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// ApplyRemote writes remote fields and, like any content save, fires the
// status change and save events.
func (fs *FundStore) ApplyRemote(ctx context.Context, id int64, change domain.FundChange, at time.Time) error {
	fs.s.mu.Lock()
	f, ok := fs.s.funds[id]
	if !ok {
		fs.s.mu.Unlock()
		return domain.ErrFundNotFound
	}

	prev := f.Status
	if change.Title != nil {
		f.Title = *change.Title
	}
	if change.Excerpt != nil {
		f.Excerpt = *change.Excerpt
	}
	if change.Status != nil {
		f.Status = *change.Status
	}
	f.ModifiedAt = at
	fs.s.funds[id] = f
	fs.s.mu.Unlock()

	var events []domain.FundEvent
	if prev != f.Status {
		events = append(events, domain.FundEvent{
			Type: domain.EventStatusChanged, FundID: id, OldStatus: prev, NewStatus: f.Status,
		})
	}
	events = append(events, domain.FundEvent{Type: domain.EventSaved, FundID: id})
	fs.s.emit(ctx, events...)
	return nil
}
