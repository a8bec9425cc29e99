package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fund_sync/internal/domain"
)

type Match struct {
	Fund *domain.Fund
	// ByReference is set when the external reference id matched directly.
	ByReference bool
	// Ambiguous is set when several funds store the same designation id.
	Ambiguous bool
}

func (m Match) Found() bool {
	return m.Fund != nil
}

// MatchResolver finds the fund a remote designation belongs to.
type MatchResolver struct {
	funds  FundStore
	logger *slog.Logger
}

func NewMatchResolver(funds FundStore, logger *slog.Logger) *MatchResolver {
	return &MatchResolver{funds: funds, logger: logger}
}

// Resolve tries the external reference id first, then the stored
// designation link. A designation matching neither is an orphan and yields
// an empty Match.
func (r *MatchResolver) Resolve(ctx context.Context, d domain.Designation) (Match, error) {
	if id, ok := parseReference(d.ExternalReferenceID); ok {
		fund, err := r.funds.Get(ctx, id)
		if err == nil {
			return Match{Fund: fund, ByReference: true}, nil
		}
		if !errors.Is(err, domain.ErrFundNotFound) {
			return Match{}, fmt.Errorf("get fund %d: %w", id, err)
		}
	}

	ids, err := r.funds.FindByDesignationID(ctx, d.ID)
	if err != nil {
		return Match{}, fmt.Errorf("find funds by designation: %w", err)
	}
	if len(ids) == 0 {
		return Match{}, nil
	}

	id := ids[0]
	for _, other := range ids[1:] {
		if other < id {
			id = other
		}
	}

	fund, err := r.funds.Get(ctx, id)
	if errors.Is(err, domain.ErrFundNotFound) {
		return Match{}, nil
	}
	if err != nil {
		return Match{}, fmt.Errorf("get fund %d: %w", id, err)
	}

	match := Match{Fund: fund, Ambiguous: len(ids) > 1}
	if match.Ambiguous {
		r.logger.Warn("designation linked to several funds",
			"designation_id", d.ID,
			"fund_ids", ids,
			"chosen", id,
		)
	}
	return match, nil
}

func parseReference(ref string) (int64, bool) {
	id, err := strconv.ParseInt(ref, 10, 64)
	return id, err == nil && id > 0
}
