package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"fund_sync/internal/domain"
)

// FundStore reads funds owned by the host content system and writes the
// remote fields applied by a reconciliation pass.
type FundStore struct {
	db *sqlx.DB
}

func NewFundStore(db *sqlx.DB) *FundStore {
	return &FundStore{db: db}
}

const fundSelect = `
	SELECT f.id, f.title, f.excerpt, f.content, f.status, f.goal, f.custom_fields,
		f.published_at, f.modified_at,
		COALESCE(s.designation_id, '') AS designation_id,
		COALESCE(s.campaign_id, '') AS campaign_id,
		COALESCE(s.campaign_url, '') AS campaign_url,
		s.last_sync_at,
		COALESCE(s.last_sync_source, '') AS last_sync_source,
		COALESCE(s.last_poll_fingerprint, '') AS last_poll_fingerprint,
		COALESCE(s.sync_error, '') AS sync_error,
		COALESCE(s.sync_attempts, 0) AS sync_attempts,
		s.last_attempt_at
	FROM funds f
	LEFT JOIN fund_sync_state s ON s.fund_id = f.id`

type fundRow struct {
	domain.Fund
	domain.SyncState
	CustomFields []byte `db:"custom_fields"`
}

func (r fundRow) toDomain() (domain.Fund, error) {
	fund := r.Fund
	fund.Sync = r.SyncState
	fund.Sync.FundID = fund.ID
	fund.Fields = map[string]string{}
	if len(r.CustomFields) > 0 {
		if err := json.Unmarshal(r.CustomFields, &fund.Fields); err != nil {
			return domain.Fund{}, fmt.Errorf("decode custom fields of fund %d: %w", fund.ID, err)
		}
	}
	return fund, nil
}

func (s *FundStore) Get(ctx context.Context, id int64) (*domain.Fund, error) {
	var row fundRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, fundSelect+" WHERE f.id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFundNotFound
	}
	if err != nil {
		return nil, err
	}

	fund, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &fund, nil
}

// FindByDesignationID returns the ids of funds linked to designationID, by
// stored sync state or, when none is stored, by the manually entered custom
// field. Ordered by id.
func (s *FundStore) FindByDesignationID(ctx context.Context, designationID string) ([]int64, error) {
	query := `
		SELECT f.id
		FROM funds f
		LEFT JOIN fund_sync_state s ON s.fund_id = f.id
		WHERE s.designation_id = $1
			OR (COALESCE(s.designation_id, '') = '' AND f.custom_fields->>'gofundme_designation_id' = $1)
		ORDER BY f.id`

	var ids []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids, query, designationID)
	return ids, err
}

func (s *FundStore) List(ctx context.Context, filter domain.FundFilter) ([]domain.Fund, error) {
	var (
		where []string
		args  []interface{}
	)
	if len(filter.IDs) > 0 {
		args = append(args, pq.Array(filter.IDs))
		where = append(where, fmt.Sprintf("f.id = ANY($%d)", len(args)))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, st := range filter.Statuses {
			statuses[i] = string(st)
		}
		args = append(args, pq.Array(statuses))
		where = append(where, fmt.Sprintf("f.status = ANY($%d)", len(args)))
	}

	query := fundSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY f.id"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var rows []fundRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, err
	}

	funds := make([]domain.Fund, 0, len(rows))
	for _, row := range rows {
		fund, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		funds = append(funds, fund)
	}
	return funds, nil
}

// ApplyRemote writes the non-nil fields of change and stamps modified_at.
func (s *FundStore) ApplyRemote(ctx context.Context, id int64, change domain.FundChange, at time.Time) error {
	query := `
		UPDATE funds SET
			title = COALESCE($2, title),
			excerpt = COALESCE($3, excerpt),
			status = COALESCE($4, status),
			modified_at = $5
		WHERE id = $1`

	var status *string
	if change.Status != nil {
		st := string(*change.Status)
		status = &st
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, change.Title, change.Excerpt, status, at)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrFundNotFound
	}
	return nil
}
