package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"fund_sync/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

const syncStateColumns = `fund_id, designation_id, campaign_id, campaign_url, last_sync_at,
	last_sync_source, last_poll_fingerprint, sync_error, sync_attempts, last_attempt_at`

func (s *SyncStateStore) Get(ctx context.Context, fundID int64) (*domain.SyncState, error) {
	var state domain.SyncState
	query := `SELECT ` + syncStateColumns + ` FROM fund_sync_state WHERE fund_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, fundID)
	if errors.Is(err, sql.ErrNoRows) {
		// Unlinked funds have no row yet.
		return &domain.SyncState{FundID: fundID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SyncStateStore) Save(ctx context.Context, state *domain.SyncState) error {
	query := `
		INSERT INTO fund_sync_state (` + syncStateColumns + `)
		VALUES (:fund_id, :designation_id, :campaign_id, :campaign_url, :last_sync_at,
			:last_sync_source, :last_poll_fingerprint, :sync_error, :sync_attempts, :last_attempt_at)
		ON CONFLICT (fund_id) DO UPDATE SET
			designation_id = EXCLUDED.designation_id,
			campaign_id = EXCLUDED.campaign_id,
			campaign_url = EXCLUDED.campaign_url,
			last_sync_at = EXCLUDED.last_sync_at,
			last_sync_source = EXCLUDED.last_sync_source,
			last_poll_fingerprint = EXCLUDED.last_poll_fingerprint,
			sync_error = EXCLUDED.sync_error,
			sync_attempts = EXCLUDED.sync_attempts,
			last_attempt_at = EXCLUDED.last_attempt_at`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, state)
	return err
}

func (s *SyncStateStore) Delete(ctx context.Context, fundID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM fund_sync_state WHERE fund_id = $1`, fundID)
	return err
}

// ListErrored returns every state carrying a sync error, ordered by fund id.
func (s *SyncStateStore) ListErrored(ctx context.Context) ([]domain.SyncState, error) {
	query := `SELECT ` + syncStateColumns + ` FROM fund_sync_state WHERE sync_error <> '' ORDER BY fund_id`

	var states []domain.SyncState
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &states, query)
	return states, err
}

func (s *SyncStateStore) GetGlobal(ctx context.Context) (*domain.GlobalState, error) {
	var global domain.GlobalState
	query := `SELECT last_poll_at, template_name, template_status FROM sync_globals WHERE id = 1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &global, query)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.GlobalState{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &global, nil
}

func (s *SyncStateStore) SetLastPollAt(ctx context.Context, at time.Time) error {
	query := `
		INSERT INTO sync_globals (id, last_poll_at) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET last_poll_at = EXCLUDED.last_poll_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, at)
	return err
}

func (s *SyncStateStore) SetTemplateStatus(ctx context.Context, name string, status domain.TemplateStatus) error {
	query := `
		INSERT INTO sync_globals (id, template_name, template_status) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			template_name = EXCLUDED.template_name,
			template_status = EXCLUDED.template_status`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, name, string(status))
	return err
}
