package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// LeaseStore keeps short-lived named locks with an owner and expiry, shared
// by every process pointed at the same database. Expiry uses database time.
type LeaseStore struct {
	db *sqlx.DB
}

func NewLeaseStore(db *sqlx.DB) *LeaseStore {
	return &LeaseStore{db: db}
}

// Acquire takes key for owner unless another owner holds an unexpired lease.
func (s *LeaseStore) Acquire(ctx context.Context, key, owner string, ttl time.Duration) (bool, error) {
	query := `
		INSERT INTO leases (key, owner, expires_at)
		VALUES ($1, $2, now() + $3 * interval '1 millisecond')
		ON CONFLICT (key) DO UPDATE SET
			owner = EXCLUDED.owner,
			expires_at = EXCLUDED.expires_at
		WHERE leases.expires_at <= now() OR leases.owner = EXCLUDED.owner
		RETURNING owner`

	var got string
	err := sqlx.GetContext(ctx, s.db, &got, query, key, owner, ttl.Milliseconds())
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return got == owner, nil
}

// Release drops key only if owner still holds it.
func (s *LeaseStore) Release(ctx context.Context, key, owner string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM leases WHERE key = $1 AND owner = $2`, key, owner)
	return err
}

func (s *LeaseStore) Held(ctx context.Context, key string) (bool, error) {
	var held bool
	err := sqlx.GetContext(ctx, s.db, &held,
		`SELECT EXISTS (SELECT 1 FROM leases WHERE key = $1 AND expires_at > now())`, key)
	return held, err
}
