package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fund_sync/internal/domain"
)

// ConflictLog is a bounded, append-only record of rejected inbound changes.
type ConflictLog struct {
	db *sqlx.DB
}

func NewConflictLog(db *sqlx.DB) *ConflictLog {
	return &ConflictLog{db: db}
}

// Append stores entry and evicts the oldest rows beyond maxEntries.
func (l *ConflictLog) Append(ctx context.Context, entry domain.ConflictEntry, maxEntries int) error {
	exec := GetExecutor(ctx, l.db)

	insert := `
		INSERT INTO conflict_log (id, occurred_at, fund_id, designation_id, reason, local_title, remote_title)
		VALUES (:id, :occurred_at, :fund_id, :designation_id, :reason, :local_title, :remote_title)`
	if _, err := sqlx.NamedExecContext(ctx, exec, insert, entry); err != nil {
		return err
	}

	if maxEntries <= 0 {
		return nil
	}

	trim := `
		DELETE FROM conflict_log
		WHERE seq NOT IN (
			SELECT seq FROM conflict_log ORDER BY seq DESC LIMIT $1
		)`
	_, err := exec.ExecContext(ctx, trim, maxEntries)
	return err
}

// Recent returns up to limit entries, oldest first.
func (l *ConflictLog) Recent(ctx context.Context, limit int) ([]domain.ConflictEntry, error) {
	query := `
		SELECT id, occurred_at, fund_id, designation_id, reason, local_title, remote_title
		FROM (
			SELECT * FROM conflict_log ORDER BY seq DESC LIMIT $1
		) recent
		ORDER BY seq`

	if limit <= 0 {
		limit = 100
	}

	var entries []domain.ConflictEntry
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, l.db), &entries, query, limit)
	return entries, err
}
