package domain

import (
	"errors"
	"time"
)

var ErrFundNotFound = errors.New("fund not found")

type FundStatus string

const (
	StatusDraft     FundStatus = "draft"
	StatusPublished FundStatus = "published"
	StatusTrashed   FundStatus = "trashed"
)

// Fund is the local content record kept in sync with a remote designation
// and campaign. Sync holds the state owned by this service.
type Fund struct {
	ID          int64             `db:"id"`
	Title       string            `db:"title"`
	Excerpt     string            `db:"excerpt"`
	Content     string            `db:"content"`
	Status      FundStatus        `db:"status"`
	Goal        *float64          `db:"goal"`
	Fields      map[string]string `db:"-"`
	PublishedAt time.Time         `db:"published_at"`
	ModifiedAt  time.Time         `db:"modified_at"`
	Sync        SyncState         `db:"-"`
}

type SyncSource string

const (
	SourceLocal  SyncSource = "local"
	SourceRemote SyncSource = "remote"
)

type SyncState struct {
	FundID              int64      `db:"fund_id"`
	DesignationID       string     `db:"designation_id"`
	CampaignID          string     `db:"campaign_id"`
	CampaignURL         string     `db:"campaign_url"`
	LastSyncAt          *time.Time `db:"last_sync_at"`
	LastSyncSource      SyncSource `db:"last_sync_source"`
	LastPollFingerprint string     `db:"last_poll_fingerprint"`
	SyncError           string     `db:"sync_error"`
	SyncAttempts        int        `db:"sync_attempts"`
	LastAttemptAt       *time.Time `db:"last_attempt_at"`
}

func (s SyncState) HasError() bool {
	return s.SyncError != ""
}

// MarkSynced records a confirmed write or apply. LastSyncAt never moves backward.
func (s *SyncState) MarkSynced(at time.Time, source SyncSource) {
	if s.LastSyncAt == nil || at.After(*s.LastSyncAt) {
		t := at
		s.LastSyncAt = &t
	}
	s.LastSyncSource = source
	s.SyncError = ""
	s.SyncAttempts = 0
	s.LastAttemptAt = nil
}

// FundChange carries the remote fields to write onto a fund. Nil means untouched.
type FundChange struct {
	Title   *string
	Excerpt *string
	Status  *FundStatus
}

func (c FundChange) IsEmpty() bool {
	return c.Title == nil && c.Excerpt == nil && c.Status == nil
}

type FundFilter struct {
	IDs      []int64
	Statuses []FundStatus
	Limit    int
}
