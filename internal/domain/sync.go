package domain

import "time"

// PassStats holds statistics about a reconciliation pass.
// Skipped is the sum of Unchanged, Conflicts and Deferred.
type PassStats struct {
	Processed int
	Updated   int
	Skipped   int
	Orphaned  int
	Errors    int
	Retried   int

	Unchanged int
	Conflicts int
	Deferred  int
	Ambiguous int

	DryRun   bool
	Duration time.Duration
}

type ConflictEntry struct {
	ID            string    `db:"id" json:"id"`
	Timestamp     time.Time `db:"occurred_at" json:"timestamp"`
	FundID        int64     `db:"fund_id" json:"fund_id"`
	DesignationID string    `db:"designation_id" json:"designation_id"`
	Reason        string    `db:"reason" json:"reason"`
	LocalTitle    string    `db:"local_title" json:"local_title"`
	RemoteTitle   string    `db:"remote_title" json:"remote_title"`
}

type TemplateStatus string

const (
	TemplateUnset   TemplateStatus = ""
	TemplateValid   TemplateStatus = "valid"
	TemplatePending TemplateStatus = "pending"
	TemplateInvalid TemplateStatus = "invalid"
)

// GlobalState is the single-row state shared by all passes.
type GlobalState struct {
	LastPollAt     *time.Time     `db:"last_poll_at"`
	TemplateName   string         `db:"template_name"`
	TemplateStatus TemplateStatus `db:"template_status"`
}

type PushStats struct {
	Considered int
	Created    int
	Updated    int
	Skipped    int
	Errors     int
	DryRun     bool
}

type RetryStats struct {
	Errored   int
	Cleared   int
	Retried   int
	Succeeded int
	Failed    int
	Skipped   int
}

type Indicator string

const (
	IndicatorNotLinked Indicator = "not_linked"
	IndicatorManual    Indicator = "manual"
	IndicatorError     Indicator = "error"
	IndicatorSynced    Indicator = "synced"
	IndicatorPending   Indicator = "pending"
)

type FundStatusRow struct {
	Fund      Fund
	Indicator Indicator
}

type StatusReport struct {
	Rows           []FundStatusRow
	Errors         int
	Manual         int
	LastPollAt     *time.Time
	TemplateName   string
	TemplateStatus TemplateStatus
}
