package domain

type FundEventType string

const (
	EventSaved         FundEventType = "saved"
	EventTrashed       FundEventType = "trashed"
	EventRestored      FundEventType = "restored"
	EventDeleted       FundEventType = "deleted"
	EventStatusChanged FundEventType = "status_changed"
)

// FundEvent is a lifecycle notification emitted by the host content system.
type FundEvent struct {
	Type      FundEventType `json:"type"`
	FundID    int64         `json:"fund_id"`
	OldStatus FundStatus    `json:"old_status,omitempty"`
	NewStatus FundStatus    `json:"new_status,omitempty"`
}
