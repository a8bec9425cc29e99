package domain

// Designation is the remote donation bucket linked to a fund.
type Designation struct {
	ID                  string
	Name                string
	Description         *string
	IsActive            *bool
	ExternalReferenceID string
	Goal                *float64
}

// DesignationInput is a partial designation write; nil fields are omitted.
type DesignationInput struct {
	Name                *string  `json:"name,omitempty"`
	Description         *string  `json:"description,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
	ExternalReferenceID *string  `json:"external_reference_id,omitempty"`
	Goal                *float64 `json:"goal,omitempty"`
}

type CampaignStatus string

const (
	CampaignActive      CampaignStatus = "active"
	CampaignUnpublished CampaignStatus = "unpublished"
	CampaignDeactivated CampaignStatus = "deactivated"
)

type Campaign struct {
	ID                  string
	Status              CampaignStatus
	Name                string
	Goal                *float64
	Overview            string
	ExternalReferenceID string
	CanonicalURL        string
}

type CampaignInput struct {
	Name                string   `json:"name,omitempty"`
	Type                string   `json:"type,omitempty"`
	Goal                *float64 `json:"goal,omitempty"`
	StartedAt           string   `json:"started_at,omitempty"`
	TimezoneIdentifier  string   `json:"timezone_identifier,omitempty"`
	ExternalReferenceID string   `json:"external_reference_id,omitempty"`
	Overview            string   `json:"overview,omitempty"`
}

// CampaignOverrides are the fields accepted when duplicating a template campaign.
type CampaignOverrides struct {
	Name                string `json:"name"`
	RawGoal             string `json:"raw_goal"`
	RawCurrencyCode     string `json:"raw_currency_code"`
	ExternalReferenceID string `json:"external_reference_id"`
	StartedAt           string `json:"started_at,omitempty"`
}
