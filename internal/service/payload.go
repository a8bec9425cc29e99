package service

import (
	"strconv"
	"time"

	"fund_sync/internal/domain"
)

const (
	maxNameLength        = 127
	maxDescriptionLength = 500
	maxOverviewLength    = 2000

	campaignType     = "crowdfunding"
	campaignCurrency = "USD"
)

func designationInput(f *domain.Fund) domain.DesignationInput {
	name := truncate(f.Title, maxNameLength)
	active := f.Status == domain.StatusPublished
	ref := strconv.FormatInt(f.ID, 10)

	in := domain.DesignationInput{
		Name:                &name,
		IsActive:            &active,
		ExternalReferenceID: &ref,
	}

	switch {
	case f.Excerpt != "":
		desc := f.Excerpt
		in.Description = &desc
	case f.Content != "":
		if desc := truncate(stripTags(f.Content), maxDescriptionLength); desc != "" {
			in.Description = &desc
		}
	}

	if g, ok := goal(f, 0); ok {
		in.Goal = &g
	}
	return in
}

// applyInput returns d as it reads after a successful write of in.
func applyInput(d domain.Designation, in domain.DesignationInput) domain.Designation {
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Description != nil {
		d.Description = in.Description
	}
	if in.IsActive != nil {
		d.IsActive = in.IsActive
	}
	if in.ExternalReferenceID != nil {
		d.ExternalReferenceID = *in.ExternalReferenceID
	}
	if in.Goal != nil {
		d.Goal = in.Goal
	}
	return d
}

func (t *Trigger) campaignInput(f *domain.Fund) domain.CampaignInput {
	g, _ := goal(f, t.config.DefaultGoal)

	in := domain.CampaignInput{
		Name:                truncate(f.Title, maxNameLength),
		Type:                campaignType,
		Goal:                &g,
		StartedAt:           t.startedAt(f),
		TimezoneIdentifier:  t.config.Timezone,
		ExternalReferenceID: strconv.FormatInt(f.ID, 10),
	}

	if content := stripTags(f.Content); content != "" {
		in.Overview = truncate(content, maxOverviewLength)
	} else if f.Excerpt != "" {
		in.Overview = f.Excerpt
	}
	return in
}

func (t *Trigger) campaignOverrides(in domain.CampaignInput) domain.CampaignOverrides {
	rawGoal := strconv.FormatFloat(t.config.DefaultGoal, 'f', -1, 64)
	if in.Goal != nil {
		rawGoal = strconv.FormatFloat(*in.Goal, 'f', -1, 64)
	}
	return domain.CampaignOverrides{
		Name:                in.Name,
		RawGoal:             rawGoal,
		RawCurrencyCode:     campaignCurrency,
		ExternalReferenceID: in.ExternalReferenceID,
		StartedAt:           in.StartedAt,
	}
}

func (t *Trigger) startedAt(f *domain.Fund) string {
	at := f.PublishedAt
	if at.IsZero() {
		at = t.now()
	}
	return at.Format(time.RFC3339)
}
