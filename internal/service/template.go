package service

import (
	"context"
	"fmt"

	"fund_sync/internal/domain"
	"fund_sync/internal/remote"
)

// ValidateTemplate checks that the configured template campaign exists.
// Connectivity failures leave the template pending; the caller schedules a
// single RecheckTemplate after the configured delay.
func (s *SyncService) ValidateTemplate(ctx context.Context) (domain.TemplateStatus, error) {
	return s.checkTemplate(ctx, false)
}

// RecheckTemplate settles a pending template: any failure is final.
func (s *SyncService) RecheckTemplate(ctx context.Context) (domain.TemplateStatus, error) {
	return s.checkTemplate(ctx, true)
}

func (s *SyncService) checkTemplate(ctx context.Context, final bool) (domain.TemplateStatus, error) {
	id := s.config.TemplateCampaignID
	if id == "" {
		if err := s.states.SetTemplateStatus(ctx, "", domain.TemplateUnset); err != nil {
			return domain.TemplateUnset, fmt.Errorf("save template status: %w", err)
		}
		return domain.TemplateUnset, nil
	}

	logger := s.logger.With("template_campaign_id", id)

	var (
		name   string
		status domain.TemplateStatus
	)

	campaign, err := s.remote.GetCampaign(ctx, id)
	switch {
	case err == nil:
		name = campaign.Name
		status = domain.TemplateValid
		logger.Info("template campaign valid", "name", name)
	case !final && remote.IsRetryable(err):
		status = domain.TemplatePending
		logger.Warn("template campaign check deferred", "error", err)
	default:
		status = domain.TemplateInvalid
		logger.Error("template campaign invalid", "error", err)
	}

	if err := s.states.SetTemplateStatus(ctx, name, status); err != nil {
		return status, fmt.Errorf("save template status: %w", err)
	}
	return status, nil
}
