package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fund_sync/internal/config"
	"fund_sync/internal/domain"
	"fund_sync/internal/fingerprint"
)

var ErrUnknownEvent = errors.New("unknown fund event type")

// Trigger pushes local fund lifecycle changes straight to the platform.
// Remote failures are logged and never returned: the local change that
// fired the event stands regardless. Handlers return only local store
// errors.
type Trigger struct {
	funds  FundStore
	states SyncStateStore
	leases LeaseStore
	remote RemoteClient
	logger *slog.Logger
	config config.SyncConfig
	now    func() time.Time
}

func NewTrigger(
	funds FundStore,
	states SyncStateStore,
	leases LeaseStore,
	remote RemoteClient,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *Trigger {
	return &Trigger{
		funds:  funds,
		states: states,
		leases: leases,
		remote: remote,
		logger: logger.With("component", "trigger"),
		config: cfg,
		now:    time.Now,
	}
}

func (t *Trigger) Dispatch(ctx context.Context, ev domain.FundEvent) error {
	switch ev.Type {
	case domain.EventSaved:
		return t.OnSave(ctx, ev.FundID)
	case domain.EventTrashed:
		return t.OnTrash(ctx, ev.FundID)
	case domain.EventRestored:
		return t.OnRestore(ctx, ev.FundID)
	case domain.EventDeleted:
		return t.OnDelete(ctx, ev.FundID)
	case domain.EventStatusChanged:
		return t.OnStatusChange(ctx, ev.FundID, ev.OldStatus, ev.NewStatus)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// OnSave creates or updates the designation and campaign of a fund. Only
// published funds get new remote records.
func (t *Trigger) OnSave(ctx context.Context, fundID int64) error {
	fund, err := t.begin(ctx, "save", fundID)
	if fund == nil || err != nil {
		return err
	}
	if fund.Status == domain.StatusTrashed {
		return nil
	}

	if _, err := t.syncDesignation(ctx, fund); err != nil {
		t.remoteFailed(fund, "sync designation", err)
	}

	if campaignSyncEnabled(fund) {
		if err := t.syncCampaign(ctx, fund); err != nil {
			t.remoteFailed(fund, "sync campaign", err)
		}
	}
	return nil
}

// OnTrash deactivates the designation and campaign; nothing is deleted.
func (t *Trigger) OnTrash(ctx context.Context, fundID int64) error {
	fund, err := t.begin(ctx, "trash", fundID)
	if fund == nil || err != nil {
		return err
	}

	id, ok := designationID(fund)
	if !ok {
		return nil
	}

	if err := t.writeDesignation(ctx, fund, id, activeInput(false)); err != nil {
		t.remoteFailed(fund, "deactivate designation", err)
	}

	if cid, ok := campaignID(fund); ok {
		if err := t.remote.DeactivateCampaign(ctx, cid); err != nil {
			t.remoteFailed(fund, "deactivate campaign", err)
		} else {
			t.logger.Info("deactivated campaign", "fund_id", fund.ID, "campaign_id", cid)
		}
	}
	return nil
}

// OnRestore reactivates the designation, then moves the campaign back
// through reactivate, publish and a data refresh. Each campaign step runs
// even when an earlier one failed.
func (t *Trigger) OnRestore(ctx context.Context, fundID int64) error {
	fund, err := t.begin(ctx, "restore", fundID)
	if fund == nil || err != nil {
		return err
	}

	id, ok := designationID(fund)
	if !ok {
		return nil
	}

	if err := t.writeDesignation(ctx, fund, id, activeInput(true)); err != nil {
		t.remoteFailed(fund, "reactivate designation", err)
	}

	cid, ok := campaignID(fund)
	if !ok || !campaignSyncEnabled(fund) {
		return nil
	}

	if err := t.remote.ReactivateCampaign(ctx, cid); err != nil {
		t.remoteFailed(fund, "reactivate campaign", err)
	}
	if err := t.remote.PublishCampaign(ctx, cid); err != nil {
		t.remoteFailed(fund, "publish campaign", err)
	}
	if err := t.updateCampaign(ctx, fund, cid, t.campaignInput(fund)); err != nil {
		t.remoteFailed(fund, "refresh campaign", err)
	}
	return nil
}

// OnDelete removes the designation but only deactivates the campaign so
// its donation history survives. The fund may already be gone locally.
func (t *Trigger) OnDelete(ctx context.Context, fundID int64) error {
	if skip, err := t.suppressed(ctx, "delete", fundID); skip || err != nil {
		return err
	}

	fund, err := t.funds.Get(ctx, fundID)
	switch {
	case errors.Is(err, domain.ErrFundNotFound):
		state, err := t.states.Get(ctx, fundID)
		if err != nil {
			return fmt.Errorf("get sync state: %w", err)
		}
		fund = &domain.Fund{ID: fundID, Sync: *state}
	case err != nil:
		return fmt.Errorf("get fund: %w", err)
	}

	if id, ok := designationID(fund); ok {
		if err := t.remote.DeleteDesignation(ctx, id); err != nil {
			t.remoteFailed(fund, "delete designation", err)
		} else {
			t.logger.Info("deleted designation", "fund_id", fund.ID, "designation_id", id)
		}
	}

	if cid, ok := campaignID(fund); ok {
		if err := t.remote.DeactivateCampaign(ctx, cid); err != nil {
			t.remoteFailed(fund, "deactivate campaign", err)
		} else {
			t.logger.Info("deactivated campaign", "fund_id", fund.ID, "campaign_id", cid)
		}
	}

	if err := t.states.Delete(ctx, fundID); err != nil {
		return fmt.Errorf("delete sync state: %w", err)
	}
	return nil
}

// OnStatusChange mirrors a status transition onto a linked fund. Becoming
// published refreshes the whole campaign; leaving published deactivates it.
func (t *Trigger) OnStatusChange(ctx context.Context, fundID int64, from, to domain.FundStatus) error {
	if from != "" && from == to {
		return nil
	}

	fund, err := t.begin(ctx, "status_change", fundID)
	if fund == nil || err != nil {
		return err
	}
	if to == "" {
		to = fund.Status
	}

	id, ok := designationID(fund)
	if !ok {
		// Creation, if any, happens on save.
		return nil
	}

	active := to == domain.StatusPublished
	if err := t.writeDesignation(ctx, fund, id, activeInput(active)); err != nil {
		t.remoteFailed(fund, "toggle designation", err)
	}

	cid, ok := campaignID(fund)
	if !ok || !campaignSyncEnabled(fund) {
		return nil
	}

	if active {
		if err := t.updateCampaign(ctx, fund, cid, t.campaignInput(fund)); err != nil {
			t.remoteFailed(fund, "refresh campaign", err)
		}
	} else if err := t.remote.DeactivateCampaign(ctx, cid); err != nil {
		t.remoteFailed(fund, "deactivate campaign", err)
	}
	return nil
}

// begin loads the fund unless an inbound apply is running. A nil fund with
// a nil error means there is nothing to do.
func (t *Trigger) begin(ctx context.Context, event string, fundID int64) (*domain.Fund, error) {
	if skip, err := t.suppressed(ctx, event, fundID); skip || err != nil {
		return nil, err
	}

	fund, err := t.funds.Get(ctx, fundID)
	if errors.Is(err, domain.ErrFundNotFound) {
		t.logger.Debug("fund not found", "event", event, "fund_id", fundID)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get fund: %w", err)
	}
	return fund, nil
}

func (t *Trigger) suppressed(ctx context.Context, event string, fundID int64) (bool, error) {
	held, err := t.leases.Held(ctx, inboundLeaseKey)
	if err != nil {
		return false, fmt.Errorf("check inbound flag: %w", err)
	}
	if held {
		t.logger.Debug("ignoring event during inbound apply", "event", event, "fund_id", fundID)
	}
	return held, nil
}

func (t *Trigger) remoteFailed(fund *domain.Fund, op string, err error) {
	t.logger.Error("outbound sync failed",
		"op", op,
		"fund_id", fund.ID,
		"designation_id", fund.Sync.DesignationID,
		"campaign_id", fund.Sync.CampaignID,
		"error", err,
	)
}

type designationAction int

const (
	designationSkipped designationAction = iota
	designationCreated
	designationUpdated
)

func (t *Trigger) syncDesignation(ctx context.Context, fund *domain.Fund) (designationAction, error) {
	in := designationInput(fund)

	if id, ok := designationID(fund); ok {
		if err := t.writeDesignation(ctx, fund, id, in); err != nil {
			return designationSkipped, err
		}
		return designationUpdated, nil
	}

	if fund.Status != domain.StatusPublished {
		return designationSkipped, nil
	}
	return t.createDesignation(ctx, fund, in)
}

// createDesignation holds the per-fund creation lease so concurrent saves
// create at most one designation. Losing the lease is not an error.
func (t *Trigger) createDesignation(ctx context.Context, fund *domain.Fund, in domain.DesignationInput) (designationAction, error) {
	release, ok, err := acquireLease(ctx, t.leases, creatingDesignationKey(fund.ID), t.config.CreationLockTTL)
	if err != nil {
		return designationSkipped, err
	}
	if !ok {
		t.logger.Info("designation creation already in progress", "fund_id", fund.ID)
		return designationSkipped, nil
	}
	defer release()

	state, err := t.states.Get(ctx, fund.ID)
	if err != nil {
		return designationSkipped, fmt.Errorf("get sync state: %w", err)
	}
	if state.DesignationID != "" {
		fund.Sync = *state
		return designationUpdated, t.writeDesignation(ctx, fund, state.DesignationID, in)
	}

	created, err := t.remote.CreateDesignation(ctx, in)
	if err != nil {
		return designationSkipped, fmt.Errorf("create designation: %w", err)
	}

	err = t.saveState(ctx, fund, func(s *domain.SyncState) {
		s.DesignationID = created.ID
		s.LastPollFingerprint = fingerprint.Designation(*created)
	})
	if err != nil {
		return designationCreated, err
	}

	t.logger.Info("created designation", "fund_id", fund.ID, "designation_id", created.ID)
	return designationCreated, nil
}

// writeDesignation updates a designation and marks the fund synced. When
// the platform echoes the record its fingerprint is stored, so the next
// pass sees it as unchanged.
func (t *Trigger) writeDesignation(ctx context.Context, fund *domain.Fund, id string, in domain.DesignationInput) error {
	updated, err := t.remote.UpdateDesignation(ctx, id, in)
	if err != nil {
		return fmt.Errorf("update designation %s: %w", id, err)
	}

	err = t.saveState(ctx, fund, func(s *domain.SyncState) {
		s.DesignationID = id
		if updated != nil {
			s.LastPollFingerprint = fingerprint.Designation(*updated)
		}
	})
	if err != nil {
		return err
	}

	t.logger.Info("updated designation", "fund_id", fund.ID, "designation_id", id)
	return nil
}

func (t *Trigger) syncCampaign(ctx context.Context, fund *domain.Fund) error {
	in := t.campaignInput(fund)

	if cid, ok := campaignID(fund); ok {
		return t.updateCampaign(ctx, fund, cid, in)
	}
	if fund.Status != domain.StatusPublished {
		return nil
	}
	return t.createCampaign(ctx, fund, in)
}

// createCampaign duplicates the template campaign, then sets the overview
// and publishes. The follow-up calls are logged on failure and do not undo
// the creation.
func (t *Trigger) createCampaign(ctx context.Context, fund *domain.Fund, in domain.CampaignInput) error {
	templateID := t.config.TemplateCampaignID
	if templateID == "" {
		return ErrTemplateNotConfigured
	}

	release, ok, err := acquireLease(ctx, t.leases, creatingCampaignKey(fund.ID), t.config.CreationLockTTL)
	if err != nil {
		return err
	}
	if !ok {
		t.logger.Info("campaign creation already in progress", "fund_id", fund.ID)
		return nil
	}
	defer release()

	state, err := t.states.Get(ctx, fund.ID)
	if err != nil {
		return fmt.Errorf("get sync state: %w", err)
	}
	if state.CampaignID != "" {
		return t.updateCampaign(ctx, fund, state.CampaignID, in)
	}

	campaign, err := t.remote.DuplicateCampaign(ctx, templateID, t.campaignOverrides(in))
	if err != nil {
		return fmt.Errorf("duplicate template campaign: %w", err)
	}

	logger := t.logger.With("fund_id", fund.ID, "campaign_id", campaign.ID)

	if in.Overview != "" {
		if _, err := t.remote.UpdateCampaign(ctx, campaign.ID, domain.CampaignInput{Overview: in.Overview}); err != nil {
			logger.Warn("could not set campaign overview", "error", err)
		}
	}

	if err := t.remote.PublishCampaign(ctx, campaign.ID); err != nil {
		logger.Warn("could not publish campaign", "error", err)
	}

	err = t.saveState(ctx, fund, func(s *domain.SyncState) {
		s.CampaignID = campaign.ID
		s.CampaignURL = campaign.CanonicalURL
	})
	if err != nil {
		return err
	}

	logger.Info("created campaign from template", "template_campaign_id", templateID)
	return nil
}

func (t *Trigger) updateCampaign(ctx context.Context, fund *domain.Fund, cid string, in domain.CampaignInput) error {
	updated, err := t.remote.UpdateCampaign(ctx, cid, in)
	if err != nil {
		return fmt.Errorf("update campaign %s: %w", cid, err)
	}

	err = t.saveState(ctx, fund, func(s *domain.SyncState) {
		s.CampaignID = cid
		if updated != nil && updated.CanonicalURL != "" {
			s.CampaignURL = updated.CanonicalURL
		}
	})
	if err != nil {
		return err
	}

	t.logger.Info("updated campaign", "fund_id", fund.ID, "campaign_id", cid)
	return nil
}

// saveState applies mutate to the stored state of fund, marks it synced
// from the local side and saves it.
func (t *Trigger) saveState(ctx context.Context, fund *domain.Fund, mutate func(*domain.SyncState)) error {
	state, err := t.states.Get(ctx, fund.ID)
	if err != nil {
		return fmt.Errorf("get sync state: %w", err)
	}

	state.FundID = fund.ID
	mutate(state)
	state.MarkSynced(t.now(), domain.SourceLocal)

	if err := t.states.Save(ctx, state); err != nil {
		return fmt.Errorf("save sync state: %w", err)
	}
	fund.Sync = *state
	return nil
}

func activeInput(active bool) domain.DesignationInput {
	return domain.DesignationInput{IsActive: &active}
}
