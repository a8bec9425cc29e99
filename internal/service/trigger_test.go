package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"fund_sync/internal/config"
	"fund_sync/internal/domain"
	"fund_sync/internal/remote"
	"fund_sync/internal/service/mocks"
	"fund_sync/internal/storage/memory"
)

type TriggerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store   *memory.Store
	remote  *mocks.MockRemoteClient
	trigger *Trigger
	now     time.Time
}

func (s *TriggerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.remote = mocks.NewMockRemoteClient(s.ctrl)

	s.now = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s.store = memory.New()
	s.store.SetClock(func() time.Time { return s.now })

	cfg := config.Defaults()
	cfg.TemplateCampaignID = "100"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.trigger = NewTrigger(s.store.Funds(), s.store.States(), s.store.Leases(), s.remote, logger, cfg)
	s.trigger.now = func() time.Time { return s.now }
}

func (s *TriggerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTriggerTestSuite(t *testing.T) {
	suite.Run(t, new(TriggerTestSuite))
}

func (s *TriggerTestSuite) saveFund(f domain.Fund) int64 {
	return s.store.SaveFund(context.Background(), f)
}

func (s *TriggerTestSuite) link(fundID int64, designationID, campaignID string) {
	s.Require().NoError(s.store.States().Save(context.Background(), &domain.SyncState{
		FundID:        fundID,
		DesignationID: designationID,
		CampaignID:    campaignID,
	}))
}

func (s *TriggerTestSuite) state(fundID int64) *domain.SyncState {
	state, err := s.store.States().Get(context.Background(), fundID)
	s.Require().NoError(err)
	return state
}

func (s *TriggerTestSuite) TestOnSave_CreatesDesignationAndCampaign() {
	ctx := context.Background()
	id := s.saveFund(domain.Fund{ID: 7, Title: "Roof Fund", Content: "<p>New roof &amp; gutters</p>", Status: domain.StatusPublished})

	s.remote.EXPECT().CreateDesignation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in domain.DesignationInput) (*domain.Designation, error) {
			s.Equal("Roof Fund", *in.Name)
			s.True(*in.IsActive)
			s.Equal("7", *in.ExternalReferenceID)
			s.Equal("New roof & gutters", *in.Description)
			return &domain.Designation{ID: "900", Name: "Roof Fund", Description: in.Description, IsActive: in.IsActive}, nil
		})
	s.remote.EXPECT().DuplicateCampaign(ctx, "100", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, o domain.CampaignOverrides) (*domain.Campaign, error) {
			s.Equal("Roof Fund", o.Name)
			s.Equal("1000", o.RawGoal)
			s.Equal("USD", o.RawCurrencyCode)
			s.Equal("7", o.ExternalReferenceID)
			s.Equal(s.now.Format(time.RFC3339), o.StartedAt)
			return &domain.Campaign{ID: "555", Status: domain.CampaignUnpublished, CanonicalURL: "https://give.example.org/roof"}, nil
		})
	s.remote.EXPECT().UpdateCampaign(ctx, "555", domain.CampaignInput{Overview: "New roof & gutters"}).Return(nil, nil)
	s.remote.EXPECT().PublishCampaign(ctx, "555").Return(nil)

	s.Require().NoError(s.trigger.OnSave(ctx, id))

	state := s.state(id)
	s.Equal("900", state.DesignationID)
	s.Equal("555", state.CampaignID)
	s.Equal("https://give.example.org/roof", state.CampaignURL)
	s.Equal(domain.SourceLocal, state.LastSyncSource)
	s.NotEmpty(state.LastPollFingerprint)
	s.Equal(s.now, *state.LastSyncAt)
}

func (s *TriggerTestSuite) TestOnSave_CampaignFollowUpFailuresKeepCampaign() {
	ctx := context.Background()
	id := s.saveFund(domain.Fund{Title: "Roof Fund", Excerpt: "Short", Status: domain.StatusPublished})
	s.link(id, "900", "")

	s.remote.EXPECT().UpdateDesignation(ctx, "900", gomock.Any()).Return(nil, nil)
	s.remote.EXPECT().DuplicateCampaign(ctx, "100", gomock.Any()).Return(&domain.Campaign{ID: "555"}, nil)
	s.remote.EXPECT().UpdateCampaign(ctx, "555", gomock.Any()).Return(nil, &remote.APIError{StatusCode: 500})
	s.remote.EXPECT().PublishCampaign(ctx, "555").Return(&remote.APIError{StatusCode: 422, Message: "missing fields"})

	s.Require().NoError(s.trigger.OnSave(ctx, id))

	s.Equal("555", s.state(id).CampaignID)
}

func (s *TriggerTestSuite) TestOnSave_DraftCreatesNothing() {
	ctx := context.Background()
	id := s.saveFund(domain.Fund{Title: "Draft", Status: domain.StatusDraft})

	s.Require().NoError(s.trigger.OnSave(ctx, id))

	s.Empty(s.state(id).DesignationID)
}

func (s *TriggerTestSuite) TestOnSave_LinkedFundUpdatesBoth() {
	ctx := context.Background()
	id := s.saveFund(domain.Fund{Title: "Roof", Status: domain.StatusDraft, Fields: map[string]string{"fundraising_goal": "2500"}})
	s.link(id, "900", "555")

	s.remote.EXPECT().UpdateDesignation(ctx, "900", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in domain.DesignationInput) (*domain.Designation, error) {
			s.False(*in.IsActive)
			s.InDelta(2500.0, *in.Goal, 0.001)
			return &domain.Designation{ID: "900", Name: "Roof"}, nil
		})
	s.remote.EXPECT().UpdateCampaign(ctx, "555", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in domain.CampaignInput) (*domain.Campaign, error) {
			s.Equal("crowdfunding", in.Type)
			s.Equal("America/New_York", in.TimezoneIdentifier)
			s.InDelta(2500.0, *in.Goal, 0.001)
			return &domain.Campaign{ID: "555", CanonicalURL: "https://give.example.org/roof"}, nil
		})

	s.Require().NoError(s.trigger.OnSave(ctx, id))

	state := s.state(id)
	s.Equal("https://give.example.org/roof", state.CampaignURL)
	s.Equal(s.now, *state.LastSyncAt)
}

func (s *TriggerTestSuite) TestOnSave_CampaignSyncDisabled() {
	ctx := context.Background()
	id := s.saveFund(domain.Fund{Title: "Roof", Status: domain.StatusPublished, Fields: map[string]string{"disable_campaign_sync": "1"}})
	s.link(id, "900", "")

	s.remote.EXPECT().UpdateDesignation(ctx, "900", gomock.Any()).Return(nil, nil)

	s.Require().NoError(s.trigger.OnSave(ctx, id))
}

func (s *TriggerTestSuite) TestOnSave_CreationLockHeldSkipsCreate() {
	ctx := context.Background()
	s.trigger.config.TemplateCampaignID = ""
	id := s.saveFund(domain.Fund{Title: "Roof", Status: domain.StatusPublished})

	ok, err := s.store.Leases().Acquire(ctx, creatingDesignationKey(id), "other-request", time.Minute)
	s.Require().NoError(err)
	s.Require().True(ok)

	s.Require().NoError(s.trigger.OnSave(ctx, id))

	s.Empty(s.state(id).DesignationID)
}

func (s *TriggerTestSuite) TestOnSave_TemplateMissingCreatesDesignationOnly() {
	ctx := context.Background()
	s.trigger.config.TemplateCampaignID = ""
	id := s.saveFund(domain.Fund{Title: "Roof", Status: domain.StatusPublished})

	s.remote.EXPECT().CreateDesignation(ctx, gomock.Any()).Return(&domain.Designation{ID: "900", Name: "Roof"}, nil)

	s.Require().NoError(s.trigger.OnSave(ctx, id))

	state := s.state(id)
	s.Equal("900", state.DesignationID)
	s.Empty(state.CampaignID)
}

func (s *TriggerTestSuite) TestOnSave_RemoteFailureDoesNotFailSave() {
	ctx := context.Background()
	s.trigger.config.TemplateCampaignID = ""
	id := s.saveFund(domain.Fund{Title: "Roof", Status: domain.StatusPublished})

	s.remote.EXPECT().CreateDesignation(ctx, gomock.Any()).Return(nil, &remote.APIError{StatusCode: 503})

	s.NoError(s.trigger.OnSave(ctx, id))
	s.Empty(s.state(id).DesignationID)
}

func (s *TriggerTestSuite) TestOnSave_IgnoredDuringInboundApply() {
	ctx := context.Background()
	id := s.saveFund(domain.Fund{Title: "Roof", Status: domain.StatusPublished})

	ok, err := s.store.Leases().Acquire(ctx, inboundLeaseKey, "reconciler", time.Minute)
	s.Require().NoError(err)
	s.Require().True(ok)

	s.NoError(s.trigger.OnSave(ctx, id))
	s.NoError(s.trigger.OnStatusChange(ctx, id, domain.StatusDraft, domain.StatusPublished))
}

func (s *TriggerTestSuite) TestOnSave_MissingFund() {
	s.NoError(s.trigger.OnSave(context.Background(), 404))
}

func (s *TriggerTestSuite) TestOnTrash_DeactivatesBoth() {
	ctx := context.Background()
	id := s.saveFund(domain.Fund{Title: "Roof", Status: domain.StatusPublished})
	s.link(id, "900", "555")

	s.remote.EXPECT().UpdateDesignation(ctx, "900", activeInput(false)).Return(nil, nil)
	s.remote.EXPECT().DeactivateCampaign(ctx, "555").Return(nil)

	s.Require().NoError(s.trigger.OnTrash(ctx, id))
}

func (s *TriggerTestSuite) TestOnRestore_ContinuesPastFailedSteps() {
	ctx := context.Background()
	id := s.saveFund(domain.Fund{Title: "Roof", Status: domain.StatusDraft})
	s.link(id, "900", "555")

	gomock.InOrder(
		s.remote.EXPECT().UpdateDesignation(ctx, "900", activeInput(true)).Return(nil, errors.New("connection reset")),
		s.remote.EXPECT().ReactivateCampaign(ctx, "555").Return(&remote.APIError{StatusCode: 409, Message: "already active"}),
		s.remote.EXPECT().PublishCampaign(ctx, "555").Return(&remote.APIError{StatusCode: 500}),
		s.remote.EXPECT().UpdateCampaign(ctx, "555", gomock.Any()).Return(&domain.Campaign{ID: "555"}, nil),
	)

	s.Require().NoError(s.trigger.OnRestore(ctx, id))
}

func (s *TriggerTestSuite) TestOnDelete_FundAlreadyGone() {
	ctx := context.Background()
	s.link(12, "900", "555")

	s.remote.EXPECT().DeleteDesignation(ctx, "900").Return(nil)
	s.remote.EXPECT().DeactivateCampaign(ctx, "555").Return(nil)

	s.Require().NoError(s.trigger.OnDelete(ctx, 12))

	errored, err := s.store.States().ListErrored(ctx)
	s.Require().NoError(err)
	s.Empty(errored)
	s.Empty(s.state(12).DesignationID)
}

func (s *TriggerTestSuite) TestOnDelete_UsesCustomFieldLink() {
	ctx := context.Background()
	id := s.saveFund(domain.Fund{Title: "Roof", Status: domain.StatusPublished, Fields: map[string]string{
		"gofundme_designation_id": "901",
	}})

	s.remote.EXPECT().DeleteDesignation(ctx, "901").Return(&remote.APIError{StatusCode: 404})

	s.Require().NoError(s.trigger.OnDelete(ctx, id))
}

func (s *TriggerTestSuite) TestOnStatusChange_Unpublish() {
	ctx := context.Background()
	id := s.saveFund(domain.Fund{Title: "Roof", Status: domain.StatusDraft})
	s.link(id, "900", "555")

	s.remote.EXPECT().UpdateDesignation(ctx, "900", activeInput(false)).Return(nil, nil)
	s.remote.EXPECT().DeactivateCampaign(ctx, "555").Return(nil)

	s.Require().NoError(s.trigger.OnStatusChange(ctx, id, domain.StatusPublished, domain.StatusDraft))
}

func (s *TriggerTestSuite) TestOnStatusChange_Publish() {
	ctx := context.Background()
	id := s.saveFund(domain.Fund{Title: "Roof", Status: domain.StatusPublished})
	s.link(id, "900", "555")

	s.remote.EXPECT().UpdateDesignation(ctx, "900", activeInput(true)).Return(nil, nil)
	s.remote.EXPECT().UpdateCampaign(ctx, "555", gomock.Any()).Return(nil, nil)

	s.Require().NoError(s.trigger.OnStatusChange(ctx, id, domain.StatusDraft, domain.StatusPublished))
}

func (s *TriggerTestSuite) TestOnStatusChange_SameStatusOrUnlinked() {
	ctx := context.Background()
	linked := s.saveFund(domain.Fund{Title: "Linked", Status: domain.StatusPublished})
	s.link(linked, "900", "")
	unlinked := s.saveFund(domain.Fund{Title: "Unlinked", Status: domain.StatusPublished})

	s.NoError(s.trigger.OnStatusChange(ctx, linked, domain.StatusPublished, domain.StatusPublished))
	s.NoError(s.trigger.OnStatusChange(ctx, unlinked, domain.StatusDraft, domain.StatusPublished))
}

func (s *TriggerTestSuite) TestDispatch_UnknownEvent() {
	err := s.trigger.Dispatch(context.Background(), domain.FundEvent{Type: "archived", FundID: 1})
	s.ErrorIs(err, ErrUnknownEvent)
}

func (s *TriggerTestSuite) TestPush_SkipsLinkedAndDraftsByDefault() {
	ctx := context.Background()
	s.trigger.config.TemplateCampaignID = ""
	fresh := s.saveFund(domain.Fund{Title: "Fresh", Status: domain.StatusPublished})
	linked := s.saveFund(domain.Fund{Title: "Linked", Status: domain.StatusPublished})
	s.link(linked, "900", "")
	s.saveFund(domain.Fund{Title: "Draft", Status: domain.StatusDraft})

	s.remote.EXPECT().CreateDesignation(ctx, gomock.Any()).Return(&domain.Designation{ID: "901", Name: "Fresh"}, nil)

	stats, err := s.trigger.Push(ctx, PushOptions{})

	s.Require().NoError(err)
	s.Equal(2, stats.Considered)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Skipped)
	s.Equal("901", s.state(fresh).DesignationID)
}

func (s *TriggerTestSuite) TestPush_UpdateAndErrors() {
	ctx := context.Background()
	s.trigger.config.TemplateCampaignID = ""
	ok := s.saveFund(domain.Fund{Title: "A", Status: domain.StatusPublished})
	s.link(ok, "900", "")
	broken := s.saveFund(domain.Fund{Title: "B", Status: domain.StatusPublished})
	s.link(broken, "901", "")

	s.remote.EXPECT().UpdateDesignation(ctx, "900", gomock.Any()).Return(nil, nil)
	s.remote.EXPECT().UpdateDesignation(ctx, "901", gomock.Any()).Return(nil, &remote.APIError{StatusCode: 404})

	stats, err := s.trigger.Push(ctx, PushOptions{Update: true})

	s.Require().NoError(err)
	s.Equal(1, stats.Updated)
	s.Equal(1, stats.Errors)
}

func (s *TriggerTestSuite) TestPush_DryRunAndExplicitIDs() {
	ctx := context.Background()
	draft := s.saveFund(domain.Fund{Title: "Draft", Status: domain.StatusDraft})
	s.link(draft, "900", "")
	published := s.saveFund(domain.Fund{Title: "Published", Status: domain.StatusPublished})
	s.saveFund(domain.Fund{Title: "Other", Status: domain.StatusPublished})

	stats, err := s.trigger.Push(ctx, PushOptions{DryRun: true, Update: true, FundIDs: []int64{draft, published}})

	s.Require().NoError(err)
	s.True(stats.DryRun)
	s.Equal(2, stats.Considered)
	s.Equal(1, stats.Updated)
	s.Equal(1, stats.Created)
	s.Empty(s.state(published).DesignationID)
}
