package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"fund_sync/internal/config"
	"fund_sync/internal/domain"
	"fund_sync/internal/fingerprint"
	"fund_sync/internal/remote"
	"fund_sync/internal/service/mocks"
	"fund_sync/internal/storage/memory"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	funds     *mocks.MockFundStore
	states    *mocks.MockSyncStateStore
	conflicts *mocks.MockConflictLog
	remote    *mocks.MockRemoteClient
	txManager *mocks.MockTransactionManager
	leases    *memory.LeaseStore

	service *SyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
	now     time.Time
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.funds = mocks.NewMockFundStore(s.ctrl)
	s.states = mocks.NewMockSyncStateStore(s.ctrl)
	s.conflicts = mocks.NewMockConflictLog(s.ctrl)
	s.remote = mocks.NewMockRemoteClient(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.now = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	store := memory.New()
	store.SetClock(func() time.Time { return s.now })
	s.leases = store.Leases()

	s.cfg = config.Defaults()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewSyncService(
		s.funds,
		s.states,
		s.conflicts,
		s.leases,
		s.remote,
		s.txManager,
		nil,
		s.logger,
		s.cfg,
	)
	s.service.now = func() time.Time { return s.now }
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) fund(id int64, title string, lastSync *time.Time, modified time.Time) *domain.Fund {
	return &domain.Fund{
		ID:         id,
		Title:      title,
		Status:     domain.StatusPublished,
		Fields:     map[string]string{},
		ModifiedAt: modified,
		Sync:       domain.SyncState{FundID: id, LastSyncAt: lastSync},
	}
}

func (s *SyncServiceTestSuite) expectTx() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (s *SyncServiceTestSuite) captureSave(into *domain.SyncState) *gomock.Call {
	return s.states.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, st *domain.SyncState) error {
			*into = *st
			return nil
		})
}

func ptr[T any](v T) *T {
	return &v
}

func (s *SyncServiceTestSuite) TestRunPass_FetchFailureAborts() {
	ctx := context.Background()
	s.remote.EXPECT().ListDesignations(ctx).Return(nil, &remote.APIError{StatusCode: 503})

	stats, err := s.service.RunPass(ctx, PassOptions{})

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "fetch designations")
}

func (s *SyncServiceTestSuite) TestRunPass_OrphanWithNonNumericReference() {
	ctx := context.Background()
	d := domain.Designation{ID: "901", Name: "Debug", ExternalReferenceID: "debug-test-123"}

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{d}, nil)
	s.funds.EXPECT().FindByDesignationID(ctx, "901").Return(nil, nil)
	s.states.EXPECT().SetLastPollAt(ctx, s.now).Return(nil)

	stats, err := s.service.RunPass(ctx, PassOptions{})

	s.Require().NoError(err)
	s.Equal(1, stats.Processed)
	s.Equal(1, stats.Orphaned)
	s.Equal(0, stats.Updated)
	s.Equal(0, stats.Errors)
}

func (s *SyncServiceTestSuite) TestRunPass_ReferenceMatchWinsOverStoredLink() {
	ctx := context.Background()
	d := domain.Designation{ID: "900", Name: "Roof Fund", IsActive: ptr(true), ExternalReferenceID: "42"}
	fund := s.fund(42, "Roof", nil, s.now.Add(-time.Hour))

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{d}, nil)
	s.funds.EXPECT().Get(ctx, int64(42)).Return(fund, nil)
	s.expectTx()
	s.funds.EXPECT().ApplyRemote(gomock.Any(), int64(42), gomock.Any(), s.now).
		DoAndReturn(func(_ context.Context, _ int64, change domain.FundChange, _ time.Time) error {
			s.Require().NotNil(change.Title)
			s.Equal("Roof Fund", *change.Title)
			s.Nil(change.Status)
			return nil
		})
	var saved domain.SyncState
	s.captureSave(&saved)
	s.states.EXPECT().SetLastPollAt(ctx, s.now).Return(nil)

	stats, err := s.service.RunPass(ctx, PassOptions{})

	s.Require().NoError(err)
	s.Equal(1, stats.Updated)
	s.Equal("900", saved.DesignationID)
	s.Equal(domain.SourceRemote, saved.LastSyncSource)
	s.Equal(fingerprint.Designation(d), saved.LastPollFingerprint)
	s.Require().NotNil(saved.LastSyncAt)
	s.Equal(s.now, *saved.LastSyncAt)
}

func (s *SyncServiceTestSuite) TestRunPass_EchoOnlyRefreshesFingerprint() {
	ctx := context.Background()
	d := domain.Designation{ID: "900", Name: "Roof Fund", IsActive: ptr(true), ExternalReferenceID: "42"}
	fund := s.fund(42, "Roof Fund", nil, s.now.Add(-time.Hour))

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{d}, nil)
	s.funds.EXPECT().Get(ctx, int64(42)).Return(fund, nil)
	s.expectTx()
	s.funds.EXPECT().ApplyRemote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	var saved domain.SyncState
	s.captureSave(&saved)
	s.states.EXPECT().SetLastPollAt(ctx, s.now).Return(nil)

	stats, err := s.service.RunPass(ctx, PassOptions{})

	s.Require().NoError(err)
	s.Equal(0, stats.Updated)
	s.Equal(1, stats.Unchanged)
	s.Equal(1, stats.Skipped)
	s.Equal(fingerprint.Designation(d), saved.LastPollFingerprint)
	s.Equal("900", saved.DesignationID)
}

func (s *SyncServiceTestSuite) TestRunPass_MissingReferenceFallsBackToStoredLink() {
	ctx := context.Background()
	d := domain.Designation{ID: "900", Name: "Roof Fund", ExternalReferenceID: "77"}
	fund := s.fund(3, "Roof Fund", nil, s.now)
	fund.Sync.DesignationID = "900"
	fund.Sync.LastPollFingerprint = fingerprint.Designation(d)

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{d}, nil)
	s.funds.EXPECT().Get(ctx, int64(77)).Return(nil, domain.ErrFundNotFound)
	s.funds.EXPECT().FindByDesignationID(ctx, "900").Return([]int64{7, 3}, nil)
	s.funds.EXPECT().Get(ctx, int64(3)).Return(fund, nil)
	s.states.EXPECT().SetLastPollAt(ctx, s.now).Return(nil)

	stats, err := s.service.RunPass(ctx, PassOptions{})

	s.Require().NoError(err)
	s.Equal(1, stats.Ambiguous)
	s.Equal(1, stats.Unchanged)
	s.Equal(1, stats.Skipped)
}

func (s *SyncServiceTestSuite) TestRunPass_LocalEditWinsConflict() {
	ctx := context.Background()
	lastSync := s.now.Add(-time.Hour)
	fund := s.fund(5, "Roof Fund", &lastSync, lastSync.Add(10*time.Second))
	fund.Sync.DesignationID = "900"
	d := domain.Designation{ID: "900", Name: "Roof Fund v2", IsActive: ptr(true), ExternalReferenceID: "5"}

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{d}, nil)
	s.funds.EXPECT().Get(ctx, int64(5)).Return(fund, nil)
	s.conflicts.EXPECT().Append(ctx, gomock.Any(), 100).
		DoAndReturn(func(_ context.Context, entry domain.ConflictEntry, _ int) error {
			s.NotEmpty(entry.ID)
			s.Equal(int64(5), entry.FundID)
			s.Equal("900", entry.DesignationID)
			s.Equal("local modified after last sync", entry.Reason)
			s.Equal("Roof Fund", entry.LocalTitle)
			s.Equal("Roof Fund v2", entry.RemoteTitle)
			return nil
		})
	s.remote.EXPECT().UpdateDesignation(ctx, "900", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in domain.DesignationInput) (*domain.Designation, error) {
			s.Equal("Roof Fund", *in.Name)
			s.Equal("5", *in.ExternalReferenceID)
			return &domain.Designation{ID: "900", Name: "Roof Fund", IsActive: ptr(true), ExternalReferenceID: "5"}, nil
		})
	var saved domain.SyncState
	s.captureSave(&saved)
	s.states.EXPECT().SetLastPollAt(ctx, s.now).Return(nil)

	stats, err := s.service.RunPass(ctx, PassOptions{})

	s.Require().NoError(err)
	s.Equal(1, stats.Conflicts)
	s.Equal(1, stats.Skipped)
	s.Equal(0, stats.Updated)
	s.Equal(domain.SourceLocal, saved.LastSyncSource)
	s.Equal(s.now, *saved.LastSyncAt)
	s.Equal(fingerprint.Designation(domain.Designation{ID: "900", Name: "Roof Fund", IsActive: ptr(true)}), saved.LastPollFingerprint)
}

func (s *SyncServiceTestSuite) TestRunPass_CorrectivePushFailureRecordsError() {
	ctx := context.Background()
	lastSync := s.now.Add(-time.Hour)
	fund := s.fund(5, "Roof Fund", &lastSync, s.now.Add(-time.Minute))
	d := domain.Designation{ID: "900", Name: "Other", ExternalReferenceID: "5"}

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{d}, nil)
	s.funds.EXPECT().Get(ctx, int64(5)).Return(fund, nil)
	s.conflicts.EXPECT().Append(ctx, gomock.Any(), 100).Return(nil)
	s.remote.EXPECT().UpdateDesignation(ctx, "900", gomock.Any()).
		Return(nil, &remote.APIError{StatusCode: 502, Message: "bad gateway"})
	var saved domain.SyncState
	s.captureSave(&saved)
	s.states.EXPECT().SetLastPollAt(ctx, s.now).Return(nil)

	stats, err := s.service.RunPass(ctx, PassOptions{})

	s.Require().NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(0, stats.Conflicts)
	s.Equal(1, saved.SyncAttempts)
	s.Contains(saved.SyncError, "bad gateway")
	s.Equal(s.now, *saved.LastAttemptAt)
}

func (s *SyncServiceTestSuite) TestRunPass_ApplyFailureRecordsError() {
	ctx := context.Background()
	fund := s.fund(8, "Old", nil, s.now)
	d := domain.Designation{ID: "900", Name: "New", ExternalReferenceID: "8"}

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{d}, nil)
	s.funds.EXPECT().Get(ctx, int64(8)).Return(fund, nil)
	s.expectTx()
	s.funds.EXPECT().ApplyRemote(gomock.Any(), int64(8), gomock.Any(), s.now).Return(errors.New("db down"))
	var saved domain.SyncState
	s.captureSave(&saved)
	s.states.EXPECT().SetLastPollAt(ctx, s.now).Return(nil)

	stats, err := s.service.RunPass(ctx, PassOptions{})

	s.Require().NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(0, stats.Updated)
	s.Equal(1, saved.SyncAttempts)
	s.Empty(saved.LastPollFingerprint)
	s.Nil(saved.LastSyncAt)

	held, _ := s.leases.Held(ctx, inboundLeaseKey)
	s.False(held, "inbound flag released after failure")
}

func (s *SyncServiceTestSuite) TestRunPass_DefersErroredFundUntilBackoff() {
	ctx := context.Background()
	lastAttempt := s.now.Add(-time.Minute)
	fund := s.fund(9, "A", nil, s.now)
	fund.Sync.SyncError = "timeout"
	fund.Sync.SyncAttempts = 1
	fund.Sync.LastAttemptAt = &lastAttempt
	d := domain.Designation{ID: "900", Name: "B", ExternalReferenceID: "9"}

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{d}, nil)
	s.funds.EXPECT().Get(ctx, int64(9)).Return(fund, nil)
	s.states.EXPECT().SetLastPollAt(ctx, s.now).Return(nil)

	stats, err := s.service.RunPass(ctx, PassOptions{})

	s.Require().NoError(err)
	s.Equal(1, stats.Deferred)
	s.Equal(1, stats.Skipped)
	s.Equal(0, stats.Retried)
}

func (s *SyncServiceTestSuite) TestRunPass_ExhaustedFundSkippedEvenWhenDue() {
	ctx := context.Background()
	lastAttempt := s.now.Add(-24 * time.Hour)
	fund := s.fund(9, "A", nil, s.now)
	fund.Sync.SyncError = "timeout"
	fund.Sync.SyncAttempts = 3
	fund.Sync.LastAttemptAt = &lastAttempt
	d := domain.Designation{ID: "900", Name: "B", ExternalReferenceID: "9"}

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{d}, nil)
	s.funds.EXPECT().Get(ctx, int64(9)).Return(fund, nil)
	s.states.EXPECT().SetLastPollAt(ctx, s.now).Return(nil)

	stats, err := s.service.RunPass(ctx, PassOptions{})

	s.Require().NoError(err)
	s.Equal(1, stats.Deferred)
}

func (s *SyncServiceTestSuite) TestRunPass_DueRetryCountsRetried() {
	ctx := context.Background()
	lastAttempt := s.now.Add(-6 * time.Minute)
	fund := s.fund(9, "A", nil, s.now)
	fund.Sync.SyncError = "timeout"
	fund.Sync.SyncAttempts = 1
	fund.Sync.LastAttemptAt = &lastAttempt
	d := domain.Designation{ID: "900", Name: "B", ExternalReferenceID: "9"}

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{d}, nil)
	s.funds.EXPECT().Get(ctx, int64(9)).Return(fund, nil)
	s.expectTx()
	s.funds.EXPECT().ApplyRemote(gomock.Any(), int64(9), gomock.Any(), s.now).Return(nil)
	var saved domain.SyncState
	s.captureSave(&saved)
	s.states.EXPECT().SetLastPollAt(ctx, s.now).Return(nil)

	stats, err := s.service.RunPass(ctx, PassOptions{})

	s.Require().NoError(err)
	s.Equal(1, stats.Retried)
	s.Equal(1, stats.Updated)
	s.Empty(saved.SyncError)
	s.Zero(saved.SyncAttempts)
}

func (s *SyncServiceTestSuite) TestRunPass_DryRunMutatesNothing() {
	ctx := context.Background()
	lastSync := s.now.Add(-time.Hour)
	accepted := s.fund(1, "A", nil, s.now)
	conflicted := s.fund(2, "B", &lastSync, s.now)

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{
		{ID: "10", Name: "A2", ExternalReferenceID: "1"},
		{ID: "20", Name: "B2", ExternalReferenceID: "2"},
	}, nil)
	s.funds.EXPECT().Get(ctx, int64(1)).Return(accepted, nil)
	s.funds.EXPECT().Get(ctx, int64(2)).Return(conflicted, nil)

	stats, err := s.service.RunPass(ctx, PassOptions{DryRun: true})

	s.Require().NoError(err)
	s.True(stats.DryRun)
	s.Equal(1, stats.Updated)
	s.Equal(1, stats.Conflicts)
}

func (s *SyncServiceTestSuite) TestRunPass_RejectsConcurrentPass() {
	ctx := context.Background()
	ok, err := s.leases.Acquire(ctx, passLeaseKey, "other-process", time.Minute)
	s.Require().NoError(err)
	s.Require().True(ok)

	_, err = s.service.RunPass(ctx, PassOptions{})

	s.ErrorIs(err, ErrPassInProgress)
}

func (s *SyncServiceTestSuite) TestRunPass_PublishesNotification() {
	ctx := context.Background()
	notifier := mocks.NewMockNotifier(s.ctrl)
	svc := NewSyncService(s.funds, s.states, s.conflicts, s.leases, s.remote, s.txManager, notifier, s.logger, s.cfg)
	svc.now = func() time.Time { return s.now }

	fund := s.fund(4, "Old", nil, s.now)
	d := domain.Designation{ID: "400", Name: "New", ExternalReferenceID: "4"}

	s.remote.EXPECT().ListDesignations(ctx).Return([]domain.Designation{d}, nil)
	s.funds.EXPECT().Get(ctx, int64(4)).Return(fund, nil)
	s.expectTx()
	s.funds.EXPECT().ApplyRemote(gomock.Any(), int64(4), gomock.Any(), s.now).Return(nil)
	s.states.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().Publish(ctx, gomock.Any(), domain.SourceRemote).Return(errors.New("broker down"))
	s.states.EXPECT().SetLastPollAt(ctx, s.now).Return(nil)

	stats, err := svc.RunPass(ctx, PassOptions{})

	s.Require().NoError(err)
	s.Equal(1, stats.Updated)
	s.Equal(0, stats.Errors)
}

func (s *SyncServiceTestSuite) TestReconcileFund_NotLinked() {
	ctx := context.Background()
	s.funds.EXPECT().Get(ctx, int64(3)).Return(s.fund(3, "A", nil, s.now), nil)

	_, err := s.service.ReconcileFund(ctx, 3, false)

	s.ErrorIs(err, ErrNotLinked)
}

func (s *SyncServiceTestSuite) TestReconcileFund_SemanticFetchFailureExhausts() {
	ctx := context.Background()
	fund := s.fund(3, "A", nil, s.now)
	fund.Fields["gofundme_designation_id"] = "300"

	s.funds.EXPECT().Get(ctx, int64(3)).Return(fund, nil)
	s.remote.EXPECT().GetDesignation(ctx, "300").Return(nil, &remote.APIError{StatusCode: 404, Message: "Designation not found"})
	var saved domain.SyncState
	s.captureSave(&saved)

	stats, err := s.service.ReconcileFund(ctx, 3, false)

	s.Require().NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(int64(3), saved.FundID)
	s.Equal(3, saved.SyncAttempts)
	s.True(s.service.Ledger().Exhausted(saved))
}

func (s *SyncServiceTestSuite) TestRetryErrored_ClearResetsWithoutRetrying() {
	ctx := context.Background()
	at := s.now.Add(-time.Hour)
	s.states.EXPECT().ListErrored(ctx).Return([]domain.SyncState{
		{FundID: 1, DesignationID: "10", SyncError: "boom", SyncAttempts: 3, LastAttemptAt: &at},
	}, nil)
	var saved domain.SyncState
	s.captureSave(&saved)

	stats, err := s.service.RetryErrored(ctx, RetryOptions{Clear: true})

	s.Require().NoError(err)
	s.Equal(1, stats.Cleared)
	s.Equal(0, stats.Retried)
	s.Zero(saved.SyncAttempts)
	s.Empty(saved.SyncError)
	s.Nil(saved.LastAttemptAt)
	s.Equal("10", saved.DesignationID)
}

func (s *SyncServiceTestSuite) TestRetryErrored_SkipsExhaustedUnlessForced() {
	ctx := context.Background()
	at := s.now.Add(-24 * time.Hour)
	state := domain.SyncState{FundID: 1, DesignationID: "10", SyncError: "boom", SyncAttempts: 3, LastAttemptAt: &at}

	s.states.EXPECT().ListErrored(ctx).Return([]domain.SyncState{state}, nil)

	stats, err := s.service.RetryErrored(ctx, RetryOptions{})
	s.Require().NoError(err)
	s.Equal(1, stats.Skipped)
	s.Equal(0, stats.Retried)

	fund := s.fund(1, "A", nil, s.now)
	fund.Sync = state
	d := &domain.Designation{ID: "10", Name: "A2", ExternalReferenceID: "1"}

	s.states.EXPECT().ListErrored(ctx).Return([]domain.SyncState{state}, nil)
	s.funds.EXPECT().Get(ctx, int64(1)).Return(fund, nil)
	s.remote.EXPECT().GetDesignation(ctx, "10").Return(d, nil)
	s.expectTx()
	s.funds.EXPECT().ApplyRemote(gomock.Any(), int64(1), gomock.Any(), s.now).Return(nil)
	var saved domain.SyncState
	s.captureSave(&saved)

	stats, err = s.service.RetryErrored(ctx, RetryOptions{Force: true})
	s.Require().NoError(err)
	s.Equal(1, stats.Retried)
	s.Equal(1, stats.Succeeded)
	s.Empty(saved.SyncError)
}

func (s *SyncServiceTestSuite) TestStatus_Indicators() {
	ctx := context.Background()
	recent := s.now.Add(-time.Minute)
	old := s.now.Add(-time.Hour)

	notLinked := *s.fund(1, "A", nil, s.now)
	synced := *s.fund(2, "B", &recent, s.now)
	synced.Sync.DesignationID = "20"
	pending := *s.fund(3, "C", &old, s.now)
	pending.Sync.DesignationID = "30"
	errored := *s.fund(4, "D", nil, s.now)
	errored.Sync.DesignationID = "40"
	errored.Sync.SyncError = "timeout"
	errored.Sync.SyncAttempts = 1
	manual := *s.fund(5, "E", nil, s.now)
	manual.Fields["gofundme_designation_id"] = "50"
	manual.Sync.SyncError = "Designation not found"
	manual.Sync.SyncAttempts = 3

	s.funds.EXPECT().List(ctx, gomock.Any()).Return([]domain.Fund{notLinked, synced, pending, errored, manual}, nil)
	s.states.EXPECT().GetGlobal(ctx).Return(&domain.GlobalState{LastPollAt: &old, TemplateName: "T", TemplateStatus: domain.TemplateValid}, nil)

	report, err := s.service.Status(ctx)

	s.Require().NoError(err)
	s.Require().Len(report.Rows, 5)
	s.Equal(domain.IndicatorNotLinked, report.Rows[0].Indicator)
	s.Equal(domain.IndicatorSynced, report.Rows[1].Indicator)
	s.Equal(domain.IndicatorPending, report.Rows[2].Indicator)
	s.Equal(domain.IndicatorError, report.Rows[3].Indicator)
	s.Equal(domain.IndicatorManual, report.Rows[4].Indicator)
	s.Equal(2, report.Errors)
	s.Equal(1, report.Manual)
	s.Equal(domain.TemplateValid, report.TemplateStatus)
}

func (s *SyncServiceTestSuite) TestValidateTemplate() {
	ctx := context.Background()
	s.service.config.TemplateCampaignID = "100"

	s.remote.EXPECT().GetCampaign(ctx, "100").Return(&domain.Campaign{ID: "100", Name: "Template"}, nil)
	s.states.EXPECT().SetTemplateStatus(ctx, "Template", domain.TemplateValid).Return(nil)
	status, err := s.service.ValidateTemplate(ctx)
	s.Require().NoError(err)
	s.Equal(domain.TemplateValid, status)

	s.remote.EXPECT().GetCampaign(ctx, "100").Return(nil, &remote.APIError{Message: "Could not resolve host"})
	s.states.EXPECT().SetTemplateStatus(ctx, "", domain.TemplatePending).Return(nil)
	status, err = s.service.ValidateTemplate(ctx)
	s.Require().NoError(err)
	s.Equal(domain.TemplatePending, status)

	s.remote.EXPECT().GetCampaign(ctx, "100").Return(nil, &remote.APIError{StatusCode: 504})
	s.states.EXPECT().SetTemplateStatus(ctx, "", domain.TemplateInvalid).Return(nil)
	status, err = s.service.RecheckTemplate(ctx)
	s.Require().NoError(err)
	s.Equal(domain.TemplateInvalid, status)

	s.remote.EXPECT().GetCampaign(ctx, "100").Return(nil, &remote.APIError{StatusCode: 404})
	s.states.EXPECT().SetTemplateStatus(ctx, "", domain.TemplateInvalid).Return(nil)
	status, err = s.service.ValidateTemplate(ctx)
	s.Require().NoError(err)
	s.Equal(domain.TemplateInvalid, status)
}

func (s *SyncServiceTestSuite) TestValidateTemplate_Unconfigured() {
	ctx := context.Background()
	s.states.EXPECT().SetTemplateStatus(ctx, "", domain.TemplateUnset).Return(nil)

	status, err := s.service.ValidateTemplate(ctx)

	s.Require().NoError(err)
	s.Equal(domain.TemplateUnset, status)
}
