package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"fund_sync/internal/domain"
)

type FundStore interface {
	Get(ctx context.Context, id int64) (*domain.Fund, error)
	FindByDesignationID(ctx context.Context, designationID string) ([]int64, error)
	List(ctx context.Context, filter domain.FundFilter) ([]domain.Fund, error)
	ApplyRemote(ctx context.Context, id int64, change domain.FundChange, at time.Time) error
}

type SyncStateStore interface {
	Get(ctx context.Context, fundID int64) (*domain.SyncState, error)
	Save(ctx context.Context, state *domain.SyncState) error
	Delete(ctx context.Context, fundID int64) error
	ListErrored(ctx context.Context) ([]domain.SyncState, error)
	GetGlobal(ctx context.Context) (*domain.GlobalState, error)
	SetLastPollAt(ctx context.Context, at time.Time) error
	SetTemplateStatus(ctx context.Context, name string, status domain.TemplateStatus) error
}

type ConflictLog interface {
	Append(ctx context.Context, entry domain.ConflictEntry, maxEntries int) error
	Recent(ctx context.Context, limit int) ([]domain.ConflictEntry, error)
}

type LeaseStore interface {
	Acquire(ctx context.Context, key, owner string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key, owner string) error
	Held(ctx context.Context, key string) (bool, error)
}

type RemoteClient interface {
	ListDesignations(ctx context.Context) ([]domain.Designation, error)
	GetDesignation(ctx context.Context, id string) (*domain.Designation, error)
	CreateDesignation(ctx context.Context, in domain.DesignationInput) (*domain.Designation, error)
	UpdateDesignation(ctx context.Context, id string, in domain.DesignationInput) (*domain.Designation, error)
	DeleteDesignation(ctx context.Context, id string) error
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	DuplicateCampaign(ctx context.Context, templateID string, overrides domain.CampaignOverrides) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, in domain.CampaignInput) (*domain.Campaign, error)
	PublishCampaign(ctx context.Context, id string) error
	DeactivateCampaign(ctx context.Context, id string) error
	ReactivateCampaign(ctx context.Context, id string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	Publish(ctx context.Context, fund *domain.Fund, source domain.SyncSource) error
	Close() error
}
