package service

import (
	"strconv"
	"strings"

	"fund_sync/internal/domain"
)

// Custom fields edited by administrators on the fund.
const (
	fieldDesignationID       = "gofundme_designation_id"
	fieldCampaignID          = "gofundme_campaign_id"
	fieldFundraisingGoal     = "fundraising_goal"
	fieldDisableCampaignSync = "disable_campaign_sync"
)

// fieldResolver yields a value for a fund, or false when its source has none.
type fieldResolver[T any] func(f *domain.Fund) (T, bool)

// resolveField tries resolvers in order and returns the first hit.
func resolveField[T any](f *domain.Fund, resolvers ...fieldResolver[T]) (T, bool) {
	for _, r := range resolvers {
		if v, ok := r(f); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func customString(name string) fieldResolver[string] {
	return func(f *domain.Fund) (string, bool) {
		v := strings.TrimSpace(f.Fields[name])
		return v, v != ""
	}
}

func customFloat(name string) fieldResolver[float64] {
	return func(f *domain.Fund) (float64, bool) {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.Fields[name]), 64)
		return v, err == nil && v > 0
	}
}

func storedDesignationID(f *domain.Fund) (string, bool) {
	return f.Sync.DesignationID, f.Sync.DesignationID != ""
}

func storedCampaignID(f *domain.Fund) (string, bool) {
	return f.Sync.CampaignID, f.Sync.CampaignID != ""
}

func fundGoal(f *domain.Fund) (float64, bool) {
	if f.Goal == nil || *f.Goal <= 0 {
		return 0, false
	}
	return *f.Goal, true
}

var (
	designationIDResolvers = []fieldResolver[string]{storedDesignationID, customString(fieldDesignationID)}
	campaignIDResolvers    = []fieldResolver[string]{storedCampaignID, customString(fieldCampaignID)}
	goalResolvers          = []fieldResolver[float64]{customFloat(fieldFundraisingGoal), fundGoal}
)

func designationID(f *domain.Fund) (string, bool) {
	return resolveField(f, designationIDResolvers...)
}

func campaignID(f *domain.Fund) (string, bool) {
	return resolveField(f, campaignIDResolvers...)
}

// goal resolves the fundraising goal, falling back to def when def > 0.
func goal(f *domain.Fund, def float64) (float64, bool) {
	if v, ok := resolveField(f, goalResolvers...); ok {
		return v, true
	}
	return def, def > 0
}

func campaignSyncEnabled(f *domain.Fund) bool {
	switch strings.ToLower(strings.TrimSpace(f.Fields[fieldDisableCampaignSync])) {
	case "", "0", "false", "no", "off":
		return true
	default:
		return false
	}
}
