package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	passLeaseKey    = "reconcile_pass"
	inboundLeaseKey = "inbound_sync"
)

func creatingDesignationKey(fundID int64) string {
	return "creating_designation:" + strconv.FormatInt(fundID, 10)
}

func creatingCampaignKey(fundID int64) string {
	return "creating_campaign:" + strconv.FormatInt(fundID, 10)
}

// acquireLease takes key under a fresh owner token. The returned release
// func is safe to call on every exit path; an unreleased lease expires
// after ttl.
func acquireLease(ctx context.Context, leases LeaseStore, key string, ttl time.Duration) (func(), bool, error) {
	owner := uuid.NewString()

	ok, err := leases.Acquire(ctx, key, owner, ttl)
	if err != nil {
		return nil, false, fmt.Errorf("acquire lease %s: %w", key, err)
	}
	if !ok {
		return func() {}, false, nil
	}

	release := func() {
		_ = leases.Release(context.WithoutCancel(ctx), key, owner)
	}
	return release, true, nil
}
