package memory

import (
	"context"
	"time"
)

type LeaseStore struct {
	s *Store
}

func (ls *LeaseStore) Acquire(_ context.Context, key, owner string, ttl time.Duration) (bool, error) {
	ls.s.mu.Lock()
	defer ls.s.mu.Unlock()

	now := ls.s.now()
	if cur, ok := ls.s.leases[key]; ok && cur.owner != owner && now.Before(cur.expiresAt) {
		return false, nil
	}
	ls.s.leases[key] = lease{owner: owner, expiresAt: now.Add(ttl)}
	return true, nil
}

func (ls *LeaseStore) Release(_ context.Context, key, owner string) error {
	ls.s.mu.Lock()
	defer ls.s.mu.Unlock()

	if cur, ok := ls.s.leases[key]; ok && cur.owner == owner {
		delete(ls.s.leases, key)
	}
	return nil
}

func (ls *LeaseStore) Held(_ context.Context, key string) (bool, error) {
	ls.s.mu.Lock()
	defer ls.s.mu.Unlock()

	cur, ok := ls.s.leases[key]
	return ok && ls.s.now().Before(cur.expiresAt), nil
}
