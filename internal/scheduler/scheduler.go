package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fund_sync/internal/domain"
	"fund_sync/internal/service"
)

// Passer runs one reconciliation pass.
type Passer interface {
	RunPass(ctx context.Context, opts service.PassOptions) (*domain.PassStats, error)
}

type Scheduler struct {
	passer   Passer
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
	wg       sync.WaitGroup
}

func NewScheduler(passer Passer, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		passer:   passer,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With("component", "scheduler"),
	}
}

// Start runs a pass immediately and then every interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

// Once runs fn a single time after delay, unless ctx ends first.
func (s *Scheduler) Once(ctx context.Context, name string, delay time.Duration, fn func(ctx context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if err := fn(ctx); err != nil {
			s.logger.Error("scheduled job failed", "job", name, "error", err)
		}
	}()
}

// Wait blocks until every job scheduled with Once has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) runPass(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.passer.RunPass(passCtx, service.PassOptions{})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrPassInProgress):
		s.logger.Info("skipping pass, another one is running")
	default:
		s.logger.Error("reconciliation pass failed", "error", err)
	}
}
