package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"fund_sync/internal/broker"
	"fund_sync/internal/config"
	"fund_sync/internal/remote/classy"
	"fund_sync/internal/service"
	"fund_sync/internal/storage/postgres"
)

type stores struct {
	funds     service.FundStore
	states    service.SyncStateStore
	conflicts service.ConflictLog
	leases    service.LeaseStore
	txManager service.TransactionManager
}

// app holds everything a command needs. Only serve connects the broker.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	service *service.SyncService
	trigger *service.Trigger
	broker  *broker.RabbitMQ
	closers []func() error
}

func newApp(cfg *config.Config, logger *slog.Logger, withBroker bool) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	a := &app{cfg: cfg, logger: logger}

	st, err := a.openStores()
	if err != nil {
		return nil, err
	}

	client := classy.New(classy.Config{
		BaseURL:           cfg.API.BaseURL,
		TokenURL:          cfg.API.TokenURL,
		OrgID:             cfg.API.OrgID,
		ClientID:          cfg.API.ClientID,
		ClientSecret:      cfg.API.ClientSecret,
		PageSize:          cfg.API.PageSize,
		Timeout:           cfg.API.Timeout,
		TokenExpiryMargin: cfg.API.TokenExpiryMargin,
		RequestsPerMinute: cfg.API.RequestsPerMinute,
		MaxAttempts:       cfg.API.Retry.MaxAttempts,
		InitialBackoff:    cfg.API.Retry.InitialBackoff,
		MaxBackoff:        cfg.API.Retry.MaxBackoff,
	}, logger)

	var notifier service.Notifier
	if withBroker && cfg.RabbitMQ.Enabled {
		a.broker, err = broker.NewRabbitMQ(broker.Config{
			URL:              cfg.RabbitMQ.URL,
			Exchange:         cfg.RabbitMQ.Exchange,
			RoutingKey:       cfg.RabbitMQ.RoutingKey,
			QueueName:        cfg.RabbitMQ.QueueName,
			EventsRoutingKey: cfg.RabbitMQ.EventsRoutingKey,
			EventsQueue:      cfg.RabbitMQ.EventsQueue,
		}, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, a.broker.Close)
		notifier = a.broker
	}

	a.service = service.NewSyncService(
		st.funds,
		st.states,
		st.conflicts,
		st.leases,
		client,
		st.txManager,
		notifier,
		logger,
		cfg.Sync,
	)
	a.trigger = service.NewTrigger(st.funds, st.states, st.leases, client, logger, cfg.Sync)

	return a, nil
}

func (a *app) openStores() (stores, error) {
	db, err := sqlx.Connect("postgres", a.cfg.Database.DSN())
	if err != nil {
		return stores{}, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return stores{}, fmt.Errorf("ping database: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	a.logger.Debug("connected to database")

	return stores{
		funds:     postgres.NewFundStore(db),
		states:    postgres.NewSyncStateStore(db),
		conflicts: postgres.NewConflictLog(db),
		leases:    postgres.NewLeaseStore(db),
		txManager: postgres.NewTransactionManager(db),
	}, nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}
