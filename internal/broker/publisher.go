package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"fund_sync/internal/domain"
)

const (
	ActionRemoteApplied = "remote_applied"
	ActionLocalKept     = "local_kept"
)

// SyncMessage announces that a fund and its designation agree again.
type SyncMessage struct {
	Action        string            `json:"action"`
	FundID        int64             `json:"fund_id"`
	DesignationID string            `json:"designation_id"`
	Source        domain.SyncSource `json:"source"`
	Timestamp     time.Time         `json:"timestamp"`
}

func newSyncMessage(fund *domain.Fund, source domain.SyncSource, at time.Time) SyncMessage {
	action := ActionRemoteApplied
	if source == domain.SourceLocal {
		action = ActionLocalKept
	}
	return SyncMessage{
		Action:        action,
		FundID:        fund.ID,
		DesignationID: fund.Sync.DesignationID,
		Source:        source,
		Timestamp:     at.UTC(),
	}
}

func (r *RabbitMQ) Publish(ctx context.Context, fund *domain.Fund, source domain.SyncSource) error {
	now := time.Now()
	msg := newSyncMessage(fund, source, now)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    now,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published sync notification",
		"fund_id", fund.ID,
		"action", msg.Action,
	)

	return nil
}
