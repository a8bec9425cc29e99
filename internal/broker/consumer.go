package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"fund_sync/internal/domain"
	"fund_sync/internal/service"
)

var ErrDeliveriesClosed = errors.New("delivery channel closed")

type EventHandler interface {
	Dispatch(ctx context.Context, ev domain.FundEvent) error
}

// Consume dispatches lifecycle events from the events queue one at a time
// until ctx is done or the channel closes.
func (r *RabbitMQ) Consume(ctx context.Context, handler EventHandler) error {
	ch, err := r.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consumer channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, r.eventsQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", r.eventsQueue, err)
	}

	r.logger.Info("consuming fund events", "queue", r.eventsQueue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return ErrDeliveriesClosed
			}
			handleDelivery(ctx, handler, d, r.logger)
		}
	}
}

// handleDelivery acks handled events. Events that can never succeed are
// dropped; local store failures go back on the queue.
func handleDelivery(ctx context.Context, handler EventHandler, d amqp.Delivery, logger *slog.Logger) {
	var ev domain.FundEvent
	if err := json.Unmarshal(d.Body, &ev); err != nil || ev.FundID <= 0 {
		logger.Warn("rejecting malformed fund event", "body", string(d.Body), "error", err)
		nack(d, false, logger)
		return
	}

	err := handler.Dispatch(ctx, ev)
	switch {
	case err == nil:
		if err := d.Ack(false); err != nil {
			logger.Error("failed to ack fund event", "error", err)
		}
	case errors.Is(err, service.ErrUnknownEvent):
		logger.Warn("rejecting fund event", "type", ev.Type, "fund_id", ev.FundID, "error", err)
		nack(d, false, logger)
	default:
		logger.Error("fund event failed, requeueing", "type", ev.Type, "fund_id", ev.FundID, "error", err)
		nack(d, true, logger)
	}
}

func nack(d amqp.Delivery, requeue bool, logger *slog.Logger) {
	if err := d.Nack(false, requeue); err != nil {
		logger.Error("failed to nack fund event", "error", err)
	}
}
