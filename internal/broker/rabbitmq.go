// Package broker carries fund sync traffic over RabbitMQ: it publishes
// sync notifications and consumes fund lifecycle events from the host CMS.
package broker

import (
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Config struct {
	URL              string
	Exchange         string
	RoutingKey       string
	QueueName        string
	EventsRoutingKey string
	EventsQueue      string
}

type RabbitMQ struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	exchange    string
	routingKey  string
	eventsQueue string
	logger      *slog.Logger
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	bindings := []struct{ queue, key string }{
		{cfg.QueueName, cfg.RoutingKey},
		{cfg.EventsQueue, cfg.EventsRoutingKey},
	}
	for _, b := range bindings {
		if b.queue == "" {
			continue
		}
		if err := declareQueue(ch, cfg.Exchange, b.queue, b.key); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
		"events_queue", cfg.EventsQueue,
	)

	return &RabbitMQ{
		conn:        conn,
		channel:     ch,
		exchange:    cfg.Exchange,
		routingKey:  cfg.RoutingKey,
		eventsQueue: cfg.EventsQueue,
		logger:      logger.With("component", "broker"),
	}, nil
}

func declareQueue(ch *amqp.Channel, exchange, name, key string) error {
	q, err := ch.QueueDeclare(
		name,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", name, err)
	}

	if err := ch.QueueBind(q.Name, key, exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", name, err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
