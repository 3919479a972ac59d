package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventProfileDeleted = "profile_deleted"
	EventStatsUpdated   = "stats_updated"
)

// Event is the message published after each processed target.
type Event struct {
	Type       string    `json:"type"`
	Platform   string    `json:"platform"`
	Target     string    `json:"target"`
	VideoCount int       `json:"video_count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
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

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// MarkDeleted announces that a tracked profile no longer exists upstream.
func (r *RabbitMQ) MarkDeleted(ctx context.Context, platform, target string) error {
	return r.publish(ctx, Event{
		Type:       EventProfileDeleted,
		Platform:   platform,
		Target:     target,
		OccurredAt: time.Now().UTC(),
	})
}

// UpdateStats announces a successfully refreshed target and how many videos
// were collected for it.
func (r *RabbitMQ) UpdateStats(ctx context.Context, platform, target string, videoCount int) error {
	return r.publish(ctx, Event{
		Type:       EventStatsUpdated,
		Platform:   platform,
		Target:     target,
		VideoCount: videoCount,
		OccurredAt: time.Now().UTC(),
	})
}

func (r *RabbitMQ) publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
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
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	r.logger.Debug("published event",
		"type", ev.Type,
		"platform", ev.Platform,
		"target", ev.Target,
	)

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
