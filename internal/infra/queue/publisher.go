// Package queue publishes rental lifecycle and saga events to RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

const defaultPublishTimeout = time.Second

// RabbitPublisher publishes to a durable topic exchange with the event type
// as routing key. The connection is opened on first use and reopened after
// the broker drops it. Every publish, including a dial, is bounded by the
// publish timeout.
type RabbitPublisher struct {
	url      string
	exchange string
	timeout  time.Duration
	logger   *slog.Logger

	// one-slot semaphore guarding conn and ch; waiting for it honours ctx
	sem  chan struct{}
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitPublisher(cfg config.BrokerConfig, logger *slog.Logger) *RabbitPublisher {
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &RabbitPublisher{
		url:      cfg.URL,
		exchange: cfg.Exchange,
		timeout:  timeout,
		logger:   logger,
		sem:      make(chan struct{}, 1),
	}
}

func (p *RabbitPublisher) Publish(ctx context.Context, event shared.RentalEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return errs.Wrapf(ctx.Err(), "publish %s", event.Type)
	}
	defer func() { <-p.sem }()

	ch, err := p.channel(ctx)
	if err != nil {
		return err
	}
	if err := ch.PublishWithContext(ctx, p.exchange, event.Type, false, false, msg); err != nil {
		p.reset()
		return errs.Wrapf(err, "publish %s", event.Type)
	}
	return nil
}

// channel returns an open channel, dialing when needed. Callers hold p.sem.
func (p *RabbitPublisher) channel(ctx context.Context) (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	// DefaultDial also sets the handshake deadline
	dialTimeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		dialTimeout = time.Until(deadline)
	}
	if dialTimeout <= 0 {
		return nil, errs.Wrap(context.DeadlineExceeded, "dial rabbitmq")
	}
	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open rabbitmq channel")
	}
	if err := ch.ExchangeDeclare(p.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, errs.Wrapf(err, "declare exchange %s", p.exchange)
	}

	p.logger.Info("connected to rabbitmq", "exchange", p.exchange)
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *RabbitPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

func (p *RabbitPublisher) Close() error {
	p.sem <- struct{}{}
	defer func() { <-p.sem }()
	p.reset()
	return nil
}

func newMessage(event shared.RentalEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, errs.Wrap(err, "encode event")
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, shared.RentalEvent) error { return nil }
