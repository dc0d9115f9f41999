package rabbitmq_client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/init-pkg/vapt-ingest/domain/app"
	"github.com/init-pkg/vapt-ingest/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const exchangeKind = "topic"

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn       *amqp.Connection
	ch         channel
	exchange   string
	routingKey string
	log        *slog.Logger

	mu sync.Mutex
}

var _ app.EventPublisher = &Publisher{}

type nopPublisher struct {
	log *slog.Logger
}

func (this *nopPublisher) PublishReportIngested(_ context.Context, event app.ReportIngestedEvent) error {
	this.log.Debug("event publishing disabled", "batch_id", event.BatchID)
	return nil
}

// New dials the broker and declares the exchange. With no url configured it
// returns a publisher that drops events.
func New(cfg *config.Config, log *slog.Logger, lc fx.Lifecycle) (app.EventPublisher, error) {
	var rmq = cfg.Clients.RabbitMQ
	if rmq.Url == "" {
		log.Info("rabbitmq url not set, report events are not published")
		return &nopPublisher{log}, nil
	}

	conn, err := amqp.Dial(rmq.Url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(rmq.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq declare exchange %s: %w", rmq.Exchange, err)
	}

	p := &Publisher{
		conn:       conn,
		ch:         ch,
		exchange:   rmq.Exchange,
		routingKey: rmq.RoutingKey,
		log:        log,
	}

	lc.Append(fx.StopHook(p.Close))

	return p, nil
}

func (this *Publisher) PublishReportIngested(ctx context.Context, event app.ReportIngestedEvent) error {
	msg, err := newPublishing(event)
	if err != nil {
		return err
	}

	// amqp channels are not safe for concurrent publishing
	this.mu.Lock()
	defer this.mu.Unlock()

	if err := this.ch.PublishWithContext(ctx, this.exchange, this.routingKey, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}

	this.log.Debug("report ingested event published",
		"batch_id", event.BatchID,
		"exchange", this.exchange,
		"routing_key", this.routingKey)

	return nil
}

func (this *Publisher) Close() error {
	if err := this.ch.Close(); err != nil {
		this.log.Warn("rabbitmq channel close", "error", err)
	}
	if this.conn == nil {
		return nil
	}
	return this.conn.Close()
}

func newPublishing(event app.ReportIngestedEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode event: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BatchID,
		Timestamp:    event.IngestedAt,
		Type:         "report.ingested",
		Body:         body,
	}, nil
}
