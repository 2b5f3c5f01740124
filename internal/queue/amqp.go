package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"docstatus/internal/logger"
)

const headerRetry = "retry"

// AMQPPublisher publishes persistent JSON messages to a durable queue.
// The connection is dialed on first use and re-dialed after it drops.
type AMQPPublisher struct {
	url   string
	queue string
	log   logrus.FieldLogger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQP validates the settings without dialing.
func NewAMQP(url, queue string, log logrus.FieldLogger) (*AMQPPublisher, error) {
	if url == "" {
		return nil, errors.New("amqp url is required")
	}
	if queue == "" {
		return nil, errors.New("amqp queue name is required")
	}
	return &AMQPPublisher{
		url:   url,
		queue: queue,
		log:   log.WithFields(logrus.Fields{"component": "queue", "driver": DriverAMQP, "queue": queue}),
	}, nil
}

// channel returns an open channel, dialing when needed. Caller holds p.mu.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && p.conn != nil && !p.conn.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}

	p.conn, p.ch = conn, ch
	p.log.Info("amqp channel opened")
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, req EmbeddingRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode embedding request: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.Publish("", p.queue, false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		MessageId:     uuid.NewString(),
		CorrelationId: logger.RequestID(ctx),
		Timestamp:     time.Now().UTC(),
		Body:          body,
		Headers: amqp.Table{
			headerRetry: int16(0),
		},
	})
	if err != nil {
		p.reset()
		p.log.WithError(err).WithField("document_id", req.DocumentID).Error("publish failed")
		return fmt.Errorf("amqp publish: %w", err)
	}

	p.log.WithField("document_id", req.DocumentID).Debug("embedding request published")
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}
