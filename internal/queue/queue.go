// Package queue submits documents for embedding. Two transports are supported:
// a durable RabbitMQ queue and a plain HTTP endpoint.
package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"docstatus/internal/config"
)

const (
	DriverAMQP = "amqp"
	DriverHTTP = "http"
)

var ErrUnknownDriver = errors.New("unknown embeddings driver")

// EmbeddingRequest is the message body sent for every document submitted for embedding.
type EmbeddingRequest struct {
	DocumentID  string    `json:"document_id"`
	StoragePath string    `json:"storage_path"`
	FileName    string    `json:"file_name"`
	RequestedAt time.Time `json:"requested_at"`
}

// Publisher delivers embedding requests to the indexing pipeline.
type Publisher interface {
	Publish(ctx context.Context, req EmbeddingRequest) error
	Close() error
}

// New builds the publisher selected by cfg.Driver.
func New(cfg config.EmbeddingsConfig, log logrus.FieldLogger) (Publisher, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverAMQP:
		return NewAMQP(cfg.AMQPURL, cfg.QueueName, log)
	case DriverHTTP:
		return NewHTTP(cfg.HTTPURL, cfg.HTTPToken, cfg.HTTPTimeout, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
