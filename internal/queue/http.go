package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"docstatus/internal/logger"
)

// StatusError is returned when the embeddings endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("embeddings endpoint returned %d: %s", e.StatusCode, e.Body)
}

// HTTPPublisher POSTs embedding requests as JSON to an HTTP endpoint.
type HTTPPublisher struct {
	url    string
	token  string
	client *http.Client
	log    logrus.FieldLogger
}

func NewHTTP(url, token string, timeout time.Duration, log logrus.FieldLogger) (*HTTPPublisher, error) {
	if url == "" {
		return nil, errors.New("embeddings http url is required")
	}
	return &HTTPPublisher{
		url:   url,
		token: token,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log.WithFields(logrus.Fields{"component": "queue", "driver": DriverHTTP}),
	}, nil
}

func (p *HTTPPublisher) Publish(ctx context.Context, req EmbeddingRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode embedding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build embeddings request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.token)
	}
	if rid := logger.RequestID(ctx); rid != "" {
		httpReq.Header.Set("X-Request-ID", rid)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		p.log.WithError(err).WithField("document_id", req.DocumentID).Error("publish failed")
		return fmt.Errorf("embeddings request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(msg))}
	}

	p.log.WithField("document_id", req.DocumentID).Debug("embedding request published")
	return nil
}

func (p *HTTPPublisher) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
