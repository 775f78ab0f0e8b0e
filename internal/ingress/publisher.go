package ingress

import (
	"context"
	"fmt"
	"net/http"

	"musafir/internal/config"
	"musafir/internal/events"
	"musafir/internal/httpclient"
	"musafir/internal/logging"
)

// Publisher sends one enveloped domain event to the shared event-bus
// ingress. One network call per invocation, no retries and no local
// buffering: a transport failure propagates to the caller, whose own
// retry or compensation policy governs re-send. A crash after a
// successful send but before the caller's own work completes is a
// partial-failure risk the caller must tolerate.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

type httpPublisher struct {
	http     *httpclient.Client
	producer string
	logger   logging.Logger
}

// NewPublisher builds the HTTP publisher for the bus ingress. The API
// key and content type ride on every request as static headers. An
// empty base URL yields a no-op publisher for environments without a
// bus.
func NewPublisher(cfg config.IngressConfig, logger logging.Logger) (Publisher, error) {
	if cfg.BaseURL == "" {
		return NoopPublisher{}, nil
	}

	headers := http.Header{}
	if cfg.APIKey != "" {
		headers.Set("X-API-Key", cfg.APIKey)
	}

	cli, err := httpclient.New(cfg.BaseURL, cfg.Timeout(), headers, logger.With("component", "bus_ingress"))
	if err != nil {
		return nil, fmt.Errorf("create ingress client: %w", err)
	}

	return &httpPublisher{
		http:     cli,
		producer: cfg.Producer,
		logger:   logger.With("component", "publisher"),
	}, nil
}

func (p *httpPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	env, err := events.NewEnvelope(p.producer, eventType, payload, events.CorrelationFromContext(ctx))
	if err != nil {
		return fmt.Errorf("build envelope: %w", err)
	}

	if err := p.http.PostJSON(ctx, "/events", env, nil); err != nil {
		p.logger.Error("failed to publish event",
			"type", eventType,
			"message_id", env.MessageID,
			"error", err,
		)
		return fmt.Errorf("publish %s: %w", eventType, err)
	}

	p.logger.Debug("event published",
		"type", eventType,
		"message_id", env.MessageID,
		"idempotency_key", env.IdempotencyKey,
	)
	return nil
}

// NoopPublisher is used in tests and in environments without a bus.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	return nil
}
