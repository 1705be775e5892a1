package server

import (
	"context"
	"fmt"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	config "github.com/inference-gateway/super8/server/config"
	zap "go.uber.org/zap"
)

// EventPublisher delivers artifact lifecycle events to an external sink
//
//go:generate go tool counterfeiter -o mocks/fake_event_publisher.go . EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event cloudevents.Event) error
}

// NoopEventPublisher drops every event
type NoopEventPublisher struct{}

// Publish does nothing
func (p *NoopEventPublisher) Publish(ctx context.Context, event cloudevents.Event) error {
	return nil
}

// CloudEventsPublisher posts events to an HTTP sink in CloudEvents binary mode
type CloudEventsPublisher struct {
	client  cloudevents.Client
	logger  *zap.Logger
	target  string
	timeout time.Duration
}

var _ EventPublisher = (*CloudEventsPublisher)(nil)

// NewEventPublisher creates the publisher selected by configuration
func NewEventPublisher(cfg config.EventsConfig, logger *zap.Logger) (EventPublisher, error) {
	if !cfg.Enable {
		return &NoopEventPublisher{}, nil
	}
	return NewCloudEventsPublisher(cfg, logger)
}

// NewCloudEventsPublisher creates an HTTP CloudEvents publisher
func NewCloudEventsPublisher(cfg config.EventsConfig, logger *zap.Logger) (*CloudEventsPublisher, error) {
	if cfg.SinkURL == "" {
		return nil, fmt.Errorf("events sink URL is required")
	}

	client, err := cloudevents.NewClientHTTP()
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudevents client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &CloudEventsPublisher{
		client:  client,
		logger:  logger,
		target:  cfg.SinkURL,
		timeout: timeout,
	}, nil
}

// Publish sends one event and waits for the sink's acknowledgement
func (p *CloudEventsPublisher) Publish(ctx context.Context, event cloudevents.Event) error {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	result := p.client.Send(cloudevents.ContextWithTarget(sendCtx, p.target), event)
	if !cloudevents.IsACK(result) {
		return fmt.Errorf("failed to deliver event %s: %w", event.Type(), result)
	}

	p.logger.Debug("event delivered",
		zap.String("type", event.Type()),
		zap.String("subject", event.Subject()),
		zap.String("sink", p.target))

	return nil
}
