package server

import (
	"context"
	"fmt"

	config "github.com/inference-gateway/super8/server/config"
	middlewares "github.com/inference-gateway/super8/server/middlewares"
	otel "github.com/inference-gateway/super8/server/otel"
	afero "github.com/spf13/afero"
	zap "go.uber.org/zap"
)

// ServerBuilder provides a fluent interface for building media servers with custom components.
// Every component left unset is created from configuration when Build is called.
//
// Example:
//
//	srv, err := NewServerBuilder(cfg, logger).
//	  WithJobRunner(runner).
//	  Build(ctx)
type ServerBuilder interface {
	// WithLogger sets a custom logger for the builder and resulting server
	WithLogger(logger *zap.Logger) ServerBuilder

	// WithFs sets the filesystem backing the storage zones
	WithFs(fs afero.Fs) ServerBuilder

	// WithStorage replaces the filesystem storage entirely
	WithStorage(storage ArtifactStorage) ServerBuilder

	// WithJobRunner sets the runner invoked for each upload
	WithJobRunner(runner JobRunner) ServerBuilder

	// WithIdentifierGenerator sets the artifact ID source
	WithIdentifierGenerator(ids IdentifierGenerator) ServerBuilder

	// WithEventPublisher sets the lifecycle event publisher
	WithEventPublisher(events EventPublisher) ServerBuilder

	// WithSweepLease sets the lease serializing sweeps
	WithSweepLease(lease SweepLease) ServerBuilder

	// WithTelemetry sets the telemetry instance
	WithTelemetry(telemetry otel.OpenTelemetry) ServerBuilder

	// WithAuthenticator sets the authenticator guarding /api routes
	WithAuthenticator(auth middlewares.OIDCAuthenticator) ServerBuilder

	// Build creates the configured server
	Build(ctx context.Context) (MediaServer, error)

	// BuildSweeper creates only the sweeper and the storage it scans
	BuildSweeper(ctx context.Context) (Sweeper, error)
}

var _ ServerBuilder = (*ServerBuilderImpl)(nil)

// ServerBuilderImpl is the concrete implementation of the ServerBuilder interface.
type ServerBuilderImpl struct {
	cfg       *config.Config
	logger    *zap.Logger
	fs        afero.Fs
	storage   ArtifactStorage
	runner    JobRunner
	ids       IdentifierGenerator
	events    EventPublisher
	lease     SweepLease
	telemetry otel.OpenTelemetry
	auth      middlewares.OIDCAuthenticator
}

// NewServerBuilder creates a new server builder with required dependencies.
func NewServerBuilder(cfg *config.Config, logger *zap.Logger) ServerBuilder {
	return &ServerBuilderImpl{
		cfg:    cfg,
		logger: logger,
	}
}

func (b *ServerBuilderImpl) WithLogger(logger *zap.Logger) ServerBuilder {
	b.logger = logger
	return b
}

func (b *ServerBuilderImpl) WithFs(fs afero.Fs) ServerBuilder {
	b.fs = fs
	return b
}

func (b *ServerBuilderImpl) WithStorage(storage ArtifactStorage) ServerBuilder {
	b.storage = storage
	return b
}

func (b *ServerBuilderImpl) WithJobRunner(runner JobRunner) ServerBuilder {
	b.runner = runner
	return b
}

func (b *ServerBuilderImpl) WithIdentifierGenerator(ids IdentifierGenerator) ServerBuilder {
	b.ids = ids
	return b
}

func (b *ServerBuilderImpl) WithEventPublisher(events EventPublisher) ServerBuilder {
	b.events = events
	return b
}

func (b *ServerBuilderImpl) WithSweepLease(lease SweepLease) ServerBuilder {
	b.lease = lease
	return b
}

func (b *ServerBuilderImpl) WithTelemetry(telemetry otel.OpenTelemetry) ServerBuilder {
	b.telemetry = telemetry
	return b
}

func (b *ServerBuilderImpl) WithAuthenticator(auth middlewares.OIDCAuthenticator) ServerBuilder {
	b.auth = auth
	return b
}

// Build creates and returns the configured media server
func (b *ServerBuilderImpl) Build(ctx context.Context) (MediaServer, error) {
	if b.cfg == nil {
		return nil, fmt.Errorf("configuration must be provided")
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}

	if err := b.buildComponents(ctx); err != nil {
		return nil, err
	}

	media := NewMediaService(b.cfg, b.logger, b.storage, b.runner, b.ids, b.events, b.telemetry)
	sweeper := NewSweeper(b.cfg, b.logger, b.storage, b.lease, b.events, b.telemetry)

	return NewMediaServer(b.cfg, b.logger, media, sweeper, b.telemetry, b.auth), nil
}

// BuildSweeper creates only the sweeper, for one-shot sweeps outside the server
func (b *ServerBuilderImpl) BuildSweeper(ctx context.Context) (Sweeper, error) {
	if b.cfg == nil {
		return nil, fmt.Errorf("configuration must be provided")
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}

	if err := b.buildStorage(); err != nil {
		return nil, err
	}
	if err := b.buildLease(ctx); err != nil {
		return nil, err
	}
	if b.events == nil {
		events, err := NewEventPublisher(b.cfg.EventsConfig, b.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
		b.events = events
	}

	return NewSweeper(b.cfg, b.logger, b.storage, b.lease, b.events, b.telemetry), nil
}

func (b *ServerBuilderImpl) buildComponents(ctx context.Context) error {
	if err := b.buildStorage(); err != nil {
		return err
	}

	if b.runner == nil {
		b.runner = NewExecJobRunner(b.cfg.JobConfig, b.logger)
	}

	if b.events == nil {
		events, err := NewEventPublisher(b.cfg.EventsConfig, b.logger)
		if err != nil {
			return fmt.Errorf("failed to create event publisher: %w", err)
		}
		b.events = events
	}

	if err := b.buildLease(ctx); err != nil {
		return err
	}

	if b.telemetry == nil && b.cfg.TelemetryConfig.Enable {
		telemetry, err := otel.NewOpenTelemetry(b.cfg, b.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		b.telemetry = telemetry
	}

	if b.auth == nil {
		auth, err := middlewares.NewOIDCAuthenticatorMiddleware(ctx, b.logger, *b.cfg)
		if err != nil {
			return fmt.Errorf("failed to create OIDC authenticator: %w", err)
		}
		b.auth = auth
	}

	return nil
}

func (b *ServerBuilderImpl) buildStorage() error {
	if b.storage != nil {
		return nil
	}
	if b.fs == nil {
		b.fs = afero.NewOsFs()
	}

	storage, err := NewFilesystemArtifactStorage(b.fs, &b.cfg.StorageConfig, b.logger)
	if err != nil {
		return fmt.Errorf("failed to create artifact storage: %w", err)
	}
	b.storage = storage
	return nil
}

func (b *ServerBuilderImpl) buildLease(ctx context.Context) error {
	if b.lease != nil {
		return nil
	}

	lease, err := NewSweepLease(ctx, b.cfg.SweepLockConfig, b.logger)
	if err != nil {
		return err
	}
	b.lease = lease
	return nil
}
