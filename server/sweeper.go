package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	config "github.com/inference-gateway/super8/server/config"
	otel "github.com/inference-gateway/super8/server/otel"
	types "github.com/inference-gateway/super8/types"
	zap "go.uber.org/zap"
)

// SweepResult summarizes one sweep
type SweepResult struct {
	OutboundRemoved int  `json:"outbound_removed"`
	InboundRemoved  int  `json:"inbound_removed"`
	TempRemoved     int  `json:"temp_removed"`
	Skipped         bool `json:"skipped"`
}

// Total returns the number of artifacts evicted from both zones
func (r SweepResult) Total() int {
	return r.OutboundRemoved + r.InboundRemoved
}

// Sweeper evicts artifacts whose age exceeds their zone's threshold
//
//go:generate go tool counterfeiter -o mocks/fake_sweeper.go . Sweeper
type Sweeper interface {
	// Start runs one sweep immediately, then one per interval until Stop or ctx is done
	Start(ctx context.Context)

	// Stop halts the periodic sweep, waits for the loop to exit and releases the lease backend
	Stop()

	// Sweep runs a single pass over both zones
	Sweep(ctx context.Context) (SweepResult, error)
}

// SweeperImpl is the default Sweeper
type SweeperImpl struct {
	cfg       config.RetentionConfig
	source    string
	logger    *zap.Logger
	storage   ArtifactStorage
	lease     SweepLease
	events    EventPublisher
	telemetry otel.OpenTelemetry

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

var _ Sweeper = (*SweeperImpl)(nil)

// NewSweeper creates a sweeper. lease, events and telemetry may be nil.
func NewSweeper(
	cfg *config.Config,
	logger *zap.Logger,
	storage ArtifactStorage,
	lease SweepLease,
	events EventPublisher,
	telemetry otel.OpenTelemetry,
) *SweeperImpl {
	if lease == nil {
		lease = NewInMemorySweepLease()
	}
	if events == nil {
		events = &NoopEventPublisher{}
	}

	return &SweeperImpl{
		cfg:       cfg.RetentionConfig,
		source:    cfg.EventsConfig.Source,
		logger:    logger,
		storage:   storage,
		lease:     lease,
		events:    events,
		telemetry: telemetry,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start sweeps once and then launches the periodic loop
func (s *SweeperImpl) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}

	s.runSweep(ctx)

	interval := s.cfg.SweepInterval
	if interval <= 0 {
		s.logger.Info("periodic sweep disabled", zap.Duration("sweep_interval", interval))
		close(s.done)
		return
	}

	s.logger.Info("starting sweeper",
		zap.Duration("sweep_interval", interval),
		zap.Duration("outbound_max_age", s.cfg.OutboundMaxAge),
		zap.Duration("inbound_max_age", s.cfg.InboundMaxAge))

	ticker := time.NewTicker(interval)
	go func() {
		defer close(s.done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("sweeper context cancelled")
				return
			case <-s.stop:
				s.logger.Info("sweeper shutting down")
				return
			case <-ticker.C:
				s.runSweep(ctx)
			}
		}
	}()
}

// Stop signals the loop and waits for an in-flight sweep to finish
func (s *SweeperImpl) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		if s.started.Load() {
			<-s.done
		}
		if err := s.lease.Close(); err != nil {
			s.logger.Warn("failed to close sweep lease", zap.Error(err))
		}
	})
}

func (s *SweeperImpl) runSweep(ctx context.Context) {
	if _, err := s.Sweep(ctx); err != nil {
		s.logger.Error("sweep failed", zap.Error(err))
	}
}

// Sweep removes every artifact strictly older than its zone threshold. One
// failing entry or zone does not stop the rest of the pass.
func (s *SweeperImpl) Sweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	release, ok, err := s.lease.TryAcquire(ctx)
	if err != nil {
		return result, NewCleanupError(fmt.Errorf("failed to acquire sweep lease: %w", err))
	}
	if !ok {
		s.logger.Debug("sweep already in progress, skipping")
		result.Skipped = true
		if s.telemetry != nil {
			s.telemetry.RecordSweepSkipped(ctx)
		}
		return result, nil
	}
	defer release()

	s.logger.Debug("starting sweep")

	var errs []error
	for _, zone := range Zones {
		maxAge := s.maxAge(zone)

		removed, err := s.sweepZone(ctx, zone, maxAge)
		if err != nil {
			errs = append(errs, err)
		}

		switch zone {
		case ZoneOutbound:
			result.OutboundRemoved = removed
		case ZoneInbound:
			result.InboundRemoved = removed
		}

		temps, err := s.storage.RemoveStaleTemp(ctx, zone, maxAge)
		if err != nil {
			s.logger.Warn("failed to purge stale temp files", zap.String("zone", string(zone)), zap.Error(err))
		}
		result.TempRemoved += temps

		if s.telemetry != nil {
			s.telemetry.RecordSweep(ctx, string(zone), removed)
		}
		if removed > 0 {
			event := types.NewArtifactsExpiredEvent(s.source, string(zone), removed)
			if err := s.events.Publish(ctx, event); err != nil {
				s.logger.Warn("failed to publish event", zap.String("type", event.Type()), zap.Error(err))
			}
		}
	}

	if result.Total() > 0 || result.TempRemoved > 0 {
		s.logger.Info("sweep completed",
			zap.Int("outbound_removed", result.OutboundRemoved),
			zap.Int("inbound_removed", result.InboundRemoved),
			zap.Int("temp_removed", result.TempRemoved))
	}

	if len(errs) > 0 {
		return result, NewCleanupError(errors.Join(errs...))
	}
	return result, nil
}

func (s *SweeperImpl) sweepZone(ctx context.Context, zone Zone, maxAge time.Duration) (int, error) {
	entries, err := s.storage.ListWithAge(ctx, zone)
	if err != nil {
		s.logger.Error("failed to list zone", zap.String("zone", string(zone)), zap.Error(err))
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if entry.Age <= maxAge {
			continue
		}
		if err := s.storage.Remove(ctx, zone, entry.ID); err != nil {
			s.logger.Warn("failed to remove expired artifact",
				zap.String("zone", string(zone)),
				zap.String("artifact_id", entry.ID),
				zap.Error(err))
			continue
		}
		s.logger.Debug("removed expired artifact",
			zap.String("zone", string(zone)),
			zap.String("artifact_id", entry.ID),
			zap.Duration("age", entry.Age))
		removed++
	}

	return removed, nil
}

func (s *SweeperImpl) maxAge(zone Zone) time.Duration {
	if zone == ZoneInbound {
		return s.cfg.InboundMaxAge
	}
	return s.cfg.OutboundMaxAge
}
