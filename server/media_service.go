package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	humanize "github.com/dustin/go-humanize"
	mimetype "github.com/gabriel-vasile/mimetype"
	config "github.com/inference-gateway/super8/server/config"
	otel "github.com/inference-gateway/super8/server/otel"
	types "github.com/inference-gateway/super8/types"
	afero "github.com/spf13/afero"
	zap "go.uber.org/zap"
)

// sniffLen is how much of an upload is inspected to detect its media type
const sniffLen = 3072

// Upload is one file received by the request handler
type Upload struct {
	// Body is nil when the request carried no file
	Body io.Reader
	// Size is the size declared by the client
	Size     int64
	Filename string
}

// MediaService owns the lifecycle of an upload from receipt to a servable artifact
//
//go:generate go tool counterfeiter -o mocks/fake_media_service.go . MediaService
type MediaService interface {
	// Process validates and persists the upload, runs the transformation and
	// returns the artifact ID. The inbound file is gone when Process returns.
	Process(ctx context.Context, upload Upload) (string, error)

	// Open returns the outbound artifact for an ID, or a NotFoundError
	Open(ctx context.Context, artifactID string) (afero.File, os.FileInfo, error)

	// ContentType returns the media type served for outbound artifacts
	ContentType() string

	// Health reports whether both zones can take part in a request
	Health(ctx context.Context) string
}

// MediaServiceImpl is the default MediaService
type MediaServiceImpl struct {
	cfg       *config.Config
	logger    *zap.Logger
	storage   ArtifactStorage
	runner    JobRunner
	ids       IdentifierGenerator
	events    EventPublisher
	telemetry otel.OpenTelemetry
}

var _ MediaService = (*MediaServiceImpl)(nil)

// NewMediaService wires the request handler's collaborators. events and telemetry may be nil.
func NewMediaService(
	cfg *config.Config,
	logger *zap.Logger,
	storage ArtifactStorage,
	runner JobRunner,
	ids IdentifierGenerator,
	events EventPublisher,
	telemetry otel.OpenTelemetry,
) *MediaServiceImpl {
	if ids == nil {
		ids = NewIdentifierGenerator()
	}
	if events == nil {
		events = &NoopEventPublisher{}
	}

	return &MediaServiceImpl{
		cfg:       cfg,
		logger:    logger,
		storage:   storage,
		runner:    runner,
		ids:       ids,
		events:    events,
		telemetry: telemetry,
	}
}

// Process runs Received -> Validated -> Persisted -> Processing -> {Served | Failed}
func (s *MediaServiceImpl) Process(ctx context.Context, upload Upload) (string, error) {
	body, err := s.validate(upload)
	if err != nil {
		s.recordUpload(ctx, otel.OutcomeRejected, 0)
		return "", err
	}

	artifactID := s.ids.NewID()
	logger := s.logger.With(zap.String("artifact_id", artifactID))

	written, err := s.storage.Write(ctx, ZoneInbound, artifactID, body)
	if err != nil {
		if isTooLarge(err) {
			s.recordUpload(ctx, otel.OutcomeRejected, 0)
			return "", s.tooLarge()
		}
		logger.Error("failed to persist upload", zap.Error(err))
		s.recordUpload(ctx, otel.OutcomeFailed, 0)
		return "", err
	}

	logger.Info("upload persisted",
		zap.Stringer("state", types.ArtifactStateReceived),
		zap.String("filename", upload.Filename),
		zap.String("size", humanize.IBytes(uint64(written))))

	logger.Debug("processing upload", zap.Stringer("state", types.ArtifactStateProcessing))
	if err := s.transform(ctx, artifactID); err != nil {
		logger.Error("transformation failed", zap.Stringer("state", types.ArtifactStateFailed), zap.Error(err))
		s.discard(ctx, ZoneOutbound, artifactID)
		s.discard(ctx, ZoneInbound, artifactID)
		s.publish(ctx, types.NewArtifactFailedEvent(s.cfg.EventsConfig.Source, artifactID, err.Error()))
		s.recordUpload(ctx, otel.OutcomeFailed, written)
		return "", err
	}

	s.discard(ctx, ZoneInbound, artifactID)

	logger.Info("artifact ready", zap.Stringer("state", types.ArtifactStateReady))
	s.publish(ctx, types.NewArtifactReadyEvent(s.cfg.EventsConfig.Source, artifactID, written))
	s.recordUpload(ctx, otel.OutcomeSuccess, written)

	return artifactID, nil
}

// validate rejects missing and oversized payloads and returns a reader that cannot exceed the ceiling
func (s *MediaServiceImpl) validate(upload Upload) (io.Reader, error) {
	if upload.Body == nil {
		return nil, NewValidationError(http.StatusBadRequest, "No video file provided")
	}

	maxSize := s.cfg.UploadConfig.MaxSize
	if upload.Size > maxSize {
		return nil, s.tooLarge()
	}

	body := io.Reader(&limitedReader{r: upload.Body, remaining: maxSize})

	if s.cfg.UploadConfig.RequireMedia {
		buffered := bufio.NewReaderSize(body, sniffLen)
		head, err := buffered.Peek(sniffLen)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			if isTooLarge(err) {
				return nil, s.tooLarge()
			}
			return nil, NewValidationError(http.StatusBadRequest, "Unable to read video file")
		}

		detected := mimetype.Detect(head)
		if !isMedia(detected) {
			return nil, NewValidationError(http.StatusUnsupportedMediaType,
				"Unsupported file type %s, expected a video", detected.String())
		}
		body = buffered
	}

	return body, nil
}

// transform invokes the job runner, turning panics and foreign errors into JobErrors
func (s *MediaServiceImpl) transform(ctx context.Context, artifactID string) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = NewJobError(0, "", false, fmt.Errorf("panic during transformation: %v", r))
		}

		var jobErr *JobError
		if err != nil && !errors.As(err, &jobErr) {
			err = NewJobError(0, "", false, err)
		}

		if s.telemetry != nil {
			timedOut := jobErr != nil && jobErr.TimedOut
			s.telemetry.RecordJobDuration(ctx, err == nil, timedOut, float64(time.Since(start).Milliseconds()))
		}
	}()

	// The job may run in another working directory, so it only ever sees absolute paths.
	inbound, err := filepath.Abs(s.storage.PathFor(ZoneInbound, artifactID))
	if err != nil {
		return fmt.Errorf("failed to resolve inbound path: %w", err)
	}
	outbound, err := filepath.Abs(s.storage.PathFor(ZoneOutbound, artifactID))
	if err != nil {
		return fmt.Errorf("failed to resolve outbound path: %w", err)
	}

	return s.runner.Run(ctx, inbound, outbound)
}

// Health is unhealthy when the outbound zone is unusable, since no upload can then
// complete, and degraded when only the inbound zone is, since stored artifacts
// can still be served.
func (s *MediaServiceImpl) Health(ctx context.Context) string {
	if err := s.storage.CheckZone(ctx, ZoneOutbound); err != nil {
		s.logger.Warn("outbound zone unavailable", zap.Error(err))
		return types.HealthStatusUnhealthy
	}
	if err := s.storage.CheckZone(ctx, ZoneInbound); err != nil {
		s.logger.Warn("inbound zone unavailable", zap.Error(err))
		return types.HealthStatusDegraded
	}
	return types.HealthStatusHealthy
}

// Open checks existence immediately before opening so only complete artifacts are served
func (s *MediaServiceImpl) Open(ctx context.Context, artifactID string) (afero.File, os.FileInfo, error) {
	if !ValidID(artifactID) {
		return nil, nil, NewNotFoundError(ZoneOutbound, artifactID)
	}

	exists, err := s.storage.Exists(ctx, ZoneOutbound, artifactID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check artifact existence: %w", err)
	}
	if !exists {
		return nil, nil, NewNotFoundError(ZoneOutbound, artifactID)
	}

	file, err := s.storage.Open(ctx, ZoneOutbound, artifactID)
	if err != nil {
		return nil, nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("failed to stat artifact: %w", err)
	}

	return file, info, nil
}

// ContentType returns the configured media type, falling back to a generic binary type
func (s *MediaServiceImpl) ContentType() string {
	if s.cfg.StorageConfig.OutboundMediaType != "" {
		return s.cfg.StorageConfig.OutboundMediaType
	}
	return "application/octet-stream"
}

// discard removes an artifact; failures are logged and left for the sweeper
func (s *MediaServiceImpl) discard(ctx context.Context, zone Zone, artifactID string) {
	if err := s.storage.Remove(context.WithoutCancel(ctx), zone, artifactID); err != nil {
		s.logger.Warn("failed to remove artifact, leaving it to the sweeper",
			zap.String("artifact_id", artifactID),
			zap.String("zone", string(zone)),
			zap.Error(err))
	}
}

// publish delivers a lifecycle event; delivery failures never affect the request
func (s *MediaServiceImpl) publish(ctx context.Context, event cloudevents.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event",
			zap.String("type", event.Type()),
			zap.String("subject", event.Subject()),
			zap.Error(err))
	}
}

func (s *MediaServiceImpl) recordUpload(ctx context.Context, outcome string, size int64) {
	if s.telemetry != nil {
		s.telemetry.RecordUpload(ctx, outcome, size)
	}
}

func (s *MediaServiceImpl) tooLarge() error {
	return newFileTooLargeError(s.cfg.UploadConfig.MaxSize)
}

func newFileTooLargeError(maxSize int64) error {
	return NewValidationError(http.StatusRequestEntityTooLarge,
		"File too large, maximum size is %s", humanize.IBytes(uint64(maxSize)))
}

func isMedia(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "video/") || strings.HasPrefix(m.String(), "audio/") {
			return true
		}
	}
	return false
}

// errTooLarge is returned by limitedReader once the ceiling is crossed
var errTooLarge = errors.New("upload exceeds the maximum size")

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.Is(err, errTooLarge) || errors.As(err, &maxBytesErr)
}

// limitedReader fails, instead of truncating, when more than the allowed bytes arrive
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, errTooLarge
	}
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, errTooLarge
	}
	return n, err
}
