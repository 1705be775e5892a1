package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	gin "github.com/gin-gonic/gin"
	config "github.com/inference-gateway/super8/server/config"
	middlewares "github.com/inference-gateway/super8/server/middlewares"
	otel "github.com/inference-gateway/super8/server/otel"
	types "github.com/inference-gateway/super8/types"
	zap "go.uber.org/zap"
)

const (
	// multipartSlack is the allowance for multipart framing on top of the upload ceiling
	multipartSlack = 1 << 20

	// responseSlack is the time left to write the process response after the job deadline
	responseSlack = 30 * time.Second
)

const banner = `Super8 Camera Effect API

POST /api/process - Process video with super8 effect
GET /api/video/:id - Download a processed video
GET /api/cleanup - Remove expired videos
`

// MediaServer exposes the upload, retrieval and cleanup endpoints
type MediaServer interface {
	// Start starts the sweeper and serves HTTP until ctx is done or the listener fails
	Start(ctx context.Context) error

	// Stop gracefully stops the HTTP servers and the sweeper
	Stop(ctx context.Context) error

	// Handler returns the HTTP handler serving every route
	Handler() http.Handler
}

type MediaServerImpl struct {
	cfg     *config.Config
	logger  *zap.Logger
	media   MediaService
	sweeper Sweeper
	otel    otel.OpenTelemetry
	auth    middlewares.OIDCAuthenticator
	router  *gin.Engine

	// Server state
	httpServer    *http.Server
	metricsServer *http.Server
	stopOnce      sync.Once
	stopErr       error
}

var _ MediaServer = (*MediaServerImpl)(nil)

// NewMediaServer creates the HTTP server. telemetry and auth may be nil.
func NewMediaServer(
	cfg *config.Config,
	logger *zap.Logger,
	media MediaService,
	sweeper Sweeper,
	telemetry otel.OpenTelemetry,
	auth middlewares.OIDCAuthenticator,
) *MediaServerImpl {
	if auth == nil {
		auth = &middlewares.OIDCAuthenticatorNoop{}
	}

	s := &MediaServerImpl{
		cfg:     cfg,
		logger:  logger,
		media:   media,
		sweeper: sweeper,
		otel:    telemetry,
		auth:    auth,
	}
	s.router = s.setupRouter()

	return s
}

// Handler returns the gin engine
func (s *MediaServerImpl) Handler() http.Handler {
	return s.router
}

func (s *MediaServerImpl) setupRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	if s.cfg.Debug {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = 32 << 20

	r.Use(gin.Recovery())
	r.Use(middlewares.LoggingMiddleware(s.logger, s.cfg.ServerConfig.DisableHealthcheckLog))

	r.GET("/", s.handleIndex)
	r.GET("/health", s.handleHealth)

	handlers := []gin.HandlerFunc{}
	if s.cfg.TelemetryConfig.Enable && s.otel != nil {
		telemetryMw, err := middlewares.NewTelemetryMiddleware(*s.cfg, s.otel, s.logger)
		if err != nil {
			s.logger.Error("failed to create telemetry middleware", zap.Error(err))
		} else {
			handlers = append(handlers, telemetryMw.Middleware())
		}
	}
	if !s.cfg.AuthConfig.Enable {
		s.logger.Warn("authentication is disabled, /api routes are public")
	}
	handlers = append(handlers, s.auth.Middleware())

	api := r.Group("/api", handlers...)
	api.POST("/process", s.handleProcess)
	api.GET("/video/:id", s.handleVideo)
	api.GET("/cleanup", s.handleCleanup)

	return r
}

// Start starts the sweeper, the optional metrics server and the HTTP server
func (s *MediaServerImpl) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:           fmt.Sprintf(":%s", s.cfg.ServerConfig.Port),
		Handler:        s.router,
		ReadTimeout:    s.cfg.ServerConfig.ReadTimeout,
		WriteTimeout:   s.cfg.ServerConfig.WriteTimeout,
		IdleTimeout:    s.cfg.ServerConfig.IdleTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	s.logger.Info("starting media server",
		zap.String("port", s.cfg.ServerConfig.Port),
		zap.String("service_name", s.cfg.ServiceName),
		zap.String("version", s.cfg.ServiceVersion),
		zap.String("inbound_dir", s.cfg.StorageConfig.InboundPath()),
		zap.String("outbound_dir", s.cfg.StorageConfig.OutboundPath()))

	s.sweeper.Start(ctx)

	if s.cfg.TelemetryConfig.Enable && s.otel != nil {
		metricsRouter := gin.New()
		metricsRouter.Use(gin.Recovery())
		metricsRouter.GET("/metrics", gin.WrapH(s.otel.Handler()))

		metricsAddr := s.cfg.TelemetryConfig.MetricsConfig.Host + ":" + s.cfg.TelemetryConfig.MetricsConfig.Port
		s.metricsServer = &http.Server{
			Addr:         metricsAddr,
			Handler:      metricsRouter,
			ReadTimeout:  s.cfg.TelemetryConfig.MetricsConfig.ReadTimeout,
			WriteTimeout: s.cfg.TelemetryConfig.MetricsConfig.WriteTimeout,
			IdleTimeout:  s.cfg.TelemetryConfig.MetricsConfig.IdleTimeout,
		}

		go func() {
			s.logger.Info("starting metrics server", zap.String("address", metricsAddr))
			if err := s.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	errChan := make(chan error, 1)
	go func() {
		if s.cfg.ServerConfig.TLSConfig.Enable {
			errChan <- s.httpServer.ListenAndServeTLS(
				s.cfg.ServerConfig.TLSConfig.CertPath,
				s.cfg.ServerConfig.TLSConfig.KeyPath,
			)
		} else {
			errChan <- s.httpServer.ListenAndServe()
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("media server context cancelled, shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		s.logger.Error("media server failed", zap.Error(err))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return errors.Join(fmt.Errorf("media server failed: %w", err), s.Stop(shutdownCtx))
	}
}

// Stop gracefully stops the servers, waits for the sweeper and flushes telemetry
func (s *MediaServerImpl) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		s.stopErr = s.stop(ctx)
	})
	return s.stopErr
}

func (s *MediaServerImpl) stop(ctx context.Context) error {
	s.logger.Info("stopping media server")

	var errs []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("error stopping HTTP server", zap.Error(err))
			errs = append(errs, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			s.logger.Error("error stopping metrics server", zap.Error(err))
			errs = append(errs, err)
		}
	}

	s.sweeper.Stop()

	if s.otel != nil {
		if err := s.otel.ShutDown(ctx); err != nil {
			s.logger.Error("error shutting down telemetry", zap.Error(err))
			errs = append(errs, err)
		}
	}

	s.logger.Info("media server stopped")
	return errors.Join(errs...)
}

func (s *MediaServerImpl) handleIndex(c *gin.Context) {
	c.String(http.StatusOK, banner)
}

func (s *MediaServerImpl) handleHealth(c *gin.Context) {
	status := s.media.Health(c.Request.Context())

	code := http.StatusOK
	if status == types.HealthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleProcess accepts a multipart upload and answers once the transformation has finished
func (s *MediaServerImpl) handleProcess(c *gin.Context) {
	maxSize := s.cfg.UploadConfig.MaxSize
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+multipartSlack)

	var upload Upload
	fileHeader, err := c.FormFile(s.cfg.UploadConfig.FormField)
	switch {
	case err == nil:
		file, openErr := fileHeader.Open()
		if openErr != nil {
			s.logger.Error("failed to open uploaded file", zap.Error(openErr))
			s.respondProcessError(c, NewWriteError(ZoneInbound, "", openErr))
			return
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				s.logger.Debug("failed to close uploaded file", zap.Error(closeErr))
			}
		}()
		upload = Upload{Body: file, Size: fileHeader.Size, Filename: fileHeader.Filename}
	case isTooLarge(err):
		s.respondProcessError(c, newFileTooLargeError(maxSize))
		return
	default:
		s.logger.Debug("upload carried no file", zap.String("field", s.cfg.UploadConfig.FormField), zap.Error(err))
	}

	s.extendWriteDeadline(c)

	artifactID, err := s.media.Process(c.Request.Context(), upload)
	if err != nil {
		s.respondProcessError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ProcessResponse{Success: true, VideoID: artifactID})
}

// extendWriteDeadline makes the connection outlive the transformation, which
// may run longer than the server-wide write timeout.
func (s *MediaServerImpl) extendWriteDeadline(c *gin.Context) {
	writeTimeout := s.cfg.ServerConfig.WriteTimeout
	if writeTimeout == 0 {
		return
	}

	var deadline time.Time
	if jobTimeout := s.cfg.JobConfig.Timeout; jobTimeout > 0 {
		deadline = time.Now().Add(max(writeTimeout, jobTimeout+responseSlack))
	}

	if err := http.NewResponseController(c.Writer).SetWriteDeadline(deadline); err != nil {
		s.logger.Debug("could not extend write deadline", zap.Error(err))
	}
}

func (s *MediaServerImpl) respondProcessError(c *gin.Context, err error) {
	c.JSON(statusForError(err), types.ProcessResponse{Success: false, Error: err.Error()})
}

// handleVideo streams an outbound artifact with byte range support
func (s *MediaServerImpl) handleVideo(c *gin.Context) {
	artifactID := c.Param("id")

	file, info, err := s.media.Open(c.Request.Context(), artifactID)
	if err != nil {
		if statusForError(err) == http.StatusNotFound {
			c.String(http.StatusNotFound, "Video not found")
			return
		}
		s.logger.Error("failed to open artifact", zap.String("artifact_id", artifactID), zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to read video")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.Error("failed to close artifact", zap.String("artifact_id", artifactID), zap.Error(closeErr))
		}
	}()

	c.Header("Content-Type", s.media.ContentType())
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), file)
}

// handleCleanup runs an out-of-band sweep
func (s *MediaServerImpl) handleCleanup(c *gin.Context) {
	result, err := s.sweeper.Sweep(c.Request.Context())
	if err != nil {
		s.logger.Error("cleanup failed", zap.Error(err))
		c.JSON(statusForError(err), types.CleanupResponse{
			Success: false,
			Removed: result.Total(),
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.CleanupResponse{
		Success: true,
		Removed: result.Total(),
		Skipped: result.Skipped,
	})
}
