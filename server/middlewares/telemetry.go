package middlewares

import (
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"
	config "github.com/inference-gateway/super8/server/config"
	otel "github.com/inference-gateway/super8/server/otel"
	zap "go.uber.org/zap"
)

type Telemetry interface {
	Middleware() gin.HandlerFunc
}

type TelemetryImpl struct {
	cfg       config.Config
	telemetry otel.OpenTelemetry
	logger    *zap.Logger
}

func NewTelemetryMiddleware(cfg config.Config, telemetry otel.OpenTelemetry, logger *zap.Logger) (Telemetry, error) {
	return &TelemetryImpl{
		cfg:       cfg,
		telemetry: telemetry,
		logger:    logger,
	}, nil
}

func (t *TelemetryImpl) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.cfg.TelemetryConfig.Enable || !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Next()
			return
		}

		startTime := time.Now()

		// Route templates keep artifact IDs out of metric labels.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		t.telemetry.RecordRequestCount(c.Request.Context(), c.Request.Method, path)

		c.Next()

		duration := time.Since(startTime)
		durationMs := float64(duration.Nanoseconds()) / float64(time.Millisecond)

		statusCode := c.Writer.Status()

		t.telemetry.RecordResponseStatus(c.Request.Context(), c.Request.Method, path, statusCode)
		t.telemetry.RecordRequestDuration(c.Request.Context(), c.Request.Method, path, durationMs)

		t.logger.Debug("request telemetry recorded",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status_code", statusCode),
			zap.Float64("duration_ms", durationMs),
		)
	}
}
