package config_test

import (
	"context"
	"testing"
	"time"

	config "github.com/inference-gateway/super8/server/config"
	envconfig "github.com/sethvargo/go-envconfig"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestConfig_LoadWithLookuper(t *testing.T) {
	tests := []struct {
		name         string
		envVars      map[string]string
		validateFunc func(t *testing.T, cfg *config.Config)
	}{
		{
			name:    "loads defaults when no env vars set",
			envVars: map[string]string{},
			validateFunc: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "super8", cfg.ServiceName)
				assert.False(t, cfg.Debug)

				assert.Equal(t, "3000", cfg.ServerConfig.Port)
				assert.Equal(t, 300*time.Second, cfg.ServerConfig.ReadTimeout)
				assert.Equal(t, 15*time.Minute, cfg.ServerConfig.WriteTimeout)
				assert.Less(t, cfg.JobConfig.Timeout, cfg.ServerConfig.WriteTimeout, "a job must finish before the response is cut off")
				assert.True(t, cfg.ServerConfig.DisableHealthcheckLog)
				assert.False(t, cfg.ServerConfig.TLSConfig.Enable)

				assert.Equal(t, ".", cfg.StorageConfig.BasePath)
				assert.Equal(t, "uploads", cfg.StorageConfig.InboundDir)
				assert.Equal(t, "output", cfg.StorageConfig.OutboundDir)
				assert.Equal(t, ".mp4", cfg.StorageConfig.InboundExt)
				assert.Equal(t, ".mov", cfg.StorageConfig.OutboundExt)
				assert.Equal(t, "video/quicktime", cfg.StorageConfig.OutboundMediaType)

				assert.Equal(t, int64(500<<20), cfg.UploadConfig.MaxSize)
				assert.Equal(t, "video", cfg.UploadConfig.FormField)
				assert.False(t, cfg.UploadConfig.RequireMedia)

				assert.Equal(t, "bash", cfg.JobConfig.Command)
				assert.Equal(t, []string{"super8.sh"}, cfg.JobConfig.Args)
				assert.Equal(t, 10*time.Minute, cfg.JobConfig.Timeout)

				assert.Equal(t, time.Hour, cfg.RetentionConfig.OutboundMaxAge)
				assert.Equal(t, 15*time.Minute, cfg.RetentionConfig.InboundMaxAge)
				assert.Equal(t, 5*time.Minute, cfg.RetentionConfig.SweepInterval)

				assert.Equal(t, "memory", cfg.SweepLockConfig.Provider)
				assert.Equal(t, "super8:sweep", cfg.SweepLockConfig.Key)

				assert.False(t, cfg.EventsConfig.Enable)
				assert.Equal(t, "super8", cfg.EventsConfig.Source)

				assert.False(t, cfg.AuthConfig.Enable)
				assert.False(t, cfg.TelemetryConfig.Enable)
				assert.Equal(t, "9090", cfg.TelemetryConfig.MetricsConfig.Port)
			},
		},
		{
			name: "overrides defaults with custom env vars",
			envVars: map[string]string{
				"DEBUG":                          "true",
				"SERVER_PORT":                    "8080",
				"STORAGE_BASE_PATH":              "/var/lib/super8",
				"STORAGE_OUTBOUND_EXT":           "webm",
				"STORAGE_OUTBOUND_CONTENT_TYPE":  "video/webm",
				"UPLOAD_MAX_SIZE":                "1048576",
				"UPLOAD_FORM_FIELD":              "file",
				"UPLOAD_REQUIRE_MEDIA":           "true",
				"JOB_COMMAND":                    "ffmpeg",
				"JOB_ARGS":                       "-y,-i",
				"JOB_TIMEOUT":                    "2m",
				"RETENTION_OUTBOUND_MAX_AGE":     "2h",
				"RETENTION_INBOUND_MAX_AGE":      "30m",
				"RETENTION_SWEEP_INTERVAL":       "0s",
				"SWEEP_LOCK_PROVIDER":            "redis",
				"SWEEP_LOCK_URL":                 "redis://redis:6379/0",
				"EVENTS_ENABLE":                  "true",
				"EVENTS_SINK_URL":                "http://broker:8080",
				"TELEMETRY_ENABLE":               "true",
				"TELEMETRY_METRICS_PORT":         "9464",
				"SERVER_DISABLE_HEALTHCHECK_LOG": "false",
				"AUTH_ENABLE":                    "true",
				"AUTH_CLIENT_SECRET":             "secret",
			},
			validateFunc: func(t *testing.T, cfg *config.Config) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "8080", cfg.ServerConfig.Port)
				assert.False(t, cfg.ServerConfig.DisableHealthcheckLog)

				assert.Equal(t, "/var/lib/super8/uploads", cfg.StorageConfig.InboundPath())
				assert.Equal(t, "/var/lib/super8/output", cfg.StorageConfig.OutboundPath())
				assert.Equal(t, ".webm", cfg.StorageConfig.OutboundExt, "extensions are normalized with a leading dot")
				assert.Equal(t, "video/webm", cfg.StorageConfig.OutboundMediaType)

				assert.Equal(t, int64(1<<20), cfg.UploadConfig.MaxSize)
				assert.Equal(t, "file", cfg.UploadConfig.FormField)
				assert.True(t, cfg.UploadConfig.RequireMedia)

				assert.Equal(t, "ffmpeg", cfg.JobConfig.Command)
				assert.Equal(t, []string{"-y", "-i"}, cfg.JobConfig.Args)
				assert.Equal(t, 2*time.Minute, cfg.JobConfig.Timeout)

				assert.Equal(t, 2*time.Hour, cfg.RetentionConfig.OutboundMaxAge)
				assert.Equal(t, 30*time.Minute, cfg.RetentionConfig.InboundMaxAge)
				assert.Equal(t, time.Duration(0), cfg.RetentionConfig.SweepInterval)

				assert.Equal(t, "redis", cfg.SweepLockConfig.Provider)
				assert.Equal(t, "redis://redis:6379/0", cfg.SweepLockConfig.URL)

				assert.True(t, cfg.EventsConfig.Enable)
				assert.Equal(t, "http://broker:8080", cfg.EventsConfig.SinkURL)

				assert.True(t, cfg.TelemetryConfig.Enable)
				assert.Equal(t, "9464", cfg.TelemetryConfig.MetricsConfig.Port)

				assert.True(t, cfg.AuthConfig.Enable)
				assert.Equal(t, "secret", cfg.AuthConfig.ClientSecret)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			lookuper := envconfig.MapLookuper(tt.envVars)

			cfg, err := config.LoadWithLookuper(ctx, nil, lookuper)
			require.NoError(t, err, "should process config without error")
			tt.validateFunc(t, cfg)
		})
	}
}

func TestConfig_LoadWithLookuper_KeepsBaseConfig(t *testing.T) {
	base := &config.Config{ServiceName: "custom", ServiceVersion: "1.2.3"}

	cfg, err := config.LoadWithLookuper(context.Background(), base, envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.ServiceName)
	assert.Equal(t, "1.2.3", cfg.ServiceVersion)
	assert.Equal(t, "", base.ServerConfig.Port, "the base config is not mutated")
}

func TestConfig_LoadWithLookuper_InvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		envVars   map[string]string
		errorText string
	}{
		{
			name:      "invalid duration format",
			envVars:   map[string]string{"RETENTION_OUTBOUND_MAX_AGE": "an-hour"},
			errorText: "time",
		},
		{
			name:      "invalid integer format",
			envVars:   map[string]string{"UPLOAD_MAX_SIZE": "500MB"},
			errorText: "strconv",
		},
		{
			name:      "invalid boolean format",
			envVars:   map[string]string{"DEBUG": "maybe"},
			errorText: "strconv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			lookuper := envconfig.MapLookuper(tt.envVars)
			_, err := config.LoadWithLookuper(ctx, nil, lookuper)

			require.Error(t, err, "should return error for invalid input")
			assert.Contains(t, err.Error(), tt.errorText, "error should contain expected text")
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		envVars   map[string]string
		errorText string
	}{
		{
			name:      "zero upload ceiling",
			envVars:   map[string]string{"UPLOAD_MAX_SIZE": "0"},
			errorText: "upload max size",
		},
		{
			name:      "zero inbound max age",
			envVars:   map[string]string{"RETENTION_INBOUND_MAX_AGE": "0s"},
			errorText: "inbound max age",
		},
		{
			name:      "negative outbound max age",
			envVars:   map[string]string{"RETENTION_OUTBOUND_MAX_AGE": "-1h"},
			errorText: "outbound max age",
		},
		{
			name:      "negative sweep interval",
			envVars:   map[string]string{"RETENTION_SWEEP_INTERVAL": "-5m"},
			errorText: "sweep interval",
		},
		{
			name: "job timeout reaching the inbound threshold",
			envVars: map[string]string{
				"JOB_TIMEOUT":               "15m",
				"RETENTION_INBOUND_MAX_AGE": "15m",
			},
			errorText: "must be shorter than the inbound max age",
		},
		{
			name:      "job timeout outlasting the write timeout",
			envVars:   map[string]string{"SERVER_WRITE_TIMEOUT": "5m"},
			errorText: "must be shorter than the server write timeout",
		},
		{
			name: "job timeout equal to the write timeout",
			envVars: map[string]string{
				"JOB_TIMEOUT":          "5m",
				"SERVER_WRITE_TIMEOUT": "5m",
			},
			errorText: "must be shorter than the server write timeout",
		},
		{
			name:      "empty job command",
			envVars:   map[string]string{"JOB_COMMAND": ""},
			errorText: "job command",
		},
		{
			name: "zones collide",
			envVars: map[string]string{
				"STORAGE_OUTBOUND_DIR": "uploads",
				"STORAGE_OUTBOUND_EXT": ".mp4",
			},
			errorText: "must not share",
		},
		{
			name:      "redis lease without URL",
			envVars:   map[string]string{"SWEEP_LOCK_PROVIDER": "redis"},
			errorText: "sweep lock URL",
		},
		{
			name:      "unknown lease provider",
			envVars:   map[string]string{"SWEEP_LOCK_PROVIDER": "etcd"},
			errorText: "unsupported sweep lock provider",
		},
		{
			name:      "events without sink",
			envVars:   map[string]string{"EVENTS_ENABLE": "true"},
			errorText: "sink URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			lookuper := envconfig.MapLookuper(tt.envVars)

			_, err := config.LoadWithLookuper(ctx, nil, lookuper)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorText)
		})
	}
}

func TestConfig_ValidateAllowsDisabledJobTimeout(t *testing.T) {
	lookuper := envconfig.MapLookuper(map[string]string{"JOB_TIMEOUT": "0s"})

	cfg, err := config.LoadWithLookuper(context.Background(), nil, lookuper)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.JobConfig.Timeout)
}

func TestConfig_NewWithDefaultsKeepsTimeoutsConsistent(t *testing.T) {
	cfg, err := config.NewWithDefaults(context.Background(), nil)
	require.NoError(t, err)

	assert.Less(t, cfg.JobConfig.Timeout, cfg.ServerConfig.WriteTimeout)
	assert.Less(t, cfg.JobConfig.Timeout, cfg.RetentionConfig.InboundMaxAge)
}

func TestConfig_ValidateAllowsUnboundedWriteTimeout(t *testing.T) {
	lookuper := envconfig.MapLookuper(map[string]string{"SERVER_WRITE_TIMEOUT": "0s"})

	cfg, err := config.LoadWithLookuper(context.Background(), nil, lookuper)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.ServerConfig.WriteTimeout)
	assert.Equal(t, 10*time.Minute, cfg.JobConfig.Timeout)
}
