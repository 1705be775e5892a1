package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration
type Config struct {
	ServiceName     string          // Build-time metadata, not configurable via environment
	ServiceVersion  string          // Build-time metadata, not configurable via environment
	Debug           bool            `env:"DEBUG,default=false"`
	ServerConfig    ServerConfig    `env:",prefix=SERVER_"`
	StorageConfig   StorageConfig   `env:",prefix=STORAGE_"`
	UploadConfig    UploadConfig    `env:",prefix=UPLOAD_"`
	JobConfig       JobConfig       `env:",prefix=JOB_"`
	RetentionConfig RetentionConfig `env:",prefix=RETENTION_"`
	SweepLockConfig SweepLockConfig `env:",prefix=SWEEP_LOCK_"`
	EventsConfig    EventsConfig    `env:",prefix=EVENTS_"`
	AuthConfig      AuthConfig      `env:",prefix=AUTH_"`
	TelemetryConfig TelemetryConfig `env:",prefix=TELEMETRY_"`
}

// TLSConfig holds TLS configuration
type TLSConfig struct {
	Enable   bool   `env:"ENABLE,default=false"`
	CertPath string `env:"CERT_PATH" description:"TLS certificate path"`
	KeyPath  string `env:"KEY_PATH" description:"TLS key path"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port                  string        `env:"PORT,default=3000" description:"HTTP server port"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=300s" description:"HTTP server read timeout, must cover a full upload (300s admits 500 MiB at about 1.7 MB/s)"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=15m" description:"HTTP server write timeout, must exceed the job timeout (0 = no deadline)"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=120s" description:"HTTP server idle timeout"`
	DisableHealthcheckLog bool          `env:"DISABLE_HEALTHCHECK_LOG,default=true" description:"Disable logging for health check requests"`
	TLSConfig             TLSConfig     `env:",prefix=TLS_"`
}

// StorageConfig describes the two storage zones
type StorageConfig struct {
	BasePath          string `env:"BASE_PATH,default=." description:"Root directory holding both zones"`
	InboundDir        string `env:"INBOUND_DIR,default=uploads" description:"Directory (relative to base path) for raw uploads"`
	OutboundDir       string `env:"OUTBOUND_DIR,default=output" description:"Directory (relative to base path) for transformed artifacts"`
	InboundExt        string `env:"INBOUND_EXT,default=.mp4" description:"File extension given to inbound artifacts"`
	OutboundExt       string `env:"OUTBOUND_EXT,default=.mov" description:"File extension given to outbound artifacts"`
	OutboundMediaType string `env:"OUTBOUND_CONTENT_TYPE,default=video/quicktime" description:"Content type used when serving outbound artifacts"`
}

// UploadConfig holds upload validation limits
type UploadConfig struct {
	MaxSize      int64  `env:"MAX_SIZE,default=524288000" description:"Maximum upload size in bytes (500 MiB)"`
	FormField    string `env:"FORM_FIELD,default=video" description:"Multipart form field carrying the file"`
	RequireMedia bool   `env:"REQUIRE_MEDIA,default=false" description:"Reject uploads whose sniffed content is not audio or video"`
}

// JobConfig describes the external transformation process
type JobConfig struct {
	Command    string        `env:"COMMAND,default=bash" description:"Executable invoked for each job"`
	Args       []string      `env:"ARGS,default=super8.sh" description:"Leading arguments; input and output paths are appended"`
	WorkingDir string        `env:"WORKING_DIR" description:"Working directory for the process (empty = current)"`
	Timeout    time.Duration `env:"TIMEOUT,default=10m" description:"Deadline for a single run (0 = no deadline)"`
}

// RetentionConfig defines per-zone eviction thresholds
type RetentionConfig struct {
	OutboundMaxAge time.Duration `env:"OUTBOUND_MAX_AGE,default=1h" description:"How long transformed artifacts stay servable"`
	InboundMaxAge  time.Duration `env:"INBOUND_MAX_AGE,default=15m" description:"Age after which orphaned uploads are reclaimed"`
	SweepInterval  time.Duration `env:"SWEEP_INTERVAL,default=5m" description:"How often to sweep (0 = startup and manual sweeps only)"`
}

// SweepLockConfig selects how concurrent sweeps are serialized
type SweepLockConfig struct {
	Provider string        `env:"PROVIDER,default=memory" description:"Sweep lease provider (memory, redis)"`
	URL      string        `env:"URL" description:"Connection URL for the lease backend"`
	Key      string        `env:"KEY,default=super8:sweep" description:"Lease key"`
	TTL      time.Duration `env:"TTL,default=5m" description:"Lease expiry, must exceed the worst-case sweep duration"`
}

// EventsConfig holds lifecycle event notification configuration
type EventsConfig struct {
	Enable  bool          `env:"ENABLE,default=false" description:"Publish CloudEvents for artifact lifecycle changes"`
	SinkURL string        `env:"SINK_URL" description:"HTTP endpoint receiving the events"`
	Source  string        `env:"SOURCE,default=super8" description:"CloudEvents source attribute"`
	Timeout time.Duration `env:"TIMEOUT,default=5s" description:"Delivery timeout per event"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	Enable       bool   `env:"ENABLE,default=false"`
	IssuerURL    string `env:"ISSUER_URL,default=http://keycloak:8080/realms/inference-gateway-realm"`
	ClientID     string `env:"CLIENT_ID,default=inference-gateway-client"`
	ClientSecret string `env:"CLIENT_SECRET"`
}

// MetricsConfig holds metrics server configuration
type MetricsConfig struct {
	Port         string        `env:"PORT,default=9090" description:"Metrics server port"`
	Host         string        `env:"HOST,default=" description:"Metrics server host (empty for all interfaces)"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=30s" description:"Metrics server read timeout"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=30s" description:"Metrics server write timeout"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=60s" description:"Metrics server idle timeout"`
}

// TelemetryConfig holds telemetry configuration
type TelemetryConfig struct {
	Enable        bool          `env:"ENABLE,default=false" description:"Enable telemetry collection"`
	MetricsConfig MetricsConfig `env:",prefix=METRICS_"`
}

// Load loads configuration from environment variables, merging with the provided base config.
func Load(ctx context.Context, baseConfig *Config) (*Config, error) {
	return LoadWithLookuper(ctx, baseConfig, envconfig.OsLookuper())
}

// LoadWithLookuper creates and loads configuration using a custom lookuper and merges with user config
func LoadWithLookuper(ctx context.Context, baseConfig *Config, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config

	if baseConfig != nil {
		cfg = *baseConfig
	}

	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	})
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewWithDefaults creates a new config with defaults applied from struct tags.
func NewWithDefaults(ctx context.Context, baseConfig *Config) (*Config, error) {
	return LoadWithLookuper(ctx, baseConfig, &emptyLookuper{})
}

// emptyLookuper ensures that only default values from struct tags are used
type emptyLookuper struct{}

func (e *emptyLookuper) Lookup(key string) (string, bool) {
	return "", false
}

// Validate validates the configuration and applies corrections for invalid values
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		c.ServiceName = "super8"
	}

	if c.UploadConfig.MaxSize <= 0 {
		return fmt.Errorf("upload max size must be positive, got %d", c.UploadConfig.MaxSize)
	}
	if c.UploadConfig.FormField == "" {
		c.UploadConfig.FormField = "video"
	}

	if c.RetentionConfig.InboundMaxAge <= 0 {
		return fmt.Errorf("inbound max age must be positive, got %s", c.RetentionConfig.InboundMaxAge)
	}
	if c.RetentionConfig.OutboundMaxAge <= 0 {
		return fmt.Errorf("outbound max age must be positive, got %s", c.RetentionConfig.OutboundMaxAge)
	}
	if c.RetentionConfig.SweepInterval < 0 {
		return fmt.Errorf("sweep interval must not be negative, got %s", c.RetentionConfig.SweepInterval)
	}

	// The inbound threshold is the only thing keeping the sweeper off a live job's input.
	if c.JobConfig.Timeout > 0 && c.JobConfig.Timeout >= c.RetentionConfig.InboundMaxAge {
		return fmt.Errorf("job timeout (%s) must be shorter than the inbound max age (%s)",
			c.JobConfig.Timeout, c.RetentionConfig.InboundMaxAge)
	}
	// A response still waiting on its job must not lose the connection.
	if c.ServerConfig.WriteTimeout > 0 && c.JobConfig.Timeout >= c.ServerConfig.WriteTimeout {
		return fmt.Errorf("job timeout (%s) must be shorter than the server write timeout (%s)",
			c.JobConfig.Timeout, c.ServerConfig.WriteTimeout)
	}
	if c.JobConfig.Command == "" {
		return fmt.Errorf("job command is required")
	}

	if err := c.StorageConfig.validate(); err != nil {
		return err
	}

	switch c.SweepLockConfig.Provider {
	case "", "memory":
		c.SweepLockConfig.Provider = "memory"
	case "redis":
		if c.SweepLockConfig.URL == "" {
			return fmt.Errorf("sweep lock URL is required for the redis provider")
		}
	default:
		return fmt.Errorf("unsupported sweep lock provider: %s", c.SweepLockConfig.Provider)
	}

	if c.EventsConfig.Enable && c.EventsConfig.SinkURL == "" {
		return fmt.Errorf("events sink URL is required when events are enabled")
	}

	return nil
}

func (s *StorageConfig) validate() error {
	for name, ext := range map[string]*string{"inbound": &s.InboundExt, "outbound": &s.OutboundExt} {
		if *ext == "" {
			return fmt.Errorf("%s extension must not be empty", name)
		}
		if !strings.HasPrefix(*ext, ".") {
			*ext = "." + *ext
		}
	}

	inbound := filepath.Clean(filepath.Join(s.BasePath, s.InboundDir))
	outbound := filepath.Clean(filepath.Join(s.BasePath, s.OutboundDir))
	if inbound == outbound && s.InboundExt == s.OutboundExt {
		return fmt.Errorf("inbound and outbound zones must not share a directory and extension")
	}

	return nil
}

// InboundPath returns the inbound zone directory
func (s *StorageConfig) InboundPath() string {
	return filepath.Join(s.BasePath, s.InboundDir)
}

// OutboundPath returns the outbound zone directory
func (s *StorageConfig) OutboundPath() string {
	return filepath.Join(s.BasePath, s.OutboundDir)
}
