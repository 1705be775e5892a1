package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inference-gateway/super8/server/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the lease key only if this holder still owns it
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSweepLease serializes sweeps across replicas that share one storage volume
type RedisSweepLease struct {
	client *redis.Client
	logger *zap.Logger
	key    string
	ttl    time.Duration
}

var _ SweepLease = (*RedisSweepLease)(nil)

// NewRedisSweepLease connects to Redis and returns a lease bound to the configured key
func NewRedisSweepLease(ctx context.Context, cfg config.SweepLockConfig, logger *zap.Logger) (*RedisSweepLease, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("URL is required for Redis sweep lease")
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis for sweep lease",
		zap.String("addr", opt.Addr),
		zap.Int("db", opt.DB),
		zap.String("key", cfg.Key))

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &RedisSweepLease{
		client: client,
		logger: logger,
		key:    cfg.Key,
		ttl:    ttl,
	}, nil
}

// TryAcquire sets the lease key if it is absent
func (l *RedisSweepLease) TryAcquire(ctx context.Context) (func(), bool, error) {
	token := uuid.New().String()

	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire sweep lease: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{l.key}, token).Err(); err != nil {
			l.logger.Warn("failed to release sweep lease, it will expire on its own",
				zap.String("key", l.key),
				zap.Duration("ttl", l.ttl),
				zap.Error(err))
		}
	}

	return release, true, nil
}

// Close closes the Redis client
func (l *RedisSweepLease) Close() error {
	return l.client.Close()
}
