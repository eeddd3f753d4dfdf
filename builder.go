package goShop

import (
	"errors"

	"github.com/MrEthical07/goShop/store"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by goShop APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  redis.UniversalClient

	store     store.Store
	auditSink AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis supplies the Redis client used when the storage backend is
// [StorageRedis].
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithStore injects a token store directly, overriding the configured
// storage backend. Useful for tests and custom persistence layers.
func (b *Builder) WithStore(s store.Store) *Builder {
	b.store = s
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
func (b *Builder) Build() (*Gate, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// -------- TOKEN STORE --------
	tokenStore := b.store
	if tokenStore == nil {
		switch cfg.Storage.Backend {
		case StorageMemory:
			tokenStore = store.NewMemory()
		case StorageFile:
			tokenStore = store.NewFile(cfg.Storage.FilePath)
		case StorageRedis:
			if b.redis == nil {
				return nil, errors.New("redis client required for redis backend")
			}
			tokenStore = store.NewRedis(b.redis, cfg.Storage.RedisPrefix)
		default:
			return nil, errors.New("unsupported storage backend")
		}
	}

	gate := &Gate{
		config:  cfg,
		store:   tokenStore,
		audit:   newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics: NewMetrics(cfg.Metrics),
	}

	b.built = true

	return gate, nil
}
