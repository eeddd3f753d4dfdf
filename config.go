package goShop

import (
	"errors"
	"strings"
	"time"
)

// Config defines a public type used by goShop APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Gate    GateConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by goShop APIs.
//
// APIConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageBackend selects the token store implementation built by
// [Builder.Build] when no explicit store is injected.
type StorageBackend string

const (
	// StorageMemory is an exported constant or variable used by the session gate.
	StorageMemory StorageBackend = "memory"
	// StorageFile is an exported constant or variable used by the session gate.
	StorageFile StorageBackend = "file"
	// StorageRedis is an exported constant or variable used by the session gate.
	StorageRedis StorageBackend = "redis"
)

// StorageConfig defines a public type used by goShop APIs.
//
// StorageConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StorageConfig struct {
	Backend     StorageBackend
	FilePath    string // required for StorageFile
	RedisPrefix string // key namespace for StorageRedis
}

/*
====================================
GATE CONFIG
====================================
*/

// GateConfig defines a public type used by goShop APIs.
//
// GateConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type GateConfig struct {
	// SignInPath is the sign-in entry route used as the forced-logout and
	// guard redirect target. It must never itself be placed behind the
	// route guard, or a redirect loop results.
	SignInPath string
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by goShop APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goShop APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the baseline configuration used by [New].
//
//	Docs: docs/config.md
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout:   30 * time.Second,
			UserAgent: "goShop/1",
		},
		Storage: StorageConfig{
			Backend:     StorageMemory,
			RedisPrefix: "gs",
		},
		Gate: GateConfig{
			SignInPath: "/signin",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// API
	if c.API.Timeout <= 0 {
		return errors.New("API Timeout must be > 0")
	}

	// Storage
	switch c.Storage.Backend {
	case StorageMemory:
	case StorageFile:
		if strings.TrimSpace(c.Storage.FilePath) == "" {
			return errors.New("Storage FilePath required for file backend")
		}
	case StorageRedis:
		if strings.TrimSpace(c.Storage.RedisPrefix) == "" {
			return errors.New("Storage RedisPrefix required for redis backend")
		}
	default:
		return errors.New("unsupported storage backend")
	}

	// Gate
	if !strings.HasPrefix(c.Gate.SignInPath, "/") {
		return errors.New("Gate SignInPath must be an absolute path")
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when audit is enabled")
	}

	return nil
}
