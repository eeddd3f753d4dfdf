package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a [Store] backed by Redis. It is the shared-storage backend:
// several processes pointed at the same prefix observe one session, so
// clearing the session in one process is visible to the others on their
// next read, with no push notification in between.
//
//	Performance: 1 Redis command per read, 1 pipelined write per mutation.
//	Docs: docs/store.md
type Redis struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedis creates a Redis-backed store. prefix namespaces the three
// session keys so independent deployments can share one Redis.
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	if prefix == "" {
		prefix = "gs"
	}
	return &Redis{redis: client, prefix: prefix}
}

func (r *Redis) key(name string) string {
	return r.prefix + ":" + name
}

// SetSession writes all three values in one transaction.
func (r *Redis) SetSession(ctx context.Context, token string, profile *Profile, remember bool) error {
	var raw []byte
	if profile != nil {
		encoded, err := json.Marshal(profile)
		if err != nil {
			return err
		}
		raw = encoded
	}

	_, err := r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(KeyToken), token, 0)
		if raw != nil {
			pipe.Set(ctx, r.key(KeyProfile), raw, 0)
		} else {
			pipe.Del(ctx, r.key(KeyProfile))
		}
		if remember {
			pipe.Set(ctx, r.key(KeyRemember), "true", 0)
		} else {
			pipe.Del(ctx, r.key(KeyRemember))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Token describes the token operation and its observable behavior.
func (r *Redis) Token(ctx context.Context) (string, error) {
	token, err := r.redis.Get(ctx, r.key(KeyToken)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return token, nil
}

// Profile returns the cached profile, or (nil, nil) when absent or when
// the stored bytes fail to parse as the expected shape.
func (r *Redis) Profile(ctx context.Context) (*Profile, error) {
	raw, err := r.redis.Get(ctx, r.key(KeyProfile)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return decodeProfile(raw), nil
}

// Remember describes the remember operation and its observable behavior.
func (r *Redis) Remember(ctx context.Context) (bool, error) {
	value, err := r.redis.Get(ctx, r.key(KeyRemember)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return value == "true", nil
}

// Clear deletes all three keys in one transaction. Idempotent.
func (r *Redis) Clear(ctx context.Context) error {
	_, err := r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key(KeyToken), r.key(KeyProfile), r.key(KeyRemember))
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
