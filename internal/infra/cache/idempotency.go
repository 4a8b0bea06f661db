// Package cache keeps gateway request state in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idem:"

// RedisIdempotencyStore stores one JSON record per (username, key). A claimed
// key lives for the short processing TTL and Complete extends it to the full
// TTL, so a request that dies mid-flight blocks retries only briefly.
type RedisIdempotencyStore struct {
	rdb           redis.Cmdable
	ttl           time.Duration
	processingTTL time.Duration
}

func NewRedisIdempotencyStore(rdb redis.Cmdable, cfg config.Config) *RedisIdempotencyStore {
	processingTTL := cfg.Redis.ProcessingTTL
	if processingTTL <= 0 || processingTTL > cfg.Redis.IdempotencyTTL {
		processingTTL = cfg.Redis.IdempotencyTTL
	}
	return &RedisIdempotencyStore{
		rdb:           rdb,
		ttl:           cfg.Redis.IdempotencyTTL,
		processingTTL: processingTTL,
	}
}

func recordKey(key, username string) string {
	return keyPrefix + username + ":" + key
}

func (s *RedisIdempotencyStore) Claim(ctx context.Context, key, username, requestHash string) (*shared.IdempotencyRecord, bool, error) {
	data, err := json.Marshal(shared.IdempotencyRecord{
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
	})
	if err != nil {
		return nil, false, errs.Wrap(err, "encode idempotency record")
	}
	k := recordKey(key, username)

	// The record can expire between SETNX and GET; one more round settles it.
	for range 2 {
		claimed, err := s.rdb.SetNX(ctx, k, data, s.processingTTL).Result()
		if err != nil {
			return nil, false, errs.Wrap(err, "claim idempotency key")
		}
		if claimed {
			return nil, true, nil
		}

		raw, err := s.rdb.Get(ctx, k).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, false, errs.Wrap(err, "read idempotency key")
		}

		var rec shared.IdempotencyRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, false, errs.Wrap(err, "decode idempotency record")
		}
		return &rec, false, nil
	}
	return nil, false, errs.New("idempotency key kept expiring while claiming")
}

func (s *RedisIdempotencyStore) Complete(ctx context.Context, key, username, requestHash string, result []byte) error {
	data, err := json.Marshal(shared.IdempotencyRecord{
		Status:      shared.IdempotencyStatusCompleted,
		RequestHash: requestHash,
		Result:      result,
	})
	if err != nil {
		return errs.Wrap(err, "encode idempotency record")
	}
	if err := s.rdb.Set(ctx, recordKey(key, username), data, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "complete idempotency key")
	}
	return nil
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key, username string) error {
	if err := s.rdb.Del(ctx, recordKey(key, username)).Err(); err != nil {
		return errs.Wrap(err, "release idempotency key")
	}
	return nil
}

// NoopIdempotencyStore lets every request through. Used when Redis is not configured.
type NoopIdempotencyStore struct{}

func (NoopIdempotencyStore) Claim(context.Context, string, string, string) (*shared.IdempotencyRecord, bool, error) {
	return nil, true, nil
}

func (NoopIdempotencyStore) Complete(context.Context, string, string, string, []byte) error {
	return nil
}

func (NoopIdempotencyStore) Release(context.Context, string, string) error {
	return nil
}
