package redissvc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService is an optional response cache. Every method is safe to call
// on a nil receiver, so the service runs identically without redis.
type RedisService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisService(rdb *redis.Client, ttl time.Duration) *RedisService {
	return &RedisService{rdb: rdb, ttl: ttl}
}

// Get returns the cached payload for key, or false on a miss (or when the
// cache is disabled or unreachable).
func (s *RedisService) Get(ctx context.Context, key string) ([]byte, bool) {
	if s == nil || s.rdb == nil {
		return nil, false
	}
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a payload under key with the configured TTL. Failures are
// ignored; the cache is best-effort.
func (s *RedisService) Set(ctx context.Context, key string, payload []byte) {
	if s == nil || s.rdb == nil {
		return
	}
	s.rdb.Set(ctx, key, payload, s.ttl)
}

// Flush drops every cached search page. Called after a catalog reload so
// stale pages never outlive the snapshot that produced them.
func (s *RedisService) Flush(ctx context.Context, pattern string) {
	if s == nil || s.rdb == nil {
		return
	}
	iter := s.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		s.rdb.Del(ctx, iter.Val())
	}
}
