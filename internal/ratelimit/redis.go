// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/leanttro/leanttro-web/internal/config"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "ratelimit:"
	redisTimeout   = 2 * time.Second
)

// RedisLimiter is a fixed-window limiter shared by every instance of the
// application: INCR on the window key, EXPIRE when the window starts.
type RedisLimiter struct {
	client *redis.Client
}

// NewRedisLimiter connects to the Redis server of cfg and verifies the
// connection with PING.
func NewRedisLimiter(ctx context.Context, cfg config.RateLimit) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisLimiter{client: client}, nil
}

// NewRedisLimiterFromClient wraps an existing client.
func NewRedisLimiterFromClient(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

// Allow implements [Limiter].
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, period time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	redisKey := redisKeyPrefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("redis incr: %w", err)
	}
	if count == 1 {
		if err = l.client.Expire(ctx, redisKey, period).Err(); err != nil {
			return false, fmt.Errorf("redis expire: %w", err)
		}
	} else if ttl, ttlErr := l.client.TTL(ctx, redisKey).Result(); ttlErr == nil && ttl < 0 {
		// key left without a TTL by an interrupted INCR+EXPIRE
		l.client.Expire(ctx, redisKey, period)
	}

	return count <= int64(limit), nil
}

// Close releases the connection pool.
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
