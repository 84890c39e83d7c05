package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisDialTimeout  = 3 * time.Second
	defaultRedisIOTimeout    = 2 * time.Second
	defaultRedisPoolSize     = 20
	defaultRedisPoolTimeout  = 4 * time.Second
	defaultRedisPingTimeout  = 2 * time.Second
	defaultRedisIdleTime     = 5 * time.Minute
)

// RedisConfig tunes the go-redis client. Zero values fall back to the
// package defaults, so RedisConfig{Addr: addr} is a usable config.
type RedisConfig struct {
	Addr string

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	PoolSize        int
	MinIdleConns    int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration

	PingTimeout time.Duration
}

func (c RedisConfig) withDefaults() RedisConfig {
	if c.DialTimeout <= 0 {
		c.DialTimeout = defaultRedisDialTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = defaultRedisIOTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = defaultRedisIOTimeout
	}
	if c.PoolSize <= 0 {
		c.PoolSize = defaultRedisPoolSize
	}
	if c.MinIdleConns < 0 {
		c.MinIdleConns = 0
	}
	if c.PoolTimeout <= 0 {
		c.PoolTimeout = defaultRedisPoolTimeout
	}
	if c.ConnMaxIdleTime <= 0 {
		c.ConnMaxIdleTime = defaultRedisIdleTime
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = defaultConnMaxLifetime
	}
	if c.PingTimeout <= 0 {
		c.PingTimeout = defaultRedisPingTimeout
	}
	return c
}

// OpenRedis builds a client from cfg and verifies it with a ping.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	cfg = cfg.withDefaults()
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Addr,
		DialTimeout:     cfg.DialTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Counter increment with expiry, evaluated atomically. Re-arms the TTL
// when the key somehow lost it so a stuck counter cannot block forever.
var rateLimitScript = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 or redis.call('PTTL', KEYS[1]) < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
if n > tonumber(ARGV[1]) then
  return 0
end
return 1
`)

// AllowRate records one hit against key and reports whether the caller
// stays within limit for the sliding window. OTP request throttling keys
// on the requester's email address.
func AllowRate(ctx context.Context, rdb *redis.Client, key string, limit int, window time.Duration) (bool, error) {
	if rdb == nil {
		return false, fmt.Errorf("redis client is nil")
	}
	if key == "" {
		return false, fmt.Errorf("rate key is required")
	}
	if limit <= 0 || window <= 0 {
		return false, fmt.Errorf("rate limit and window must be positive")
	}

	res, err := rateLimitScript.Run(ctx, rdb, []string{key}, limit, window.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
