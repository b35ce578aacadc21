package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context) (*Bundle, bool, error)
	Set(ctx context.Context, b *Bundle, ttl time.Duration) error
	Delete(ctx context.Context) error
}

type memoryCache struct {
	mu      sync.Mutex
	bundle  *Bundle
	expires time.Time
	now     func() time.Time
}

func NewMemoryCache() Cache {
	return newMemoryCache(time.Now)
}

func newMemoryCache(now func() time.Time) *memoryCache {
	return &memoryCache{now: now}
}

func (c *memoryCache) Get(ctx context.Context) (*Bundle, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bundle == nil || !c.now().Before(c.expires) {
		return nil, false, nil
	}
	return c.bundle, true, nil
}

func (c *memoryCache) Set(ctx context.Context, b *Bundle, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bundle = b
	c.expires = c.now().Add(ttl)
	return nil
}

func (c *memoryCache) Delete(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bundle = nil
	return nil
}

type redisCache struct {
	client *redis.Client
	key    string
}

// NewRedisCache stores the bundle as JSON under prefix+"bundle".
func NewRedisCache(client *redis.Client, prefix string) Cache {
	return &redisCache{client: client, key: prefix + "bundle"}
}

// NewRedisClient parses a redis:// URL and pings the server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	opts.MaxRetries = 3
	opts.PoolSize = 10
	opts.MinIdleConns = 2

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return client, nil
}

func (c *redisCache) Get(ctx context.Context) (*Bundle, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached bundle: %w", err)
	}

	b, err := decodeBundle(data)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *redisCache) Set(ctx context.Context, b *Bundle, ttl time.Duration) error {
	data, err := encodeBundle(b)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

func encodeBundle(b *Bundle) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bundle: %w", err)
	}
	return data, nil
}

func decodeBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to decode cached bundle: %w", err)
	}
	return &b, nil
}
