package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mleroux/videogen-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

// terminalTTL bounds how long a settled job status stays cached. Terminal
// statuses are immutable, the TTL only keeps the keyspace from growing
// forever.
const terminalTTL = 24 * time.Hour

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetJobStatus(ctx context.Context, videoID string) ([]byte, error) {
	val, err := c.client.Get(ctx, getCacheKey(videoID, false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagJobStatus(ctx context.Context, videoID string) (string, error) {
	val, err := c.client.Get(ctx, getCacheKey(videoID, true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetJobStatus(ctx context.Context, videoID string, data []byte) {
	log.Printf("creating cache entry for video #%s...", videoID)

	if err := c.client.Set(ctx, getCacheKey(videoID, false), data, terminalTTL).Err(); err != nil {
		log.Printf("redis set failed for video #%s: %v", videoID, err)
	}
}

func (c *Cache) SetEtagJobStatus(ctx context.Context, videoID string, etag string) {
	if err := c.client.Set(ctx, getCacheKey(videoID, true), etag, terminalTTL).Err(); err != nil {
		log.Printf("redis etag set failed for video #%s: %v", videoID, err)
	}
}

func (c *Cache) DeleteJobStatus(ctx context.Context, videoID string) error {
	if err := c.client.Del(ctx, getCacheKey(videoID, false)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagJobStatus(ctx context.Context, videoID string) error {
	if err := c.client.Del(ctx, getCacheKey(videoID, true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(videoID string, etag bool) string {
	if etag {
		return "video:etag:" + videoID
	}
	return "video:" + videoID
}
