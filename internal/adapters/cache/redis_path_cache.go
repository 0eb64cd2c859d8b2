package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"campus-courier-service/internal/ports"
)

// Redis-backed cache for computed shortest-path results.
//
// The campus graph is static for the lifetime of a deployment, so cached
// paths stay valid; the TTL only bounds memory after a map change and
// redeploy. Entries are JSON under "path:<origin>|<destination>".
type RedisPathCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPathCache(client *redis.Client, ttl time.Duration) *RedisPathCache {
	return &RedisPathCache{client: client, ttl: ttl}
}

type cachedPath struct {
	Path   []string `json:"path"`
	Meters float64  `json:"meters"`
}

func pathKey(origin, destination string) string {
	return "path:" + origin + "|" + destination
}

// Return the cached result for one origin/destination pair.
func (c *RedisPathCache) Get(ctx context.Context, origin, destination string) (ports.PathResult, bool, error) {
	if c.client == nil {
		return ports.PathResult{}, false, errors.New("path cache: client is nil")
	}

	raw, err := c.client.Get(ctx, pathKey(origin, destination)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.PathResult{}, false, nil
	}
	if err != nil {
		return ports.PathResult{}, false, fmt.Errorf("get path cache %q -> %q: %w", origin, destination, err)
	}

	var entry cachedPath
	if err := json.Unmarshal(raw, &entry); err != nil {
		return ports.PathResult{}, false, fmt.Errorf("get path cache %q -> %q: decode: %w", origin, destination, err)
	}

	return ports.PathResult{Path: entry.Path, Meters: entry.Meters}, true, nil
}

// Store one computed result.
func (c *RedisPathCache) Put(ctx context.Context, origin, destination string, result ports.PathResult) error {
	if c.client == nil {
		return errors.New("path cache: client is nil")
	}

	raw, err := json.Marshal(cachedPath{Path: result.Path, Meters: result.Meters})
	if err != nil {
		return fmt.Errorf("put path cache %q -> %q: encode: %w", origin, destination, err)
	}

	if err := c.client.Set(ctx, pathKey(origin, destination), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("put path cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}
