package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/zongzewu23/seattle-hotel-viata/internal/domain"
	"github.com/zongzewu23/seattle-hotel-viata/internal/platform/obs"
)

// Namespace for clustering entries so Clear cannot touch unrelated keys
// on a shared Redis instance.
const redisKeyPrefix = "viata:clusters:"

// Redis-backed cache for clustering results, for deployments where
// several server instances should share warm entries. Results are stored
// as JSON under namespaced keys and never expire; the fingerprint key is
// the sole invalidation mechanism, same as the in-process cache.
type RedisClusterCache struct {
	Client *redis.Client
}

func NewRedisClusterCache(client *redis.Client) *RedisClusterCache {
	return &RedisClusterCache{Client: client}
}

func (c *RedisClusterCache) Get(ctx context.Context, key string) (_ domain.ClusteringResult, _ bool, err error) {
	defer obs.Time(ctx, "cluster.cache.redis.Get")(&err)

	if c.Client == nil {
		return domain.ClusteringResult{}, false, errors.New("redis cluster cache: client is nil")
	}

	payload, err := c.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ClusteringResult{}, false, nil
	}
	if err != nil {
		return domain.ClusteringResult{}, false, fmt.Errorf("redis cluster cache: get %q: %w", key, err)
	}

	var result domain.ClusteringResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return domain.ClusteringResult{}, false, fmt.Errorf("redis cluster cache: decode %q: %w", key, err)
	}

	return result, true, nil
}

func (c *RedisClusterCache) Put(ctx context.Context, key string, result domain.ClusteringResult) (err error) {
	defer obs.Time(ctx, "cluster.cache.redis.Put")(&err)

	if c.Client == nil {
		return errors.New("redis cluster cache: client is nil")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("redis cluster cache: encode %q: %w", key, err)
	}

	if err := c.Client.Set(ctx, redisKeyPrefix+key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis cluster cache: set %q: %w", key, err)
	}

	return nil
}

// Clear removes every clustering entry in the namespace. Uses SCAN rather
// than KEYS so a shared instance is not blocked while iterating.
func (c *RedisClusterCache) Clear(ctx context.Context) (err error) {
	defer obs.Time(ctx, "cluster.cache.redis.Clear")(&err)

	if c.Client == nil {
		return errors.New("redis cluster cache: client is nil")
	}

	iter := c.Client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	batch := make([]string, 0, 100)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := c.Client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("redis cluster cache: delete batch: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis cluster cache: scan: %w", err)
	}

	if len(batch) > 0 {
		if err := c.Client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("redis cluster cache: delete batch: %w", err)
		}
	}

	return nil
}
