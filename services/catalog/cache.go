package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"glossify/models"
	"glossify/utils"
)

// resultCacheTTL bounds how long a resolved catalog is served without
// re-reading the document store.
const resultCacheTTL = 10 * time.Minute

// ResultCache caches resolved catalogs per (partition, category). A cache
// failure is a miss, never an error: resolution is idempotent so falling
// through to the store is always safe.
type ResultCache interface {
	Get(ctx context.Context, partition, category string) (*models.ResolvedCatalog, bool)
	Set(ctx context.Context, partition, category string, resolved *models.ResolvedCatalog)
}

// RedisResultCache implements ResultCache on Redis with JSON payloads.
type RedisResultCache struct {
	Client *redis.Client
}

func cacheKey(partition, category string) string {
	return fmt.Sprintf("catalog:%s:%s", partition, category)
}

// Get returns the cached catalog, if present and well-formed.
func (c *RedisResultCache) Get(ctx context.Context, partition, category string) (*models.ResolvedCatalog, bool) {
	data, err := c.Client.Get(ctx, cacheKey(partition, category)).Result()
	if err != nil {
		return nil, false
	}
	var resolved models.ResolvedCatalog
	if err := json.Unmarshal([]byte(data), &resolved); err != nil {
		utils.GetLogger().Warn("discarding malformed catalog cache entry",
			zap.String("partition", partition),
			zap.String("category", category),
			zap.Error(err))
		return nil, false
	}
	return &resolved, true
}

// Set stores the resolved catalog, logging and moving on if Redis is down.
func (c *RedisResultCache) Set(ctx context.Context, partition, category string, resolved *models.ResolvedCatalog) {
	data, err := json.Marshal(resolved)
	if err != nil {
		utils.GetLogger().Warn("failed to marshal catalog for cache", zap.Error(err))
		return
	}
	if err := c.Client.Set(ctx, cacheKey(partition, category), data, resultCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache resolved catalog",
			zap.String("partition", partition),
			zap.String("category", category),
			zap.Error(err))
	}
}
