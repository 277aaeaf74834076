package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = time.Minute

// HealthStatus is the last observed reachability of the stores the booking
// flow depends on: the catalog database, the session cache, and the catalog
// result cache.
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	SessionCache bool      `json:"sessionCache"`
	CatalogCache bool      `json:"catalogCache"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest snapshot taken by the monitor.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings each store once per interval and keeps the
// snapshot in memory for the health endpoint.
func StartHealthMonitor(sessionCache, catalogCache *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		ctx := context.Background()
		for range ticker.C {
			status := HealthStatus{
				Mongo:        mongoClient.Ping(ctx, nil) == nil,
				SessionCache: sessionCache.Ping(ctx).Err() == nil,
				CatalogCache: catalogCache.Ping(ctx).Err() == nil,
				CheckedAt:    time.Now().UTC(),
			}

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
