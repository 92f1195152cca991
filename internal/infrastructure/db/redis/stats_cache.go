package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wastemap/collection-api/internal/api/metrics"
	"github.com/wastemap/collection-api/internal/core/ports"
)

const statsKey = "stats:requests"

// StatsCache keeps a short-lived snapshot of the global request counts.
// Stats are explicitly best-effort, so serving a slightly stale snapshot is
// within contract.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached snapshot, or (nil, nil) when none is stored.
func (c *StatsCache) Get(ctx context.Context) (*ports.RequestStats, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.RequestStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
	return &stats, nil
}

// Set stores the snapshot; it expires after the configured TTL.
func (c *StatsCache) Set(ctx context.Context, stats *ports.RequestStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, c.ttl).Err()
}
