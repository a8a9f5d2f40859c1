package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/views"
)

const snapshotKey = "dashboard:snapshot"

// SnapshotCache stores the serialized dashboard snapshot in redis with
// a TTL. The cache is best-effort: redis failures degrade to a miss,
// never to an error surfaced upstream.
type SnapshotCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewSnapshotCache(log *logger.Logger, ttl time.Duration) (*SnapshotCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &SnapshotCache{
		log: log.With("service", "RedisSnapshotCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func (c *SnapshotCache) Get(ctx context.Context) (*views.Snapshot, bool) {
	raw, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Snapshot cache read failed", "error", err)
		}
		return nil, false
	}
	var snap views.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		c.log.Warn("Snapshot cache payload unreadable, dropping", "error", err)
		_ = c.rdb.Del(ctx, snapshotKey).Err()
		return nil, false
	}
	return &snap, true
}

func (c *SnapshotCache) Set(ctx context.Context, snap *views.Snapshot) {
	raw, err := json.Marshal(snap)
	if err != nil {
		c.log.Warn("Snapshot cache marshal failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, snapshotKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Snapshot cache write failed", "error", err)
	}
}

func (c *SnapshotCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, snapshotKey).Err(); err != nil {
		c.log.Warn("Snapshot cache invalidation failed", "error", err)
	}
}

func (c *SnapshotCache) Close() error {
	return c.rdb.Close()
}
