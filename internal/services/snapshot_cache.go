package services

import (
	"context"

	"github.com/samson-vesta/credmapping/internal/views"
)

// SnapshotCache caches one dashboard snapshot. Invalidation is
// coarse-grained: any mutation drops the whole snapshot and the next
// dashboard load refetches everything.
type SnapshotCache interface {
	Get(ctx context.Context) (*views.Snapshot, bool)
	Set(ctx context.Context, snap *views.Snapshot)
	Invalidate(ctx context.Context)
}

// NoopSnapshotCache always misses; used when redis is not configured
// and in tests.
type NoopSnapshotCache struct{}

func (NoopSnapshotCache) Get(ctx context.Context) (*views.Snapshot, bool) { return nil, false }
func (NoopSnapshotCache) Set(ctx context.Context, snap *views.Snapshot)  {}
func (NoopSnapshotCache) Invalidate(ctx context.Context)                 {}
