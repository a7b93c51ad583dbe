package versioncache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dynver/internal/adapters/clock"
	"go.trai.ch/dynver/internal/adapters/logger"
	"go.trai.ch/dynver/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the version cache store Graft node.
	StoreNodeID graft.ID = "adapter.version_cache_store"
	// CacheNodeID is the unique identifier for the module versions cache Graft node.
	CacheNodeID graft.ID = "adapter.module_versions_cache"
)

func init() {
	graft.Register(graft.Node[ports.VersionCacheStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionCacheStore, error) {
			return NewStore(), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleVersionsCache]{
		ID:        CacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			StoreNodeID,
			clock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.ModuleVersionsCache, error) {
			store, err := graft.Dep[ports.VersionCacheStore](ctx)
			if err != nil {
				return nil, err
			}

			clk, err := graft.Dep[ports.Clock](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewCache(store, clk, log), nil
		},
	})
}
