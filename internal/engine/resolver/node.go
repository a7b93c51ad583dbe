package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dynver/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dynver/internal/adapters/versioncache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dynver/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			versioncache.CacheNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			cache, err := graft.Dep[ports.ModuleVersionsCache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(cache, log), nil
		},
	})
}
