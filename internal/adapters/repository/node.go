package repository

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dynver/internal/adapters/logger"
	"go.trai.ch/dynver/internal/core/ports"
)

// NodeID is the unique identifier for the repository factory Graft node.
const NodeID graft.ID = "adapter.repository_factory"

func init() {
	graft.Register(graft.Node[ports.RepositoryFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RepositoryFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
