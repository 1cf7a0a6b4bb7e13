package index

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/jmod/internal/adapters/javasrc"
	"go.trai.ch/jmod/internal/adapters/logger"
	"go.trai.ch/jmod/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the index store Graft node.
	StoreNodeID graft.ID = "adapter.index_store"
	// IndexerNodeID is the unique identifier for the indexer Graft node.
	IndexerNodeID graft.ID = "adapter.indexer"
)

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Store, error) {
			// The workspace root is set once the workspace file is loaded.
			return NewStore(afero.NewOsFs(), ""), nil
		},
	})

	graft.Register(graft.Node[*Indexer]{
		ID:        IndexerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID, javasrc.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Indexer, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.SourceModuleReader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewIndexer(store, reader, afero.NewOsFs(), log), nil
		},
	})
}
