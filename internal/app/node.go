package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jmod/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/jmod/internal/adapters/index"   //nolint:depguard // Wired in app layer
	"go.trai.ch/jmod/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/jmod/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/jmod/internal/core/ports"
	"go.trai.ch/jmod/internal/engine/modnames"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.LayoutNodeID,
			index.StoreNodeID,
			index.IndexerNodeID,
			modnames.NodeID,
			watcher.WatcherNodeID,
			watcher.NotifierNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			modnames.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[*modnames.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log, resolver), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.WorkspaceLoader](ctx)
	if err != nil {
		return nil, err
	}

	layout, err := graft.Dep[*config.Layout](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[*index.Store](ctx)
	if err != nil {
		return nil, err
	}

	indexer, err := graft.Dep[*index.Indexer](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*modnames.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	notifier, err := graft.Dep[*watcher.Notifier](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, layout, store, indexer, resolver, w, notifier, log), nil
}
