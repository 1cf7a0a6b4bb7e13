package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/jmod/internal/adapters/logger"
	"go.trai.ch/jmod/internal/adapters/watcher"
	"go.trai.ch/jmod/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the workspace loader Graft node.
	NodeID graft.ID = "adapter.config"
	// LayoutNodeID is the unique identifier for the classpath layout Graft node.
	LayoutNodeID graft.ID = "adapter.layout"
)

func init() {
	graft.Register(graft.Node[ports.WorkspaceLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, afero.NewOsFs()), nil
		},
	})

	graft.Register(graft.Node[*Layout]{
		ID:        LayoutNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{watcher.NotifierNodeID},
		Run: func(ctx context.Context) (*Layout, error) {
			notifier, err := graft.Dep[*watcher.Notifier](ctx)
			if err != nil {
				return nil, err
			}
			return NewLayout(notifier), nil
		},
	})
}
