package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jmod/internal/adapters/logger"
	"go.trai.ch/jmod/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// NotifierNodeID is the unique identifier for the change notifier Graft node.
	NotifierNodeID graft.ID = "adapter.notifier"
)

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log)
		},
	})

	graft.Register(graft.Node[*Notifier]{
		ID:        NotifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Notifier, error) {
			return NewNotifier(), nil
		},
	})
}
