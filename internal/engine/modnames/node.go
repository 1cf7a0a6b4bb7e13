package modnames

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/jmod/internal/adapters/archive"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jmod/internal/adapters/classfile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jmod/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jmod/internal/adapters/index"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jmod/internal/adapters/javasrc"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jmod/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jmod/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jmod/internal/adapters/watcher"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jmod/internal/core/ports"
)

// NodeID is the unique identifier for the module name resolver Graft node.
const NodeID graft.ID = "engine.modnames"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.LayoutNodeID,
			archive.NodeID,
			index.StoreNodeID,
			classfile.NodeID,
			javasrc.NodeID,
			watcher.NotifierNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			layout, err := graft.Dep[*config.Layout](ctx)
			if err != nil {
				return nil, err
			}

			opener, err := graft.Dep[ports.RootOpener](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[*index.Store](ctx)
			if err != nil {
				return nil, err
			}

			classes, err := graft.Dep[ports.ClassModuleReader](ctx)
			if err != nil {
				return nil, err
			}

			sources, err := graft.Dep[ports.SourceModuleReader](ctx)
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

			provider, err := graft.Dep[trace.TracerProvider](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(
				Queries{
					Locator:  layout,
					Sources:  layout,
					Binaries: layout,
					Options:  layout,
				},
				opener,
				store,
				classes,
				sources,
				notifier,
				log,
				telemetry.Tracer(provider),
			), nil
		},
	})
}
