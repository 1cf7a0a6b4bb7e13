package javasrc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jmod/internal/core/ports"
)

// NodeID is the unique identifier for the Java source reader Graft node.
const NodeID graft.ID = "adapter.javasrc"

func init() {
	graft.Register(graft.Node[ports.SourceModuleReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceModuleReader, error) {
			return NewReader(), nil
		},
	})
}
