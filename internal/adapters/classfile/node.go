package classfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jmod/internal/core/ports"
)

// NodeID is the unique identifier for the class file reader Graft node.
const NodeID graft.ID = "adapter.classfile"

func init() {
	graft.Register(graft.Node[ports.ClassModuleReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ClassModuleReader, error) {
			return NewReader(), nil
		},
	})
}
