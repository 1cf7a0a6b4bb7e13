package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/jmod/internal/core/ports"
)

// NodeID is the unique identifier for the root opener Graft node.
const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.RootOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RootOpener, error) {
			return NewOpener(afero.NewOsFs()), nil
		},
	})
}
