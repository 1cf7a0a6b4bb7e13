package ports

import (
	"context"
	"io"
	"io/fs"

	"go.trai.ch/jmod/internal/core/domain"
)

// RootFS is a read-only view of an archive or directory root.
type RootFS interface {
	fs.FS
	io.Closer
}

// RootOpener opens classpath roots for reading.
//
//go:generate mockgen -source=roots.go -destination=mocks/mock_roots.go -package=mocks
type RootOpener interface {
	// Open returns a filesystem over the given archive or directory root.
	Open(ctx context.Context, root domain.RootID) (RootFS, error)
}
