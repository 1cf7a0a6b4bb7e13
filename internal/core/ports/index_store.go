package ports

import "go.trai.ch/jmod/internal/core/domain"

// IndexStore persists per-source-root attributes computed by indexing.
//
//go:generate mockgen -source=index_store.go -destination=mocks/mock_index_store.go -package=mocks
type IndexStore interface {
	// IsIndexed reports whether the source root has an up-to-date index record.
	IsIndexed(source domain.RootID) bool

	// Attribute returns a persisted attribute of the source root.
	// The boolean is false when the attribute is absent.
	Attribute(source domain.RootID, key string) (string, bool, error)

	// Get retrieves the index record of a source root.
	// Returns nil, nil if not found.
	Get(source domain.RootID) (*domain.IndexRecord, error)

	// Put stores an index record.
	Put(record domain.IndexRecord) error
}
