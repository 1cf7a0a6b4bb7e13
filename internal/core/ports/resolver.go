package ports

import (
	"context"

	"go.trai.ch/jmod/internal/core/domain"
)

// ModuleNameResolver resolves and caches the module names of classpath roots.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ModuleNameResolver interface {
	// ResolveModuleName returns the module name of the root, or an empty string
	// when the root is unnamed. allowSourceFallback permits parsing module-info
	// sources of roots that are not indexed yet.
	ResolveModuleName(ctx context.Context, root domain.RootID, allowSourceFallback bool) string

	// Invalidate drops the cached name of the root.
	Invalidate(root domain.RootID)

	// InvalidateAll drops every cached name.
	InvalidateAll()
}
