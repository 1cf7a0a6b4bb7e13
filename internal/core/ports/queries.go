package ports

import "go.trai.ch/jmod/internal/core/domain"

// Watchable is a query result that can report later changes.
type Watchable interface {
	// Subscribe registers fn to be called when the result may have changed.
	Subscribe(fn func()) Subscription
}

// SourceForBinaryResult lists the source roots a binary root was built from.
type SourceForBinaryResult struct {
	// PreferSources reports whether the sources should be used instead of the binary.
	PreferSources bool
	// Roots are the source roots of the binary.
	Roots []domain.RootID
	// Changes reports updates of the result. It may be nil.
	Changes Watchable
}

// BinaryForSourceResult lists the binary roots built from a source root.
type BinaryForSourceResult struct {
	// Roots are the binary roots of the source root.
	Roots []domain.RootID
	// Changes reports updates of the result. It may be nil.
	Changes Watchable
}

// CompilerOptionsResult holds the compiler options of a source root.
type CompilerOptionsResult struct {
	// Arguments are the raw compiler option strings.
	Arguments []string
	// Changes reports updates of the result. It may be nil.
	Changes Watchable
}

// CompiledSourceLocator maps a compiled-output folder back to its source root.
//
//go:generate mockgen -source=queries.go -destination=mocks/mock_queries.go -package=mocks
type CompiledSourceLocator interface {
	// SourceRootFor returns the source root compiled into the given output root.
	SourceRootFor(root domain.RootID) (domain.RootID, bool)
}

// SourceForBinaryQuery finds the source roots of a binary root.
type SourceForBinaryQuery interface {
	// SourcesFor returns the source roots of the given binary root.
	SourcesFor(root domain.RootID) SourceForBinaryResult
}

// BinaryForSourceQuery finds the binary roots built from a source root.
type BinaryForSourceQuery interface {
	// BinariesFor returns the binary roots of the given source root.
	BinariesFor(source domain.RootID) BinaryForSourceResult
}

// CompilerOptionsQuery returns the compiler options of a source root.
type CompilerOptionsQuery interface {
	// OptionsFor returns the compiler options of the given source root.
	OptionsFor(source domain.RootID) CompilerOptionsResult
}
