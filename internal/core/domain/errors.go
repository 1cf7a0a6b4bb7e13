package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidRoot is returned when a root identifier cannot be parsed.
	ErrInvalidRoot = zerr.New("invalid root identifier")

	// ErrUnsupportedRoot is returned when a root kind cannot be opened as a filesystem.
	ErrUnsupportedRoot = zerr.New("root kind cannot be opened")

	// ErrRootOpenFailed is returned when an archive or directory root cannot be opened.
	ErrRootOpenFailed = zerr.New("failed to open root")

	// ErrEntryNotFound is returned when a requested entry does not exist in a root.
	ErrEntryNotFound = zerr.New("entry not found")

	// ErrManifestReadFailed is returned when a manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestMalformed is returned when a manifest line cannot be parsed.
	ErrManifestMalformed = zerr.New("malformed manifest")

	// ErrClassReadFailed is returned when a class file cannot be read.
	ErrClassReadFailed = zerr.New("failed to read class file")

	// ErrClassMalformed is returned when a class file is truncated or inconsistent.
	ErrClassMalformed = zerr.New("malformed class file")

	// ErrNotModuleInfo is returned when a class file does not declare a module.
	ErrNotModuleInfo = zerr.New("class file is not a module declaration")

	// ErrSourceParseFailed is returned when a source file cannot be parsed.
	ErrSourceParseFailed = zerr.New("failed to parse source file")

	// ErrNoModuleDeclaration is returned when a source file has no module declaration.
	ErrNoModuleDeclaration = zerr.New("no module declaration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find workspace file")

	// ErrMissingSourcePath is returned when a source root entry has no path.
	ErrMissingSourcePath = zerr.New("source root is missing a path")

	// ErrDuplicateSourceRoot is returned when a source root is declared twice.
	ErrDuplicateSourceRoot = zerr.New("duplicate source root")

	// ErrUnsupportedVersion is returned when the workspace file version is unknown.
	ErrUnsupportedVersion = zerr.New("unsupported workspace file version")

	// ErrStoreCreateFailed is returned when the index store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create index store directory")

	// ErrStoreReadFailed is returned when an index record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read index record")

	// ErrStoreUnmarshalFailed is returned when an index record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal index record")

	// ErrStoreMarshalFailed is returned when an index record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal index record")

	// ErrStoreWriteFailed is returned when an index record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write index record")

	// ErrStampFailed is returned when the content stamp of a source root cannot be computed.
	ErrStampFailed = zerr.New("failed to compute source root stamp")

	// ErrIndexFailed is returned when indexing a source root fails.
	ErrIndexFailed = zerr.New("failed to index source root")

	// ErrWatchFailed is returned when a path cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch path")

	// ErrNoRootsSpecified is returned when a command needs at least one root.
	ErrNoRootsSpecified = zerr.New("no roots specified")
)
