package domain

import "path/filepath"

const (
	// JmodDirName is the name of the internal workspace directory.
	JmodDirName = ".jmod"

	// IndexDirName is the name of the source root index directory.
	IndexDirName = "index"

	// WorkspaceFileName is the name of the workspace configuration file.
	WorkspaceFileName = "jmod.yaml"

	// ModuleInfoClass is the name of a compiled module declaration.
	ModuleInfoClass = "module-info.class"

	// ModuleInfoSource is the name of a module declaration source file.
	ModuleInfoSource = "module-info.java"

	// ManifestPath is the archive entry holding the JAR manifest.
	ManifestPath = "META-INF/MANIFEST.MF"

	// VersionsDir is the archive directory holding multi-release overrides.
	VersionsDir = "META-INF/versions"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultJmodPath returns the default root directory for jmod metadata.
func DefaultJmodPath() string {
	return JmodDirName
}

// DefaultIndexPath returns the default path for the source root index.
// It joins .jmod and index.
func DefaultIndexPath() string {
	return filepath.Join(JmodDirName, IndexDirName)
}
