package domain

import "time"

// AttrModuleName is the index attribute holding the module name of a source root.
const AttrModuleName = "moduleName"

// SourceRoot describes a source root of the workspace and the roots built from it.
type SourceRoot struct {
	// Path is the absolute path of the source directory.
	Path string
	// Output is the absolute path of the compiled-output folder, if any.
	Output string
	// Binaries are the absolute paths of the archives or folders built from the sources.
	Binaries []string
	// Options are the compiler options used for the sources.
	Options []string
	// PreferSources reports whether the sources are preferred over the binaries.
	PreferSources bool
}

// ID returns the root identifier of the source directory.
func (s SourceRoot) ID() RootID {
	return DirectoryRoot(s.Path)
}

// Workspace is the resolved content of a workspace file.
type Workspace struct {
	// Root is the absolute directory containing the workspace file.
	Root string
	// ConfigPath is the absolute path of the workspace file.
	ConfigPath string
	// Sources are the declared source roots.
	Sources []SourceRoot
}

// IndexRecord holds the persisted attributes of an indexed source root.
type IndexRecord struct {
	SourceRoot string            `json:"sourceRoot"`
	Stamp      string            `json:"stamp"`
	Attributes map[string]string `json:"attributes,omitempty"`
	IndexedAt  time.Time         `json:"indexedAt"`
}
