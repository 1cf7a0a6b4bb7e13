package config

// Workfile represents the structure of the jmod.yaml workspace file.
type Workfile struct {
	Version string       `yaml:"version"`
	Sources []*SourceDTO `yaml:"sources"`
}

// SourceDTO represents a source root definition in the workspace file.
type SourceDTO struct {
	Path          string   `yaml:"path"`
	Output        string   `yaml:"output"`
	Binaries      []string `yaml:"binaries"`
	PreferSources bool     `yaml:"preferSources"`
	Options       []string `yaml:"options"`
}
