// Package config loads the jmod.yaml workspace file and answers the classpath
// layout queries derived from it.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only workspace file version understood by the loader.
const SupportedVersion = "1"

var _ ports.WorkspaceLoader = (*Loader)(nil)

// Loader implements ports.WorkspaceLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     afero.Fs
}

// NewLoader creates a new Loader reading from fsys.
// A nil fsys reads from the operating system.
func NewLoader(logger ports.Logger, fsys afero.Fs) *Loader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Loader{Logger: logger, fs: fsys}
}

// Load reads the workspace file found from cwd and returns the resolved workspace.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(root, domain.WorkspaceFileName)

	var workfile Workfile
	if err := l.readAndUnmarshalYAML(configPath, &workfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	switch workfile.Version {
	case SupportedVersion:
	case "":
		l.Logger.Warn("no version in " + domain.WorkspaceFileName + ", assuming " + SupportedVersion)
	default:
		return nil, zerr.With(domain.ErrUnsupportedVersion, "version", workfile.Version)
	}

	sources, err := resolveSources(root, workfile.Sources)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return &domain.Workspace{
		Root:       root,
		ConfigPath: configPath,
		Sources:    sources,
	}, nil
}

// DiscoverRoot walks up from cwd to find the directory containing jmod.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}

	for currentDir := abs; ; {
		candidate := filepath.Join(currentDir, domain.WorkspaceFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func resolveSources(root string, dtos []*SourceDTO) ([]domain.SourceRoot, error) {
	seen := make(map[string]int, len(dtos))
	sources := make([]domain.SourceRoot, 0, len(dtos))

	for i, dto := range dtos {
		if dto == nil || dto.Path == "" {
			return nil, zerr.With(domain.ErrMissingSourcePath, "index", i)
		}

		path := resolvePath(root, dto.Path)
		if first, ok := seen[path]; ok {
			err := zerr.With(domain.ErrDuplicateSourceRoot, "source", path)
			return nil, zerr.With(err, "first_index", first)
		}
		seen[path] = i

		src := domain.SourceRoot{
			Path:          path,
			Options:       dto.Options,
			PreferSources: dto.PreferSources,
		}
		if dto.Output != "" {
			src.Output = resolvePath(root, dto.Output)
		}
		for _, bin := range dto.Binaries {
			if bin == "" {
				continue
			}
			src.Binaries = append(src.Binaries, resolvePath(root, bin))
		}

		sources = append(sources, src)
	}

	return sources, nil
}

// resolvePath resolves a configured path against the workspace root.
func resolvePath(root, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(root, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Workfile) error {
	content, err := afero.ReadFile(l.fs, configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return zerr.Wrap(err, domain.ErrConfigNotFound.Error())
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(content, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
