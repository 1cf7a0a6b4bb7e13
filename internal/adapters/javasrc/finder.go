package javasrc

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/jmod/internal/core/domain"
)

// FindModuleInfo returns the first module-info.java found directly in one of
// the source root directories.
func FindModuleInfo(fsys afero.Fs, roots []string) (string, bool) {
	for _, root := range roots {
		candidate := filepath.Join(root, domain.ModuleInfoSource)
		info, err := fsys.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
