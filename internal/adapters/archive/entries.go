package archive

import (
	"errors"
	"io/fs"
	"path"
	"strconv"

	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/zerr"
)

// VersionedEntry returns the path of name inside fsys, preferring the
// highest-numbered META-INF/versions/<n>/name override.
// The boolean is false when no variant exists.
func VersionedEntry(fsys fs.FS, name string) (string, bool) {
	best := -1
	if entries, err := fs.ReadDir(fsys, domain.VersionsDir); err == nil {
		for _, entry := range entries {
			n, err := strconv.Atoi(entry.Name())
			if err != nil || n <= best || !entry.IsDir() {
				continue
			}
			if exists(fsys, path.Join(domain.VersionsDir, entry.Name(), name)) {
				best = n
			}
		}
	}

	if best >= 0 {
		return path.Join(domain.VersionsDir, strconv.Itoa(best), name), true
	}
	if exists(fsys, name) {
		return name, true
	}

	return "", false
}

// exists reports whether name is a regular file in fsys.
func exists(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadEntry reads a file from fsys, reporting a missing entry as domain.ErrEntryNotFound.
func ReadEntry(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(domain.ErrEntryNotFound, "entry", name)
	}
	return nil, zerr.With(zerr.Wrap(err, domain.ErrRootOpenFailed.Error()), "entry", name)
}
