// Package index persists the attributes computed for source roots.
package index

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/core/ports"
	"go.trai.ch/zerr"
)

const absentMarker = "\x00absent"

var _ ports.IndexStore = (*Store)(nil)

// Store implements ports.IndexStore using a file per source root under the
// workspace's .jmod/index directory.
type Store struct {
	fs afero.Fs

	mu   sync.RWMutex
	root string
}

// NewStore creates a store over fsys rooted at the given workspace directory.
// A nil fsys uses the operating system.
func NewStore(fsys afero.Fs, workspaceRoot string) *Store {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Store{fs: fsys, root: workspaceRoot}
}

// SetRoot points the store at another workspace.
func (s *Store) SetRoot(workspaceRoot string) {
	s.mu.Lock()
	s.root = workspaceRoot
	s.mu.Unlock()
}

// IsIndexed reports whether the source root has a record whose stamp matches
// the current content of the root. Read failures count as not indexed.
func (s *Store) IsIndexed(source domain.RootID) bool {
	record, err := s.Get(source)
	if err != nil || record == nil {
		return false
	}

	stamp, err := Stamp(s.fs, source)
	if err != nil {
		return false
	}

	return record.Stamp == stamp
}

// Attribute returns a persisted attribute of the source root.
func (s *Store) Attribute(source domain.RootID, key string) (string, bool, error) {
	record, err := s.Get(source)
	if err != nil || record == nil {
		return "", false, err
	}

	v, ok := record.Attributes[key]
	return v, ok, nil
}

// Get retrieves the record of a source root. Returns nil, nil if not found.
func (s *Store) Get(source domain.RootID) (*domain.IndexRecord, error) {
	filename := s.filename(source.String())

	data, err := afero.ReadFile(s.fs, filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "source", source.String())
	}

	var record domain.IndexRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "source", source.String())
	}

	return &record, nil
}

// Put stores a record.
func (s *Store) Put(record domain.IndexRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(record.SourceRoot)
	if err := s.fs.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	if err := afero.WriteFile(s.fs, filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) filename(sourceRoot string) string {
	s.mu.RLock()
	root := s.root
	s.mu.RUnlock()

	hash := sha256.Sum256([]byte(sourceRoot))
	return filepath.Join(root, domain.DefaultIndexPath(), hex.EncodeToString(hash[:])+".json")
}

// Stamp fingerprints the module declaration of a source root. The stamp
// changes whenever module-info.java appears, disappears or is edited.
func Stamp(fsys afero.Fs, source domain.RootID) (string, error) {
	dir := source.Path()
	digest := xxhash.New()
	_, _ = digest.WriteString(dir)

	data, err := afero.ReadFile(fsys, filepath.Join(dir, domain.ModuleInfoSource))
	switch {
	case err == nil:
		_, _ = digest.WriteString("\x00")
		_, _ = digest.Write(data)
	case errors.Is(err, fs.ErrNotExist):
		_, _ = digest.WriteString(absentMarker)
	default:
		return "", zerr.With(zerr.Wrap(err, domain.ErrStampFailed.Error()), "source", source.String())
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
