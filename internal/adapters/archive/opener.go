// Package archive opens archive and directory roots as read-only file systems.
package archive

import (
	"context"
	"io"

	"github.com/mholt/archives"
	"github.com/spf13/afero"
	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RootOpener = (*Opener)(nil)

// Opener implements ports.RootOpener on top of an afero file system.
type Opener struct {
	fs afero.Fs
}

// NewOpener creates an opener reading from fsys.
// A nil fsys reads from the operating system.
func NewOpener(fsys afero.Fs) *Opener {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Opener{fs: fsys}
}

// Open returns a file system over the archive or directory root.
// Archives are read as zip files.
func (o *Opener) Open(ctx context.Context, root domain.RootID) (ports.RootFS, error) {
	switch root.Kind() {
	case domain.KindArchive:
		return o.openArchive(ctx, root.Path())
	case domain.KindDirectory:
		return o.openDirectory(root.Path())
	default:
		return nil, zerr.With(domain.ErrUnsupportedRoot, "root", root.String())
	}
}

func (o *Opener) openArchive(ctx context.Context, path string) (ports.RootFS, error) {
	f, err := o.fs.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRootOpenFailed.Error()), "path", path)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRootOpenFailed.Error()), "path", path)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, zerr.With(domain.ErrRootOpenFailed, "path", path)
	}

	return &archiveFS{
		ArchiveFS: &archives.ArchiveFS{
			Stream:  io.NewSectionReader(f, 0, info.Size()),
			Format:  archives.Zip{},
			Context: ctx,
		},
		file: f,
	}, nil
}

func (o *Opener) openDirectory(path string) (ports.RootFS, error) {
	info, err := o.fs.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRootOpenFailed.Error()), "path", path)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrRootOpenFailed, "path", path)
	}

	return dirFS{IOFS: afero.NewIOFS(afero.NewBasePathFs(o.fs, path))}, nil
}

// archiveFS keeps the underlying archive file open until Close.
type archiveFS struct {
	*archives.ArchiveFS
	file afero.File
}

func (a *archiveFS) Close() error {
	return a.file.Close()
}

type dirFS struct {
	afero.IOFS
}

func (dirFS) Close() error { return nil }
