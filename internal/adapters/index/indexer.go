package index

import (
	"context"
	"runtime"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/jmod/internal/adapters/javasrc"
	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Indexer computes and persists index records for source roots.
type Indexer struct {
	store  ports.IndexStore
	reader ports.SourceModuleReader
	fs     afero.Fs
	logger ports.Logger
	now    func() time.Time
}

// NewIndexer creates an indexer writing to store.
func NewIndexer(store ports.IndexStore, reader ports.SourceModuleReader, fsys afero.Fs, logger ports.Logger) *Indexer {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Indexer{
		store:  store,
		reader: reader,
		fs:     fsys,
		logger: logger,
		now:    time.Now,
	}
}

// Index computes a record for every source root concurrently and stores it.
// Records are returned in the order of sources.
func (ix *Indexer) Index(ctx context.Context, sources []domain.SourceRoot) ([]domain.IndexRecord, error) {
	records := make([]domain.IndexRecord, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, src := range sources {
		g.Go(func() error {
			record, err := ix.indexOne(ctx, src)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrIndexFailed.Error()), "source", src.Path)
			}
			if err := ix.store.Put(record); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrIndexFailed.Error()), "source", src.Path)
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

func (ix *Indexer) indexOne(ctx context.Context, src domain.SourceRoot) (domain.IndexRecord, error) {
	id := src.ID()

	stamp, err := Stamp(ix.fs, id)
	if err != nil {
		return domain.IndexRecord{}, err
	}

	record := domain.IndexRecord{
		SourceRoot: id.String(),
		Stamp:      stamp,
		Attributes: map[string]string{},
		IndexedAt:  ix.now().UTC(),
	}

	path, ok := javasrc.FindModuleInfo(ix.fs, []string{src.Path})
	if !ok {
		// No module declaration; the root gets an automatic name.
		return record, nil
	}

	data, err := afero.ReadFile(ix.fs, path)
	if err != nil {
		return domain.IndexRecord{}, zerr.With(err, "path", path)
	}

	name, err := ix.reader.ParseModuleName(ctx, data)
	if err != nil {
		ix.logger.Warn("no module name in " + path + ": " + err.Error())
		return record, nil
	}

	record.Attributes[domain.AttrModuleName] = name
	return record, nil
}
