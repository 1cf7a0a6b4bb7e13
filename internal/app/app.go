// Package app implements the application layer for jmod.
package app

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/jmod/internal/adapters/config"
	"go.trai.ch/jmod/internal/adapters/index"
	"go.trai.ch/jmod/internal/adapters/watcher"
	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.WorkspaceLoader
	layout   *config.Layout
	store    *index.Store
	indexer  *index.Indexer
	resolver ports.ModuleNameResolver
	watcher  ports.Watcher
	notifier *watcher.Notifier
	logger   ports.Logger
	stdout   io.Writer
	debounce time.Duration
}

// New creates a new App instance.
func New(
	loader ports.WorkspaceLoader,
	layout *config.Layout,
	store *index.Store,
	indexer *index.Indexer,
	resolver ports.ModuleNameResolver,
	w ports.Watcher,
	notifier *watcher.Notifier,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		layout:   layout,
		store:    store,
		indexer:  indexer,
		resolver: resolver,
		watcher:  w,
		notifier: notifier,
		logger:   log,
		stdout:   os.Stdout,
		debounce: watcher.DefaultDebounceWindow,
	}
}

// WithOutput sets the writer command results are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDebounce sets the window used to coalesce file events in Watch.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// ResolveOptions configures Resolve and Watch.
type ResolveOptions struct {
	// Dir is the directory the workspace file is searched from. Empty means ".".
	Dir string
	// NoSources disables parsing module-info.java of source roots that are not indexed.
	NoSources bool
	// JSON prints the results as a JSON array.
	JSON bool
}

// Resolution is the module name of one requested root.
type Resolution struct {
	// Root is the root as given on the command line.
	Root string `json:"root"`
	// ID is the normalized root identifier.
	ID domain.RootID `json:"id"`
	// Module is the module name, empty when the root is unnamed.
	Module string `json:"module,omitempty"`
}

// Resolve prints the module name of every root.
func (a *App) Resolve(ctx context.Context, roots []string, opts ResolveOptions) ([]Resolution, error) {
	if len(roots) == 0 {
		return nil, domain.ErrNoRootsSpecified
	}

	ids, err := parseRoots(roots)
	if err != nil {
		return nil, err
	}

	if _, err := a.loadWorkspace(opts.Dir); err != nil {
		return nil, err
	}

	results := a.resolveAll(ctx, roots, ids, opts)
	if err := a.print(results, opts.JSON); err != nil {
		return nil, err
	}
	return results, nil
}

// Index indexes every source root of the workspace found from dir.
func (a *App) Index(ctx context.Context, dir string) ([]domain.IndexRecord, error) {
	ws, err := a.loadWorkspace(dir)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, zerr.With(domain.ErrConfigNotFound, "cwd", workingDir(dir))
	}

	records, err := a.indexer.Index(ctx, ws.Sources)
	if err != nil {
		return nil, zerr.Wrap(err, "indexing failed")
	}
	a.resolver.InvalidateAll()

	a.logger.Info("indexed " + pluralize(len(records), "source root"))
	if err := writeRecords(a.stdout, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Watch prints the module names of roots and prints every change until ctx is done.
func (a *App) Watch(ctx context.Context, roots []string, opts ResolveOptions) error {
	if len(roots) == 0 {
		return domain.ErrNoRootsSpecified
	}

	ids, err := parseRoots(roots)
	if err != nil {
		return err
	}

	ws, err := a.loadWorkspace(opts.Dir)
	if err != nil {
		return err
	}

	current := a.resolveAll(ctx, roots, ids, opts)
	if err := a.print(current, opts.JSON); err != nil {
		return err
	}

	watchRoot := workingDir(opts.Dir)
	if ws != nil {
		watchRoot = ws.Root
	}
	if err := a.watcher.Start(ctx, watchRoot); err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to stop watcher"))
		}
	}()

	a.logger.Info("watching " + watchRoot)

	a.notifier.Pump(ctx, a.watcher.Events(), a.debounce, func(paths []string) {
		if ws != nil && containsPath(paths, ws.ConfigPath) {
			reloaded, err := a.loadWorkspace(opts.Dir)
			if err != nil {
				a.logger.Error(err)
			} else {
				ws = reloaded
			}
		}

		next := a.resolveAll(ctx, roots, ids, opts)
		changes := diff(current, next)
		current = next
		if len(changes) == 0 {
			return
		}
		if err := a.print(changes, opts.JSON); err != nil {
			a.logger.Error(err)
		}
	})

	return nil
}

// loadWorkspace reloads the layout from the workspace file found from dir.
// Without a workspace file the layout is emptied and nil is returned.
func (a *App) loadWorkspace(dir string) (*domain.Workspace, error) {
	cwd := workingDir(dir)

	if _, err := a.loader.DiscoverRoot(cwd); err != nil {
		a.logger.Debug("no " + domain.WorkspaceFileName + " found from " + cwd)
		a.layout.Reload(nil)
		a.store.SetRoot("")
		a.resolver.InvalidateAll()
		return nil, nil //nolint:nilnil // resolving without a workspace is supported
	}

	ws, err := a.loader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load workspace")
	}

	a.layout.Reload(ws)
	a.store.SetRoot(ws.Root)
	a.resolver.InvalidateAll()
	a.logger.Debug("loaded " + ws.ConfigPath + " with " + pluralize(len(ws.Sources), "source root"))

	return ws, nil
}

func (a *App) resolveAll(ctx context.Context, roots []string, ids []domain.RootID, opts ResolveOptions) []Resolution {
	results := make([]Resolution, len(ids))
	for i, id := range ids {
		results[i] = Resolution{
			Root:   roots[i],
			ID:     id,
			Module: a.resolver.ResolveModuleName(ctx, id, !opts.NoSources),
		}
	}
	return results
}

func (a *App) print(results []Resolution, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return zerr.Wrap(err, "failed to encode results")
		}
		return nil
	}
	return writeResolutions(a.stdout, results)
}

func parseRoots(roots []string) ([]domain.RootID, error) {
	ids := make([]domain.RootID, 0, len(roots))
	for _, root := range roots {
		id, err := domain.ParseRootID(root)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// diff returns the entries of next whose module name differs from prev.
func diff(prev, next []Resolution) []Resolution {
	var changed []Resolution
	for i := range next {
		if i >= len(prev) || prev[i].Module != next[i].Module {
			changed = append(changed, next[i])
		}
	}
	return changed
}

func containsPath(paths []string, target string) bool {
	target = filepath.Clean(target)
	for _, p := range paths {
		if filepath.Clean(p) == target {
			return true
		}
	}
	return false
}

func workingDir(dir string) string {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
