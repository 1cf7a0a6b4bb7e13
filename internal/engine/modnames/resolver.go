// Package modnames resolves the Java module names of classpath roots and
// caches them until a change notification invalidates the cached answer.
package modnames

import (
	"context"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/jmod/internal/adapters/archive"
	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// SpanName is the name of the span recorded for every resolution.
const SpanName = "modnames.resolve"

// Rule names recorded on the resolution span.
const (
	RulePlatform         = "platform"
	RuleCompiledOutput   = "compiled-output"
	RuleSources          = "sources"
	RuleArchiveClass     = "archive-module-info"
	RuleArchiveManifest  = "archive-manifest"
	RuleArchiveAutomatic = "archive-automatic"
	RuleDirectory        = "directory"
	RuleNone             = "none"
)

// Queries groups the classpath queries consulted while resolving.
type Queries struct {
	Locator  ports.CompiledSourceLocator
	Sources  ports.SourceForBinaryQuery
	Binaries ports.BinaryForSourceQuery
	Options  ports.CompilerOptionsQuery
}

var _ ports.ModuleNameResolver = (*Resolver)(nil)

// Resolver implements ports.ModuleNameResolver.
type Resolver struct {
	queries  Queries
	opener   ports.RootOpener
	index    ports.IndexStore
	classes  ports.ClassModuleReader
	sources  ports.SourceModuleReader
	notifier ports.ChangeNotifier
	logger   ports.Logger
	tracer   trace.Tracer

	entries     sync.Map // domain.RootID -> *entry
	generations sync.Map // domain.RootID -> *atomic.Uint64
	flights     singleflight.Group
}

// NewResolver creates a resolver with an empty cache. notifier and tracer may be nil.
func NewResolver(
	queries Queries,
	opener ports.RootOpener,
	index ports.IndexStore,
	classes ports.ClassModuleReader,
	sources ports.SourceModuleReader,
	notifier ports.ChangeNotifier,
	logger ports.Logger,
	tracer trace.Tracer,
) *Resolver {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &Resolver{
		queries:  queries,
		opener:   opener,
		index:    index,
		classes:  classes,
		sources:  sources,
		notifier: notifier,
		logger:   logger,
		tracer:   tracer,
	}
}

// result is the outcome of one computation.
type result struct {
	name string
	rule string
}

// ResolveModuleName returns the module name of root, or "" when the root is unnamed.
// A valid cached answer is returned without touching any collaborator.
func (r *Resolver) ResolveModuleName(ctx context.Context, root domain.RootID, allowSourceFallback bool) string {
	ctx, span := r.tracer.Start(ctx, SpanName, trace.WithAttributes(
		attribute.String("root", root.String()),
	))
	defer span.End()

	if e, ok := r.lookup(root); ok {
		span.SetAttributes(
			attribute.Bool("cached", true),
			attribute.String("module", e.name),
		)
		return e.name
	}

	gen := r.generation(root).Load()
	key := root.String() + "#" + strconv.FormatUint(gen, 10) + "#" + strconv.FormatBool(allowSourceFallback)

	v, _, _ := r.flights.Do(key, func() (any, error) {
		if e, ok := r.lookup(root); ok {
			return result{name: e.name, rule: RuleNone}, nil
		}

		e := newEntry(gen)
		res := r.compute(ctx, root, allowSourceFallback, e)
		e.name = res.name
		r.publish(root, e)
		return res, nil
	})

	res, _ := v.(result)
	span.SetAttributes(
		attribute.Bool("cached", false),
		attribute.String("rule", res.rule),
		attribute.String("module", res.name),
	)
	return res.name
}

// Invalidate drops the cached answer for root. Resolutions of root that are
// still running when Invalidate is called do not publish their answer.
func (r *Resolver) Invalidate(root domain.RootID) {
	r.generation(root).Add(1)
	if v, ok := r.entries.LoadAndDelete(root); ok {
		v.(*entry).invalidate()
	}
}

// InvalidateAll drops every cached answer.
func (r *Resolver) InvalidateAll() {
	r.generations.Range(func(_, v any) bool {
		v.(*atomic.Uint64).Add(1)
		return true
	})
	r.entries.Range(func(k, _ any) bool {
		if v, ok := r.entries.LoadAndDelete(k); ok {
			v.(*entry).invalidate()
		}
		return true
	})
}

// Len returns the number of valid cached answers.
func (r *Resolver) Len() int {
	n := 0
	r.entries.Range(func(_, v any) bool {
		if v.(*entry).valid.Load() {
			n++
		}
		return true
	})
	return n
}

func (r *Resolver) lookup(root domain.RootID) (*entry, bool) {
	v, ok := r.entries.Load(root)
	if !ok {
		return nil, false
	}
	e := v.(*entry)
	if !e.valid.Load() {
		return nil, false
	}
	return e, true
}

func (r *Resolver) generation(root domain.RootID) *atomic.Uint64 {
	if v, ok := r.generations.Load(root); ok {
		return v.(*atomic.Uint64)
	}
	v, _ := r.generations.LoadOrStore(root, new(atomic.Uint64))
	return v.(*atomic.Uint64)
}

// publish stores e unless it went stale while it was computed. An entry of a
// newer generation already in the cache is kept.
func (r *Resolver) publish(root domain.RootID, e *entry) {
	if !r.current(root, e) {
		e.invalidate()
		return
	}

	for {
		v, loaded := r.entries.LoadOrStore(root, e)
		if !loaded {
			break
		}
		old := v.(*entry)
		if old.valid.Load() && old.gen > e.gen {
			e.invalidate()
			return
		}
		if r.entries.CompareAndSwap(root, old, e) {
			old.invalidate()
			break
		}
	}

	// An invalidation may have slipped in between the check and the store.
	if !r.current(root, e) {
		r.drop(root, e)
	}
}

func (r *Resolver) current(root domain.RootID, e *entry) bool {
	return e.valid.Load() && r.generation(root).Load() == e.gen
}

// drop invalidates e and removes it from the cache if it is still there.
func (r *Resolver) drop(root domain.RootID, e *entry) {
	e.invalidate()
	r.entries.CompareAndDelete(root, e)
}

func (r *Resolver) compute(ctx context.Context, root domain.RootID, allowSourceFallback bool, e *entry) result {
	if root.Kind() == domain.KindPlatform {
		return result{name: domain.PlatformModuleName(root), rule: RulePlatform}
	}

	if r.queries.Locator != nil {
		if src, ok := r.queries.Locator.SourceRootFor(root); ok {
			// Unindexed sources that may not be parsed fall through to the compiled classes.
			if name, ok := r.projectModuleName(ctx, root, []domain.RootID{src}, allowSourceFallback, e); ok {
				return result{name: name, rule: RuleCompiledOutput}
			}
		}
	}

	if r.queries.Sources != nil {
		sfb := r.queries.Sources.SourcesFor(root)
		r.subscribe(root, e, sfb.Changes)
		if sfb.PreferSources {
			if name, ok := r.projectModuleName(ctx, root, sfb.Roots, allowSourceFallback, e); ok {
				return result{name: name, rule: RuleSources}
			}
		}
	}

	switch root.Kind() {
	case domain.KindArchive:
		return r.archiveModuleName(ctx, root, e)
	case domain.KindDirectory:
		if name := r.directoryModuleName(ctx, root, e); name != "" {
			return result{name: name, rule: RuleDirectory}
		}
	}

	return result{rule: RuleNone}
}

// projectModuleName computes the module name of a root backed by source roots.
// The boolean is false when the sources are not indexed and may not be parsed.
func (r *Resolver) projectModuleName(
	ctx context.Context,
	artefact domain.RootID,
	srcRoots []domain.RootID,
	allowSourceFallback bool,
	e *entry,
) (string, bool) {
	if len(srcRoots) == 0 {
		return "", false
	}

	if r.indexed(srcRoots) {
		// Index stamps follow module-info.java, so an edit makes the record stale.
		for _, src := range srcRoots {
			if src.Kind() == domain.KindDirectory {
				r.watchPath(artefact, e, joinPath(src.Path(), domain.ModuleInfoSource))
			}
		}
		for _, src := range srcRoots {
			name, ok, err := r.index.Attribute(src, domain.AttrModuleName)
			if err != nil {
				r.logger.Debug("index attribute of " + src.String() + ": " + err.Error())
				continue
			}
			if ok && name != "" {
				return name, true
			}
		}
		return r.projectAutomaticName(artefact, srcRoots, e), true
	}

	if !allowSourceFallback {
		return "", false
	}

	for _, src := range srcRoots {
		data, ok := r.readModuleInfoSource(ctx, artefact, src, e)
		if !ok {
			continue
		}
		name, err := r.sources.ParseModuleName(ctx, data)
		if err != nil {
			r.logger.Debug("module-info.java of " + src.String() + ": " + err.Error())
			break
		}
		return name, true
	}
	return r.projectAutomaticName(artefact, srcRoots, e), true
}

func (r *Resolver) indexed(srcRoots []domain.RootID) bool {
	if r.index == nil {
		return false
	}
	for _, src := range srcRoots {
		if !r.index.IsIndexed(src) {
			return false
		}
	}
	return true
}

func (r *Resolver) readModuleInfoSource(ctx context.Context, artefact, src domain.RootID, e *entry) ([]byte, bool) {
	if src.Kind() != domain.KindDirectory {
		return nil, false
	}
	r.watchPath(artefact, e, joinPath(src.Path(), domain.ModuleInfoSource))

	fsys, err := r.opener.Open(ctx, src)
	if err != nil {
		r.logger.Debug(err.Error())
		return nil, false
	}
	defer closeQuietly(fsys)

	data, err := archive.ReadEntry(fsys, domain.ModuleInfoSource)
	if err != nil {
		return nil, false
	}
	return data, true
}

// projectAutomaticName derives the automatic module name of source-backed roots:
// a compiler option override wins, then the first archive built from the
// sources, then the artefact itself when it is an archive.
func (r *Resolver) projectAutomaticName(artefact domain.RootID, srcRoots []domain.RootID, e *entry) string {
	if r.queries.Options != nil {
		for _, src := range srcRoots {
			opts := r.queries.Options.OptionsFor(src)
			r.subscribe(artefact, e, opts.Changes)
			if name, ok := domain.AutomaticModuleNameOverride(opts.Arguments); ok {
				return name
			}
		}
	}

	if r.queries.Binaries != nil {
		for _, src := range srcRoots {
			bins := r.queries.Binaries.BinariesFor(src)
			r.subscribe(artefact, e, bins.Changes)
			for _, bin := range bins.Roots {
				if bin.Kind() == domain.KindArchive {
					return domain.AutomaticModuleName(bin.BaseName())
				}
			}
		}
	}

	if artefact.Kind() == domain.KindArchive {
		return domain.AutomaticModuleName(artefact.BaseName())
	}
	return ""
}

func (r *Resolver) archiveModuleName(ctx context.Context, root domain.RootID, e *entry) result {
	r.watchPath(root, e, root.Path())

	fsys, err := r.opener.Open(ctx, root)
	if err != nil {
		r.logger.Debug(err.Error())
		return result{name: domain.AutomaticModuleName(root.BaseName()), rule: RuleArchiveAutomatic}
	}
	defer closeQuietly(fsys)

	if name := r.classModuleName(fsys, root); name != "" {
		return result{name: name, rule: RuleArchiveClass}
	}

	manifest, err := archive.ReadRootManifest(fsys)
	if err != nil {
		r.logger.Debug("manifest of " + root.String() + ": " + err.Error())
	} else if name := strings.TrimSpace(manifest.Get(archive.AutomaticModuleNameAttr)); name != "" {
		return result{name: name, rule: RuleArchiveManifest}
	}

	return result{name: domain.AutomaticModuleName(root.BaseName()), rule: RuleArchiveAutomatic}
}

func (r *Resolver) directoryModuleName(ctx context.Context, root domain.RootID, e *entry) string {
	r.watchPath(root, e, joinPath(root.Path(), domain.ModuleInfoClass))

	fsys, err := r.opener.Open(ctx, root)
	if err != nil {
		r.logger.Debug(err.Error())
		return ""
	}
	defer closeQuietly(fsys)

	return r.classModuleName(fsys, root)
}

// classModuleName reads the (possibly multi-release) module-info.class of fsys.
func (r *Resolver) classModuleName(fsys fs.FS, root domain.RootID) string {
	entryName, ok := archive.VersionedEntry(fsys, domain.ModuleInfoClass)
	if !ok {
		return ""
	}
	data, err := archive.ReadEntry(fsys, entryName)
	if err != nil {
		r.logger.Debug(err.Error())
		return ""
	}
	name, err := r.classes.ReadModuleName(data)
	if err != nil {
		r.logger.Debug(entryName + " in " + root.String() + ": " + err.Error())
		return ""
	}
	return name
}

func (r *Resolver) subscribe(root domain.RootID, e *entry, w ports.Watchable) {
	if w == nil {
		return
	}
	e.watch(w.Subscribe(func() { r.drop(root, e) }))
}

func (r *Resolver) watchPath(root domain.RootID, e *entry, path string) {
	if r.notifier == nil || path == "" {
		return
	}
	sub, err := r.notifier.WatchPath(path, func() { r.drop(root, e) })
	if err != nil {
		r.logger.Debug(err.Error())
		return
	}
	e.watch(sub)
}

func joinPath(dir, name string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name)
}

func closeQuietly(fsys ports.RootFS) {
	_ = fsys.Close()
}
