package config

import (
	"slices"
	"sync/atomic"

	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/core/ports"
)

var (
	_ ports.CompiledSourceLocator = (*Layout)(nil)
	_ ports.SourceForBinaryQuery  = (*Layout)(nil)
	_ ports.BinaryForSourceQuery  = (*Layout)(nil)
	_ ports.CompilerOptionsQuery  = (*Layout)(nil)
)

// Layout answers classpath layout queries from the loaded workspace.
// Every result reports changes of the workspace file.
type Layout struct {
	notifier ports.ChangeNotifier
	state    atomic.Pointer[layoutState]
}

type layoutState struct {
	configPath string
	sources    map[domain.RootID]domain.SourceRoot
	outputs    map[domain.RootID]domain.RootID
	binaries   map[domain.RootID][]domain.RootID
}

// NewLayout creates an empty layout. Call Reload once a workspace is loaded.
func NewLayout(notifier ports.ChangeNotifier) *Layout {
	l := &Layout{notifier: notifier}
	l.state.Store(&layoutState{})
	return l
}

// Reload replaces the layout with the content of ws.
func (l *Layout) Reload(ws *domain.Workspace) {
	st := &layoutState{
		sources:  make(map[domain.RootID]domain.SourceRoot),
		outputs:  make(map[domain.RootID]domain.RootID),
		binaries: make(map[domain.RootID][]domain.RootID),
	}

	if ws != nil {
		st.configPath = ws.ConfigPath
		for _, src := range ws.Sources {
			id := src.ID()
			st.sources[id] = src

			if src.Output != "" {
				st.outputs[domain.DirectoryRoot(src.Output)] = id
			}
			for _, bin := range src.Binaries {
				binID := binaryRoot(bin)
				if !slices.Contains(st.binaries[binID], id) {
					st.binaries[binID] = append(st.binaries[binID], id)
				}
			}
		}
	}

	l.state.Store(st)
}

// Source returns the configured source root with the given identifier.
func (l *Layout) Source(id domain.RootID) (domain.SourceRoot, bool) {
	src, ok := l.state.Load().sources[id]
	return src, ok
}

// SourceRootFor returns the source root whose compiled-output folder is root.
func (l *Layout) SourceRootFor(root domain.RootID) (domain.RootID, bool) {
	src, ok := l.state.Load().outputs[root]
	return src, ok
}

// SourcesFor returns the source roots the binary root was built from.
// Sources are preferred when any of them asks for it.
func (l *Layout) SourcesFor(root domain.RootID) ports.SourceForBinaryResult {
	st := l.state.Load()

	result := ports.SourceForBinaryResult{Changes: l.changes(st)}
	for _, id := range st.binaries[root] {
		result.Roots = append(result.Roots, id)
		if st.sources[id].PreferSources {
			result.PreferSources = true
		}
	}

	return result
}

// BinariesFor returns the compiled-output folder and binaries of a source root.
func (l *Layout) BinariesFor(source domain.RootID) ports.BinaryForSourceResult {
	st := l.state.Load()

	result := ports.BinaryForSourceResult{Changes: l.changes(st)}
	src, ok := st.sources[source]
	if !ok {
		return result
	}

	if src.Output != "" {
		result.Roots = append(result.Roots, domain.DirectoryRoot(src.Output))
	}
	for _, bin := range src.Binaries {
		result.Roots = append(result.Roots, binaryRoot(bin))
	}

	return result
}

// OptionsFor returns the compiler options of a source root.
func (l *Layout) OptionsFor(source domain.RootID) ports.CompilerOptionsResult {
	st := l.state.Load()

	return ports.CompilerOptionsResult{
		Arguments: slices.Clone(st.sources[source].Options),
		Changes:   l.changes(st),
	}
}

func (l *Layout) changes(st *layoutState) ports.Watchable {
	if l.notifier == nil || st.configPath == "" {
		return nil
	}
	return fileChanges{notifier: l.notifier, path: st.configPath}
}

// binaryRoot returns the root identifier of a configured binary path.
func binaryRoot(path string) domain.RootID {
	id, err := domain.ParseRootID(path)
	if err != nil {
		return domain.DirectoryRoot(path)
	}
	return id
}

// fileChanges reports changes of a single file through the change notifier.
type fileChanges struct {
	notifier ports.ChangeNotifier
	path     string
}

// Subscribe registers fn for changes of the file.
func (c fileChanges) Subscribe(fn func()) ports.Subscription {
	sub, err := c.notifier.WatchPath(c.path, fn)
	if err != nil {
		return ports.SubscriptionFunc(func() {})
	}
	return sub
}
