package modnames_test

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jmod/internal/adapters/watcher"
	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/core/ports"
	"go.trai.ch/jmod/internal/core/ports/mocks"
	"go.trai.ch/jmod/internal/engine/modnames"
	"go.uber.org/mock/gomock"
)

// memRoot is an in-memory root filesystem.
type memRoot struct {
	fstest.MapFS
}

func (memRoot) Close() error { return nil }

// classFile returns fake class bytes understood by the fixture's class reader.
func classFile(module string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(module)}
}

type fixture struct {
	ctrl     *gomock.Controller
	locator  *mocks.MockCompiledSourceLocator
	sources  *mocks.MockSourceForBinaryQuery
	binaries *mocks.MockBinaryForSourceQuery
	options  *mocks.MockCompilerOptionsQuery
	opener   *mocks.MockRootOpener
	index    *mocks.MockIndexStore
	classes  *mocks.MockClassModuleReader
	javaSrc  *mocks.MockSourceModuleReader
	logger   *mocks.MockLogger
	notifier ports.ChangeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:     ctrl,
		locator:  mocks.NewMockCompiledSourceLocator(ctrl),
		sources:  mocks.NewMockSourceForBinaryQuery(ctrl),
		binaries: mocks.NewMockBinaryForSourceQuery(ctrl),
		options:  mocks.NewMockCompilerOptionsQuery(ctrl),
		opener:   mocks.NewMockRootOpener(ctrl),
		index:    mocks.NewMockIndexStore(ctrl),
		classes:  mocks.NewMockClassModuleReader(ctrl),
		javaSrc:  mocks.NewMockSourceModuleReader(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.classes.EXPECT().ReadModuleName(gomock.Any()).DoAndReturn(func(data []byte) (string, error) {
		if strings.HasPrefix(string(data), "corrupt") {
			return "", domain.ErrClassMalformed
		}
		return string(data), nil
	}).AnyTimes()

	return f
}

// plain makes every root a plain binary root without sources.
func (f *fixture) plain() *fixture {
	f.locator.EXPECT().SourceRootFor(gomock.Any()).Return(domain.RootID(""), false).AnyTimes()
	f.sources.EXPECT().SourcesFor(gomock.Any()).Return(ports.SourceForBinaryResult{}).AnyTimes()
	return f
}

func (f *fixture) resolver() *modnames.Resolver {
	return modnames.NewResolver(
		modnames.Queries{
			Locator:  f.locator,
			Sources:  f.sources,
			Binaries: f.binaries,
			Options:  f.options,
		},
		f.opener,
		f.index,
		f.classes,
		f.javaSrc,
		f.notifier,
		f.logger,
		nil,
	)
}

func TestResolver_PlatformRoots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		root domain.RootID
		want string
	}{
		{root: domain.PlatformRoot("java.base"), want: "java.base"},
		{root: "nbjrt:file:/opt/jdk-21/!/modules/java.sql/", want: "java.sql"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			// No collaborator may be consulted for platform roots.
			f := newFixture(t)
			r := f.resolver()

			assert.Equal(t, tt.want, r.ResolveModuleName(context.Background(), tt.root, true))
			assert.Equal(t, 1, r.Len())
		})
	}
}

func TestResolver_CacheHitPerformsNoIO(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	root := domain.ArchiveRoot("/repo/lib/api-1.0.jar")

	f.locator.EXPECT().SourceRootFor(root).Return(domain.RootID(""), false).Times(1)
	f.sources.EXPECT().SourcesFor(root).Return(ports.SourceForBinaryResult{}).Times(1)
	f.opener.EXPECT().Open(gomock.Any(), root).
		Return(memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.api")}}, nil).
		Times(1)

	r := f.resolver()
	ctx := context.Background()

	first := r.ResolveModuleName(ctx, root, true)
	second := r.ResolveModuleName(ctx, root, false)

	assert.Equal(t, "com.example.api", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.Len())
}

func TestResolver_NullIsCached(t *testing.T) {
	t.Parallel()

	f := newFixture(t).plain()
	root := domain.DirectoryRoot("/repo/classes")
	f.opener.EXPECT().Open(gomock.Any(), root).Return(memRoot{fstest.MapFS{}}, nil).Times(1)

	r := f.resolver()

	assert.Empty(t, r.ResolveModuleName(context.Background(), root, true))
	assert.Empty(t, r.ResolveModuleName(context.Background(), root, true))
	assert.Equal(t, 1, r.Len())
}

func TestResolver_InvalidateRecomputes(t *testing.T) {
	t.Parallel()

	f := newFixture(t).plain()
	root := domain.ArchiveRoot("/repo/lib/api.jar")

	gomock.InOrder(
		f.opener.EXPECT().Open(gomock.Any(), root).
			Return(memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.old")}}, nil),
		f.opener.EXPECT().Open(gomock.Any(), root).
			Return(memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.new")}}, nil),
	)

	r := f.resolver()
	ctx := context.Background()

	assert.Equal(t, "com.example.old", r.ResolveModuleName(ctx, root, true))

	r.Invalidate(root)
	assert.Equal(t, 0, r.Len())

	assert.Equal(t, "com.example.new", r.ResolveModuleName(ctx, root, true))
	assert.Equal(t, "com.example.new", r.ResolveModuleName(ctx, root, true))
}

func TestResolver_InvalidateUnknownRoot(t *testing.T) {
	t.Parallel()

	r := newFixture(t).resolver()

	assert.NotPanics(t, func() {
		r.Invalidate(domain.ArchiveRoot("/never/resolved.jar"))
		r.Invalidate(domain.ArchiveRoot("/never/resolved.jar"))
	})
	assert.Equal(t, 0, r.Len())
}

func TestResolver_InvalidateReleasesSubscriptionsOnce(t *testing.T) {
	t.Parallel()

	f := newFixture(t).plain()
	root := domain.ArchiveRoot("/repo/lib/api.jar")

	notifier := mocks.NewMockChangeNotifier(f.ctrl)
	sub := mocks.NewMockSubscription(f.ctrl)
	notifier.EXPECT().WatchPath("/repo/lib/api.jar", gomock.Any()).Return(sub, nil).Times(1)
	sub.EXPECT().Unsubscribe().Times(1)
	f.notifier = notifier

	f.opener.EXPECT().Open(gomock.Any(), root).
		Return(memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.api")}}, nil)

	r := f.resolver()
	r.ResolveModuleName(context.Background(), root, true)

	r.Invalidate(root)
	r.Invalidate(root)
	r.InvalidateAll()
}

func TestResolver_ArchiveAutomaticNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "version suffix", path: "/repo/lib/foo-1.2.3.jar", want: "foo"},
		{name: "underscore and short version", path: "/repo/lib/my_lib-2.jar", want: "my.lib"},
		{name: "no version", path: "/repo/lib/commons-lang.jar", want: "commons.lang"},
		{name: "only punctuation", path: "/repo/lib/---.jar", want: ""},
		{name: "zip archive", path: "/repo/lib/data_set-0.9.zip", want: "data.set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t).plain()
			root := domain.ArchiveRoot(tt.path)
			f.opener.EXPECT().Open(gomock.Any(), root).Return(memRoot{fstest.MapFS{}}, nil)

			assert.Equal(t, tt.want, f.resolver().ResolveModuleName(context.Background(), root, true))
		})
	}
}

func TestResolver_ArchiveSources(t *testing.T) {
	t.Parallel()

	manifest := &fstest.MapFile{Data: []byte("Manifest-Version: 1.0\r\nAutomatic-Module-Name: com.example.manifest\r\n")}

	tests := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{
			name:  "module-info wins over manifest and file name",
			files: fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.declared"), domain.ManifestPath: manifest},
			want:  "com.example.declared",
		},
		{
			name:  "manifest wins over file name",
			files: fstest.MapFS{domain.ManifestPath: manifest},
			want:  "com.example.manifest",
		},
		{
			name:  "corrupt module-info falls through to manifest",
			files: fstest.MapFS{domain.ModuleInfoClass: classFile("corrupt"), domain.ManifestPath: manifest},
			want:  "com.example.manifest",
		},
		{
			name:  "malformed manifest falls through to file name",
			files: fstest.MapFS{domain.ManifestPath: {Data: []byte("not a header line\n")}},
			want:  "widget",
		},
		{
			name:  "manifest without the attribute",
			files: fstest.MapFS{domain.ManifestPath: {Data: []byte("Manifest-Version: 1.0\n")}},
			want:  "widget",
		},
		{
			name: "highest versioned module-info wins",
			files: fstest.MapFS{
				domain.ModuleInfoClass:                               classFile("com.example.base"),
				domain.VersionsDir + "/9/" + domain.ModuleInfoClass:  classFile("com.example.nine"),
				domain.VersionsDir + "/11/" + domain.ModuleInfoClass: classFile("com.example.eleven"),
			},
			want: "com.example.eleven",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t).plain()
			root := domain.ArchiveRoot("/repo/lib/widget-3.1.jar")
			f.opener.EXPECT().Open(gomock.Any(), root).Return(memRoot{tt.files}, nil)

			assert.Equal(t, tt.want, f.resolver().ResolveModuleName(context.Background(), root, true))
		})
	}
}

func TestResolver_UnreadableArchiveUsesFileName(t *testing.T) {
	t.Parallel()

	f := newFixture(t).plain()
	root := domain.ArchiveRoot("/repo/lib/gone-2.0.jar")
	f.opener.EXPECT().Open(gomock.Any(), root).Return(nil, domain.ErrRootOpenFailed)

	assert.Equal(t, "gone", f.resolver().ResolveModuleName(context.Background(), root, true))
}

func TestResolver_Directories(t *testing.T) {
	t.Parallel()

	t.Run("with module-info", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t).plain()
		root := domain.DirectoryRoot("/repo/out/classes")
		f.opener.EXPECT().Open(gomock.Any(), root).
			Return(memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.classes")}}, nil)

		assert.Equal(t, "com.example.classes", f.resolver().ResolveModuleName(context.Background(), root, true))
	})

	t.Run("without module-info is unnamed", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t).plain()
		root := domain.DirectoryRoot("/repo/out/my-classes-1.0")
		f.opener.EXPECT().Open(gomock.Any(), root).
			Return(memRoot{fstest.MapFS{"com/example/Main.class": classFile("x")}}, nil)

		assert.Empty(t, f.resolver().ResolveModuleName(context.Background(), root, true))
	})

	t.Run("unknown root kind is unnamed", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t).plain()
		assert.Empty(t, f.resolver().ResolveModuleName(context.Background(), "http://example.com/", true))
	})
}

func TestResolver_CompiledOutput(t *testing.T) {
	t.Parallel()

	output := domain.DirectoryRoot("/repo/build/classes")
	src := domain.DirectoryRoot("/repo/src/main/java")

	t.Run("indexed module name", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.locator.EXPECT().SourceRootFor(output).Return(src, true)
		f.index.EXPECT().IsIndexed(src).Return(true)
		f.index.EXPECT().Attribute(src, domain.AttrModuleName).Return("com.example.app", true, nil)

		assert.Equal(t, "com.example.app", f.resolver().ResolveModuleName(context.Background(), output, false))
	})

	t.Run("indexed without module-info uses first binary archive", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.locator.EXPECT().SourceRootFor(output).Return(src, true)
		f.index.EXPECT().IsIndexed(src).Return(true)
		f.index.EXPECT().Attribute(src, domain.AttrModuleName).Return("", false, nil)
		f.options.EXPECT().OptionsFor(src).Return(ports.CompilerOptionsResult{})
		f.binaries.EXPECT().BinariesFor(src).Return(ports.BinaryForSourceResult{
			Roots: []domain.RootID{output, domain.ArchiveRoot("/repo/dist/app-core-1.0.jar")},
		})

		assert.Equal(t, "app.core", f.resolver().ResolveModuleName(context.Background(), output, false))
	})

	t.Run("not indexed without fallback uses the directory", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.locator.EXPECT().SourceRootFor(output).Return(src, true)
		f.sources.EXPECT().SourcesFor(output).Return(ports.SourceForBinaryResult{})
		f.index.EXPECT().IsIndexed(src).Return(false)
		f.opener.EXPECT().Open(gomock.Any(), output).
			Return(memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.compiled")}}, nil)

		assert.Equal(t, "com.example.compiled", f.resolver().ResolveModuleName(context.Background(), output, false))
	})
}

func TestResolver_PreferredSources(t *testing.T) {
	t.Parallel()

	root := domain.ArchiveRoot("/repo/dist/app-2.0.jar")
	src := domain.DirectoryRoot("/repo/src/main/java")
	moduleInfo := []byte("module com.example.src {}")

	preferSources := func(f *fixture) {
		f.locator.EXPECT().SourceRootFor(root).Return(domain.RootID(""), false)
		f.sources.EXPECT().SourcesFor(root).Return(ports.SourceForBinaryResult{
			PreferSources: true,
			Roots:         []domain.RootID{src},
		})
	}

	t.Run("source fallback parses module-info.java", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		preferSources(f)
		f.index.EXPECT().IsIndexed(src).Return(false)
		f.opener.EXPECT().Open(gomock.Any(), src).
			Return(memRoot{fstest.MapFS{domain.ModuleInfoSource: {Data: moduleInfo}}}, nil)
		f.javaSrc.EXPECT().ParseModuleName(gomock.Any(), moduleInfo).Return("com.example.src", nil)

		assert.Equal(t, "com.example.src", f.resolver().ResolveModuleName(context.Background(), root, true))
	})

	t.Run("source fallback without module-info uses the option override", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		preferSources(f)
		f.index.EXPECT().IsIndexed(src).Return(false)
		f.opener.EXPECT().Open(gomock.Any(), src).Return(memRoot{fstest.MapFS{}}, nil)
		f.options.EXPECT().OptionsFor(src).Return(ports.CompilerOptionsResult{
			Arguments: []string{"-g", "-XDautomatic-module-name:foo.bar"},
		})

		assert.Equal(t, "foo.bar", f.resolver().ResolveModuleName(context.Background(), root, true))
	})

	t.Run("unparsable module-info.java uses the automatic name", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		preferSources(f)
		f.index.EXPECT().IsIndexed(src).Return(false)
		f.opener.EXPECT().Open(gomock.Any(), src).
			Return(memRoot{fstest.MapFS{domain.ModuleInfoSource: {Data: []byte("modul")}}}, nil)
		f.javaSrc.EXPECT().ParseModuleName(gomock.Any(), gomock.Any()).Return("", domain.ErrNoModuleDeclaration)
		f.options.EXPECT().OptionsFor(src).Return(ports.CompilerOptionsResult{})
		f.binaries.EXPECT().BinariesFor(src).Return(ports.BinaryForSourceResult{Roots: []domain.RootID{root}})

		assert.Equal(t, "app", f.resolver().ResolveModuleName(context.Background(), root, true))
	})

	t.Run("not indexed without fallback reads the archive", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		preferSources(f)
		f.index.EXPECT().IsIndexed(src).Return(false)
		f.opener.EXPECT().Open(gomock.Any(), root).
			Return(memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.binary")}}, nil)

		assert.Equal(t, "com.example.binary", f.resolver().ResolveModuleName(context.Background(), root, false))
	})

	t.Run("indexed option override beats file name", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		preferSources(f)
		f.index.EXPECT().IsIndexed(src).Return(true)
		f.index.EXPECT().Attribute(src, domain.AttrModuleName).Return("", false, nil)
		f.options.EXPECT().OptionsFor(src).Return(ports.CompilerOptionsResult{
			Arguments: []string{"-XDautomatic-module-name:foo.bar"},
		})

		assert.Equal(t, "foo.bar", f.resolver().ResolveModuleName(context.Background(), root, false))
	})

	t.Run("index read error falls through to the automatic name", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		preferSources(f)
		f.index.EXPECT().IsIndexed(src).Return(true)
		f.index.EXPECT().Attribute(src, domain.AttrModuleName).Return("", false, domain.ErrStoreReadFailed)
		f.options.EXPECT().OptionsFor(src).Return(ports.CompilerOptionsResult{})
		f.binaries.EXPECT().BinariesFor(src).Return(ports.BinaryForSourceResult{})

		assert.Equal(t, "app", f.resolver().ResolveModuleName(context.Background(), root, false))
	})
}

func TestResolver_QueryChangesInvalidate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	root := domain.DirectoryRoot("/repo/out")

	var fire func()
	changes := mocks.NewMockWatchable(f.ctrl)
	sub := mocks.NewMockSubscription(f.ctrl)
	changes.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn func()) ports.Subscription {
		fire = fn
		return sub
	}).Times(2)
	sub.EXPECT().Unsubscribe().Times(1)

	f.locator.EXPECT().SourceRootFor(root).Return(domain.RootID(""), false).Times(2)
	f.sources.EXPECT().SourcesFor(root).Return(ports.SourceForBinaryResult{Changes: changes}).Times(2)
	f.opener.EXPECT().Open(gomock.Any(), root).Return(memRoot{fstest.MapFS{}}, nil).Times(2)

	r := f.resolver()
	ctx := context.Background()

	r.ResolveModuleName(ctx, root, true)
	require.NotNil(t, fire)
	require.Equal(t, 1, r.Len())

	first := fire
	first()
	first()
	assert.Equal(t, 0, r.Len())

	r.ResolveModuleName(ctx, root, true)
	assert.Equal(t, 1, r.Len())
}

func TestResolver_FileChangeInvalidates(t *testing.T) {
	t.Parallel()

	f := newFixture(t).plain()
	notifier := watcher.NewNotifier()
	f.notifier = notifier

	root := domain.ArchiveRoot("/repo/lib/api.jar")
	gomock.InOrder(
		f.opener.EXPECT().Open(gomock.Any(), root).
			Return(memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.v1")}}, nil),
		f.opener.EXPECT().Open(gomock.Any(), root).
			Return(memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.v2")}}, nil),
	)

	r := f.resolver()
	ctx := context.Background()

	assert.Equal(t, "com.example.v1", r.ResolveModuleName(ctx, root, true))
	assert.Equal(t, 1, notifier.Len())

	notifier.Dispatch([]string{"/repo/lib/other.jar"})
	assert.Equal(t, 1, r.Len())

	notifier.Dispatch([]string{"/repo/lib/api.jar"})
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, notifier.Len())

	assert.Equal(t, "com.example.v2", r.ResolveModuleName(ctx, root, true))
}

func TestResolver_IndexedSourcesFollowModuleInfo(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	notifier := watcher.NewNotifier()
	f.notifier = notifier

	output := domain.DirectoryRoot("/repo/build/classes")
	src := domain.DirectoryRoot("/repo/src/main/java")
	edited := []byte("module com.example.edited {}")

	f.locator.EXPECT().SourceRootFor(output).Return(src, true).Times(2)
	gomock.InOrder(
		f.index.EXPECT().IsIndexed(src).Return(true),
		f.index.EXPECT().IsIndexed(src).Return(false),
	)
	f.index.EXPECT().Attribute(src, domain.AttrModuleName).Return("com.example.indexed", true, nil)
	f.opener.EXPECT().Open(gomock.Any(), src).
		Return(memRoot{fstest.MapFS{domain.ModuleInfoSource: {Data: edited}}}, nil)
	f.javaSrc.EXPECT().ParseModuleName(gomock.Any(), edited).Return("com.example.edited", nil)

	r := f.resolver()
	ctx := context.Background()

	assert.Equal(t, "com.example.indexed", r.ResolveModuleName(ctx, output, true))
	assert.Equal(t, 1, notifier.Len())

	// The edit makes the index record stale.
	assert.Equal(t, 1, notifier.Dispatch([]string{"/repo/src/main/java/module-info.java"}))
	assert.Equal(t, 0, r.Len())

	assert.Equal(t, "com.example.edited", r.ResolveModuleName(ctx, output, true))
}

func TestResolver_InvalidateDuringResolution(t *testing.T) {
	t.Parallel()

	f := newFixture(t).plain()
	root := domain.ArchiveRoot("/repo/lib/api.jar")

	notifier := mocks.NewMockChangeNotifier(f.ctrl)
	stale := mocks.NewMockSubscription(f.ctrl)
	fresh := mocks.NewMockSubscription(f.ctrl)
	gomock.InOrder(
		notifier.EXPECT().WatchPath("/repo/lib/api.jar", gomock.Any()).Return(stale, nil),
		notifier.EXPECT().WatchPath("/repo/lib/api.jar", gomock.Any()).Return(fresh, nil),
	)
	stale.EXPECT().Unsubscribe().Times(1)
	f.notifier = notifier

	var r *modnames.Resolver
	gomock.InOrder(
		f.opener.EXPECT().Open(gomock.Any(), root).DoAndReturn(func(context.Context, domain.RootID) (ports.RootFS, error) {
			r.Invalidate(root)
			return memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.stale")}}, nil
		}),
		f.opener.EXPECT().Open(gomock.Any(), root).
			Return(memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.fresh")}}, nil),
	)

	r = f.resolver()
	ctx := context.Background()

	// The caller still gets the computed answer, but it is not cached.
	assert.Equal(t, "com.example.stale", r.ResolveModuleName(ctx, root, true))
	assert.Equal(t, 0, r.Len())

	assert.Equal(t, "com.example.fresh", r.ResolveModuleName(ctx, root, true))
	assert.Equal(t, 1, r.Len())
}

func TestResolver_InvalidateAll(t *testing.T) {
	t.Parallel()

	f := newFixture(t).plain()
	a := domain.ArchiveRoot("/repo/lib/a.jar")
	b := domain.ArchiveRoot("/repo/lib/b.jar")
	f.opener.EXPECT().Open(gomock.Any(), a).Return(memRoot{fstest.MapFS{}}, nil).Times(2)
	f.opener.EXPECT().Open(gomock.Any(), b).Return(memRoot{fstest.MapFS{}}, nil).Times(2)

	r := f.resolver()
	ctx := context.Background()

	r.ResolveModuleName(ctx, a, true)
	r.ResolveModuleName(ctx, b, true)
	require.Equal(t, 2, r.Len())

	r.InvalidateAll()
	assert.Equal(t, 0, r.Len())

	assert.Equal(t, "a", r.ResolveModuleName(ctx, a, true))
	assert.Equal(t, "b", r.ResolveModuleName(ctx, b, true))
	assert.Equal(t, 2, r.Len())
}

func TestResolver_ConcurrentMissesAreCoalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t).plain()
		root := domain.ArchiveRoot("/repo/lib/slow.jar")

		release := make(chan struct{})
		f.opener.EXPECT().Open(gomock.Any(), root).DoAndReturn(func(context.Context, domain.RootID) (ports.RootFS, error) {
			<-release
			return memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile("com.example.slow")}}, nil
		}).Times(1)

		r := f.resolver()

		const callers = 8
		results := make([]string, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Go(func() {
				results[i] = r.ResolveModuleName(context.Background(), root, true)
			})
		}

		synctest.Wait()
		close(release)
		wg.Wait()

		for _, got := range results {
			assert.Equal(t, "com.example.slow", got)
		}
		assert.Equal(t, 1, r.Len())
	})
}

func TestResolver_ConcurrentInvalidationNeverLeavesStaleEntry(t *testing.T) {
	t.Parallel()

	f := newFixture(t).plain()
	root := domain.ArchiveRoot("/repo/lib/hot.jar")

	var version atomic.Int64
	var computations atomic.Int64
	f.opener.EXPECT().Open(gomock.Any(), root).DoAndReturn(func(context.Context, domain.RootID) (ports.RootFS, error) {
		computations.Add(1)
		name := "com.example.v" + strings.Repeat("x", int(version.Load()%5))
		return memRoot{fstest.MapFS{domain.ModuleInfoClass: classFile(name)}}, nil
	}).AnyTimes()

	r := f.resolver()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 4 {
		wg.Go(func() {
			for range 200 {
				r.ResolveModuleName(ctx, root, true)
			}
		})
	}
	wg.Go(func() {
		for range 200 {
			version.Add(1)
			r.Invalidate(root)
		}
	})
	wg.Wait()

	r.Invalidate(root)
	before := computations.Load()
	want := "com.example.v" + strings.Repeat("x", int(version.Load()%5))

	assert.Equal(t, want, r.ResolveModuleName(ctx, root, true))
	assert.Equal(t, before+1, computations.Load())
	assert.Equal(t, want, r.ResolveModuleName(ctx, root, true))
	assert.Equal(t, before+1, computations.Load())
}
