package archive_test

import (
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jmod/internal/adapters/archive"
	"go.trai.ch/jmod/internal/core/domain"
)

func TestVersionedEntry(t *testing.T) {
	tests := []struct {
		name   string
		files  fstest.MapFS
		want   string
		wantOK bool
	}{
		{
			name:   "base entry only",
			files:  fstest.MapFS{"module-info.class": {}},
			want:   "module-info.class",
			wantOK: true,
		},
		{
			name: "highest version wins",
			files: fstest.MapFS{
				"module-info.class":                     {},
				"META-INF/versions/9/module-info.class":  {},
				"META-INF/versions/11/module-info.class": {},
				"META-INF/versions/17/Other.class":       {},
			},
			want:   "META-INF/versions/11/module-info.class",
			wantOK: true,
		},
		{
			name: "versioned without base",
			files: fstest.MapFS{
				"META-INF/versions/9/module-info.class": {},
			},
			want:   "META-INF/versions/9/module-info.class",
			wantOK: true,
		},
		{
			name: "non numeric directories ignored",
			files: fstest.MapFS{
				"META-INF/versions/latest/module-info.class": {},
				"module-info.class":                          {},
			},
			want:   "module-info.class",
			wantOK: true,
		},
		{
			name:   "absent",
			files:  fstest.MapFS{"com/example/App.class": {}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := archive.VersionedEntry(tt.files, domain.ModuleInfoClass)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionedEntry_Archive(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeArchive(t, fsys, "/lib/mr.jar", map[string]string{
		"module-info.class":                      "base",
		"META-INF/versions/9/module-info.class":  "nine",
		"META-INF/versions/21/module-info.class": "twenty-one",
	})

	root, err := archive.NewOpener(fsys).Open(t.Context(), domain.ArchiveRoot("/lib/mr.jar"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	name, ok := archive.VersionedEntry(root, domain.ModuleInfoClass)
	require.True(t, ok)
	assert.Equal(t, "META-INF/versions/21/module-info.class", name)

	data, err := archive.ReadEntry(root, name)
	require.NoError(t, err)
	assert.Equal(t, "twenty-one", string(data))
}
