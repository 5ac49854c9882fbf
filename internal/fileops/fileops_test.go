package fileops

import (
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readString(t *testing.T, afs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(afs, path)
	require.NoError(t, err)
	return string(data)
}

func TestReadFileOrEmpty(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/p/a.txt", []byte("hello"), 0o644))

	got, err := ReadFileOrEmpty(afs, "/p/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = ReadFileOrEmpty(afs, "/p/missing.txt")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestWriteFile_TruncatesAndCreatesParents(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, WriteFile(afs, "/p/src/App.jsx", "a much longer first version"))
	require.NoError(t, WriteFile(afs, "/p/src/App.jsx", "short"))
	assert.Equal(t, "short", readString(t, afs, "/p/src/App.jsx"))
}

func TestAppendFile(t *testing.T) {
	tests := []struct {
		name     string
		existing *string
		want     string
	}{
		{name: "missing file is created", want: "\n.x{}"},
		{name: "existing content is kept as prefix", existing: strPtr("#root{}"), want: "#root{}\n.x{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			afs := afero.NewMemMapFs()
			if tt.existing != nil {
				require.NoError(t, afero.WriteFile(afs, "/p/App.css", []byte(*tt.existing), 0o644))
			}
			require.NoError(t, AppendFile(afs, "/p/App.css", "\n.x{}"))
			assert.Equal(t, tt.want, readString(t, afs, "/p/App.css"))
		})
	}
}

func TestPrependFile(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/p/index.css", []byte("body{}"), 0o644))
	require.NoError(t, PrependFile(afs, "/p/index.css", "@a;\n"))
	assert.Equal(t, "@a;\nbody{}", readString(t, afs, "/p/index.css"))

	require.NoError(t, PrependFile(afs, "/p/new.css", "@a;\n"))
	assert.Equal(t, "@a;\n", readString(t, afs, "/p/new.css"))
}

func TestCopyFile(t *testing.T) {
	src := fstest.MapFS{"icon.svg": {Data: []byte("<svg/>")}}
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/p/assets/icon.svg", []byte("old contents that are longer"), 0o644))

	require.NoError(t, CopyFile(src, "icon.svg", afs, "/p/assets/icon.svg"))
	assert.Equal(t, "<svg/>", readString(t, afs, "/p/assets/icon.svg"))

	require.NoError(t, CopyFile(src, "icon.svg", afs, "/q/new/dir/icon.svg"))
	assert.Equal(t, "<svg/>", readString(t, afs, "/q/new/dir/icon.svg"))

	assert.Error(t, CopyFile(src, "missing.svg", afs, "/p/x.svg"))
}

func TestIsEmptyDir(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afs.MkdirAll("/empty", 0o755))
	require.NoError(t, afero.WriteFile(afs, "/full/f.txt", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(afs, "/file.txt", []byte("x"), 0o644))

	empty, err := IsEmptyDir(afs, "/empty")
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = IsEmptyDir(afs, "/full")
	require.NoError(t, err)
	assert.False(t, empty)

	_, err = IsEmptyDir(afs, "/file.txt")
	assert.ErrorIs(t, err, ErrNotDir)

	_, err = IsEmptyDir(afs, "/missing")
	assert.Error(t, err)
}

func TestEmptyDir_KeepsDirectory(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/p/a.txt", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(afs, "/p/nested/b.txt", []byte("y"), 0o644))

	require.NoError(t, EmptyDir(afs, "/p"))

	isDir, err := DirExists(afs, "/p")
	require.NoError(t, err)
	assert.True(t, isDir)
	empty, err := IsEmptyDir(afs, "/p")
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestExists(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/p/a.txt", []byte("x"), 0o644))

	ok, err := Exists(afs, "/p/a.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(afs, "/p/b.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func strPtr(s string) *string { return &s }
