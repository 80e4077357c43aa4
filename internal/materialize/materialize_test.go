package materialize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/project"
	"github.com/opmodel/scaffold/internal/templates"
)

func sampleSet() (templates.TemplateSet, []templates.RenderedFile) {
	set := templates.TemplateSet{
		Kind:    project.Rust,
		Options: project.RustOptions{ProjectType: project.Library},
		Files: []templates.FileSpec{
			{ID: "dir:src", Path: "src", Dir: true},
			{ID: "dir:tests", Path: "tests", Dir: true},
			{ID: "manifest", Path: "Cargo.toml", Content: templates.Literal("[package]\n")},
			{ID: "lib", Path: "src/lib.rs", Content: templates.Literal("pub fn f() {}\n")},
			{ID: "it", Path: "tests/it.rs", Content: templates.Literal("#[test]\nfn t() {}\n")},
		},
	}
	files := []templates.RenderedFile{
		{Path: "Cargo.toml", Data: []byte("[package]\n")},
		{Path: "src/lib.rs", Data: []byte("pub fn f() {}\n")},
		{Path: "tests/it.rs", Data: []byte("#[test]\nfn t() {}\n")},
	}
	return set, files
}

// failingFs fails file creation for one relative path under any root.
type failingFs struct {
	afero.Fs
	failOn    string
	removeErr error
	opened    []string
}

func (f *failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f.opened = append(f.opened, name)
	if strings.HasSuffix(filepath.ToSlash(name), f.failOn) {
		return nil, &os.PathError{Op: "open", Path: name, Err: errors.New("disk full")}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *failingFs) RemoveAll(path string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	return f.Fs.RemoveAll(path)
}

func TestMaterialize_CreatesTree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/work", 0o755))
	set, files := sampleSet()

	res, err := New(fsys).Materialize(context.Background(), "/work/my-lib", set, files)
	require.NoError(t, err)

	assert.Equal(t, "/work/my-lib", res.Root)
	assert.Equal(t, []string{"src/", "tests/", "Cargo.toml", "src/lib.rs", "tests/it.rs"}, res.Created)
	assert.Equal(t, []string{"Cargo.toml", "src/lib.rs", "tests/it.rs"}, res.Files())

	got, err := afero.ReadFile(fsys, "/work/my-lib/src/lib.rs")
	require.NoError(t, err)
	assert.Equal(t, "pub fn f() {}\n", string(got))

	info, err := fsys.Stat("/work/my-lib/tests")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMaterialize_OnDisk(t *testing.T) {
	base := t.TempDir()
	set, files := sampleSet()

	root := filepath.Join(base, "my-lib")
	_, err := New(nil).Materialize(context.Background(), root, set, files)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(root, "Cargo.toml"))
	require.NoError(t, err)
	assert.Equal(t, "[package]\n", string(got))
}

func TestMaterialize_DestinationExists(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/work/my-lib", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/work/my-lib/keep.txt", []byte("mine"), 0o644))
	set, files := sampleSet()

	_, err := New(fsys).Materialize(context.Background(), "/work/my-lib", set, files)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrDestinationExists))

	var dee *DestinationExistsError
	require.True(t, errors.As(err, &dee))
	assert.Equal(t, "/work/my-lib", dee.Path)

	got, err := afero.ReadFile(fsys, "/work/my-lib/keep.txt")
	require.NoError(t, err)
	assert.Equal(t, "mine", string(got))
	exists, _ := afero.Exists(fsys, "/work/my-lib/Cargo.toml")
	assert.False(t, exists)
}

func TestMaterialize_DestinationIsFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/work/my-lib", []byte("x"), 0o644))
	set, files := sampleSet()

	_, err := New(fsys).Materialize(context.Background(), "/work/my-lib", set, files)
	assert.True(t, errors.Is(err, oerrors.ErrDestinationExists))
}

func TestMaterialize_ReadOnlyFilesystem(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/work", 0o755))
	set, files := sampleSet()

	_, err := New(afero.NewReadOnlyFs(base)).Materialize(context.Background(), "/work/my-lib", set, files)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrMaterialize))

	var me *Error
	require.True(t, errors.As(err, &me))
	assert.Equal(t, OpMkdir, me.Op)
	assert.Equal(t, "/work/my-lib", me.Path)
}

func TestMaterialize_RollsBackOnWriteFailure(t *testing.T) {
	fsys := &failingFs{Fs: afero.NewMemMapFs(), failOn: "src/lib.rs"}
	require.NoError(t, fsys.MkdirAll("/work", 0o755))
	set, files := sampleSet()

	_, err := New(fsys).Materialize(context.Background(), "/work/my-lib", set, files)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrMaterialize))

	var me *Error
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "src/lib.rs", me.Path)
	assert.Equal(t, OpCreate, me.Op)
	assert.Contains(t, me.Error(), "disk full")

	exists, err := afero.Exists(fsys, "/work/my-lib")
	require.NoError(t, err)
	assert.False(t, exists, "failed run must leave no directory")

	exists, err = afero.DirExists(fsys, "/work")
	require.NoError(t, err)
	assert.True(t, exists, "parent directory must survive rollback")
}

func TestMaterialize_CleanupFailureKeepsOriginalError(t *testing.T) {
	fsys := &failingFs{
		Fs:        afero.NewMemMapFs(),
		failOn:    "tests/it.rs",
		removeErr: errors.New("busy"),
	}
	require.NoError(t, fsys.MkdirAll("/work", 0o755))
	set, files := sampleSet()

	_, err := New(fsys).Materialize(context.Background(), "/work/my-lib", set, files)
	require.Error(t, err)

	var me *Error
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "tests/it.rs", me.Path)
	assert.NotContains(t, err.Error(), "busy")
}

func TestMaterialize_CancelledContext(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/work", 0o755))
	set, files := sampleSet()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(fsys).Materialize(ctx, "/work/my-lib", set, files)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrMaterialize))
	assert.True(t, errors.Is(err, context.Canceled))

	exists, _ := afero.Exists(fsys, "/work/my-lib")
	assert.False(t, exists)
}

func TestMaterialize_MismatchedRenderFailsBeforeDisk(t *testing.T) {
	tests := []struct {
		name  string
		files func([]templates.RenderedFile) []templates.RenderedFile
	}{
		{"missing file", func(f []templates.RenderedFile) []templates.RenderedFile { return f[:2] }},
		{"extra file", func(f []templates.RenderedFile) []templates.RenderedFile {
			return append(f, templates.RenderedFile{Path: "stray.txt"})
		}},
		{"directory rendered", func(f []templates.RenderedFile) []templates.RenderedFile {
			return append(f[:2], templates.RenderedFile{Path: "src"})
		}},
		{"rendered twice", func(f []templates.RenderedFile) []templates.RenderedFile {
			return append(f, f[0])
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, fsys.MkdirAll("/work", 0o755))
			set, files := sampleSet()

			_, err := New(fsys).Materialize(context.Background(), "/work/my-lib", set, tt.files(files))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrTemplate))

			exists, _ := afero.Exists(fsys, "/work/my-lib")
			assert.False(t, exists)
		})
	}
}

func TestMaterialize_ParentMustExist(t *testing.T) {
	fsys := &failingFs{Fs: afero.NewOsFs()}
	set, files := sampleSet()

	root := filepath.Join(t.TempDir(), "missing", "my-lib")
	_, err := New(fsys).Materialize(context.Background(), root, set, files)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrMaterialize))
	assert.Empty(t, fsys.opened)
}
