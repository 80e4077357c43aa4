// Package materialize writes a rendered template set to a filesystem as a
// single all-or-nothing operation.
package materialize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/output"
	"github.com/opmodel/scaffold/internal/templates"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Operation names reported in Error.Op.
const (
	OpMkdir  = "mkdir"
	OpCreate = "create"
	OpWrite  = "write"
	OpClose  = "close"
	OpCancel = "cancel"
)

// Result lists what was created, relative to the root.
type Result struct {
	Root string

	// Created holds relative paths in creation order. Directories carry a
	// trailing "/".
	Created []string
}

// Files returns the created paths that are not directories.
func (r *Result) Files() []string {
	var out []string
	for _, p := range r.Created {
		if p[len(p)-1] != '/' {
			out = append(out, p)
		}
	}
	return out
}

// Materializer creates project trees on an afero filesystem.
type Materializer struct {
	fs afero.Fs
}

// New returns a Materializer writing to fsys. A nil fsys means the OS
// filesystem.
func New(fsys afero.Fs) *Materializer {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Materializer{fs: fsys}
}

// Materialize creates root and writes set's directories and files beneath
// it. root must not exist; its parent must. On any failure after root is
// created, root is removed again.
func (m *Materializer) Materialize(ctx context.Context, root string, set templates.TemplateSet, files []templates.RenderedFile) (*Result, error) {
	if _, err := m.fs.Stat(root); err == nil {
		return nil, &DestinationExistsError{Path: root}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, &Error{Path: root, Op: "stat", Cause: err}
	}

	data, err := pairFiles(set, files)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, &Error{Path: root, Op: OpCancel, Cause: err}
	}
	if err := m.fs.Mkdir(root, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &DestinationExistsError{Path: root}
		}
		return nil, &Error{Path: root, Op: OpMkdir, Cause: err}
	}

	res := &Result{Root: root}
	if err := m.write(ctx, root, set, data, res); err != nil {
		if rmErr := m.fs.RemoveAll(root); rmErr != nil {
			output.Warn("cleanup failed, partial tree left behind", "root", root, "err", rmErr)
		}
		return nil, err
	}
	return res, nil
}

func (m *Materializer) write(ctx context.Context, root string, set templates.TemplateSet, data map[string][]byte, res *Result) error {
	for _, spec := range set.Files {
		if !spec.Dir {
			continue
		}
		if err := ctx.Err(); err != nil {
			return &Error{Path: spec.Path, Op: OpCancel, Cause: err}
		}
		if err := m.fs.Mkdir(join(root, spec.Path), dirPerm); err != nil {
			return &Error{Path: spec.Path, Op: OpMkdir, Cause: err}
		}
		res.Created = append(res.Created, spec.Path+"/")
	}

	for _, spec := range set.Files {
		if spec.Dir {
			continue
		}
		if err := ctx.Err(); err != nil {
			return &Error{Path: spec.Path, Op: OpCancel, Cause: err}
		}
		if err := m.writeFile(join(root, spec.Path), spec.Path, data[spec.Path]); err != nil {
			return err
		}
		res.Created = append(res.Created, spec.Path)
	}
	return nil
}

func (m *Materializer) writeFile(full, rel string, data []byte) error {
	f, err := m.fs.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return &Error{Path: rel, Op: OpCreate, Cause: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close() //nolint:errcheck
		return &Error{Path: rel, Op: OpWrite, Cause: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Path: rel, Op: OpClose, Cause: err}
	}
	return nil
}

// pairFiles matches rendered files to the set's file specs one to one.
func pairFiles(set templates.TemplateSet, files []templates.RenderedFile) (map[string][]byte, error) {
	data := make(map[string][]byte, len(files))
	for _, f := range files {
		if _, dup := data[f.Path]; dup {
			return nil, &templates.TemplateError{Kind: set.Kind, Path: f.Path, Reason: "rendered twice"}
		}
		data[f.Path] = f.Data
	}

	expected := 0
	for _, spec := range set.Files {
		if spec.Dir {
			continue
		}
		expected++
		if _, ok := data[spec.Path]; !ok {
			return nil, &templates.TemplateError{Kind: set.Kind, Path: spec.Path, Reason: "no rendered content"}
		}
	}
	if expected != len(data) {
		for p := range data {
			if spec, ok := set.Find(p); !ok || spec.Dir {
				return nil, &templates.TemplateError{Kind: set.Kind, Path: p, Reason: "rendered file has no spec"}
			}
		}
	}
	return data, nil
}

// join places a slash-separated relative path under root.
func join(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(path.Clean(rel)))
}

// DestinationExistsError reports that the project root is already present.
type DestinationExistsError struct {
	Path string
}

func (e *DestinationExistsError) Error() string {
	return fmt.Sprintf("destination %s already exists", e.Path)
}

func (e *DestinationExistsError) Unwrap() error {
	return oerrors.ErrDestinationExists
}

// Error is a filesystem failure during materialization. Path is relative to
// the project root except for failures on the root itself.
type Error struct {
	Path  string
	Op    string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *Error) Unwrap() []error {
	return []error{oerrors.ErrMaterialize, e.Cause}
}
