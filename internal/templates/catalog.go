package templates

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/opmodel/scaffold/internal/project"
)

// entry is a catalog declaration before its content is loaded.
type entry struct {
	id   FileID
	path string
	src  string // path within the embedded source tree
	dir  bool
	desc string
}

func file(id FileID, p, src, desc string) entry {
	return entry{id: id, path: p, src: src, desc: desc}
}

func dir(p, desc string) entry {
	return entry{id: dirID(p), path: p, dir: true, desc: desc}
}

func dirID(p string) FileID {
	return FileID("dir:" + p)
}

// extSwap renames the listed entries by extension, e.g. ".jsx" to ".tsx".
// Entries absent from the set (their layer is off) are skipped.
type extSwap struct {
	ids  []FileID
	exts map[string]string
}

// layerDef is an optional set gated on one flag.
type layerDef struct {
	name    string
	when    func(project.Options) bool
	replace []entry
	swap    *extSwap
	add     []entry
}

// kindDef declares everything the catalog knows about one project kind.
type kindDef struct {
	info      Info
	base      []entry
	layers    []layerDef
	nextSteps func(name string, opts project.Options) []string
}

type layer struct {
	name    string
	when    func(project.Options) bool
	replace []FileSpec
	swap    *extSwap
	add     []FileSpec
}

type kindCatalog struct {
	info      Info
	base      []FileSpec
	layers    []layer
	nextSteps func(name string, opts project.Options) []string
}

// Catalog maps a project kind and option set to a TemplateSet. It is built
// once and read-only afterwards.
type Catalog struct {
	kinds map[project.Kind]*kindCatalog
}

var defaultCatalog, defaultCatalogErr = NewCatalog(sourceFS)

// Default returns the catalog built from the embedded template sources.
func Default() (*Catalog, error) {
	return defaultCatalog, defaultCatalogErr
}

// NewCatalog builds the catalog, loading every declared source from fsys.
func NewCatalog(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{kinds: make(map[project.Kind]*kindCatalog)}
	for _, def := range kindDefs() {
		kc, err := loadKind(fsys, def)
		if err != nil {
			return nil, err
		}
		c.kinds[def.info.Kind] = kc
	}
	return c, nil
}

func loadKind(fsys fs.FS, def kindDef) (*kindCatalog, error) {
	kind := def.info.Kind
	load := func(entries []entry) ([]FileSpec, error) {
		specs := make([]FileSpec, 0, len(entries))
		for _, e := range entries {
			spec := FileSpec{ID: e.id, Path: e.path, Dir: e.dir, Description: e.desc}
			if e.src != "" {
				content, err := loadContent(fsys, e.src)
				if err != nil {
					return nil, &TemplateError{Kind: kind, Path: e.path, Reason: "loading source " + e.src, Cause: err}
				}
				spec.Content = content
			}
			specs = append(specs, spec)
		}
		return specs, nil
	}

	base, err := load(def.base)
	if err != nil {
		return nil, err
	}
	kc := &kindCatalog{info: def.info, base: base, nextSteps: def.nextSteps}

	for _, ld := range def.layers {
		replace, err := load(ld.replace)
		if err != nil {
			return nil, err
		}
		add, err := load(ld.add)
		if err != nil {
			return nil, err
		}
		kc.layers = append(kc.layers, layer{
			name:    ld.name,
			when:    ld.when,
			replace: replace,
			swap:    ld.swap,
			add:     add,
		})
	}
	return kc, nil
}

// Kinds returns the kinds the catalog can resolve, in display order.
func (c *Catalog) Kinds() []project.Kind {
	var out []project.Kind
	for _, k := range project.Kinds() {
		if _, ok := c.kinds[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Resolve returns the TemplateSet for kind and opts. For validated input it
// never fails; an error means the catalog itself is inconsistent.
func (c *Catalog) Resolve(kind project.Kind, opts project.Options) (TemplateSet, error) {
	kc, ok := c.kinds[kind]
	if !ok {
		return TemplateSet{}, &TemplateError{Kind: kind, Reason: "no catalog for kind"}
	}
	if opts == nil || opts.Kind() != kind {
		return TemplateSet{}, &TemplateError{Kind: kind, Reason: fmt.Sprintf("option set %T does not belong to kind", opts)}
	}

	files := append([]FileSpec(nil), kc.base...)
	index := make(map[FileID]int, len(files))
	for i, f := range files {
		if _, dup := index[f.ID]; dup {
			return TemplateSet{}, &TemplateError{Kind: kind, Path: f.Path, Reason: fmt.Sprintf("duplicate id %q in base", f.ID)}
		}
		index[f.ID] = i
	}

	for _, l := range kc.layers {
		if !l.when(opts) {
			continue
		}

		for _, r := range l.replace {
			i, ok := index[r.ID]
			if !ok {
				return TemplateSet{}, &TemplateError{Kind: kind, Path: r.Path, Reason: fmt.Sprintf("layer %s replaces unknown id %q", l.name, r.ID)}
			}
			merged := files[i]
			if r.Path != "" {
				merged.Path = r.Path
			}
			if r.Content.Text() != "" {
				merged.Content = r.Content
			}
			if r.Description != "" {
				merged.Description = r.Description
			}
			files[i] = merged
		}

		if l.swap != nil {
			for _, id := range l.swap.ids {
				i, ok := index[id]
				if !ok {
					continue
				}
				ext := path.Ext(files[i].Path)
				if to, ok := l.swap.exts[ext]; ok {
					files[i].Path = strings.TrimSuffix(files[i].Path, ext) + to
				}
			}
		}

		for _, a := range l.add {
			if _, dup := index[a.ID]; dup {
				return TemplateSet{}, &TemplateError{Kind: kind, Path: a.Path, Reason: fmt.Sprintf("layer %s adds existing id %q", l.name, a.ID)}
			}
			index[a.ID] = len(files)
			files = append(files, a)
		}
	}

	ordered, err := withDirectories(kind, files)
	if err != nil {
		return TemplateSet{}, err
	}
	return TemplateSet{Kind: kind, Options: opts, Files: ordered}, nil
}

// withDirectories adds every implied parent directory, checks path hygiene
// and uniqueness, and orders directories (parents first) before files.
func withDirectories(kind project.Kind, files []FileSpec) ([]FileSpec, error) {
	dirs := make(map[string]FileSpec)
	var regular []FileSpec
	seen := make(map[string]bool)

	for _, f := range files {
		if err := checkPath(f.Path); err != nil {
			return nil, &TemplateError{Kind: kind, Path: f.Path, Reason: "invalid path", Cause: err}
		}
		if f.Dir {
			if _, dup := dirs[f.Path]; dup {
				return nil, &TemplateError{Kind: kind, Path: f.Path, Reason: "duplicate directory"}
			}
			dirs[f.Path] = f
			continue
		}
		if seen[f.Path] {
			return nil, &TemplateError{Kind: kind, Path: f.Path, Reason: "duplicate path"}
		}
		seen[f.Path] = true
		regular = append(regular, f)
	}

	// Parents implied by any entry, including declared directories.
	var implied []string
	for p := range dirs {
		implied = append(implied, p)
	}
	for _, f := range regular {
		implied = append(implied, path.Dir(f.Path))
	}
	for _, p := range implied {
		for d := p; d != "." && d != "/"; d = path.Dir(d) {
			if _, ok := dirs[d]; !ok {
				dirs[d] = FileSpec{ID: dirID(d), Path: d, Dir: true}
			}
		}
	}

	for p := range dirs {
		if seen[p] {
			return nil, &TemplateError{Kind: kind, Path: p, Reason: "path is both a file and a directory"}
		}
	}

	dirPaths := make([]string, 0, len(dirs))
	for p := range dirs {
		dirPaths = append(dirPaths, p)
	}
	sort.Strings(dirPaths)

	out := make([]FileSpec, 0, len(dirs)+len(regular))
	for _, p := range dirPaths {
		out = append(out, dirs[p])
	}
	return append(out, regular...), nil
}

func checkPath(p string) error {
	switch {
	case p == "":
		return fmt.Errorf("empty path")
	case path.IsAbs(p) || strings.HasPrefix(p, "\\"):
		return fmt.Errorf("path must be relative")
	case strings.Contains(p, "\\"):
		return fmt.Errorf("path must use forward slashes")
	case path.Clean(p) != p:
		return fmt.Errorf("path is not clean")
	case p == ".." || strings.HasPrefix(p, "../"):
		return fmt.Errorf("path escapes the project root")
	}
	return nil
}
