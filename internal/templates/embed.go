package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

// sourceFS holds the file bodies referenced by the catalog. A ".tmpl"
// suffix marks template content; anything else is literal.
//
//go:embed all:files
var sourceFS embed.FS

const sourceRoot = "files"

func loadContent(fsys fs.FS, src string) (Content, error) {
	data, err := fs.ReadFile(fsys, sourceRoot+"/"+src)
	if err != nil {
		return Content{}, fmt.Errorf("reading %s: %w", src, err)
	}
	if strings.HasSuffix(src, ".tmpl") {
		return Template(string(data)), nil
	}
	return Literal(string(data)), nil
}

// ListSources returns every embedded source path, relative to the source
// root.
func ListSources(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, sourceRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, strings.TrimPrefix(p, sourceRoot+"/"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template sources: %w", err)
	}
	return files, nil
}
