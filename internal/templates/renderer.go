package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/opmodel/scaffold/internal/project"
)

// Template delimiters. JSX object literals use "{{" and Cargo uses "[[", so
// neither can serve as a delimiter.
const (
	leftDelim  = "{%"
	rightDelim = "%}"
)

// RenderContext is the data a template is rendered against.
type RenderContext struct {
	ProjectName string
	Options     project.Options
}

// data exposes the project name, its package identifier and the flags of
// the request's kind. Flags of other kinds are absent so that a template
// referencing one fails instead of rendering as false.
func (c RenderContext) data() map[string]any {
	d := map[string]any{
		"Name":        c.ProjectName,
		"PackageName": project.PackageName(c.ProjectName),
	}
	if c.Options != nil {
		for k, v := range c.Options.Flags() {
			d[k] = v
		}
	}
	return d
}

// Render produces the bytes of one content template.
func Render(content Content, ctx RenderContext) ([]byte, error) {
	return renderNamed("content", content, ctx)
}

func renderNamed(name string, content Content, ctx RenderContext) ([]byte, error) {
	if !content.IsTemplate() {
		return []byte(content.Text()), nil
	}

	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Option("missingkey=error").
		Parse(content.Text())
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx.data()); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSet renders every file of set. Directories are skipped. Rendered
// manifests are checked for syntax so a broken conditional block in the
// catalog surfaces as a TemplateError.
func RenderSet(set TemplateSet, ctx RenderContext) ([]RenderedFile, error) {
	files := make([]RenderedFile, 0, len(set.Files))
	for _, spec := range set.Files {
		if spec.Dir {
			continue
		}
		data, err := renderNamed(spec.Path, spec.Content, ctx)
		if err != nil {
			return nil, &TemplateError{Kind: set.Kind, Path: spec.Path, Reason: "rendering content", Cause: err}
		}
		if err := ValidateSyntax(spec.Path, data); err != nil {
			return nil, &TemplateError{Kind: set.Kind, Path: spec.Path, Reason: "rendered content is malformed", Cause: err}
		}
		files = append(files, RenderedFile{Path: spec.Path, Data: data})
	}
	return files, nil
}
