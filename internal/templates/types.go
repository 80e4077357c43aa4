// Package templates holds the project template catalog and the content
// renderer used by scaffold.
package templates

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/project"
)

// FileID is the logical identity of a catalog entry. Layers replace entries
// by ID, so enabling TypeScript turns "app-entry" from App.jsx into App.tsx
// instead of adding a second file.
type FileID string

// Content is the body of a file before rendering: either literal text or a
// template with placeholders and conditional blocks.
type Content struct {
	text     string
	template bool
}

// Literal returns content that is written unchanged.
func Literal(text string) Content {
	return Content{text: text}
}

// Template returns content that is rendered against a RenderContext.
func Template(text string) Content {
	return Content{text: text, template: true}
}

// Text returns the raw, unrendered text.
func (c Content) Text() string { return c.text }

// IsTemplate reports whether the content contains placeholders.
func (c Content) IsTemplate() bool { return c.template }

// FileSpec describes one entry of a project tree.
type FileSpec struct {
	// ID is the logical identity used for layer replacement.
	ID FileID

	// Path is slash-separated and relative to the project root.
	Path string

	// Content is empty for directories.
	Content Content

	// Dir marks directory-only entries, created even when empty.
	Dir bool

	// Description is shown next to the path in the created tree.
	Description string
}

// TemplateSet is the resolved list of entries for one request. Directories
// come first, parents before children; paths are unique.
type TemplateSet struct {
	Kind    project.Kind
	Options project.Options
	Files   []FileSpec
}

// Paths returns every path in order.
func (s TemplateSet) Paths() []string {
	out := make([]string, len(s.Files))
	for i, f := range s.Files {
		out[i] = f.Path
	}
	return out
}

// Lookup returns the entry with the given logical identity.
func (s TemplateSet) Lookup(id FileID) (FileSpec, bool) {
	for _, f := range s.Files {
		if f.ID == id {
			return f, true
		}
	}
	return FileSpec{}, false
}

// Find returns the entry at the given path.
func (s TemplateSet) Find(path string) (FileSpec, bool) {
	for _, f := range s.Files {
		if f.Path == path {
			return f, true
		}
	}
	return FileSpec{}, false
}

// Descriptions maps each path to its description; directories get a
// trailing slash.
func (s TemplateSet) Descriptions() map[string]string {
	out := make(map[string]string, len(s.Files))
	for _, f := range s.Files {
		if f.Dir {
			out[f.Path+"/"] = f.Description
			continue
		}
		out[f.Path] = f.Description
	}
	return out
}

// RenderedFile is a file's final bytes, ready to be written.
type RenderedFile struct {
	Path string
	Data []byte
}

// TemplateError reports an inconsistency between the catalog and the
// renderer. It never results from user input.
type TemplateError struct {
	Kind   project.Kind
	Path   string
	Reason string
	Cause  error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	var b strings.Builder
	b.WriteString("template error")
	if e.Kind != "" {
		fmt.Fprintf(&b, " [%s]", e.Kind)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " in %s", e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes both the template sentinel and the underlying cause.
func (e *TemplateError) Unwrap() []error {
	if e.Cause == nil {
		return []error{oerrors.ErrTemplate}
	}
	return []error{oerrors.ErrTemplate, e.Cause}
}
