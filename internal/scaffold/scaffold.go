// Package scaffold runs a project request through validation, template
// resolution, rendering and materialization.
package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/opmodel/scaffold/internal/materialize"
	"github.com/opmodel/scaffold/internal/output"
	"github.com/opmodel/scaffold/internal/project"
	"github.com/opmodel/scaffold/internal/templates"
)

// Options configures a Scaffolder. Zero values select defaults.
type Options struct {
	// Catalog resolves template sets. Defaults to templates.Default().
	Catalog *templates.Catalog

	// Fs is the filesystem projects are written to. Defaults to the OS
	// filesystem.
	Fs afero.Fs

	// BaseDir is the directory the project root is created in. Defaults
	// to ".".
	BaseDir string
}

// Result describes a finished run.
type Result struct {
	// Root is the project directory, BaseDir joined with the name.
	Root string
	Kind project.Kind
	Name string

	// Created lists relative paths in creation order; directories carry a
	// trailing "/".
	Created []string

	// Stage is StageDone on success and StageFailed otherwise.
	Stage Stage

	// FailedStage is the stage that failed. Only set when Stage is
	// StageFailed.
	FailedStage Stage

	// Set is the resolved template set, for descriptions and listings.
	Set templates.TemplateSet
}

// Scaffolder orchestrates one project generation at a time. It holds no
// per-run state and may be reused.
type Scaffolder struct {
	catalog *templates.Catalog
	mat     *materialize.Materializer
	baseDir string
}

// New returns a Scaffolder for opts.
func New(opts Options) (*Scaffolder, error) {
	catalog := opts.Catalog
	if catalog == nil {
		c, err := templates.Default()
		if err != nil {
			return nil, fmt.Errorf("loading template catalog: %w", err)
		}
		catalog = c
	}
	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	return &Scaffolder{
		catalog: catalog,
		mat:     materialize.New(opts.Fs),
		baseDir: baseDir,
	}, nil
}

// Catalog returns the catalog the Scaffolder resolves against.
func (s *Scaffolder) Catalog() *templates.Catalog {
	return s.catalog
}

// Root returns the directory a project called name would be created in.
func (s *Scaffolder) Root(name string) string {
	return filepath.Join(s.baseDir, name)
}

// Scaffold generates the project described by req.
//
// Stages:
//  1. VALIDATING:    req.Check()
//  2. RESOLVING:     Catalog.Resolve() → TemplateSet
//  3. RENDERING:     templates.RenderSet() → []RenderedFile
//  4. MATERIALIZING: Materializer.Materialize() → created paths
//
// The first three stages touch no filesystem. On failure the returned
// Result records which stage failed next to the error.
func (s *Scaffolder) Scaffold(ctx context.Context, req project.Request) (*Result, error) {
	log := output.ProjectLogger(req.Name())
	res := &Result{Kind: req.Kind(), Name: req.Name(), Stage: StageValidating}

	fail := func(err error) (*Result, error) {
		log.Debug("scaffold failed", "stage", res.Stage, "err", err)
		res.FailedStage = res.Stage
		res.Stage = StageFailed
		return res, err
	}
	enter := func(st Stage) {
		res.Stage = st
		log.Debug("stage", "stage", st)
	}

	enter(StageValidating)
	if err := req.Check(); err != nil {
		return fail(err)
	}
	res.Root = s.Root(req.Name())

	enter(StageResolving)
	set, err := s.catalog.Resolve(req.Kind(), req.Options())
	if err != nil {
		return fail(err)
	}
	res.Set = set
	log.Debug("resolved template set", "kind", set.Kind, "entries", len(set.Files))

	enter(StageRendering)
	files, err := templates.RenderSet(set, templates.RenderContext{
		ProjectName: req.Name(),
		Options:     req.Options(),
	})
	if err != nil {
		return fail(err)
	}

	enter(StageMaterializing)
	created, err := s.mat.Materialize(ctx, res.Root, set, files)
	if err != nil {
		return fail(err)
	}
	res.Created = created.Created

	enter(StageDone)
	log.Debug("scaffold complete", "root", res.Root, "created", len(res.Created))
	return res, nil
}
