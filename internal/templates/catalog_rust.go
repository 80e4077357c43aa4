package templates

import "github.com/opmodel/scaffold/internal/project"

const (
	idCargoManifest FileID = "cargo-manifest"
	idCrateRoot     FileID = "crate-root"
	idIntegration   FileID = "integration-test"
)

func isLibrary(o project.Options) bool {
	return o.(project.RustOptions).ProjectType == project.Library
}

func rustDef() kindDef {
	return kindDef{
		info: Info{
			Kind:        project.Rust,
			Description: "Rust crate managed by Cargo",
			UseCase:     "Command-line tools (binary) or reusable crates (library)",
			Flags: []FlagInfo{
				{Name: project.FlagProjectType, Description: "Crate type: binary or library", Default: string(project.Binary)},
			},
		},
		base: []entry{
			dir("src", "Crate sources"),
			file(idCargoManifest, "Cargo.toml", "rust/Cargo.toml.tmpl", "Cargo manifest"),
			file(idCrateRoot, "src/main.rs", "rust/main.rs.tmpl", "Binary entry point"),
			file(idGitignore, ".gitignore", "rust/gitignore.tmpl", "Git ignore rules"),
			file(idReadme, "README.md", "rust/README.md.tmpl", "Project readme"),
		},
		layers: []layerDef{
			{
				name: "library",
				when: isLibrary,
				replace: []entry{
					{id: idCrateRoot, path: "src/lib.rs", src: "rust/lib.rs.tmpl", desc: "Library root"},
				},
				add: []entry{
					dir("tests", "Integration tests"),
					file(idIntegration, "tests/integration.rs", "rust/integration.rs.tmpl", "Sample integration test"),
				},
			},
		},
		nextSteps: func(name string, opts project.Options) []string {
			if isLibrary(opts) {
				return []string{"cd " + name, "cargo test"}
			}
			return []string{"cd " + name, "cargo run"}
		},
	}
}
