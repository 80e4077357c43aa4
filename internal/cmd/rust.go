package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/scaffold/internal/project"
)

// NewRustCmd creates the rust command.
func NewRustCmd(gc *GlobalConfig) *cobra.Command {
	var projectType string

	return newKindCmd(gc, project.Rust, `Create a Rust crate managed by Cargo.

A binary crate gets src/main.rs; a library crate gets src/lib.rs and an
integration test under tests/.

Examples:
  # Command-line tool
  scaffold rust my-tool

  # Library crate
  scaffold rust my-lib --project-type library`,
		[]kindFlag{
			{
				name:      project.FlagProjectType,
				shorthand: "p",
				usage:     fmt.Sprintf("Crate type (%s)", strings.Join(project.ProjectTypes(), ", ")),
				strValue:  &projectType,
			},
		})
}
