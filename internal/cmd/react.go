package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/scaffold/internal/project"
)

// NewReactCmd creates the react command.
func NewReactCmd(gc *GlobalConfig) *cobra.Command {
	var typeScript, testing bool

	return newKindCmd(gc, project.React, `Create a React web application built with Vite.

The project gets a package manifest, Vite configuration, an App component
and the usual src/ layout. Flags not given on the command line fall back to
defaults.react in the config file.

Examples:
  # Plain JavaScript project
  scaffold react my-app

  # TypeScript with Vitest and Testing Library
  scaffold react my-app --typescript --testing

  # Create the project under ./web
  scaffold react my-app -C ./web`,
		[]kindFlag{
			{name: project.FlagTypeScript, shorthand: "t", usage: "Use TypeScript", boolValue: &typeScript},
			{name: project.FlagTesting, shorthand: "T", usage: "Add Vitest and Testing Library", boolValue: &testing},
		})
}
