package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/scaffold/internal/project"
)

// NewReactNativeCmd creates the react-native command.
func NewReactNativeCmd(gc *GlobalConfig) *cobra.Command {
	var typeScript, navigation bool

	return newKindCmd(gc, project.ReactNative, `Create a React Native mobile application.

Examples:
  # JavaScript app
  scaffold react-native my-app

  # TypeScript app with a React Navigation stack
  scaffold react-native my-app -t -n`,
		[]kindFlag{
			{name: project.FlagTypeScript, shorthand: "t", usage: "Use TypeScript", boolValue: &typeScript},
			{name: project.FlagNavigation, shorthand: "n", usage: "Add React Navigation", boolValue: &navigation},
		})
}
