package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/output"
	"github.com/opmodel/scaffold/internal/templates"
)

type kindListing struct {
	Kind        string        `json:"kind" yaml:"kind"`
	Description string        `json:"description" yaml:"description"`
	UseCase     string        `json:"useCase" yaml:"useCase"`
	Flags       []flagListing `json:"flags" yaml:"flags"`
}

type flagListing struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Default     string `json:"default" yaml:"default"`
}

// NewListCmd creates the list command.
func NewListCmd(_ *GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List available project kinds",
		Long: `List the project kinds scaffold can generate and the flags each accepts.

Examples:
  scaffold list
  scaffold list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, format)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", string(output.FormatTable),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runList(cmd *cobra.Command, format string) error {
	f, ok := output.ParseOutputFormat(format)
	if !ok {
		return exitWithDetail(&oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown output format %q", format),
			Field:   "output",
			Hint:    "Valid formats: " + strings.Join(output.ValidFormats(), ", "),
			Cause:   oerrors.ErrValidation,
		})
	}

	catalog, err := templates.Default()
	if err != nil {
		return exitWithDetail(err)
	}

	infos := catalog.List()
	if f != output.FormatTable {
		listings := make([]kindListing, 0, len(infos))
		for _, info := range infos {
			l := kindListing{Kind: string(info.Kind), Description: info.Description, UseCase: info.UseCase}
			for _, fl := range info.Flags {
				l.Flags = append(l.Flags, flagListing{Name: fl.Name, Description: fl.Description, Default: fl.Default})
			}
			listings = append(listings, l)
		}
		return output.WriteStructured(cmd.OutOrStdout(), f, listings)
	}

	rows := make([]output.KindRow, 0, len(infos))
	for _, info := range infos {
		flags := make([]string, 0, len(info.Flags))
		for _, fl := range info.Flags {
			flags = append(flags, "--"+fl.Name)
		}
		rows = append(rows, output.KindRow{
			Kind:        string(info.Kind),
			Description: info.Description,
			Flags:       strings.Join(flags, ", "),
		})
	}
	output.Println(output.RenderKindTable(rows))
	return nil
}
