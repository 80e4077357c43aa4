package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/opmodel/scaffold/internal/output"
	"github.com/opmodel/scaffold/internal/project"
	"github.com/opmodel/scaffold/internal/scaffold"
)

// kindFlag binds one option flag of a scaffold command.
type kindFlag struct {
	name      string
	shorthand string
	usage     string
	boolValue *bool
	strValue  *string
}

// rawOptions starts from the configured defaults for kind and overrides
// them with the flags the user actually set.
func rawOptions(cmd *cobra.Command, gc *GlobalConfig, kind project.Kind, flags []kindFlag) map[string]any {
	raw := map[string]any{}
	if gc.Config != nil {
		raw = gc.Config.OptionDefaults(kind)
	}
	for _, f := range flags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		if f.boolValue != nil {
			raw[f.name] = *f.boolValue
		} else {
			raw[f.name] = *f.strValue
		}
	}
	return raw
}

func newKindCmd(gc *GlobalConfig, kind project.Kind, long string, flags []kindFlag) *cobra.Command {
	c := &cobra.Command{
		Use:   string(kind) + " <name>",
		Short: "Create a new " + kind.DisplayName() + " project",
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, gc, kind, args[0], rawOptions(cmd, gc, kind, flags))
		},
	}

	for _, f := range flags {
		if f.boolValue != nil {
			c.Flags().BoolVarP(f.boolValue, f.name, f.shorthand, false, f.usage)
		} else {
			c.Flags().StringVarP(f.strValue, f.name, f.shorthand, "", f.usage)
		}
	}
	return c
}

func runScaffold(cmd *cobra.Command, gc *GlobalConfig, kind project.Kind, name string, raw map[string]any) error {
	req, err := project.NewRequest(string(kind), name, raw)
	if err != nil {
		return exitWithDetail(err)
	}

	s, err := scaffold.New(scaffold.Options{Fs: gc.Fs, BaseDir: gc.BaseDir})
	if err != nil {
		return exitWithDetail(err)
	}

	output.Debug("scaffolding project", "kind", kind, "name", name, "options", fmt.Sprintf("%+v", req.Options()))

	var res *scaffold.Result
	err = output.RunWithSpinner(cmd.Context(), func(ctx context.Context) error {
		var runErr error
		res, runErr = s.Scaffold(ctx, req)
		return runErr
	}, output.WithTitle("Creating "+name))
	if err != nil {
		return exitWithDetail(err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created %s project %s in %s",
		kind.DisplayName(), output.StyleNoun.Render(name), res.Root)))
	output.Println("")
	printCreated(res)
	output.Println("")
	output.Print(output.FormatNextSteps(s.Catalog().NextSteps(res.Root, req.Options())))

	return nil
}

// printCreated renders a tree on terminals and one line per path otherwise.
func printCreated(res *scaffold.Result) {
	if output.IsTTY() {
		descriptions := res.Set.Descriptions()
		created := make(map[string]string, len(res.Created))
		for _, p := range res.Created {
			created[p] = descriptions[p]
		}
		output.Print(output.RenderFileTree(res.Name, created))
		return
	}

	paths := append([]string(nil), res.Created...)
	sort.Strings(paths)
	for _, p := range paths {
		output.Println(output.FormatPathLine(p, output.StatusCreated))
	}
}
