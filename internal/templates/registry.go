package templates

import (
	"fmt"

	"github.com/opmodel/scaffold/internal/project"
)

// Info describes a project kind for `scaffold list`.
type Info struct {
	// Kind is the project kind.
	Kind project.Kind

	// Description explains what gets generated.
	Description string

	// UseCase describes when to pick this kind.
	UseCase string

	// Flags lists the options the kind accepts.
	Flags []FlagInfo
}

// FlagInfo describes one option of a kind.
type FlagInfo struct {
	Name        string
	Description string
	Default     string
}

// Describe returns the metadata of a kind.
func (c *Catalog) Describe(kind project.Kind) (Info, error) {
	kc, ok := c.kinds[kind]
	if !ok {
		return Info{}, fmt.Errorf("unknown kind %q", kind)
	}
	return kc.info, nil
}

// List returns the metadata of every kind in display order.
func (c *Catalog) List() []Info {
	var out []Info
	for _, k := range c.Kinds() {
		out = append(out, c.kinds[k].info)
	}
	return out
}

// NextSteps returns the commands a user runs after scaffolding.
func (c *Catalog) NextSteps(name string, opts project.Options) []string {
	if opts == nil {
		return nil
	}
	kc, ok := c.kinds[opts.Kind()]
	if !ok || kc.nextSteps == nil {
		return nil
	}
	return kc.nextSteps(name, opts)
}

func kindDefs() []kindDef {
	return []kindDef{reactDef(), reactNativeDef(), rustDef()}
}
