package project

// Flag names accepted in a raw option map.
const (
	FlagTypeScript  = "typescript"
	FlagTesting     = "testing"
	FlagNavigation  = "navigation"
	FlagProjectType = "project-type"
)

// flagAliases maps alternate spellings to their canonical flag name.
var flagAliases = map[string]string{
	"projectType":  FlagProjectType,
	"project_type": FlagProjectType,
}

// ProjectType is the Rust crate type.
type ProjectType string

const (
	// Binary produces an executable crate with src/main.rs.
	Binary ProjectType = "binary"

	// Library produces a library crate with src/lib.rs.
	Library ProjectType = "library"
)

// ProjectTypes returns the valid Rust project types.
func ProjectTypes() []string {
	return []string{string(Binary), string(Library)}
}

// Options is the option set of one project kind. Only the structs in this
// package implement it.
type Options interface {
	// Kind returns the project kind the options belong to.
	Kind() Kind

	// Flags returns the options as named booleans for template rendering.
	Flags() map[string]bool

	sealed()
}

// ReactOptions are the flags of a React project.
type ReactOptions struct {
	TypeScript bool
	Testing    bool
}

func (ReactOptions) Kind() Kind { return React }

func (o ReactOptions) Flags() map[string]bool {
	return map[string]bool{
		"TypeScript": o.TypeScript,
		"Testing":    o.Testing,
	}
}

func (ReactOptions) sealed() {}

// ReactNativeOptions are the flags of a React Native project.
type ReactNativeOptions struct {
	TypeScript bool
	Navigation bool
}

func (ReactNativeOptions) Kind() Kind { return ReactNative }

func (o ReactNativeOptions) Flags() map[string]bool {
	return map[string]bool{
		"TypeScript": o.TypeScript,
		"Navigation": o.Navigation,
	}
}

func (ReactNativeOptions) sealed() {}

// RustOptions are the flags of a Rust project.
type RustOptions struct {
	ProjectType ProjectType
}

func (RustOptions) Kind() Kind { return Rust }

func (o RustOptions) Flags() map[string]bool {
	return map[string]bool{
		"Binary":  o.ProjectType != Library,
		"Library": o.ProjectType == Library,
	}
}

func (RustOptions) sealed() {}

// FlagsFor returns the canonical flag names defined for a kind.
func FlagsFor(kind Kind) []string {
	switch kind {
	case React:
		return []string{FlagTypeScript, FlagTesting}
	case ReactNative:
		return []string{FlagTypeScript, FlagNavigation}
	case Rust:
		return []string{FlagProjectType}
	default:
		return nil
	}
}

// AllOptions enumerates every valid option set of a kind.
func AllOptions(kind Kind) []Options {
	switch kind {
	case React:
		var out []Options
		for _, ts := range []bool{false, true} {
			for _, testing := range []bool{false, true} {
				out = append(out, ReactOptions{TypeScript: ts, Testing: testing})
			}
		}
		return out
	case ReactNative:
		var out []Options
		for _, ts := range []bool{false, true} {
			for _, nav := range []bool{false, true} {
				out = append(out, ReactNativeOptions{TypeScript: ts, Navigation: nav})
			}
		}
		return out
	case Rust:
		return []Options{
			RustOptions{ProjectType: Binary},
			RustOptions{ProjectType: Library},
		}
	default:
		return nil
	}
}
