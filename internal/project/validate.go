package project

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxNameLength matches npm's package name limit.
const maxNameLength = 214

// Validate checks raw options against the flags defined for kind and returns
// the typed option set. Unset flags take their zero value, except the Rust
// project type which defaults to Binary.
func Validate(kind Kind, raw map[string]any) (Options, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}

	flags, err := canonicalize(kind, raw)
	if err != nil {
		return nil, err
	}

	switch kind {
	case React:
		var opts ReactOptions
		if opts.TypeScript, err = boolFlag(kind, flags, FlagTypeScript); err != nil {
			return nil, err
		}
		if opts.Testing, err = boolFlag(kind, flags, FlagTesting); err != nil {
			return nil, err
		}
		return opts, nil
	case ReactNative:
		var opts ReactNativeOptions
		if opts.TypeScript, err = boolFlag(kind, flags, FlagTypeScript); err != nil {
			return nil, err
		}
		if opts.Navigation, err = boolFlag(kind, flags, FlagNavigation); err != nil {
			return nil, err
		}
		return opts, nil
	default:
		pt, err := projectTypeFlag(kind, flags)
		if err != nil {
			return nil, err
		}
		return RustOptions{ProjectType: pt}, nil
	}
}

// canonicalize resolves aliases and rejects flags the kind does not define.
// Keys are visited in sorted order so the reported error is stable.
func canonicalize(kind Kind, raw map[string]any) (map[string]any, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	allowed := FlagsFor(kind)
	out := make(map[string]any, len(raw))
	for _, key := range keys {
		name := key
		if canonical, ok := flagAliases[key]; ok {
			name = canonical
		}
		if !contains(allowed, name) {
			return nil, &ValidationError{
				Reason:  UnsupportedOption,
				Kind:    kind,
				Field:   key,
				Value:   fmt.Sprint(raw[key]),
				Allowed: allowed,
			}
		}
		if _, dup := out[name]; dup {
			return nil, &ValidationError{
				Reason: DuplicateOption,
				Kind:   kind,
				Field:  name,
				Value:  fmt.Sprint(raw[key]),
				Detail: "flag supplied more than once under different spellings",
			}
		}
		out[name] = raw[key]
	}
	return out, nil
}

func boolFlag(kind Kind, flags map[string]any, name string) (bool, error) {
	v, ok := flags[name]
	if !ok {
		return false, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, &ValidationError{
				Reason: InvalidValue,
				Kind:   kind,
				Field:  name,
				Value:  b,
				Detail: "expected true or false",
			}
		}
		return parsed, nil
	default:
		return false, &ValidationError{
			Reason: InvalidValue,
			Kind:   kind,
			Field:  name,
			Value:  fmt.Sprint(v),
			Detail: fmt.Sprintf("expected a boolean, got %T", v),
		}
	}
}

func projectTypeFlag(kind Kind, flags map[string]any) (ProjectType, error) {
	v, ok := flags[FlagProjectType]
	if !ok {
		return Binary, nil
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case ProjectType:
		s = string(t)
	}
	switch ProjectType(s) {
	case Binary, Library:
		return ProjectType(s), nil
	default:
		return "", &ValidationError{
			Reason:  InvalidEnumValue,
			Kind:    kind,
			Field:   FlagProjectType,
			Value:   fmt.Sprint(v),
			Allowed: ProjectTypes(),
		}
	}
}

// ValidateName checks that name can be used as a single directory name and
// embedded verbatim in the generated manifests. Names are restricted to
// letters, digits, '-', '_' and '.', must not start with '.' or '-', must not
// end with '.', and must yield a non-empty package identifier.
func ValidateName(name string) error {
	invalid := func(detail string) error {
		return &ValidationError{Reason: InvalidName, Field: "name", Value: name, Detail: detail}
	}

	switch {
	case name == "":
		return invalid("name cannot be empty")
	case name == "." || name == "..":
		return invalid("name cannot be a relative directory reference")
	case len(name) > maxNameLength:
		return invalid(fmt.Sprintf("name is longer than %d bytes", maxNameLength))
	case !utf8.ValidString(name):
		return invalid("name is not valid UTF-8")
	}

	for _, r := range name {
		switch {
		case r == '/' || r == '\\':
			return invalid("name cannot contain a path separator")
		case r == 0 || unicode.IsControl(r):
			return invalid("name contains a control character")
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.':
		default:
			return invalid(fmt.Sprintf("name contains invalid character %q", r))
		}
	}

	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "-") {
		return invalid("name cannot start with '.' or '-'")
	}
	if strings.HasSuffix(name, ".") {
		return invalid("name cannot end with '.'")
	}
	if PackageName(name) == "" {
		return invalid("name must contain at least one ASCII letter or digit")
	}

	return nil
}

// PackageName derives the identifier used in manifest fields: the name
// lowercased with every non-alphanumeric character removed.
func PackageName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func kindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
