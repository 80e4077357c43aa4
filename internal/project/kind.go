// Package project models scaffold requests: the project kind, its name and
// the option set that is valid for that kind.
package project

import "fmt"

// Kind identifies the type of project to scaffold.
type Kind string

const (
	// React is a Vite-based React web application.
	React Kind = "react"

	// ReactNative is a React Native mobile application.
	ReactNative Kind = "react-native"

	// Rust is a Cargo binary or library crate.
	Rust Kind = "rust"
)

// Kinds returns all kinds in display order.
func Kinds() []Kind {
	return []Kind{React, ReactNative, Rust}
}

// ParseKind converts a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case React, ReactNative, Rust:
		return Kind(s), nil
	default:
		return "", &ValidationError{
			Reason:  UnknownKind,
			Field:   "kind",
			Value:   s,
			Allowed: kindNames(),
		}
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// DisplayName returns a human-readable name for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case React:
		return "React"
	case ReactNative:
		return "React Native"
	case Rust:
		return "Rust"
	default:
		return fmt.Sprintf("unknown(%s)", string(k))
	}
}
