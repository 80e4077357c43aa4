package project

import "fmt"

// Request is a validated scaffold request. The zero value is not valid; use
// NewRequest.
type Request struct {
	kind    Kind
	name    string
	options Options
}

// NewRequest validates kind, name and raw options and returns an immutable
// request. No filesystem access happens here.
func NewRequest(kind, name string, raw map[string]any) (Request, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Request{}, err
	}
	if err := ValidateName(name); err != nil {
		return Request{}, err
	}
	opts, err := Validate(k, raw)
	if err != nil {
		return Request{}, err
	}
	return Request{kind: k, name: name, options: opts}, nil
}

// NewRequestWithOptions builds a request from an already typed option set.
func NewRequestWithOptions(name string, opts Options) (Request, error) {
	if opts == nil {
		return Request{}, &ValidationError{Reason: UnknownKind, Field: "kind", Allowed: kindNames()}
	}
	if err := ValidateName(name); err != nil {
		return Request{}, err
	}
	if rust, ok := opts.(RustOptions); ok && rust.ProjectType == "" {
		opts = RustOptions{ProjectType: Binary}
	}
	return Request{kind: opts.Kind(), name: name, options: opts}, nil
}

// Kind returns the project kind.
func (r Request) Kind() Kind { return r.kind }

// Name returns the project name, which is also the root directory name.
func (r Request) Name() string { return r.name }

// Options returns the typed option set.
func (r Request) Options() Options { return r.options }

// Check re-validates a request. It catches zero-value requests built
// without NewRequest.
func (r Request) Check() error {
	if r.options == nil || r.options.Kind() != r.kind {
		return &ValidationError{
			Reason:  UnknownKind,
			Field:   "kind",
			Value:   string(r.kind),
			Allowed: kindNames(),
		}
	}
	if err := ValidateName(r.name); err != nil {
		return err
	}
	if rust, ok := r.options.(RustOptions); ok {
		switch rust.ProjectType {
		case Binary, Library:
		default:
			return &ValidationError{
				Reason:  InvalidEnumValue,
				Kind:    r.kind,
				Field:   FlagProjectType,
				Value:   string(rust.ProjectType),
				Allowed: ProjectTypes(),
			}
		}
	}
	return nil
}

// String implements fmt.Stringer.
func (r Request) String() string {
	return fmt.Sprintf("%s %s %+v", r.kind, r.name, r.options)
}
