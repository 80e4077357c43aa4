package config

import (
	"fmt"
	"strings"

	"github.com/opmodel/scaffold/internal/project"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks the loaded configuration.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if pt := cfg.Defaults.Rust.ProjectType; pt != "" {
		if _, err := project.Validate(project.Rust, map[string]any{project.FlagProjectType: pt}); err != nil {
			errs = append(errs, ValidationError{
				Field:   "defaults.rust.projectType",
				Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(project.ProjectTypes(), ", "), pt),
			})
		}
	}

	if cfg.BaseDir != "" && strings.TrimSpace(cfg.BaseDir) == "" {
		errs = append(errs, ValidationError{
			Field:   "baseDir",
			Message: "must not be empty or whitespace only",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
