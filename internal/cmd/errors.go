package cmd

import (
	"errors"
	"fmt"
	"strings"

	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/materialize"
	"github.com/opmodel/scaffold/internal/project"
	"github.com/opmodel/scaffold/internal/templates"
)

// exitWithDetail converts an engine error into a DetailError wrapped in an
// ExitError carrying the matching exit code.
func exitWithDetail(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &oerrors.ExitError{Err: detailFor(err), Code: oerrors.ExitCodeFromError(err)}
}

func detailFor(err error) error {
	var (
		verr *project.ValidationError
		dest *materialize.DestinationExistsError
		merr *materialize.Error
		terr *templates.TemplateError
	)

	switch {
	case errors.As(err, &verr):
		d := &oerrors.DetailError{
			Type:    "validation failed",
			Message: verr.Error(),
			Field:   verr.Field,
			Cause:   err,
		}
		if verr.Kind != "" {
			d.Context = map[string]string{"Kind": string(verr.Kind)}
		}
		if len(verr.Allowed) > 0 {
			d.Hint = "Allowed: " + strings.Join(verr.Allowed, ", ")
		}
		return d

	case errors.As(err, &dest):
		return &oerrors.DetailError{
			Type:     "destination exists",
			Message:  fmt.Sprintf("%s already exists; nothing was written", dest.Path),
			Location: dest.Path,
			Hint:     "Choose a different project name or --dir, or remove the existing directory.",
			Cause:    err,
		}

	case errors.As(err, &merr):
		return &oerrors.DetailError{
			Type:     "write failed",
			Message:  fmt.Sprintf("%s failed: %v; the partial project was removed", merr.Op, merr.Cause),
			Location: merr.Path,
			Cause:    err,
		}

	case errors.As(err, &terr):
		return &oerrors.DetailError{
			Type:     "template error",
			Message:  terr.Error(),
			Location: terr.Path,
			Hint:     "This is a bug in scaffold's built-in templates. Please report it.",
			Cause:    err,
		}
	}
	return err
}
