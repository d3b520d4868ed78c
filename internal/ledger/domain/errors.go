package domain

import "errors"

var (
	// ErrProjectNotFound is returned when a project id is absent from the
	// user's ledger.
	ErrProjectNotFound = errors.New("project not found")

	// ErrDuplicatePart is returned when a part id is already attached to the
	// project. The add is rejected, never merged.
	ErrDuplicatePart = errors.New("part already in project")

	// ErrInvalidProject is returned for drafts that fail validation.
	ErrInvalidProject = errors.New("invalid project")

	// ErrDuplicateName is returned when a project name collides with another
	// project owned by the same user.
	ErrDuplicateName = errors.New("project name already in use")
)
