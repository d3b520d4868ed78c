package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/domain"
	"github.com/pc-part-finder/go-partfinder-backend/internal/pricing"
)

// Project names allow letters, digits, underscores, spaces and hyphens.
var projectNamePattern = regexp.MustCompile(`^[\w\s-]+$`)

// ValidateProjectName enforces the project naming rules:
//   - 1 to 40 characters
//   - a single-character name must be a letter, digit or hyphen
//   - only letters, digits, underscores, spaces and hyphens
//   - must not duplicate another project name owned by the same user
func ValidateProjectName(name string, existing []domain.Project, excludeID string) error {
	length := len(name)
	if length < 1 || length > 40 {
		return fmt.Errorf("%w: name must be 1-40 characters", domain.ErrInvalidProject)
	}

	if length == 1 {
		c := name[0]
		isLetterOrDigit := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !isLetterOrDigit && c != '-' {
			return fmt.Errorf("%w: single-character name must be a letter, digit or hyphen", domain.ErrInvalidProject)
		}
	}

	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("%w: name may only contain letters, digits, spaces and hyphens", domain.ErrInvalidProject)
	}

	for _, p := range existing {
		if p.ID != excludeID && p.Name == name {
			return domain.ErrDuplicateName
		}
	}
	return nil
}

// ValidateDraft checks a create-project submission and canonicalizes the
// optional fields: a missing budget becomes the "Not specified" sentinel and
// a missing category defaults to "other".
func ValidateDraft(draft *domain.ProjectDraft, existing []domain.Project) error {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.Budget = strings.TrimSpace(draft.Budget)
	draft.Category = strings.TrimSpace(draft.Category)

	if err := ValidateProjectName(draft.Name, existing, ""); err != nil {
		return err
	}
	if draft.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrInvalidProject)
	}

	if draft.Budget == "" {
		draft.Budget = pricing.NotSpecified
	} else if _, err := pricing.NormalizeString(draft.Budget); err != nil {
		return fmt.Errorf("%w: budget must be numeric", domain.ErrInvalidProject)
	}

	if draft.Category == "" {
		draft.Category = domain.BuildOther
	} else if !domain.ValidBuildCategory(draft.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidProject, draft.Category)
	}
	return nil
}

// ValidatePatch applies the same field rules to an edit submission.
func ValidatePatch(patch *domain.ProjectPatch, existing []domain.Project, projectID string) error {
	if patch.Name != nil {
		*patch.Name = strings.TrimSpace(*patch.Name)
		if err := ValidateProjectName(*patch.Name, existing, projectID); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		*patch.Description = strings.TrimSpace(*patch.Description)
		if *patch.Description == "" {
			return fmt.Errorf("%w: description is required", domain.ErrInvalidProject)
		}
	}
	if patch.Budget != nil {
		*patch.Budget = strings.TrimSpace(*patch.Budget)
		if *patch.Budget == "" {
			*patch.Budget = pricing.NotSpecified
		} else if _, err := pricing.NormalizeString(*patch.Budget); err != nil {
			return fmt.Errorf("%w: budget must be numeric", domain.ErrInvalidProject)
		}
	}
	if patch.Category != nil && !domain.ValidBuildCategory(*patch.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidProject, *patch.Category)
	}
	return nil
}
