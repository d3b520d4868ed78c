package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/domain"
	"github.com/pc-part-finder/go-partfinder-backend/internal/pricing"
)

func TestValidateProjectName(t *testing.T) {
	existing := []domain.Project{{ID: "p1", Name: "Gaming Rig"}}

	assert.NoError(t, ValidateProjectName("My Build 2", existing, ""))
	assert.NoError(t, ValidateProjectName("a", existing, ""))
	assert.NoError(t, ValidateProjectName("7", existing, ""))
	assert.NoError(t, ValidateProjectName("-", existing, ""))

	assert.Error(t, ValidateProjectName("", existing, ""))
	assert.Error(t, ValidateProjectName(strings.Repeat("a", 41), existing, ""))
	assert.Error(t, ValidateProjectName(" ", existing, ""))
	assert.Error(t, ValidateProjectName("bad!name", existing, ""))

	assert.ErrorIs(t, ValidateProjectName("Gaming Rig", existing, ""), domain.ErrDuplicateName)
	// A project may keep its own name on edit.
	assert.NoError(t, ValidateProjectName("Gaming Rig", existing, "p1"))
}

func TestValidateDraft_CanonicalizesOptionalFields(t *testing.T) {
	draft := domain.ProjectDraft{Name: "  Build A  ", Description: " test "}
	require.NoError(t, ValidateDraft(&draft, nil))

	assert.Equal(t, "Build A", draft.Name)
	assert.Equal(t, "test", draft.Description)
	assert.Equal(t, pricing.NotSpecified, draft.Budget)
	assert.Equal(t, domain.BuildOther, draft.Category)
}

func TestValidateDraft_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		draft domain.ProjectDraft
	}{
		{"missing name", domain.ProjectDraft{Description: "d"}},
		{"missing description", domain.ProjectDraft{Name: "Build A"}},
		{"non-numeric budget", domain.ProjectDraft{Name: "Build A", Description: "d", Budget: "lots"}},
		{"non-finite budget", domain.ProjectDraft{Name: "Build A", Description: "d", Budget: "nan"}},
		{"exponent budget", domain.ProjectDraft{Name: "Build A", Description: "d", Budget: "1e6"}},
		{"unknown category", domain.ProjectDraft{Name: "Build A", Description: "d", Category: "spaceship"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := tc.draft
			assert.ErrorIs(t, ValidateDraft(&draft, nil), domain.ErrInvalidProject)
		})
	}
}

func TestValidateDraft_AcceptsCurrencyFormattedBudget(t *testing.T) {
	draft := domain.ProjectDraft{Name: "Build A", Description: "d", Budget: "$1,000", Category: domain.BuildGaming}
	require.NoError(t, ValidateDraft(&draft, nil))
	assert.Equal(t, "$1,000", draft.Budget)
}

func TestValidatePatch(t *testing.T) {
	existing := []domain.Project{
		{ID: "p1", Name: "Build A"},
		{ID: "p2", Name: "Build B"},
	}

	name := "Build B"
	err := ValidatePatch(&domain.ProjectPatch{Name: &name}, existing, "p1")
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	empty := "  "
	err = ValidatePatch(&domain.ProjectPatch{Description: &empty}, existing, "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidProject)

	blank := ""
	patch := domain.ProjectPatch{Budget: &blank}
	require.NoError(t, ValidatePatch(&patch, existing, "p1"))
	assert.Equal(t, pricing.NotSpecified, *patch.Budget)
}
