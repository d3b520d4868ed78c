package service

import (
	"context"

	"github.com/pc-part-finder/go-partfinder-backend/internal/catalog"
	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/domain"
	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/repository"
	"github.com/pc-part-finder/go-partfinder-backend/internal/pricing"
)

// ProjectView is a project enriched with its recomputed total for display.
type ProjectView struct {
	domain.Project
	Total        float64 `json:"total"`
	TotalDisplay string  `json:"total_display"`
}

// CartView aggregates every project with per-project and grand totals plus
// the current change version, so a page can tell whether a change event it
// later receives is newer than what it already rendered.
type CartView struct {
	Projects          []ProjectView `json:"projects"`
	GrandTotal        float64       `json:"grand_total"`
	GrandTotalDisplay string        `json:"grand_total_display"`
	Version           int64         `json:"version"`
}

// LedgerService handles business logic for the project ledger.
type LedgerService struct {
	repo    *repository.LedgerRepository
	catalog *catalog.Catalog
}

func NewLedgerService(repo *repository.LedgerRepository, cat *catalog.Catalog) *LedgerService {
	return &LedgerService{repo: repo, catalog: cat}
}

func toView(p domain.Project) ProjectView {
	total := ProjectTotal(p)
	return ProjectView{Project: p, Total: total, TotalDisplay: pricing.Format(total)}
}

// ListProjects returns the user's projects with recomputed totals.
func (s *LedgerService) ListProjects(ctx context.Context, userID string) ([]ProjectView, error) {
	projects, err := s.repo.LoadAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, toView(p))
	}
	return views, nil
}

// Cart returns the aggregated checkout view across all projects.
func (s *LedgerService) Cart(ctx context.Context, userID string) (*CartView, error) {
	projects, err := s.repo.LoadAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	version, err := s.repo.Version(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, toView(p))
	}

	grand := GrandTotal(projects)
	return &CartView{
		Projects:          views,
		GrandTotal:        grand,
		GrandTotalDisplay: pricing.Format(grand),
		Version:           version,
	}, nil
}

// CreateProject validates the draft and persists a new project.
func (s *LedgerService) CreateProject(ctx context.Context, userID string, draft domain.ProjectDraft) (*domain.Project, error) {
	existing, err := s.repo.LoadAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := ValidateDraft(&draft, existing); err != nil {
		return nil, err
	}
	return s.repo.CreateProject(ctx, userID, draft)
}

// UpdateProject validates and merges the patch into an existing project.
func (s *LedgerService) UpdateProject(ctx context.Context, userID, projectID string, patch domain.ProjectPatch) (*domain.Project, error) {
	existing, err := s.repo.LoadAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := ValidatePatch(&patch, existing, projectID); err != nil {
		return nil, err
	}
	return s.repo.UpdateProject(ctx, userID, projectID, patch)
}

// DeleteProject removes a project; absent ids are a no-op.
func (s *LedgerService) DeleteProject(ctx context.Context, userID, projectID string) error {
	return s.repo.DeleteProject(ctx, userID, projectID)
}

// AddPart resolves a catalog part by id and attaches it to the project.
func (s *LedgerService) AddPart(ctx context.Context, userID, projectID, partID string) (*ProjectView, error) {
	part, err := s.catalog.Get(partID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.AddPart(ctx, userID, projectID, *part)
	if err != nil {
		return nil, err
	}

	view := toView(*updated)
	return &view, nil
}

// RemovePart detaches a part from the project (idempotent).
func (s *LedgerService) RemovePart(ctx context.Context, userID, projectID, partID string) (*ProjectView, error) {
	updated, err := s.repo.RemovePart(ctx, userID, projectID, partID)
	if err != nil {
		return nil, err
	}

	view := toView(*updated)
	return &view, nil
}

// ClearAllParts empties every project's part list, the simulate-checkout
// side effect.
func (s *LedgerService) ClearAllParts(ctx context.Context, userID string) error {
	return s.repo.ClearAllParts(ctx, userID)
}

// Version exposes the user's current ledger change stamp.
func (s *LedgerService) Version(ctx context.Context, userID string) (int64, error) {
	return s.repo.Version(ctx, userID)
}
