package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/domain"
	ledgersync "github.com/pc-part-finder/go-partfinder-backend/internal/ledger/sync"
)

const (
	ledgerKeyPrefix  = "partfinder:projects:" // Full project collection per user: partfinder:projects:{uid}
	versionKeyPrefix = "partfinder:version:"  // Change counter per user: partfinder:version:{uid}
)

// LedgerRepository owns the single serialized project collection per user.
// Every structural change is a full load -> transform -> SaveAll of the whole
// collection; there is no partial update primitive. Two contexts writing at
// once race without detection and the last SaveAll wins.
type LedgerRepository struct {
	client   *redis.Client
	notifier *ledgersync.Notifier
}

// NewLedgerRepository creates a new LedgerRepository. The notifier may be nil
// when change propagation is not needed (e.g. one-shot tooling).
func NewLedgerRepository(client *redis.Client, notifier *ledgersync.Notifier) *LedgerRepository {
	return &LedgerRepository{client: client, notifier: notifier}
}

func ledgerKey(userID string) string {
	return ledgerKeyPrefix + userID
}

func versionKey(userID string) string {
	return versionKeyPrefix + userID
}

// LoadAll deserializes the user's full project collection. A missing key is
// the initial state, not an error. A corrupt blob is logged and treated as
// empty so a bad write can never take the pages down.
func (r *LedgerRepository) LoadAll(ctx context.Context, userID string) ([]domain.Project, error) {
	data, err := r.client.Get(ctx, ledgerKey(userID)).Result()
	if err == redis.Nil {
		return []domain.Project{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal([]byte(data), &projects); err != nil {
		log.Printf("Corrupt ledger blob for user %s, falling back to empty: %v", userID, err)
		return []domain.Project{}, nil
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

// SaveAll serializes and persists the full collection as one write, replacing
// any prior content, then bumps the change version and publishes the event.
func (r *LedgerRepository) SaveAll(ctx context.Context, userID string, projects []domain.Project) error {
	if projects == nil {
		projects = []domain.Project{}
	}

	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, ledgerKey(userID), data, 0)
	incr := pipe.Incr(ctx, versionKey(userID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	if r.notifier != nil {
		r.notifier.Publish(ctx, userID, ledgersync.ChangeEvent{
			Version:   incr.Val(),
			ChangedAt: time.Now(),
		})
	}
	return nil
}

// Version returns the user's current change stamp. A user who has never
// written reports version 0.
func (r *LedgerRepository) Version(ctx context.Context, userID string) (int64, error) {
	v, err := r.client.Get(ctx, versionKey(userID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read ledger version: %w", err)
	}
	return v, nil
}

// CreateProject allocates a unique id, stamps creation time and appends the
// project to the collection. Draft validation is the caller's job.
func (r *LedgerRepository) CreateProject(ctx context.Context, userID string, draft domain.ProjectDraft) (*domain.Project, error) {
	projects, err := r.LoadAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	project := domain.Project{
		ID:          uuid.New().String(),
		Name:        draft.Name,
		Description: draft.Description,
		Budget:      draft.Budget,
		Category:    draft.Category,
		Parts:       []domain.Part{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	projects = append(projects, project)
	if err := r.SaveAll(ctx, userID, projects); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject merges non-nil patch fields into the stored record.
func (r *LedgerRepository) UpdateProject(ctx context.Context, userID, projectID string, patch domain.ProjectPatch) (*domain.Project, error) {
	projects, err := r.LoadAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		if patch.Name != nil {
			projects[i].Name = *patch.Name
		}
		if patch.Description != nil {
			projects[i].Description = *patch.Description
		}
		if patch.Budget != nil {
			projects[i].Budget = *patch.Budget
		}
		if patch.Category != nil {
			projects[i].Category = *patch.Category
		}
		projects[i].UpdatedAt = time.Now()

		if err := r.SaveAll(ctx, userID, projects); err != nil {
			return nil, err
		}
		return &projects[i], nil
	}

	return nil, domain.ErrProjectNotFound
}

// DeleteProject removes the record if present. Deleting an absent id is a
// no-op, not an error.
func (r *LedgerRepository) DeleteProject(ctx context.Context, userID, projectID string) error {
	projects, err := r.LoadAll(ctx, userID)
	if err != nil {
		return err
	}

	kept := projects[:0]
	for _, p := range projects {
		if p.ID != projectID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return nil
	}
	return r.SaveAll(ctx, userID, kept)
}

// AddPart appends a part to the project. A part id already attached to the
// project is rejected with ErrDuplicatePart and the stored collection is
// left untouched.
func (r *LedgerRepository) AddPart(ctx context.Context, userID, projectID string, part domain.Part) (*domain.Project, error) {
	projects, err := r.LoadAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		if projects[i].HasPart(part.ID) {
			return nil, domain.ErrDuplicatePart
		}
		projects[i].Parts = append(projects[i].Parts, part)
		projects[i].UpdatedAt = time.Now()

		if err := r.SaveAll(ctx, userID, projects); err != nil {
			return nil, err
		}
		return &projects[i], nil
	}

	return nil, domain.ErrProjectNotFound
}

// RemovePart detaches a part if present. Removing an absent part id leaves
// the project unchanged apart from the updatedAt refresh.
func (r *LedgerRepository) RemovePart(ctx context.Context, userID, projectID, partID string) (*domain.Project, error) {
	projects, err := r.LoadAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		kept := projects[i].Parts[:0]
		for _, part := range projects[i].Parts {
			if part.ID != partID {
				kept = append(kept, part)
			}
		}
		projects[i].Parts = kept
		projects[i].UpdatedAt = time.Now()

		if err := r.SaveAll(ctx, userID, projects); err != nil {
			return nil, err
		}
		return &projects[i], nil
	}

	return nil, domain.ErrProjectNotFound
}

// ClearAllParts empties every project's part list and refreshes updatedAt.
// Called when the mocked checkout completes.
func (r *LedgerRepository) ClearAllParts(ctx context.Context, userID string) error {
	projects, err := r.LoadAll(ctx, userID)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return nil
	}

	now := time.Now()
	for i := range projects {
		projects[i].Parts = []domain.Part{}
		projects[i].UpdatedAt = now
	}
	return r.SaveAll(ctx, userID, projects)
}
