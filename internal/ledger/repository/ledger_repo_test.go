package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/domain"
	ledgersync "github.com/pc-part-finder/go-partfinder-backend/internal/ledger/sync"
)

func setupTestRepo(t *testing.T) (*LedgerRepository, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())

	return NewLedgerRepository(client, ledgersync.NewNotifier(client)), client
}

func TestLoadAll_EmptyLedgerIsInitialState(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	projects, err := repo.LoadAll(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.NotNil(t, projects)
}

func TestLoadAll_CorruptBlobFallsBackToEmpty(t *testing.T) {
	repo, client := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, ledgerKey("user-1"), "{not json", 0).Err())

	projects, err := repo.LoadAll(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestCreateProject_AppendsWithFreshTimestamps(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateProject(ctx, "user-1", domain.ProjectDraft{
		Name:        "Build A",
		Description: "test",
		Budget:      "1000",
		Category:    domain.BuildGaming,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	projects, err := repo.LoadAll(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, created.ID, projects[0].ID)
	assert.Equal(t, "Build A", projects[0].Name)
	assert.True(t, projects[0].CreatedAt.Equal(projects[0].UpdatedAt))
}

func TestCreateProject_IDsAreUnique(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		p, err := repo.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build", Description: "d"})
		require.NoError(t, err)
		assert.False(t, seen[p.ID], "id %s reused", p.ID)
		seen[p.ID] = true
	}
}

func TestUpdateProject_MergesPatchAndRefreshesUpdatedAt(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	require.NoError(t, err)

	newName := "Build B"
	newBudget := "$2,000"
	updated, err := repo.UpdateProject(ctx, "user-1", created.ID, domain.ProjectPatch{
		Name:   &newName,
		Budget: &newBudget,
	})
	require.NoError(t, err)
	assert.Equal(t, "Build B", updated.Name)
	assert.Equal(t, "$2,000", updated.Budget)
	assert.Equal(t, "d", updated.Description)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestUpdateProject_AbsentIDFails(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, err := repo.UpdateProject(context.Background(), "user-1", "nope", domain.ProjectPatch{})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestDeleteProject_Idempotent(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	require.NoError(t, err)
	_, err = repo.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build B", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteProject(ctx, "user-1", created.ID))
	after1, err := repo.LoadAll(ctx, "user-1")
	require.NoError(t, err)

	// Second delete of the same id is a no-op.
	require.NoError(t, repo.DeleteProject(ctx, "user-1", created.ID))
	after2, err := repo.LoadAll(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, after1, after2)
	require.Len(t, after2, 1)
	assert.Equal(t, "Build B", after2[0].Name)
}

func TestAddPart_DuplicateRejectedWithoutStateChange(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	require.NoError(t, err)

	part := domain.Part{ID: "cpu1", Name: "Intel Core i9-14900K", Category: domain.CategoryCPU, Price: "$599.99"}
	_, err = repo.AddPart(ctx, "user-1", created.ID, part)
	require.NoError(t, err)

	before, err := repo.LoadAll(ctx, "user-1")
	require.NoError(t, err)

	_, err = repo.AddPart(ctx, "user-1", created.ID, part)
	assert.ErrorIs(t, err, domain.ErrDuplicatePart)

	after, err := repo.LoadAll(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAddPart_UnknownProjectFails(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, err := repo.AddPart(context.Background(), "user-1", "nope", domain.Part{ID: "cpu1"})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestRemovePart_Idempotent(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	require.NoError(t, err)
	_, err = repo.AddPart(ctx, "user-1", created.ID, domain.Part{ID: "cpu1", Price: "$599.99"})
	require.NoError(t, err)

	updated, err := repo.RemovePart(ctx, "user-1", created.ID, "cpu1")
	require.NoError(t, err)
	assert.Empty(t, updated.Parts)

	// Removing an already absent part still succeeds.
	updated, err = repo.RemovePart(ctx, "user-1", created.ID, "cpu1")
	require.NoError(t, err)
	assert.Empty(t, updated.Parts)
}

func TestClearAllParts_EmptiesPartsKeepsIdentity(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	a, err := repo.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	require.NoError(t, err)
	b, err := repo.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build B", Description: "d"})
	require.NoError(t, err)

	_, err = repo.AddPart(ctx, "user-1", a.ID, domain.Part{ID: "cpu1", Price: "$599.99"})
	require.NoError(t, err)
	_, err = repo.AddPart(ctx, "user-1", b.ID, domain.Part{ID: "gpu1", Price: "$1,599.99"})
	require.NoError(t, err)

	before, err := repo.LoadAll(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, repo.ClearAllParts(ctx, "user-1"))

	after, err := repo.LoadAll(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, after, 2)
	for i, p := range after {
		assert.Empty(t, p.Parts)
		assert.Equal(t, before[i].ID, p.ID)
		assert.Equal(t, before[i].Name, p.Name)
		assert.True(t, p.CreatedAt.Equal(before[i].CreatedAt))
		assert.True(t, p.UpdatedAt.After(before[i].UpdatedAt))
	}
}

func TestSaveAll_BumpsVersion(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	v, err := repo.Version(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	require.NoError(t, repo.SaveAll(ctx, "user-1", nil))
	require.NoError(t, repo.SaveAll(ctx, "user-1", []domain.Project{}))

	v, err = repo.Version(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestLedgersAreScopedPerUser(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	require.NoError(t, err)

	other, err := repo.LoadAll(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
