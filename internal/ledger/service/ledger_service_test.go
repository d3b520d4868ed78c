package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pc-part-finder/go-partfinder-backend/internal/catalog"
	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/domain"
	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/repository"
	ledgersync "github.com/pc-part-finder/go-partfinder-backend/internal/ledger/sync"
)

func setupTestService(t *testing.T) *LedgerService {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := repository.NewLedgerRepository(client, ledgersync.NewNotifier(client))
	return NewLedgerService(repo, catalog.New())
}

func TestCreateThenAddPart_TotalsRecomputed(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, "user-1", domain.ProjectDraft{
		Name:        "Build A",
		Description: "test",
		Budget:      "1000",
	})
	require.NoError(t, err)

	view, err := svc.AddPart(ctx, "user-1", created.ID, "cpu1")
	require.NoError(t, err)
	assert.InDelta(t, 599.99, view.Total, 1e-9)
	assert.Equal(t, "599.99", view.TotalDisplay)

	cart, err := svc.Cart(ctx, "user-1")
	require.NoError(t, err)
	assert.InDelta(t, 599.99, cart.GrandTotal, 1e-9)
	assert.Equal(t, "599.99", cart.GrandTotalDisplay)

	view, err = svc.RemovePart(ctx, "user-1", created.ID, "cpu1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, view.Total)
}

func TestAddPart_UnknownCatalogPart(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	require.NoError(t, err)

	_, err = svc.AddPart(ctx, "user-1", created.ID, "flux-capacitor")
	assert.ErrorIs(t, err, catalog.ErrPartNotFound)
}

func TestAddPart_DuplicateSurfaced(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	require.NoError(t, err)

	_, err = svc.AddPart(ctx, "user-1", created.ID, "gpu1")
	require.NoError(t, err)
	_, err = svc.AddPart(ctx, "user-1", created.ID, "gpu1")
	assert.ErrorIs(t, err, domain.ErrDuplicatePart)
}

func TestCreateProject_RejectsDuplicateName(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	require.NoError(t, err)

	_, err = svc.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	// Other users are not affected.
	_, err = svc.CreateProject(ctx, "user-2", domain.ProjectDraft{Name: "Build A", Description: "d"})
	assert.NoError(t, err)
}

func TestCart_TwoProjects(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	a, err := svc.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	require.NoError(t, err)
	b, err := svc.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build B", Description: "d"})
	require.NoError(t, err)

	// cooling2 is $99.99, psu2 is $129.99, ram1 is $149.99.
	_, err = svc.AddPart(ctx, "user-1", a.ID, "cooling2")
	require.NoError(t, err)
	_, err = svc.AddPart(ctx, "user-1", b.ID, "psu2")
	require.NoError(t, err)
	_, err = svc.AddPart(ctx, "user-1", b.ID, "ram1")
	require.NoError(t, err)

	cart, err := svc.Cart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Projects, 2)
	assert.InDelta(t, 99.99, cart.Projects[0].Total, 1e-9)
	assert.InDelta(t, 279.98, cart.Projects[1].Total, 1e-9)
	assert.InDelta(t, 379.97, cart.GrandTotal, 1e-9)
	assert.Greater(t, cart.Version, int64(0))
}

func TestClearAllParts_ViaService(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	a, err := svc.CreateProject(ctx, "user-1", domain.ProjectDraft{Name: "Build A", Description: "d"})
	require.NoError(t, err)
	_, err = svc.AddPart(ctx, "user-1", a.ID, "cpu1")
	require.NoError(t, err)

	require.NoError(t, svc.ClearAllParts(ctx, "user-1"))

	cart, err := svc.Cart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Projects, 1)
	assert.Empty(t, cart.Projects[0].Parts)
	assert.Equal(t, 0.0, cart.GrandTotal)
}
