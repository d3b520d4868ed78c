package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/domain"
)

func TestGet_KnownAndUnknownParts(t *testing.T) {
	c := New()

	part, err := c.Get("cpu1")
	require.NoError(t, err)
	assert.Equal(t, "Intel Core i9-14900K", part.Name)
	assert.Equal(t, "$599.99", part.Price)

	_, err = c.Get("does-not-exist")
	assert.ErrorIs(t, err, ErrPartNotFound)
}

func TestList_ReturnsFullSeedCatalog(t *testing.T) {
	c := New()

	parts := c.List()
	assert.Len(t, parts, 16)

	// Every seeded part carries a catalog category.
	for _, p := range parts {
		assert.NotEmpty(t, p.Category, "part %s has no category", p.ID)
	}
}

func TestSearch_ByTerm(t *testing.T) {
	c := New()

	parts, err := c.Search("ryzen", "")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "cpu2", parts[0].ID)

	// Description text matches too.
	parts, err = c.Search("GDDR6X", "")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "gpu1", parts[0].ID)
}

func TestSearch_ByCategory(t *testing.T) {
	c := New()

	parts, err := c.Search("", domain.CategoryGPU)
	require.NoError(t, err)
	assert.Len(t, parts, 2)

	parts, err = c.Search("", "all")
	require.NoError(t, err)
	assert.Len(t, parts, 16)
}

func TestSearch_TermAndCategoryCombined(t *testing.T) {
	c := New()

	parts, err := c.Search("corsair", domain.CategoryPSU)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "psu1", parts[0].ID)
}

func TestValidateSearchTerm(t *testing.T) {
	assert.NoError(t, ValidateSearchTerm("cpu"))
	assert.NoError(t, ValidateSearchTerm("B450M-HDV R4.0 AMD B450 AM4"))

	assert.ErrorIs(t, ValidateSearchTerm("ab"), ErrInvalidSearch)
	assert.ErrorIs(t, ValidateSearchTerm("cpu!@#"), ErrInvalidSearch)

	long := make([]byte, 41)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, ValidateSearchTerm(string(long)), ErrInvalidSearch)
}

func TestLoadFromFile_ReplacesCatalog(t *testing.T) {
	c := New()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": "cpu9", "name": "Test CPU", "category": "cpu", "price": "$99.99", "rating": 4.0}
	]`), 0o644))

	require.NoError(t, c.LoadFromFile(path))

	parts := c.List()
	require.Len(t, parts, 1)
	assert.Equal(t, "cpu9", parts[0].ID)

	_, err := c.Get("cpu1")
	assert.ErrorIs(t, err, ErrPartNotFound)
}

func TestLoadFromFile_RejectsBadFiles(t *testing.T) {
	c := New()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	assert.Error(t, c.LoadFromFile(path))

	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))
	assert.Error(t, c.LoadFromFile(path))

	// A failed load keeps the previous data.
	assert.Len(t, c.List(), 16)
}
