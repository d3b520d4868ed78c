// Package catalog holds the purchasable parts list. The data is static mock
// data in this implementation; a JSON file can override it and is re-read on
// a nightly schedule so price updates land without a restart.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/domain"
)

var (
	// ErrPartNotFound is returned when a part id is not in the catalog.
	ErrPartNotFound = errors.New("part not found")

	// ErrInvalidSearch is returned for search terms that fail validation.
	ErrInvalidSearch = errors.New("invalid search term")
)

// Search terms: 3-40 chars, letters, digits, dash, dot, space.
var searchTermPattern = regexp.MustCompile(`^[A-Za-z0-9-. ]+$`)

// Catalog is an in-memory parts list safe for concurrent reads and
// scheduled reloads.
type Catalog struct {
	mu    sync.RWMutex
	parts []domain.Part
	byID  map[string]domain.Part
}

// New returns a catalog seeded with the built-in mock parts.
func New() *Catalog {
	c := &Catalog{}
	c.replace(seedParts())
	return c
}

func (c *Catalog) replace(parts []domain.Part) {
	byID := make(map[string]domain.Part, len(parts))
	for _, p := range parts {
		byID[p.ID] = p
	}

	c.mu.Lock()
	c.parts = parts
	c.byID = byID
	c.mu.Unlock()
}

// LoadFromFile replaces the catalog contents with a JSON array of parts.
func (c *Catalog) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var parts []domain.Part
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(parts) == 0 {
		return fmt.Errorf("catalog file %s contains no parts", path)
	}

	c.replace(parts)
	return nil
}

// Get looks up a part by its id.
func (c *Catalog) Get(id string) (*domain.Part, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.byID[id]
	if !ok {
		return nil, ErrPartNotFound
	}
	return &p, nil
}

// List returns every part in catalog order.
func (c *Catalog) List() []domain.Part {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Part, len(c.parts))
	copy(out, c.parts)
	return out
}

// ValidateSearchTerm enforces the part-search rules: 3-40 characters of
// letters, digits, dashes, dots and spaces.
func ValidateSearchTerm(term string) error {
	if len(term) < 3 || len(term) > 40 {
		return fmt.Errorf("%w: must be 3-40 characters", ErrInvalidSearch)
	}
	if !searchTermPattern.MatchString(term) {
		return fmt.Errorf("%w: contains special characters", ErrInvalidSearch)
	}
	return nil
}

// Search filters parts by a case-insensitive name/description match and an
// optional category. An empty term matches everything; category "all" (or
// empty) disables the category filter.
func (c *Catalog) Search(term, category string) ([]domain.Part, error) {
	if term != "" {
		if err := ValidateSearchTerm(term); err != nil {
			return nil, err
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	term = strings.ToLower(term)
	out := make([]domain.Part, 0, len(c.parts))
	for _, p := range c.parts {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
