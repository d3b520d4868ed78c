package service

import (
	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/domain"
	"github.com/pc-part-finder/go-partfinder-backend/internal/pricing"
)

// ProjectTotal sums the normalized part prices in attachment order. Prices
// that fail to normalize count as 0. A stored total is never trusted; this
// is recomputed on every read.
func ProjectTotal(p domain.Project) float64 {
	var total float64
	for _, part := range p.Parts {
		total += pricing.NormalizeOrZero(part.Price)
	}
	return total
}

// GrandTotal sums ProjectTotal over all projects in the ledger.
func GrandTotal(projects []domain.Project) float64 {
	var total float64
	for _, p := range projects {
		total += ProjectTotal(p)
	}
	return total
}
