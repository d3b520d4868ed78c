package domain

import "time"

// Part categories as they appear in the catalog.
const (
	CategoryCPU         = "cpu"
	CategoryGPU         = "gpu"
	CategoryRAM         = "ram"
	CategoryStorage     = "storage"
	CategoryCase        = "case"
	CategoryPSU         = "psu"
	CategoryCooling     = "cooling"
	CategoryMotherboard = "motherboard"
)

// Project build categories selectable on the project form.
const (
	BuildGaming      = "gaming"
	BuildWorkstation = "workstation"
	BuildHomeServer  = "home-server"
	BuildBudget      = "budget"
	BuildOther       = "other"
)

// Part is a catalog component attached to a project. Price is kept in its
// stored form (possibly currency-formatted text) and normalized on read.
type Part struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       string  `json:"price"`
	Rating      float64 `json:"rating,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Project is a user-defined PC build. The full collection of a user's
// projects is persisted as one JSON blob; totals are never stored, they are
// recomputed from parts on every read.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Budget      string    `json:"budget"`
	Category    string    `json:"category"`
	Parts       []Part    `json:"parts"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasPart reports whether a part with the given id is already attached.
func (p *Project) HasPart(partID string) bool {
	for _, part := range p.Parts {
		if part.ID == partID {
			return true
		}
	}
	return false
}

// ProjectDraft carries the fields a user submits when creating a project.
type ProjectDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Budget      string `json:"budget"`
	Category    string `json:"category"`
}

// ProjectPatch carries optional updates; nil fields are left untouched.
type ProjectPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Budget      *string `json:"budget,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// ValidBuildCategory reports whether c is one of the selectable build types.
func ValidBuildCategory(c string) bool {
	switch c {
	case BuildGaming, BuildWorkstation, BuildHomeServer, BuildBudget, BuildOther:
		return true
	}
	return false
}
