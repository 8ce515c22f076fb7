package entitymodels

import "time"

// Talent is a candidate in the agency's pool, owned by the backend.
// Site, Cohort and Stack may be absent upstream; the talent handler fills
// them deterministically so a talent renders the same everywhere.
type Talent struct {
	ID        string
	Name      string
	Email     string
	Status    string
	Site      string
	Cohort    string
	Stack     string
	Skills    []Skill
	Languages []Language
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
