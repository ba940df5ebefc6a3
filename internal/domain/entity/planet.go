// Package entity contains the core business objects of the project.
package entity

import "strings"

// Planet is a persisted planet record.
type Planet struct {
	ID      int64  `json:"id"`      // Store-assigned identifier, zero until persisted.
	Name    string `json:"name"`    // Unique planet name.
	Climate string `json:"climate"` // Free-form climate description, e.g. "arid".
	Terrain string `json:"terrain"` // Free-form terrain description, e.g. "desert".
}

// IsPersisted reports whether the store has assigned an identifier.
func (p *Planet) IsPersisted() bool {
	return p.ID != 0
}

// MissingFields returns the names of required attributes that are empty.
func (p *Planet) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.Climate) == "" {
		missing = append(missing, "climate")
	}
	if strings.TrimSpace(p.Terrain) == "" {
		missing = append(missing, "terrain")
	}

	return missing
}

// PlanetCriteria is a sparse filter over planet attributes.
// Empty fields do not constrain the lookup.
type PlanetCriteria struct {
	Climate string
	Terrain string
}
