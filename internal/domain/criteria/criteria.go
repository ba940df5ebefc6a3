// Package criteria turns sparse planet filters into equality specifications.
//
// A Specification is the AND of zero or more exact, case-sensitive column
// equalities. Only attributes listed in the field table can ever appear in a
// Specification, so the identifier is never matched on.
package criteria

import "planetapi/internal/domain/entity"

// Field names a filterable planet attribute by its storage column.
type Field string

const (
	FieldClimate Field = "climate"
	FieldTerrain Field = "terrain"
)

// Condition is a single exact-match constraint.
type Condition struct {
	Field Field
	Value string
}

// Specification is an ordered conjunction of conditions.
// The zero value matches every planet.
type Specification struct {
	conditions []Condition
}

type fieldAccessor struct {
	field     Field
	criterion func(entity.PlanetCriteria) string
}

// planetFields is the fixed set of matchable attributes, in the order their
// conditions are emitted.
var planetFields = []fieldAccessor{
	{
		field:     FieldClimate,
		criterion: func(c entity.PlanetCriteria) string { return c.Climate },
	},
	{
		field:     FieldTerrain,
		criterion: func(c entity.PlanetCriteria) string { return c.Terrain },
	},
}

// FromPlanet builds the specification for c. Empty criteria values are
// ignored; set values become exact-match conditions.
func FromPlanet(c entity.PlanetCriteria) Specification {
	var spec Specification
	for _, f := range planetFields {
		if value := f.criterion(c); value != "" {
			spec.conditions = append(spec.conditions, Condition{Field: f.field, Value: value})
		}
	}

	return spec
}

// Conditions returns a copy of the specification's conditions.
func (s Specification) Conditions() []Condition {
	if len(s.conditions) == 0 {
		return nil
	}
	out := make([]Condition, len(s.conditions))
	copy(out, s.conditions)

	return out
}
