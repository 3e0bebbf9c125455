// Package drawing is the entity store for a drawing: stable numeric ids with
// typed attribute tables hanging off them. The geometry table is
// change-tracked so downstream consumers can replay exactly what changed
// since they last looked, in order, without polling every entity.
package drawing

// EntityID names one object in a drawing. Ids are allocated monotonically
// and never reused.
type EntityID uint64

// LineStyle is the stroke appearance of an entity.
type LineStyle struct {
	Colour string
	Width  float64
}

// Layer groups entities for visibility and z-ordering.
type Layer struct {
	Name   string
	Z      int
	Hidden bool
}
