// Package spatial keeps an incrementally-maintained spatial index over the
// entities of a drawing, answering "what is near this point" and "what
// overlaps this region" without scanning every entity.
package spatial

import (
	"github.com/draftline/draftline/internal/core/drawing"
	"github.com/draftline/draftline/internal/core/geometry"
)

// Handle identifies one record inside an Index for O(1) removal.
type Handle uint64

// SpatialEntity pairs an entity id with the bounds it was indexed under.
// The bounds are a snapshot: the index never re-derives them from geometry.
type SpatialEntity struct {
	Bounds geometry.BoundingBox
	Entity drawing.EntityID
}

// Index is a region tree over SpatialEntity records. Space drives any
// implementation the same way, so the tree structure can be swapped out
// without touching the bookkeeping above it.
type Index interface {
	// Insert stores a record and returns its handle. Reports false without
	// storing anything when the record's bounds fall outside the index's
	// world bound.
	Insert(item SpatialEntity) (Handle, bool)

	// Remove drops the record behind a handle. Reports false when the handle
	// is unknown.
	Remove(h Handle) bool

	// Query calls visit for every stored record whose bounds overlap region.
	// Returning false from visit stops the walk early.
	Query(region geometry.BoundingBox, visit func(SpatialEntity) bool)

	// Bound returns the world bound all stored records fit inside.
	Bound() geometry.BoundingBox

	// Len returns the number of stored records.
	Len() int

	// Clear drops every record but keeps the world bound.
	Clear()
}
