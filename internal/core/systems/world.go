// Package systems keeps the derived state of a drawing consistent with its
// authoritative geometry. Two passes run strictly in order every cycle:
// BoundsSync turns geometry changes into cached bounding boxes, then
// SpatialRelation turns bounding-box changes into spatial index updates.
// Each pass hands changes to the next through a replayable change log, so a
// pass never reaches into another pass's internals.
package systems

import (
	"github.com/draftline/draftline/internal/core/drawing"
	"github.com/draftline/draftline/internal/core/spatial"
)

// World bundles the state the systems operate on. Every dependency is
// carried explicitly; systems receive the World on each run instead of
// reaching for globals.
type World struct {
	Drawing *drawing.Store
	Bounds  *BoundsCache
	Space   *spatial.Space
}

// NewWorld wires a fresh bounds cache between a drawing and a space.
func NewWorld(store *drawing.Store, space *spatial.Space) *World {
	return &World{
		Drawing: store,
		Bounds:  NewBoundsCache(),
		Space:   space,
	}
}

// System is one consistency pass over the world.
type System interface {
	Name() string
	Run(w *World) error
}
