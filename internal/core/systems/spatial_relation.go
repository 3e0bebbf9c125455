package systems

import (
	"github.com/draftline/draftline/internal/core/drawing"
	"github.com/draftline/draftline/internal/core/spatial"
)

// SpatialRelation is the second consistency pass: it cursors the bounds
// cache's change log and keeps the Space in step. It only ever reads the
// cache, never the geometry, so it is entirely decoupled from how bounds
// are computed.
type SpatialRelation struct {
	reader *drawing.Reader
}

// NewSpatialRelation attaches a cursor to the world's bounds-cache change
// log.
func NewSpatialRelation(w *World) *SpatialRelation {
	return &SpatialRelation{reader: w.Bounds.Changes().NewReader()}
}

// Name implements System.
func (s *SpatialRelation) Name() string { return "spatial-relation" }

// Run implements System. Like BoundsSync, each change is resolved against
// the cache's current state, so redelivery converges.
func (s *SpatialRelation) Run(w *World) error {
	for _, change := range s.reader.Read() {
		switch change.Kind {
		case drawing.ChangeInserted, drawing.ChangeModified:
			box, ok := w.Bounds.Get(change.Entity)
			if !ok {
				w.Space.RemoveByID(change.Entity)
				continue
			}
			w.Space.Modify(spatial.SpatialEntity{Bounds: box, Entity: change.Entity})
		case drawing.ChangeRemoved:
			w.Space.RemoveByID(change.Entity)
		}
	}
	return nil
}

// Close detaches the change-log cursor.
func (s *SpatialRelation) Close() {
	s.reader.Close()
}
