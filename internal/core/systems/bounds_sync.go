package systems

import (
	"github.com/draftline/draftline/internal/core/algorithms"
	"github.com/draftline/draftline/internal/core/drawing"
)

// BoundsSync is the first consistency pass: it cursors the drawing's
// geometry change log and keeps the bounds cache in step.
type BoundsSync struct {
	reader *drawing.Reader
}

// NewBoundsSync attaches a cursor to the world's geometry change log.
// Changes made before the attach are invisible to it; use Scheduler.CatchUp
// for pre-existing state.
func NewBoundsSync(w *World) *BoundsSync {
	return &BoundsSync{reader: w.Drawing.Changes().NewReader()}
}

// Name implements System.
func (s *BoundsSync) Name() string { return "bounds-sync" }

// Run implements System. Each change is resolved against the store's
// current state rather than trusting the change kind, so a redelivered or
// stale change converges on the same cache instead of corrupting it.
func (s *BoundsSync) Run(w *World) error {
	for _, change := range s.reader.Read() {
		switch change.Kind {
		case drawing.ChangeInserted, drawing.ChangeModified:
			g, ok := w.Drawing.Geometry(change.Entity)
			if !ok {
				// deleted again since the change was logged
				w.Bounds.Delete(change.Entity)
				continue
			}
			w.Bounds.Set(change.Entity, algorithms.Bounds(g))
		case drawing.ChangeRemoved:
			w.Bounds.Delete(change.Entity)
		}
	}
	return nil
}

// Close detaches the change-log cursor.
func (s *BoundsSync) Close() {
	s.reader.Close()
}
