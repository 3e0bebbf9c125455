package systems

import (
	"fmt"
	"runtime"
	"time"

	"github.com/draftline/draftline/internal/core/algorithms"
	"github.com/draftline/draftline/internal/core/drawing"
	"github.com/draftline/draftline/internal/core/geometry"
	"github.com/draftline/draftline/internal/core/observability/log"
	"github.com/draftline/draftline/pkg/concurrent"
	"github.com/draftline/draftline/pkg/sequence"
)

// Scheduler runs the consistency passes over a world in a fixed order, one
// at a time. The order is what makes the pipeline correct: bounds are
// re-derived before the spatial index consumes them, so within a cycle the
// index never sees a box the geometry pass hasn't produced.
type Scheduler struct {
	world   *World
	systems []System
	logger  log.Log
}

// NewScheduler registers the standard two-pass pipeline against a world.
// The change-log cursors attach here, so every store mutation made after
// this call is picked up by the next RunCycle.
func NewScheduler(world *World, logger log.Log) *Scheduler {
	if logger == nil {
		logger = log.Provide()
	}
	return &Scheduler{
		world: world,
		systems: []System{
			NewBoundsSync(world),
			NewSpatialRelation(world),
		},
		logger: logger,
	}
}

// RunCycle runs every registered system once, strictly sequentially, and
// stops at the first failure.
func (s *Scheduler) RunCycle() error {
	for _, system := range s.systems {
		started := time.Now()
		if err := system.Run(s.world); err != nil {
			return fmt.Errorf("system %s: %w", system.Name(), err)
		}
		s.logger.Debug("system pass complete",
			log.String("system", system.Name()),
			log.Duration("elapsed", time.Since(started)),
		)
	}
	return nil
}

type entityGeometry struct {
	id drawing.EntityID
	g  geometry.Geometry
}

// CatchUp populates the bounds cache and the spatial index from every
// entity already holding geometry, for worlds whose store predates the
// scheduler. Bound computation fans out across CPUs; the cache and its
// change log are mutex-guarded and nothing queries the world until CatchUp
// returns, so the parallelism is invisible. Entities changed after the
// scheduler attached are not double-processed: this only reads the store,
// the change logs drive everything else.
func (s *Scheduler) CatchUp() error {
	started := time.Now()

	var pending []entityGeometry
	s.world.Drawing.EachGeometry(func(id drawing.EntityID, g geometry.Geometry) bool {
		pending = append(pending, entityGeometry{id: id, g: g})
		return true
	})

	err := concurrent.Concurrent(
		sequence.From(pending),
		runtime.NumCPU(),
		func(e entityGeometry) error {
			s.world.Bounds.Set(e.id, algorithms.Bounds(e.g))
			return nil
		},
	)
	if err != nil {
		return fmt.Errorf("catch-up bounds: %w", err)
	}

	// one spatial pass drains the cache changes the Sets just produced
	for _, system := range s.systems {
		if relation, ok := system.(*SpatialRelation); ok {
			if err := relation.Run(s.world); err != nil {
				return fmt.Errorf("system %s: %w", relation.Name(), err)
			}
		}
	}

	s.logger.Info("catch-up complete",
		log.Int("entities", len(pending)),
		log.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// Close detaches every system's change-log cursor.
func (s *Scheduler) Close() {
	for _, system := range s.systems {
		if closer, ok := system.(interface{ Close() }); ok {
			closer.Close()
		}
	}
}
