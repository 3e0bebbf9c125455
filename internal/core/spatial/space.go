package spatial

import (
	"fmt"

	"github.com/draftline/draftline/internal/core/drawing"
	"github.com/draftline/draftline/internal/core/geometry"
	"github.com/draftline/draftline/internal/core/observability/log"
)

// DefaultWorldRadius is the half-extent of the square world bound a Space
// starts with when the options don't say otherwise.
const DefaultWorldRadius = 1e6

// growthFactor pads the merged bound on a rebuild so a run of entities
// drifting outward doesn't trigger a rebuild per entity.
const growthFactor = 2.0

// IndexFactory builds an empty Index covering bound.
type IndexFactory func(bound geometry.BoundingBox) Index

// Options tune a Space. The zero value is usable.
type Options struct {
	// WorldRadius is the half-extent of the initial square world bound.
	// Defaults to DefaultWorldRadius.
	WorldRadius float64
	// MaxDepth and NodeCapacity are passed through to the default quadtree
	// factory. Ignored when NewIndex is set.
	MaxDepth     int
	NodeCapacity int
	// NewIndex overrides the backing tree implementation.
	NewIndex IndexFactory
	// Logger receives rebuild diagnostics. Defaults to the process logger.
	Logger log.Log
}

// Space is the live spatial index over a drawing: at most one record per
// entity, locatable by region or point queries. Space owns the bookkeeping
// (entity to handle mapping, world-bound growth) and delegates the tree
// structure to an Index.
//
// Space is not safe for concurrent use. The systems that feed it run
// strictly sequentially.
type Space struct {
	index    Index
	handles  map[drawing.EntityID]Handle
	newIndex IndexFactory
	logger   log.Log
}

// NewSpace creates an empty Space.
func NewSpace(opts Options) *Space {
	radius := opts.WorldRadius
	if radius <= 0 {
		radius = DefaultWorldRadius
	}
	factory := opts.NewIndex
	if factory == nil {
		factory = func(bound geometry.BoundingBox) Index {
			return NewQuadTree(bound, opts.MaxDepth, opts.NodeCapacity)
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Provide()
	}

	bound := geometry.BoxFromCentreAndDimensions(geometry.Pt(0, 0), 2*radius, 2*radius)
	return &Space{
		index:    factory(bound),
		handles:  make(map[drawing.EntityID]Handle),
		newIndex: factory,
		logger:   logger,
	}
}

// Modify upserts the record for an entity: any stale record is removed
// first, so an entity never has two records. When the new bounds fall
// outside the world bound the Space grows to fit and reindexes every record.
func (s *Space) Modify(item SpatialEntity) {
	if h, ok := s.handles[item.Entity]; ok {
		s.index.Remove(h)
		delete(s.handles, item.Entity)
	}

	h, ok := s.index.Insert(item)
	if !ok {
		s.grow(item.Bounds)
		h, ok = s.index.Insert(item)
		if !ok {
			panic(fmt.Sprintf(
				"spatial: bounds %+v still outside world bound %+v after growth",
				item.Bounds, s.index.Bound(),
			))
		}
	}
	s.handles[item.Entity] = h
}

// grow rebuilds the index with a world bound large enough for outlier. The
// world bound only ever grows.
func (s *Space) grow(outlier geometry.BoundingBox) {
	oldBound := s.index.Bound()
	newBound := oldBound.Merge(outlier).Grown(growthFactor)

	items := make([]SpatialEntity, 0, s.index.Len())
	s.index.Query(oldBound, func(item SpatialEntity) bool {
		items = append(items, item)
		return true
	})

	rebuilt := s.newIndex(newBound)
	handles := make(map[drawing.EntityID]Handle, len(items))
	for _, item := range items {
		h, ok := rebuilt.Insert(item)
		if !ok {
			panic(fmt.Sprintf(
				"spatial: record %+v lost while growing world bound to %+v",
				item, newBound,
			))
		}
		handles[item.Entity] = h
	}

	s.index = rebuilt
	s.handles = handles

	s.logger.Info("spatial index rebuilt with larger world bound",
		log.Float64("old_width", oldBound.Width()),
		log.Float64("new_width", newBound.Width()),
		log.Int("records", len(items)),
	)
}

// Remove drops the record for an entity. A missing record is a no-op.
func (s *Space) Remove(item SpatialEntity) {
	s.RemoveByID(item.Entity)
}

// RemoveByID drops the record for an entity id. A missing record is a no-op.
func (s *Space) RemoveByID(id drawing.EntityID) {
	h, ok := s.handles[id]
	if !ok {
		return
	}
	s.index.Remove(h)
	delete(s.handles, id)
}

// QueryPoint returns every record whose bounds overlap the axis-aligned
// square circumscribing the circle of the given radius around point.
func (s *Space) QueryPoint(point geometry.Point, radius float64) []SpatialEntity {
	region := geometry.BoxFromCentreAndDimensions(point, 2*radius, 2*radius)
	return s.QueryRegion(region)
}

// QueryRegion returns every record whose bounds overlap region.
func (s *Space) QueryRegion(region geometry.BoundingBox) []SpatialEntity {
	var found []SpatialEntity
	s.index.Query(region, func(item SpatialEntity) bool {
		found = append(found, item)
		return true
	})
	return found
}

// Clear drops every record. The world bound is kept, so a cleared Space
// doesn't shrink back under entities it has already seen.
func (s *Space) Clear() {
	s.index.Clear()
	s.handles = make(map[drawing.EntityID]Handle)
}

// Len returns the number of indexed entities.
func (s *Space) Len() int { return len(s.handles) }

// WorldBound returns the current world bound.
func (s *Space) WorldBound() geometry.BoundingBox { return s.index.Bound() }
