package drawing

import (
	"sync"

	"github.com/draftline/draftline/internal/core/geometry"
)

// Store holds the entities of one drawing and their attributes. Geometry is
// the authoritative, change-tracked attribute; style and layer are plain
// lookups. The store hands out monotonically increasing ids and never reuses
// one, so a stale id can't silently alias a newer entity.
type Store struct {
	mx     sync.Mutex
	nextID EntityID
	alive  map[EntityID]struct{}

	geometries *shardedTable[geometry.Geometry]
	styles     *shardedTable[LineStyle]
	layers     *shardedTable[Layer]

	changes *ChangeLog
}

// NewStore creates an empty drawing.
func NewStore() *Store {
	return &Store{
		alive:      make(map[EntityID]struct{}),
		geometries: newShardedTable[geometry.Geometry](0),
		styles:     newShardedTable[LineStyle](0),
		layers:     newShardedTable[Layer](0),
		changes:    NewChangeLog(),
	}
}

// CreateEntity allocates a fresh entity with no attributes.
func (s *Store) CreateEntity() EntityID {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.nextID++
	id := s.nextID
	s.alive[id] = struct{}{}
	return id
}

// DeleteEntity drops an entity and all of its attributes. Dropping tracked
// geometry is logged so downstream state gets cleaned up. Unknown ids are a
// no-op.
func (s *Store) DeleteEntity(id EntityID) {
	s.mx.Lock()
	if _, ok := s.alive[id]; !ok {
		s.mx.Unlock()
		return
	}
	delete(s.alive, id)
	s.mx.Unlock()

	if s.geometries.Delete(id) {
		s.changes.Append(Change{Kind: ChangeRemoved, Entity: id})
	}
	s.styles.Delete(id)
	s.layers.Delete(id)
}

// Contains reports whether id names a live entity.
func (s *Store) Contains(id EntityID) bool {
	s.mx.Lock()
	defer s.mx.Unlock()

	_, ok := s.alive[id]
	return ok
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return len(s.alive)
}

// SetGeometry sets or replaces an entity's geometry and logs the change.
// Setting geometry on a deleted or unknown entity is a no-op.
func (s *Store) SetGeometry(id EntityID, g geometry.Geometry) {
	if !s.Contains(id) {
		return
	}

	kind := ChangeInserted
	if s.geometries.Contains(id) {
		kind = ChangeModified
	}
	s.geometries.Set(id, g)
	s.changes.Append(Change{Kind: kind, Entity: id})
}

// Geometry returns an entity's geometry, if it has one.
func (s *Store) Geometry(id EntityID) (geometry.Geometry, bool) {
	return s.geometries.Get(id)
}

// RemoveGeometry drops an entity's geometry and logs the removal. Entities
// without geometry are a no-op.
func (s *Store) RemoveGeometry(id EntityID) {
	if s.geometries.Delete(id) {
		s.changes.Append(Change{Kind: ChangeRemoved, Entity: id})
	}
}

// EachGeometry visits every entity currently holding geometry. Returning
// false stops the walk. Visit order is unspecified.
func (s *Store) EachGeometry(visit func(EntityID, geometry.Geometry) bool) {
	s.geometries.Each(visit)
}

// GeometryCount returns the number of entities holding geometry.
func (s *Store) GeometryCount() int {
	return s.geometries.Len()
}

// Changes exposes the geometry change log for readers to attach to.
func (s *Store) Changes() *ChangeLog {
	return s.changes
}

// SetStyle sets an entity's stroke style.
func (s *Store) SetStyle(id EntityID, style LineStyle) {
	if !s.Contains(id) {
		return
	}
	s.styles.Set(id, style)
}

// Style returns an entity's stroke style, if set.
func (s *Store) Style(id EntityID) (LineStyle, bool) {
	return s.styles.Get(id)
}

// SetLayer assigns an entity to a layer.
func (s *Store) SetLayer(id EntityID, layer Layer) {
	if !s.Contains(id) {
		return
	}
	s.layers.Set(id, layer)
}

// Layer returns an entity's layer, if assigned.
func (s *Store) Layer(id EntityID) (Layer, bool) {
	return s.layers.Get(id)
}
