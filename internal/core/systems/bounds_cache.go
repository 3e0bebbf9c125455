package systems

import (
	"sync"

	"github.com/draftline/draftline/internal/core/drawing"
	"github.com/draftline/draftline/internal/core/geometry"
)

// BoundsCache holds the cached bounding box of every entity with geometry.
// It is change-tracked the same way the drawing's geometry table is, so the
// spatial pass can cursor over "which boxes changed" instead of diffing the
// whole cache.
type BoundsCache struct {
	mx      sync.RWMutex
	boxes   map[drawing.EntityID]geometry.BoundingBox
	changes *drawing.ChangeLog
}

// NewBoundsCache creates an empty cache.
func NewBoundsCache() *BoundsCache {
	return &BoundsCache{
		boxes:   make(map[drawing.EntityID]geometry.BoundingBox),
		changes: drawing.NewChangeLog(),
	}
}

// Set caches an entity's bounds and logs whether it was an insert or an
// update.
func (c *BoundsCache) Set(id drawing.EntityID, box geometry.BoundingBox) {
	c.mx.Lock()
	_, existed := c.boxes[id]
	c.boxes[id] = box
	c.mx.Unlock()

	kind := drawing.ChangeInserted
	if existed {
		kind = drawing.ChangeModified
	}
	c.changes.Append(drawing.Change{Kind: kind, Entity: id})
}

// Delete drops an entity's cached bounds. Unknown entities are a no-op and
// log nothing.
func (c *BoundsCache) Delete(id drawing.EntityID) {
	c.mx.Lock()
	_, existed := c.boxes[id]
	delete(c.boxes, id)
	c.mx.Unlock()

	if existed {
		c.changes.Append(drawing.Change{Kind: drawing.ChangeRemoved, Entity: id})
	}
}

// Get returns an entity's cached bounds, if present.
func (c *BoundsCache) Get(id drawing.EntityID) (geometry.BoundingBox, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	box, ok := c.boxes[id]
	return box, ok
}

// Len returns the number of cached entries.
func (c *BoundsCache) Len() int {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return len(c.boxes)
}

// Changes exposes the cache's change log for readers to attach to.
func (c *BoundsCache) Changes() *drawing.ChangeLog {
	return c.changes
}
