package spatial

import "github.com/draftline/draftline/internal/core/geometry"

const (
	// DefaultMaxDepth stops subdivision once quadrants get this deep.
	DefaultMaxDepth = 8
	// DefaultNodeCapacity is how many records a node holds before splitting.
	DefaultNodeCapacity = 16
)

// QuadTree is an Index backed by a classic region quadtree. Records that
// straddle a quadrant boundary stay at the node that first failed to push
// them down, so every record lives at exactly one node.
type QuadTree struct {
	root         *quadNode
	maxDepth     int
	nodeCapacity int
	nextHandle   Handle
	nodes        map[Handle]*quadNode
}

type quadNode struct {
	bound    geometry.BoundingBox
	depth    int
	records  []quadRecord
	children *[4]*quadNode
}

type quadRecord struct {
	handle Handle
	item   SpatialEntity
}

// NewQuadTree creates an empty tree covering bound. Non-positive maxDepth or
// nodeCapacity fall back to the defaults.
func NewQuadTree(bound geometry.BoundingBox, maxDepth, nodeCapacity int) *QuadTree {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if nodeCapacity <= 0 {
		nodeCapacity = DefaultNodeCapacity
	}
	return &QuadTree{
		root:         &quadNode{bound: bound},
		maxDepth:     maxDepth,
		nodeCapacity: nodeCapacity,
		nodes:        make(map[Handle]*quadNode),
	}
}

// Insert implements Index.
func (t *QuadTree) Insert(item SpatialEntity) (Handle, bool) {
	if !t.root.bound.FullyContains(item.Bounds) {
		return 0, false
	}

	t.nextHandle++
	h := t.nextHandle
	node := t.place(t.root, quadRecord{handle: h, item: item})
	t.nodes[h] = node
	return h, true
}

// place walks the record down to the deepest node that fully contains it and
// returns the node it ended up at.
func (t *QuadTree) place(n *quadNode, rec quadRecord) *quadNode {
	for {
		if n.children != nil {
			if child := n.childContaining(rec.item.Bounds); child != nil {
				n = child
				continue
			}
			n.records = append(n.records, rec)
			return n
		}

		if len(n.records) < t.nodeCapacity || n.depth >= t.maxDepth {
			n.records = append(n.records, rec)
			return n
		}

		t.split(n)
	}
}

// split subdivides a leaf and pushes down every record that fits entirely
// inside one quadrant.
func (t *QuadTree) split(n *quadNode) {
	centre := n.bound.Centre()
	quadrants := [4]geometry.BoundingBox{
		geometry.NewBoundingBox(n.bound.BottomLeft(), centre),
		geometry.NewBoundingBox(n.bound.BottomRight(), centre),
		geometry.NewBoundingBox(n.bound.TopLeft(), centre),
		geometry.NewBoundingBox(n.bound.TopRight(), centre),
	}

	var children [4]*quadNode
	for i, q := range quadrants {
		children[i] = &quadNode{bound: q, depth: n.depth + 1}
	}
	n.children = &children

	kept := n.records[:0]
	for _, rec := range n.records {
		if child := n.childContaining(rec.item.Bounds); child != nil {
			child.records = append(child.records, rec)
			t.nodes[rec.handle] = child
		} else {
			kept = append(kept, rec)
		}
	}
	n.records = kept
}

func (n *quadNode) childContaining(box geometry.BoundingBox) *quadNode {
	if n.children == nil {
		return nil
	}
	for _, child := range n.children {
		if child.bound.FullyContains(box) {
			return child
		}
	}
	return nil
}

// Remove implements Index.
func (t *QuadTree) Remove(h Handle) bool {
	node, ok := t.nodes[h]
	if !ok {
		return false
	}
	delete(t.nodes, h)

	for i, rec := range node.records {
		if rec.handle == h {
			last := len(node.records) - 1
			node.records[i] = node.records[last]
			node.records = node.records[:last]
			return true
		}
	}
	return false
}

// Query implements Index.
func (t *QuadTree) Query(region geometry.BoundingBox, visit func(SpatialEntity) bool) {
	t.root.query(region, visit)
}

func (n *quadNode) query(region geometry.BoundingBox, visit func(SpatialEntity) bool) bool {
	if !n.bound.Intersects(region) {
		return true
	}
	for _, rec := range n.records {
		if rec.item.Bounds.Intersects(region) {
			if !visit(rec.item) {
				return false
			}
		}
	}
	if n.children != nil {
		for _, child := range n.children {
			if !child.query(region, visit) {
				return false
			}
		}
	}
	return true
}

// Bound implements Index.
func (t *QuadTree) Bound() geometry.BoundingBox { return t.root.bound }

// Len implements Index.
func (t *QuadTree) Len() int { return len(t.nodes) }

// Clear implements Index.
func (t *QuadTree) Clear() {
	t.root = &quadNode{bound: t.root.bound}
	t.nodes = make(map[Handle]*quadNode)
}
