package geometry

import "math"

// BoundingBox is the smallest axis-aligned rectangle containing a shape. It
// is always a derived, cached value, never authoritative geometry.
type BoundingBox struct {
	bottomLeft Point
	topRight   Point
}

// NewBoundingBox creates a box around two points, normalising the corners so
// the invariant bottomLeft <= topRight holds componentwise.
func NewBoundingBox(first, second Point) BoundingBox {
	return BoundingBox{
		bottomLeft: Pt(math.Min(first.X, second.X), math.Min(first.Y, second.Y)),
		topRight:   Pt(math.Max(first.X, second.X), math.Max(first.Y, second.Y)),
	}
}

// BoxFromCentreAndDimensions creates a box from its centre, width and height.
func BoxFromCentreAndDimensions(centre Point, width, height float64) BoundingBox {
	diagonal := Vec(width/2, height/2)
	return NewBoundingBox(centre.Add(diagonal.Neg()), centre.Add(diagonal))
}

// BoxAround returns the exact min/max rectangle containing every point.
// Reports false for an empty set.
func BoxAround(points []Point) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}

	box := NewBoundingBox(points[0], points[0])
	for _, p := range points[1:] {
		box = box.ExpandedToInclude(p)
	}
	return box, true
}

// Width returns the box's extent in the X direction.
func (b BoundingBox) Width() float64 { return b.topRight.X - b.bottomLeft.X }

// Height returns the box's extent in the Y direction.
func (b BoundingBox) Height() float64 { return b.topRight.Y - b.bottomLeft.Y }

// Area returns the box's area.
func (b BoundingBox) Area() float64 { return b.Width() * b.Height() }

// Diagonal returns the vector from the bottom-left corner to the top-right.
func (b BoundingBox) Diagonal() Vector { return b.topRight.Sub(b.bottomLeft) }

// Centre returns the box's centre point.
func (b BoundingBox) Centre() Point {
	return b.bottomLeft.Midpoint(b.topRight)
}

// BottomLeft returns the bottom-left corner.
func (b BoundingBox) BottomLeft() Point { return b.bottomLeft }

// BottomRight returns the bottom-right corner.
func (b BoundingBox) BottomRight() Point {
	return Pt(b.topRight.X, b.bottomLeft.Y)
}

// TopLeft returns the top-left corner.
func (b BoundingBox) TopLeft() Point {
	return Pt(b.bottomLeft.X, b.topRight.Y)
}

// TopRight returns the top-right corner.
func (b BoundingBox) TopRight() Point { return b.topRight }

// MinX returns the smallest X value inside the box.
func (b BoundingBox) MinX() float64 { return b.bottomLeft.X }

// MinY returns the smallest Y value inside the box.
func (b BoundingBox) MinY() float64 { return b.bottomLeft.Y }

// MaxX returns the largest X value inside the box.
func (b BoundingBox) MaxX() float64 { return b.topRight.X }

// MaxY returns the largest Y value inside the box.
func (b BoundingBox) MaxY() float64 { return b.topRight.Y }

// Merge returns the smallest box containing both boxes.
func (b BoundingBox) Merge(o BoundingBox) BoundingBox {
	return BoundingBox{
		bottomLeft: Pt(math.Min(b.MinX(), o.MinX()), math.Min(b.MinY(), o.MinY())),
		topRight:   Pt(math.Max(b.MaxX(), o.MaxX()), math.Max(b.MaxY(), o.MaxY())),
	}
}

// ExpandedToInclude returns the smallest box containing this box and a point.
func (b BoundingBox) ExpandedToInclude(p Point) BoundingBox {
	return BoundingBox{
		bottomLeft: Pt(math.Min(b.MinX(), p.X), math.Min(b.MinY(), p.Y)),
		topRight:   Pt(math.Max(b.MaxX(), p.X), math.Max(b.MaxY(), p.Y)),
	}
}

// Grown returns the box scaled about its centre by factor. Factors below one
// shrink the box; Grown never moves the centre.
func (b BoundingBox) Grown(factor float64) BoundingBox {
	half := b.Diagonal().Scale(factor / 2)
	centre := b.Centre()
	return NewBoundingBox(centre.Add(half.Neg()), centre.Add(half))
}

// FullyContains reports whether other lies entirely inside this box.
func (b BoundingBox) FullyContains(other BoundingBox) bool {
	return b.MinX() <= other.MinX() &&
		other.MaxX() <= b.MaxX() &&
		b.MinY() <= other.MinY() &&
		other.MaxY() <= b.MaxY()
}

// ContainsPoint reports whether a point lies inside the box, boundary
// included.
func (b BoundingBox) ContainsPoint(p Point) bool {
	return b.MinX() <= p.X && p.X <= b.MaxX() &&
		b.MinY() <= p.Y && p.Y <= b.MaxY()
}

// Intersects reports whether two boxes overlap, boundary contact included.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.MinX() <= other.MaxX() && other.MinX() <= b.MaxX() &&
		b.MinY() <= other.MaxY() && other.MinY() <= b.MaxY()
}
