// Package geometry is the computational-geometry kernel for the drawing
// engine: vectors, points, lines, circular arcs with signed sweep angles,
// and axis-aligned bounding boxes. Everything here is a plain value with no
// dependencies on the rest of the engine.
package geometry

// Kind tags the concrete shape behind a Geometry value.
type Kind uint8

const (
	KindPoint Kind = iota
	KindLine
	KindArc
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Geometry is the closed set of shapes a drawing entity may carry. The only
// implementations are Point, Line and Arc; algorithms dispatch on the
// concrete type, Kind is for labelling.
type Geometry interface {
	Kind() Kind
	isGeometry()
}

// Kind reports KindPoint.
func (Point) Kind() Kind { return KindPoint }

// Kind reports KindLine.
func (Line) Kind() Kind { return KindLine }

// Kind reports KindArc.
func (Arc) Kind() Kind { return KindArc }

func (Point) isGeometry() {}
func (Line) isGeometry()  {}
func (Arc) isGeometry()   {}
