package geo

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Float is the set of numeric types the geometry types can be built on.
type Float interface {
	constraints.Float
}

// Coord is a two dimensional coordinate. When used for geodesic
// operations X is the longitude and Y is the latitude, both in degrees.
type Coord[T Float] struct {
	X T
	Y T
}

// Point is a single geographic location.
type Point[T Float] struct {
	Coord[T]
}

// NewPoint returns a point at x (longitude) and y (latitude).
func NewPoint[T Float](x, y T) Point[T] {
	return Point[T]{Coord[T]{X: x, Y: y}}
}

// Lon returns the longitude of the point (degrees).
func (p Point[T]) Lon() T { return p.X }

// Lat returns the latitude of the point (degrees).
func (p Point[T]) Lat() T { return p.Y }

// Line is a line segment made up of exactly two coordinates.
type Line[T Float] struct {
	Start Coord[T]
	End   Coord[T]
}

// NewLine creates a new line segment.
func NewLine[T Float](start, end Coord[T]) Line[T] {
	return Line[T]{Start: start, End: end}
}

// Dx is the difference in X components, End.X - Start.X.
func (l Line[T]) Dx() T { return l.End.X - l.Start.X }

// Dy is the difference in Y components, End.Y - Start.Y.
func (l Line[T]) Dy() T { return l.End.Y - l.Start.Y }

// Slope is Dy/Dx. Swapping the endpoints does not change it.
func (l Line[T]) Slope() T { return l.Dy() / l.Dx() }

// Determinant of the line. Swapping the endpoints negates it.
func (l Line[T]) Determinant() T {
	return l.Start.X*l.End.Y - l.Start.Y*l.End.X
}

func (l Line[T]) StartPoint() Point[T] { return Point[T]{l.Start} }

func (l Line[T]) EndPoint() Point[T] { return Point[T]{l.End} }

// Points returns the start and end points.
func (l Line[T]) Points() (Point[T], Point[T]) {
	return l.StartPoint(), l.EndPoint()
}

// LineString is an ordered sequence of coordinates representing a path
// between locations.
type LineString[T Float] []Coord[T]

// NumCoords returns the number of coordinates in the path.
func (ls LineString[T]) NumCoords() int { return len(ls) }

// Lines returns a sequence yielding one Line for each pair of adjacent
// coordinates, in order. A path of n >= 2 coordinates yields n-1 lines;
// shorter paths yield nothing.
//
// The sequence may be ranged over more than once and always reflects the
// current contents of the path.
func (ls LineString[T]) Lines() iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		for i := 1; i < len(ls); i++ {
			if !yield(Line[T]{Start: ls[i-1], End: ls[i]}) {
				return
			}
		}
	}
}

// Points returns a sequence over the coordinates of the path as points.
func (ls LineString[T]) Points() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for _, c := range ls {
			if !yield(Point[T]{c}) {
				return
			}
		}
	}
}

// MultiLineString is an ordered collection of paths.
type MultiLineString[T Float] []LineString[T]

// Lines yields the lines of every path, in path order and then in line
// order within each path.
func (mls MultiLineString[T]) Lines() iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		for _, ls := range mls {
			for line := range ls.Lines() {
				if !yield(line) {
					return
				}
			}
		}
	}
}
