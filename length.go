package geo

// Measurer is implemented by geometries with a geodesic length: Line,
// LineString and MultiLineString.
type Measurer[T Float] interface {
	// VincentyLength returns the length on the WGS84 ellipsoid in meters.
	VincentyLength() (T, error)
	// GeodesicLength returns the length on e in meters.
	GeodesicLength(e *Ellipsoid) (T, error)
}

var (
	_ Measurer[float64] = Line[float64]{}
	_ Measurer[float64] = LineString[float64]{}
	_ Measurer[float32] = MultiLineString[float32]{}
)

// VincentyDistance returns the distance in meters between p and q on the
// WGS84 ellipsoid, or ErrFailedToConverge.
func (p Point[T]) VincentyDistance(q Point[T]) (T, error) {
	return p.GeodesicDistance(WGS84, q)
}

// GeodesicDistance returns the distance in meters between p and q on e.
//
// The calculation is carried out in float64 whatever T is. The result is
// exactly 0 when p == q and is the same for p.GeodesicDistance(e, q) and
// q.GeodesicDistance(e, p).
func (p Point[T]) GeodesicDistance(e *Ellipsoid, q Point[T]) (T, error) {
	if p == q {
		return 0, nil
	}
	var s12 float64
	err := e.Inverse(float64(p.Y), float64(p.X), float64(q.Y), float64(q.X), &s12, nil, nil)
	if err != nil {
		return 0, err
	}
	return T(s12), nil
}

// VincentyLength returns the distance between the endpoints of the line
// on the WGS84 ellipsoid (meters).
func (l Line[T]) VincentyLength() (T, error) {
	return l.GeodesicLength(WGS84)
}

// GeodesicLength returns the distance between the endpoints of the line
// on e (meters).
func (l Line[T]) GeodesicLength(e *Ellipsoid) (T, error) {
	start, end := l.Points()
	return start.GeodesicDistance(e, end)
}

// VincentyLength returns the length of the path on the WGS84 ellipsoid
// (meters).
func (ls LineString[T]) VincentyLength() (T, error) {
	return ls.GeodesicLength(WGS84)
}

// GeodesicLength returns the sum of the lengths of the path's lines on e.
// Paths with fewer than two coordinates have length 0. If any line fails
// to converge the error is returned and no partial length is reported.
func (ls LineString[T]) GeodesicLength(e *Ellipsoid) (T, error) {
	var length T
	for line := range ls.Lines() {
		d, err := line.GeodesicLength(e)
		if err != nil {
			return 0, err
		}
		length += d
	}
	return length, nil
}

// VincentyLength returns the summed length of all paths on the WGS84
// ellipsoid (meters).
func (mls MultiLineString[T]) VincentyLength() (T, error) {
	return mls.GeodesicLength(WGS84)
}

// GeodesicLength returns the summed length of all paths on e, stopping at
// the first path that fails to converge.
func (mls MultiLineString[T]) GeodesicLength(e *Ellipsoid) (T, error) {
	var length T
	for _, ls := range mls {
		d, err := ls.GeodesicLength(e)
		if err != nil {
			return 0, err
		}
		length += d
	}
	return length, nil
}
