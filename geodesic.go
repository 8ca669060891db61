// Package geo provides geographic primitives and geodesic distance and
// length calculations on an ellipsoidal model of the Earth using
// Vincenty's formulae.
package geo

import "errors"

// Defining parameters of the WGS84 ellipsoid.
// https://en.wikipedia.org/wiki/World_Geodetic_System
const (
	WGS84SemiMajorAxis = 6378137.0
	WGS84Flattening    = 1 / 298.257223563
	WGS84SemiMinorAxis = WGS84SemiMajorAxis * (1 - WGS84Flattening) // 6356752.314245...
)

// Defining parameters of the GRS80 ellipsoid.
const (
	GRS80SemiMajorAxis = 6378137.0
	GRS80Flattening    = 1 / 298.257222101
	GRS80SemiMinorAxis = GRS80SemiMajorAxis * (1 - GRS80Flattening)
)

// ErrFailedToConverge is returned when an iterative formula did not reach
// ConvergenceThreshold within MaxIterations, which mostly happens for
// nearly antipodal points.
var ErrFailedToConverge = errors.New("geo: vincenty formula failed to converge")

// WGS84 conforming ellipsoid
var WGS84 = NewEllipsoid(WGS84SemiMajorAxis, WGS84Flattening)

// GRS80 conforming ellipsoid
var GRS80 = NewEllipsoid(GRS80SemiMajorAxis, GRS80Flattening)

// Globe is a pre-initialized spherical representing Earth as a
// terrestrial globe.
var Globe = NewSpherical(WGS84SemiMajorAxis)

// Ellipsoid is an object for performing geodesic operations.
type Ellipsoid struct {
	a         float64 // semi-major axis
	b         float64 // semi-minor axis
	f         float64 // flattening
	spherical bool
}

// NewEllipsoid initializes a new geodesic ellipsoid object.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid.
//
// The WGS84 package-level variable is a pre-initialized ellipsoid
// representing Earth.
func NewEllipsoid(radius, flattening float64) *Ellipsoid {
	return &Ellipsoid{
		a: radius,
		b: radius * (1 - flattening),
		f: flattening,
	}
}

// NewSpherical initializes a new geodesic ellipsoid object that uses
// simplified operations on a sphere.
//
// The Inverse and Direct operations use great-circle calculations such as
// the Haversine formula and never fail to converge.
//
// Param radius is the equatorial radius (meters).
func NewSpherical(radius float64) *Ellipsoid {
	e := NewEllipsoid(radius, 0)
	e.spherical = true
	return e
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.a
}

// SemiMinorAxis of the Ellipsoid
func (e *Ellipsoid) SemiMinorAxis() float64 {
	return e.b
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.f
}

// Spherical returns true if the ellipsoid was initialized using NewSpherical.
func (e *Ellipsoid) Spherical() bool {
	return e.spherical
}

// Inverse solves the inverse geodesic problem.
//
// Param lat1 is latitude of point 1 (degrees).
// Param lon1 is longitude of point 1 (degrees).
// Param lat2 is latitude of point 2 (degrees).
// Param lon2 is longitude of point 2 (degrees).
// Out param s12 is a pointer to the distance from point 1 to point 2 (meters).
// Out param azi1 is a pointer to the azimuth at point 1 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// lat1 and lat2 should be in the range [-90,+90]; longitudes may be given in
// any range. The values of azi1 and azi2 returned are in the range
// [-180,+180]. Any of the out params may be nil.
//
// The result does not depend on the order of the two points: swapping them
// yields exactly the same s12.
//
// On ellipsoids the solution is found by iterating Vincenty's formula. If it
// does not converge ErrFailedToConverge is returned and the out params are
// left untouched.
func (e *Ellipsoid) Inverse(
	lat1, lon1, lat2, lon2 float64,
	s12, azi1, azi2 *float64,
) error {
	// Solve in a canonical order so the arithmetic is the same either way.
	swapped := lat2 < lat1 || (lat2 == lat1 && lon2 < lon1)
	if swapped {
		lat1, lon1, lat2, lon2 = lat2, lon2, lat1, lon1
	}

	var s, a1, a2 float64
	if e.spherical {
		s, a1, a2 = sphericalInverse(e.a, lat1, lon1, lat2, lon2)
	} else {
		var err error
		s, a1, a2, err = vincentyInverse(e, lat1, lon1, lat2, lon2)
		if err != nil {
			return err
		}
	}
	if swapped {
		// Reversing a geodesic turns each azimuth around.
		a1, a2 = wrap180(a2+180), wrap180(a1+180)
	}

	if s12 != nil {
		*s12 = s
	}
	if azi1 != nil {
		*azi1 = a1
	}
	if azi2 != nil {
		*azi2 = a2
	}
	return nil
}

// Direct solves the direct geodesic problem.
//
// Param lat1 is the latitude of point 1 (degrees).
// Param lon1 is the longitude of point 1 (degrees).
// Param azi1 is the azimuth at point 1 (degrees).
// Param s12 is the distance from point 1 to point 2 (meters). negative is ok.
// Out param lat2 is a pointer to the latitude of point 2 (degrees).
// Out param lon2 is a pointer to the longitude of point 2 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// lat1 should be in the range [-90,+90].
// The values of lon2 and azi2 returned are in the range [-180,+180].
// Any of the out params may be nil.
func (e *Ellipsoid) Direct(
	lat1, lon1, azi1, s12 float64,
	lat2, lon2, azi2 *float64,
) error {
	var la2, lo2, a2 float64
	if e.spherical {
		la2, lo2, a2 = sphericalDirect(e.a, lat1, lon1, azi1, s12)
	} else {
		var err error
		la2, lo2, a2, err = vincentyDirect(e, lat1, lon1, azi1, s12)
		if err != nil {
			return err
		}
	}
	if lat2 != nil {
		*lat2 = la2
	}
	if lon2 != nil {
		*lon2 = lo2
	}
	if azi2 != nil {
		*azi2 = a2
	}
	return nil
}

// Polyline accumulates the length of a geodesic polyline one vertex at a
// time. This must be initialized from Ellipsoid.PolylineInit before use.
//
// Once a segment fails to converge the polyline stays failed: AddPoint and
// Compute keep returning ErrFailedToConverge until Clear is called.
type Polyline struct {
	e        *Ellipsoid
	num      int
	lat, lon float64
	length   float64
	err      error
}

// PolylineInit initializes a polyline.
func (e *Ellipsoid) PolylineInit() Polyline {
	return Polyline{e: e}
}

// AddPoint adds a vertex to the polyline.
//
// Param lat is the latitude of the point (degrees).
// Param lon is the longitude of the point (degrees).
func (p *Polyline) AddPoint(lat, lon float64) error {
	if p.err != nil {
		return p.err
	}
	if p.num > 0 {
		var s12 float64
		if err := p.e.Inverse(p.lat, p.lon, lat, lon, &s12, nil, nil); err != nil {
			p.err = err
			return err
		}
		p.length += s12
	}
	p.lat, p.lon = lat, lon
	p.num++
	return nil
}

// Compute the length of the polyline so far.
//
// Out param length is a pointer to the length of the polyline (meters). It
// may be nil.
// Returns the number of points, or an error if any segment failed.
//
// More points can be added to the polyline after this call.
func (p *Polyline) Compute(length *float64) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	if length != nil {
		*length = p.length
	}
	return p.num, nil
}

// Clear the polyline, allowing a new polyline to be started.
func (p *Polyline) Clear() {
	*p = Polyline{e: p.e}
}
