// Package orbgeo measures github.com/paulmach/orb geometries with the
// geodesic routines of package geo.
//
// orb stores points as [lon, lat], which is the X/Y layout geo uses, so
// the conversions below copy coordinates without reordering them.
package orbgeo

import (
	"errors"
	"fmt"

	"github.com/janus/geo"
	"github.com/paulmach/orb"
)

// ErrUnsupportedGeometry is returned by Length for geometry types it does
// not know how to measure.
var ErrUnsupportedGeometry = errors.New("orbgeo: unsupported geometry type")

// Coord converts an orb point into a coordinate.
func Coord(p orb.Point) geo.Coord[float64] {
	return geo.Coord[float64]{X: p.Lon(), Y: p.Lat()}
}

// Point converts an orb point.
func Point(p orb.Point) geo.Point[float64] {
	return geo.NewPoint(p.Lon(), p.Lat())
}

// LineString converts an orb line string into a path.
func LineString(ls orb.LineString) geo.LineString[float64] {
	if ls == nil {
		return nil
	}
	path := make(geo.LineString[float64], len(ls))
	for i, p := range ls {
		path[i] = Coord(p)
	}
	return path
}

// MultiLineString converts an orb multi line string into a multipath.
func MultiLineString(mls orb.MultiLineString) geo.MultiLineString[float64] {
	if mls == nil {
		return nil
	}
	paths := make(geo.MultiLineString[float64], len(mls))
	for i, ls := range mls {
		paths[i] = LineString(ls)
	}
	return paths
}

// Ring converts a ring into a path. The ring is used as is, it is not
// closed if the last point differs from the first.
func Ring(r orb.Ring) geo.LineString[float64] {
	return LineString(orb.LineString(r))
}

// Polygon returns the boundary of the polygon, one path per ring.
func Polygon(p orb.Polygon) geo.MultiLineString[float64] {
	if p == nil {
		return nil
	}
	paths := make(geo.MultiLineString[float64], len(p))
	for i, r := range p {
		paths[i] = Ring(r)
	}
	return paths
}

// Length returns the geodesic length of the geometry on e in meters. For
// polygons and bounds this is the length of the boundary. Points have no
// length.
//
// A segment that fails to converge aborts the whole measurement; the error
// wraps geo.ErrFailedToConverge and no partial length is returned.
func Length(g orb.Geometry, e *geo.Ellipsoid) (float64, error) {
	var (
		length float64
		err    error
	)
	switch g := g.(type) {
	case nil, orb.Point, orb.MultiPoint:
		return 0, nil
	case orb.LineString:
		length, err = LineString(g).GeodesicLength(e)
	case orb.MultiLineString:
		length, err = MultiLineString(g).GeodesicLength(e)
	case orb.Ring:
		length, err = Ring(g).GeodesicLength(e)
	case orb.Polygon:
		length, err = Polygon(g).GeodesicLength(e)
	case orb.MultiPolygon:
		for _, p := range g {
			l, err := Length(p, e)
			if err != nil {
				return 0, err
			}
			length += l
		}
		return length, nil
	case orb.Collection:
		for _, c := range g {
			l, err := Length(c, e)
			if err != nil {
				return 0, err
			}
			length += l
		}
		return length, nil
	case orb.Bound:
		return Length(g.ToPolygon(), e)
	default:
		return 0, fmt.Errorf("length: %T: %w", g, ErrUnsupportedGeometry)
	}
	if err != nil {
		return 0, fmt.Errorf("length: %s: %w", g.GeoJSONType(), err)
	}
	return length, nil
}

// VincentyLength is Length on the WGS84 ellipsoid.
func VincentyLength(g orb.Geometry) (float64, error) {
	return Length(g, geo.WGS84)
}
