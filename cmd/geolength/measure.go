package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/janus/geo"
	"github.com/janus/geo/orbgeo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var errFeaturesFailed = errors.New("geolength: one or more features could not be measured")

type result struct {
	Index  int
	Type   string
	Length float64
	Err    error
}

func readFeatureCollection(input string, stdin io.Reader) (*geojson.FeatureCollection, error) {
	r := stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("read features: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read features: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("read features: decode: %w", err)
	}
	return fc, nil
}

// measure returns the length of every feature on e. The total is only
// valid if err is nil.
func measure(fc *geojson.FeatureCollection, e *geo.Ellipsoid) ([]result, float64, error) {
	results := make([]result, len(fc.Features))
	var total float64
	failed := false
	for i, f := range fc.Features {
		d, err := orbgeo.Length(f.Geometry, e)
		results[i] = result{Index: i, Type: geometryType(f.Geometry), Length: d, Err: err}
		if err != nil {
			failed = true
			continue
		}
		total += d
	}
	if failed {
		return results, 0, errFeaturesFailed
	}
	return results, total, nil
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "null"
	}
	return g.GeoJSONType()
}
