package geo

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/geodesic"
)

func eqish(x, y float64, prec int) bool {
	return math.Abs(x-y) < float64(1.0)/math.Pow10(prec)
}

// dms converts degrees, minutes and seconds to decimal degrees.
func dms(d, m, s float64) float64 {
	if d < 0 {
		return d - m/60 - s/3600
	}
	return d + m/60 + s/3600
}

// randPair returns two points whose longitudes are at most 90° apart, far
// away from the nearly antipodal region where Vincenty may not converge.
func randPair(rng *rand.Rand) (lat1, lon1, lat2, lon2 float64) {
	lat1 = rng.Float64()*160 - 80
	lon1 = rng.Float64()*360 - 180
	lat2 = rng.Float64()*160 - 80
	lon2 = wrap180(lon1 + rng.Float64()*180 - 90)
	return lat1, lon1, lat2, lon2
}

func TestFlindersPeakToBuninyong(t *testing.T) {
	// Geoscience Australia's worked example for Vincenty's formulae.
	lat1, lon1 := dms(-37, 57, 3.72030), dms(144, 25, 29.52440)
	lat2, lon2 := dms(-37, 39, 10.15610), dms(143, 55, 35.38390)

	var s12, azi1, azi2 float64
	require.NoError(t, GRS80.Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, &azi2))
	if !eqish(s12, 54972.271, 3) {
		t.Fatalf("expected %f, got %f", 54972.271, s12)
	}
	if !eqish(azi1, wrap180(dms(306, 52, 5.37)), 5) {
		t.Fatalf("expected azimuth %f, got %f", wrap180(dms(306, 52, 5.37)), azi1)
	}
	// the published reverse azimuth points back to Flinders Peak
	if !eqish(azi2, wrap180(dms(127, 10, 25.07)-180), 5) {
		t.Fatalf("expected azimuth %f, got %f", wrap180(dms(127, 10, 25.07)-180), azi2)
	}

	var la2, lo2 float64
	require.NoError(t, GRS80.Direct(lat1, lon1, dms(306, 52, 5.37), 54972.271, &la2, &lo2, nil))
	if !eqish(la2, lat2, 6) || !eqish(lo2, lon2, 6) {
		t.Fatalf("expected '%f, %f', got '%f, %f'", lat2, lon2, la2, lo2)
	}
}

func TestInverseAgainstKarney(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20_000; i++ {
		lat1, lon1, lat2, lon2 := randPair(rng)
		testInverse(t, lat1, lon1, lat2, lon2)
	}
}

func testInverse(t *testing.T, lat1, lon1, lat2, lon2 float64) {
	t.Helper()
	var s12, azi1, azi2 float64
	geodesic.WGS84.Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, &azi2)

	var s12ret, azi1ret, azi2ret float64
	if err := WGS84.Inverse(lat1, lon1, lat2, lon2, &s12ret, &azi1ret, &azi2ret); err != nil {
		t.Fatalf("inverse (%f %f %f %f): %v", lat1, lon1, lat2, lon2, err)
	}
	if !eqish(s12ret, s12, 3) || !eqish(azi1ret, azi1, 6) || !eqish(azi2ret, azi2, 6) {
		t.Fatalf("expected '%f, %f, %f', got '%f, %f, %f'",
			s12, azi1, azi2, s12ret, azi1ret, azi2ret)
	}
}

func TestDirectRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20_000; i++ {
		lat1, lon1, lat2, lon2 := randPair(rng)
		var s12, azi1, azi2 float64
		require.NoError(t, WGS84.Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, &azi2))

		var lat2ret, lon2ret, azi2ret float64
		require.NoError(t, WGS84.Direct(lat1, lon1, azi1, s12, &lat2ret, &lon2ret, &azi2ret))
		if !eqish(lat2ret, lat2, 7) || !eqish(wrap180(lon2ret-lon2), 0, 7) || !eqish(azi2ret, azi2, 6) {
			t.Logf("direct   'lat1: %f, lon1: %f, azi1: %f, s12: %f'\n", lat1, lon1, azi1, s12)
			t.Logf("expected 'lat2: %f, lon2: %f, azi2: %f'\n", lat2, lon2, azi2)
			t.Logf("got      'lat2: %f, lon2: %f, azi2: %f'", lat2ret, lon2ret, azi2ret)
			t.FailNow()
		}
	}
}

func TestDirectZeroDistance(t *testing.T) {
	var lat2, lon2, azi2 float64
	require.NoError(t, WGS84.Direct(50, 10, 45, 0, &lat2, &lon2, &azi2))
	assert.InDelta(t, 50.0, lat2, 1e-12)
	assert.InDelta(t, 10.0, lon2, 1e-12)
	assert.InDelta(t, 45.0, azi2, 1e-9)
}

func TestInverseNilOutParams(t *testing.T) {
	require.NoError(t, WGS84.Inverse(10, 20, 30, 40, nil, nil, nil))
	require.NoError(t, WGS84.Direct(10, 20, 30, 1000, nil, nil, nil))
}

func TestInverseFailureLeavesOutParams(t *testing.T) {
	s12, azi1, azi2 := -1.0, -1.0, -1.0
	err := WGS84.Inverse(0, 0, 0, 180, &s12, &azi1, &azi2)
	require.ErrorIs(t, err, ErrFailedToConverge)
	assert.Equal(t, -1.0, s12)
	assert.Equal(t, -1.0, azi1)
	assert.Equal(t, -1.0, azi2)
}

func TestEllipsoid(t *testing.T) {
	assert.Equal(t, WGS84SemiMajorAxis, WGS84.Radius())
	assert.Equal(t, WGS84Flattening, WGS84.Flattening())
	assert.InDelta(t, 6356752.314245, WGS84.SemiMinorAxis(), 1e-6)
	assert.InDelta(t, 6356752.314140, GRS80.SemiMinorAxis(), 1e-6)
	assert.False(t, WGS84.Spherical())

	e := NewEllipsoid(6378388, 1/297.0)
	assert.Equal(t, 6378388.0, e.Radius())
	assert.InDelta(t, 6378388*(1-1/297.0), e.SemiMinorAxis(), 1e-6)
}

func TestPolyline(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	lat, lon := rng.Float64()*160-80, rng.Float64()*360-180

	ref := geodesic.WGS84.PolygonInit(true)
	p := WGS84.PolylineInit()
	ref.AddPoint(lat, lon)
	require.NoError(t, p.AddPoint(lat, lon))
	for i := 0; i < 50; i++ {
		lat = math.Max(-80, math.Min(80, lat+rng.Float64()*10-5))
		lon = wrap180(lon + rng.Float64()*10 - 5)
		ref.AddPoint(lat, lon)
		require.NoError(t, p.AddPoint(lat, lon))
	}

	var want, got float64
	ref.Compute(false, false, nil, &want)
	n, err := p.Compute(&got)
	require.NoError(t, err)
	assert.Equal(t, 51, n)
	if !eqish(got, want, 2) {
		t.Fatalf("expected %f, got %f", want, got)
	}

	p.Clear()
	n, err = p.Compute(&got)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0.0, got)
}

func TestPolylineStaysFailed(t *testing.T) {
	p := WGS84.PolylineInit()
	require.NoError(t, p.AddPoint(0, 0))
	require.NoError(t, p.AddPoint(0, 10))
	require.ErrorIs(t, p.AddPoint(0, -170), ErrFailedToConverge)

	// a well behaved segment afterwards does not revive it
	err := p.AddPoint(0, -169)
	require.ErrorIs(t, err, ErrFailedToConverge)

	length := -1.0
	_, err = p.Compute(&length)
	require.True(t, errors.Is(err, ErrFailedToConverge))
	assert.Equal(t, -1.0, length)

	p.Clear()
	require.NoError(t, p.AddPoint(0, 0))
	require.NoError(t, p.AddPoint(0, 1))
	n, err := p.Compute(&length)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 111319.491, length, 1e-3)
}

func TestSpherical(t *testing.T) {

	if !Globe.Spherical() {
		t.Fatal()
	}
	if Globe.Flattening() != 0 {
		t.Fatal()
	}
	if wrap180(-181) != 179 {
		t.Fatal()
	}
	if wrap180(+181) != -179 {
		t.Fatal()
	}

	rng := rand.New(rand.NewSource(4))

	// Vincenty on a sphere converges on the first iteration, so it must
	// agree with the great-circle formulas everywhere.
	e := NewEllipsoid(Globe.Radius(), 0)
	for i := 0; i < 200_000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*180 - 90
		lon2 := rng.Float64()*360 - 180

		var s12, azi1, azi2 float64
		if err := e.Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, &azi2); err != nil {
			t.Fatalf("inverse failure (%f %f %f %f): %v", lat1, lon1, lat2, lon2, err)
		}

		var ret [3]float64
		if err := Globe.Inverse(lat1, lon1, lat2, lon2, &ret[0], &ret[1], &ret[2]); err != nil {
			t.Fatal(err)
		}
		if !eqish(ret[0], s12, 4) ||
			!eqish(ret[1], azi1, 4) ||
			!eqish(ret[2], azi2, 4) {
			t.Fatalf("inverse failure (%f %f %f %f %f %f %f)",
				lat1, lon1, lat2, lon2, s12, azi1, azi2)
		}
		if err := Globe.Direct(lat1, lon1, azi1, s12, &ret[0], &ret[1], &ret[2]); err != nil {
			t.Fatal(err)
		}
		if !eqish(ret[0], lat2, 4) ||
			!eqish(wrap180(ret[1]-lon2), 0, 4) ||
			!eqish(ret[2], azi2, 4) {
			t.Fatalf("direct failure (%f %f %f %f %f %f %f)",
				lat1, lon1, lat2, lon2, s12, azi1, azi2)
		}
	}
}
