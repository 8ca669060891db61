// Ellipsoidal routines for the geo package
//
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */
/* Vincenty Direct and Inverse Solution of Geodesics on the Ellipsoid      */
/*                                              (c) Chris Veness 2002-2019 */
/*                                                             MIT Licence */
/* www.movable-type.co.uk/scripts/latlong-vincenty.html                    */
/* www.movable-type.co.uk/scripts/geodesy-library.html#latlon-ellipsoidal-vincenty */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */

package geo

import "math"

const (
	// ConvergenceThreshold is the change in λ (inverse) or σ (direct), in
	// radians, below which an iteration is considered solved. About 0.006mm.
	ConvergenceThreshold = 1e-12

	// MaxIterations bounds every iterative solve.
	MaxIterations = 200
)

// vincentyInverse returns the distance (meters) and the azimuths at both
// ends (degrees) of the geodesic between two points.
//
// Failure policy for antipodal points: the λ recurrence does not converge
// for points that are (nearly) antipodal across the equator, so those
// inputs return ErrFailedToConverge. Antipodal points joined by a meridian
// (for example pole to pole) do converge and return half the meridional
// circumference.
func vincentyInverse(e *Ellipsoid, lat1, lon1, lat2, lon2 float64) (s12, azi1, azi2 float64, err error) {
	Δlon := math.Remainder(lon2-lon1, 360) // exact
	if lat1 == lat2 && Δlon == 0 {
		return 0, 0, 0, nil
	}
	a, b, f := e.a, e.b, e.f

	φ1 := lat1 * radians
	φ2 := lat2 * radians
	L := Δlon * radians

	// reduced latitudes
	tanU1 := (1 - f) * math.Tan(φ1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1
	tanU2 := (1 - f) * math.Tan(φ2)
	cosU2 := 1 / math.Sqrt(1+tanU2*tanU2)
	sinU2 := tanU2 * cosU2

	// λ may exceed π only on the far side of the ellipsoid; anywhere else it
	// means the recurrence is diverging.
	limit := math.Pi
	if math.Abs(L) > math.Pi/2 || math.Abs(φ2-φ1) > math.Pi/2 {
		limit = 2 * math.Pi
	}

	var (
		λ                    = L
		sinλ, cosλ           float64
		sinσ, cosσ, σ        float64
		sinα, cosSqα, cos2σm float64
		converged            bool
	)
	for i := 0; i < MaxIterations; i++ {
		sinλ, cosλ = math.Sincos(λ)
		x := cosU2 * sinλ
		y := cosU1*sinU2 - sinU1*cosU2*cosλ
		sinσ = math.Sqrt(x*x + y*y)
		cosσ = sinU1*sinU2 + cosU1*cosU2*cosλ
		if sinσ == 0 {
			if cosσ > 0 {
				// same location, e.g. longitudes 360° apart
				return 0, 0, 0, nil
			}
			return 0, 0, 0, ErrFailedToConverge
		}
		σ = math.Atan2(sinσ, cosσ)
		sinα = cosU1 * cosU2 * sinλ / sinσ
		cosSqα = 1 - sinα*sinα
		if cosSqα != 0 {
			cos2σm = cosσ - 2*sinU1*sinU2/cosSqα
		} else {
			cos2σm = 0 // equatorial line
		}
		C := f / 16 * cosSqα * (4 + f*(4-3*cosSqα))
		λp := λ
		λ = L + (1-C)*f*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))
		if math.Abs(λ) > limit {
			return 0, 0, 0, ErrFailedToConverge
		}
		if math.Abs(λ-λp) <= ConvergenceThreshold {
			converged = true
			break
		}
	}
	if !converged {
		return 0, 0, 0, ErrFailedToConverge
	}

	uSq := cosSqα * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	Δσ := B * sinσ * (cos2σm + B/4*(cosσ*(-1+2*cos2σm*cos2σm)-
		B/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))

	s12 = b * A * (σ - Δσ)
	if math.IsNaN(s12) || math.IsInf(s12, 0) {
		return 0, 0, 0, ErrFailedToConverge
	}
	if s12 < 0 {
		s12 = 0
	}

	α1 := math.Atan2(cosU2*sinλ, cosU1*sinU2-sinU1*cosU2*cosλ)
	α2 := math.Atan2(cosU1*sinλ, -sinU1*cosU2+cosU1*sinU2*cosλ)
	return s12, wrap180(α1 * degrees), wrap180(α2 * degrees), nil
}

// vincentyDirect returns the destination and final azimuth of a geodesic
// starting at lat1/lon1 with azimuth azi1 and length s12.
func vincentyDirect(e *Ellipsoid, lat1, lon1, azi1, s12 float64) (lat2, lon2, azi2 float64, err error) {
	a, b, f := e.a, e.b, e.f

	φ1 := lat1 * radians
	sinα1, cosα1 := math.Sincos(azi1 * radians)

	tanU1 := (1 - f) * math.Tan(φ1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1

	σ1 := math.Atan2(tanU1, cosα1) // angular distance on the sphere from the equator to P1
	sinα := cosU1 * sinα1          // α = azimuth of the geodesic at the equator
	cosSqα := 1 - sinα*sinα
	uSq := cosSqα * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	var (
		σ                  = s12 / (b * A)
		sinσ, cosσ, cos2σm float64
		converged          bool
	)
	for i := 0; i < MaxIterations; i++ {
		cos2σm = math.Cos(2*σ1 + σ)
		sinσ, cosσ = math.Sincos(σ)
		Δσ := B * sinσ * (cos2σm + B/4*(cosσ*(-1+2*cos2σm*cos2σm)-
			B/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))
		σp := σ
		σ = s12/(b*A) + Δσ
		if math.Abs(σ-σp) <= ConvergenceThreshold {
			converged = true
			break
		}
	}
	if !converged {
		return 0, 0, 0, ErrFailedToConverge
	}

	x := sinU1*sinσ - cosU1*cosσ*cosα1
	φ2 := math.Atan2(sinU1*cosσ+cosU1*sinσ*cosα1, (1-f)*math.Sqrt(sinα*sinα+x*x))
	λ := math.Atan2(sinσ*sinα1, cosU1*cosσ-sinU1*sinσ*cosα1)
	C := f / 16 * cosSqα * (4 + f*(4-3*cosSqα))
	L := λ - (1-C)*f*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))
	α2 := math.Atan2(sinα, -x)

	return φ2 * degrees, wrap180(lon1 + L*degrees), wrap180(α2 * degrees), nil
}
