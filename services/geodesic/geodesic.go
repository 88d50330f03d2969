package geodesic

import (
	"math"
)

// All great-circle math in this module runs on a sphere whose radius is
// derived from the WGS84 ellipsoid.
const (
	SemiMajorAxisM = 6378137.0         // WGS84 semi-major axis in meters.
	Flattening     = 1 / 298.257223563 // from the inverse flattening defined in WGS84.

	// MeanRadiusM collapses the ellipsoid into a single representative
	// sphere radius, a*(1 - f/3), in meters.
	MeanRadiusM = SemiMajorAxisM * (1 - Flattening/3)
)

// Point represents a geographic coordinate in degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// degreesToRadians converts from degrees to radians.
func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

// radiansToDegrees converts from radians to degrees.
func radiansToDegrees(r float64) float64 {
	return r * 180 / math.Pi
}

// Project solves the direct great-circle problem: the point reached by
// travelling distanceM meters from p along the initial bearing bearingDeg,
// given in degrees clockwise from true north.
//
// Inputs are not range-checked here; that is the caller's job. The function
// never panics for finite input. The asin argument is clamped to [-1, 1] so
// floating-point drift near boundary geometries cannot surface as NaN.
func Project(p Point, bearingDeg, distanceM float64) Point {
	delta := distanceM / MeanRadiusM
	phi0 := degreesToRadians(p.Latitude)
	theta0 := degreesToRadians(p.Longitude)
	b := degreesToRadians(bearingDeg)

	var phi1, theta1 float64
	if math.Abs(p.Latitude) < 90 {
		phi1 = math.Asin(clamp(
			math.Sin(phi0)*math.Cos(delta)+math.Cos(phi0)*math.Sin(delta)*math.Cos(b),
			-1, 1,
		))
		theta1 = theta0 + math.Atan2(
			math.Sin(b)*math.Sin(delta)*math.Cos(phi0),
			math.Cos(delta)-math.Sin(phi0)*math.Sin(phi1),
		)
	} else {
		// Longitude is undefined at a pole, so the bearing picks the
		// outgoing meridian and the whole distance runs along it.
		phi1 = phi0 - math.Copysign(delta, phi0)
		theta1 = b
	}

	return Point{
		Latitude:  radiansToDegrees(phi1),
		Longitude: NormalizeLongitude(radiansToDegrees(theta1)),
	}
}

// NormalizeLongitude wraps a longitude in degrees into [-180, 180).
func NormalizeLongitude(deg float64) float64 {
	m := math.Mod(deg+540, 360)
	if m < 0 {
		m += 360
	}
	return m - 180
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
