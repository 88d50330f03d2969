package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProject_ZeroDistanceIsIdentity(t *testing.T) {
	points := []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 48.1374, Longitude: 11.5755},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 67.3, Longitude: -179.4},
	}

	for _, p := range points {
		for _, bearing := range []float64{0, 45, 270} {
			got := Project(p, bearing, 0)
			require.InDelta(t, p.Latitude, got.Latitude, 1e-9)
			require.InDelta(t, p.Longitude, got.Longitude, 1e-9)
		}
	}
}

func TestProject_FromEquatorMatchesClosedForm(t *testing.T) {
	const distance = 2_500_000.0

	for _, bearing := range []float64{30, 60, 120} {
		got := Project(Point{}, bearing, distance)

		delta := distance / MeanRadiusM
		want := math.Asin(math.Sin(delta)*math.Cos(bearing*math.Pi/180)) * 180 / math.Pi
		require.InDelta(t, want, got.Latitude, 1e-9)
	}
}

func TestProject_FromNorthPole(t *testing.T) {
	const distance = 1_000_000.0
	wantLat := 90 - distance/MeanRadiusM*180/math.Pi

	for _, bearing := range []float64{0, 90, 180, 270} {
		got := Project(Point{Latitude: 90}, bearing, distance)
		require.InDelta(t, wantLat, got.Latitude, 1e-9)
		require.InDelta(t, NormalizeLongitude(bearing), got.Longitude, 1e-9)
	}
}

func TestProject_FromSouthPole(t *testing.T) {
	const distance = 1_000_000.0

	got := Project(Point{Latitude: -90}, 45, distance)
	require.InDelta(t, -90+distance/MeanRadiusM*180/math.Pi, got.Latitude, 1e-9)
	require.InDelta(t, 45, got.Longitude, 1e-9)
}

func TestProject_NormalizesLongitudeAcrossAntimeridian(t *testing.T) {
	// Two degrees east along the equator from 179 crosses the antimeridian;
	// the raw longitude of 181 must come back as -179.
	distance := 2 * math.Pi / 180 * MeanRadiusM

	got := Project(Point{Latitude: 0, Longitude: 179}, 90, distance)
	require.InDelta(t, -179, got.Longitude, 1e-6)
	require.InDelta(t, 0, got.Latitude, 1e-6)
}

func TestProject_SydneyDueNorthOneDegree(t *testing.T) {
	got := Project(Point{Latitude: -33.8688, Longitude: 151.2093}, 0, 111_320)
	require.InDelta(t, -32.8688, got.Latitude, 0.01)
	require.InDelta(t, 151.2093, got.Longitude, 0.01)
}

func TestProject_ShortRoundTrip(t *testing.T) {
	start := Point{Latitude: 48.1374, Longitude: 11.5755}
	const distance = 1_000.0

	for _, bearing := range []float64{10, 135, 280} {
		mid := Project(start, bearing, distance)
		back := Project(mid, math.Mod(bearing+180, 360), distance)
		require.InDelta(t, start.Latitude, back.Latitude, 1e-5)
		require.InDelta(t, start.Longitude, back.Longitude, 1e-5)
	}
}

func TestProject_NeverNaNForExtremeDistances(t *testing.T) {
	distances := []float64{
		111_320,
		math.Pi * MeanRadiusM,     // half the circumference
		2 * math.Pi * MeanRadiusM, // all the way around
		5 * math.Pi * MeanRadiusM,
	}

	for _, d := range distances {
		for _, p := range []Point{
			{Latitude: 89.9999999, Longitude: 0},
			{Latitude: -89.9999999, Longitude: 0},
			{Latitude: 0, Longitude: 0},
		} {
			got := Project(p, 0, d)
			require.False(t, math.IsNaN(got.Latitude), "latitude NaN for %+v at %f", p, d)
			require.False(t, math.IsNaN(got.Longitude), "longitude NaN for %+v at %f", p, d)
		}
	}
}

func TestNormalizeLongitude(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{179, 179},
		{181, -179},
		{180, -180},
		{-180, -180},
		{360, 0},
		{540, -180},
		{-541, 179},
	}

	for _, c := range cases {
		require.InDelta(t, c.want, NormalizeLongitude(c.in), 1e-9, "input %f", c.in)
	}
}
