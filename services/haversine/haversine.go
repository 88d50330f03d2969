package haversine

import (
	"math"

	"github.com/icfaust/geoproject/services/geodesic"
)

// degreesToRadians converts from degrees to radians.
func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

// Distance calculates the shortest path between two coordinates on the
// surface of the Earth. The returned distance is in meters.
func Distance(p1, p2 geodesic.Point) float64 {
	lat1 := degreesToRadians(p1.Latitude)
	lon1 := degreesToRadians(p1.Longitude)
	lat2 := degreesToRadians(p2.Latitude)
	lon2 := degreesToRadians(p2.Longitude)

	diffLat := lat2 - lat1
	diffLon := lon2 - lon1

	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLon/2), 2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return geodesic.MeanRadiusM * c
}

// InitialBearing returns the compass direction from p1 toward p2 at the
// start of the great-circle path between them, in degrees clockwise from
// true north, wrapped into [0, 360).
func InitialBearing(p1, p2 geodesic.Point) float64 {
	lat1 := degreesToRadians(p1.Latitude)
	lat2 := degreesToRadians(p2.Latitude)
	diffLon := degreesToRadians(p2.Longitude - p1.Longitude)

	y := math.Sin(diffLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(diffLon)

	deg := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(deg+360, 360)
}
