package projector

import (
	"errors"
	"fmt"
	"math"
)

// MissingParameterError reports a request field that was absent or not a
// number.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %q", e.Param)
}

// OutOfRangeError reports a parameter outside its documented bounds.
type OutOfRangeError struct {
	Param    string
	Value    float64
	Min, Max float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %v outside of range [%v, %v]", e.Param, e.Value, e.Min, e.Max)
}

// ErrPoleLongitude rejects a nonzero longitude paired with a latitude of
// exactly ±90: every meridian meets at the pole.
var ErrPoleLongitude = errors.New("there is no longitude at the pole")

// Validate enforces the boundary contract before any projection runs.
// The projection itself accepts any finite input; these checks keep it
// inside the region where the forward formula is well-conditioned.
func Validate(req Request) error {
	if err := validatePoint(req.Latitude, req.Longitude); err != nil {
		return err
	}
	if req.Bearing < 0 || req.Bearing > 360 {
		return &OutOfRangeError{Param: "bearingInDegrees", Value: req.Bearing, Min: 0, Max: 360}
	}
	if req.Distance < 0 {
		return &OutOfRangeError{Param: "distanceInMeters", Value: req.Distance, Min: 0, Max: math.Inf(1)}
	}
	return nil
}

func validatePoint(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return &OutOfRangeError{Param: "latitude", Value: lat, Min: -90, Max: 90}
	}
	if lng < -180 || lng > 180 {
		return &OutOfRangeError{Param: "longitude", Value: lng, Min: -180, Max: 180}
	}
	if math.Abs(lat) == 90 && lng != 0 {
		return ErrPoleLongitude
	}
	return nil
}
