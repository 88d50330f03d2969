package projector

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DecodeRequest parses a single JSON request object. Each of the four
// parameters must be present and numeric.
func DecodeRequest(data []byte) (Request, error) {
	var req Request

	fields := []struct {
		name string
		dst  *float64
	}{
		{"latitude", &req.Latitude},
		{"longitude", &req.Longitude},
		{"bearingInDegrees", &req.Bearing},
		{"distanceInMeters", &req.Distance},
	}
	for _, f := range fields {
		res := gjson.GetBytes(data, f.name)
		if !res.Exists() || res.Type != gjson.Number {
			return Request{}, &MissingParameterError{Param: f.name}
		}
		*f.dst = res.Float()
	}
	return req, nil
}

// EncodeResponse renders resp as a compact JSON object.
func EncodeResponse(resp Response) ([]byte, error) {
	out, err := sjson.SetBytes([]byte(`{}`), "latitude", resp.Latitude)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(out, "longitude", resp.Longitude)
}

// EncodeInverseResponse renders resp as a compact JSON object.
func EncodeInverseResponse(resp InverseResponse) ([]byte, error) {
	out, err := sjson.SetBytes([]byte(`{}`), "distanceInMeters", resp.Distance)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(out, "initialBearingInDegrees", resp.Bearing)
}
