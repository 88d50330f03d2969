package projector

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/icfaust/geoproject/services/geodesic"
	"github.com/icfaust/geoproject/services/haversine"
)

// Request carries the four projection parameters, named exactly as the
// external boundary supplies them.
type Request struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Bearing   float64 `json:"bearingInDegrees"`
	Distance  float64 `json:"distanceInMeters"`
}

// Response is the projected point in degrees, longitude normalized.
type Response struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// InverseResponse carries the surface distance and initial bearing between
// two points.
type InverseResponse struct {
	Distance float64 `json:"distanceInMeters"`
	Bearing  float64 `json:"initialBearingInDegrees"`
}

type Projector struct {
	logger *zerolog.Logger
}

func New(logger *zerolog.Logger) *Projector {
	return &Projector{logger: logger}
}

// Project validates req and solves the forward problem on its behalf.
func (p *Projector) Project(req Request) (Response, error) {
	if err := Validate(req); err != nil {
		return Response{}, err
	}

	dest := geodesic.Project(
		geodesic.Point{Latitude: req.Latitude, Longitude: req.Longitude},
		req.Bearing,
		req.Distance,
	)
	return Response{Latitude: dest.Latitude, Longitude: dest.Longitude}, nil
}

// Inverse validates both endpoints and solves the inverse problem: the
// surface distance between them and the initial bearing from from toward to.
func (p *Projector) Inverse(from, to geodesic.Point) (InverseResponse, error) {
	if err := validatePoint(from.Latitude, from.Longitude); err != nil {
		return InverseResponse{}, err
	}
	if err := validatePoint(to.Latitude, to.Longitude); err != nil {
		return InverseResponse{}, err
	}

	return InverseResponse{
		Distance: haversine.Distance(from, to),
		Bearing:  haversine.InitialBearing(from, to),
	}, nil
}

// ProjectBatch projects every request concurrently with at most workers
// goroutines, preserving input order in the result slice. The projection is
// stateless, so requests never contend; the first validation failure cancels
// the remaining work.
func (p *Projector) ProjectBatch(ctx context.Context, reqs []Request, workers int) ([]Response, error) {
	if workers < 1 {
		workers = 1
	}

	p.logger.Debug().Int("requests", len(reqs)).Int("workers", workers).Msg("Projecting batch.")

	out := make([]Response, len(reqs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, req := range reqs {
		i, req := i, req
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			resp, err := p.Project(req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			out[i] = resp
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
