package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/icfaust/geoproject/internal/config"
	"github.com/icfaust/geoproject/services/geodesic"
	"github.com/icfaust/geoproject/services/projector"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("app", "geoproject").Logger()

	settingsPath := flag.String("settings", "settings.yaml", "settings file path")
	lat := flag.Float64("lat", 0, "start latitude in degrees")
	lng := flag.Float64("lng", 0, "start longitude in degrees")
	bearing := flag.Float64("bearing", 0, "initial bearing in degrees clockwise from true north")
	distance := flag.Float64("distance", 0, "surface distance in meters")
	toLat := flag.Float64("to-lat", 0, "destination latitude in degrees (inverse mode)")
	toLng := flag.Float64("to-lng", 0, "destination longitude in degrees (inverse mode)")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed reading .env file.")
	}

	settings, err := config.Load(*settingsPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed loading settings.")
	}
	if lvl, err := zerolog.ParseLevel(settings.LogLevel); err == nil && lvl != zerolog.NoLevel {
		logger = logger.Level(lvl)
	}

	proj := projector.New(&logger)

	switch {
	case set["to-lat"] || set["to-lng"]:
		requireFlags(&logger, set, "lat", "lng", "to-lat", "to-lng")
		runInverse(&logger, proj,
			geodesic.Point{Latitude: *lat, Longitude: *lng},
			geodesic.Point{Latitude: *toLat, Longitude: *toLng},
		)
	case set["lat"] || set["lng"] || set["bearing"] || set["distance"]:
		requireFlags(&logger, set, "lat", "lng", "bearing", "distance")
		runForward(&logger, proj, projector.Request{
			Latitude:  *lat,
			Longitude: *lng,
			Bearing:   *bearing,
			Distance:  *distance,
		})
	default:
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		runStream(ctx, &logger, proj, settings.Workers)
	}
}

func requireFlags(logger *zerolog.Logger, set map[string]bool, names ...string) {
	for _, name := range names {
		if !set[name] {
			err := &projector.MissingParameterError{Param: name}
			logger.Fatal().Err(err).Msg("Not all parameters input.")
		}
	}
}

func runForward(logger *zerolog.Logger, proj *projector.Projector, req projector.Request) {
	resp, err := proj.Project(req)
	if err != nil {
		logger.Fatal().Err(err).Msg("Projection rejected.")
	}
	out, err := projector.EncodeResponse(resp)
	printJSON(logger, out, err)
}

func runInverse(logger *zerolog.Logger, proj *projector.Projector, from, to geodesic.Point) {
	resp, err := proj.Inverse(from, to)
	if err != nil {
		logger.Fatal().Err(err).Msg("Inverse rejected.")
	}
	out, err := projector.EncodeInverseResponse(resp)
	printJSON(logger, out, err)
}

func printJSON(logger *zerolog.Logger, out []byte, err error) {
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed encoding response.")
	}
	fmt.Println(string(out))
}

// runStream reads newline-delimited JSON requests from stdin and writes one
// JSON response per accepted request to stdout, preserving input order.
// Lines that fail to decode or validate are logged and skipped.
func runStream(ctx context.Context, logger *zerolog.Logger, proj *projector.Projector, workers int) {
	var reqs []projector.Request

	sc := bufio.NewScanner(os.Stdin)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}

		req, err := projector.DecodeRequest(raw)
		if err == nil {
			err = projector.Validate(req)
		}
		if err != nil {
			logger.Error().Err(err).Int("line", line).Msg("Skipping request.")
			continue
		}
		reqs = append(reqs, req)
	}
	if err := sc.Err(); err != nil {
		logger.Fatal().Err(err).Msg("Failed reading stdin.")
	}

	resps, err := proj.ProjectBatch(ctx, reqs, workers)
	if err != nil {
		logger.Fatal().Err(err).Msg("Batch projection failed.")
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, resp := range resps {
		out, err := projector.EncodeResponse(resp)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed encoding response.")
		}
		w.Write(out)
		w.WriteByte('\n')
	}
}
