// Command geolength prints the geodesic length of every feature of a GeoJSON
// FeatureCollection.
//
// Usage:
//
//	geolength [-ellipsoid wgs84|grs80|sphere] [-log-level level] [file]
//
// The file defaults to GEOLENGTH_INPUT, or stdin when that is unset or "-".
// Each feature is reported on its own line as index, geometry type and
// length in meters, followed by a total line. Features that cannot be
// measured are reported as failed and make the command exit with status 1.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/janus/geo/internal/config"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.MustLoad()

	fs := flag.NewFlagSet("geolength", flag.ContinueOnError)
	fs.SetOutput(stderr)
	ellipsoid := fs.String("ellipsoid", cfg.Ellipsoid, "earth model: wgs84, grs80 or sphere")
	logLevel := fs.String("log-level", cfg.LogLevel.String(), "minimum log level")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid log level %q\n", *logLevel)
		return 2
	}
	logger := zerolog.New(stderr).With().Timestamp().Str("app", "geolength").Logger().Level(level)

	e, err := config.Model(*ellipsoid)
	if err != nil {
		logger.Error().Err(err).Msg("Failed selecting ellipsoid.")
		return 2
	}

	input := cfg.Input
	if fs.NArg() > 0 {
		input = fs.Arg(0)
	}
	logger.Debug().Str("env", cfg.Env).Str("ellipsoid", *ellipsoid).Str("input", input).Msg("Settings loaded.")

	fc, err := readFeatureCollection(input, stdin)
	if err != nil {
		logger.Error().Err(err).Str("input", input).Msg("Failed reading features.")
		return 1
	}

	results, total, err := measure(fc, e)
	for _, r := range results {
		if r.Err != nil {
			logger.Warn().Err(r.Err).Int("feature", r.Index).Str("type", r.Type).Msg("Failed measuring feature.")
			fmt.Fprintf(stdout, "%d\t%s\tfailed\n", r.Index, r.Type)
			continue
		}
		fmt.Fprintf(stdout, "%d\t%s\t%.3f\n", r.Index, r.Type, r.Length)
	}
	if err != nil {
		fmt.Fprintln(stdout, "total\t-\tfailed")
		logger.Error().Err(err).Int("features", len(results)).Msg("Failed measuring features.")
		return 1
	}
	fmt.Fprintf(stdout, "total\t-\t%.3f\n", total)
	logger.Info().Int("features", len(results)).Float64("meters", total).Msg("Measured features.")
	return 0
}
