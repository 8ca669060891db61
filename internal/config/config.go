package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/janus/geo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the settings of the geolength command.
//
// Fields:
// - Env: The current environment (e.g., local, dev, prod).
// - LogLevel: Minimum level of the log messages written to stderr.
// - Ellipsoid: Name of the earth model: wgs84, grs80 or sphere.
// - Input: Path of the GeoJSON file to measure, "-" for stdin.
type Config struct {
	Env       string        // Env is the current environment: local, dev, prod.
	LogLevel  zerolog.Level // LogLevel is the minimum level that is logged.
	Ellipsoid string        // Ellipsoid names the earth model distances are measured on.
	Input     string        // Input is the file to read, "-" for stdin.
}

var ellipsoids = map[string]*geo.Ellipsoid{
	"wgs84":  geo.WGS84,
	"grs80":  geo.GRS80,
	"sphere": geo.Globe,
}

// MustLoad loads the configuration from the environment, after reading an
// optional .env file, and returns a Config struct.
func MustLoad() *Config {
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(setDefaultEnv("GEOLENGTH_LOG_LEVEL", "info"))
	if err != nil {
		panic("failed to parse log level from configuration")
	}

	ellipsoid := strings.ToLower(setDefaultEnv("GEOLENGTH_ELLIPSOID", "wgs84"))
	if _, ok := ellipsoids[ellipsoid]; !ok {
		panic("unknown ellipsoid in configuration, must be one of wgs84, grs80, sphere")
	}

	return &Config{
		Env:       setDefaultEnv("GEOLENGTH_ENV", "production"),
		LogLevel:  level,
		Ellipsoid: ellipsoid,
		Input:     setDefaultEnv("GEOLENGTH_INPUT", "-"),
	}
}

// Model returns the earth model named by name.
func Model(name string) (*geo.Ellipsoid, error) {
	e, ok := ellipsoids[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("config: unknown ellipsoid %q", name)
	}
	return e, nil
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
