// Package config holds dashboard process configuration.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

// ErrInvalidPort is returned when PORT is not a valid TCP port.
var ErrInvalidPort = errors.New("invalid PORT environment variable")

const (
	// DefaultPort is used when PORT is unset.
	DefaultPort = 8050
	// Host is the bind address; the dashboard listens on all interfaces.
	Host = "0.0.0.0"
)

// Default artifact and dataset locations, relative to the working directory.
const (
	DefaultDatasetPath    = "data/spotify_final.csv"
	DefaultClassifierPath = "models/genre_model.json"
	DefaultScalerPath     = "models/scaler.json"
	DefaultEncoderPath    = "models/label_encoder.json"
)

// Config holds dashboard configuration.
type Config struct {
	Port           int
	DatasetPath    string
	DatasetDSN     string // Postgres source; overrides DatasetPath when set
	ClassifierPath string
	ScalerPath     string
	EncoderPath    string
}

// Default returns a Config with the default paths and port.
func Default() *Config {
	return &Config{
		Port:           DefaultPort,
		DatasetPath:    DefaultDatasetPath,
		ClassifierPath: DefaultClassifierPath,
		ScalerPath:     DefaultScalerPath,
		EncoderPath:    DefaultEncoderPath,
	}
}

// Load returns the default configuration with Port read from PORT.
// Returns ErrInvalidPort if PORT is set but not a number in 1..65535.
func Load() (*Config, error) {
	cfg := Default()

	raw := os.Getenv("PORT")
	if raw == "" {
		return cfg, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPort, raw)
	}
	cfg.Port = port
	return cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(Host, strconv.Itoa(c.Port))
}
