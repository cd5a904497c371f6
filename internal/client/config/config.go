// Package config loads runtime settings for the profilehub client SDK.
//
// Values come from the environment:
//
//	PROFILEHUB_API_URL   base URL of the profilehub HTTP API (default http://127.0.0.1:8080)
//	GEOCODING_API_KEY    optional; when set the client geocodes against Google directly
//	GEOCODING_BASE_URL   Google geocoding base URL (default https://maps.googleapis.com)
//	HTTP_TIMEOUT         per-request timeout, Go duration syntax (default 10s)
package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	APIURL           string
	GeocodingAPIKey  string
	GeocodingBaseURL string
	HTTPTimeout      time.Duration
}

// LoadDefaults populates c with defaults suitable for a local server.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://127.0.0.1:8080"
	c.GeocodingBaseURL = "https://maps.googleapis.com"
	c.HTTPTimeout = 10 * time.Second
}

// Load applies defaults, then overlays the environment.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if v := os.Getenv("PROFILEHUB_API_URL"); v != "" {
		cfg.APIURL = strings.TrimRight(v, "/")
	}
	cfg.GeocodingAPIKey = os.Getenv("GEOCODING_API_KEY")
	if v := os.Getenv("GEOCODING_BASE_URL"); v != "" {
		cfg.GeocodingBaseURL = v
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.HTTPTimeout = d
		}
	}
	return cfg
}

// DirectGeocoding reports whether the client holds its own geocoding key
// instead of going through the server proxy.
func (c *Config) DirectGeocoding() bool {
	return c.GeocodingAPIKey != ""
}
