// Package testserver runs the full HTTP API on an in-memory database for tests.
package testserver

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/api"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/apps/places"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/apps/profiles"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/config"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/geocode"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const JWTSecret = "test-secret"

// StubGeocoder is a geocode.Provider with canned answers.
type StubGeocoder struct {
	mu      sync.Mutex
	results []geocode.Result
	err     error
	calls   int
}

func (s *StubGeocoder) Set(results []geocode.Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results, s.err = results, err
}

func (s *StubGeocoder) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *StubGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) ([]geocode.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.results, s.err
}

type Server struct {
	URL      string
	App      *fiber.App
	DB       *gorm.DB
	Config   *config.Config
	Geocoder *StubGeocoder
}

func Config() *config.Config {
	return &config.Config{
		JWTSecret:        JWTSecret,
		JWTAccessExpiry:  time.Minute,
		JWTRefreshExpiry: time.Hour,
		GeocodingAPIKey:  "test-key",
		HTTPTimeout:      time.Second,
		CORSOrigins:      "*",
	}
}

// New builds the app without listening; use App.Test for requests.
func New(t *testing.T) *Server {
	t.Helper()

	cfg := Config()
	geocoder := &StubGeocoder{}
	plugins := []apps.Plugin{profiles.New(), places.New(geocoder)}

	var models []interface{}
	for _, p := range plugins {
		models = append(models, p.Models()...)
	}
	db := dbtest.Open(t, models...)

	return &Server{
		App:      api.NewFiberApp(cfg, db, plugins, api.Options{Quiet: true}),
		DB:       db,
		Config:   cfg,
		Geocoder: geocoder,
	}
}

// Start builds the app and serves it on a loopback port until the test ends.
func Start(t *testing.T) *Server {
	t.Helper()

	s := New(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = s.App.Listener(ln) }()
	t.Cleanup(func() { _ = s.App.ShutdownWithTimeout(time.Second) })

	s.URL = "http://" + ln.Addr().String()
	return s
}
