// Package client assembles the profilehub client SDK from its configuration.
package client

import (
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/api"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/config"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/navigation"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/records"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/session"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/viewmodel"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/geocode"
)

// App is one signed-out client with its screens wired to the same session.
type App struct {
	API       *api.Client
	Session   *session.Session
	Navigator *navigation.Navigator
	Auth      *viewmodel.Auth
	Profiles  *viewmodel.Profile
}

// New wires the SDK. With a geocoding key in cfg addresses are resolved
// against Google directly, otherwise through the server proxy.
func New(cfg *config.Config, notifier viewmodel.Notifier, variant viewmodel.Variant, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = viewmodel.LogNotifier{Logger: logger}
	}

	client := api.New(cfg.APIURL, cfg.HTTPTimeout)

	var provider geocode.Provider = client
	if cfg.DirectGeocoding() {
		google, err := geocode.NewGoogleProvider(cfg.GeocodingAPIKey, cfg.GeocodingBaseURL, cfg.HTTPTimeout)
		if err != nil {
			return nil, fmt.Errorf("failed to build geocoding provider: %w", err)
		}
		provider = google
	}

	s := session.New(client, logger)
	store := records.NewStore(records.NewAPIBackend(client))

	return &App{
		API:       client,
		Session:   s,
		Navigator: navigation.New(s),
		Auth:      viewmodel.NewAuth(s, notifier, logger),
		Profiles:  viewmodel.NewProfile(store, geocode.NewResolver(provider, logger), notifier, variant, logger),
	}, nil
}

// Close detaches the navigator from the session.
func (a *App) Close() {
	a.Navigator.Close()
}
