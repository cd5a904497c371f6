package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/config"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/navigation"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/viewmodel"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/geocode"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/logging"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/testserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_ProxyGeocoding(t *testing.T) {
	srv := testserver.Start(t)
	srv.Geocoder.Set([]geocode.Result{{FormattedAddress: "1 Main St"}}, nil)

	app, err := New(&config.Config{APIURL: srv.URL, HTTPTimeout: 5 * time.Second}, nil, viewmodel.LocationEnabled, logging.Discard())
	require.NoError(t, err)
	defer app.Close()
	ctx := context.Background()

	require.NoError(t, app.Auth.Signup(ctx, "a@b.com", "pw123456"))
	assert.Equal(t, navigation.Home, app.Navigator.Current())

	app.Profiles.TapMap(ctx, 1, 2)
	assert.Equal(t, "1 Main St", app.Profiles.Form().Address)
	assert.Equal(t, 1, srv.Geocoder.Calls())
}

func TestApp_DirectGeocoding(t *testing.T) {
	var hits atomic.Int32
	google := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "client-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer google.Close()

	srv := testserver.Start(t)
	app, err := New(&config.Config{
		APIURL:           srv.URL,
		GeocodingAPIKey:  "client-key",
		GeocodingBaseURL: google.URL,
		HTTPTimeout:      5 * time.Second,
	}, nil, viewmodel.LocationEnabled, logging.Discard())
	require.NoError(t, err)
	defer app.Close()

	app.Profiles.TapMap(context.Background(), 1, 2)
	assert.Equal(t, geocode.NoAddressFound, app.Profiles.Form().Address)
	assert.Equal(t, int32(1), hits.Load())
	assert.Zero(t, srv.Geocoder.Calls())
}
