package places

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlugin_WithoutKeyIsUnavailable(t *testing.T) {
	app := fiber.New()
	New(nil).RegisterRoutes(app, nil, &config.Config{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/places/reverse?lat=1&lng=2", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestPlugin_BuildsGoogleProviderFromConfig(t *testing.T) {
	p := New(nil)
	assert.Equal(t, "places", p.ID())
	assert.Empty(t, p.Models())

	app := fiber.New()
	p.RegisterRoutes(app, nil, &config.Config{GeocodingAPIKey: "k", GeocodingBaseURL: "http://127.0.0.1:1"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/places/reverse?lat=1&lng=2", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
