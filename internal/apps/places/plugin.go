package places

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/config"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/geocode"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PlacesPlugin struct {
	provider geocode.Provider
}

// New builds the plugin. A nil provider means a Google provider is built from config.
func New(provider geocode.Provider) *PlacesPlugin {
	return &PlacesPlugin{provider: provider}
}

func (p *PlacesPlugin) ID() string { return "places" }

func (p *PlacesPlugin) Models() []interface{} { return nil }

func (p *PlacesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	provider := p.provider
	if provider == nil {
		google, err := geocode.NewGoogleProvider(cfg.GeocodingAPIKey, cfg.GeocodingBaseURL, cfg.HTTPTimeout)
		if err != nil {
			slog.Error("places plugin disabled", "error", err.Error())
			router.Get("/places/reverse", (&PlacesHandler{}).unavailable)
			return
		}
		provider = google
	}

	handler := NewPlacesHandler(provider)
	router.Get("/places/reverse", handler.Reverse)
}
