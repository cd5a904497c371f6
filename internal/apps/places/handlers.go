package places

import (
	"log/slog"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/geocode"
	"github.com/gofiber/fiber/v2"
)

type PlacesHandler struct {
	provider geocode.Provider
}

func NewPlacesHandler(provider geocode.Provider) *PlacesHandler {
	return &PlacesHandler{provider: provider}
}

// Reverse proxies a reverse-geocoding lookup so clients never hold the provider key.
func (h *PlacesHandler) Reverse(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "lat and lng query parameters are required",
		})
	}
	if err := geocode.ValidateCoordinate(lat, lng); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	results, err := h.provider.ReverseGeocode(c.UserContext(), lat, lng)
	if err != nil {
		slog.Warn("reverse geocoding failed", "action", "places.reverse", "error", err.Error())
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Geocoding provider unavailable",
		})
	}
	if results == nil {
		results = []geocode.Result{}
	}

	return c.JSON(ReverseResponse{
		Latitude:  lat,
		Longitude: lng,
		Results:   results,
		MapURL:    geocode.MapLink(lat, lng),
	})
}

func (h *PlacesHandler) unavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
		Error: true, Message: "Geocoding is not configured",
	})
}
