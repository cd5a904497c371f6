// Package geocode turns coordinates into human-readable addresses.
//
// Provider implementations talk to a concrete geocoding backend and report
// failures as errors. Resolver sits on top of a Provider and never fails:
// it degrades to a sentinel string so that a broken lookup cannot block
// record creation.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
)

const (
	NoAddressFound    = "No address found"
	ErrorFetchingAddr = "Error fetching address"
)

var (
	ErrMissingAPIKey     = errors.New("geocoding API key is required")
	ErrInvalidCoordinate = errors.New("coordinate out of range")
)

// Result is a single reverse-geocoding match.
type Result struct {
	FormattedAddress string `json:"formatted_address"`
}

// Provider performs reverse geocoding against a concrete backend.
type Provider interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) ([]Result, error)
}

// ValidateCoordinate rejects latitudes outside [-90, 90] and longitudes outside [-180, 180].
func ValidateCoordinate(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: %v,%v", ErrInvalidCoordinate, lat, lng)
	}
	return nil
}

type Resolver struct {
	provider Provider
	logger   *slog.Logger
}

func NewResolver(provider Provider, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{provider: provider, logger: logger}
}

// Resolve returns the first formatted address for the coordinate, NoAddressFound
// when the provider has no match, or ErrorFetchingAddr when the lookup failed.
func (r *Resolver) Resolve(ctx context.Context, lat, lng float64) string {
	results, err := r.provider.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		r.logger.WarnContext(ctx, "reverse geocoding failed", "lat", lat, "lng", lng, "error", err.Error())
		return ErrorFetchingAddr
	}
	for _, res := range results {
		if res.FormattedAddress != "" {
			return res.FormattedAddress
		}
	}
	return NoAddressFound
}

// MapLink returns a URL that opens the coordinate in an external map.
func MapLink(lat, lng float64) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", FormatLatLng(lat, lng))
	return "https://www.google.com/maps/search/?" + q.Encode()
}

// FormatLatLng renders a coordinate as "lat,lng" without trailing zeros.
func FormatLatLng(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}
