package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultGoogleBaseURL = "https://maps.googleapis.com"

type googleResponse struct {
	Results      []Result `json:"results"`
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message"`
}

// GoogleProvider queries the Google Geocoding API.
type GoogleProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGoogleProvider(apiKey, baseURL string, timeout time.Duration) (*GoogleProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = defaultGoogleBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoogleProvider{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (p *GoogleProvider) ReverseGeocode(ctx context.Context, lat, lng float64) ([]Result, error) {
	q := url.Values{}
	q.Set("latlng", FormatLatLng(lat, lng))
	q.Set("key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/maps/api/geocode/json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call geocoding API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var body googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	switch body.Status {
	case "OK", "":
		return body.Results, nil
	case "ZERO_RESULTS":
		return nil, nil
	default:
		if body.ErrorMessage != "" {
			return nil, fmt.Errorf("geocoding API status %s: %s", body.Status, body.ErrorMessage)
		}
		return nil, fmt.Errorf("geocoding API status %s", body.Status)
	}
}
