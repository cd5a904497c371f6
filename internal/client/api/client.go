// Package api is the HTTP client for the profilehub server.
//
// Client covers the auth endpoints, the profiles collection and the
// reverse-geocoding proxy. It implements geocode.Provider, so a client
// without its own geocoding key resolves addresses through the server.
// Non-2xx answers come back as *Error; transport failures wrap ErrUnavailable.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/apps/places"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/apps/profiles"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/geocode"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu          sync.RWMutex
	accessToken string
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetAccessToken sets the bearer token sent with every request. Empty clears it.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// --- auth ---

func (c *Client) Register(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", dto.RegisterRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh", dto.RefreshRequest{RefreshToken: refreshToken}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", dto.LogoutRequest{RefreshToken: refreshToken}, nil)
}

func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAccount(ctx context.Context, password string) error {
	return c.do(ctx, http.MethodDelete, "/api/auth/account", dto.DeleteAccountRequest{Password: password}, nil)
}

// --- profiles ---

func (c *Client) ListProfiles(ctx context.Context) ([]profiles.Profile, error) {
	var out profiles.ProfileListResponse
	if err := c.do(ctx, http.MethodGet, "/api/p/profiles", nil, &out); err != nil {
		return nil, err
	}
	return out.Profiles, nil
}

func (c *Client) CreateProfile(ctx context.Context, req profiles.ProfileRequest) (string, error) {
	var out profiles.CreateProfileResponse
	if err := c.do(ctx, http.MethodPost, "/api/p/profiles", req, &out); err != nil {
		return "", err
	}
	return out.ID.String(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, id string, req profiles.ProfileRequest) error {
	return c.do(ctx, http.MethodPut, "/api/p/profiles/"+url.PathEscape(id), req, nil)
}

func (c *Client) DeleteProfile(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/p/profiles/"+url.PathEscape(id), nil, nil)
}

// --- places ---

// ReverseGeocode asks the server proxy for the addresses at a coordinate.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) ([]geocode.Result, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))

	var out places.ReverseResponse
	if err := c.do(ctx, http.MethodGet, "/api/p/places/reverse?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &Error{Status: resp.StatusCode, Message: e.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
