package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/apps/profiles"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/api"
)

// APIBackend serves a Store from the profilehub HTTP API.
type APIBackend struct {
	client *api.Client
}

func NewAPIBackend(client *api.Client) *APIBackend {
	return &APIBackend{client: client}
}

func (b *APIBackend) ListAll(ctx context.Context) ([]Record, error) {
	list, err := b.client.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(list))
	for _, p := range list {
		r := Record{
			ID: p.ID.String(),
			Fields: Fields{
				Name:    p.Name,
				Email:   p.Email,
				Age:     p.Age,
				Address: p.Address,
			},
		}
		if p.Latitude != nil && p.Longitude != nil {
			r.Location = &Location{Latitude: *p.Latitude, Longitude: *p.Longitude}
		}
		records = append(records, r)
	}
	return records, nil
}

func (b *APIBackend) Insert(ctx context.Context, f Fields) (string, error) {
	return b.client.CreateProfile(ctx, toRequest(f))
}

func (b *APIBackend) Replace(ctx context.Context, id string, f Fields) error {
	return notFound(b.client.UpdateProfile(ctx, id, toRequest(f)))
}

func (b *APIBackend) Remove(ctx context.Context, id string) error {
	return notFound(b.client.DeleteProfile(ctx, id))
}

func toRequest(f Fields) profiles.ProfileRequest {
	req := profiles.ProfileRequest{
		Name:    f.Name,
		Email:   f.Email,
		Age:     f.Age,
		Address: f.Address,
	}
	if f.Location != nil {
		lat, lng := f.Location.Latitude, f.Location.Longitude
		req.Latitude, req.Longitude = &lat, &lng
	}
	return req
}

// notFound maps the API's 404 onto ErrNotFound, keeping the original cause.
func notFound(err error) error {
	if errors.Is(err, api.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
