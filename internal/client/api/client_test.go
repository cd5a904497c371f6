package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/apps/profiles"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/geocode"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/testserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedIn(t *testing.T) (*Client, *testserver.Server) {
	t.Helper()
	srv := testserver.Start(t)
	c := New(srv.URL, 5*time.Second)

	auth, err := c.Register(context.Background(), "a@b.com", "pw123456")
	require.NoError(t, err)
	c.SetAccessToken(auth.AccessToken)
	return c, srv
}

func TestClient_AuthRoundTrip(t *testing.T) {
	srv := testserver.Start(t)
	c := New(srv.URL, 5*time.Second)
	ctx := context.Background()

	reg, err := c.Register(ctx, "a@b.com", "pw123456")
	require.NoError(t, err)

	_, err = c.Register(ctx, "a@b.com", "pw123456")
	require.ErrorIs(t, err, ErrConflict)

	_, err = c.Login(ctx, "a@b.com", "wrong-pass")
	require.ErrorIs(t, err, ErrUnauthorized)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.NotEmpty(t, apiErr.Error())

	_, err = c.Me(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	login, err := c.Login(ctx, "a@b.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	c.SetAccessToken(login.AccessToken)
	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", me.Email)

	next, err := c.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, c.Logout(ctx, next.RefreshToken))
	_, err = c.Refresh(ctx, next.RefreshToken)
	require.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, c.DeleteAccount(ctx, "pw123456"))
	_, err = c.Me(ctx)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Profiles(t *testing.T) {
	c, _ := signedIn(t)
	ctx := context.Background()

	id, err := c.CreateProfile(ctx, profiles.ProfileRequest{Name: "Ann", Email: "ann@x.com", Age: "30"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	list, err := c.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID.String())

	require.NoError(t, c.UpdateProfile(ctx, id, profiles.ProfileRequest{Name: "Ann", Email: "ann@x.com", Age: "31"}))
	list, err = c.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "31", list[0].Age)

	require.NoError(t, c.DeleteProfile(ctx, id))
	require.ErrorIs(t, c.UpdateProfile(ctx, id, profiles.ProfileRequest{Name: "Ann", Email: "ann@x.com", Age: "32"}), ErrNotFound)
	require.ErrorIs(t, c.DeleteProfile(ctx, id), ErrNotFound)

	_, err = c.CreateProfile(ctx, profiles.ProfileRequest{Name: "Ann"})
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestClient_ReverseGeocode(t *testing.T) {
	c, srv := signedIn(t)
	ctx := context.Background()

	srv.Geocoder.Set([]geocode.Result{{FormattedAddress: "1 Main St"}}, nil)
	results, err := c.ReverseGeocode(ctx, 1.5, 2.5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "1 Main St", results[0].FormattedAddress)

	srv.Geocoder.Set(nil, errors.New("down"))
	_, err = c.ReverseGeocode(ctx, 1.5, 2.5)
	require.ErrorIs(t, err, ErrUnavailable)

	resolver := geocode.NewResolver(c, nil)
	assert.Equal(t, geocode.ErrorFetchingAddr, resolver.Resolve(ctx, 1.5, 2.5))

	srv.Geocoder.Set(nil, nil)
	assert.Equal(t, geocode.NoAddressFound, resolver.Resolve(ctx, 1.5, 2.5))
}

func TestClient_Unreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second)
	_, err := c.ListProfiles(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}
