package navigation

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/session"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct{}

func (fakeAuth) Register(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	return &dto.AuthResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         dto.UserResponse{ID: uuid.New(), Email: email},
	}, nil
}

func (f fakeAuth) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	return f.Register(ctx, email, password)
}

func (f fakeAuth) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	return f.Register(ctx, "a@b.com", "")
}

func (fakeAuth) Logout(ctx context.Context, refreshToken string) error { return nil }

func (fakeAuth) SetAccessToken(string) {}

func TestNavigator_FollowsSession(t *testing.T) {
	s := session.New(fakeAuth{}, logging.Discard())
	nav := New(s)
	defer nav.Close()
	ctx := context.Background()

	assert.Equal(t, Login, nav.Current())
	assert.True(t, nav.Navigate(Signup))
	assert.False(t, nav.Navigate(Home))
	assert.Equal(t, Signup, nav.Current())

	_, err := s.SignUp(ctx, "a@b.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, Home, nav.Current())

	assert.False(t, nav.Navigate(Login))
	assert.True(t, nav.Navigate(Profile))

	// A token refresh keeps the user where they are.
	require.NoError(t, s.Refresh(ctx))
	assert.Equal(t, Profile, nav.Current())

	require.True(t, nav.Navigate(Settings))
	require.NoError(t, s.SignOut(ctx))
	assert.Equal(t, Login, nav.Current())
	assert.False(t, nav.Navigate(Settings))
}

func TestNavigator_StartsOnHomeWhenSignedIn(t *testing.T) {
	s := session.New(fakeAuth{}, logging.Discard())
	_, err := s.SignIn(context.Background(), "a@b.com", "pw123456")
	require.NoError(t, err)

	nav := New(s)
	defer nav.Close()
	assert.Equal(t, Home, nav.Current())
}

func TestNavigator_CloseStopsFollowing(t *testing.T) {
	s := session.New(fakeAuth{}, logging.Discard())
	nav := New(s)
	nav.Close()

	_, err := s.SignIn(context.Background(), "a@b.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, Login, nav.Current())
}
