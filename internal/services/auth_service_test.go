package services

import (
	"sync"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/config"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := dbtest.Open(t)
	return NewAuthService(db, &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Minute,
		JWTRefreshExpiry: time.Hour,
	})
}

func TestRegister_IssuesTokens(t *testing.T) {
	s := newAuthService(t)

	resp, err := s.Register(&dto.RegisterRequest{Email: " A@B.com ", Password: "pw123456"})
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", resp.User.Email)
	assert.NotEmpty(t, resp.RefreshToken)

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
	assert.Equal(t, "a@b.com", claims["email"])
}

func TestRegister_Rejections(t *testing.T) {
	s := newAuthService(t)

	_, err := s.Register(&dto.RegisterRequest{Email: "not-an-email", Password: "pw123456"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = s.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "123"})
	require.ErrorAs(t, err, &vErr)

	_, err = s.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = s.Register(&dto.RegisterRequest{Email: "A@b.com", Password: "another1"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_DuplicateInsertIsEmailTaken(t *testing.T) {
	s := newAuthService(t)

	require.NoError(t, s.createUser(&models.User{ID: uuid.New(), Email: "a@b.com", Password: "x"}))
	require.ErrorIs(t, s.createUser(&models.User{ID: uuid.New(), Email: "a@b.com", Password: "y"}), ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	s := newAuthService(t)
	_, err := s.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	resp, err := s.Login(&dto.LoginRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", resp.User.Email)

	_, err = s.Login(&dto.LoginRequest{Email: "a@b.com", Password: "wrong-pass"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(&dto.LoginRequest{Email: "nobody@b.com", Password: "pw123456"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_RotatesToken(t *testing.T) {
	s := newAuthService(t)
	first, err := s.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	second, err := s.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = s.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_ConcurrentUseWinsOnce(t *testing.T) {
	s := newAuthService(t)
	resp, err := s.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrInvalidToken)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestRefresh_Expired(t *testing.T) {
	s := newAuthService(t)
	resp, err := s.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = s.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	s := newAuthService(t)
	resp, err := s.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	require.NoError(t, s.Logout(resp.User.ID, &dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = s.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMe(t *testing.T) {
	s := newAuthService(t)
	resp, err := s.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	me, err := s.Me(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", me.Email)
}

func TestDeleteAccount(t *testing.T) {
	s := newAuthService(t)
	resp, err := s.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	require.ErrorIs(t, s.DeleteAccount(resp.User.ID, ""), ErrPasswordRequired)
	require.ErrorIs(t, s.DeleteAccount(resp.User.ID, "wrong-pass"), ErrInvalidCredentials)
	require.NoError(t, s.DeleteAccount(resp.User.ID, "pw123456"))

	var tokens int64
	require.NoError(t, s.db.Model(&models.RefreshToken{}).Where("user_id = ?", resp.User.ID).Count(&tokens).Error)
	assert.Zero(t, tokens)

	_, err = s.Login(&dto.LoginRequest{Email: "a@b.com", Password: "pw123456"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.ErrorIs(t, s.DeleteAccount(resp.User.ID, "pw123456"), ErrUserNotFound)
}
