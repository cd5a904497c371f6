// Package session owns client-side authentication state.
//
// A Session starts signed out. SignUp and SignIn move it to authenticated,
// SignOut tears it down. Observers registered with Subscribe see every
// transition, which is how navigation follows the session.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/dto"
)

// ErrMissingCredentials is returned before any remote call when email or password is empty.
var ErrMissingCredentials = errors.New("email and password are required")

// AuthError is a failure reported by the authentication service.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string { return e.Err.Error() }

func (e *AuthError) Unwrap() error { return e.Err }

// Authenticator is the remote side of a session; *api.Client implements it.
type Authenticator interface {
	Register(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	SetAccessToken(token string)
}

type Principal struct {
	ID    string
	Email string
}

type State struct {
	Authenticated bool
	Principal     Principal
	AccessToken   string
}

type Session struct {
	auth   Authenticator
	logger *slog.Logger

	mu           sync.Mutex
	state        State
	refreshToken string
	observers    map[int]func(State)
	nextID       int
}

func New(auth Authenticator, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		auth:      auth,
		logger:    logger,
		observers: make(map[int]func(State)),
	}
}

// State returns a snapshot of the current session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for every later transition and returns a func that removes it.
func (s *Session) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Session) SignUp(ctx context.Context, email, password string) (Principal, error) {
	return s.authenticate(ctx, "sign_up", email, password, s.auth.Register)
}

func (s *Session) SignIn(ctx context.Context, email, password string) (Principal, error) {
	return s.authenticate(ctx, "sign_in", email, password, s.auth.Login)
}

func (s *Session) authenticate(
	ctx context.Context,
	op, email, password string,
	call func(context.Context, string, string) (*dto.AuthResponse, error),
) (Principal, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return Principal{}, ErrMissingCredentials
	}

	resp, err := call(ctx, email, password)
	if err != nil {
		s.logger.WarnContext(ctx, "authentication failed", "action", "session."+op, "error", err.Error())
		return Principal{}, &AuthError{Op: op, Err: err}
	}

	return s.install(resp), nil
}

// Refresh exchanges the stored refresh token for a new token pair.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	token := s.refreshToken
	s.mu.Unlock()

	if token == "" {
		return &AuthError{Op: "refresh", Err: errors.New("not signed in")}
	}

	resp, err := s.auth.Refresh(ctx, token)
	if err != nil {
		return &AuthError{Op: "refresh", Err: err}
	}
	s.install(resp)
	return nil
}

// SignOut revokes the refresh token remotely and always clears local state.
// A remote failure is still returned as an *AuthError.
func (s *Session) SignOut(ctx context.Context) error {
	s.mu.Lock()
	token := s.refreshToken
	s.mu.Unlock()

	var remoteErr error
	if token != "" {
		if err := s.auth.Logout(ctx, token); err != nil {
			s.logger.WarnContext(ctx, "remote logout failed", "action", "session.sign_out", "error", err.Error())
			remoteErr = &AuthError{Op: "sign_out", Err: err}
		}
	}

	s.auth.SetAccessToken("")
	s.transition(State{}, "")
	return remoteErr
}

func (s *Session) install(resp *dto.AuthResponse) Principal {
	p := Principal{ID: resp.User.ID.String(), Email: resp.User.Email}
	s.auth.SetAccessToken(resp.AccessToken)
	s.transition(State{Authenticated: true, Principal: p, AccessToken: resp.AccessToken}, resp.RefreshToken)
	return p
}

// transition swaps the state and notifies observers outside the lock.
func (s *Session) transition(next State, refreshToken string) {
	s.mu.Lock()
	s.state = next
	s.refreshToken = refreshToken
	observers := make([]func(State), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(next)
	}
}
