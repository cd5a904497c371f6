package viewmodel

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/session"
)

// MissingCredentialsAlert is shown when login or signup is attempted with an empty field.
const MissingCredentialsAlert = "Please enter email and password"

// Auth backs the login, signup and settings screens. Navigation follows the
// session on its own, so these methods only report failures.
type Auth struct {
	session  *session.Session
	notifier Notifier
	logger   *slog.Logger
}

func NewAuth(s *session.Session, notifier Notifier, logger *slog.Logger) *Auth {
	if logger == nil {
		logger = slog.Default()
	}
	return &Auth{session: s, notifier: notifier, logger: logger}
}

func (a *Auth) Login(ctx context.Context, email, password string) error {
	_, err := a.session.SignIn(ctx, email, password)
	return a.report(err, "Login Failed")
}

func (a *Auth) Signup(ctx context.Context, email, password string) error {
	_, err := a.session.SignUp(ctx, email, password)
	return a.report(err, "Signup Failed")
}

// Logout never alerts; a failed remote logout is only logged.
func (a *Auth) Logout(ctx context.Context) error {
	err := a.session.SignOut(ctx)
	if err != nil {
		a.logger.ErrorContext(ctx, "logout failed", "action", "auth.logout", "error", err.Error())
	}
	return err
}

func (a *Auth) report(err error, title string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, session.ErrMissingCredentials):
		a.alert("Error", MissingCredentialsAlert)
	default:
		a.alert(title, err.Error())
	}
	return err
}

func (a *Auth) alert(title, message string) {
	if a.notifier != nil {
		a.notifier.Alert(title, message)
	}
}

// LogNotifier writes alerts to a logger, for headless use.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Alert(title, message string) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn(message, "alert", title)
}
