// Package navigation routes between screens based on session state.
package navigation

import (
	"sync"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/session"
)

type Screen string

const (
	Login    Screen = "Login"
	Signup   Screen = "Signup"
	Home     Screen = "Home"
	Settings Screen = "Settings"
	Profile  Screen = "Profile"
)

// Navigator keeps the current screen. Authenticated sessions land on Home;
// a torn down session lands on Login. Only Login and Signup are reachable
// while signed out.
type Navigator struct {
	mu            sync.Mutex
	current       Screen
	authenticated bool
	unsubscribe   func()
}

// New starts on Login and follows s until Close.
func New(s *session.Session) *Navigator {
	n := &Navigator{current: Login}
	n.follow(s.State())
	n.unsubscribe = s.Subscribe(n.follow)
	return n
}

func (n *Navigator) follow(st session.State) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch {
	case st.Authenticated && !n.authenticated:
		n.current = Home
	case !st.Authenticated:
		n.current = Login
	}
	n.authenticated = st.Authenticated
}

func (n *Navigator) Current() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate moves to screen and reports whether the move was allowed.
func (n *Navigator) Navigate(screen Screen) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	public := screen == Login || screen == Signup
	if n.authenticated == public {
		return false
	}
	n.current = screen
	return true
}

// Close stops following the session.
func (n *Navigator) Close() {
	if n.unsubscribe != nil {
		n.unsubscribe()
	}
}
