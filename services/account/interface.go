package account

import (
	"context"

	"homeserve/models"
)

// AuthResponse is returned after a successful sign-in or sign-up.
type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// AccountService manages the simulated session and the stored user profile.
// Sign-in and sign-up always succeed after a fixed simulated delay; the
// credentials are never validated or stored. Callers are expected not to
// re-invoke while a call is outstanding; there is no internal guard.
type AccountService interface {
	// SignIn simulates an authentication round-trip and returns an opaque
	// session token. Honors context cancellation during the delay.
	SignIn(ctx context.Context, creds models.Credentials) (*AuthResponse, error)
	// SignUp behaves like SignIn; registration is equally simulated.
	SignUp(ctx context.Context, creds models.Credentials) (*AuthResponse, error)
	// Authenticate reports whether the token belongs to the live session.
	Authenticate(token string) bool
	// IsAuthenticated reports whether any session is live.
	IsAuthenticated() bool
	// SignOut is a full session reset: it revokes all tokens, clears the
	// profile, and wipes the cart, slot, order history and favorites.
	// Nothing is persisted externally, so everything resets together.
	SignOut()
	// SaveProfile overwrites the stored contact profile unconditionally.
	SaveProfile(profile models.UserProfile)
	// Profile returns the stored contact profile, or nil if none was saved.
	Profile() *models.UserProfile
}
