package account

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"homeserve/models"
	"homeserve/services/cart"
	"homeserve/services/favorites"
	"homeserve/services/order"
	"homeserve/utils"
)

// DefaultAuthDelay is the simulated round-trip for sign-in and sign-up.
const DefaultAuthDelay = 500 * time.Millisecond

// DefaultAccountService holds the simulated session state and fans sign-out
// resets out to the other stateful services.
type DefaultAccountService struct {
	Cart      cart.CartService
	Orders    order.OrderService
	Favorites favorites.FavoriteService

	// AuthDelay overrides DefaultAuthDelay when non-zero.
	AuthDelay time.Duration

	mu      sync.Mutex
	tokens  map[string]bool
	profile *models.UserProfile
}

// NewDefaultAccountService wires the account service to the sibling services
// it must reset on sign-out.
func NewDefaultAccountService(cartSvc cart.CartService, orderSvc order.OrderService, favSvc favorites.FavoriteService) *DefaultAccountService {
	return &DefaultAccountService{
		Cart:      cartSvc,
		Orders:    orderSvc,
		Favorites: favSvc,
		tokens:    make(map[string]bool),
	}
}

func (s *DefaultAccountService) SignIn(ctx context.Context, creds models.Credentials) (*AuthResponse, error) {
	return s.simulateAuth(ctx, creds, "sign-in")
}

func (s *DefaultAccountService) SignUp(ctx context.Context, creds models.Credentials) (*AuthResponse, error) {
	return s.simulateAuth(ctx, creds, "sign-up")
}

// simulateAuth waits out the fixed delay and establishes the session. The
// credentials are intentionally ignored beyond the response echo.
func (s *DefaultAccountService) simulateAuth(ctx context.Context, creds models.Credentials, flow string) (*AuthResponse, error) {
	delay := s.AuthDelay
	if delay == 0 {
		delay = DefaultAuthDelay
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(delay):
	}

	token := uuid.NewString()

	s.mu.Lock()
	if s.tokens == nil {
		s.tokens = make(map[string]bool)
	}
	s.tokens[token] = true
	s.mu.Unlock()

	utils.GetLogger().Info("session established",
		zap.String("flow", flow),
		zap.String("email", creds.Email),
	)

	return &AuthResponse{Token: token, Email: creds.Email}, nil
}

func (s *DefaultAccountService) Authenticate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token]
}

func (s *DefaultAccountService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens) > 0
}

func (s *DefaultAccountService) SignOut() {
	s.mu.Lock()
	s.tokens = make(map[string]bool)
	s.profile = nil
	s.mu.Unlock()

	// Full reset: nothing survives a sign-out because nothing is persisted.
	s.Cart.Clear()
	s.Orders.Reset()
	s.Favorites.Reset()

	utils.GetLogger().Info("session reset on sign-out")
}

func (s *DefaultAccountService) SaveProfile(profile models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &profile
}

func (s *DefaultAccountService) Profile() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}
