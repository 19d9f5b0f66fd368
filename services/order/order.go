package order

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"homeserve/models"
	"homeserve/utils"
)

// DefaultOrderService keeps the order ledger in memory.
type DefaultOrderService struct {
	mu     sync.Mutex
	orders []models.Order
}

// NewDefaultOrderService returns an empty ledger.
func NewDefaultOrderService() *DefaultOrderService {
	return &DefaultOrderService{}
}

func (s *DefaultOrderService) Place(items []models.CartItem, slot models.SelectedSlot, customer models.UserProfile, total float64, itemCount int) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !slot.Complete() {
		return nil, ErrIncompleteSlot
	}

	// Copy the items so later cart mutation cannot reach into the snapshot.
	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	ord := models.Order{
		// A timestamp-derived ID can collide within a clock tick; use a
		// UUID so IDs are unique for the life of the session.
		ID:        uuid.NewString(),
		Items:     snapshot,
		Slot:      slot,
		Customer:  customer,
		Total:     total,
		ItemCount: itemCount,
		Status:    models.OrderStatusPending,
		PlacedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.orders = append(s.orders, ord)
	s.mu.Unlock()

	utils.GetLogger().Info("order placed",
		zap.String("orderId", ord.ID),
		zap.Float64("total", ord.Total),
		zap.Int("items", ord.ItemCount),
	)

	result := ord
	return &result, nil
}

func (s *DefaultOrderService) UpdateStatus(orderID string, status models.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			utils.GetLogger().Info("order status updated",
				zap.String("orderId", orderID),
				zap.String("status", string(status)),
			)
			return true
		}
	}
	return false
}

func (s *DefaultOrderService) Get(orderID string) (*models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			ord := s.orders[i]
			return &ord, true
		}
	}
	return nil, false
}

func (s *DefaultOrderService) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *DefaultOrderService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
}
