package cart

import (
	"sync"

	"homeserve/catalog"
	"homeserve/models"
)

// DefaultCartService is the in-memory CartService implementation. Gin serves
// requests concurrently, so all state is guarded by a mutex.
type DefaultCartService struct {
	Catalog catalog.Catalog

	mu    sync.Mutex
	lines []models.CartLine
	slot  *models.SelectedSlot
}

// NewDefaultCartService returns an empty cart backed by the given catalog.
func NewDefaultCartService(cat catalog.Catalog) *DefaultCartService {
	return &DefaultCartService{Catalog: cat}
}

func (s *DefaultCartService) AddItem(serviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, line := range s.lines {
		if line.ServiceID == serviceID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, models.CartLine{ServiceID: serviceID, Quantity: 1})
}

func (s *DefaultCartService) RemoveItem(serviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(serviceID)
}

func (s *DefaultCartService) removeLocked(serviceID string) {
	filtered := s.lines[:0]
	for _, line := range s.lines {
		if line.ServiceID != serviceID {
			filtered = append(filtered, line)
		}
	}
	s.lines = filtered
}

func (s *DefaultCartService) SetQuantity(serviceID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(serviceID)
		return
	}
	for i, line := range s.lines {
		if line.ServiceID == serviceID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

func (s *DefaultCartService) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *DefaultCartService) DetailedItems() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detailedLocked()
}

func (s *DefaultCartService) detailedLocked() []models.CartItem {
	items := make([]models.CartItem, 0, len(s.lines))
	for _, line := range s.lines {
		svc, ok := s.Catalog.ServiceByID(line.ServiceID)
		if !ok {
			// Unresolvable lines are silently dropped from derived views.
			continue
		}
		items = append(items, models.CartItem{Service: svc, Quantity: line.Quantity})
	}
	return items
}

func (s *DefaultCartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.detailedLocked() {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (s *DefaultCartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func (s *DefaultCartService) SelectSlot(slot models.SelectedSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot = &slot
}

func (s *DefaultCartService) ClearSlot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot = nil
}

func (s *DefaultCartService) SelectedSlot() *models.SelectedSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slot == nil {
		return nil
	}
	slot := *s.slot
	return &slot
}

// Clear empties the cart and resets the selected slot together.
func (s *DefaultCartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.slot = nil
}
