package favorites

import "sync"

// DefaultFavoriteService is the in-memory FavoriteService implementation.
// Insertion order is kept so the favorites view is stable across reads.
type DefaultFavoriteService struct {
	mu  sync.Mutex
	ids []string
}

// NewDefaultFavoriteService returns an empty favorites set.
func NewDefaultFavoriteService() *DefaultFavoriteService {
	return &DefaultFavoriteService{}
}

func (s *DefaultFavoriteService) Toggle(serviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(serviceID) >= 0 {
		s.removeLocked(serviceID)
		return false
	}
	s.ids = append(s.ids, serviceID)
	return true
}

func (s *DefaultFavoriteService) Add(serviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(serviceID) < 0 {
		s.ids = append(s.ids, serviceID)
	}
}

func (s *DefaultFavoriteService) Remove(serviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(serviceID)
}

func (s *DefaultFavoriteService) Contains(serviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(serviceID) >= 0
}

func (s *DefaultFavoriteService) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *DefaultFavoriteService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
}

func (s *DefaultFavoriteService) indexLocked(serviceID string) int {
	for i, id := range s.ids {
		if id == serviceID {
			return i
		}
	}
	return -1
}

func (s *DefaultFavoriteService) removeLocked(serviceID string) {
	filtered := s.ids[:0]
	for _, id := range s.ids {
		if id != serviceID {
			filtered = append(filtered, id)
		}
	}
	s.ids = filtered
}
