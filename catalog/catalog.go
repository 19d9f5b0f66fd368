// Package catalog provides the static reference data the storefront sells
// against: the service offerings and the bookable time slots. The data is
// baked into the build and never mutated, so lookups need no locking.
package catalog

import "homeserve/models"

// Catalog exposes read-only access to the service and slot reference data.
type Catalog interface {
	Services() []models.Service
	ServiceByID(id string) (models.Service, bool)
	ServicesByCategory(category string) []models.Service
	Categories() []string
	Slots() []models.Slot
	SlotByDate(date string) (models.Slot, bool)
}

// staticCatalog serves the seed data defined in data.go.
type staticCatalog struct {
	services []models.Service
	slots    []models.Slot
	byID     map[string]models.Service
}

// NewStaticCatalog builds a catalog over the built-in seed data.
func NewStaticCatalog() Catalog {
	return newCatalog(seedServices, seedSlots)
}

func newCatalog(services []models.Service, slots []models.Slot) *staticCatalog {
	byID := make(map[string]models.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}
	return &staticCatalog{
		services: services,
		slots:    slots,
		byID:     byID,
	}
}

// Services returns all offerings in catalog order.
func (c *staticCatalog) Services() []models.Service {
	out := make([]models.Service, len(c.services))
	copy(out, c.services)
	return out
}

// ServiceByID resolves a single offering by its identifier.
func (c *staticCatalog) ServiceByID(id string) (models.Service, bool) {
	svc, ok := c.byID[id]
	return svc, ok
}

// ServicesByCategory returns the offerings tagged with the given category.
func (c *staticCatalog) ServicesByCategory(category string) []models.Service {
	var out []models.Service
	for _, svc := range c.services {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	return out
}

// Categories returns the distinct category tags in first-seen order.
func (c *staticCatalog) Categories() []string {
	seen := make(map[string]bool, len(c.services))
	var out []string
	for _, svc := range c.services {
		if !seen[svc.Category] {
			seen[svc.Category] = true
			out = append(out, svc.Category)
		}
	}
	return out
}

// Slots returns the bookable dates and their available times.
func (c *staticCatalog) Slots() []models.Slot {
	out := make([]models.Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

// SlotByDate returns the slot entry for a calendar date.
func (c *staticCatalog) SlotByDate(date string) (models.Slot, bool) {
	for _, slot := range c.slots {
		if slot.Date == date {
			return slot, true
		}
	}
	return models.Slot{}, false
}
