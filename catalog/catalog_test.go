package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceByID(t *testing.T) {
	c := NewStaticCatalog()

	svc, ok := c.ServiceByID("3")
	require.True(t, ok)
	assert.Equal(t, "Plumbing", svc.Name)
	assert.Equal(t, 299.0, svc.Price)

	_, ok = c.ServiceByID("unknown")
	assert.False(t, ok)
}

func TestServicesReturnsAllOfferings(t *testing.T) {
	c := NewStaticCatalog()

	services := c.Services()
	assert.Len(t, services, 6)
	for _, svc := range services {
		assert.NotEmpty(t, svc.ID)
		assert.GreaterOrEqual(t, svc.Price, 0.0)
	}
}

func TestServicesByCategory(t *testing.T) {
	c := NewStaticCatalog()

	cleaning := c.ServicesByCategory("Cleaning")
	require.Len(t, cleaning, 2)
	for _, svc := range cleaning {
		assert.Equal(t, "Cleaning", svc.Category)
	}

	assert.Empty(t, c.ServicesByCategory("Gardening"))
}

func TestCategoriesAreDistinctAndOrdered(t *testing.T) {
	c := NewStaticCatalog()

	assert.Equal(t, []string{"Cleaning", "Appliances", "Maintenance", "Vehicle"}, c.Categories())
}

func TestSlotByDate(t *testing.T) {
	c := NewStaticCatalog()

	slot, ok := c.SlotByDate("2025-06-01")
	require.True(t, ok)
	assert.Equal(t, []string{"10:00", "12:00", "14:00"}, slot.Times)

	_, ok = c.SlotByDate("2030-01-01")
	assert.False(t, ok)
}
