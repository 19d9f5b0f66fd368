package favorites

// FavoriteService maintains the set of services the user has marked as
// favorites. All operations are idempotent set operations.
type FavoriteService interface {
	// Toggle flips membership for the service and returns the new state.
	Toggle(serviceID string) bool
	// Add marks the service as a favorite; no-op if already present.
	Add(serviceID string)
	// Remove unmarks the service; no-op if absent.
	Remove(serviceID string)
	// Contains reports whether the service is a favorite.
	Contains(serviceID string) bool
	// List returns the favorite service IDs in the order they were added.
	List() []string
	// Reset empties the set. Used by the sign-out flow.
	Reset()
}
