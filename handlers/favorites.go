package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homeserve/catalog"
	"homeserve/models"
	"homeserve/services/favorites"
)

// FavoritesHandler exposes the favorite-services set.
type FavoritesHandler struct {
	Favorites favorites.FavoriteService
	Catalog   catalog.Catalog
	Logger    *zap.Logger
}

func NewFavoritesHandler(favSvc favorites.FavoriteService, cat catalog.Catalog, logger *zap.Logger) *FavoritesHandler {
	return &FavoritesHandler{Favorites: favSvc, Catalog: cat, Logger: logger}
}

// ListFavoritesHandler handles GET /api/favorites. Favorited IDs are
// resolved against the catalog; dangling IDs are dropped from the view.
func (h *FavoritesHandler) ListFavoritesHandler(c *gin.Context) {
	ids := h.Favorites.List()
	services := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		if svc, ok := h.Catalog.ServiceByID(id); ok {
			services = append(services, svc)
		}
	}
	c.JSON(http.StatusOK, gin.H{"serviceIds": ids, "services": services})
}

// ToggleFavoriteHandler handles POST /api/favorites/:serviceId/toggle.
func (h *FavoritesHandler) ToggleFavoriteHandler(c *gin.Context) {
	id := c.Param("serviceId")
	favorited := h.Favorites.Toggle(id)
	c.JSON(http.StatusOK, gin.H{"serviceId": id, "favorited": favorited})
}

// AddFavoriteHandler handles PUT /api/favorites/:serviceId.
func (h *FavoritesHandler) AddFavoriteHandler(c *gin.Context) {
	id := c.Param("serviceId")
	h.Favorites.Add(id)
	c.JSON(http.StatusOK, gin.H{"serviceId": id, "favorited": true})
}

// RemoveFavoriteHandler handles DELETE /api/favorites/:serviceId.
func (h *FavoritesHandler) RemoveFavoriteHandler(c *gin.Context) {
	id := c.Param("serviceId")
	h.Favorites.Remove(id)
	c.JSON(http.StatusOK, gin.H{"serviceId": id, "favorited": false})
}

// GetFavoriteHandler handles GET /api/favorites/:serviceId.
func (h *FavoritesHandler) GetFavoriteHandler(c *gin.Context) {
	id := c.Param("serviceId")
	c.JSON(http.StatusOK, gin.H{"serviceId": id, "favorited": h.Favorites.Contains(id)})
}
