// File: homeserve/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"homeserve/services/account"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Account service, needed by the session middleware.
	Account account.AccountService

	// Catalog endpoints
	ListServicesHandler   gin.HandlerFunc
	GetServiceByIDHandler gin.HandlerFunc
	ListCategoriesHandler gin.HandlerFunc
	ListSlotsHandler      gin.HandlerFunc

	// Auth & profile endpoints
	SignInHandler      gin.HandlerFunc
	SignUpHandler      gin.HandlerFunc
	SignOutHandler     gin.HandlerFunc
	GetProfileHandler  gin.HandlerFunc
	SaveProfileHandler gin.HandlerFunc

	// Cart endpoints
	GetCartHandler        gin.HandlerFunc
	AddItemHandler        gin.HandlerFunc
	UpdateQuantityHandler gin.HandlerFunc
	RemoveItemHandler     gin.HandlerFunc
	SelectSlotHandler     gin.HandlerFunc
	ClearSlotHandler      gin.HandlerFunc
	ClearCartHandler      gin.HandlerFunc

	// Order endpoints
	CheckoutHandler    gin.HandlerFunc
	ListOrdersHandler  gin.HandlerFunc
	GetOrderHandler    gin.HandlerFunc
	CancelOrderHandler gin.HandlerFunc

	// Favorites endpoints
	ListFavoritesHandler  gin.HandlerFunc
	ToggleFavoriteHandler gin.HandlerFunc
	AddFavoriteHandler    gin.HandlerFunc
	RemoveFavoriteHandler gin.HandlerFunc
	GetFavoriteHandler    gin.HandlerFunc
}
