package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"homeserve/handlers"
	"homeserve/middleware"
)

// RegisterCatalogRoutes registers the public reference-data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/categories", hb.ListCategoriesHandler)
		api.GET("/services/:id", hb.GetServiceByIDHandler)
		api.GET("/slots", hb.ListSlotsHandler)
	}
}

// RegisterAuthRoutes registers sign-in/sign-up and the profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.SignInHandler)
		api.POST("/register", hb.SignUpHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.SessionAuthMiddleware(hb.Account))
		api.POST("/logout", hb.SignOutHandler)
	}

	profile := r.Group("/api/profile")
	{
		profile.Use(middleware.SessionAuthMiddleware(hb.Account))
		profile.GET("", hb.GetProfileHandler)
		profile.PUT("", hb.SaveProfileHandler)
	}
}

// RegisterCartRoutes registers the cart and slot-selection endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Account))
		api.GET("", hb.GetCartHandler)
		api.DELETE("", hb.ClearCartHandler)
		api.POST("/items", hb.AddItemHandler)
		api.PUT("/items/:serviceId", hb.UpdateQuantityHandler)
		api.DELETE("/items/:serviceId", hb.RemoveItemHandler)
		api.PUT("/slot", hb.SelectSlotHandler)
		api.DELETE("/slot", hb.ClearSlotHandler)
	}
}

// RegisterOrderRoutes registers checkout and order-history endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Account))
		api.POST("", hb.CheckoutHandler)
		api.GET("", hb.ListOrdersHandler)
		api.GET("/:id", hb.GetOrderHandler)
		api.POST("/:id/cancel", hb.CancelOrderHandler)
	}
}

// RegisterFavoriteRoutes registers the favorites endpoints.
func RegisterFavoriteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Account))
		api.GET("", hb.ListFavoritesHandler)
		api.GET("/:serviceId", hb.GetFavoriteHandler)
		api.POST("/:serviceId/toggle", hb.ToggleFavoriteHandler)
		api.PUT("/:serviceId", hb.AddFavoriteHandler)
		api.DELETE("/:serviceId", hb.RemoveFavoriteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Homeserve"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterFavoriteRoutes(r, hb)
}
