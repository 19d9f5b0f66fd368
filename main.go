// File: homeserve/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"homeserve/catalog"
	"homeserve/config"
	"homeserve/handlers"
	"homeserve/middleware"
	"homeserve/routes"
	"homeserve/services/account"
	"homeserve/services/cart"
	"homeserve/services/favorites"
	"homeserve/services/order"
	"homeserve/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Reference data.
	serviceCatalog := catalog.NewStaticCatalog()

	// Services. The state container is built here and handed to every
	// consumer explicitly; all mutation goes through these instances.
	cartService := cart.NewDefaultCartService(serviceCatalog)
	orderService := order.NewDefaultOrderService()
	favoriteService := favorites.NewDefaultFavoriteService()
	accountService := account.NewDefaultAccountService(cartService, orderService, favoriteService)
	accountService.AuthDelay = time.Duration(config.AppConfig.AuthDelayMS) * time.Millisecond

	// Handlers.
	catalogHandler := handlers.NewCatalogHandler(serviceCatalog, logger)
	authHandler := handlers.NewAuthHandler(accountService, logger)
	cartHandler := handlers.NewCartHandler(cartService, logger)
	orderHandler := handlers.NewOrderHandler(cartService, orderService, accountService, logger)
	favoritesHandler := handlers.NewFavoritesHandler(favoriteService, serviceCatalog, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Account: accountService,

		// Catalog endpoints.
		ListServicesHandler:   catalogHandler.ListServicesHandler,
		GetServiceByIDHandler: catalogHandler.GetServiceByIDHandler,
		ListCategoriesHandler: catalogHandler.ListCategoriesHandler,
		ListSlotsHandler:      catalogHandler.ListSlotsHandler,

		// Auth & profile endpoints.
		SignInHandler:      authHandler.SignInHandler,
		SignUpHandler:      authHandler.SignUpHandler,
		SignOutHandler:     authHandler.SignOutHandler,
		GetProfileHandler:  authHandler.GetProfileHandler,
		SaveProfileHandler: authHandler.SaveProfileHandler,

		// Cart endpoints.
		GetCartHandler:        cartHandler.GetCartHandler,
		AddItemHandler:        cartHandler.AddItemHandler,
		UpdateQuantityHandler: cartHandler.UpdateQuantityHandler,
		RemoveItemHandler:     cartHandler.RemoveItemHandler,
		SelectSlotHandler:     cartHandler.SelectSlotHandler,
		ClearSlotHandler:      cartHandler.ClearSlotHandler,
		ClearCartHandler:      cartHandler.ClearCartHandler,

		// Order endpoints.
		CheckoutHandler:    orderHandler.CheckoutHandler,
		ListOrdersHandler:  orderHandler.ListOrdersHandler,
		GetOrderHandler:    orderHandler.GetOrderHandler,
		CancelOrderHandler: orderHandler.CancelOrderHandler,

		// Favorites endpoints.
		ListFavoritesHandler:  favoritesHandler.ListFavoritesHandler,
		ToggleFavoriteHandler: favoritesHandler.ToggleFavoriteHandler,
		AddFavoriteHandler:    favoritesHandler.AddFavoriteHandler,
		RemoveFavoriteHandler: favoritesHandler.RemoveFavoriteHandler,
		GetFavoriteHandler:    favoritesHandler.GetFavoriteHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
