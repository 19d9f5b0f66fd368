package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeserve/catalog"
	"homeserve/handlers"
	"homeserve/models"
	"homeserve/routes"
	"homeserve/services/account"
	"homeserve/services/cart"
	"homeserve/services/favorites"
	"homeserve/services/order"
	"homeserve/utils"
)

type testApp struct {
	router *gin.Engine
	cart   *cart.DefaultCartService
	orders *order.DefaultOrderService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	serviceCatalog := catalog.NewStaticCatalog()
	cartService := cart.NewDefaultCartService(serviceCatalog)
	orderService := order.NewDefaultOrderService()
	favoriteService := favorites.NewDefaultFavoriteService()
	accountService := account.NewDefaultAccountService(cartService, orderService, favoriteService)
	accountService.AuthDelay = time.Millisecond

	logger := utils.GetLogger()
	catalogHandler := handlers.NewCatalogHandler(serviceCatalog, logger)
	authHandler := handlers.NewAuthHandler(accountService, logger)
	cartHandler := handlers.NewCartHandler(cartService, logger)
	orderHandler := handlers.NewOrderHandler(cartService, orderService, accountService, logger)
	favoritesHandler := handlers.NewFavoritesHandler(favoriteService, serviceCatalog, logger)

	hb := &handlers.HandlerBundle{
		Account: accountService,

		ListServicesHandler:   catalogHandler.ListServicesHandler,
		GetServiceByIDHandler: catalogHandler.GetServiceByIDHandler,
		ListCategoriesHandler: catalogHandler.ListCategoriesHandler,
		ListSlotsHandler:      catalogHandler.ListSlotsHandler,

		SignInHandler:      authHandler.SignInHandler,
		SignUpHandler:      authHandler.SignUpHandler,
		SignOutHandler:     authHandler.SignOutHandler,
		GetProfileHandler:  authHandler.GetProfileHandler,
		SaveProfileHandler: authHandler.SaveProfileHandler,

		GetCartHandler:        cartHandler.GetCartHandler,
		AddItemHandler:        cartHandler.AddItemHandler,
		UpdateQuantityHandler: cartHandler.UpdateQuantityHandler,
		RemoveItemHandler:     cartHandler.RemoveItemHandler,
		SelectSlotHandler:     cartHandler.SelectSlotHandler,
		ClearSlotHandler:      cartHandler.ClearSlotHandler,
		ClearCartHandler:      cartHandler.ClearCartHandler,

		CheckoutHandler:    orderHandler.CheckoutHandler,
		ListOrdersHandler:  orderHandler.ListOrdersHandler,
		GetOrderHandler:    orderHandler.GetOrderHandler,
		CancelOrderHandler: orderHandler.CancelOrderHandler,

		ListFavoritesHandler:  favoritesHandler.ListFavoritesHandler,
		ToggleFavoriteHandler: favoritesHandler.ToggleFavoriteHandler,
		AddFavoriteHandler:    favoritesHandler.AddFavoriteHandler,
		RemoveFavoriteHandler: favoritesHandler.RemoveFavoriteHandler,
		GetFavoriteHandler:    favoritesHandler.GetFavoriteHandler,
	}

	router := gin.New()
	routes.RegisterRoutes(router, hb)

	return &testApp{router: router, cart: cartService, orders: orderService}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) signIn(t *testing.T) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@example.com", "password": "hunter2"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp account.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthRoute(t *testing.T) {
	app := newTestApp(t)
	w := app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListServicesIsPublic(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var services []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
	assert.Len(t, services, 6)
}

func TestGetServiceByIDNotFound(t *testing.T) {
	app := newTestApp(t)
	w := app.do(t, http.MethodGet, "/api/services/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignInRequiresCredentials(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"password": "hunter2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/cart", "/api/orders", "/api/favorites", "/api/profile"} {
		w := app.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "GET %s without a token", path)
	}

	w := app.do(t, http.MethodGet, "/api/cart", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutGuardsAndFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.signIn(t)

	// Empty cart: checkout refused, nothing recorded.
	w := app.do(t, http.MethodPost, "/api/orders", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, app.orders.List())

	// Fill the cart but leave the slot incomplete.
	w = app.do(t, http.MethodPost, "/api/cart/items", token, gin.H{"serviceId": "3"})
	require.Equal(t, http.StatusOK, w.Code)
	w = app.do(t, http.MethodPost, "/api/cart/items", token, gin.H{"serviceId": "3"})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPut, "/api/cart/slot", token, gin.H{"date": "2025-06-01"})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/api/orders", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "a date without a time must not pass the slot guard")

	// Complete the slot but give no contact details.
	w = app.do(t, http.MethodPut, "/api/cart/slot", token, gin.H{"date": "2025-06-01", "time": "10:00"})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/api/orders", token, gin.H{"name": "Ada"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "partial contact details must be refused")

	// Full details: the order is placed and the cart clears afterwards.
	w = app.do(t, http.MethodPost, "/api/orders", token, gin.H{
		"name":    "Ada",
		"address": "1 Main St",
		"phone":   "555-0100",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var ord models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ord))
	assert.NotEmpty(t, ord.ID)
	assert.Equal(t, models.OrderStatusPending, ord.Status)
	assert.Equal(t, 598.0, ord.Total)
	assert.Equal(t, 2, ord.ItemCount)

	assert.Empty(t, app.cart.Lines(), "cart clears after a recorded order")
	assert.Nil(t, app.cart.SelectedSlot())

	// The saved profile is reused: a second checkout needs no details.
	w = app.do(t, http.MethodPost, "/api/cart/items", token, gin.H{"serviceId": "1"})
	require.Equal(t, http.StatusOK, w.Code)
	w = app.do(t, http.MethodPut, "/api/cart/slot", token, gin.H{"date": "2025-06-02", "time": "09:00"})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/api/orders", token, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestOrdersListSortedNewestFirst(t *testing.T) {
	app := newTestApp(t)
	token := app.signIn(t)

	items := []models.CartItem{{Service: models.Service{ID: "1", Name: "House Cleaning", Price: 499}, Quantity: 1}}
	slot := models.SelectedSlot{Date: "2025-06-01", Time: "10:00"}
	profile := models.UserProfile{Name: "Ada", Address: "1 Main St", Phone: "555-0100"}

	first, err := app.orders.Place(items, slot, profile, 499, 1)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := app.orders.Place(items, slot, profile, 499, 1)
	require.NoError(t, err)

	w := app.do(t, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}

func TestCancelOrder(t *testing.T) {
	app := newTestApp(t)
	token := app.signIn(t)

	items := []models.CartItem{{Service: models.Service{ID: "1", Name: "House Cleaning", Price: 499}, Quantity: 1}}
	ord, err := app.orders.Place(items, models.SelectedSlot{Date: "2025-06-01", Time: "10:00"}, models.UserProfile{Name: "Ada", Address: "1 Main St", Phone: "555-0100"}, 499, 1)
	require.NoError(t, err)

	w := app.do(t, http.MethodPost, "/api/orders/"+ord.ID+"/cancel", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cancelled models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	w = app.do(t, http.MethodPost, "/api/orders/unknown/cancel", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoritesRoundTrip(t *testing.T) {
	app := newTestApp(t)
	token := app.signIn(t)

	w := app.do(t, http.MethodPost, "/api/favorites/2/toggle", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/favorites/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"favorited":true`)

	w = app.do(t, http.MethodGet, "/api/favorites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AC Repair")

	w = app.do(t, http.MethodPost, "/api/favorites/2/toggle", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/favorites/2", token, nil)
	assert.Contains(t, w.Body.String(), `"favorited":false`)
}

func TestSignOutResetsSession(t *testing.T) {
	app := newTestApp(t)
	token := app.signIn(t)

	w := app.do(t, http.MethodPost, "/api/cart/items", token, gin.H{"serviceId": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The token is revoked and all state is gone.
	w = app.do(t, http.MethodGet, "/api/cart", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, app.cart.Lines())
}
