package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homeserve/models"
	"homeserve/services/account"
	"homeserve/services/cart"
	"homeserve/services/order"
)

// OrderHandler drives checkout and the order history views.
type OrderHandler struct {
	Cart    cart.CartService
	Orders  order.OrderService
	Account account.AccountService
	Logger  *zap.Logger
}

func NewOrderHandler(cartSvc cart.CartService, orderSvc order.OrderService, accountSvc account.AccountService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{Cart: cartSvc, Orders: orderSvc, Account: accountSvc, Logger: logger}
}

// checkoutRequest carries the contact details for a first checkout. The
// fields may be omitted when a profile has already been saved.
type checkoutRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CheckoutHandler handles POST /api/orders. Guard checks mirror the booking
// screen: the cart must be non-empty, a full slot must be selected, and
// contact details must be saved or supplied. On success the order is placed
// first and the cart and slot are cleared after (two-step protocol: a
// recorded order needs no rollback).
func (h *OrderHandler) CheckoutHandler(c *gin.Context) {
	var body checkoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			h.Logger.Warn("Checkout: invalid request body", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
			return
		}
	}

	items := h.Cart.DetailedItems()
	slot := h.Cart.SelectedSlot()
	if len(items) == 0 || slot == nil || !slot.Complete() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "please ensure your cart is not empty and a time slot is selected",
		})
		return
	}

	profile := h.Account.Profile()
	if profile == nil {
		if body.Name == "" || body.Address == "" || body.Phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all your personal details"})
			return
		}
		p := models.UserProfile{Name: body.Name, Address: body.Address, Phone: body.Phone}
		h.Account.SaveProfile(p)
		profile = &p
	}

	ord, err := h.Orders.Place(items, *slot, *profile, h.Cart.Total(), h.Cart.ItemCount())
	if err != nil {
		h.Logger.Error("Checkout: order placement failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Clear cart and slot only after the order is recorded.
	h.Cart.Clear()

	c.JSON(http.StatusCreated, ord)
}

// ListOrdersHandler handles GET /api/orders, newest first.
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	orders := h.Orders.List()
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].PlacedAt.After(orders[j].PlacedAt)
	})
	c.JSON(http.StatusOK, orders)
}

// GetOrderHandler handles GET /api/orders/:id.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	id := c.Param("id")
	ord, ok := h.Orders.Get(id)
	if !ok {
		h.Logger.Warn("order not found", zap.String("orderId", id))
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, ord)
}

// CancelOrderHandler handles POST /api/orders/:id/cancel. The ledger accepts
// any status value; cancellation is the only transition this surface drives.
func (h *OrderHandler) CancelOrderHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.Orders.UpdateStatus(id, models.OrderStatusCancelled) {
		h.Logger.Warn("cancel: order not found", zap.String("orderId", id))
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	ord, _ := h.Orders.Get(id)
	c.JSON(http.StatusOK, ord)
}
