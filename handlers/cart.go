package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homeserve/models"
	"homeserve/services/cart"
)

// CartHandler exposes the cart and slot-selection operations.
type CartHandler struct {
	Cart   cart.CartService
	Logger *zap.Logger
}

func NewCartHandler(cartSvc cart.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{Cart: cartSvc, Logger: logger}
}

// GetCartHandler handles GET /api/cart. It returns the resolved items plus
// the derived totals and the currently selected slot.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":        h.Cart.DetailedItems(),
		"total":        h.Cart.Total(),
		"itemCount":    h.Cart.ItemCount(),
		"selectedSlot": h.Cart.SelectedSlot(),
	})
}

// AddItemHandler handles POST /api/cart/items.
func (h *CartHandler) AddItemHandler(c *gin.Context) {
	var body struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Warn("AddItem: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	// Unknown service IDs are accepted; unresolvable lines simply never
	// show up in the detailed view.
	h.Cart.AddItem(body.ServiceID)
	c.JSON(http.StatusOK, gin.H{"itemCount": h.Cart.ItemCount()})
}

// UpdateQuantityHandler handles PUT /api/cart/items/:serviceId. A quantity
// of zero or below removes the line.
func (h *CartHandler) UpdateQuantityHandler(c *gin.Context) {
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Warn("UpdateQuantity: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	h.Cart.SetQuantity(c.Param("serviceId"), *body.Quantity)
	c.JSON(http.StatusOK, gin.H{"itemCount": h.Cart.ItemCount()})
}

// RemoveItemHandler handles DELETE /api/cart/items/:serviceId.
func (h *CartHandler) RemoveItemHandler(c *gin.Context) {
	h.Cart.RemoveItem(c.Param("serviceId"))
	c.JSON(http.StatusOK, gin.H{"itemCount": h.Cart.ItemCount()})
}

// SelectSlotHandler handles PUT /api/cart/slot. Time may be omitted while
// the user has only picked a date.
func (h *CartHandler) SelectSlotHandler(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Warn("SelectSlot: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	h.Cart.SelectSlot(models.SelectedSlot{Date: body.Date, Time: body.Time})
	c.JSON(http.StatusOK, gin.H{"selectedSlot": h.Cart.SelectedSlot()})
}

// ClearSlotHandler handles DELETE /api/cart/slot.
func (h *CartHandler) ClearSlotHandler(c *gin.Context) {
	h.Cart.ClearSlot()
	c.JSON(http.StatusOK, gin.H{"selectedSlot": nil})
}

// ClearCartHandler handles DELETE /api/cart. Cart lines and the selected
// slot reset together.
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
