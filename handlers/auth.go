package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homeserve/models"
	"homeserve/services/account"
)

// AuthHandler exposes the simulated sign-in/sign-up flow and the stored
// contact profile.
type AuthHandler struct {
	Account account.AccountService
	Logger  *zap.Logger
}

func NewAuthHandler(accountSvc account.AccountService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Account: accountSvc, Logger: logger}
}

// SignInHandler handles POST /api/auth/login. Email and password are
// required fields but are otherwise not validated; the simulated flow
// always succeeds after its fixed delay.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		h.Logger.Warn("SignIn: missing credentials", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required", "message": err.Error()})
		return
	}

	resp, err := h.Account.SignIn(c.Request.Context(), creds)
	if err != nil {
		h.abortAuth(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignUpHandler handles POST /api/auth/register.
func (h *AuthHandler) SignUpHandler(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		h.Logger.Warn("SignUp: missing credentials", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required", "message": err.Error()})
		return
	}

	resp, err := h.Account.SignUp(c.Request.Context(), creds)
	if err != nil {
		h.abortAuth(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) abortAuth(c *gin.Context, err error) {
	// The only failure mode is the client going away during the simulated
	// delay; there is no credential rejection path.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.Status(http.StatusRequestTimeout)
		return
	}
	h.Logger.Error("auth flow failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed, please try again"})
}

// SignOutHandler handles POST /api/auth/logout. This is a full session
// reset: profile, orders, favorites, cart and slot all clear at once.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	h.Account.SignOut()
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetProfileHandler handles GET /api/profile.
func (h *AuthHandler) GetProfileHandler(c *gin.Context) {
	profile := h.Account.Profile()
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile saved"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfileHandler handles PUT /api/profile. All contact fields are
// required, mirroring the checkout form's blocking validation.
func (h *AuthHandler) SaveProfileHandler(c *gin.Context) {
	var body struct {
		Name    string `json:"name" binding:"required"`
		Address string `json:"address" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Warn("SaveProfile: incomplete details", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "all profile fields are required", "message": err.Error()})
		return
	}

	h.Account.SaveProfile(models.UserProfile{Name: body.Name, Address: body.Address, Phone: body.Phone})
	c.JSON(http.StatusOK, h.Account.Profile())
}
