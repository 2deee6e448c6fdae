package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/session"
	"github.com/stockdesk/dashboard/pkg/clients/backend"
)

// AuthHandler exchanges credentials for a dashboard session cookie and
// tears it down again on logout.
type AuthHandler struct {
	api        backend.API
	store      session.Store
	cookieName string
	logger     *zap.Logger
}

// NewAuthHandler constructs the auth HTTP adapter.
func NewAuthHandler(api backend.API, store session.Store, cookieName string, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{api: api, store: store, cookieName: cookieName, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates against the backend and mints a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	grant, err := h.api.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("login failed", zap.String("email", req.Email), zap.Error(err))
		renderError(c, err, "Login failed")
		return
	}

	sess, err := h.store.Create(c.Request.Context(), grant.User, grant.AccessToken)
	if err != nil {
		h.logger.Error("failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to create session"})
		return
	}

	c.SetCookie(h.cookieName, sess.ID, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}

// Logout clears the stored identity and token and points at the login view.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(h.cookieName); err == nil && id != "" {
		if err := h.store.Delete(c.Request.Context(), id); err != nil {
			h.logger.Error("failed to delete session", zap.Error(err))
		}
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"redirect": LoginRedirect})
}

// Me returns the logged-in identity.
func (h *AuthHandler) Me(c *gin.Context) {
	sess := sessionFrom(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated", "redirect": LoginRedirect})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}
