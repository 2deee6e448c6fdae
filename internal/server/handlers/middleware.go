package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/internal/session"
	"github.com/stockdesk/dashboard/pkg/clients/backend"
)

const sessionContextKey = "stockdesk.session"

// LoginRedirect is where unauthenticated requests are pointed.
const LoginRedirect = "/login"

// RequireSession resolves the session cookie and injects the session into
// the request context. Anything without a live session is logged-out.
func RequireSession(store session.Store, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "not authenticated",
				"redirect": LoginRedirect,
			})
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				logger.Error("session lookup failed", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "not authenticated",
				"redirect": LoginRedirect,
			})
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *models.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	sess, _ := value.(*models.Session)
	return sess
}

// renderError maps a failure onto the response. Backend errors keep their
// status and surface the structured detail when present; everything else is
// treated as a local validation problem.
func renderError(c *gin.Context, err error, fallback string) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": apiErr.Message(fallback)})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
