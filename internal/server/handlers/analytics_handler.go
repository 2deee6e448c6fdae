package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/service/analytics"
)

// AnalyticsHandler serves the dashboard landing page, the analytics page
// and the demand-forecast selection.
type AnalyticsHandler struct {
	svc    *analytics.Service
	logger *zap.Logger
}

// NewAnalyticsHandler constructs the analytics HTTP adapter.
func NewAnalyticsHandler(svc *analytics.Service, logger *zap.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsHandler{svc: svc, logger: logger}
}

// Dashboard renders the landing page panels. Individual panel failures show
// up as notices in the payload, never as a failed request.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	view := h.svc.Dashboard(c.Request.Context(), sessionFrom(c))
	c.JSON(http.StatusOK, view)
}

// Page renders the dedicated analytics page.
func (h *AnalyticsHandler) Page(c *gin.Context) {
	view := h.svc.AnalyticsPage(c.Request.Context(), sessionFrom(c))
	c.JSON(http.StatusOK, view)
}

// Forecast selects a product for demand forecasting and returns the
// resulting selection state.
func (h *AnalyticsHandler) Forecast(c *gin.Context) {
	productID, err := strconv.Atoi(c.Query("product_id"))
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id must be a positive integer"})
		return
	}

	view, err := h.svc.SelectForecast(c.Request.Context(), sessionFrom(c), productID)
	if err != nil {
		h.logger.Error("forecast fetch failed", zap.Int("product_id", productID), zap.Error(err))
		renderError(c, err, "Failed to load forecast")
		return
	}
	c.JSON(http.StatusOK, view)
}
