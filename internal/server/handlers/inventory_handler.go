package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/internal/service/inventory"
)

// InventoryHandler serves the transaction log page and the purchase/sale dialog.
type InventoryHandler struct {
	svc    *inventory.Service
	logger *zap.Logger
}

// NewInventoryHandler constructs the inventory HTTP adapter.
func NewInventoryHandler(svc *inventory.Service, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{svc: svc, logger: logger}
}

// View renders the recent transactions and the dialog's product options.
func (h *InventoryHandler) View(c *gin.Context) {
	view, err := h.svc.View(c.Request.Context(), sessionFrom(c))
	if err != nil {
		h.logger.Error("failed to load inventory view", zap.Error(err))
		renderError(c, err, "Failed to load inventory data")
		return
	}
	c.JSON(http.StatusOK, view)
}

// LogTransaction posts one purchase or sale and answers with the refreshed
// view so both the log and the product list reflect the new stock level.
func (h *InventoryHandler) LogTransaction(c *gin.Context) {
	var form models.TransactionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form payload"})
		return
	}

	sess := sessionFrom(c)
	if err := h.svc.Log(c.Request.Context(), sess, form); err != nil {
		renderError(c, err, "Failed to log transaction")
		return
	}

	view, err := h.svc.View(c.Request.Context(), sess)
	if err != nil {
		renderError(c, err, "Failed to reload inventory data")
		return
	}
	c.JSON(http.StatusOK, view)
}
