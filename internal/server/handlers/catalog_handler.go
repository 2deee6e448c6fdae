package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/internal/service/catalog"
)

// CatalogHandler serves the products page and its mutations.
type CatalogHandler struct {
	svc    *catalog.Service
	logger *zap.Logger
}

// NewCatalogHandler constructs the catalog HTTP adapter.
func NewCatalogHandler(svc *catalog.Service, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{svc: svc, logger: logger}
}

// List renders the catalog table.
func (h *CatalogHandler) List(c *gin.Context) {
	view, err := h.svc.ListView(c.Request.Context(), sessionFrom(c))
	if err != nil {
		h.logger.Error("failed to load catalog", zap.Error(err))
		renderError(c, err, "Failed to load products")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Create submits the product dialog for a new record and answers with the
// reloaded table so the client can replace its list wholesale.
func (h *CatalogHandler) Create(c *gin.Context) {
	h.save(c, 0)
}

// Update submits the product dialog for an existing record.
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	h.save(c, id)
}

func (h *CatalogHandler) save(c *gin.Context, id int) {
	var form models.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form payload"})
		return
	}
	form.ID = id

	sess := sessionFrom(c)
	if _, err := h.svc.SaveProduct(c.Request.Context(), sess, form); err != nil {
		renderError(c, err, "Failed to save product")
		return
	}

	view, err := h.svc.ListView(c.Request.Context(), sess)
	if err != nil {
		renderError(c, err, "Failed to reload products")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Delete removes a product once the confirmation flag is present.
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	confirmed := c.Query("confirm") == "true"
	sess := sessionFrom(c)

	if err := h.svc.DeleteProduct(c.Request.Context(), sess, id, confirmed); err != nil {
		if errors.Is(err, catalog.ErrNotConfirmed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deletion requires confirmation"})
			return
		}
		renderError(c, err, "Failed to delete product")
		return
	}

	view, err := h.svc.ListView(c.Request.Context(), sess)
	if err != nil {
		renderError(c, err, "Failed to reload products")
		return
	}
	c.JSON(http.StatusOK, view)
}
