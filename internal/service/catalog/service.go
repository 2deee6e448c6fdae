package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/pkg/clients/backend"
)

// ErrNotConfirmed signals a delete that was submitted without the
// interactive confirmation. No backend call is made in that case.
var ErrNotConfirmed = errors.New("delete not confirmed")

// Service is the controller behind the products page: catalog listing plus
// admin-gated create/update/delete.
type Service struct {
	api    backend.API
	logger *zap.Logger
}

// NewService wires a catalog view controller.
func NewService(api backend.API, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// ListView fetches the catalog and shapes it for rendering. Rows below
// threshold carry the low-stock flag; mutation controls are visible to
// admins only (the backend still enforces authorization on every mutation).
func (s *Service) ListView(ctx context.Context, sess *models.Session) (*models.CatalogView, error) {
	products, err := s.api.ListProducts(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	rows := make([]models.ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, models.ProductRow{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Price:     fmt.Sprintf("$%.2f", p.UnitPrice),
			Stock:     p.Stock,
			Threshold: p.Threshold,
			LowStock:  p.IsLowStock(),
		})
	}

	return &models.CatalogView{
		Rows:    rows,
		CanEdit: sess.User.IsAdmin(),
	}, nil
}

// SaveProduct validates and coerces the dialog's text inputs, then issues
// exactly one create or update call. ID zero means create.
func (s *Service) SaveProduct(ctx context.Context, sess *models.Session, form models.ProductForm) (*models.Product, error) {
	payload, err := parseForm(form)
	if err != nil {
		return nil, err
	}

	var (
		saved  *models.Product
		action string
	)
	if form.ID == 0 {
		saved, err = s.api.CreateProduct(ctx, sess.Token, *payload)
		action = "created"
	} else {
		saved, err = s.api.UpdateProduct(ctx, sess.Token, form.ID, *payload)
		action = "updated"
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("product saved",
		zap.String("action", action),
		zap.Int("product_id", saved.ID),
		zap.String("name", saved.Name))

	return saved, nil
}

// DeleteProduct removes a product. The confirmed flag mirrors the dialog's
// confirmation step: without it no call leaves this process.
func (s *Service) DeleteProduct(ctx context.Context, sess *models.Session, id int, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	if err := s.api.DeleteProduct(ctx, sess.Token, id); err != nil {
		return err
	}

	s.logger.Info("product deleted", zap.Int("product_id", id))
	return nil
}

func parseForm(form models.ProductForm) (*models.ProductPayload, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	category := strings.TrimSpace(form.Category)
	if category == "" {
		return nil, errors.New("category is required")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(form.UnitPrice), 64)
	if err != nil {
		return nil, fmt.Errorf("unit_price must be a decimal number: %w", err)
	}

	stock, err := strconv.Atoi(strings.TrimSpace(form.Stock))
	if err != nil {
		return nil, fmt.Errorf("stock must be an integer: %w", err)
	}

	threshold := strings.TrimSpace(form.Threshold)
	if threshold == "" {
		threshold = models.DefaultThreshold
	}
	thresholdValue, err := strconv.Atoi(threshold)
	if err != nil {
		return nil, fmt.Errorf("threshold must be an integer: %w", err)
	}

	return &models.ProductPayload{
		Name:      name,
		Category:  category,
		UnitPrice: price,
		Stock:     stock,
		Threshold: thresholdValue,
	}, nil
}
