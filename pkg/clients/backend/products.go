package backend

import (
	"context"
	"fmt"

	"github.com/stockdesk/dashboard/internal/domain/models"
)

// ListProducts fetches the full catalog.
func (c *APIClient) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	var result []models.Product

	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/products")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateProduct registers a new catalog record.
func (c *APIClient) CreateProduct(ctx context.Context, token string, payload models.ProductPayload) (*models.Product, error) {
	result := new(models.Product)

	resp, err := c.request(ctx, token).
		SetBody(payload).
		SetResult(result).
		Post("/products")
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateProduct replaces the mutable fields of an existing record.
func (c *APIClient) UpdateProduct(ctx context.Context, token string, id int, payload models.ProductPayload) (*models.Product, error) {
	result := new(models.Product)

	resp, err := c.request(ctx, token).
		SetBody(payload).
		SetResult(result).
		Put(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteProduct removes a catalog record.
func (c *APIClient) DeleteProduct(ctx context.Context, token string, id int) error {
	resp, err := c.request(ctx, token).
		Delete(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return checkStatus(resp)
}
