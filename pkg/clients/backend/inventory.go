package backend

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stockdesk/dashboard/internal/domain/models"
)

// InventoryLogs fetches the most recent stock-change entries, newest first.
func (c *APIClient) InventoryLogs(ctx context.Context, token string, limit int) ([]models.InventoryLog, error) {
	var result []models.InventoryLog

	resp, err := c.request(ctx, token).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("/inventory/logs")
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// LogPurchase records an incoming stock movement.
func (c *APIClient) LogPurchase(ctx context.Context, token string, payload models.TransactionPayload) error {
	return c.logTransaction(ctx, token, "/inventory/purchase", payload)
}

// LogSale records an outgoing stock movement. Stock sufficiency is the
// backend's call; an insufficient-stock rejection comes back as APIError.
func (c *APIClient) LogSale(ctx context.Context, token string, payload models.TransactionPayload) error {
	return c.logTransaction(ctx, token, "/inventory/sale", payload)
}

func (c *APIClient) logTransaction(ctx context.Context, token, path string, payload models.TransactionPayload) error {
	resp, err := c.request(ctx, token).
		SetBody(payload).
		Post(path)
	if err != nil {
		return fmt.Errorf("log transaction: %w", err)
	}
	return checkStatus(resp)
}
