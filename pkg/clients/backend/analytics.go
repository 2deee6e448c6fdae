package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stockdesk/dashboard/internal/domain/models"
)

// LowStock fetches every product currently below its threshold.
func (c *APIClient) LowStock(ctx context.Context, token string) ([]models.LowStockItem, error) {
	var result []models.LowStockItem

	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/analytics/low-stock")
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// FastMoving fetches the top sellers over the trailing 30-day window.
func (c *APIClient) FastMoving(ctx context.Context, token string) ([]models.FastMovingItem, error) {
	var result []models.FastMovingItem

	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/analytics/fast-moving")
	if err != nil {
		return nil, fmt.Errorf("fast moving: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// SalesSummary fetches today/week/month aggregates plus stock valuation.
func (c *APIClient) SalesSummary(ctx context.Context, token string) (*models.SalesSummary, error) {
	result := new(models.SalesSummary)

	resp, err := c.request(ctx, token).
		SetResult(result).
		Get("/analytics/sales-summary")
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// RevenueTrend fetches the daily revenue series for the requested day count.
func (c *APIClient) RevenueTrend(ctx context.Context, token string, days int) ([]models.RevenuePoint, error) {
	var result []models.RevenuePoint

	resp, err := c.request(ctx, token).
		SetQueryParam("days", strconv.Itoa(days)).
		SetResult(&result).
		Get("/analytics/revenue-trend")
	if err != nil {
		return nil, fmt.Errorf("revenue trend: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// ForecastResult discriminates the two success shapes of the forecast
// endpoint: a prediction, or an informational "not enough history" notice.
type ForecastResult struct {
	Unavailable bool
	Notice      string
	Forecast    *models.Forecast
}

// Forecast fetches the 30-day demand prediction for one product. A 200 reply
// carrying {"error": ...} is not a failure; it becomes an unavailable result.
func (c *APIClient) Forecast(ctx context.Context, token string, productID int) (*ForecastResult, error) {
	resp, err := c.request(ctx, token).
		SetQueryParam("product_id", strconv.Itoa(productID)).
		Get("/analytics/forecast")
	if err != nil {
		return nil, fmt.Errorf("forecast product %d: %w", productID, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &probe); err != nil {
		return nil, fmt.Errorf("decode forecast reply: %w", err)
	}
	if probe.Error != "" {
		return &ForecastResult{Unavailable: true, Notice: probe.Error}, nil
	}

	forecast := new(models.Forecast)
	if err := json.Unmarshal(resp.Body(), forecast); err != nil {
		return nil, fmt.Errorf("decode forecast reply: %w", err)
	}

	return &ForecastResult{Forecast: forecast}, nil
}
