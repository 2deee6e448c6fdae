package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stockdesk/dashboard/internal/domain/models"
)

// API exposes every inventory-backend endpoint the dashboard consumes. The
// bearer token travels per call because it belongs to a session, not to the
// process.
type API interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)

	ListProducts(ctx context.Context, token string) ([]models.Product, error)
	CreateProduct(ctx context.Context, token string, payload models.ProductPayload) (*models.Product, error)
	UpdateProduct(ctx context.Context, token string, id int, payload models.ProductPayload) (*models.Product, error)
	DeleteProduct(ctx context.Context, token string, id int) error

	InventoryLogs(ctx context.Context, token string, limit int) ([]models.InventoryLog, error)
	LogPurchase(ctx context.Context, token string, payload models.TransactionPayload) error
	LogSale(ctx context.Context, token string, payload models.TransactionPayload) error

	LowStock(ctx context.Context, token string) ([]models.LowStockItem, error)
	FastMoving(ctx context.Context, token string) ([]models.FastMovingItem, error)
	SalesSummary(ctx context.Context, token string) (*models.SalesSummary, error)
	RevenueTrend(ctx context.Context, token string, days int) ([]models.RevenuePoint, error)
	Forecast(ctx context.Context, token string, productID int) (*ForecastResult, error)
}

// APIClient is a resty-backed implementation of API.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds an inventory-backend client rooted at baseURL.
func NewClient(baseURL string) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{httpClient: restyClient}
}

// APIError is a non-2xx backend reply. Detail carries the backend's
// structured message when one was supplied.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend api error: status=%d detail=%s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend api error: status=%d", e.StatusCode)
}

// Message returns the human-readable text a view should surface.
func (e *APIError) Message(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}

// errorBody matches the backend's error envelope, e.g. {"detail": "Insufficient stock"}.
type errorBody struct {
	Detail string `json:"detail"`
}

func (c *APIClient) request(ctx context.Context, token string) *resty.Request {
	req := c.httpClient.R().
		SetContext(ctx).
		SetError(&errorBody{})
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// checkStatus folds a non-2xx response into an *APIError.
func checkStatus(resp *resty.Response) error {
	if resp.StatusCode() < http.StatusBadRequest {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		apiErr.Detail = body.Detail
	}
	return apiErr
}
