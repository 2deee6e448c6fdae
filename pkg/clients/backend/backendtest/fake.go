// Package backendtest provides a configurable in-memory stand-in for the
// inventory backend client, used by service and handler tests.
package backendtest

import (
	"context"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/pkg/clients/backend"
)

// Fake implements backend.API with overridable function fields. Unset
// fields return zero values so tests only wire what they exercise.
type Fake struct {
	LoginFunc func(ctx context.Context, email, password string) (*backend.LoginResponse, error)

	ListProductsFunc  func(ctx context.Context, token string) ([]models.Product, error)
	CreateProductFunc func(ctx context.Context, token string, payload models.ProductPayload) (*models.Product, error)
	UpdateProductFunc func(ctx context.Context, token string, id int, payload models.ProductPayload) (*models.Product, error)
	DeleteProductFunc func(ctx context.Context, token string, id int) error

	InventoryLogsFunc func(ctx context.Context, token string, limit int) ([]models.InventoryLog, error)
	LogPurchaseFunc   func(ctx context.Context, token string, payload models.TransactionPayload) error
	LogSaleFunc       func(ctx context.Context, token string, payload models.TransactionPayload) error

	LowStockFunc     func(ctx context.Context, token string) ([]models.LowStockItem, error)
	FastMovingFunc   func(ctx context.Context, token string) ([]models.FastMovingItem, error)
	SalesSummaryFunc func(ctx context.Context, token string) (*models.SalesSummary, error)
	RevenueTrendFunc func(ctx context.Context, token string, days int) ([]models.RevenuePoint, error)
	ForecastFunc     func(ctx context.Context, token string, productID int) (*backend.ForecastResult, error)
}

var _ backend.API = (*Fake)(nil)

func (f *Fake) Login(ctx context.Context, email, password string) (*backend.LoginResponse, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, email, password)
	}
	return &backend.LoginResponse{}, nil
}

func (f *Fake) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	if f.ListProductsFunc != nil {
		return f.ListProductsFunc(ctx, token)
	}
	return nil, nil
}

func (f *Fake) CreateProduct(ctx context.Context, token string, payload models.ProductPayload) (*models.Product, error) {
	if f.CreateProductFunc != nil {
		return f.CreateProductFunc(ctx, token, payload)
	}
	return &models.Product{}, nil
}

func (f *Fake) UpdateProduct(ctx context.Context, token string, id int, payload models.ProductPayload) (*models.Product, error) {
	if f.UpdateProductFunc != nil {
		return f.UpdateProductFunc(ctx, token, id, payload)
	}
	return &models.Product{ID: id}, nil
}

func (f *Fake) DeleteProduct(ctx context.Context, token string, id int) error {
	if f.DeleteProductFunc != nil {
		return f.DeleteProductFunc(ctx, token, id)
	}
	return nil
}

func (f *Fake) InventoryLogs(ctx context.Context, token string, limit int) ([]models.InventoryLog, error) {
	if f.InventoryLogsFunc != nil {
		return f.InventoryLogsFunc(ctx, token, limit)
	}
	return nil, nil
}

func (f *Fake) LogPurchase(ctx context.Context, token string, payload models.TransactionPayload) error {
	if f.LogPurchaseFunc != nil {
		return f.LogPurchaseFunc(ctx, token, payload)
	}
	return nil
}

func (f *Fake) LogSale(ctx context.Context, token string, payload models.TransactionPayload) error {
	if f.LogSaleFunc != nil {
		return f.LogSaleFunc(ctx, token, payload)
	}
	return nil
}

func (f *Fake) LowStock(ctx context.Context, token string) ([]models.LowStockItem, error) {
	if f.LowStockFunc != nil {
		return f.LowStockFunc(ctx, token)
	}
	return nil, nil
}

func (f *Fake) FastMoving(ctx context.Context, token string) ([]models.FastMovingItem, error) {
	if f.FastMovingFunc != nil {
		return f.FastMovingFunc(ctx, token)
	}
	return nil, nil
}

func (f *Fake) SalesSummary(ctx context.Context, token string) (*models.SalesSummary, error) {
	if f.SalesSummaryFunc != nil {
		return f.SalesSummaryFunc(ctx, token)
	}
	return &models.SalesSummary{}, nil
}

func (f *Fake) RevenueTrend(ctx context.Context, token string, days int) ([]models.RevenuePoint, error) {
	if f.RevenueTrendFunc != nil {
		return f.RevenueTrendFunc(ctx, token, days)
	}
	return nil, nil
}

func (f *Fake) Forecast(ctx context.Context, token string, productID int) (*backend.ForecastResult, error) {
	if f.ForecastFunc != nil {
		return f.ForecastFunc(ctx, token, productID)
	}
	return &backend.ForecastResult{}, nil
}
