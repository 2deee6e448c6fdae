package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/pkg/clients/backend"
)

func TestLogin_SendsFormCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "amina@example.com", r.PostFormValue("username"))
		assert.Equal(t, "secret", r.PostFormValue("password"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"token_type":   "bearer",
			"user":         map[string]any{"id": 1, "name": "Amina", "email": "amina@example.com", "role": "admin"},
		})
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	grant, err := client.Login(context.Background(), "amina@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "tok-123", grant.AccessToken)
	assert.Equal(t, "admin", grant.User.Role)
}

func TestListProducts_AttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Rice 5kg","category":"Food","unit_price":12.5,"stock":4,"threshold":10}]`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	products, err := client.ListProducts(context.Background(), "tok-123")
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Rice 5kg", products[0].Name)
	assert.True(t, products[0].IsLowStock())
}

func TestLogSale_SurfacesBackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/inventory/sale", r.URL.Path)

		var payload models.TransactionPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 7, payload.ProductID)
		assert.Equal(t, 100, payload.Quantity)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Insufficient stock"}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	err := client.LogSale(context.Background(), "tok", models.TransactionPayload{ProductID: 7, Quantity: 100})
	require.Error(t, err)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Insufficient stock", apiErr.Message("fallback"))
}

func TestDeleteProduct_NoDetailFallsBackToGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	err := client.DeleteProduct(context.Background(), "tok", 3)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to delete product", apiErr.Message("Failed to delete product"))
}

func TestForecast_InformationalErrorIsNotAFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("product_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"Not enough historical data"}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	result, err := client.Forecast(context.Background(), "tok", 7)
	require.NoError(t, err)

	assert.True(t, result.Unavailable)
	assert.Equal(t, "Not enough historical data", result.Notice)
	assert.Nil(t, result.Forecast)
}

func TestForecast_DecodesPrediction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"product_id": 7,
			"forecast_days": 30,
			"predicted_demand": [{"day":1,"quantity":3.5},{"day":2,"quantity":4.0}],
			"total_predicted": 7.5
		}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	result, err := client.Forecast(context.Background(), "tok", 7)
	require.NoError(t, err)

	require.False(t, result.Unavailable)
	require.NotNil(t, result.Forecast)
	assert.Equal(t, 30, result.Forecast.ForecastDays)
	require.Len(t, result.Forecast.PredictedDemand, 2)
	assert.Equal(t, 1, result.Forecast.PredictedDemand[0].Day)
	assert.InDelta(t, 7.5, result.Forecast.TotalPredicted, 0.001)
}

func TestRevenueTrend_PassesDaysParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "30", r.URL.Query().Get("days"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"date":"2026-08-01","revenue":120.5}]`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	trend, err := client.RevenueTrend(context.Background(), "tok", 30)
	require.NoError(t, err)

	require.Len(t, trend, 1)
	assert.Equal(t, "2026-08-01", trend[0].Date)
}

func TestInventoryLogs_PassesLimitParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":9,"product_id":2,"change_type":"sale","quantity":3,"timestamp":"2026-08-30T14:05:00Z"}]`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	logs, err := client.InventoryLogs(context.Background(), "tok", 50)
	require.NoError(t, err)

	require.Len(t, logs, 1)
	assert.Equal(t, models.ChangeSale, logs[0].ChangeType)
}
