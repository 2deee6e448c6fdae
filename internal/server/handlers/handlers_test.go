package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/internal/server/handlers"
	"github.com/stockdesk/dashboard/internal/server/router"
	"github.com/stockdesk/dashboard/internal/service/analytics"
	"github.com/stockdesk/dashboard/internal/service/catalog"
	"github.com/stockdesk/dashboard/internal/service/inventory"
	"github.com/stockdesk/dashboard/internal/session"
	"github.com/stockdesk/dashboard/pkg/clients/backend"
	"github.com/stockdesk/dashboard/pkg/clients/backend/backendtest"
)

const cookieName = "stockdesk_session"

func newTestRouter(api backend.API, store session.Store) *gin.Engine {
	return router.New(router.Handlers{
		Auth:      handlers.NewAuthHandler(api, store, cookieName, nil),
		Catalog:   handlers.NewCatalogHandler(catalog.NewService(api, nil), nil),
		Inventory: handlers.NewInventoryHandler(inventory.NewService(api, nil), nil),
		Analytics: handlers.NewAnalyticsHandler(analytics.NewService(api, nil), nil),
	}, store, cookieName, nil)
}

func loggedInCookie(t *testing.T, store session.Store, role string) *http.Cookie {
	t.Helper()
	sess, err := store.Create(context.Background(), models.User{ID: 1, Name: "Amina", Role: role}, "tok")
	require.NoError(t, err)
	return &http.Cookie{Name: cookieName, Value: sess.ID}
}

func TestLogin_CreatesSessionAndSetsCookie(t *testing.T) {
	api := &backendtest.Fake{
		LoginFunc: func(_ context.Context, email, password string) (*backend.LoginResponse, error) {
			assert.Equal(t, "amina@example.com", email)
			assert.Equal(t, "secret", password)
			return &backend.LoginResponse{
				AccessToken: "tok-123",
				User:        models.User{ID: 1, Name: "Amina", Role: "admin"},
			}, nil
		},
	}
	store := session.NewMemoryStore()
	r := newTestRouter(api, store)

	body := `{"email":"amina@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "session cookie must be set")

	sess, err := store.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", sess.Token)
	assert.Equal(t, "Amina", sess.User.Name)
}

func TestLogin_BackendRejectionSurfacesDetail(t *testing.T) {
	api := &backendtest.Fake{
		LoginFunc: func(context.Context, string, string) (*backend.LoginResponse, error) {
			return nil, &backend.APIError{StatusCode: http.StatusUnauthorized, Detail: "Incorrect email or password"}
		},
	}
	r := newTestRouter(api, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect email or password")
}

func TestViews_RequireSession(t *testing.T) {
	r := newTestRouter(&backendtest.Fake{}, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/views/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/login", resp["redirect"])
}

func TestLogout_ClearsSessionAndRedirects(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(&backendtest.Fake{}, store)
	cookie := loggedInCookie(t, store, "staff")

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/login")

	_, err := store.Get(context.Background(), cookie.Value)
	assert.ErrorIs(t, err, session.ErrNotFound)

	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge, "cookie must be expired")
}

func TestDeleteProduct_WithoutConfirmationIssuesNoCall(t *testing.T) {
	var deletes int
	api := &backendtest.Fake{
		DeleteProductFunc: func(context.Context, string, int) error {
			deletes++
			return nil
		},
	}
	store := session.NewMemoryStore()
	r := newTestRouter(api, store)
	cookie := loggedInCookie(t, store, "admin")

	req := httptest.NewRequest(http.MethodDelete, "/views/products/3", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, deletes)

	req = httptest.NewRequest(http.MethodDelete, "/views/products/3?confirm=true", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, deletes)
}

func TestLogTransaction_RefreshesView(t *testing.T) {
	var sales int
	api := &backendtest.Fake{
		LogSaleFunc: func(_ context.Context, _ string, payload models.TransactionPayload) error {
			sales++
			assert.Equal(t, models.TransactionPayload{ProductID: 7, Quantity: 3}, payload)
			return nil
		},
		ListProductsFunc: func(context.Context, string) ([]models.Product, error) {
			return []models.Product{{ID: 7, Name: "Soap", Stock: 22}}, nil
		},
	}
	store := session.NewMemoryStore()
	r := newTestRouter(api, store)
	cookie := loggedInCookie(t, store, "staff")

	body := `{"kind":"sale","product_id":"7","quantity":"3"}`
	req := httptest.NewRequest(http.MethodPost, "/views/inventory/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, sales)

	var view models.InventoryView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Products, 1)
	assert.Equal(t, "Soap (Stock: 22)", view.Products[0].Label)
}

func TestForecast_InvalidProductID(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(&backendtest.Fake{}, store)
	cookie := loggedInCookie(t, store, "staff")

	req := httptest.NewRequest(http.MethodGet, "/views/analytics/forecast?product_id=abc", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
