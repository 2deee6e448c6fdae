package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/internal/service/catalog"
	"github.com/stockdesk/dashboard/pkg/clients/backend/backendtest"
)

func adminSession() *models.Session {
	return &models.Session{ID: "s1", User: models.User{Name: "Amina", Role: "admin"}, Token: "tok"}
}

func staffSession() *models.Session {
	return &models.Session{ID: "s2", User: models.User{Name: "Bakary", Role: "staff"}, Token: "tok"}
}

func TestListView_FlagsLowStockRows(t *testing.T) {
	api := &backendtest.Fake{
		ListProductsFunc: func(_ context.Context, token string) ([]models.Product, error) {
			assert.Equal(t, "tok", token)
			return []models.Product{
				{ID: 1, Name: "Rice 5kg", Category: "Food", UnitPrice: 12.5, Stock: 4, Threshold: 10},
				{ID: 2, Name: "Oil 1L", Category: "Food", UnitPrice: 3, Stock: 10, Threshold: 10},
				{ID: 3, Name: "Soap", Category: "Hygiene", UnitPrice: 1.25, Stock: 25, Threshold: 5},
			}, nil
		},
	}
	svc := catalog.NewService(api, nil)

	view, err := svc.ListView(context.Background(), adminSession())
	require.NoError(t, err)

	require.Len(t, view.Rows, 3)
	assert.True(t, view.Rows[0].LowStock, "stock 4 < threshold 10")
	assert.False(t, view.Rows[1].LowStock, "stock equal to threshold is not low")
	assert.False(t, view.Rows[2].LowStock)
	assert.Equal(t, "$12.50", view.Rows[0].Price)
	assert.True(t, view.CanEdit)
}

func TestListView_StaffCannotEdit(t *testing.T) {
	svc := catalog.NewService(&backendtest.Fake{}, nil)

	view, err := svc.ListView(context.Background(), staffSession())
	require.NoError(t, err)
	assert.False(t, view.CanEdit)
}

func TestSaveProduct_CreateCoercesFormFields(t *testing.T) {
	var calls int
	api := &backendtest.Fake{
		CreateProductFunc: func(_ context.Context, _ string, payload models.ProductPayload) (*models.Product, error) {
			calls++
			assert.Equal(t, "Rice 5kg", payload.Name)
			assert.Equal(t, "Food", payload.Category)
			assert.InDelta(t, 12.5, payload.UnitPrice, 0.001)
			assert.Equal(t, 40, payload.Stock)
			assert.Equal(t, 10, payload.Threshold)
			return &models.Product{ID: 1, Name: payload.Name}, nil
		},
	}
	svc := catalog.NewService(api, nil)

	_, err := svc.SaveProduct(context.Background(), adminSession(), models.ProductForm{
		Name:      "Rice 5kg",
		Category:  "Food",
		UnitPrice: "12.50",
		Stock:     "40",
		Threshold: "", // defaults to 10
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "exactly one API call per submit")
}

func TestSaveProduct_UpdateUsesPut(t *testing.T) {
	var updated int
	api := &backendtest.Fake{
		UpdateProductFunc: func(_ context.Context, _ string, id int, payload models.ProductPayload) (*models.Product, error) {
			updated++
			assert.Equal(t, 5, id)
			assert.Equal(t, 3, payload.Threshold)
			return &models.Product{ID: id}, nil
		},
		CreateProductFunc: func(context.Context, string, models.ProductPayload) (*models.Product, error) {
			t.Fatal("update must not create")
			return nil, nil
		},
	}
	svc := catalog.NewService(api, nil)

	_, err := svc.SaveProduct(context.Background(), adminSession(), models.ProductForm{
		ID:        5,
		Name:      "Oil 1L",
		Category:  "Food",
		UnitPrice: "3",
		Stock:     "12",
		Threshold: "3",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestSaveProduct_InvalidInputIssuesNoCall(t *testing.T) {
	tests := []struct {
		name string
		form models.ProductForm
	}{
		{"empty name", models.ProductForm{Name: " ", Category: "Food", UnitPrice: "1", Stock: "1"}},
		{"empty category", models.ProductForm{Name: "Rice", Category: "", UnitPrice: "1", Stock: "1"}},
		{"bad price", models.ProductForm{Name: "Rice", Category: "Food", UnitPrice: "abc", Stock: "1"}},
		{"bad stock", models.ProductForm{Name: "Rice", Category: "Food", UnitPrice: "1", Stock: "1.5"}},
		{"bad threshold", models.ProductForm{Name: "Rice", Category: "Food", UnitPrice: "1", Stock: "1", Threshold: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &backendtest.Fake{
				CreateProductFunc: func(context.Context, string, models.ProductPayload) (*models.Product, error) {
					t.Fatal("invalid form must not reach the backend")
					return nil, nil
				},
			}
			svc := catalog.NewService(api, nil)

			_, err := svc.SaveProduct(context.Background(), adminSession(), tt.form)
			assert.Error(t, err)
		})
	}
}

func TestDeleteProduct_RequiresConfirmation(t *testing.T) {
	var deletes int
	api := &backendtest.Fake{
		DeleteProductFunc: func(_ context.Context, _ string, id int) error {
			deletes++
			assert.Equal(t, 3, id)
			return nil
		},
	}
	svc := catalog.NewService(api, nil)

	err := svc.DeleteProduct(context.Background(), adminSession(), 3, false)
	assert.ErrorIs(t, err, catalog.ErrNotConfirmed)
	assert.Zero(t, deletes, "cancelled confirmation issues no call")

	require.NoError(t, svc.DeleteProduct(context.Background(), adminSession(), 3, true))
	assert.Equal(t, 1, deletes)
}
