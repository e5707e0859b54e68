package shopsdk

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yeneshop/storefront/pkg/storage"
)

// newAdminSession returns a session holding a valid admin access token.
func newAdminSession(t *testing.T, mux *http.ServeMux) *Session {
	t.Helper()

	store := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.KeyAccessToken, mintAccessToken(t, "admin-1", time.Hour)))
	require.NoError(t, store.Set(ctx, storage.KeyRefreshToken, "admin-refresh"))

	return newTestClient(t, mux).NewSession(store)
}

func TestAdminProductsRequireBearer(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /dashboard/yene_admin/products/", func(w http.ResponseWriter, r *http.Request) {
		if !verifyBearer(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, []Product{{ID: "p-1", Name: "Habesha Dress"}})
	})

	session := newAdminSession(t, mux)

	products, err := session.AdminProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestCreateAdminProduct(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /dashboard/yene_admin/products/", func(w http.ResponseWriter, r *http.Request) {
		if !verifyBearer(w, r) {
			return
		}
		var req CreateAdminProductRequest
		require.NoError(t, decodeBody(r, &req))
		require.Equal(t, "Scarf", req.Name)
		require.InDelta(t, 450.0, req.BasePrice, 1e-9)
		writeJSON(w, http.StatusCreated, Product{ID: "p-9", Name: req.Name, BasePrice: "450.00"})
	})

	session := newAdminSession(t, mux)

	product, err := session.CreateAdminProduct(context.Background(), CreateAdminProductRequest{
		Name:        "Scarf",
		Description: "Wool scarf",
		BasePrice:   450,
	})
	require.NoError(t, err)
	require.Equal(t, "p-9", product.ID)
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /dashboard/yene_admin/orders/ORD-7/", func(w http.ResponseWriter, r *http.Request) {
		if !verifyBearer(w, r) {
			return
		}
		var req map[string]string
		require.NoError(t, decodeBody(r, &req))
		require.Equal(t, "shipped", req["status"])
		writeJSON(w, http.StatusOK, AdminOrder{OrderCode: "ORD-7", Status: "shipped"})
	})

	session := newAdminSession(t, mux)

	order, err := session.UpdateOrderStatus(context.Background(), "ORD-7", "shipped")
	require.NoError(t, err)
	require.Equal(t, "shipped", order.Status)
}

func TestDeleteAdminProduct(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /dashboard/yene_admin/products/p-1/", func(w http.ResponseWriter, r *http.Request) {
		if !verifyBearer(w, r) {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	session := newAdminSession(t, mux)

	require.NoError(t, session.DeleteAdminProduct(context.Background(), "p-1"))
}

func TestAdminUsers(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /dashboard/yene_admin/users/", func(w http.ResponseWriter, r *http.Request) {
		if !verifyBearer(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, []AdminUser{{ID: "u-1", Email: "jo@example.com", IsActive: true}})
	})

	session := newAdminSession(t, mux)

	users, err := session.AdminUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.True(t, users[0].IsActive)
}
