package shopsdk

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

const productsJSON = `[
	{
		"id": "p-1",
		"name": "Habesha Dress",
		"description": "Hand-woven cotton",
		"image_url": "https://cdn.example.com/p-1.jpg",
		"base_price": "1200.00",
		"variants": [
			{
				"id": "v-1",
				"color": "white",
				"size": "M",
				"extra_price": "150.00",
				"images": [{"image_url": "https://cdn.example.com/v-1.jpg"}]
			},
			{
				"id": "v-2",
				"color": "blue",
				"size": "L",
				"extra_price": "",
				"images": []
			}
		]
	}
]`

func TestProducts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productsJSON))
	})

	client := newTestClient(t, mux)

	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Habesha Dress", products[0].Name)
	require.Equal(t, "1200.00", products[0].BasePrice)
	require.Len(t, products[0].Variants, 2)
}

func TestProductByID(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/p-1/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, Product{ID: "p-1", Name: "Habesha Dress", BasePrice: "1200.00"})
	})

	client := newTestClient(t, mux)

	product, err := client.Product(context.Background(), "p-1")
	require.NoError(t, err)
	require.Equal(t, "p-1", product.ID)
}

func TestProductNotFound(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/missing/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	})

	client := newTestClient(t, mux)

	_, err := client.Product(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "Not found.", apiErr.Detail)
}

func TestFeaturedCategories(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/featured-categories/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []FeaturedCategory{
			{Title: "New Arrivals", Description: "Latest pieces", Image: "https://cdn.example.com/new.jpg"},
		})
	})

	client := newTestClient(t, mux)

	categories, err := client.FeaturedCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "New Arrivals", categories[0].Title)
}

func TestProductUnitPrice(t *testing.T) {
	t.Parallel()

	product := Product{
		ID:        "p-1",
		BasePrice: "1200.00",
		Variants: []ProductVariant{
			{ID: "v-1", Color: "white", Size: "M", ExtraPrice: "150.00"},
			{ID: "v-2", Color: "blue", Size: "L", ExtraPrice: ""},
		},
	}

	t.Run("without variant", func(t *testing.T) {
		price, err := product.UnitPrice(nil)
		require.NoError(t, err)
		require.InDelta(t, 1200.0, price, 1e-9)
	})

	t.Run("variant extra applied", func(t *testing.T) {
		variant, ok := product.Variant("v-1")
		require.True(t, ok)

		price, err := product.UnitPrice(variant)
		require.NoError(t, err)
		require.InDelta(t, 1350.0, price, 1e-9)
	})

	t.Run("empty extra price means no delta", func(t *testing.T) {
		variant, ok := product.Variant("v-2")
		require.True(t, ok)

		price, err := product.UnitPrice(variant)
		require.NoError(t, err)
		require.InDelta(t, 1200.0, price, 1e-9)
	})

	t.Run("unknown variant id", func(t *testing.T) {
		_, ok := product.Variant("v-404")
		require.False(t, ok)
	})
}
