package shopsdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yeneshop/storefront/pkg/pricing"
)

// Products fetches the full product catalog.
func (c *SDKClient) Products(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Product fetches a single product by id.
func (c *SDKClient) Product(ctx context.Context, productID string) (*Product, error) {
	var out Product
	path := fmt.Sprintf("/products/%s/", productID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FeaturedCategories fetches the curated storefront category tiles.
func (c *SDKClient) FeaturedCategories(ctx context.Context) ([]FeaturedCategory, error) {
	var out []FeaturedCategory
	if err := c.doJSON(ctx, http.MethodGet, "/products/featured-categories/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Variant finds a variant of the product by id.
func (p *Product) Variant(variantID string) (*ProductVariant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i], true
		}
	}
	return nil, false
}

// UnitPrice returns the effective single-unit price of the product with
// the selected variant's extra applied. A nil variant prices the bare
// product. This is the same formula the cart uses, so the detail page and
// the cart line always agree.
func (p *Product) UnitPrice(variant *ProductVariant) (float64, error) {
	base, err := pricing.ParseAmount(p.BasePrice)
	if err != nil {
		return 0, err
	}

	var extra float64
	if variant != nil {
		extra, err = pricing.ParseAmount(variant.ExtraPrice)
		if err != nil {
			return 0, err
		}
	}

	return pricing.LinePrice(base, extra, 1), nil
}
