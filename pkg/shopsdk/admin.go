package shopsdk

import (
	"context"
	"fmt"
	"net/http"
)

// adminPrefix roots the dashboard's parallel CRUD API. Every admin call is
// session-scoped: the backend rejects it without an admin bearer token.
const adminPrefix = "/dashboard/yene_admin"

// ============================================================================
// Admin Products
// ============================================================================

// AdminProducts lists all products through the dashboard API.
func (s *Session) AdminProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := s.do(ctx, http.MethodGet, adminPrefix+"/products/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminProduct fetches a single product through the dashboard API.
func (s *Session) AdminProduct(ctx context.Context, productID string) (*Product, error) {
	var out Product
	path := fmt.Sprintf("%s/products/%s/", adminPrefix, productID)
	if err := s.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAdminProduct creates a product.
func (s *Session) CreateAdminProduct(ctx context.Context, req CreateAdminProductRequest) (*Product, error) {
	var out Product
	if err := s.do(ctx, http.MethodPost, adminPrefix+"/products/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAdminProduct updates a product in place.
func (s *Session) UpdateAdminProduct(
	ctx context.Context,
	productID string,
	req CreateAdminProductRequest,
) (*Product, error) {
	var out Product
	path := fmt.Sprintf("%s/products/%s/", adminPrefix, productID)
	if err := s.do(ctx, http.MethodPut, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAdminProduct removes a product.
func (s *Session) DeleteAdminProduct(ctx context.Context, productID string) error {
	path := fmt.Sprintf("%s/products/%s/", adminPrefix, productID)
	return s.do(ctx, http.MethodDelete, path, nil, nil)
}

// CreateProductVariant attaches a new variant to an existing product.
func (s *Session) CreateProductVariant(ctx context.Context, req CreateVariantRequest) (*ProductVariant, error) {
	var out ProductVariant
	if err := s.do(ctx, http.MethodPost, adminPrefix+"/product-variants/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Admin Orders
// ============================================================================

// AdminOrders lists all orders through the dashboard API.
func (s *Session) AdminOrders(ctx context.Context) ([]AdminOrder, error) {
	var out []AdminOrder
	if err := s.do(ctx, http.MethodGet, adminPrefix+"/orders/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminOrder fetches one order by its order code.
func (s *Session) AdminOrder(ctx context.Context, orderCode string) (*AdminOrder, error) {
	var out AdminOrder
	path := fmt.Sprintf("%s/orders/%s/", adminPrefix, orderCode)
	if err := s.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus moves an order to a new fulfilment status.
func (s *Session) UpdateOrderStatus(ctx context.Context, orderCode, status string) (*AdminOrder, error) {
	var out AdminOrder
	path := fmt.Sprintf("%s/orders/%s/", adminPrefix, orderCode)
	payload := map[string]string{"status": status}
	if err := s.do(ctx, http.MethodPut, path, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAdminOrder removes an order.
func (s *Session) DeleteAdminOrder(ctx context.Context, orderCode string) error {
	path := fmt.Sprintf("%s/orders/%s/", adminPrefix, orderCode)
	return s.do(ctx, http.MethodDelete, path, nil, nil)
}

// ============================================================================
// Admin Users
// ============================================================================

// AdminUsers lists registered users.
func (s *Session) AdminUsers(ctx context.Context) ([]AdminUser, error) {
	var out []AdminUser
	if err := s.do(ctx, http.MethodGet, adminPrefix+"/users/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminUser fetches a single user by id.
func (s *Session) AdminUser(ctx context.Context, userID string) (*AdminUser, error) {
	var out AdminUser
	path := fmt.Sprintf("%s/users/%s/", adminPrefix, userID)
	if err := s.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
