package shopsdk

import (
	"context"
	"net/http"
)

// CreateOrder submits an order. Guest checkout is supported: the request
// goes through the authorized path so a logged-in user's order is
// attributed, but no token is required.
func (s *Session) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var out Order
	if err := s.do(ctx, http.MethodPost, "/orders/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Orders fetches the authenticated user's order history.
func (s *Session) Orders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := s.do(ctx, http.MethodGet, "/orders/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
