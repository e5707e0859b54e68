// Package checkout composes the cart store and the API session into the
// order submission flow: validate guest contact details, translate cart
// lines into an order payload, submit, and clear the cart only once the
// backend confirms the order.
package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/yeneshop/storefront/pkg/cart"
	"github.com/yeneshop/storefront/pkg/shopsdk"
	"github.com/yeneshop/storefront/pkg/slogx"
)

const (
	// defaultDeliveryETADays is the quoted delivery window for every order.
	defaultDeliveryETADays = 10

	// defaultCustomerNote is attached when the shopper leaves no note; it
	// carries the store's standing payment terms.
	defaultCustomerNote = "50% advance payment"
)

// ValidationError reports the first precondition the checkout form failed.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: %s: %s", e.Field, e.Message)
}

// ErrEmptyCart rejects a submission with nothing in the cart.
var ErrEmptyCart = &ValidationError{Field: "items", Message: "cart is empty"}

// GuestInfo is the contact block for an order. It exists only for the
// duration of the checkout dialog and is never persisted.
type GuestInfo struct {
	Name    string
	Phone   string
	City    string
	Address string
	Note    string
}

// Checkout orchestrates order submission over a cart store and a session.
type Checkout struct {
	cart    *cart.Store
	session *shopsdk.Session
}

// New creates a checkout flow.
func New(cartStore *cart.Store, session *shopsdk.Session) *Checkout {
	return &Checkout{cart: cartStore, session: session}
}

// Submit validates the guest fields and the cart, builds the order payload
// and submits it through the session's authorized path (guest checkout
// needs no token; a logged-in shopper's order is attributed). On success
// the cart is cleared; on any failure it is left untouched so the shopper
// can retry without re-entering items.
//
// All validation happens before any network call, so a *ValidationError is
// guaranteed free of side effects.
func (c *Checkout) Submit(ctx context.Context, info GuestInfo) (*shopsdk.Order, error) {
	if err := validateGuestInfo(info); err != nil {
		return nil, err
	}

	items := c.cart.Load(ctx)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order, err := c.session.CreateOrder(ctx, buildOrderRequest(info, items))
	if err != nil {
		return nil, err
	}

	// Order confirmed: the cart's job is done. A failed clear must not
	// fail the submission the shopper already paid for.
	if _, err := c.cart.Clear(ctx); err != nil {
		slogx.FromContext(ctx).Warn("order submitted but cart clear failed", "order_code", order.OrderCode, "error", err)
	}

	return order, nil
}

func validateGuestInfo(info GuestInfo) *ValidationError {
	required := []struct {
		field string
		value string
	}{
		{"guest_name", info.Name},
		{"guest_phone", info.Phone},
		{"guest_city", info.City},
		{"guest_address", info.Address},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.field, Message: "is required"}
		}
	}
	return nil
}

func buildOrderRequest(info GuestInfo, items []cart.LineItem) shopsdk.CreateOrderRequest {
	orderItems := make([]shopsdk.OrderItem, 0, len(items))
	for _, item := range items {
		// The variant is the purchasable unit; variant-less products fall
		// back to the product reference itself.
		ref := item.VariantID
		if ref == "" {
			ref = item.ProductID
		}
		orderItems = append(orderItems, shopsdk.OrderItem{
			ProductVariant: ref,
			Quantity:       item.Quantity,
		})
	}

	note := strings.TrimSpace(info.Note)
	if note == "" {
		note = defaultCustomerNote
	}

	return shopsdk.CreateOrderRequest{
		DeliveryETADays: defaultDeliveryETADays,
		CustomerNote:    note,
		GuestName:       info.Name,
		GuestPhone:      info.Phone,
		GuestCity:       info.City,
		GuestAddress:    info.Address,
		Items:           orderItems,
	}
}
