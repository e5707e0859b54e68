package shopsdk

// ============================================================================
// Auth Types
// ============================================================================

// RegisterRequest is the payload for POST /user/register/.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// AuthResponse is returned by the login and registration endpoints: the
// token pair plus a summary of the authenticated user.
type AuthResponse struct {
	// Access is the short-lived JWT bearer credential
	Access string `json:"access"`

	// Refresh is the longer-lived credential used to mint new access tokens
	Refresh string `json:"refresh"`

	User UserSummary `json:"user"`
}

// UserSummary is the user profile subset the auth endpoints return.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenRefreshRequest struct {
	Refresh string `json:"refresh"`
}

type tokenRefreshResponse struct {
	Access string `json:"access"`
}

// ============================================================================
// Catalog Types
// ============================================================================

// ProductVariantImage is a single image attached to a variant.
type ProductVariantImage struct {
	ImageURL string `json:"image_url"`
}

// ProductVariant is a purchasable configuration of a product with its own
// price delta and images. Money fields arrive as decimal strings.
type ProductVariant struct {
	ID         string                `json:"id"`
	Color      string                `json:"color"`
	Size       string                `json:"size"`
	ExtraPrice string                `json:"extra_price"`
	Images     []ProductVariantImage `json:"images"`
}

// Product is a catalog product with its variants.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	BasePrice   string           `json:"base_price"`
	Variants    []ProductVariant `json:"variants"`
}

// FeaturedCategory is a curated storefront category tile.
type FeaturedCategory struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ============================================================================
// Order Types
// ============================================================================

// OrderItem references the purchased variant (or the product itself for
// variant-less products) and a quantity.
type OrderItem struct {
	ProductVariant string `json:"product_variant"`
	Quantity       int    `json:"quantity"`
}

// CreateOrderRequest is the payload for POST /orders/. Guest fields allow
// checkout without an authenticated session.
type CreateOrderRequest struct {
	DeliveryETADays int         `json:"delivery_eta_days"`
	CustomerNote    string      `json:"customer_note"`
	GuestName       string      `json:"guest_name"`
	GuestPhone      string      `json:"guest_phone"`
	GuestCity       string      `json:"guest_city"`
	GuestAddress    string      `json:"guest_address"`
	Items           []OrderItem `json:"items"`
}

// OrderItemDetail is a line of a created or fetched order.
type OrderItemDetail struct {
	ProductVariant string `json:"product_variant"`
	Quantity       int    `json:"quantity"`
	PricePerUnit   string `json:"price_per_unit"`
}

// Order is the backend's representation of a submitted order.
type Order struct {
	OrderCode  string            `json:"order_code"`
	Status     string            `json:"status"`
	TotalPrice string            `json:"total_price"`
	Items      []OrderItemDetail `json:"items,omitempty"`
	CreatedAt  string            `json:"created_at,omitempty"`
}

// ============================================================================
// Admin Types
// ============================================================================

// CreateAdminProductRequest creates a product through the admin dashboard API.
type CreateAdminProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// CreateVariantRequest attaches a new variant to an existing product.
type CreateVariantRequest struct {
	Product    string `json:"product"`
	Color      string `json:"color"`
	Size       string `json:"size"`
	ExtraPrice string `json:"extra_price"`
}

// AdminUser is the user record exposed to the admin dashboard.
type AdminUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// AdminOrderItem is an order line as the admin API expands it, with the
// variant and owning product inlined.
type AdminOrderItem struct {
	ProductVariant struct {
		ID         string `json:"id"`
		Color      string `json:"color"`
		Size       string `json:"size"`
		ExtraPrice string `json:"extra_price,omitempty"`
		Product    *struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			ImageURL  string `json:"image_url,omitempty"`
			BasePrice string `json:"base_price,omitempty"`
		} `json:"product,omitempty"`
	} `json:"product_variant"`
	Quantity   int    `json:"quantity"`
	TotalPrice string `json:"total_price"`
}

// AdminOrder is the full order record exposed to the admin dashboard.
type AdminOrder struct {
	OrderCode       string           `json:"order_code"`
	Status          string           `json:"status"`
	PaymentMethod   string           `json:"payment_method,omitempty"`
	DeliveryETADays int              `json:"delivery_eta_days,omitempty"`
	CustomerNote    string           `json:"customer_note,omitempty"`
	GuestName       string           `json:"guest_name,omitempty"`
	GuestPhone      string           `json:"guest_phone,omitempty"`
	GuestCity       string           `json:"guest_city,omitempty"`
	GuestAddress    string           `json:"guest_address,omitempty"`
	User            string           `json:"user,omitempty"`
	TotalPrice      string           `json:"total_price,omitempty"`
	Items           []AdminOrderItem `json:"items"`
	CreatedAt       string           `json:"created_at,omitempty"`
}
