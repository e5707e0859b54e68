package cart

import "encoding/json"

// LineItem is one entry in the cart: a product/variant combination, the
// unit price captured at add-time (variant extra already folded in), and a
// quantity. The JSON field names are the persisted cart schema.
type LineItem struct {
	// ID is a client-generated creation-time-derived identifier, stable
	// for the life of the line item. It is the update/removal key.
	ID string `json:"id"`

	ProductID string `json:"productId"`

	// VariantID is empty for variant-less products.
	VariantID string `json:"productVariantId,omitempty"`

	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`

	// Display attributes captured at add-time; never re-validated against
	// the catalog afterwards.
	SelectedColor string `json:"selectedColor,omitempty"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	ImageURL      string `json:"image,omitempty"`
}

// wireItem carries the canonical fields plus every legacy alias that
// earlier revisions of the persisted cart used. Decoding through it is the
// one-time normalization step at the storage boundary: whatever shape was
// stored, one canonical LineItem comes out.
type wireItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`

	VariantID      string `json:"productVariantId"`
	VariantIDAlt   string `json:"variantId"`
	VariantIDSnake string `json:"variant_id"`
	ProductVariant string `json:"product_variant"`

	Name string `json:"name"`

	Price     float64 `json:"price"`
	UnitPrice float64 `json:"unitPrice"`

	Quantity int `json:"quantity"`

	SelectedColor string `json:"selectedColor"`
	SelectedSize  string `json:"selectedSize"`

	Image         string `json:"image"`
	ImageURL      string `json:"imageUrl"`
	ImageURLSnake string `json:"image_url"`
}

// UnmarshalJSON decodes a stored line item, folding legacy field names
// into the canonical shape.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var w wireItem
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	price := w.Price
	if price == 0 {
		price = w.UnitPrice
	}

	*li = LineItem{
		ID:            w.ID,
		ProductID:     w.ProductID,
		VariantID:     firstNonEmpty(w.VariantID, w.VariantIDAlt, w.VariantIDSnake, w.ProductVariant),
		Name:          w.Name,
		UnitPrice:     price,
		Quantity:      w.Quantity,
		SelectedColor: w.SelectedColor,
		SelectedSize:  w.SelectedSize,
		ImageURL:      firstNonEmpty(w.Image, w.ImageURL, w.ImageURLSnake),
	}
	return nil
}

// mergeKey is the identity addItem uses to decide between incrementing an
// existing line and appending a new one. Variant-less products fall back
// to the captured display attributes, the strongest identity they have.
func (li LineItem) mergeKey() string {
	if li.VariantID != "" {
		return li.ProductID + "|v:" + li.VariantID
	}
	return li.ProductID + "|a:" + li.SelectedColor + "|" + li.SelectedSize
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
