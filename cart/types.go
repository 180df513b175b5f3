package cart

// Price is a monetary value as the backend reports it.
//
// Amount is a pointer because suppliers may publish a shipping option before
// pricing it; such options must never win cheapest-option selection while a
// priced one exists.
type Price struct {
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency"`
}

// Supplier identifies the merchant fulfilling a subset of the cart.
type Supplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShippingOption is one delivery choice applicable to a supplier's items.
type ShippingOption struct {
	ShippingOptionID string  `json:"shippingOptionId"`
	Name             *string `json:"name,omitempty"`
	Price            Price   `json:"price"`
}

// LineItem is a cart entry. Computed fields (UnitPrice) are backend-owned.
type LineItem struct {
	ItemID           string  `json:"itemId"`
	ProductID        string  `json:"productId"`
	VariantID        *string `json:"variantId,omitempty"`
	Quantity         int     `json:"quantity"`
	SupplierID       string  `json:"supplierId"`
	ShippingOptionID *string `json:"shippingOptionId,omitempty"`
	UnitPrice        *Price  `json:"unitPrice,omitempty"`
}

// Cart mirrors the backend cart entity. Currency and ShippingCountry are
// immutable once the cart is created.
type Cart struct {
	CartID          string     `json:"cartId"`
	SessionID       string     `json:"sessionId"`
	Currency        string     `json:"currency"`
	ShippingCountry string     `json:"shippingCountry"`
	LineItems       []LineItem `json:"lineItems"`
}

// CreateRequest corresponds to "Create cart" (POST /v4/carts).
type CreateRequest struct {
	SessionID       string `json:"sessionId"`
	Currency        string `json:"currency"`
	ShippingCountry string `json:"shippingCountry"`
}

// LineItemInput is one item to add (POST /v4/carts/{id}/items).
type LineItemInput struct {
	ProductID string  `json:"productId"`
	VariantID *string `json:"variantId,omitempty"`
	Quantity  int     `json:"quantity"`
}

// AddItemsRequest wraps the items array for the add-items call.
type AddItemsRequest struct {
	Items []LineItemInput `json:"items"`
}

// ItemUpdate carries the partial update for PATCH /v4/carts/{id}/items/{itemId}.
// Unset fields are left unchanged server-side.
type ItemUpdate struct {
	ShippingOptionID *string `json:"shippingOptionId,omitempty"`
	Quantity         *int    `json:"quantity,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (u ItemUpdate) IsEmpty() bool {
	return u.ShippingOptionID == nil && u.Quantity == nil
}

// SupplierShippingGroup is the per-supplier projection of a cart with the
// shipping options applicable to that supplier's items.
//
// It is derived, not persisted: availability can change after any item or
// shipping mutation, so it must be refetched per optimization pass.
type SupplierShippingGroup struct {
	Supplier           Supplier         `json:"supplier"`
	LineItems          []LineItem       `json:"lineItems"`
	AvailableShippings []ShippingOption `json:"availableShippings"`
}
