package go_vendra

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendralabs/go-vendra/cart"
	"github.com/vendralabs/go-vendra/consts"
)

// CartService is a thin lifecycle facade over the backend cart operations.
type CartService struct{ c *Client }

// Create creates a cart for one logical shopping session.
// Currency and shipping country are immutable afterwards.
func (s *CartService) Create(ctx context.Context, req *cart.CreateRequest, runOpts ...RunOption) (*cart.Cart, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	if err := validateCartCreate(req); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(consts.CartsPath)
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "POST", full, req) {
		return nil, nil
	}
	var out cart.Cart
	_, _, err = s.c.http.DoJSON(ctx, "POST", full, req, &out)
	if err != nil {
		return nil, wrapBackendError("create cart", "cart", "", err)
	}
	return &out, nil
}

// GetByID fetches the current backend state of a cart.
func (s *CartService) GetByID(ctx context.Context, cartID string, runOpts ...RunOption) (*cart.Cart, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if err := requireID("cart_id", cartID); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.CartPathF, cartID))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "GET", full, nil) {
		return nil, nil
	}
	var out cart.Cart
	_, _, err = s.c.http.DoJSON(ctx, "GET", full, nil, &out)
	if err != nil {
		return nil, wrapBackendError("get cart", "cart", cartID, err)
	}
	return &out, nil
}

// AddItems appends line items to the cart and returns the updated cart.
// The backend is the source of truth for computed fields like price.
func (s *CartService) AddItems(ctx context.Context, cartID string, items []cart.LineItemInput, runOpts ...RunOption) (*cart.Cart, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if err := validateAddItems(cartID, items); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.CartItemsPathF, cartID))
	if err != nil {
		return nil, err
	}
	req := &cart.AddItemsRequest{Items: items}
	if shouldDryRun(runOpts, "POST", full, req) {
		return nil, nil
	}
	var out cart.Cart
	_, _, err = s.c.http.DoJSON(ctx, "POST", full, req, &out)
	if err != nil {
		return nil, wrapBackendError("add cart items", "cart", cartID, err)
	}
	return &out, nil
}

// LineItemsBySupplier returns the per-supplier projection of the cart with
// each supplier's applicable shipping options.
//
// The projection is recomputed server-side per call; refetch it after any
// item or shipping mutation.
func (s *CartService) LineItemsBySupplier(ctx context.Context, cartID string, runOpts ...RunOption) ([]cart.SupplierShippingGroup, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if err := requireID("cart_id", cartID); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.CartShippingGroupsPathF, cartID))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "GET", full, nil) {
		return nil, nil
	}
	var out []cart.SupplierShippingGroup
	_, _, err = s.c.http.DoJSON(ctx, "GET", full, nil, &out)
	if err != nil {
		return nil, wrapBackendError("get shipping groups", "cart", cartID, err)
	}
	return out, nil
}

// UpdateItem partially updates one line item. At least one of the update
// fields must be set; unset fields are left unchanged server-side.
func (s *CartService) UpdateItem(ctx context.Context, cartID, itemID string, upd cart.ItemUpdate, runOpts ...RunOption) (*cart.Cart, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if err := validateItemUpdate(cartID, itemID, upd); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.CartItemPathF, cartID, itemID))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "PATCH", full, upd) {
		return nil, nil
	}
	var out cart.Cart
	_, _, err = s.c.http.DoJSON(ctx, "PATCH", full, upd, &out)
	if err != nil {
		return nil, wrapBackendError("update cart item", "cart item", itemID, err)
	}
	return &out, nil
}

// DeleteItem removes one line item. Deleting an already-gone item reports
// *NotFoundError; treat it as informational.
func (s *CartService) DeleteItem(ctx context.Context, cartID, itemID string, runOpts ...RunOption) error {
	if s == nil || s.c == nil {
		return errors.New("client is nil")
	}
	ve := &ValidationError{}
	if cartID == "" {
		ve.Add("cart_id", "is required")
	}
	if itemID == "" {
		ve.Add("item_id", "is required")
	}
	if ve.HasErrors() {
		return ve
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.CartItemPathF, cartID, itemID))
	if err != nil {
		return err
	}
	if shouldDryRun(runOpts, "DELETE", full, nil) {
		return nil
	}
	_, _, err = s.c.http.DoJSON(ctx, "DELETE", full, nil, nil)
	return wrapBackendError("delete cart item", "cart item", itemID, err)
}

// Delete removes the cart. Deleting an already-deleted cart reports
// *NotFoundError; treat it as informational.
func (s *CartService) Delete(ctx context.Context, cartID string, runOpts ...RunOption) error {
	if s == nil || s.c == nil {
		return errors.New("client is nil")
	}
	if err := requireID("cart_id", cartID); err != nil {
		return err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.CartPathF, cartID))
	if err != nil {
		return err
	}
	if shouldDryRun(runOpts, "DELETE", full, nil) {
		return nil
	}
	_, _, err = s.c.http.DoJSON(ctx, "DELETE", full, nil, nil)
	return wrapBackendError("delete cart", "cart", cartID, err)
}

// =========================
// Validation
// =========================

func requireID(field, value string) error {
	if value == "" {
		return &ValidationError{Fields: []FieldError{{Field: field, Message: "is required"}}}
	}
	return nil
}

func validateCartCreate(req *cart.CreateRequest) error {
	ve := &ValidationError{}
	if req.SessionID == "" {
		ve.Add("session_id", "is required")
	}
	if req.Currency == "" {
		ve.Add("currency", "is required")
	}
	if req.ShippingCountry == "" {
		ve.Add("shipping_country", "is required")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validateAddItems(cartID string, items []cart.LineItemInput) error {
	ve := &ValidationError{}
	if cartID == "" {
		ve.Add("cart_id", "is required")
	}
	if len(items) == 0 {
		ve.Add("items", "must contain at least one item")
	}
	for i, it := range items {
		if it.ProductID == "" {
			ve.Add(fmt.Sprintf("items[%d].product_id", i), "is required")
		}
		if it.Quantity <= 0 {
			ve.Add(fmt.Sprintf("items[%d].quantity", i), "must be > 0")
		}
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validateItemUpdate(cartID, itemID string, upd cart.ItemUpdate) error {
	ve := &ValidationError{}
	if cartID == "" {
		ve.Add("cart_id", "is required")
	}
	if itemID == "" {
		ve.Add("item_id", "is required")
	}
	if upd.IsEmpty() {
		ve.Add("update", "must set shipping_option_id or quantity")
	}
	if upd.Quantity != nil && *upd.Quantity <= 0 {
		ve.Add("quantity", "must be > 0")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}
