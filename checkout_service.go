package go_vendra

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendralabs/go-vendra/checkout"
	"github.com/vendralabs/go-vendra/consts"
)

// CheckoutService is a facade over the backend checkout operations.
//
// Most callers should drive it through CheckoutOrchestrator, which owns the
// create -> update sequencing and the identifier-extraction contract.
type CheckoutService struct{ c *Client }

// Create creates a checkout tied 1:1 to a cart.
//
// The raw response is returned; the identifier key name is not stable across
// backend versions, so extraction lives in checkout.CreateResponse.FirstID.
func (s *CheckoutService) Create(ctx context.Context, cartID string, runOpts ...RunOption) (*checkout.CreateResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if err := requireID("cart_id", cartID); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(consts.CheckoutsPath)
	if err != nil {
		return nil, err
	}
	req := &checkout.CreateRequest{CartID: cartID}
	if shouldDryRun(runOpts, "POST", full, req) {
		return nil, nil
	}
	var out checkout.CreateResponse
	_, _, err = s.c.http.DoJSON(ctx, "POST", full, req, &out)
	if err != nil {
		return nil, wrapBackendError("create checkout", "checkout", "", err)
	}
	return &out, nil
}

// Update attaches buyer, address and consent data to the checkout.
func (s *CheckoutService) Update(ctx context.Context, checkoutID string, req *checkout.UpdateRequest, runOpts ...RunOption) (*checkout.Checkout, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	if err := validateCheckoutUpdate(checkoutID, req); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.CheckoutPathF, checkoutID))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "PUT", full, req) {
		return nil, nil
	}
	var out checkout.Checkout
	_, _, err = s.c.http.DoJSON(ctx, "PUT", full, req, &out)
	if err != nil {
		return nil, wrapBackendError("update checkout", "checkout", checkoutID, err)
	}
	return &out, nil
}

// GetByID fetches the backend-reported checkout state.
func (s *CheckoutService) GetByID(ctx context.Context, checkoutID string, runOpts ...RunOption) (*checkout.Checkout, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if err := requireID("checkout_id", checkoutID); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.CheckoutPathF, checkoutID))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "GET", full, nil) {
		return nil, nil
	}
	var out checkout.Checkout
	_, _, err = s.c.http.DoJSON(ctx, "GET", full, nil, &out)
	if err != nil {
		return nil, wrapBackendError("get checkout", "checkout", checkoutID, err)
	}
	return &out, nil
}

// Delete removes the checkout. Deleting an already-gone checkout reports
// *NotFoundError; treat it as informational.
func (s *CheckoutService) Delete(ctx context.Context, checkoutID string, runOpts ...RunOption) error {
	if s == nil || s.c == nil {
		return errors.New("client is nil")
	}
	if err := requireID("checkout_id", checkoutID); err != nil {
		return err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.CheckoutPathF, checkoutID))
	if err != nil {
		return err
	}
	if shouldDryRun(runOpts, "DELETE", full, nil) {
		return nil
	}
	_, _, err = s.c.http.DoJSON(ctx, "DELETE", full, nil, nil)
	return wrapBackendError("delete checkout", "checkout", checkoutID, err)
}

// =========================
// Validation
// =========================

func validateCheckoutUpdate(checkoutID string, req *checkout.UpdateRequest) error {
	ve := &ValidationError{}
	if checkoutID == "" {
		ve.Add("checkout_id", "is required")
	}
	if req.Email == "" {
		ve.Add("email", "is required")
	}
	if req.SuccessURL == "" {
		ve.Add("success_url", "is required")
	}
	if req.CancelURL == "" {
		ve.Add("cancel_url", "is required")
	}
	if req.ShippingAddress == nil {
		ve.Add("shipping_address", "is required")
	} else {
		validateAddress(ve, "shipping_address", req.ShippingAddress)
	}
	if req.BillingAddress == nil {
		ve.Add("billing_address", "is required")
	} else {
		validateAddress(ve, "billing_address", req.BillingAddress)
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// validateAddress checks the fields the backend rejects when blank.
// Address2, Company, Province and ProvinceCode may legitimately be empty.
func validateAddress(ve *ValidationError, prefix string, a *checkout.Address) {
	required := []struct {
		field string
		value string
	}{
		{"address1", a.Address1},
		{"city", a.City},
		{"country", a.Country},
		{"country_code", a.CountryCode},
		{"email", a.Email},
		{"first_name", a.FirstName},
		{"last_name", a.LastName},
		{"phone", a.Phone},
		{"phone_code", a.PhoneCode},
		{"zip", a.Zip},
	}
	for _, r := range required {
		if r.value == "" {
			ve.Add(prefix+"."+r.field, "is required")
		}
	}
}
