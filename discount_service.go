package go_vendra

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/vendralabs/go-vendra/consts"
	"github.com/vendralabs/go-vendra/discount"
)

// DiscountService is a facade over the backend discount operations.
type DiscountService struct{ c *Client }

// List returns all discounts visible to the configured POS.
func (s *DiscountService) List(ctx context.Context, runOpts ...RunOption) ([]discount.Discount, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}

	full, err := s.c.endpoint(consts.DiscountsPath)
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "GET", full, nil) {
		return nil, nil
	}
	var out []discount.Discount
	_, _, err = s.c.http.DoJSON(ctx, "GET", full, nil, &out)
	if err != nil {
		return nil, wrapBackendError("list discounts", "discount", "", err)
	}
	return out, nil
}

// ListByChannel returns discounts scoped to one sales channel.
func (s *DiscountService) ListByChannel(ctx context.Context, channelID string, runOpts ...RunOption) ([]discount.Discount, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if err := requireID("channel_id", channelID); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.DiscountsByChannelF, url.QueryEscape(channelID)))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "GET", full, nil) {
		return nil, nil
	}
	var out []discount.Discount
	_, _, err = s.c.http.DoJSON(ctx, "GET", full, nil, &out)
	if err != nil {
		return nil, wrapBackendError("list discounts by channel", "discount", "", err)
	}
	return out, nil
}

// GetByID fetches a single discount.
func (s *DiscountService) GetByID(ctx context.Context, discountID string, runOpts ...RunOption) (*discount.Discount, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if err := requireID("discount_id", discountID); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.DiscountPathF, discountID))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "GET", full, nil) {
		return nil, nil
	}
	var out discount.Discount
	_, _, err = s.c.http.DoJSON(ctx, "GET", full, nil, &out)
	if err != nil {
		return nil, wrapBackendError("get discount", "discount", discountID, err)
	}
	return &out, nil
}

// Create registers a new percentage discount code.
func (s *DiscountService) Create(ctx context.Context, req *discount.CreateRequest, runOpts ...RunOption) (*discount.Discount, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	if err := validateDiscountCreate(req); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(consts.DiscountsPath)
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "POST", full, req) {
		return nil, nil
	}
	var out discount.Discount
	_, _, err = s.c.http.DoJSON(ctx, "POST", full, req, &out)
	if err != nil {
		return nil, wrapBackendError("create discount", "discount", "", err)
	}
	return &out, nil
}

// Apply applies a discount code to a cart.
func (s *DiscountService) Apply(ctx context.Context, code, cartID string, runOpts ...RunOption) error {
	if s == nil || s.c == nil {
		return errors.New("client is nil")
	}
	ve := &ValidationError{}
	if code == "" {
		ve.Add("code", "is required")
	}
	if cartID == "" {
		ve.Add("cart_id", "is required")
	}
	if ve.HasErrors() {
		return ve
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.CartDiscountsPathF, cartID))
	if err != nil {
		return err
	}
	req := &discount.ApplyRequest{Code: code}
	if shouldDryRun(runOpts, "POST", full, req) {
		return nil
	}
	_, _, err = s.c.http.DoJSON(ctx, "POST", full, req, nil)
	return wrapBackendError("apply discount", "cart", cartID, err)
}

// RemoveApplied removes a previously applied code from a cart.
func (s *DiscountService) RemoveApplied(ctx context.Context, code, cartID string, runOpts ...RunOption) error {
	if s == nil || s.c == nil {
		return errors.New("client is nil")
	}
	ve := &ValidationError{}
	if code == "" {
		ve.Add("code", "is required")
	}
	if cartID == "" {
		ve.Add("cart_id", "is required")
	}
	if ve.HasErrors() {
		return ve
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.CartAppliedDiscountPathF, cartID, url.PathEscape(code)))
	if err != nil {
		return err
	}
	if shouldDryRun(runOpts, "DELETE", full, nil) {
		return nil
	}
	_, _, err = s.c.http.DoJSON(ctx, "DELETE", full, nil, nil)
	return wrapBackendError("remove applied discount", "discount", code, err)
}

// Delete removes a discount. Deleting an already-gone discount reports
// *NotFoundError; treat it as informational.
func (s *DiscountService) Delete(ctx context.Context, discountID string, runOpts ...RunOption) error {
	if s == nil || s.c == nil {
		return errors.New("client is nil")
	}
	if err := requireID("discount_id", discountID); err != nil {
		return err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.DiscountPathF, discountID))
	if err != nil {
		return err
	}
	if shouldDryRun(runOpts, "DELETE", full, nil) {
		return nil
	}
	_, _, err = s.c.http.DoJSON(ctx, "DELETE", full, nil, nil)
	return wrapBackendError("delete discount", "discount", discountID, err)
}

// =========================
// Validation
// =========================

func validateDiscountCreate(req *discount.CreateRequest) error {
	ve := &ValidationError{}
	if req.Code == "" {
		ve.Add("code", "is required")
	}
	if req.Percentage <= 0 || req.Percentage > 100 {
		ve.Add("percentage", "must be in (0, 100]")
	}
	if req.StartDate == "" {
		ve.Add("start_date", "is required")
	}
	if req.EndDate == "" {
		ve.Add("end_date", "is required")
	}
	if req.TypeID == "" {
		ve.Add("type_id", "is required")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}
