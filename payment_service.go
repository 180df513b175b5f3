package go_vendra

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendralabs/go-vendra/consts"
	"github.com/vendralabs/go-vendra/payment"
)

// PaymentService is a facade over the backend payment initiation calls.
//
// It initiates payments only; capture and settlement happen between the
// backend and the gateway after the buyer completes the handoff.
type PaymentService struct{ c *Client }

// AvailableMethods lists the initiation methods the backend offers for this
// checkout. Availability is market/merchant dependent.
func (s *PaymentService) AvailableMethods(ctx context.Context, checkoutID string, runOpts ...RunOption) ([]payment.AvailableMethod, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if err := requireID("checkout_id", checkoutID); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.PaymentMethodsPathF, checkoutID))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "GET", full, nil) {
		return nil, nil
	}
	var out []payment.AvailableMethod
	_, _, err = s.c.http.DoJSON(ctx, "GET", full, nil, &out)
	if err != nil {
		return nil, wrapBackendError("list payment methods", "checkout", checkoutID, err)
	}
	return out, nil
}

// CreateCardIntent initiates a card payment and returns the client secret
// (plus an ephemeral key when requested).
func (s *PaymentService) CreateCardIntent(ctx context.Context, checkoutID string, req *payment.CardIntentRequest, runOpts ...RunOption) (*payment.CardIntentResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if err := requireID("checkout_id", checkoutID); err != nil {
		return nil, err
	}
	if req == nil {
		req = &payment.CardIntentRequest{}
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.PaymentCardIntentPathF, checkoutID))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "POST", full, req) {
		return nil, nil
	}
	var out payment.CardIntentResponse
	_, _, err = s.c.http.DoJSON(ctx, "POST", full, req, &out)
	if err != nil {
		return nil, wrapBackendError("create card intent", "checkout", checkoutID, err)
	}
	return &out, nil
}

// CreateWalletLink initiates a wallet payment for the chosen brand and
// returns the handoff link.
func (s *PaymentService) CreateWalletLink(ctx context.Context, checkoutID string, req *payment.WalletLinkRequest, runOpts ...RunOption) (*payment.WalletLinkResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	if err := validateWalletLink(checkoutID, req); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.PaymentWalletLinkPathF, checkoutID))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "POST", full, req) {
		return nil, nil
	}
	var out payment.WalletLinkResponse
	_, _, err = s.c.http.DoJSON(ctx, "POST", full, req, &out)
	if err != nil {
		return nil, wrapBackendError("create wallet link", "checkout", checkoutID, err)
	}
	return &out, nil
}

// InitBNPL initiates a buy-now-pay-later session and returns the redirect.
func (s *PaymentService) InitBNPL(ctx context.Context, checkoutID string, req *payment.BNPLRequest, runOpts ...RunOption) (*payment.BNPLResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	if err := validateBNPL(checkoutID, req); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.PaymentBNPLPathF, checkoutID))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "POST", full, req) {
		return nil, nil
	}
	var out payment.BNPLResponse
	_, _, err = s.c.http.DoJSON(ctx, "POST", full, req, &out)
	if err != nil {
		return nil, wrapBackendError("init bnpl", "checkout", checkoutID, err)
	}
	return &out, nil
}

// InitLocalWallet initiates a local-wallet payment and returns the
// payment request token.
func (s *PaymentService) InitLocalWallet(ctx context.Context, checkoutID string, req *payment.LocalWalletRequest, runOpts ...RunOption) (*payment.LocalWalletResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	if err := validateLocalWallet(checkoutID, req); err != nil {
		return nil, err
	}

	full, err := s.c.endpoint(fmt.Sprintf(consts.PaymentLocalWalletPathF, checkoutID))
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, "POST", full, req) {
		return nil, nil
	}
	var out payment.LocalWalletResponse
	_, _, err = s.c.http.DoJSON(ctx, "POST", full, req, &out)
	if err != nil {
		return nil, wrapBackendError("init local wallet", "checkout", checkoutID, err)
	}
	return &out, nil
}

// =========================
// Validation
// =========================

func validateWalletLink(checkoutID string, req *payment.WalletLinkRequest) error {
	ve := &ValidationError{}
	if checkoutID == "" {
		ve.Add("checkout_id", "is required")
	}
	if req.SuccessURL == "" {
		ve.Add("success_url", "is required")
	}
	if req.Brand == "" {
		ve.Add("brand", "is required")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validateBNPL(checkoutID string, req *payment.BNPLRequest) error {
	ve := &ValidationError{}
	if checkoutID == "" {
		ve.Add("checkout_id", "is required")
	}
	if req.CountryCode == "" {
		ve.Add("country_code", "is required")
	}
	if req.ReturnHref == "" {
		ve.Add("return_href", "is required")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validateLocalWallet(checkoutID string, req *payment.LocalWalletRequest) error {
	ve := &ValidationError{}
	if checkoutID == "" {
		ve.Add("checkout_id", "is required")
	}
	if req.ReturnURL == "" {
		ve.Add("return_url", "is required")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}
