package go_vendra

import (
	"context"
	"errors"

	"github.com/vendralabs/go-vendra/checkout"
	"github.com/vendralabs/go-vendra/log"
)

// CheckoutOrchestrator drives a cart through checkout creation and required
// field attachment, stopping short of payment.
//
// The progression is NoCheckout -> Created -> Updated. Updated is terminal
// for this component: ready-for-payment means the update call returned
// without error and both consent flags were sent true. The backend-reported
// status is not re-queried to confirm.
type CheckoutOrchestrator struct {
	checkouts *CheckoutService
	logger    log.Logger

	checkoutID string
	ready      bool
}

// NewCheckoutOrchestrator builds an orchestrator over the given checkout
// facade. A nil logger discards progress logs.
func NewCheckoutOrchestrator(checkouts *CheckoutService, logger log.Logger) *CheckoutOrchestrator {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &CheckoutOrchestrator{checkouts: checkouts, logger: logger}
}

// Create creates a checkout for the cart and extracts its identifier.
//
// The identifier key name is not guaranteed stable across backend versions;
// extraction tries checkout_id, checkoutId, then id, and fails with
// *MissingIDError when none is present.
func (o *CheckoutOrchestrator) Create(ctx context.Context, cartID string) (string, error) {
	if o == nil || o.checkouts == nil {
		return "", errors.New("orchestrator is not initialized")
	}

	resp, err := o.checkouts.Create(ctx, cartID)
	if err != nil {
		return "", err
	}
	id, ok := resp.FirstID()
	if !ok {
		return "", &MissingIDError{Keys: checkout.IDKeys}
	}

	o.checkoutID = id
	o.ready = false
	o.logger.Debugf("checkout orchestrator: created checkout %s for cart %s", id, cartID)
	return id, nil
}

// Update attaches buyer, address and consent data to the checkout.
//
// Both address blocks are required; a request missing either is rejected with
// *ValidationError before any remote call. Consents are always sent true:
// a checkout updated through this component is payment-ready by contract.
func (o *CheckoutOrchestrator) Update(ctx context.Context, checkoutID string, req *checkout.UpdateRequest) error {
	if o == nil || o.checkouts == nil {
		return errors.New("orchestrator is not initialized")
	}
	if req == nil {
		return &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}

	sent := *req
	sent.AcceptsTerms = true
	sent.AcceptsPurchaseConditions = true

	if _, err := o.checkouts.Update(ctx, checkoutID, &sent); err != nil {
		return err
	}

	o.checkoutID = checkoutID
	o.ready = true
	o.logger.Debugf("checkout orchestrator: checkout %s is ready for payment", checkoutID)
	return nil
}

// CheckoutID returns the identifier produced by Create, or the one last
// passed to a successful Update.
func (o *CheckoutOrchestrator) CheckoutID() string {
	if o == nil {
		return ""
	}
	return o.checkoutID
}

// ReadyForPayment reports whether a successful Update has run with both
// consents sent true.
func (o *CheckoutOrchestrator) ReadyForPayment() bool {
	return o != nil && o.ready
}
