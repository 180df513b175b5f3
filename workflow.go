package go_vendra

import (
	"context"
	"errors"

	"github.com/vendralabs/go-vendra/cart"
	"github.com/vendralabs/go-vendra/checkout"
	"github.com/vendralabs/go-vendra/log"
	"github.com/vendralabs/go-vendra/payment"
)

// PurchaseInput configures one end-to-end cart-to-payment run.
type PurchaseInput struct {
	// SessionID identifies the logical shopping session; generated when empty.
	SessionID       string
	Currency        string
	ShippingCountry string

	Items []cart.LineItemInput

	// DiscountCode is optional; a failed application is reported, not fatal.
	DiscountCode string

	// Checkout carries buyer, urls and both address blocks. Consents are
	// forced true by the orchestrator.
	Checkout checkout.UpdateRequest

	// Methods are attempted in order, each isolated from the others.
	Methods []payment.MethodRequest
}

// PurchaseResult is the consolidated outcome of one run.
type PurchaseResult struct {
	CartID     string
	CheckoutID string

	Shipping        *OptimizeResult
	DiscountApplied bool
	Payments        []payment.AttemptResult
}

// PurchaseWorkflow runs the full pipeline: create cart, add items, optimize
// shipping, optionally apply a discount, create and update the checkout, and
// dispatch the configured payment methods.
//
// Stages run strictly in order and share nothing but the cart and checkout
// identifiers. Only the first required call of a stage is fatal; per-item
// shipping failures and per-method payment failures land in the result.
type PurchaseWorkflow struct {
	client Vendra
	logger log.Logger
}

// NewPurchaseWorkflow builds a workflow over one client. A nil logger
// discards progress logs.
func NewPurchaseWorkflow(client Vendra, logger log.Logger) *PurchaseWorkflow {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &PurchaseWorkflow{client: client, logger: logger}
}

// Run executes the pipeline. The returned result is non-nil whenever the run
// got far enough to create a cart, even if a later stage failed.
func (w *PurchaseWorkflow) Run(ctx context.Context, in PurchaseInput) (*PurchaseResult, error) {
	if w == nil || w.client == nil {
		return nil, errors.New("workflow is not initialized")
	}

	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = NewSessionID()
	}

	carts := w.client.Cart()

	created, err := carts.Create(ctx, &cart.CreateRequest{
		SessionID:       sessionID,
		Currency:        in.Currency,
		ShippingCountry: in.ShippingCountry,
	})
	if err != nil {
		return nil, err
	}
	res := &PurchaseResult{CartID: created.CartID}
	w.logger.Infof("purchase workflow: cart %s created for session %s", created.CartID, sessionID)

	if _, err := carts.AddItems(ctx, created.CartID, in.Items); err != nil {
		return res, err
	}

	optimizer := NewShippingOptimizer(carts, w.logger)
	shipping, err := optimizer.Optimize(ctx, created.CartID)
	if err != nil {
		return res, err
	}
	res.Shipping = shipping
	w.logger.Infof("purchase workflow: shipping optimized for cart %s: updated=%d failed=%d skipped=%d",
		created.CartID, shipping.UpdatedCount, len(shipping.Failures), len(shipping.SkippedSuppliers))

	if in.DiscountCode != "" {
		if err := w.client.Discount().Apply(ctx, in.DiscountCode, created.CartID); err != nil {
			w.logger.Warnf("purchase workflow: discount %q not applied to cart %s: %v", in.DiscountCode, created.CartID, err)
		} else {
			res.DiscountApplied = true
		}
	}

	orchestrator := NewCheckoutOrchestrator(w.client.Checkout(), w.logger)
	checkoutID, err := orchestrator.Create(ctx, created.CartID)
	if err != nil {
		return res, err
	}
	res.CheckoutID = checkoutID

	if err := orchestrator.Update(ctx, checkoutID, &in.Checkout); err != nil {
		return res, err
	}

	dispatcher := NewPaymentDispatcher(w.client.Payment(), w.logger)
	res.Payments = dispatcher.Dispatch(ctx, checkoutID, in.Methods)
	return res, nil
}
