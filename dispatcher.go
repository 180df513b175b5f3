package go_vendra

import (
	"context"
	"fmt"

	"github.com/vendralabs/go-vendra/log"
	"github.com/vendralabs/go-vendra/payment"
)

// PaymentDispatcher attempts a configured set of payment initiation methods
// against a payment-ready checkout, isolating each from the others' failures.
//
// It never decides which method is "best": method selection and ordering is
// caller configuration, since gateway availability is market and merchant
// dependent.
type PaymentDispatcher struct {
	payments *PaymentService
	logger   log.Logger
}

// NewPaymentDispatcher builds a dispatcher over the given payment facade.
// A nil logger discards per-method failure logs.
func NewPaymentDispatcher(payments *PaymentService, logger log.Logger) *PaymentDispatcher {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &PaymentDispatcher{payments: payments, logger: logger}
}

// Dispatch attempts every requested method and returns one result per
// request, in request order.
//
// A failing method is converted into a failed AttemptResult and the loop
// continues; Dispatch itself never returns an error.
func (d *PaymentDispatcher) Dispatch(ctx context.Context, checkoutID string, methods []payment.MethodRequest) []payment.AttemptResult {
	results := make([]payment.AttemptResult, 0, len(methods))
	for _, m := range methods {
		payload, err := d.attempt(ctx, checkoutID, m)
		if err != nil {
			d.logger.Warnf("payment dispatcher: method %s failed for checkout %s: %v", m.Method, checkoutID, err)
			results = append(results, payment.AttemptResult{Method: m.Method, Err: err})
			continue
		}
		results = append(results, payment.AttemptResult{Method: m.Method, Payload: payload})
	}
	return results
}

func (d *PaymentDispatcher) attempt(ctx context.Context, checkoutID string, m payment.MethodRequest) (any, error) {
	if d == nil || d.payments == nil {
		return nil, fmt.Errorf("dispatcher is not initialized")
	}

	switch m.Method {
	case payment.MethodCardIntent:
		return d.payments.CreateCardIntent(ctx, checkoutID, m.CardIntent)
	case payment.MethodWalletLink:
		return d.payments.CreateWalletLink(ctx, checkoutID, m.WalletLink)
	case payment.MethodBNPL:
		return d.payments.InitBNPL(ctx, checkoutID, m.BNPL)
	case payment.MethodLocalWallet:
		return d.payments.InitLocalWallet(ctx, checkoutID, m.LocalWallet)
	default:
		return nil, &ValidationError{Fields: []FieldError{{Field: "method", Message: fmt.Sprintf("unknown payment method %q", m.Method)}}}
	}
}
