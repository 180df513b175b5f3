package go_vendra

import "github.com/vendralabs/go-vendra/log"

// Vendra is the main SDK interface.
type Vendra interface {
	Cart() *CartService
	Checkout() *CheckoutService
	Payment() *PaymentService
	Discount() *DiscountService

	SetLogLevel(level log.Level)
}

var _ Vendra = (*Client)(nil)
