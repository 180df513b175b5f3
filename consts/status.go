package consts

// CheckoutStatus is the backend-owned status of a checkout.
//
// The SDK sequences calls; it never infers status locally.
type CheckoutStatus string

const (
	CheckoutStatusCreated CheckoutStatus = "created"
	CheckoutStatusUpdated CheckoutStatus = "updated"
	CheckoutStatusReady   CheckoutStatus = "ready"
)
