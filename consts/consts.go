package consts

const (
	HeaderAuthorization = "Authorization"
	HeaderXPosID        = "x-pos-id"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"

	ContentTypeJSON = "application/json"

	BearerPrefix = "Bearer "
)

// Base URLs.
const (
	DefaultBaseURL = "https://api-sandbox.vendra.io" // sandbox
	ProductionURL  = "https://api.vendra.io"         // prod
)

// Cart endpoint paths. Patterns ending in F take ids via fmt.Sprintf.
const (
	CartsPath                = "/v4/carts"
	CartPathF                = "/v4/carts/%s"
	CartItemsPathF           = "/v4/carts/%s/items"
	CartItemPathF            = "/v4/carts/%s/items/%s"
	CartShippingGroupsPathF  = "/v4/carts/%s/shipping-groups"
	CartDiscountsPathF       = "/v4/carts/%s/discounts"
	CartAppliedDiscountPathF = "/v4/carts/%s/discounts/%s"
)

// Checkout endpoint paths.
const (
	CheckoutsPath = "/v4/checkouts"
	CheckoutPathF = "/v4/checkouts/%s"
)

// Payment endpoint paths.
const (
	PaymentMethodsPathF     = "/v4/checkouts/%s/payment-methods"
	PaymentCardIntentPathF  = "/v4/checkouts/%s/payments/card-intent"
	PaymentWalletLinkPathF  = "/v4/checkouts/%s/payments/wallet-link"
	PaymentBNPLPathF        = "/v4/checkouts/%s/payments/bnpl"
	PaymentLocalWalletPathF = "/v4/checkouts/%s/payments/local-wallet"
)

// Discount endpoint paths.
const (
	DiscountsPath          = "/v4/discounts"
	DiscountPathF          = "/v4/discounts/%s"
	DiscountsByChannelF    = "/v4/discounts?channel=%s"
)
