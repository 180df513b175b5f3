package checkout

import "github.com/vendralabs/go-vendra/consts"

// Address is a structured address record. The backend requires every field
// to be present; Address2, Company, Province and ProvinceCode may be empty
// strings. No omitempty on purpose.
type Address struct {
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	City         string `json:"city"`
	Company      string `json:"company"`
	Country      string `json:"country"`
	CountryCode  string `json:"countryCode"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	PhoneCode    string `json:"phoneCode"`
	Province     string `json:"province"`
	ProvinceCode string `json:"provinceCode"`
	Zip          string `json:"zip"`
}

// CreateRequest corresponds to "Create checkout" (POST /v4/checkouts).
type CreateRequest struct {
	CartID string `json:"cartId"`
}

// IDKeys are the response keys that may carry the checkout identifier,
// in preference order. The key name has moved between backend versions.
var IDKeys = []string{"checkout_id", "checkoutId", "id"}

// CreateResponse tolerates the identifier key moving across backend versions.
type CreateResponse struct {
	CheckoutIDSnake *string `json:"checkout_id,omitempty"`
	CheckoutID      *string `json:"checkoutId,omitempty"`
	ID              *string `json:"id,omitempty"`
}

// FirstID returns the checkout identifier under the first recognized key,
// trying checkout_id, then checkoutId, then id.
func (r *CreateResponse) FirstID() (string, bool) {
	if r == nil {
		return "", false
	}
	for _, v := range []*string{r.CheckoutIDSnake, r.CheckoutID, r.ID} {
		if v != nil && *v != "" {
			return *v, true
		}
	}
	return "", false
}

// UpdateRequest corresponds to "Update checkout" (PUT /v4/checkouts/{id}).
//
// Both address blocks are required before the call is attempted; the SDK
// rejects a request missing either without touching the network.
type UpdateRequest struct {
	Email                     string   `json:"email"`
	SuccessURL                string   `json:"successUrl"`
	CancelURL                 string   `json:"cancelUrl"`
	PaymentMethod             *string  `json:"paymentMethod,omitempty"`
	ShippingAddress           *Address `json:"shippingAddress"`
	BillingAddress            *Address `json:"billingAddress"`
	AcceptsTerms              bool     `json:"acceptsTerms"`
	AcceptsPurchaseConditions bool     `json:"acceptsPurchaseConditions"`
}

// Checkout mirrors the backend checkout entity. Status is backend-owned.
type Checkout struct {
	CheckoutID                string                `json:"checkoutId"`
	CartID                    string                `json:"cartId"`
	Status                    consts.CheckoutStatus `json:"status"`
	Email                     *string               `json:"email,omitempty"`
	ShippingAddress           *Address              `json:"shippingAddress,omitempty"`
	BillingAddress            *Address              `json:"billingAddress,omitempty"`
	AcceptsTerms              bool                  `json:"acceptsTerms"`
	AcceptsPurchaseConditions bool                  `json:"acceptsPurchaseConditions"`
}
