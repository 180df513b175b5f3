package payment

// Method identifies a payment initiation route.
type Method string

const (
	MethodCardIntent  Method = "card-intent"
	MethodWalletLink  Method = "wallet-link"
	MethodBNPL        Method = "bnpl-init"
	MethodLocalWallet Method = "local-wallet-init"
)

// MethodRequest configures one initiation attempt. Only the block matching
// Method is read; the others are ignored.
type MethodRequest struct {
	Method Method

	CardIntent  *CardIntentRequest
	WalletLink  *WalletLinkRequest
	BNPL        *BNPLRequest
	LocalWallet *LocalWalletRequest
}

// NewCardIntentRequest builds a card-intent attempt.
func NewCardIntentRequest(wantEphemeralKey bool) MethodRequest {
	return MethodRequest{
		Method:     MethodCardIntent,
		CardIntent: &CardIntentRequest{WantEphemeralKey: wantEphemeralKey},
	}
}

// NewWalletLinkRequest builds a wallet-link attempt for the given brand.
func NewWalletLinkRequest(successURL, brand, email string) MethodRequest {
	return MethodRequest{
		Method:     MethodWalletLink,
		WalletLink: &WalletLinkRequest{SuccessURL: successURL, Brand: brand, Email: email},
	}
}

// NewBNPLRequest builds a buy-now-pay-later attempt.
func NewBNPLRequest(countryCode, returnHref, email string) MethodRequest {
	return MethodRequest{
		Method: MethodBNPL,
		BNPL:   &BNPLRequest{CountryCode: countryCode, ReturnHref: returnHref, Email: email},
	}
}

// NewLocalWalletRequest builds a local-wallet attempt.
func NewLocalWalletRequest(email, returnURL string) MethodRequest {
	return MethodRequest{
		Method:      MethodLocalWallet,
		LocalWallet: &LocalWalletRequest{Email: email, ReturnURL: returnURL},
	}
}

// CardIntentRequest corresponds to POST /v4/checkouts/{id}/payments/card-intent.
type CardIntentRequest struct {
	WantEphemeralKey bool `json:"wantEphemeralKey"`
}

type CardIntentResponse struct {
	IntentID     string  `json:"intentId"`
	ClientSecret string  `json:"clientSecret"`
	EphemeralKey *string `json:"ephemeralKey,omitempty"`
}

// WalletLinkRequest corresponds to POST /v4/checkouts/{id}/payments/wallet-link.
type WalletLinkRequest struct {
	SuccessURL string `json:"successUrl"`
	Brand      string `json:"brand"`
	Email      string `json:"email"`
}

type WalletLinkResponse struct {
	LinkURL string  `json:"linkUrl"`
	Token   *string `json:"token,omitempty"`
}

// BNPLRequest corresponds to POST /v4/checkouts/{id}/payments/bnpl.
type BNPLRequest struct {
	CountryCode string `json:"countryCode"`
	ReturnHref  string `json:"returnHref"`
	Email       string `json:"email"`
}

type BNPLResponse struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}

// LocalWalletRequest corresponds to POST /v4/checkouts/{id}/payments/local-wallet.
type LocalWalletRequest struct {
	Email     string `json:"email"`
	ReturnURL string `json:"returnUrl"`
}

type LocalWalletResponse struct {
	PaymentRequestToken string  `json:"paymentRequestToken"`
	RedirectURL         *string `json:"redirectUrl,omitempty"`
}

// AvailableMethod is one entry of the available-methods listing.
// Availability is market/merchant dependent; the SDK never filters it.
type AvailableMethod struct {
	Method Method   `json:"method"`
	Name   string   `json:"name"`
	Brands []string `json:"brands,omitempty"`
}

// AttemptResult records the outcome of one initiation attempt.
//
// Results are independent per method: one method's failure never invalidates
// another's result.
type AttemptResult struct {
	Method Method

	// Payload holds the method-specific response on success, nil otherwise.
	Payload any
	// Err holds the failure on error, nil otherwise.
	Err error
}

// Succeeded reports whether the attempt produced a usable payload.
func (r AttemptResult) Succeeded() bool {
	return r.Err == nil
}
