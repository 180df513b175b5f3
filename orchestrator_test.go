package go_vendra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/vendralabs/go-vendra/checkout"
)

func testAddress() *checkout.Address {
	return &checkout.Address{
		Address1:    "Storgatan 1",
		City:        "Stockholm",
		Country:     "Sweden",
		CountryCode: "SE",
		Email:       "buyer@example.com",
		FirstName:   "Anna",
		LastName:    "Svensson",
		Phone:       "701234567",
		PhoneCode:   "+46",
		Zip:         "11122",
	}
}

func testUpdateRequest() *checkout.UpdateRequest {
	return &checkout.UpdateRequest{
		Email:           "buyer@example.com",
		SuccessURL:      "https://shop.example.com/success",
		CancelURL:       "https://shop.example.com/cancel",
		ShippingAddress: testAddress(),
		BillingAddress:  testAddress(),
	}
}

func newOrchestrator(t *testing.T, handler http.Handler) *CheckoutOrchestrator {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewClient(WithBaseURL(ts.URL), WithAPIKey("test-key"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewCheckoutOrchestrator(client.Checkout(), nil)
}

func TestCreateExtractsIdentifierByPreference(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"snake case wins over camel", `{"checkout_id":"snake","checkoutId":"camel","id":"plain"}`, "snake"},
		{"camel wins over plain", `{"checkoutId":"camel","id":"plain"}`, "camel"},
		{"plain id as last resort", `{"id":"plain"}`, "plain"},
		{"empty values are skipped", `{"checkout_id":"","checkoutId":"camel"}`, "camel"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := newOrchestrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))

			id, err := o.Create(context.Background(), "cart-1")
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if id != tc.want {
				t.Fatalf("extracted id = %q, want %q", id, tc.want)
			}
			if o.CheckoutID() != tc.want {
				t.Fatalf("CheckoutID() = %q, want %q", o.CheckoutID(), tc.want)
			}
		})
	}
}

func TestCreateFailsWithMissingIDError(t *testing.T) {
	o := newOrchestrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"created"}`))
	}))

	_, err := o.Create(context.Background(), "cart-1")
	if err == nil {
		t.Fatalf("expected error for response without identifier")
	}
	if !IsMissingID(err) {
		t.Fatalf("expected *MissingIDError, got %T (%v)", err, err)
	}
}

func TestCreateBackendFailureIsFatal(t *testing.T) {
	o := newOrchestrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unavailable"}`, http.StatusBadGateway)
	}))

	_, err := o.Create(context.Background(), "cart-1")
	if !IsBackendError(err) {
		t.Fatalf("expected *BackendError, got %T (%v)", err, err)
	}
	if o.ReadyForPayment() {
		t.Fatalf("failed create must not mark checkout ready")
	}
}

func TestUpdateRejectsMissingAddressWithoutBackendCall(t *testing.T) {
	var hitCount int32
	o := newOrchestrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hitCount, 1)
		_, _ = w.Write([]byte(`{}`))
	}))

	req := testUpdateRequest()
	req.BillingAddress = nil

	err := o.Update(context.Background(), "chk-1", req)
	if !IsValidationError(err) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if atomic.LoadInt32(&hitCount) != 0 {
		t.Fatalf("expected no backend calls, got %d", hitCount)
	}
	if o.ReadyForPayment() {
		t.Fatalf("rejected update must not mark checkout ready")
	}

	req = testUpdateRequest()
	req.ShippingAddress = nil
	if err := o.Update(context.Background(), "chk-1", req); !IsValidationError(err) {
		t.Fatalf("missing shipping address: expected *ValidationError, got %T (%v)", err, err)
	}
	if atomic.LoadInt32(&hitCount) != 0 {
		t.Fatalf("expected no backend calls, got %d", hitCount)
	}
}

func TestUpdateAlwaysSendsConsentsTrue(t *testing.T) {
	var sent checkout.UpdateRequest
	var method string
	o := newOrchestrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"checkoutId":"chk-1","status":"updated"}`))
	}))

	// Caller leaves consents false; the orchestrator must force them.
	err := o.Update(context.Background(), "chk-1", testUpdateRequest())
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if method != http.MethodPut {
		t.Fatalf("update must use PUT, got %s", method)
	}
	if !sent.AcceptsTerms || !sent.AcceptsPurchaseConditions {
		t.Fatalf("consents must be sent true, got terms=%v purchase=%v", sent.AcceptsTerms, sent.AcceptsPurchaseConditions)
	}
	if sent.ShippingAddress == nil || sent.BillingAddress == nil {
		t.Fatalf("both address blocks must be sent")
	}
	if !o.ReadyForPayment() {
		t.Fatalf("successful update must mark checkout ready for payment")
	}
}

func TestUpdateDoesNotMutateCallerRequest(t *testing.T) {
	o := newOrchestrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	req := testUpdateRequest()
	if err := o.Update(context.Background(), "chk-1", req); err != nil {
		t.Fatalf("update: %v", err)
	}
	if req.AcceptsTerms || req.AcceptsPurchaseConditions {
		t.Fatalf("caller request must stay untouched, got terms=%v purchase=%v", req.AcceptsTerms, req.AcceptsPurchaseConditions)
	}
}
