package go_vendra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/vendralabs/go-vendra/cart"
	"github.com/vendralabs/go-vendra/internal/utils"
	"github.com/vendralabs/go-vendra/payment"
)

// purchaseBackend fakes the full set of endpoints one workflow run touches.
type purchaseBackend struct {
	mu sync.Mutex

	groups []cart.SupplierShippingGroup

	addedItems   []cart.LineItemInput
	appliedCodes []string
	checkoutPut  bool
	patchCount   int

	failDiscount bool
}

func (b *purchaseBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		p := r.URL.Path
		switch {
		case r.Method == http.MethodPost && p == "/v4/carts":
			_, _ = w.Write([]byte(`{"cartId":"cart-1","sessionId":"s1","currency":"EUR","shippingCountry":"SE"}`))

		case r.Method == http.MethodPost && p == "/v4/carts/cart-1/items":
			var req cart.AddItemsRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			b.addedItems = append(b.addedItems, req.Items...)
			_, _ = w.Write([]byte(`{"cartId":"cart-1"}`))

		case r.Method == http.MethodGet && p == "/v4/carts/cart-1/shipping-groups":
			_ = json.NewEncoder(w).Encode(b.groups)

		case r.Method == http.MethodPatch && strings.HasPrefix(p, "/v4/carts/cart-1/items/"):
			b.patchCount++
			parts := strings.Split(p, "/")
			itemID := parts[len(parts)-1]
			var upd cart.ItemUpdate
			_ = json.NewDecoder(r.Body).Decode(&upd)
			for gi := range b.groups {
				for ii := range b.groups[gi].LineItems {
					if b.groups[gi].LineItems[ii].ItemID == itemID {
						b.groups[gi].LineItems[ii].ShippingOptionID = upd.ShippingOptionID
					}
				}
			}
			_, _ = w.Write([]byte(`{"cartId":"cart-1"}`))

		case r.Method == http.MethodPost && p == "/v4/carts/cart-1/discounts":
			if b.failDiscount {
				http.Error(w, `{"error":"code expired"}`, http.StatusUnprocessableEntity)
				return
			}
			var req struct {
				Code string `json:"code"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			b.appliedCodes = append(b.appliedCodes, req.Code)
			w.WriteHeader(http.StatusNoContent)

		case r.Method == http.MethodPost && p == "/v4/checkouts":
			_, _ = w.Write([]byte(`{"checkoutId":"chk-1"}`))

		case r.Method == http.MethodPut && p == "/v4/checkouts/chk-1":
			b.checkoutPut = true
			_, _ = w.Write([]byte(`{"checkoutId":"chk-1","status":"updated"}`))

		case r.Method == http.MethodPost && p == "/v4/checkouts/chk-1/payments/card-intent":
			_, _ = w.Write([]byte(`{"intentId":"pi_1","clientSecret":"secret"}`))

		case r.Method == http.MethodPost && p == "/v4/checkouts/chk-1/payments/wallet-link":
			http.Error(w, `{"error":"wallet unavailable"}`, http.StatusServiceUnavailable)

		default:
			http.NotFound(w, r)
		}
	})
}

func newWorkflow(t *testing.T, backend *purchaseBackend) *PurchaseWorkflow {
	t.Helper()
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	client, err := NewClient(WithBaseURL(ts.URL), WithAPIKey("test-key"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewPurchaseWorkflow(client, nil)
}

func purchaseInput() PurchaseInput {
	return PurchaseInput{
		Currency:        "EUR",
		ShippingCountry: "SE",
		Items: []cart.LineItemInput{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 2},
		},
		DiscountCode: "WELCOME10",
		Checkout:     *testUpdateRequest(),
		Methods: []payment.MethodRequest{
			payment.NewCardIntentRequest(true),
			payment.NewWalletLinkRequest("https://shop.example.com/success", "mobilepay", "buyer@example.com"),
		},
	}
}

func TestPurchaseWorkflowRunsEndToEnd(t *testing.T) {
	backend := &purchaseBackend{
		groups: []cart.SupplierShippingGroup{
			{
				Supplier: cart.Supplier{ID: "sup-a", Name: "Supplier A"},
				LineItems: []cart.LineItem{
					{ItemID: "item-1", ProductID: "p1", Quantity: 1, SupplierID: "sup-a"},
					{ItemID: "item-2", ProductID: "p2", Quantity: 2, SupplierID: "sup-a"},
				},
				AvailableShippings: []cart.ShippingOption{
					{ShippingOptionID: "ship-9", Price: cart.Price{Amount: utils.Ref(9.0), Currency: "EUR"}},
					{ShippingOptionID: "ship-4", Price: cart.Price{Amount: utils.Ref(4.0), Currency: "EUR"}},
				},
			},
			{
				Supplier: cart.Supplier{ID: "sup-b", Name: "Supplier B"},
				LineItems: []cart.LineItem{
					{ItemID: "item-3", ProductID: "p3", Quantity: 1, SupplierID: "sup-b"},
				},
			},
		},
	}
	w := newWorkflow(t, backend)

	res, err := w.Run(context.Background(), purchaseInput())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.CartID != "cart-1" || res.CheckoutID != "chk-1" {
		t.Fatalf("unexpected ids: cart=%q checkout=%q", res.CartID, res.CheckoutID)
	}
	if res.Shipping == nil || res.Shipping.UpdatedCount != 2 {
		t.Fatalf("unexpected shipping result: %+v", res.Shipping)
	}
	if len(res.Shipping.SkippedSuppliers) != 1 || res.Shipping.SkippedSuppliers[0] != "sup-b" {
		t.Fatalf("expected sup-b skipped, got %v", res.Shipping.SkippedSuppliers)
	}
	if !res.DiscountApplied {
		t.Fatalf("discount must be applied")
	}
	if len(res.Payments) != 2 {
		t.Fatalf("expected 2 payment results, got %d", len(res.Payments))
	}
	if !res.Payments[0].Succeeded() {
		t.Fatalf("card intent must succeed: %+v", res.Payments[0])
	}
	if res.Payments[1].Succeeded() || !IsBackendError(res.Payments[1].Err) {
		t.Fatalf("wallet link must fail with *BackendError: %+v", res.Payments[1])
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.addedItems) != 2 {
		t.Fatalf("expected 2 items added, got %d", len(backend.addedItems))
	}
	if len(backend.appliedCodes) != 1 || backend.appliedCodes[0] != "WELCOME10" {
		t.Fatalf("unexpected applied codes: %v", backend.appliedCodes)
	}
	if !backend.checkoutPut {
		t.Fatalf("checkout must be updated via PUT")
	}
	if backend.patchCount != 2 {
		t.Fatalf("expected 2 shipping PATCHes, got %d", backend.patchCount)
	}
}

func TestPurchaseWorkflowDiscountFailureIsSoft(t *testing.T) {
	backend := &purchaseBackend{
		failDiscount: true,
		groups: []cart.SupplierShippingGroup{
			{
				Supplier: cart.Supplier{ID: "sup-a", Name: "Supplier A"},
				LineItems: []cart.LineItem{
					{ItemID: "item-1", ProductID: "p1", Quantity: 1, SupplierID: "sup-a"},
				},
				AvailableShippings: []cart.ShippingOption{
					{ShippingOptionID: "ship-4", Price: cart.Price{Amount: utils.Ref(4.0), Currency: "EUR"}},
				},
			},
		},
	}
	w := newWorkflow(t, backend)

	res, err := w.Run(context.Background(), purchaseInput())
	if err != nil {
		t.Fatalf("run must survive a rejected discount: %v", err)
	}
	if res.DiscountApplied {
		t.Fatalf("discount must be reported as not applied")
	}
	if res.CheckoutID != "chk-1" {
		t.Fatalf("run must continue past the discount stage, got checkout %q", res.CheckoutID)
	}
}

func TestPurchaseWorkflowStopsOnInvalidCheckoutFields(t *testing.T) {
	backend := &purchaseBackend{
		groups: []cart.SupplierShippingGroup{
			{
				Supplier: cart.Supplier{ID: "sup-a", Name: "Supplier A"},
				LineItems: []cart.LineItem{
					{ItemID: "item-1", ProductID: "p1", Quantity: 1, SupplierID: "sup-a"},
				},
				AvailableShippings: []cart.ShippingOption{
					{ShippingOptionID: "ship-4", Price: cart.Price{Amount: utils.Ref(4.0), Currency: "EUR"}},
				},
			},
		},
	}
	w := newWorkflow(t, backend)

	in := purchaseInput()
	in.Checkout.BillingAddress = nil

	res, err := w.Run(context.Background(), in)
	if !IsValidationError(err) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if res == nil || res.CartID != "cart-1" {
		t.Fatalf("partial result must carry the cart id: %+v", res)
	}
	if len(res.Payments) != 0 {
		t.Fatalf("no payments may be attempted after a failed update")
	}
}
