package go_vendra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vendralabs/go-vendra/payment"
)

func newDispatcher(t *testing.T, handler http.Handler) *PaymentDispatcher {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewClient(WithBaseURL(ts.URL), WithAPIKey("test-key"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewPaymentDispatcher(client.Payment(), nil)
}

func fourMethods() []payment.MethodRequest {
	return []payment.MethodRequest{
		payment.NewCardIntentRequest(true),
		payment.NewWalletLinkRequest("https://shop.example.com/success", "mobilepay", "buyer@example.com"),
		payment.NewBNPLRequest("SE", "https://shop.example.com/return", "buyer@example.com"),
		payment.NewLocalWalletRequest("buyer@example.com", "https://shop.example.com/return"),
	}
}

func TestDispatchIsolatesMethodFailures(t *testing.T) {
	dispatcher := newDispatcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/card-intent"):
			_, _ = w.Write([]byte(`{"intentId":"pi_1","clientSecret":"secret","ephemeralKey":"ek_1"}`))
		case strings.HasSuffix(r.URL.Path, "/wallet-link"):
			http.Error(w, `{"error":"wallet unavailable"}`, http.StatusServiceUnavailable)
		case strings.HasSuffix(r.URL.Path, "/bnpl"):
			_, _ = w.Write([]byte(`{"sessionId":"bnpl_1","redirectUrl":"https://bnpl.example.com/r/1"}`))
		case strings.HasSuffix(r.URL.Path, "/local-wallet"):
			_, _ = w.Write([]byte(`{"paymentRequestToken":"tok_1"}`))
		default:
			http.NotFound(w, r)
		}
	}))

	methods := fourMethods()
	results := dispatcher.Dispatch(context.Background(), "chk-1", methods)

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Method != methods[i].Method {
			t.Fatalf("result %d out of order: got %s, want %s", i, res.Method, methods[i].Method)
		}
	}
	if !results[0].Succeeded() || !results[2].Succeeded() || !results[3].Succeeded() {
		t.Fatalf("methods 1, 3 and 4 must succeed: %+v", results)
	}
	if results[1].Succeeded() {
		t.Fatalf("wallet-link must fail, got %+v", results[1])
	}
	if !IsBackendError(results[1].Err) {
		t.Fatalf("wallet-link failure must be a *BackendError, got %T", results[1].Err)
	}

	card, ok := results[0].Payload.(*payment.CardIntentResponse)
	if !ok || card.ClientSecret != "secret" || card.EphemeralKey == nil {
		t.Fatalf("unexpected card intent payload: %+v", results[0].Payload)
	}
	bnpl, ok := results[2].Payload.(*payment.BNPLResponse)
	if !ok || bnpl.RedirectURL == "" {
		t.Fatalf("unexpected bnpl payload: %+v", results[2].Payload)
	}
}

func TestDispatchAllMethodsFailStillReturnsAllResults(t *testing.T) {
	var hitCount int
	dispatcher := newDispatcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitCount++
		http.Error(w, `{"error":"down"}`, http.StatusBadGateway)
	}))

	results := dispatcher.Dispatch(context.Background(), "chk-1", fourMethods())
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Succeeded() {
			t.Fatalf("result %d must be failed: %+v", i, res)
		}
	}
	if hitCount != 4 {
		t.Fatalf("every method must still be attempted, got %d calls", hitCount)
	}
}

func TestDispatchUnknownMethodFailsWithoutBackendCall(t *testing.T) {
	var hitCount int
	dispatcher := newDispatcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitCount++
		_, _ = w.Write([]byte(`{}`))
	}))

	results := dispatcher.Dispatch(context.Background(), "chk-1", []payment.MethodRequest{{Method: "carrier-pigeon"}})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Succeeded() {
		t.Fatalf("unknown method must fail")
	}
	if !IsValidationError(results[0].Err) {
		t.Fatalf("expected *ValidationError, got %T (%v)", results[0].Err, results[0].Err)
	}
	if hitCount != 0 {
		t.Fatalf("unknown method must not reach the backend, got %d calls", hitCount)
	}
}

func TestDispatchMissingMethodBlockUsesDefaults(t *testing.T) {
	var sawBody bool
	dispatcher := newDispatcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawBody = true
		_, _ = w.Write([]byte(`{"intentId":"pi_1","clientSecret":"secret"}`))
	}))

	// A card-intent request without its block falls back to defaults.
	results := dispatcher.Dispatch(context.Background(), "chk-1", []payment.MethodRequest{{Method: payment.MethodCardIntent}})
	if len(results) != 1 || !results[0].Succeeded() {
		t.Fatalf("expected a successful default card intent, got %+v", results)
	}
	if !sawBody {
		t.Fatalf("expected the backend to be called")
	}
}
