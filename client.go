package go_vendra

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/stremovskyy/recorder"

	"github.com/vendralabs/go-vendra/consts"
	"github.com/vendralabs/go-vendra/internal/httpclient"
	"github.com/vendralabs/go-vendra/log"
)

// Client is the main Vendra SDK client.
//
// It exposes the backend domains as service facades:
//   - Cart: cart lifecycle + supplier shipping groups
//   - Checkout: checkout creation and field attachment
//   - Payment: payment method listing and initiation
//   - Discount: discount management and application
//
// Requests carry the configured bearer token and x-pos-id automatically.
type Client struct {
	cfg config

	http *httpclient.Client

	cart     *CartService
	checkout *CheckoutService
	payment  *PaymentService
	discount *DiscountService
}

func NewClient(opts ...Option) (Vendra, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	headers := map[string]string{
		consts.HeaderUserAgent: cfg.userAgent,
	}
	if cfg.apiKey != "" {
		headers[consts.HeaderAuthorization] = consts.BearerPrefix + cfg.apiKey
	}
	if cfg.posID != "" {
		headers[consts.HeaderXPosID] = cfg.posID
	}

	c := &Client{cfg: cfg}
	c.http = httpclient.New(cfg.httpClient, cfg.logger, cfg.retryAttempts, cfg.retryWait, headers, cfg.recorder, cfg.logBodies)

	c.cart = &CartService{c: c}
	c.checkout = &CheckoutService{c: c}
	c.payment = &PaymentService{c: c}
	c.discount = &DiscountService{c: c}
	return c, nil
}

// NewDefaultClient is a convenience wrapper around NewClient() with default configuration.
func NewDefaultClient() (Vendra, error) {
	return NewClient()
}

// NewClientWithRecorder attaches a traffic recorder to a new client.
func NewClientWithRecorder(rec recorder.Recorder, opts ...Option) (Vendra, error) {
	opts = append([]Option{WithRecorder(rec)}, opts...)
	return NewClient(opts...)
}

func (c *Client) Cart() *CartService         { return c.cart }
func (c *Client) Checkout() *CheckoutService { return c.checkout }
func (c *Client) Payment() *PaymentService   { return c.payment }
func (c *Client) Discount() *DiscountService { return c.discount }

// SetLogLevel updates SDK log level when current logger supports it.
func (c *Client) SetLogLevel(level log.Level) {
	if c == nil || c.cfg.logger == nil {
		return
	}
	if l, ok := c.cfg.logger.(interface{ SetLevel(log.Level) }); ok {
		l.SetLevel(level)
	}
}

func (c *Client) endpoint(p string) (string, error) {
	return joinURL(c.cfg.baseURL, p)
}

func joinURL(base string, p string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}
	// Query strings survive joining only when kept aside from the path.
	rest, query, _ := strings.Cut(p, "?")
	u.Path = path.Join(u.Path, rest)
	if query != "" {
		u.RawQuery = query
	}
	return u.String(), nil
}

// wrapBackendError converts transport-layer failures into the SDK taxonomy.
// 404 becomes *NotFoundError so deletes of already-gone entities stay
// reportable without being escalated; everything else becomes *BackendError.
func wrapBackendError(op, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return err
	}
	var hs *httpclient.HTTPStatusError
	if errors.As(err, &hs) {
		if hs.StatusCode == http.StatusNotFound {
			return &NotFoundError{Resource: resource, ID: id}
		}
		return &BackendError{Op: op, StatusCode: hs.StatusCode, Body: hs.Body}
	}
	return &BackendError{Op: op, Err: err}
}
