package go_vendra

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/stremovskyy/recorder"

	"github.com/vendralabs/go-vendra/consts"
	"github.com/vendralabs/go-vendra/log"
)

type Option func(*config) error

type config struct {
	baseURL   string
	apiKey    string
	posID     string
	userAgent string

	httpClient *http.Client
	logger     log.Logger
	logBodies  bool

	retryAttempts int
	retryWait     time.Duration
	recorder      recorder.Recorder
}

func defaultConfig() config {
	return config{
		baseURL:       consts.DefaultBaseURL,
		userAgent:     "go-vendra",
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		logger:        log.NewDefault(),
		retryAttempts: 1,
		retryWait:     300 * time.Millisecond,
	}
}

// WithBaseURL points the client at a different backend (e.g. consts.ProductionURL).
// The default is the sandbox environment.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		if baseURL == "" {
			return errors.New("base url is empty")
		}
		cfg.baseURL = baseURL
		return nil
	}
}

// WithAPIKey sets the bearer token sent in the Authorization header.
func WithAPIKey(apiKey string) Option {
	return func(cfg *config) error {
		apiKey = strings.TrimSpace(apiKey)
		if apiKey == "" {
			return errors.New("api key is empty")
		}
		cfg.apiKey = apiKey
		return nil
	}
}

// WithPosID sets the x-pos-id header identifying the point of sale.
func WithPosID(posID string) Option {
	return func(cfg *config) error {
		posID = strings.TrimSpace(posID)
		if posID == "" {
			return errors.New("pos id is empty")
		}
		cfg.posID = posID
		return nil
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cfg *config) error {
		if ua == "" {
			return errors.New("user agent is empty")
		}
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			return errors.New("http client is nil")
		}
		cfg.httpClient = client
		return nil
	}
}

// WithTimeout sets http client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) error {
		if timeout <= 0 {
			return errors.New("timeout must be > 0")
		}
		cfg.httpClient.Timeout = timeout
		return nil
	}
}

func WithLogger(logger log.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			cfg.logger = log.NopLogger{}
			return nil
		}
		cfg.logger = logger
		return nil
	}
}

// WithLogHTTPBodies enables verbose request/response body logging for debugging.
//
// Disabled by default because bodies may contain sensitive data.
func WithLogHTTPBodies(enabled bool) Option {
	return func(cfg *config) error {
		cfg.logBodies = enabled
		return nil
	}
}

// WithRecorder attaches a traffic recorder.
func WithRecorder(r recorder.Recorder) Option {
	return func(cfg *config) error {
		cfg.recorder = r
		return nil
	}
}

func WithRetry(attempts int, wait time.Duration) Option {
	return func(cfg *config) error {
		if attempts <= 0 {
			return errors.New("retry attempts must be > 0")
		}
		if wait <= 0 {
			return errors.New("retry wait must be > 0")
		}
		cfg.retryAttempts = attempts
		cfg.retryWait = wait
		return nil
	}
}
