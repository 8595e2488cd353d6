// Package pachca is a client SDK for the Pachca team-messaging REST API.
// It covers profile, chats, chat members, messages, threads and file
// uploads, and takes care of the API's conventions: bearer-token
// authentication on every request, a fixed inter-call delay, cursor and
// page-number pagination, and classification of error responses into
// sentinel errors that can be matched with errors.Is.
package pachca

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/pachcadev/pachca-client/internal/logger"
)

// DefaultBaseURL is the fixed origin of the shared Pachca API.
const DefaultBaseURL = "https://api.pachca.com/api/shared/v1"

// Default client configuration values.
const (
	DefaultAPIDelay  = 200 * time.Millisecond
	DefaultTimeout   = 30 * time.Second
	DefaultPageLimit = 50
)

// ClientConfig holds construction-time settings for a Client.
// AccessToken is the only required field; zero values for the rest fall
// back to the documented defaults.
type ClientConfig struct {
	// AccessToken is the Pachca API bearer token. Required.
	AccessToken string

	// APIDelay is the fixed pause applied after every request, success
	// or failure, to throttle the call rate. Defaults to DefaultAPIDelay.
	APIDelay time.Duration

	// Timeout bounds the wait for a single response. Exceeding it is a
	// transport-level failure, not a classified API error. Defaults to
	// DefaultTimeout.
	Timeout time.Duration

	// BaseURL overrides the API origin. Used by tests.
	BaseURL string

	// HTTPClient, when set, is used as the underlying transport. The
	// bearer-token layer is applied on top of it either way.
	HTTPClient *http.Client

	// Logger receives SDK debug output. Defaults to a no-op logger.
	Logger logger.Logger
}

// Client is a stateful client for the Pachca API. Each instance owns its
// own transport and configuration; independent clients may be used
// concurrently from separate goroutines. A single Client performs its
// calls sequentially.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	apiDelay   time.Duration
	logger     logger.Logger
}

// NewClient creates a Pachca API client from cfg. It fails if no access
// token is supplied.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}
	if cfg.APIDelay <= 0 {
		cfg.APIDelay = DefaultAPIDelay
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NoopLogger{}
	}

	// The oauth2 transport attaches the Authorization header to every
	// outgoing request. Pachca tokens are static, so a StaticTokenSource
	// is sufficient; no refresh flow exists.
	ctx := context.Background()
	if cfg.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, cfg.HTTPClient)
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.AccessToken,
		TokenType:   "Bearer",
	})
	httpClient := oauth2.NewClient(ctx, source)
	httpClient.Timeout = cfg.Timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		token:      cfg.AccessToken,
		apiDelay:   cfg.APIDelay,
		logger:     cfg.Logger,
	}, nil
}

// SetLogger replaces the client's logger.
func (c *Client) SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.NoopLogger{}
	}
	c.logger = l
}

// APIDelay reports the configured inter-call delay.
func (c *Client) APIDelay() time.Duration {
	return c.apiDelay
}

// Close releases the client's transport resources. The client must not
// be used after Close.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// resolveURL turns an API path into an absolute URL. Absolute targets
// (such as a negotiated direct upload URL) are used verbatim.
func (c *Client) resolveURL(path string) string {
	if len(path) >= 4 && path[:4] == "http" {
		return path
	}
	return c.baseURL + "/" + path
}

// apiCall performs one outbound HTTP request against an already resolved
// URL and returns the response body on success. After every received
// response it sleeps for the configured inter-call delay, then routes
// non-success statuses to error classification; classified calls never
// return a body.
func (c *Client) apiCall(ctx context.Context, method, rawURL, contentType string, body io.Reader) ([]byte, error) {
	c.logger.Debug("api call", "method", method, "url", rawURL)

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s %s: %w", method, rawURL, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error calling %s %s: %w", method, rawURL, err)
	}
	defer closeBodySafely(res.Body, c.logger, method+" "+rawURL)

	// Fixed throttle between requests; applies to every response,
	// including error statuses.
	time.Sleep(c.apiDelay)

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body from %s: %w", rawURL, err)
	}

	switch res.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return resBody, nil
	}
	return nil, c.classifyResponse(res.StatusCode, rawURL, resBody)
}

// get performs a GET request against an API path with optional query
// parameters and returns the raw response body.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.resolveURL(path)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.apiCall(ctx, http.MethodGet, target, "", nil)
}

// send performs a non-GET request against an API path. A nil payload
// sends no body; anything else is marshaled to JSON.
func (c *Client) send(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.apiCall(ctx, method, c.resolveURL(path), contentType, body)
}

// getData performs a GET request and unwraps the single-object data
// envelope into dest.
func (c *Client) getData(ctx context.Context, path string, query url.Values, dest any, operation string) error {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := decodeData(body, dest); err != nil {
		return fmt.Errorf("decoding %s response: %w", operation, err)
	}
	return nil
}

// sendData performs a mutation request and unwraps the single-object
// data envelope into dest.
func (c *Client) sendData(ctx context.Context, method, path string, payload, dest any, operation string) error {
	body, err := c.send(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if err := decodeData(body, dest); err != nil {
		return fmt.Errorf("decoding %s response: %w", operation, err)
	}
	return nil
}

// decodeData unwraps the API's {"data": ...} envelope and unmarshals the
// inner object into dest. A missing envelope is a decoding failure, not
// a lookup surprise at the call site.
func decodeData(body []byte, dest any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: response missing data envelope", ErrDecodingFailed)
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, err)
	}
	return nil
}

// closeBodySafely closes a response body (or any closer) from a defer,
// logging failures instead of surfacing them.
func closeBodySafely(body io.Closer, log logger.Logger, operation string) {
	if err := body.Close(); err != nil {
		log.Warnf("failed to close body for %s: %v", operation, err)
	}
}
