package pachca

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors. API failures wrap exactly one of the classified
// sentinels; match them with errors.Is.
var (
	// Configuration errors.
	ErrMissingAccessToken = errors.New("access token is required")

	// Classified API failures, selected by response status.
	ErrResourceNotFound = errors.New("resource not found")
	ErrInvalidToken     = errors.New("invalid access token")
	ErrTokenForbidden   = errors.New("token not authorized for request")
	ErrBadRequest       = errors.New("bad request parameters")
	ErrRateLimited      = errors.New("rate limited")
	ErrUnhandledStatus  = errors.New("unhandled status")

	// Response bodies that could not be interpreted.
	ErrDecodingFailed = errors.New("decoding failed")

	// Domain failures raised by endpoint logic, not by the server.
	ErrChatAlreadyExists = errors.New("chat already exists")
	ErrNothingToUpdate   = errors.New("nothing to update")
	ErrFileNotNegotiated = errors.New("file upload not negotiated")
)

// classifyResponse turns a non-success response into a classified error.
// The sentinel is chosen by status code alone; the message carries the
// fixed per-status template plus whatever detail the server provided in
// its errors field. Classification is always fatal for the current call;
// the SDK never retries on its own.
func (c *Client) classifyResponse(status int, reqURL string, body []byte) error {
	sentinel := statusSentinel(status)
	detail, ok := extractErrorDetail(body)

	if !ok {
		// Body was not JSON at all; report the raw text.
		return fmt.Errorf("%w: could not decode JSON for status %d: %s", sentinel, status, string(body))
	}
	if detail == "" {
		// JSON body without an errors field, or a status outside the
		// template table.
		return fmt.Errorf("%w: unhandled error for status %d: %s", sentinel, status, string(body))
	}

	switch status {
	case 404:
		return fmt.Errorf("%w: resource %s not found: %s", sentinel, reqURL, detail)
	case 401:
		return fmt.Errorf("%w: token %s is not valid: %s", sentinel, maskToken(c.token), detail)
	case 403:
		return fmt.Errorf("%w: token %s is not valid for this request: %s", sentinel, maskToken(c.token), detail)
	case 400:
		return fmt.Errorf("%w: error in request params, check the API docs: %s", sentinel, detail)
	case 429:
		return fmt.Errorf("%w: too many requests, increase the API delay (currently %s): %s", sentinel, c.apiDelay, detail)
	}
	return fmt.Errorf("%w: unhandled error for status %d: %s", sentinel, status, detail)
}

// statusSentinel maps a response status to its sentinel error. Statuses
// outside the fixed table fall back to ErrUnhandledStatus.
func statusSentinel(status int) error {
	switch status {
	case 404:
		return ErrResourceNotFound
	case 401:
		return ErrInvalidToken
	case 403:
		return ErrTokenForbidden
	case 400:
		return ErrBadRequest
	case 429:
		return ErrRateLimited
	}
	return ErrUnhandledStatus
}

// extractErrorDetail pulls the human-readable errors field out of an
// error response body. The second return is false when the body is not
// JSON; a JSON body without an errors field yields an empty detail.
func extractErrorDetail(body []byte) (string, bool) {
	var env struct {
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return "", false
	}
	if len(env.Errors) == 0 || string(env.Errors) == "null" {
		return "", true
	}
	// The errors field may be a plain string or a structure; keep
	// structures as their raw JSON text.
	var s string
	if err := json.Unmarshal(env.Errors, &s); err == nil {
		return s, true
	}
	return string(env.Errors), true
}

// maskToken returns a short prefix of the access token suitable for
// error messages. The full secret is never reported.
func maskToken(token string) string {
	const visible = 5
	if len(token) <= visible {
		return token + "***"
	}
	return token[:visible] + "***"
}
