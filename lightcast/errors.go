package lightcast

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError reports a failed API call: a non-2xx upstream response, or a
// transport failure that produced no response at all. It is never retried by
// this package.
type APIError struct {
	// StatusCode is the upstream HTTP status, or 0 when no response was
	// received.
	StatusCode int
	// Body is a best-effort parse of the upstream error body: the decoded
	// JSON object when the response claimed JSON, otherwise the raw text
	// under the "error" key.
	Body map[string]any
	// Message is a human-readable summary.
	Message string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("lightcast: %s (status %d)", e.Message, e.StatusCode)
	}
	return "lightcast: " + e.Message
}

// RateLimitError reports an upstream 429. It is a distinct kind from the
// generic APIError so callers can back off: errors.As with a **RateLimitError
// target matches only genuine throttling responses.
type RateLimitError struct {
	APIError
	// Reset is the RateLimit-Reset header value, an opaque hint for when
	// the quota refills.
	Reset string
}

// newAPIError builds the generic error for a non-2xx response.
func newAPIError(status int, contentType string, raw []byte) *APIError {
	body := map[string]any{}
	if isJSONContent(contentType) {
		if err := json.Unmarshal(raw, &body); err != nil {
			body = map[string]any{"error": string(raw)}
		}
	} else {
		body = map[string]any{"error": string(raw)}
	}
	return &APIError{
		StatusCode: status,
		Body:       body,
		Message:    fmt.Sprintf("api request failed: %d %s", status, http.StatusText(status)),
	}
}
