package auth

import (
	"errors"
	"fmt"

	"golang.org/x/oauth2"
)

// Error reports a failed token acquisition: either the token endpoint
// rejected the credentials, or it could not be reached at all. It is never
// retried by this package and never re-wrapped by the request layer, so
// callers can always detect it with errors.As.
type Error struct {
	// Scope the token was requested under.
	Scope string
	// StatusCode is the token endpoint's HTTP status, or 0 when no
	// response was received (DNS, connect, timeout).
	StatusCode int
	// Body is the raw token endpoint response, if any.
	Body string

	err error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("auth: failed to get access token for scope %q: %d %s", e.Scope, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("auth: failed to get access token for scope %q: %v", e.Scope, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// newError classifies a token fetch failure. oauth2.RetrieveError carries
// the endpoint's status and body; anything else is a transport failure.
func newError(scope string, err error) *Error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		status := 0
		if re.Response != nil {
			status = re.Response.StatusCode
		}
		return &Error{Scope: scope, StatusCode: status, Body: string(re.Body), err: err}
	}
	return &Error{Scope: scope, err: err}
}
