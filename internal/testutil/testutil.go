package testutil

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewLocalHTTPServer starts an HTTP server bound to IPv4 loopback only.
// The sandbox blocks IPv6 listeners, so force tcp4 to keep tests runnable.
func NewLocalHTTPServer(tb testing.TB, handler http.Handler) *httptest.Server {
	tb.Helper()

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("failed to create IPv4 listener: %v", err)
	}

	server := httptest.NewUnstartedServer(handler)
	server.Listener = listener
	server.Start()
	tb.Cleanup(server.Close)

	return server
}

// RoundTripFunc allows inlining http.RoundTripper implementations.
type RoundTripFunc func(*http.Request) (*http.Response, error)

// RoundTrip calls the underlying function.
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// TokenRequest is one recorded form-encoded request to the mock token
// endpoint.
type TokenRequest struct {
	GrantType    string
	ClientID     string
	ClientSecret string
	Scope        string
}

// TokenServer simulates the Lightcast OAuth2 token endpoint. It records
// every request it serves and mints a fresh signed token per request, so
// tests can both count refreshes and tell tokens apart.
type TokenServer struct {
	*httptest.Server

	mu         sync.Mutex
	requests   []TokenRequest
	expiresIn  int
	failStatus int
	failBody   string
	delay      time.Duration
	serial     int
}

var tokenSigningKey = []byte("testutil-signing-key")

// NewTokenServer starts a mock token endpoint issuing tokens that expire in
// one hour.
func NewTokenServer(tb testing.TB) *TokenServer {
	tb.Helper()

	ts := &TokenServer{expiresIn: 3600}
	ts.Server = NewLocalHTTPServer(tb, http.HandlerFunc(ts.handle))
	return ts
}

func (ts *TokenServer) handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	ts.mu.Lock()
	ts.requests = append(ts.requests, TokenRequest{
		GrantType:    r.PostFormValue("grant_type"),
		ClientID:     r.PostFormValue("client_id"),
		ClientSecret: r.PostFormValue("client_secret"),
		Scope:        r.PostFormValue("scope"),
	})
	ts.serial++
	serial := ts.serial
	expiresIn := ts.expiresIn
	failStatus := ts.failStatus
	failBody := ts.failBody
	delay := ts.delay
	ts.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if failStatus != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(failStatus)
		w.Write([]byte(failBody))
		return
	}

	// Real Lightcast access tokens are JWTs; mint one so the opaque value
	// still looks plausible on the wire.
	claims := jwt.MapClaims{
		"scope": r.PostFormValue("scope"),
		"jti":   serial,
		"exp":   time.Now().Add(time.Duration(expiresIn) * time.Second).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tokenSigningKey)
	if err != nil {
		http.Error(w, "signing failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   expiresIn,
		"scope":        r.PostFormValue("scope"),
	})
}

// SetExpiresIn changes the expires_in value of subsequent token responses.
func (ts *TokenServer) SetExpiresIn(seconds int) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.expiresIn = seconds
}

// FailWith makes subsequent token requests fail with the given status and
// JSON body.
func (ts *TokenServer) FailWith(status int, body string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.failStatus = status
	ts.failBody = body
}

// SetDelay makes the endpoint sleep before answering, to widen concurrency
// windows in single-flight tests.
func (ts *TokenServer) SetDelay(d time.Duration) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.delay = d
}

// RequestCount reports how many token requests have been served.
func (ts *TokenServer) RequestCount() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.requests)
}

// Requests returns a copy of all recorded token requests.
func (ts *TokenServer) Requests() []TokenRequest {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	out := make([]TokenRequest, len(ts.requests))
	copy(out, ts.requests)
	return out
}

// LastScope returns the scope of the most recent token request, or "".
func (ts *TokenServer) LastScope() string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if len(ts.requests) == 0 {
		return ""
	}
	return ts.requests[len(ts.requests)-1].Scope
}
