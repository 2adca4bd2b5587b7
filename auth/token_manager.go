package auth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// expiryLeeway is subtracted from a token's expiry so a token that would
// expire mid-request is refreshed up front.
const expiryLeeway = 60 * time.Second

// Config holds the immutable credentials for the Lightcast token endpoint.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	DefaultScope string
}

// scopedToken is one cached bearer token for a single OAuth2 scope.
// Entries are replaced wholesale on refresh, never mutated in place.
type scopedToken struct {
	value  string
	expiry time.Time
}

// usable reports whether the token can still be sent upstream. A zero expiry
// means the token endpoint answered with expires_in <= 0; such tokens are
// never trusted, so every call under that scope refreshes again.
func (t *scopedToken) usable(now time.Time) bool {
	if t == nil || t.value == "" {
		return false
	}
	if t.expiry.IsZero() {
		return false
	}
	return now.Before(t.expiry.Add(-expiryLeeway))
}

// TokenManager acquires and caches OAuth2 client-credentials tokens, one per
// scope. It is safe for concurrent use: the write lock is held across the
// refresh round-trip, so at most one refresh is in flight per manager and
// every waiter observes the token produced by that single refresh.
type TokenManager struct {
	cfg        Config
	httpClient *http.Client
	logger     *zerolog.Logger

	mu          sync.RWMutex
	tokens      map[string]*scopedToken
	activeScope string
}

// Option is a functional option for configuring TokenManager.
type Option func(*TokenManager)

// WithHTTPClient sets the HTTP client used for token-endpoint requests.
// Mainly useful for tests and custom transports.
func WithHTTPClient(client *http.Client) Option {
	return func(tm *TokenManager) {
		tm.httpClient = client
	}
}

// WithLogger enables debug logging of token refresh events.
func WithLogger(logger zerolog.Logger) Option {
	return func(tm *TokenManager) {
		tm.logger = &logger
	}
}

// NewTokenManager creates a token manager for the given credentials.
// The default scope is used whenever no active scope has been set.
func NewTokenManager(cfg Config, opts ...Option) *TokenManager {
	tm := &TokenManager{
		cfg:    cfg,
		tokens: make(map[string]*scopedToken),
	}
	for _, opt := range opts {
		opt(tm)
	}
	return tm
}

// SetActiveScope changes the scope subsequent GetAccessToken calls
// authenticate under. An empty scope reverts to the configured default.
// Tokens already cached for other scopes are kept; switching to a scope with
// no usable cached token forces a refresh on the next call.
func (tm *TokenManager) SetActiveScope(scope string) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.activeScope = scope
}

// GetAccessToken returns a valid bearer token for the active scope,
// refreshing it if the cached one is absent or inside the expiry leeway.
func (tm *TokenManager) GetAccessToken(ctx context.Context) (string, error) {
	tm.mu.RLock()
	scope := tm.activeScope
	tm.mu.RUnlock()
	return tm.TokenForScope(ctx, scope)
}

// TokenForScope returns a valid bearer token for an explicit scope,
// bypassing the shared active-scope field. API clients bound to a single
// scope use this so concurrent clients with different scopes never
// interfere with each other. An empty scope means the default scope.
func (tm *TokenManager) TokenForScope(ctx context.Context, scope string) (string, error) {
	if scope == "" {
		scope = tm.cfg.DefaultScope
	}

	// Fast path: a usable cached token needs no write lock.
	tm.mu.RLock()
	if tok := tm.tokens[scope]; tok.usable(time.Now()) {
		value := tok.value
		tm.mu.RUnlock()
		return value, nil
	}
	tm.mu.RUnlock()

	tm.mu.Lock()
	defer tm.mu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if tok := tm.tokens[scope]; tok.usable(time.Now()) {
		return tok.value, nil
	}

	tok, err := tm.refresh(ctx, scope)
	if err != nil {
		return "", err
	}
	tm.tokens[scope] = tok

	if tm.logger != nil {
		tm.logger.Debug().
			Str("scope", scope).
			Time("expiry", tok.expiry).
			Msg("obtained new access token")
	}

	return tok.value, nil
}

// GetAuthHeaders returns the headers for an authenticated API request under
// the active scope.
func (tm *TokenManager) GetAuthHeaders(ctx context.Context) (map[string]string, error) {
	token, err := tm.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
	}, nil
}

// refresh performs one client-credentials round-trip against the token
// endpoint. Callers must hold the write lock. Failures are never retried
// here; retry policy belongs to the caller.
func (tm *TokenManager) refresh(ctx context.Context, scope string) (*scopedToken, error) {
	conf := &clientcredentials.Config{
		ClientID:     tm.cfg.ClientID,
		ClientSecret: tm.cfg.ClientSecret,
		TokenURL:     tm.cfg.TokenURL,
		Scopes:       []string{scope},
		// Lightcast expects the credentials in the form body, not basic auth.
		AuthStyle: oauth2.AuthStyleInParams,
	}

	if tm.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, tm.httpClient)
	}

	tok, err := conf.Token(ctx)
	if err != nil {
		if tm.logger != nil {
			tm.logger.Error().Err(err).Str("scope", scope).Msg("token refresh failed")
		}
		return nil, newError(scope, err)
	}

	return &scopedToken{value: tok.AccessToken, expiry: tok.Expiry}, nil
}
