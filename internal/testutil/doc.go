// Package testutil provides shared test helpers: IPv4-only httptest servers
// and a mock Lightcast token endpoint that records requests and mints signed
// tokens.
package testutil
