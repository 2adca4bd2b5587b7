package lightcast

import (
	"context"
	"net/http"
	"testing"

	"github.com/lawwu/mcp-lightcast/auth"
	"github.com/lawwu/mcp-lightcast/internal/testutil"
)

// familyFixture wires a mock API server and token endpoint for typed
// family-client tests.
type familyFixture struct {
	tm       *auth.TokenManager
	api      *apiServer
	tokenSrv *testutil.TokenServer
	opts     []Option
}

func newFamilyFixture(tb testing.TB, handler http.HandlerFunc) familyFixture {
	tb.Helper()

	api := &apiServer{}
	api.Server = testutil.NewLocalHTTPServer(tb, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.record(r)
		handler(w, r)
	}))

	tokenSrv := testutil.NewTokenServer(tb)
	tm := auth.NewTokenManager(auth.Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		TokenURL:     tokenSrv.URL + "/connect/token",
		DefaultScope: "emsi_open",
	}, auth.WithHTTPClient(tokenSrv.Client()))

	return familyFixture{
		tm:       tm,
		api:      api,
		tokenSrv: tokenSrv,
		opts:     []Option{WithBaseURL(api.URL), WithHTTPClient(api.Client())},
	}
}

func TestSearchTitles(t *testing.T) {
	fx := newFamilyFixture(t, jsonHandler(200, `{
		"data": [
			{"id": "ET3B93055220D592C8", "name": "Software Engineer", "type": "Main"},
			{"id": "ETEB3BB8E555C79368", "name": "Senior Software Engineer"}
		]
	}`))

	client := NewTitlesClient(fx.tm, fx.opts...)
	defer client.Close()

	titles, err := client.SearchTitles(context.Background(), "software engineer", 10, 0)
	if err != nil {
		t.Fatalf("SearchTitles failed: %v", err)
	}

	if len(titles) != 2 {
		t.Fatalf("got %d titles, want 2", len(titles))
	}
	if titles[0].ID != "ET3B93055220D592C8" || titles[0].Name != "Software Engineer" {
		t.Errorf("first title = %+v", titles[0])
	}
	if titles[1].Type != "" {
		t.Errorf("absent type should decode as empty, got %q", titles[1].Type)
	}

	req := fx.api.last(t)
	if req.Path != "/titles/versions/"+DefaultVersion {
		t.Errorf("path = %q", req.Path)
	}
	if req.Query.Get("q") != "software engineer" {
		t.Errorf("q = %q", req.Query.Get("q"))
	}
}

func TestNormalizeTitlePostsPlainText(t *testing.T) {
	fx := newFamilyFixture(t, jsonHandler(200, `{
		"data": {"id": "ET3B93055220D592C8", "name": "Software Engineer", "confidence": 0.94}
	}`))

	client := NewTitlesClient(fx.tm, fx.opts...)
	defer client.Close()

	result, err := client.NormalizeTitle(context.Background(), "sr. sw eng")
	if err != nil {
		t.Fatalf("NormalizeTitle failed: %v", err)
	}

	if result.Name != "Software Engineer" || result.Confidence != 0.94 {
		t.Errorf("normalization = %+v", result)
	}

	req := fx.api.last(t)
	if req.Method != http.MethodPost {
		t.Errorf("method = %q, want POST", req.Method)
	}
	if req.ContentType != "text/plain" {
		t.Errorf("Content-Type = %q, want text/plain", req.ContentType)
	}
	if req.Body != "sr. sw eng" {
		t.Errorf("body = %q", req.Body)
	}
}

func TestGetTitleByIDDecodeError(t *testing.T) {
	fx := newFamilyFixture(t, jsonHandler(200, `{"data": "not-an-object"}`))

	client := NewTitlesClient(fx.tm, fx.opts...)
	defer client.Close()

	_, err := client.GetTitleByID(context.Background(), "ET3B93055220D592C8")
	if err == nil {
		t.Fatal("expected a decode error for a malformed envelope")
	}
}
