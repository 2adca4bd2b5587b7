package lightcast

import (
	"context"
	"strings"
	"testing"
)

func TestOccupationSimilarity(t *testing.T) {
	fx := newFamilyFixture(t, jsonHandler(200, `{
		"data": [
			{"id": "15-2051", "name": "Data Scientists", "score": 0.93},
			{"id": "15-1221", "name": "Computer and Information Research Scientists", "score": 0.88}
		]
	}`))

	client := NewSimilarityClient(fx.tm, fx.opts...)
	defer client.Close()

	scores, err := client.OccupationSimilarity(context.Background(), "15-1252", 10)
	if err != nil {
		t.Fatalf("OccupationSimilarity failed: %v", err)
	}

	if len(scores) != 2 || scores[0].Score != 0.93 {
		t.Errorf("scores = %+v", scores)
	}

	req := fx.api.last(t)
	if req.Path != "/similarity/versions/latest/occupation" {
		t.Errorf("path = %q", req.Path)
	}
	if !strings.Contains(req.Body, `"id":"15-1252"`) {
		t.Errorf("body = %q", req.Body)
	}
	if got := fx.tokenSrv.LastScope(); got != ScopeSimilarity {
		t.Errorf("token scope = %q, want %q", got, ScopeSimilarity)
	}
}

func TestSearchPostings(t *testing.T) {
	fx := newFamilyFixture(t, jsonHandler(200, `{
		"data": [
			{"id": "p-1", "title": "Backend Engineer", "company": "Acme"}
		]
	}`))

	client := NewPostingsClient(fx.tm, fx.opts...)
	defer client.Close()

	postings, err := client.SearchPostings(context.Background(), map[string]any{"title_name": "Backend Engineer"}, 10)
	if err != nil {
		t.Fatalf("SearchPostings failed: %v", err)
	}

	if len(postings) != 1 || postings[0]["company"] != "Acme" {
		t.Errorf("postings = %+v", postings)
	}
	if got := fx.api.last(t).Path; got != "/postings/us/versions/latest/postings" {
		t.Errorf("path = %q", got)
	}
	if got := fx.tokenSrv.LastScope(); got != ScopePostingsUS {
		t.Errorf("token scope = %q, want %q", got, ScopePostingsUS)
	}
}
