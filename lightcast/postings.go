package lightcast

import (
	"context"

	"github.com/lawwu/mcp-lightcast/auth"
)

// PostingsClient accesses the Lightcast US Job Postings API. Requires the
// postings:us scope; the family tracks the "latest" version line.
type PostingsClient struct {
	*Client
}

// NewPostingsClient creates a job postings client sharing the given token
// manager.
func NewPostingsClient(tm *auth.TokenManager, opts ...Option) *PostingsClient {
	opts = append([]Option{WithScope(ScopePostingsUS), WithDefaultVersion("latest")}, opts...)
	return &PostingsClient{NewClient(tm, opts...)}
}

// SearchPostings searches job postings matching the given filter. The filter
// is passed through to the upstream query language unchanged.
func (c *PostingsClient) SearchPostings(ctx context.Context, filter map[string]any, limit int, opts ...RequestOption) ([]map[string]any, error) {
	body := map[string]any{
		"filter": filter,
		"limit":  limit,
	}

	var env struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.postJSON(ctx, "postings/us/versions/{version}/postings", body, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetPostingsTotals returns aggregate counts for postings matching the
// filter.
func (c *PostingsClient) GetPostingsTotals(ctx context.Context, filter map[string]any, opts ...RequestOption) (map[string]any, error) {
	body := map[string]any{"filter": filter}

	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := c.postJSON(ctx, "postings/us/versions/{version}/totals", body, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}
